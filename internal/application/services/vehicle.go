// Package services orchestrates vendor calls for the request handlers.
package services

import (
	"context"
	"log/slog"

	"github.com/mobility-gw/vehicle-gateway/internal/application"
	"github.com/mobility-gw/vehicle-gateway/internal/domain"
)

// VehicleService serves the read-only vehicle endpoints. Everything is
// request-scoped; the service holds no state beyond its collaborators.
type VehicleService struct {
	vendor application.VendorClient
	logger *slog.Logger
}

func NewVehicleService(vendor application.VendorClient, logger *slog.Logger) *VehicleService {
	return &VehicleService{
		vendor: vendor,
		logger: logger,
	}
}

func (s *VehicleService) Info(ctx context.Context, id string) (*domain.VehicleInfo, error) {
	info, err := s.vendor.VehicleInfo(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("vehicle info fetched", "vehicle_id", id, "door_count", info.DoorCount)
	return info, nil
}

func (s *VehicleService) Doors(ctx context.Context, id string) (domain.DoorStatus, error) {
	doors, err := s.vendor.SecurityStatus(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("security status fetched", "vehicle_id", id, "doors", len(doors))
	return doors, nil
}

func (s *VehicleService) Fuel(ctx context.Context, id string) (*domain.EnergyLevel, error) {
	return s.vendor.FuelRange(ctx, id)
}

func (s *VehicleService) Battery(ctx context.Context, id string) (*domain.EnergyLevel, error) {
	return s.vendor.BatteryRange(ctx, id)
}
