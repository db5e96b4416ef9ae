package application

import (
	"context"

	"github.com/mobility-gw/vehicle-gateway/internal/domain"
)

// VendorClient is the port for the external telematics vendor. Implementations
// return normalized domain objects; vendor wire sentinels ("no such vehicle",
// "capability absent") surface as gateway errors, transport and parse failures
// as plain errors.
type VendorClient interface {
	VehicleInfo(ctx context.Context, id string) (*domain.VehicleInfo, error)
	SecurityStatus(ctx context.Context, id string) (domain.DoorStatus, error)
	FuelRange(ctx context.Context, id string) (*domain.EnergyLevel, error)
	BatteryRange(ctx context.Context, id string) (*domain.EnergyLevel, error)
	EngineAction(ctx context.Context, id, command string) (*domain.ActionResult, error)
}
