package services

import (
	"context"
	"sync"

	"github.com/mobility-gw/vehicle-gateway/internal/domain"
)

// MockVendorClient is a function-backed vendor double. Unset hooks return a
// sensible default; calls are counted per operation.
type MockVendorClient struct {
	mu    sync.Mutex
	calls map[string]int

	VehicleInfoFn    func(ctx context.Context, id string) (*domain.VehicleInfo, error)
	SecurityStatusFn func(ctx context.Context, id string) (domain.DoorStatus, error)
	FuelRangeFn      func(ctx context.Context, id string) (*domain.EnergyLevel, error)
	BatteryRangeFn   func(ctx context.Context, id string) (*domain.EnergyLevel, error)
	EngineActionFn   func(ctx context.Context, id, command string) (*domain.ActionResult, error)
}

func (m *MockVendorClient) inc(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

func (m *MockVendorClient) GetCalls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *MockVendorClient) VehicleInfo(ctx context.Context, id string) (*domain.VehicleInfo, error) {
	m.inc("VehicleInfo")
	if m.VehicleInfoFn != nil {
		return m.VehicleInfoFn(ctx, id)
	}
	return &domain.VehicleInfo{
		VIN:        "1213231",
		Color:      "Metallic Silver",
		DoorCount:  4,
		DriveTrain: "v8",
	}, nil
}

func (m *MockVendorClient) SecurityStatus(ctx context.Context, id string) (domain.DoorStatus, error) {
	m.inc("SecurityStatus")
	if m.SecurityStatusFn != nil {
		return m.SecurityStatusFn(ctx, id)
	}
	return domain.DoorStatus{
		{Location: "frontLeft", Locked: true},
		{Location: "frontRight", Locked: false},
	}, nil
}

func (m *MockVendorClient) FuelRange(ctx context.Context, id string) (*domain.EnergyLevel, error) {
	m.inc("FuelRange")
	if m.FuelRangeFn != nil {
		return m.FuelRangeFn(ctx, id)
	}
	return &domain.EnergyLevel{Percent: 30.2}, nil
}

func (m *MockVendorClient) BatteryRange(ctx context.Context, id string) (*domain.EnergyLevel, error) {
	m.inc("BatteryRange")
	if m.BatteryRangeFn != nil {
		return m.BatteryRangeFn(ctx, id)
	}
	return &domain.EnergyLevel{Percent: 87.5}, nil
}

func (m *MockVendorClient) EngineAction(ctx context.Context, id, command string) (*domain.ActionResult, error) {
	m.inc("EngineAction")
	if m.EngineActionFn != nil {
		return m.EngineActionFn(ctx, id, command)
	}
	return &domain.ActionResult{Status: domain.StatusExecuted}, nil
}
