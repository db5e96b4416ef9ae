package vendorapi

import (
	"fmt"
	"strconv"

	"github.com/mobility-gw/vehicle-gateway/internal/domain"
)

// The normalizers below are pure mappings from vendor wire shapes to domain
// objects. The vendor flags an unknown vehicle with a top-level status "404"
// (a string, on an otherwise 200 response) and an absent capability with a
// "Null" type tag on the wrapped value; both are checked before touching any
// nested field. Raw wire strings never escape this file.

func normalizeVehicleInfo(id string, resp *vehicleInfoResponse) (*domain.VehicleInfo, error) {
	if resp.Status == statusNotFound {
		return nil, domain.NewInvalidVehicleIDError(id)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("vehicle info response for %s is missing its data payload", id)
	}

	doorCount := 2
	if parseWireBool(resp.Data.FourDoorSedan) {
		doorCount = 4
	}

	return &domain.VehicleInfo{
		VIN:        resp.Data.VIN.Value,
		Color:      resp.Data.Color.Value,
		DoorCount:  doorCount,
		DriveTrain: resp.Data.DriveTrain.Value,
	}, nil
}

func normalizeSecurityStatus(id string, resp *securityStatusResponse) (domain.DoorStatus, error) {
	if resp.Status == statusNotFound {
		return nil, domain.NewInvalidVehicleIDError(id)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("security status response for %s is missing its data payload", id)
	}

	// Vendor order and count are preserved as-is; the door list is not
	// reconciled with the four-door-sedan flag from the info operation.
	doors := make(domain.DoorStatus, 0, len(resp.Data.Doors.Values))
	for _, record := range resp.Data.Doors.Values {
		doors = append(doors, domain.Door{
			Location: record.Location.Value,
			Locked:   parseWireBool(record.Locked),
		})
	}

	return doors, nil
}

func normalizeFuelRange(id string, resp *energyResponse) (*domain.EnergyLevel, error) {
	if resp.Status == statusNotFound {
		return nil, domain.NewInvalidVehicleIDError(id)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("energy response for %s is missing its data payload", id)
	}
	if resp.Data.TankLevel.Type == typeNull {
		return nil, domain.NewNoFuelError(id)
	}

	percent, err := parseWirePercent(resp.Data.TankLevel)
	if err != nil {
		return nil, fmt.Errorf("tank level for %s: %w", id, err)
	}

	return &domain.EnergyLevel{Percent: percent}, nil
}

func normalizeBatteryRange(id string, resp *energyResponse) (*domain.EnergyLevel, error) {
	if resp.Status == statusNotFound {
		return nil, domain.NewInvalidVehicleIDError(id)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("energy response for %s is missing its data payload", id)
	}
	if resp.Data.BatteryLevel.Type == typeNull {
		return nil, domain.NewNoBatteryError(id)
	}

	percent, err := parseWirePercent(resp.Data.BatteryLevel)
	if err != nil {
		return nil, fmt.Errorf("battery level for %s: %w", id, err)
	}

	return &domain.EnergyLevel{Percent: percent}, nil
}

func normalizeActionResult(id string, resp *engineActionResponse) (*domain.ActionResult, error) {
	if resp.Status == statusNotFound {
		return nil, domain.NewInvalidVehicleIDError(id)
	}
	if resp.ActionResult == nil {
		return nil, fmt.Errorf("engine action response for %s is missing its result", id)
	}

	switch resp.ActionResult.Status {
	case string(domain.StatusExecuted):
		return &domain.ActionResult{Status: domain.StatusExecuted}, nil
	case string(domain.StatusFailed):
		return &domain.ActionResult{Status: domain.StatusFailed}, nil
	default:
		return nil, fmt.Errorf("engine action response for %s has unknown status %q", id, resp.ActionResult.Status)
	}
}

// parseWireBool is deliberately an exact comparison against the vendor's
// literal "True". Anything else, including malformed values, reads as false,
// matching the vendor contract's binary flags.
func parseWireBool(v wireValue) bool {
	return v.Value == literalTrue
}

func parseWirePercent(v wireValue) (float64, error) {
	percent, err := strconv.ParseFloat(v.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable level %q: %w", v.Value, err)
	}
	return percent, nil
}
