// Package domain holds the gateway's normalized vehicle model, independent
// of the vendor wire format.
package domain

import "strings"

// EngineAction is a validated engine command requested by a client.
type EngineAction string

const (
	ActionStart EngineAction = "START"
	ActionStop  EngineAction = "STOP"
)

// ParseEngineAction normalizes a raw action string to uppercase and validates
// it against the allowed set. Input is case-insensitive.
func ParseEngineAction(raw string) (EngineAction, error) {
	switch action := EngineAction(strings.ToUpper(raw)); action {
	case ActionStart, ActionStop:
		return action, nil
	default:
		return "", NewInvalidActionError(raw)
	}
}

// Command returns the vendor command string for this action.
func (a EngineAction) Command() string {
	if a == ActionStart {
		return "START_VEHICLE"
	}
	return "STOP_VEHICLE"
}

// VehicleInfo is the flat vehicle description returned to clients.
// DoorCount is always 2 or 4; the vendor reports a four-door-sedan flag,
// everything else is a two-door.
type VehicleInfo struct {
	VIN        string `json:"vin"`
	Color      string `json:"color"`
	DoorCount  int    `json:"doorCount"`
	DriveTrain string `json:"driveTrain"`
}

// Door is the lock state of a single physical door.
type Door struct {
	Location string `json:"location"`
	Locked   bool   `json:"locked"`
}

// DoorStatus preserves the vendor-provided door order; its length is whatever
// the vendor returns and is not reconciled with VehicleInfo.DoorCount.
type DoorStatus []Door

// EnergyLevel is the remaining fuel or battery percentage.
type EnergyLevel struct {
	Percent float64 `json:"percent"`
}

// ActionStatus is the per-attempt outcome reported by the vendor.
type ActionStatus string

const (
	StatusExecuted ActionStatus = "EXECUTED"
	StatusFailed   ActionStatus = "FAILED"
)

// ActionResult is the terminal outcome of an engine action request. A FAILED
// status after the retry budget is spent is a legitimate result, not a fault.
type ActionResult struct {
	Status ActionStatus `json:"status"`
}
