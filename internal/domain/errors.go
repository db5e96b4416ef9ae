package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind is the closed taxonomy of client-facing failures.
type ErrorKind string

const (
	KindNoVehicleID      ErrorKind = "NO_VEHICLE_ID"
	KindInvalidVehicleID ErrorKind = "INVALID_VEHICLE_ID"
	KindNoFuel           ErrorKind = "NO_FUEL"
	KindNoBattery        ErrorKind = "NO_BATTERY"
	KindInvalidAction    ErrorKind = "INVALID_ACTION"
	KindInvalidMethod    ErrorKind = "INVALID_METHOD"
	KindInvalidRoute     ErrorKind = "INVALID_ROUTE"
	KindUpstreamError    ErrorKind = "UPSTREAM_ERROR"
)

// Error is a structured gateway failure carried as a value up to the REST
// boundary, where it is rendered into an error envelope. Context fields are
// filled per kind and left zero otherwise.
type Error struct {
	Kind ErrorKind
	Info string

	// Canonical path template for the failing resource, e.g. "/vehicles/:id".
	// Kinds classified against the raw request (route, method) carry the
	// actual request path instead.
	Path string

	VehicleID         string
	Action            string
	IncompletePath    string
	ExamplePath       string
	InvalidMethod     string
	AcceptableMethods []string

	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Info, e.Err)
	}
	return e.Info
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the fixed status code for this error's kind.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNoVehicleID, KindInvalidAction:
		return http.StatusBadRequest
	case KindInvalidVehicleID, KindInvalidRoute:
		return http.StatusNotFound
	case KindNoFuel, KindNoBattery:
		return http.StatusNotAcceptable
	case KindInvalidMethod:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

func NewNoVehicleIDError(path string) *Error {
	return &Error{
		Kind:           KindNoVehicleID,
		Info:           "No vehicle ID was provided, please provide a vehicle ID and try again.",
		Path:           "/vehicles/:id",
		IncompletePath: path,
		ExamplePath:    "/vehicles/1587",
	}
}

func NewInvalidVehicleIDError(id string) *Error {
	return &Error{
		Kind:      KindInvalidVehicleID,
		Info:      fmt.Sprintf("Vehicle ID %s is invalid, please check your vehicle ID and try again.", id),
		Path:      "/vehicles/:id",
		VehicleID: id,
	}
}

func NewNoFuelError(id string) *Error {
	return &Error{
		Kind:      KindNoFuel,
		Info:      fmt.Sprintf("Vehicle ID %s does not use fuel. Path /fuel is only valid for gas or hybrid vehicles. Did you mean /battery?", id),
		Path:      "/vehicles/:id/fuel",
		VehicleID: id,
	}
}

func NewNoBatteryError(id string) *Error {
	return &Error{
		Kind:      KindNoBattery,
		Info:      fmt.Sprintf("Vehicle ID %s does not use a battery. Path /battery is only valid for electric or hybrid vehicles. Did you mean /fuel?", id),
		Path:      "/vehicles/:id/battery",
		VehicleID: id,
	}
}

func NewInvalidActionError(action string) *Error {
	return &Error{
		Kind:   KindInvalidAction,
		Info:   fmt.Sprintf("Action %s is invalid. Allowed actions are START and STOP for the /engine endpoint.", action),
		Path:   "/vehicles/:id/engine",
		Action: action,
	}
}

func NewInvalidMethodError(method, path string, acceptable []string) *Error {
	return &Error{
		Kind:              KindInvalidMethod,
		Info:              fmt.Sprintf("Method %s is invalid for %s - allowed methods are %v.", method, path, acceptable),
		Path:              path,
		InvalidMethod:     method,
		AcceptableMethods: acceptable,
	}
}

func NewInvalidRouteError(path string) *Error {
	return &Error{
		Kind: KindInvalidRoute,
		Info: fmt.Sprintf("Route %s is invalid. Please check your route and try again.", path),
		Path: path,
	}
}

func NewUpstreamError(err error) *Error {
	return &Error{
		Kind: KindUpstreamError,
		Info: "There was an error reaching the vehicle service, please try again later.",
		Err:  err,
	}
}

// IsGatewayError checks whether err wraps a gateway Error.
func IsGatewayError(err error) (*Error, bool) {
	var gwErr *Error
	ok := errors.As(err, &gwErr)
	return gwErr, ok
}

// IsErrorKind checks if an error is a gateway Error with a specific kind.
func IsErrorKind(err error, kind ErrorKind) bool {
	if gwErr, ok := IsGatewayError(err); ok {
		return gwErr.Kind == kind
	}
	return false
}
