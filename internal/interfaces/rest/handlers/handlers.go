// Package handlers wires the normalized REST surface onto the application
// services, one handler per logical operation.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator"

	"github.com/mobility-gw/vehicle-gateway/internal/domain"
)

type VehicleService interface {
	Info(ctx context.Context, id string) (*domain.VehicleInfo, error)
	Doors(ctx context.Context, id string) (domain.DoorStatus, error)
	Fuel(ctx context.Context, id string) (*domain.EnergyLevel, error)
	Battery(ctx context.Context, id string) (*domain.EnergyLevel, error)
}

type EngineService interface {
	PerformAction(ctx context.Context, id string, action domain.EngineAction) (*domain.ActionResult, error)
}

type Handlers struct {
	vehicles VehicleService
	engine   EngineService
	validate *validator.Validate
	logger   *slog.Logger
}

func NewHandlers(vehicles VehicleService, engine EngineService, logger *slog.Logger) *Handlers {
	return &Handlers{
		vehicles: vehicles,
		engine:   engine,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes installs all routes. Patterns are path-only; the method guard
// routes a recognized path with the wrong method through HandleFallback, which
// owns the 405-vs-404 classification. The bare "/" pattern catches everything
// unmatched.
func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/{$}", h.guard(http.MethodGet, h.HandleWelcome))
	mux.HandleFunc("/vehicles", h.guard(http.MethodGet, h.HandleMissingVehicleID))
	mux.HandleFunc("/vehicles/{id}", h.guard(http.MethodGet, h.HandleVehicleInfo))
	mux.HandleFunc("/vehicles/{id}/doors", h.guard(http.MethodGet, h.HandleSecurityStatus))
	mux.HandleFunc("/vehicles/{id}/fuel", h.guard(http.MethodGet, h.HandleFuelRange))
	mux.HandleFunc("/vehicles/{id}/battery", h.guard(http.MethodGet, h.HandleBatteryRange))
	mux.HandleFunc("/vehicles/{id}/engine", h.guard(http.MethodPost, h.HandleEngineAction))
	mux.HandleFunc("/", h.HandleFallback)
}

func (h *Handlers) guard(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			h.HandleFallback(w, r)
			return
		}
		next(w, r)
	}
}
