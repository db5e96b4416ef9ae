package handlers

import (
	"net/http"

	"github.com/mobility-gw/vehicle-gateway/internal/domain"
	"github.com/mobility-gw/vehicle-gateway/internal/interfaces/rest"
)

// HandleVehicleInfo serves GET /vehicles/:id.
func (h *Handlers) HandleVehicleInfo(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	info, err := h.vehicles.Info(r.Context(), id)
	if err != nil {
		rest.WriteError(w, r, err, h.logger)
		return
	}

	rest.RespondJSON(w, http.StatusOK, info)
}

// HandleSecurityStatus serves GET /vehicles/:id/doors.
func (h *Handlers) HandleSecurityStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	doors, err := h.vehicles.Doors(r.Context(), id)
	if err != nil {
		rest.WriteError(w, r, err, h.logger)
		return
	}

	rest.RespondJSON(w, http.StatusOK, doors)
}

// HandleFuelRange serves GET /vehicles/:id/fuel.
func (h *Handlers) HandleFuelRange(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	level, err := h.vehicles.Fuel(r.Context(), id)
	if err != nil {
		rest.WriteError(w, r, err, h.logger)
		return
	}

	rest.RespondJSON(w, http.StatusOK, level)
}

// HandleBatteryRange serves GET /vehicles/:id/battery.
func (h *Handlers) HandleBatteryRange(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	level, err := h.vehicles.Battery(r.Context(), id)
	if err != nil {
		rest.WriteError(w, r, err, h.logger)
		return
	}

	rest.RespondJSON(w, http.StatusOK, level)
}

// HandleMissingVehicleID serves GET /vehicles, which can never name a vehicle.
func (h *Handlers) HandleMissingVehicleID(w http.ResponseWriter, r *http.Request) {
	rest.WriteError(w, r, domain.NewNoVehicleIDError(r.URL.Path), h.logger)
}
