package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mobility-gw/vehicle-gateway/internal/domain"
	"github.com/mobility-gw/vehicle-gateway/internal/interfaces/rest"
)

type EngineRequest struct {
	Action string `json:"action" validate:"required"`
}

// HandleEngineAction serves POST /vehicles/:id/engine. The action is validated
// before any vendor contact so malformed input never costs a round trip.
func (h *Handlers) HandleEngineAction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req EngineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, r, domain.NewInvalidActionError(req.Action), h.logger)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		rest.WriteError(w, r, domain.NewInvalidActionError(req.Action), h.logger)
		return
	}

	action, err := domain.ParseEngineAction(req.Action)
	if err != nil {
		rest.WriteError(w, r, err, h.logger)
		return
	}

	result, err := h.engine.PerformAction(r.Context(), id, action)
	if err != nil {
		rest.WriteError(w, r, err, h.logger)
		return
	}

	rest.RespondJSON(w, http.StatusOK, result)
}
