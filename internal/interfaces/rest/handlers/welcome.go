package handlers

import (
	"net/http"

	"github.com/mobility-gw/vehicle-gateway/internal/interfaces/rest"
)

type RouteDescription struct {
	Route       string `json:"route"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

type WelcomePayload struct {
	Message string             `json:"message"`
	Routes  []RouteDescription `json:"routes"`
}

var welcome = WelcomePayload{
	Message: "Welcome to the Vehicle API",
	Routes: []RouteDescription{
		{
			Route:       "/vehicles/:id",
			Method:      http.MethodGet,
			Description: "Returns information about the vehicle with the specified ID",
		},
		{
			Route:       "/vehicles/:id/doors",
			Method:      http.MethodGet,
			Description: "Returns the locked status of each door",
		},
		{
			Route:       "/vehicles/:id/fuel",
			Method:      http.MethodGet,
			Description: "Returns the percentage of fuel remaining in the tank",
		},
		{
			Route:       "/vehicles/:id/battery",
			Method:      http.MethodGet,
			Description: "Returns the percentage of battery charge remaining",
		},
		{
			Route:       "/vehicles/:id/engine",
			Method:      http.MethodPost,
			Description: "Starts or stops the engine of the vehicle",
		},
	},
}

// HandleWelcome serves GET /.
func (h *Handlers) HandleWelcome(w http.ResponseWriter, r *http.Request) {
	rest.RespondJSON(w, http.StatusOK, welcome)
}
