package handlers

import (
	"net/http"
	"regexp"

	"github.com/mobility-gw/vehicle-gateway/internal/domain"
	"github.com/mobility-gw/vehicle-gateway/internal/interfaces/rest"
)

// Route families for the fallback classifier. Vehicle ids are opaque, so any
// single non-empty segment counts as an id.
var (
	mustBePostRoutes = regexp.MustCompile(`^/vehicles/[^/]+/engine$`)
	mustBeGetRoutes  = regexp.MustCompile(`^/vehicles/[^/]+(/doors|/fuel|/battery)?$`)
)

// HandleFallback classifies any request no specific handler claimed. Family
// checks run before the generic unknown-route answer, so a recognized path
// with the wrong method gets a 405 naming the allowed method rather than a
// misleading 404.
func (h *Handlers) HandleFallback(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case mustBePostRoutes.MatchString(path) && r.Method != http.MethodPost:
		rest.WriteError(w, r, domain.NewInvalidMethodError(r.Method, path, []string{http.MethodPost}), h.logger)
	case mustBeGetRoutes.MatchString(path) && r.Method != http.MethodGet:
		rest.WriteError(w, r, domain.NewInvalidMethodError(r.Method, path, []string{http.MethodGet}), h.logger)
	default:
		rest.WriteError(w, r, domain.NewInvalidRouteError(path), h.logger)
	}
}
