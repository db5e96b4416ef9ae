// Package rest renders domain results and gateway errors as the normalized
// JSON contract.
package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mobility-gw/vehicle-gateway/internal/domain"
)

// PossibleRoutes is the static route list appended to every error envelope so
// clients can self-discover the API after a failure.
var PossibleRoutes = []string{
	"GET /vehicles/:id",
	"GET /vehicles/:id/doors",
	"GET /vehicles/:id/fuel",
	"GET /vehicles/:id/battery",
	"POST /vehicles/:id/engine",
}

type ErrorDetail struct {
	Code              string   `json:"code"`
	Type              string   `json:"type"`
	Info              string   `json:"info"`
	IncompletePath    string   `json:"incompletePath,omitempty"`
	ExamplePath       string   `json:"examplePath,omitempty"`
	InvalidMethod     string   `json:"invalidMethod,omitempty"`
	AcceptableMethods []string `json:"acceptableMethods,omitempty"`
}

// ErrorEnvelope is built fresh per failure and never mutated afterwards.
type ErrorEnvelope struct {
	Success        bool        `json:"success"`
	Error          ErrorDetail `json:"error"`
	Path           string      `json:"path"`
	Timestamp      string      `json:"timestamp"`
	PossibleRoutes []string    `json:"possibleRoutes"`
}

// Envelope maps a gateway error to its response envelope. It is total over
// the error kinds: every kind yields a well-formed envelope. requestPath is
// used when the error carries no canonical path of its own.
func Envelope(gwErr *domain.Error, requestPath string) ErrorEnvelope {
	path := gwErr.Path
	if path == "" {
		path = requestPath
	}

	return ErrorEnvelope{
		Success: false,
		Error: ErrorDetail{
			Code:              strconv.Itoa(gwErr.HTTPStatus()),
			Type:              string(gwErr.Kind),
			Info:              gwErr.Info,
			IncompletePath:    gwErr.IncompletePath,
			ExamplePath:       gwErr.ExamplePath,
			InvalidMethod:     gwErr.InvalidMethod,
			AcceptableMethods: gwErr.AcceptableMethods,
		},
		Path:           path,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		PossibleRoutes: PossibleRoutes,
	}
}

// RespondJSON writes v with the given status.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError classifies err and writes its envelope. Business-rule violations
// are expected outcomes and are not logged; anything that is not a gateway
// error is an unexpected upstream/transport failure, logged here and surfaced
// as UPSTREAM_ERROR without leaking vendor detail to the caller.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	gwErr, ok := domain.IsGatewayError(err)
	if !ok {
		logger.Error("upstream failure",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		gwErr = domain.NewUpstreamError(err)
	}

	RespondJSON(w, gwErr.HTTPStatus(), Envelope(gwErr, r.URL.Path))
}
