// Package vendormock emulates the upstream telematics vendor for local
// development and demos. It speaks the vendor's value-wrapped wire format,
// including the string "404" status for unknown vehicles and the "Null" type
// tag for absent capabilities.
package vendormock

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
)

type wrapped struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}

func str(v string) wrapped    { return wrapped{Value: v, Type: "String"} }
func boolean(v bool) wrapped  { return wrapped{Value: boolLiteral(v), Type: "Boolean"} }
func number(v float64) wrapped {
	return wrapped{Value: fmt.Sprintf("%.2f", v), Type: "Number"}
}
func null() wrapped { return wrapped{Value: "null", Type: "Null"} }

func boolLiteral(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

type vehicle struct {
	VIN           string
	Color         string
	FourDoorSedan bool
	DriveTrain    string
	DoorLocations []string
	HasFuel       bool
	HasBattery    bool
}

// Server holds the canned fleet and a seeded source of randomness for lock
// states, energy levels and action outcomes.
type Server struct {
	vehicles map[string]vehicle
	failRate float64
	logger   *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewServer builds a mock with the two reference vehicles: 1234 is a
// four-door gas sedan, 1235 a two-door electric coupe. failRate is the
// probability that an engine action attempt reports FAILED.
func NewServer(failRate float64, seed int64, logger *slog.Logger) *Server {
	return &Server{
		vehicles: map[string]vehicle{
			"1234": {
				VIN:           "123123412412",
				Color:         "Metallic Silver",
				FourDoorSedan: true,
				DriveTrain:    "v8",
				DoorLocations: []string{"frontLeft", "frontRight", "backLeft", "backRight"},
				HasFuel:       true,
			},
			"1235": {
				VIN:           "1235AZ91XP",
				Color:         "Forest Green",
				FourDoorSedan: false,
				DriveTrain:    "electric",
				DoorLocations: []string{"frontLeft", "frontRight"},
				HasBattery:    true,
			},
		},
		failRate: failRate,
		logger:   logger,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /getVehicleInfoService", s.handleVehicleInfo)
	mux.HandleFunc("POST /getSecurityStatusService", s.handleSecurityStatus)
	mux.HandleFunc("POST /getEnergyService", s.handleEnergy)
	mux.HandleFunc("POST /actionEngineService", s.handleActionEngine)
}

type request struct {
	ID      string `json:"id"`
	Command string `json:"command"`
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (request, bool) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return request{}, false
	}
	return req, true
}

func (s *Server) lookup(w http.ResponseWriter, service string, req request) (vehicle, bool) {
	v, ok := s.vehicles[req.ID]
	if !ok {
		s.logger.Debug("unknown vehicle requested", "service", service, "vehicle_id", req.ID)
		s.respond(w, map[string]interface{}{
			"service": service,
			"status":  "404",
			"reason":  fmt.Sprintf("Vehicle id: %s not found.", req.ID),
		})
		return vehicle{}, false
	}
	return v, true
}

func (s *Server) respond(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) handleVehicleInfo(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	v, ok := s.lookup(w, "getVehicleInfo", req)
	if !ok {
		return
	}

	s.respond(w, map[string]interface{}{
		"service": "getVehicleInfo",
		"status":  "200",
		"data": map[string]interface{}{
			"vin":           str(v.VIN),
			"color":         str(v.Color),
			"fourDoorSedan": boolean(v.FourDoorSedan),
			"twoDoorCoupe":  boolean(!v.FourDoorSedan),
			"driveTrain":    str(v.DriveTrain),
		},
	})
}

func (s *Server) handleSecurityStatus(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	v, ok := s.lookup(w, "getSecurityStatus", req)
	if !ok {
		return
	}

	doors := make([]map[string]interface{}, 0, len(v.DoorLocations))
	for _, location := range v.DoorLocations {
		doors = append(doors, map[string]interface{}{
			"location": str(location),
			"locked":   boolean(s.chance(0.5)),
		})
	}

	s.respond(w, map[string]interface{}{
		"service": "getSecurityStatus",
		"status":  "200",
		"data": map[string]interface{}{
			"doors": map[string]interface{}{
				"type":   "Array",
				"values": doors,
			},
		},
	})
}

func (s *Server) handleEnergy(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	v, ok := s.lookup(w, "getEnergy", req)
	if !ok {
		return
	}

	tank := null()
	battery := null()
	if v.HasFuel {
		tank = number(s.percent())
	}
	if v.HasBattery {
		battery = number(s.percent())
	}

	s.respond(w, map[string]interface{}{
		"service": "getEnergy",
		"status":  "200",
		"data": map[string]interface{}{
			"tankLevel":    tank,
			"batteryLevel": battery,
		},
	})
}

func (s *Server) handleActionEngine(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	if _, ok := s.lookup(w, "actionEngine", req); !ok {
		return
	}

	if req.Command != "START_VEHICLE" && req.Command != "STOP_VEHICLE" {
		http.Error(w, "unknown command", http.StatusBadRequest)
		return
	}

	status := "EXECUTED"
	if s.chance(s.failRate) {
		status = "FAILED"
	}

	s.respond(w, map[string]interface{}{
		"service": "actionEngine",
		"status":  "200",
		"actionResult": map[string]interface{}{
			"status": status,
		},
	})
}

func (s *Server) percent() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() * 100
}

func (s *Server) chance(p float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < p
}
