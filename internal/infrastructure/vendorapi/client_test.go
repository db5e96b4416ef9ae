package vendorapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobility-gw/vehicle-gateway/internal/config"
	"github.com/mobility-gw/vehicle-gateway/internal/domain"
	"github.com/mobility-gw/vehicle-gateway/internal/infrastructure/vendorapi"
)

type recordingHandler struct {
	path string
	body map[string]interface{}
	next http.HandlerFunc
}

func (h *recordingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.path = r.URL.Path
	_ = json.NewDecoder(r.Body).Decode(&h.body)
	h.next(w, r)
}

func TestVendorClient_VehicleInfo(t *testing.T) {
	recorder := &recordingHandler{
		next: func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"service": "getVehicleInfo",
				"status":  "200",
				"data": map[string]interface{}{
					"vin":           map[string]string{"value": "123123412412", "type": "String"},
					"color":         map[string]string{"value": "Metallic Silver", "type": "String"},
					"fourDoorSedan": map[string]string{"value": "True", "type": "Boolean"},
					"twoDoorCoupe":  map[string]string{"value": "False", "type": "Boolean"},
					"driveTrain":    map[string]string{"value": "v8", "type": "String"},
				},
			})
		},
	}
	server := httptest.NewServer(recorder)
	defer server.Close()

	client := vendorapi.NewVendorClient(config.VendorConfig{
		BaseURL:     server.URL,
		ConnTimeout: 5 * time.Second,
	})

	info, err := client.VehicleInfo(context.Background(), "1234")

	require.NoError(t, err)
	assert.Equal(t, "/getVehicleInfoService", recorder.path)
	assert.Equal(t, "1234", recorder.body["id"])
	assert.Equal(t, "JSON", recorder.body["responseType"])
	assert.Equal(t, &domain.VehicleInfo{
		VIN:        "123123412412",
		Color:      "Metallic Silver",
		DoorCount:  4,
		DriveTrain: "v8",
	}, info)
}

func TestVendorClient_EngineAction_SendsCommand(t *testing.T) {
	recorder := &recordingHandler{
		next: func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"service":      "actionEngine",
				"status":       "200",
				"actionResult": map[string]string{"status": "EXECUTED"},
			})
		},
	}
	server := httptest.NewServer(recorder)
	defer server.Close()

	client := vendorapi.NewVendorClient(config.VendorConfig{
		BaseURL:     server.URL,
		ConnTimeout: 5 * time.Second,
	})

	result, err := client.EngineAction(context.Background(), "1234", "START_VEHICLE")

	require.NoError(t, err)
	assert.Equal(t, "/actionEngineService", recorder.path)
	assert.Equal(t, "START_VEHICLE", recorder.body["command"])
	assert.Equal(t, domain.StatusExecuted, result.Status)
}

func TestVendorClient_UnknownVehicleSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The vendor reports unknown vehicles on a 200 transport response.
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"service": "getEnergy",
			"status":  "404",
			"reason":  "Vehicle id: 12345 not found.",
		})
	}))
	defer server.Close()

	client := vendorapi.NewVendorClient(config.VendorConfig{
		BaseURL:     server.URL,
		ConnTimeout: 5 * time.Second,
	})

	level, err := client.FuelRange(context.Background(), "12345")

	require.Error(t, err)
	assert.Nil(t, level)
	assert.True(t, domain.IsErrorKind(err, domain.KindInvalidVehicleID))
}

func TestVendorClient_Non200IsVendorError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	client := vendorapi.NewVendorClient(config.VendorConfig{
		BaseURL:     server.URL,
		ConnTimeout: 5 * time.Second,
	})

	_, err := client.SecurityStatus(context.Background(), "1234")

	require.Error(t, err)
	vendorErr, ok := vendorapi.IsVendorError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, vendorErr.StatusCode)

	_, isGateway := domain.IsGatewayError(err)
	assert.False(t, isGateway, "transport failures must not read as business errors")
}

func TestVendorClient_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client := vendorapi.NewVendorClient(config.VendorConfig{
		BaseURL:     server.URL,
		ConnTimeout: 5 * time.Second,
	})

	_, err := client.BatteryRange(context.Background(), "1234")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding")
}
