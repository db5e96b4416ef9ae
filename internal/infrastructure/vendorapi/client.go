// Package vendorapi implements the vendor client port against the upstream
// telematics HTTP API and normalizes its value-wrapped responses.
package vendorapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mobility-gw/vehicle-gateway/internal/application"
	"github.com/mobility-gw/vehicle-gateway/internal/config"
	"github.com/mobility-gw/vehicle-gateway/internal/domain"
)

// HTTPVendorClient talks to the vendor's service endpoints. Every operation is
// a POST of {id, responseType} regardless of its read/write semantics; that
// contract is fixed upstream.
type HTTPVendorClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewVendorClient(cfg config.VendorConfig) application.VendorClient {
	return &HTTPVendorClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
	}
}

func (c *HTTPVendorClient) VehicleInfo(ctx context.Context, id string) (*domain.VehicleInfo, error) {
	resp, err := sendRequest[vehicleInfoResponse](c, ctx, serviceVehicleInfo, vendorRequest{
		ID:           id,
		ResponseType: responseTypeJSON,
	})
	if err != nil {
		return nil, err
	}
	return normalizeVehicleInfo(id, resp)
}

func (c *HTTPVendorClient) SecurityStatus(ctx context.Context, id string) (domain.DoorStatus, error) {
	resp, err := sendRequest[securityStatusResponse](c, ctx, serviceSecurityStatus, vendorRequest{
		ID:           id,
		ResponseType: responseTypeJSON,
	})
	if err != nil {
		return nil, err
	}
	return normalizeSecurityStatus(id, resp)
}

func (c *HTTPVendorClient) FuelRange(ctx context.Context, id string) (*domain.EnergyLevel, error) {
	resp, err := c.energy(ctx, id)
	if err != nil {
		return nil, err
	}
	return normalizeFuelRange(id, resp)
}

func (c *HTTPVendorClient) BatteryRange(ctx context.Context, id string) (*domain.EnergyLevel, error) {
	resp, err := c.energy(ctx, id)
	if err != nil {
		return nil, err
	}
	return normalizeBatteryRange(id, resp)
}

func (c *HTTPVendorClient) EngineAction(ctx context.Context, id, command string) (*domain.ActionResult, error) {
	resp, err := sendRequest[engineActionResponse](c, ctx, serviceActionEngine, vendorRequest{
		ID:           id,
		Command:      command,
		ResponseType: responseTypeJSON,
	})
	if err != nil {
		return nil, err
	}
	return normalizeActionResult(id, resp)
}

// Fuel and battery share the vendor's single energy operation.
func (c *HTTPVendorClient) energy(ctx context.Context, id string) (*energyResponse, error) {
	return sendRequest[energyResponse](c, ctx, serviceEnergy, vendorRequest{
		ID:           id,
		ResponseType: responseTypeJSON,
	})
}

func sendRequest[Resp any](c *HTTPVendorClient, ctx context.Context, service string, reqBody vendorRequest) (*Resp, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("error marshalling json: %w", err)
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, service)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &VendorError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var vendorResp Resp
	if err := json.NewDecoder(resp.Body).Decode(&vendorResp); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &vendorResp, nil
}
