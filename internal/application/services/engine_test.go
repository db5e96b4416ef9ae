package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobility-gw/vehicle-gateway/internal/config"
	"github.com/mobility-gw/vehicle-gateway/internal/domain"
)

func newEngineService(vendor *MockVendorClient, maxRetries int32) *EngineService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewEngineService(vendor, config.RetryConfig{MaxRetries: maxRetries}, logger)
}

func TestEngineService_SucceedsFirstAttempt(t *testing.T) {
	mockVendor := &MockVendorClient{}
	service := newEngineService(mockVendor, 5)

	result, err := service.PerformAction(context.Background(), "1234", domain.ActionStart)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusExecuted, result.Status)
	assert.Equal(t, 1, mockVendor.GetCalls("EngineAction"))
}

func TestEngineService_RetriesUntilExecuted(t *testing.T) {
	for _, failures := range []int{1, 3, 5} {
		mockVendor := &MockVendorClient{}
		attempts := 0
		mockVendor.EngineActionFn = func(ctx context.Context, id, command string) (*domain.ActionResult, error) {
			attempts++
			if attempts <= failures {
				return &domain.ActionResult{Status: domain.StatusFailed}, nil
			}
			return &domain.ActionResult{Status: domain.StatusExecuted}, nil
		}
		service := newEngineService(mockVendor, 5)

		result, err := service.PerformAction(context.Background(), "1234", domain.ActionStart)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusExecuted, result.Status)
		assert.Equal(t, failures+1, mockVendor.GetCalls("EngineAction"),
			"%d failures should cost exactly %d vendor calls", failures, failures+1)
	}
}

func TestEngineService_ExhaustsRetryBudget(t *testing.T) {
	mockVendor := &MockVendorClient{}
	mockVendor.EngineActionFn = func(ctx context.Context, id, command string) (*domain.ActionResult, error) {
		return &domain.ActionResult{Status: domain.StatusFailed}, nil
	}
	service := newEngineService(mockVendor, 5)

	result, err := service.PerformAction(context.Background(), "1234", domain.ActionStop)

	// Exhaustion is a normal outcome, not an error.
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, result.Status)
	assert.Equal(t, 6, mockVendor.GetCalls("EngineAction"))
}

func TestEngineService_NoRetryOnUnknownVehicle(t *testing.T) {
	mockVendor := &MockVendorClient{}
	mockVendor.EngineActionFn = func(ctx context.Context, id, command string) (*domain.ActionResult, error) {
		return nil, domain.NewInvalidVehicleIDError(id)
	}
	service := newEngineService(mockVendor, 5)

	result, err := service.PerformAction(context.Background(), "12345", domain.ActionStart)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, domain.IsErrorKind(err, domain.KindInvalidVehicleID))
	assert.Equal(t, 1, mockVendor.GetCalls("EngineAction"), "unknown vehicle must not be retried")
}

func TestEngineService_CommandsForBothActions(t *testing.T) {
	var seen []string
	mockVendor := &MockVendorClient{}
	mockVendor.EngineActionFn = func(ctx context.Context, id, command string) (*domain.ActionResult, error) {
		seen = append(seen, command)
		return &domain.ActionResult{Status: domain.StatusExecuted}, nil
	}
	service := newEngineService(mockVendor, 5)

	_, err := service.PerformAction(context.Background(), "1234", domain.ActionStart)
	require.NoError(t, err)
	_, err = service.PerformAction(context.Background(), "1234", domain.ActionStop)
	require.NoError(t, err)

	assert.Equal(t, []string{"START_VEHICLE", "STOP_VEHICLE"}, seen)
}

func TestEngineService_StopsOnCancelledContext(t *testing.T) {
	mockVendor := &MockVendorClient{}
	mockVendor.EngineActionFn = func(ctx context.Context, id, command string) (*domain.ActionResult, error) {
		return &domain.ActionResult{Status: domain.StatusFailed}, nil
	}
	service := newEngineService(mockVendor, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := service.PerformAction(ctx, "1234", domain.ActionStart)

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}
