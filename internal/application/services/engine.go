package services

import (
	"context"
	"log/slog"

	"github.com/mobility-gw/vehicle-gateway/internal/application"
	"github.com/mobility-gw/vehicle-gateway/internal/config"
	"github.com/mobility-gw/vehicle-gateway/internal/domain"
)

// EngineService drives the bounded-retry protocol for engine start/stop.
type EngineService struct {
	vendor     application.VendorClient
	maxRetries int
	logger     *slog.Logger
}

func NewEngineService(vendor application.VendorClient, cfg config.RetryConfig, logger *slog.Logger) *EngineService {
	return &EngineService{
		vendor:     vendor,
		maxRetries: int(cfg.MaxRetries),
		logger:     logger,
	}
}

// PerformAction issues the vendor command for an already-validated action and
// retries a FAILED attempt up to maxRetries additional times. Attempts are
// strictly sequential with no backoff; a FAILED result after the budget is
// spent is returned as a normal outcome. Vendor errors (vehicle unknown,
// transport failure) stop the loop immediately since retrying cannot succeed.
func (s *EngineService) PerformAction(ctx context.Context, id string, action domain.EngineAction) (*domain.ActionResult, error) {
	command := action.Command()

	for attempt := 0; ; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		result, err := s.vendor.EngineAction(ctx, id, command)
		if err != nil {
			return nil, err
		}

		if result.Status == domain.StatusExecuted {
			return result, nil
		}

		if attempt >= s.maxRetries {
			s.logger.Info("engine action retry budget exhausted",
				"vehicle_id", id,
				"command", command,
				"attempts", attempt+1,
			)
			return result, nil
		}

		s.logger.Debug("engine action failed, retrying",
			"vehicle_id", id,
			"command", command,
			"attempt", attempt+1,
		)
	}
}
