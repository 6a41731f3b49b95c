package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"profile/internal/delivery/api/response"
	"profile/internal/infra/redis"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB     *gorm.DB
	Redis  *redis.Client `optional:"true"`
	Logger *slog.Logger
}

// HealthHandler reports whether the backing stores are reachable.
type HealthHandler struct {
	checks map[string]func(ctx context.Context) error
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	checks := map[string]func(ctx context.Context) error{
		"postgres": func(ctx context.Context) error {
			sqlDB, err := params.DB.DB()
			if err != nil {
				return err
			}

			return sqlDB.PingContext(ctx)
		},
	}
	if params.Redis != nil {
		checks["redis"] = params.Redis.Health
	}

	return &HealthHandler{
		checks: checks,
		logger: params.Logger,
	}
}

// Check runs every dependency probe and answers 503 if any fails.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.WarnContext(ctx, "Health check failed",
				slog.String("dependency", name),
				slog.Any("error", err),
			)
			results[name] = "unavailable"
			status = http.StatusServiceUnavailable

			continue
		}
		results[name] = "ok"
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}

	return response.Success(c, status, map[string]any{
		"status": overall,
		"checks": results,
	})
}
