package geocoding

import (
	"log/slog"
	"net/http"

	"profile/config"
	"profile/internal/domain/service"
	"profile/internal/errors"
	"profile/internal/infra/redis"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// ResolverParams holds dependencies for the coordinate resolver, injected by Fx
type ResolverParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry
	Redis    *redis.Client `optional:"true"`
}

// NewCoordinateResolver builds the location service client, wrapped with the
// Redis cache when location.cache.enabled is set.
func NewCoordinateResolver(params ResolverParams) (service.CoordinateResolver, error) {
	cfg := params.Config.Location
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("location.baseUrl is required")
	}

	metrics := NewMetrics(params.Registry)
	client := NewClient(cfg, &http.Client{}, metrics, params.Logger)

	if !cfg.Cache.Enabled {
		params.Logger.Info("Coordinate cache disabled")

		return client, nil
	}

	if params.Redis == nil {
		return nil, errors.New("location cache is enabled but redis is not configured")
	}

	params.Logger.Info("Coordinate cache enabled",
		slog.Duration("ttl", cfg.Cache.TTL),
	)

	return NewCachedResolver(client, NewRedisStore(params.Redis.Client), cfg.Cache.TTL, metrics, params.Logger), nil
}

// Module provides the coordinate resolver FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCoordinateResolver),
)
