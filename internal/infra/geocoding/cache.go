package geocoding

import (
	"context"
	"log/slog"
	"time"

	"profile/internal/domain/entity"
	"profile/internal/domain/service"

	"golang.org/x/sync/singleflight"
)

// coordinateStore is the storage behind CachedResolver.
type coordinateStore interface {
	// Get reports a miss with ok == false and a nil error.
	Get(ctx context.Context, pincode string) (coords entity.Coordinates, ok bool, err error)
	Set(ctx context.Context, pincode string, coords entity.Coordinates, ttl time.Duration) error
}

// CachedResolver serves repeated pincodes from a store and coalesces
// concurrent lookups of the same pincode. Only successful results are stored.
type CachedResolver struct {
	next    service.CoordinateResolver
	store   coordinateStore
	ttl     time.Duration
	group   singleflight.Group
	metrics *Metrics
	logger  *slog.Logger
}

var _ service.CoordinateResolver = (*CachedResolver)(nil)

// NewCachedResolver wraps next with a cache.
func NewCachedResolver(next service.CoordinateResolver, store coordinateStore, ttl time.Duration, metrics *Metrics, logger *slog.Logger) *CachedResolver {
	return &CachedResolver{
		next:    next,
		store:   store,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

// Resolve returns the cached coordinates for pincode or looks them up.
// Store failures are logged and never fail the lookup.
func (r *CachedResolver) Resolve(ctx context.Context, pincode string) (entity.Coordinates, error) {
	coords, ok, err := r.store.Get(ctx, pincode)
	switch {
	case err != nil:
		r.logger.WarnContext(ctx, "Coordinate cache read failed", slog.Any("error", err))
	case ok:
		r.metrics.IncrementCacheHit()

		return coords, nil
	}

	result, err, _ := r.group.Do(pincode, func() (any, error) {
		resolved, resolveErr := r.next.Resolve(ctx, pincode)
		if resolveErr != nil {
			return nil, resolveErr
		}

		if setErr := r.store.Set(ctx, pincode, resolved, r.ttl); setErr != nil {
			r.logger.WarnContext(ctx, "Coordinate cache write failed", slog.Any("error", setErr))
		}

		return resolved, nil
	})
	if err != nil {
		return entity.Coordinates{}, err
	}

	return result.(entity.Coordinates), nil
}
