package geocoding

import (
	"context"
	"encoding/json"
	"time"

	"profile/internal/domain/entity"
	"profile/internal/errors"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "geo:pincode:"

type cachedCoordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RedisStore keeps resolved coordinates in Redis under geo:pincode:{code}.
type RedisStore struct {
	client redis.Cmdable
}

// NewRedisStore creates a coordinate store backed by client.
func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

// Get returns the cached coordinates for pincode. The bool is false on a miss.
func (s *RedisStore) Get(ctx context.Context, pincode string) (entity.Coordinates, bool, error) {
	raw, err := s.client.Get(ctx, cacheKeyPrefix+pincode).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.Coordinates{}, false, nil
	}
	if err != nil {
		return entity.Coordinates{}, false, errors.Wrap(err, "redis get")
	}

	var cached cachedCoordinates
	if err := json.Unmarshal(raw, &cached); err != nil {
		return entity.Coordinates{}, false, errors.Wrap(err, "decode cached coordinates")
	}

	return entity.Coordinates{Latitude: cached.Lat, Longitude: cached.Lng}, true, nil
}

// Set caches coords for pincode with the given ttl.
func (s *RedisStore) Set(ctx context.Context, pincode string, coords entity.Coordinates, ttl time.Duration) error {
	raw, err := json.Marshal(cachedCoordinates{Lat: coords.Latitude, Lng: coords.Longitude})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := s.client.Set(ctx, cacheKeyPrefix+pincode, raw, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}

	return nil
}
