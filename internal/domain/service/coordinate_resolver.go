package service

import (
	"context"

	"profile/internal/domain/entity"
)

// CoordinateResolver turns a pincode into coordinates.
//
// Implementations return an error matching domainerrors.ErrCoordinatesNotFound
// when the lookup has no data for the pincode, and one matching
// domainerrors.ErrLocationService when the lookup itself fails.
type CoordinateResolver interface {
	Resolve(ctx context.Context, pincode string) (entity.Coordinates, error)
}
