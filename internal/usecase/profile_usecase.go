// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"profile/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase routes profile operations to the store of the matching kind.
//
// Mutations take typed profiles or kinds. Reads take the kind as a tag
// ("customer", "merchant", "deliveryPartner"), matched case-insensitively.
type ProfileUsecase interface {
	// CreateProfile registers a new profile and returns it with its assigned ID.
	CreateProfile(ctx context.Context, profile entity.Profile) (entity.Profile, error)

	// UpdateProfile replaces the mutable fields of the profile identified by id.
	UpdateProfile(ctx context.Context, id uuid.UUID, profile entity.Profile) (entity.Profile, error)

	// DeleteProfile soft-deletes the first active match among kinds, or among
	// all kinds when none are given.
	DeleteProfile(ctx context.Context, id uuid.UUID, kinds ...entity.Kind) error

	// BlacklistProfile sets the blacklist flag on a merchant or delivery partner.
	BlacklistProfile(ctx context.Context, id uuid.UUID, kinds ...entity.Kind) error

	// UnblacklistProfile clears the blacklist flag on a merchant or delivery partner.
	UnblacklistProfile(ctx context.Context, id uuid.UUID, kinds ...entity.Kind) error

	GetProfileByID(ctx context.Context, kind string, id uuid.UUID) (entity.Profile, error)
	GetProfileByEmailAddress(ctx context.Context, email, kind string) (entity.Profile, error)
	GetProfilesByType(ctx context.Context, kind string) ([]entity.Profile, error)
	GetProfilesWithPagination(ctx context.Context, kind string, page, size int) (*entity.Page, error)
}
