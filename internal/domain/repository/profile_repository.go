// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"profile/internal/domain/entity"
	"profile/internal/errors"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no non-deleted profile matches a lookup.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists the profiles of a single kind. Reads never return
// soft-deleted records. Implementations hand plaintext to callers and keep PII
// encrypted at rest.
type ProfileRepository interface {
	// Kind returns the profile kind this repository stores.
	Kind() entity.Kind

	// FindByID retrieves a non-deleted profile by its identity.
	FindByID(ctx context.Context, id uuid.UUID) (entity.Profile, error)

	// FindByEmail retrieves a non-deleted profile by email address.
	FindByEmail(ctx context.Context, email string) (entity.Profile, error)

	// ListAll returns every non-deleted profile.
	ListAll(ctx context.Context) ([]entity.Profile, error)

	// ListPage returns one zero-based page of non-deleted profiles.
	ListPage(ctx context.Context, page, size int) (*entity.Page, error)

	// Save upserts the profile by identity, assigning one when it is nil.
	// Generated identity and timestamps are written back into the profile.
	Save(ctx context.Context, profile entity.Profile) error
}
