// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "profile/internal/delivery/context"
	"profile/internal/domain/entity"
	domainerrors "profile/internal/domain/errors"
	"profile/internal/domain/repository"
	"profile/internal/domain/service"
	"profile/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// blacklistKinds are searched, in order, when a blacklist change names no kind.
var blacklistKinds = []entity.Kind{entity.KindMerchant, entity.KindDeliveryPartner}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	resolver  service.CoordinateResolver
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	resolver service.CoordinateResolver,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		resolver:  resolver,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProfile registers a new profile of the payload's kind.
func (srv *profileService) CreateProfile(ctx context.Context, profile entity.Profile) (entity.Profile, error) {
	if entity.IsNil(profile) {
		return nil, errors.Wrap(domainerrors.ErrInvalidProfileKind, "profile is required")
	}

	resetServerFields(profile)
	base := profile.Base()

	if err := srv.resolveCoordinates(ctx, base); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo, err := repoFactory.ProfileRepo(profile.Kind())
		if err != nil {
			return err
		}

		// 1. Reject an email already held by an active profile of this kind
		_, err = repo.FindByEmail(ctx, base.EmailAddress)
		switch {
		case err == nil:
			return errors.Wrapf(domainerrors.ErrEmailAlreadyRegistered, "%s email taken", profile.Kind())
		case !errors.Is(err, repository.ErrProfileNotFound):
			return errors.Wrap(err, "failed to check email")
		}

		// 2. Persist; the store's unique index catches concurrent registrations
		return repo.Save(ctx, profile)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}

	srv.log(ctx).InfoContext(ctx, "Profile created", slog.Any("profile", profile))
	srv.publish(ctx, service.ProfileCreated, profile)

	return profile, nil
}

// UpdateProfile replaces the mutable fields of an existing profile. Name and
// email are immutable; server-controlled fields keep their stored values.
func (srv *profileService) UpdateProfile(ctx context.Context, id uuid.UUID, profile entity.Profile) (entity.Profile, error) {
	if entity.IsNil(profile) {
		return nil, errors.Wrap(domainerrors.ErrInvalidProfileKind, "profile is required")
	}

	base := profile.Base()
	if base.ID != uuid.Nil && base.ID != id {
		return nil, errors.Wrapf(domainerrors.ErrProfileIDMismatch, "path id %s, payload id %s", id, base.ID)
	}

	kind := profile.Kind()

	// 1. Validate against the stored record before calling out for coordinates
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		existing, err := findActive(ctx, repoFactory, kind, id)
		if err != nil {
			return err
		}

		return checkImmutable(existing, profile)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	// 2. Coordinates are re-resolved on every update
	if err := srv.resolveCoordinates(ctx, base); err != nil {
		return nil, err
	}

	// 3. Re-read and save in one transaction
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		existing, err := findActive(ctx, repoFactory, kind, id)
		if err != nil {
			return err
		}
		if err := checkImmutable(existing, profile); err != nil {
			return err
		}

		carryOverServerFields(profile, existing)

		repo, err := repoFactory.ProfileRepo(kind)
		if err != nil {
			return err
		}

		return repo.Save(ctx, profile)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).InfoContext(ctx, "Profile updated", slog.Any("profile", profile))
	srv.publish(ctx, service.ProfileUpdated, profile)

	return profile, nil
}

// DeleteProfile soft-deletes the first active match among kinds.
func (srv *profileService) DeleteProfile(ctx context.Context, id uuid.UUID, kinds ...entity.Kind) error {
	if len(kinds) == 0 {
		kinds = entity.LookupOrder
	}

	profile, err := srv.mutateFirst(ctx, id, kinds, func(p entity.Profile) {
		p.Base().Deleted = true
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete profile")
	}

	srv.log(ctx).InfoContext(ctx, "Profile deleted",
		slog.String("kind", profile.Kind().String()),
		slog.String("id", id.String()),
	)
	srv.publish(ctx, service.ProfileDeleted, profile)

	return nil
}

// BlacklistProfile sets the blacklist gate on the first active match among kinds.
func (srv *profileService) BlacklistProfile(ctx context.Context, id uuid.UUID, kinds ...entity.Kind) error {
	return srv.setBlacklisted(ctx, id, true, kinds)
}

// UnblacklistProfile clears the blacklist gate on the first active match among kinds.
func (srv *profileService) UnblacklistProfile(ctx context.Context, id uuid.UUID, kinds ...entity.Kind) error {
	return srv.setBlacklisted(ctx, id, false, kinds)
}

func (srv *profileService) setBlacklisted(ctx context.Context, id uuid.UUID, blacklisted bool, kinds []entity.Kind) error {
	if len(kinds) == 0 {
		kinds = blacklistKinds
	}
	for _, kind := range kinds {
		if !kind.SupportsBlacklist() {
			return errors.Wrapf(domainerrors.ErrInvalidProfileKind, "%s profiles cannot be blacklisted", kind)
		}
	}

	profile, err := srv.mutateFirst(ctx, id, kinds, func(p entity.Profile) {
		p.(entity.Blacklistable).SetBlacklisted(blacklisted)
	})
	if err != nil {
		return errors.Wrap(err, "failed to change blacklist flag")
	}

	eventType := service.ProfileUnblacklisted
	if blacklisted {
		eventType = service.ProfileBlacklisted
	}

	srv.log(ctx).InfoContext(ctx, "Profile blacklist changed",
		slog.String("kind", profile.Kind().String()),
		slog.String("id", id.String()),
		slog.Bool("blacklisted", blacklisted),
	)
	srv.publish(ctx, eventType, profile)

	return nil
}

// GetProfileByID retrieves an active profile of the tagged kind.
func (srv *profileService) GetProfileByID(ctx context.Context, kind string, id uuid.UUID) (entity.Profile, error) {
	parsed, err := entity.ParseKind(kind)
	if err != nil {
		return nil, err
	}

	var profile entity.Profile
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findActive(ctx, repoFactory, parsed, id)
		if err != nil {
			return err
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// GetProfileByEmailAddress retrieves an active profile of the tagged kind by email.
func (srv *profileService) GetProfileByEmailAddress(ctx context.Context, email, kind string) (entity.Profile, error) {
	parsed, err := entity.ParseKind(kind)
	if err != nil {
		return nil, err
	}

	var profile entity.Profile
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo, err := repoFactory.ProfileRepo(parsed)
		if err != nil {
			return err
		}

		found, err := repo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrapf(domainerrors.ErrInvalidProfileID, "no %s with email %s", parsed, entity.MaskEmail(email))
			}

			return errors.Wrap(err, "failed to find profile by email")
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// GetProfilesByType lists every active profile of the tagged kind.
func (srv *profileService) GetProfilesByType(ctx context.Context, kind string) ([]entity.Profile, error) {
	parsed, err := entity.ParseKind(kind)
	if err != nil {
		return nil, err
	}

	var profiles []entity.Profile
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo, err := repoFactory.ProfileRepo(parsed)
		if err != nil {
			return err
		}

		profiles, err = repo.ListAll(ctx)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return profiles, nil
}

// GetProfilesWithPagination returns one zero-based page of the tagged kind.
func (srv *profileService) GetProfilesWithPagination(ctx context.Context, kind string, page, size int) (*entity.Page, error) {
	parsed, err := entity.ParseKind(kind)
	if err != nil {
		return nil, err
	}

	var result *entity.Page
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo, err := repoFactory.ProfileRepo(parsed)
		if err != nil {
			return err
		}

		result, err = repo.ListPage(ctx, page, size)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to page profiles")
	}

	return result, nil
}

// mutateFirst applies mutate to the first active profile with id among kinds
// and saves it, all inside one transaction.
func (srv *profileService) mutateFirst(
	ctx context.Context,
	id uuid.UUID,
	kinds []entity.Kind,
	mutate func(entity.Profile),
) (entity.Profile, error) {
	var target entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		for _, kind := range kinds {
			repo, err := repoFactory.ProfileRepo(kind)
			if err != nil {
				return err
			}

			found, err := repo.FindByID(ctx, id)
			if errors.Is(err, repository.ErrProfileNotFound) {
				continue
			}
			if err != nil {
				return errors.Wrapf(err, "failed to find %s", kind)
			}

			mutate(found)
			if err := repo.Save(ctx, found); err != nil {
				return err
			}
			target = found

			return nil
		}

		return errors.Wrapf(domainerrors.ErrInvalidProfileID, "no active profile with id %s", id)
	})
	if err != nil {
		return nil, err
	}

	return target, nil
}

// resolveCoordinates looks up the pincode and stores the result on base.
// Unclassified resolver failures are reported as a location service error.
func (srv *profileService) resolveCoordinates(ctx context.Context, base *entity.ProfileBase) error {
	coords, err := srv.resolver.Resolve(ctx, base.Pincode)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrCoordinatesNotFound) && !errors.Is(err, domainerrors.ErrLocationService) {
			err = errors.Wrap(domainerrors.ErrLocationService, err.Error())
		}

		return errors.Wrapf(err, "failed to resolve pincode %s", base.Pincode)
	}

	base.Coordinates = &coords

	return nil
}

// publish announces a persisted change. Failures are logged, not returned.
func (srv *profileService) publish(ctx context.Context, eventType service.ProfileEventType, profile entity.Profile) {
	event := &service.ProfileEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		ProfileID:  profile.Base().ID.String(),
		Kind:       profile.Kind().String(),
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishProfileEvent(ctx, event); err != nil {
		srv.log(ctx).WarnContext(ctx, "Failed to publish profile event",
			slog.String("event_type", string(eventType)),
			slog.String("profile_id", event.ProfileID),
			slog.Any("error", err),
		)
	}
}

func findActive(ctx context.Context, repoFactory repository.RepositoryFactory, kind entity.Kind, id uuid.UUID) (entity.Profile, error) {
	repo, err := repoFactory.ProfileRepo(kind)
	if err != nil {
		return nil, err
	}

	profile, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrInvalidProfileID, "no %s with id %s", kind, id)
		}

		return nil, errors.Wrapf(err, "failed to find %s", kind)
	}

	return profile, nil
}

func checkImmutable(existing, incoming entity.Profile) error {
	if existing.Base().Name != incoming.Base().Name {
		return errors.WithStack(domainerrors.ErrProfileNameImmutable)
	}
	if existing.Base().EmailAddress != incoming.Base().EmailAddress {
		return errors.WithStack(domainerrors.ErrEmailImmutable)
	}

	return nil
}

// resetServerFields clears everything a caller may not set on registration.
func resetServerFields(profile entity.Profile) {
	base := profile.Base()
	base.ID = uuid.Nil
	base.Deleted = false
	base.Coordinates = nil
	base.CreatedAt = time.Time{}
	base.UpdatedAt = time.Time{}

	switch p := profile.(type) {
	case *entity.Customer:
		p.RewardPoints = decimal.Zero
	case *entity.Merchant:
		p.Blacklisted = false
	case *entity.DeliveryPartner:
		p.Blacklisted = false
	}
}

// carryOverServerFields copies the server-controlled fields of existing onto
// incoming. Both are of the same kind.
func carryOverServerFields(incoming, existing entity.Profile) {
	dst, src := incoming.Base(), existing.Base()
	dst.ID = src.ID
	dst.Deleted = src.Deleted
	dst.CreatedAt = src.CreatedAt

	switch p := incoming.(type) {
	case *entity.Customer:
		p.RewardPoints = existing.(*entity.Customer).RewardPoints
	case *entity.Merchant:
		p.Blacklisted = existing.(*entity.Merchant).Blacklisted
	case *entity.DeliveryPartner:
		p.Blacklisted = existing.(*entity.DeliveryPartner).Blacklisted
	}
}
