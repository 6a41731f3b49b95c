package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	deliverycontext "profile/internal/delivery/context"
	"profile/internal/domain/entity"
	domainerrors "profile/internal/domain/errors"
	"profile/internal/domain/repository"
	"profile/internal/domain/service"
	mockRepo "profile/internal/mocks/repository"
	mockService "profile/internal/mocks/service"
	"profile/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var bangalore = entity.Coordinates{Latitude: 12.9, Longitude: 77.6}

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	resolver  *mockService.MockCoordinateResolver
	publisher *mockService.MockEventPublisher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	resolver := mockService.NewMockCoordinateResolver(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return profileServiceFixtures{
		service:   NewProfileService(txManager, resolver, publisher, logger),
		txManager: txManager,
		factory:   factory,
		resolver:  resolver,
		publisher: publisher,
	}
}

// repoFor registers a store mock for kind on the fixture's factory.
func (f profileServiceFixtures) repoFor(t *testing.T, kind entity.Kind) *mockRepo.MockProfileRepository {
	repo := mockRepo.NewMockProfileRepository(t)
	f.factory.EXPECT().ProfileRepo(kind).Return(repo, nil).Maybe()

	return repo
}

func (f profileServiceFixtures) expectEvent(eventType service.ProfileEventType) *mockService.MockEventPublisher_PublishProfileEvent_Call {
	return f.publisher.EXPECT().PublishProfileEvent(mock.Anything, mock.MatchedBy(func(e *service.ProfileEvent) bool {
		return e.Type == eventType
	}))
}

func newMerchantInput() *entity.Merchant {
	return &entity.Merchant{
		ProfileBase: entity.ProfileBase{
			Name:         "Corner Shop",
			EmailAddress: "shop@example.com",
			AddressLine1: "1 MG Road",
			PhoneNumber:  "+91 80 1234 5678",
			Pincode:      "560001",
		},
	}
}

func newStoredCustomer(id uuid.UUID) *entity.Customer {
	return &entity.Customer{
		ProfileBase: entity.ProfileBase{
			ID:           id,
			Name:         "Jane Doe",
			EmailAddress: "jane@example.com",
			AddressLine1: "1 MG Road",
			Pincode:      "560001",
			Coordinates:  &bangalore,
			CreatedAt:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		RewardPoints: decimal.RequireFromString("150.50"),
	}
}

func TestProfileService_CreateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	repo := fx.repoFor(t, entity.KindMerchant)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	input := newMerchantInput()
	input.ID = uuid.New()
	input.Blacklisted = true
	input.Deleted = true
	assignedID := uuid.New()

	fx.resolver.EXPECT().Resolve(ctx, "560001").Return(bangalore, nil)
	repo.EXPECT().FindByEmail(ctx, "shop@example.com").Return(nil, repository.ErrProfileNotFound)
	repo.EXPECT().Save(ctx, mock.Anything).
		Run(func(_ context.Context, p entity.Profile) {
			assert.Equal(t, uuid.Nil, p.Base().ID)
			p.Base().ID = assignedID
		}).
		Return(nil)
	fx.publisher.EXPECT().PublishProfileEvent(ctx, mock.Anything).
		Run(func(_ context.Context, e *service.ProfileEvent) {
			assert.Equal(t, service.ProfileCreated, e.Type)
			assert.Equal(t, assignedID.String(), e.ProfileID)
			assert.Equal(t, "merchant", e.Kind)
			assert.Equal(t, "req-42", e.RequestID)
			assert.NotEmpty(t, e.EventID)
		}).
		Return(nil)

	created, err := fx.service.CreateProfile(ctx, input)

	require.NoError(t, err)
	merchant := created.(*entity.Merchant)
	assert.Equal(t, assignedID, merchant.ID)
	assert.Equal(t, &bangalore, merchant.Coordinates)
	assert.False(t, merchant.Blacklisted)
	assert.False(t, merchant.Deleted)
}

func TestProfileService_CreateProfile_ResetsRewardPoints(t *testing.T) {
	fx := createTestProfileService(t)
	repo := fx.repoFor(t, entity.KindCustomer)

	ctx := context.Background()
	input := newStoredCustomer(uuid.Nil)
	input.RewardPoints = decimal.NewFromInt(1000)

	fx.resolver.EXPECT().Resolve(ctx, "560001").Return(bangalore, nil)
	repo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(nil, repository.ErrProfileNotFound)
	repo.EXPECT().Save(ctx, mock.Anything).Return(nil)
	fx.expectEvent(service.ProfileCreated).Return(nil)

	created, err := fx.service.CreateProfile(ctx, input)

	require.NoError(t, err)
	assert.True(t, created.(*entity.Customer).RewardPoints.IsZero())
	assert.True(t, created.Base().CreatedAt.IsZero())
}

func TestProfileService_CreateProfile_DuplicateEmail(t *testing.T) {
	fx := createTestProfileService(t)
	repo := fx.repoFor(t, entity.KindMerchant)

	ctx := context.Background()
	fx.resolver.EXPECT().Resolve(ctx, "560001").Return(bangalore, nil)
	repo.EXPECT().FindByEmail(ctx, "shop@example.com").Return(newMerchantInput(), nil)

	_, err := fx.service.CreateProfile(ctx, newMerchantInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Email is already registered", appErr.Message())
}

func TestProfileService_CreateProfile_StoreRejectsDuplicate(t *testing.T) {
	fx := createTestProfileService(t)
	repo := fx.repoFor(t, entity.KindMerchant)

	ctx := context.Background()
	fx.resolver.EXPECT().Resolve(ctx, "560001").Return(bangalore, nil)
	repo.EXPECT().FindByEmail(ctx, "shop@example.com").Return(nil, repository.ErrProfileNotFound)
	repo.EXPECT().Save(ctx, mock.Anything).Return(domainerrors.ErrEmailAlreadyRegistered.WrapMessage("customers"))

	_, err := fx.service.CreateProfile(ctx, newMerchantInput())

	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestProfileService_CreateProfile_ResolverFailures(t *testing.T) {
	tests := []struct {
		name        string
		resolverErr error
		want        error
	}{
		{name: "not found", resolverErr: errors.WithStack(domainerrors.ErrCoordinatesNotFound), want: domainerrors.ErrCoordinatesNotFound},
		{name: "service error", resolverErr: errors.WithStack(domainerrors.ErrLocationService), want: domainerrors.ErrLocationService},
		{name: "unclassified", resolverErr: errors.New("dial tcp: refused"), want: domainerrors.ErrLocationService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			ctx := context.Background()

			fx.resolver.EXPECT().Resolve(ctx, "560001").Return(entity.Coordinates{}, tt.resolverErr)

			_, err := fx.service.CreateProfile(ctx, newMerchantInput())

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
			fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestProfileService_CreateProfile_NilProfile(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.CreateProfile(context.Background(), nil)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidProfileKind))

	var merchant *entity.Merchant
	_, err = fx.service.CreateProfile(context.Background(), merchant)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidProfileKind))
}

func TestProfileService_CreateProfile_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestProfileService(t)
	repo := fx.repoFor(t, entity.KindMerchant)

	ctx := context.Background()
	fx.resolver.EXPECT().Resolve(ctx, "560001").Return(bangalore, nil)
	repo.EXPECT().FindByEmail(ctx, "shop@example.com").Return(nil, repository.ErrProfileNotFound)
	repo.EXPECT().Save(ctx, mock.Anything).Return(nil)
	fx.expectEvent(service.ProfileCreated).Return(errors.New("broker down"))

	_, err := fx.service.CreateProfile(ctx, newMerchantInput())

	assert.NoError(t, err)
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	repo := fx.repoFor(t, entity.KindCustomer)

	ctx := context.Background()
	id := uuid.New()
	stored := newStoredCustomer(id)
	moved := entity.Coordinates{Latitude: 28.6, Longitude: 77.2}

	incoming := newStoredCustomer(uuid.Nil)
	incoming.AddressLine1 = "2 Janpath"
	incoming.Pincode = "110001"
	incoming.Coordinates = nil
	incoming.CreatedAt = time.Time{}
	incoming.RewardPoints = decimal.NewFromInt(99999)
	incoming.Deleted = true

	repo.EXPECT().FindByID(ctx, id).Return(stored, nil)
	fx.resolver.EXPECT().Resolve(ctx, "110001").Return(moved, nil)
	repo.EXPECT().Save(ctx, mock.Anything).Return(nil)
	fx.expectEvent(service.ProfileUpdated).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, id, incoming)

	require.NoError(t, err)
	customer := updated.(*entity.Customer)
	assert.Equal(t, id, customer.ID)
	assert.Equal(t, "2 Janpath", customer.AddressLine1)
	assert.Equal(t, &moved, customer.Coordinates)
	assert.Equal(t, "150.5", customer.RewardPoints.String())
	assert.Equal(t, stored.CreatedAt, customer.CreatedAt)
	assert.False(t, customer.Deleted)
}

func TestProfileService_UpdateProfile_ResolvesEvenWhenPincodeUnchanged(t *testing.T) {
	fx := createTestProfileService(t)
	repo := fx.repoFor(t, entity.KindCustomer)

	ctx := context.Background()
	id := uuid.New()
	incoming := newStoredCustomer(id)

	repo.EXPECT().FindByID(ctx, id).Return(newStoredCustomer(id), nil)
	fx.resolver.EXPECT().Resolve(ctx, "560001").Return(bangalore, nil).Once()
	repo.EXPECT().Save(ctx, mock.Anything).Return(nil)
	fx.expectEvent(service.ProfileUpdated).Return(nil)

	_, err := fx.service.UpdateProfile(ctx, id, incoming)

	require.NoError(t, err)
}

func TestProfileService_UpdateProfile_KeepsBlacklistFlag(t *testing.T) {
	fx := createTestProfileService(t)
	repo := fx.repoFor(t, entity.KindMerchant)

	ctx := context.Background()
	id := uuid.New()
	stored := newMerchantInput()
	stored.ID = id
	stored.Blacklisted = true

	repo.EXPECT().FindByID(ctx, id).Return(stored, nil)
	fx.resolver.EXPECT().Resolve(ctx, "560001").Return(bangalore, nil)
	repo.EXPECT().Save(ctx, mock.Anything).Return(nil)
	fx.expectEvent(service.ProfileUpdated).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, id, newMerchantInput())

	require.NoError(t, err)
	assert.True(t, updated.(*entity.Merchant).Blacklisted)
}

func TestProfileService_UpdateProfile_Rejections(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name   string
		mutate func(c *entity.Customer)
		stored entity.Profile
		want   error
	}{
		{
			name:   "name changed",
			mutate: func(c *entity.Customer) { c.Name = "Janet Doe" },
			stored: newStoredCustomer(id),
			want:   domainerrors.ErrProfileNameImmutable,
		},
		{
			name:   "email changed",
			mutate: func(c *entity.Customer) { c.EmailAddress = "janet@example.com" },
			stored: newStoredCustomer(id),
			want:   domainerrors.ErrEmailImmutable,
		},
		{
			name:   "missing profile",
			mutate: func(*entity.Customer) {},
			want:   domainerrors.ErrInvalidProfileID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			repo := fx.repoFor(t, entity.KindCustomer)
			ctx := context.Background()

			if tt.stored != nil {
				repo.EXPECT().FindByID(ctx, id).Return(tt.stored, nil)
			} else {
				repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProfileNotFound)
			}

			incoming := newStoredCustomer(id)
			tt.mutate(incoming)

			_, err := fx.service.UpdateProfile(ctx, id, incoming)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
			fx.resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestProfileService_UpdateProfile_IDMismatch(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.UpdateProfile(context.Background(), uuid.New(), newStoredCustomer(uuid.New()))

	assert.True(t, errors.Is(err, domainerrors.ErrProfileIDMismatch))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestProfileService_DeleteProfile_SearchesKindsInOrder(t *testing.T) {
	fx := createTestProfileService(t)
	merchants := fx.repoFor(t, entity.KindMerchant)
	customers := fx.repoFor(t, entity.KindCustomer)
	fx.repoFor(t, entity.KindDeliveryPartner)

	ctx := context.Background()
	id := uuid.New()
	stored := newStoredCustomer(id)

	merchants.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProfileNotFound)
	customers.EXPECT().FindByID(ctx, id).Return(stored, nil)
	customers.EXPECT().Save(ctx, mock.Anything).
		Run(func(_ context.Context, p entity.Profile) {
			assert.True(t, p.Base().Deleted)
		}).
		Return(nil)
	fx.expectEvent(service.ProfileDeleted).Return(nil)

	err := fx.service.DeleteProfile(ctx, id)

	require.NoError(t, err)
	assert.True(t, stored.Deleted)
}

func TestProfileService_DeleteProfile_RestrictedToKind(t *testing.T) {
	fx := createTestProfileService(t)
	partners := fx.repoFor(t, entity.KindDeliveryPartner)

	ctx := context.Background()
	id := uuid.New()
	partners.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProfileNotFound)

	err := fx.service.DeleteProfile(ctx, id, entity.KindDeliveryPartner)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidProfileID))
	fx.factory.AssertNotCalled(t, "ProfileRepo", entity.KindMerchant)
}

func TestProfileService_DeleteProfile_StoreFailure(t *testing.T) {
	fx := createTestProfileService(t)
	merchants := fx.repoFor(t, entity.KindMerchant)

	ctx := context.Background()
	id := uuid.New()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "find merchant")
	merchants.EXPECT().FindByID(ctx, id).Return(nil, dbErr)

	err := fx.service.DeleteProfile(ctx, id)

	var target *domainerrors.DatabaseExecuteError
	assert.True(t, errors.As(err, &target))
}

func TestProfileService_BlacklistRoundTrip(t *testing.T) {
	fx := createTestProfileService(t)
	merchants := fx.repoFor(t, entity.KindMerchant)

	ctx := context.Background()
	id := uuid.New()
	stored := newMerchantInput()
	stored.ID = id

	merchants.EXPECT().FindByID(ctx, id).Return(stored, nil)
	merchants.EXPECT().Save(ctx, stored).Return(nil)
	fx.expectEvent(service.ProfileBlacklisted).Return(nil).Once()
	fx.expectEvent(service.ProfileUnblacklisted).Return(nil).Once()

	require.NoError(t, fx.service.BlacklistProfile(ctx, id))
	assert.True(t, stored.Blacklisted)

	require.NoError(t, fx.service.UnblacklistProfile(ctx, id))
	assert.False(t, stored.Blacklisted)
}

func TestProfileService_BlacklistProfile_FallsThroughToDeliveryPartner(t *testing.T) {
	fx := createTestProfileService(t)
	merchants := fx.repoFor(t, entity.KindMerchant)
	partners := fx.repoFor(t, entity.KindDeliveryPartner)

	ctx := context.Background()
	id := uuid.New()
	stored := &entity.DeliveryPartner{ProfileBase: entity.ProfileBase{ID: id, Name: "Ravi"}}

	merchants.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProfileNotFound)
	partners.EXPECT().FindByID(ctx, id).Return(stored, nil)
	partners.EXPECT().Save(ctx, stored).Return(nil)
	fx.expectEvent(service.ProfileBlacklisted).Return(nil)

	require.NoError(t, fx.service.BlacklistProfile(ctx, id))
	assert.True(t, stored.Blacklisted)
}

func TestProfileService_BlacklistProfile_Rejections(t *testing.T) {
	fx := createTestProfileService(t)
	merchants := fx.repoFor(t, entity.KindMerchant)
	partners := fx.repoFor(t, entity.KindDeliveryPartner)

	ctx := context.Background()
	id := uuid.New()

	err := fx.service.BlacklistProfile(ctx, id, entity.KindCustomer)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidProfileKind))

	merchants.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProfileNotFound)
	partners.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProfileNotFound)

	err = fx.service.UnblacklistProfile(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidProfileID))
}

func TestProfileService_GetProfileByID(t *testing.T) {
	fx := createTestProfileService(t)
	customers := fx.repoFor(t, entity.KindCustomer)

	ctx := context.Background()
	id := uuid.New()
	missing := uuid.New()
	stored := newStoredCustomer(id)

	customers.EXPECT().FindByID(ctx, id).Return(stored, nil)
	customers.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrProfileNotFound)

	got, err := fx.service.GetProfileByID(ctx, "CUSTOMER", id)
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	_, err = fx.service.GetProfileByID(ctx, "customer", missing)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidProfileID))

	_, err = fx.service.GetProfileByID(ctx, "admin", id)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidProfileKind))
}

func TestProfileService_GetProfileByEmailAddress(t *testing.T) {
	fx := createTestProfileService(t)
	partners := fx.repoFor(t, entity.KindDeliveryPartner)

	ctx := context.Background()
	stored := &entity.DeliveryPartner{ProfileBase: entity.ProfileBase{ID: uuid.New(), EmailAddress: "ravi@example.com"}}

	partners.EXPECT().FindByEmail(ctx, "ravi@example.com").Return(stored, nil)
	partners.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrProfileNotFound)

	got, err := fx.service.GetProfileByEmailAddress(ctx, "ravi@example.com", "deliverypartner")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.Base().ID)

	_, err = fx.service.GetProfileByEmailAddress(ctx, "nobody@example.com", "deliveryPartner")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidProfileID))
}

func TestProfileService_Listing(t *testing.T) {
	fx := createTestProfileService(t)
	merchants := fx.repoFor(t, entity.KindMerchant)

	ctx := context.Background()
	all := []entity.Profile{newMerchantInput(), newMerchantInput()}
	page := entity.NewPage(all[:1], 1, 1, 2)

	merchants.EXPECT().ListAll(ctx).Return(all, nil)
	merchants.EXPECT().ListPage(ctx, 1, 1).Return(page, nil)
	merchants.EXPECT().ListPage(ctx, -1, 1).Return(nil, domainerrors.ErrInvalidPagination.WithDetails("page -1"))

	gotAll, err := fx.service.GetProfilesByType(ctx, "merchant")
	require.NoError(t, err)
	assert.Len(t, gotAll, 2)

	gotPage, err := fx.service.GetProfilesWithPagination(ctx, "Merchant", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, gotPage.TotalPages)

	_, err = fx.service.GetProfilesWithPagination(ctx, "merchant", -1, 1)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPagination))

	_, err = fx.service.GetProfilesByType(ctx, "vendor")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidProfileKind))
}
