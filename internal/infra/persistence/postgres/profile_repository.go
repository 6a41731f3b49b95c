package postgres

import (
	"context"
	"math"
	"time"

	"profile/internal/domain/entity"
	domainerrors "profile/internal/domain/errors"
	"profile/internal/domain/repository"
	"profile/internal/infra/persistence/model"
	"profile/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gen/field"
	"gorm.io/gorm"
)

// profileDo is the subset of a generated query object the stores rely on.
// Each generated I<Model>Do satisfies it for its own model.
type profileDo[M any, D any] interface {
	Where(conds ...gen.Condition) D
	Order(conds ...field.Expr) D
	Offset(offset int) D
	Limit(limit int) D
	Count() (count int64, err error)
	First() (*M, error)
	Find() ([]*M, error)
	Create(values ...*M) error
	Save(values ...*M) error
}

// profileFields are the generated columns every profile table shares.
type profileFields struct {
	ID        field.Field
	EmailHash field.String
	Deleted   field.Bool
	CreatedAt field.Time
}

// profileTable describes how one profile kind maps onto its generated query.
type profileTable[M any, D profileDo[M, D]] struct {
	kind       entity.Kind
	do         func(q *query.Query, ctx context.Context) D
	fields     func(q *query.Query) profileFields
	columns    func(*M) *model.ProfileColumns
	toDomain   func(*M, *FieldCodec) (entity.Profile, error)
	fromDomain func(entity.Profile, *FieldCodec) (*M, error)
}

//nolint:gochecknoglobals
var (
	customerTable = profileTable[model.CustomerModel, query.ICustomerModelDo]{
		kind: entity.KindCustomer,
		do: func(q *query.Query, ctx context.Context) query.ICustomerModelDo {
			return q.CustomerModel.WithContext(ctx)
		},
		fields: func(q *query.Query) profileFields {
			t := &q.CustomerModel

			return profileFields{ID: t.ID, EmailHash: t.EmailHash, Deleted: t.Deleted, CreatedAt: t.CreatedAt}
		},
		columns:    func(m *model.CustomerModel) *model.ProfileColumns { return &m.ProfileColumns },
		toDomain:   toCustomerDomain,
		fromDomain: fromCustomerDomain,
	}

	merchantTable = profileTable[model.MerchantModel, query.IMerchantModelDo]{
		kind: entity.KindMerchant,
		do: func(q *query.Query, ctx context.Context) query.IMerchantModelDo {
			return q.MerchantModel.WithContext(ctx)
		},
		fields: func(q *query.Query) profileFields {
			t := &q.MerchantModel

			return profileFields{ID: t.ID, EmailHash: t.EmailHash, Deleted: t.Deleted, CreatedAt: t.CreatedAt}
		},
		columns:    func(m *model.MerchantModel) *model.ProfileColumns { return &m.ProfileColumns },
		toDomain:   toMerchantDomain,
		fromDomain: fromMerchantDomain,
	}

	deliveryPartnerTable = profileTable[model.DeliveryPartnerModel, query.IDeliveryPartnerModelDo]{
		kind: entity.KindDeliveryPartner,
		do: func(q *query.Query, ctx context.Context) query.IDeliveryPartnerModelDo {
			return q.DeliveryPartnerModel.WithContext(ctx)
		},
		fields: func(q *query.Query) profileFields {
			t := &q.DeliveryPartnerModel

			return profileFields{ID: t.ID, EmailHash: t.EmailHash, Deleted: t.Deleted, CreatedAt: t.CreatedAt}
		},
		columns:    func(m *model.DeliveryPartnerModel) *model.ProfileColumns { return &m.ProfileColumns },
		toDomain:   toDeliveryPartnerDomain,
		fromDomain: fromDeliveryPartnerDomain,
	}
)

// profileRepository implements repository.ProfileRepository for one kind
// using the GORM Gen query builder.
type profileRepository[M any, D profileDo[M, D]] struct {
	q      *query.Query
	codec  *FieldCodec
	table  profileTable[M, D]
	fields profileFields
}

func newProfileRepository[M any, D profileDo[M, D]](db *gorm.DB, codec *FieldCodec, table profileTable[M, D]) *profileRepository[M, D] {
	q := query.Use(db)

	return &profileRepository[M, D]{q: q, codec: codec, table: table, fields: table.fields(q)}
}

// NewCustomerRepository is the constructor for the customers store.
func NewCustomerRepository(db *gorm.DB, codec *FieldCodec) repository.ProfileRepository {
	return newProfileRepository(db, codec, customerTable)
}

// NewMerchantRepository is the constructor for the merchants store.
func NewMerchantRepository(db *gorm.DB, codec *FieldCodec) repository.ProfileRepository {
	return newProfileRepository(db, codec, merchantTable)
}

// NewDeliveryPartnerRepository is the constructor for the delivery partners store.
func NewDeliveryPartnerRepository(db *gorm.DB, codec *FieldCodec) repository.ProfileRepository {
	return newProfileRepository(db, codec, deliveryPartnerTable)
}

// Kind returns the profile kind this repository stores.
func (repo *profileRepository[M, D]) Kind() entity.Kind {
	return repo.table.kind
}

// active scopes a query to non-deleted rows.
func (repo *profileRepository[M, D]) active(ctx context.Context) D {
	return repo.table.do(repo.q, ctx).Where(repo.fields.Deleted.Is(false))
}

// FindByID retrieves a non-deleted profile by its identity.
func (repo *profileRepository[M, D]) FindByID(ctx context.Context, id uuid.UUID) (entity.Profile, error) {
	m, err := repo.active(ctx).Where(repo.fields.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profile by id")
	}

	return repo.table.toDomain(m, repo.codec)
}

// FindByEmail retrieves a non-deleted profile through the email blind index.
func (repo *profileRepository[M, D]) FindByEmail(ctx context.Context, email string) (entity.Profile, error) {
	digest := repo.codec.emailDigest(email)
	if digest == "" {
		return nil, repository.ErrProfileNotFound
	}

	m, err := repo.active(ctx).Where(repo.fields.EmailHash.Eq(digest)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profile by email")
	}

	return repo.table.toDomain(m, repo.codec)
}

// ListAll returns every non-deleted profile, oldest first.
func (repo *profileRepository[M, D]) ListAll(ctx context.Context) ([]entity.Profile, error) {
	models, err := repo.active(ctx).Order(repo.order()...).Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list profiles")
	}

	return repo.toDomainList(models)
}

// ListPage returns one zero-based page of non-deleted profiles in a stable order.
func (repo *profileRepository[M, D]) ListPage(ctx context.Context, page, size int) (*entity.Page, error) {
	if page < 0 || size < 1 {
		return nil, domainerrors.ErrInvalidPagination.WithDetails("page must be >= 0 and size >= 1")
	}
	if page > math.MaxInt/size {
		return nil, domainerrors.ErrInvalidPagination.WithDetails("page is out of range")
	}

	total, err := repo.active(ctx).Count()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count profiles")
	}

	models, err := repo.active(ctx).
		Order(repo.order()...).
		Offset(page * size).
		Limit(size).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list profiles page")
	}

	items, err := repo.toDomainList(models)
	if err != nil {
		return nil, err
	}

	return entity.NewPage(items, page, size, total), nil
}

// Save inserts the profile when it has no identity yet and upserts it otherwise.
// The generated identity and timestamps are written back into the profile.
func (repo *profileRepository[M, D]) Save(ctx context.Context, profile entity.Profile) error {
	if entity.IsNil(profile) || profile.Kind() != repo.table.kind {
		return errors.Wrapf(domainerrors.ErrInvalidProfileKind, "store for %s cannot save this profile", repo.table.kind)
	}

	base := profile.Base()
	isNew := base.ID == uuid.Nil
	if isNew {
		base.ID = uuid.New()
	}

	m, err := repo.table.fromDomain(profile, repo.codec)
	if err != nil {
		if isNew {
			base.ID = uuid.Nil
		}

		return err
	}

	// Refreshed by GORM on write.
	repo.table.columns(m).UpdatedAt = time.Time{}

	do := repo.table.do(repo.q, ctx)
	if isNew {
		err = do.Create(m)
	} else {
		err = do.Save(m)
	}
	if err != nil {
		if isNew {
			base.ID = uuid.Nil
		}
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("active email index violated")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save profile")
	}

	cols := repo.table.columns(m)
	base.CreatedAt = cols.CreatedAt
	base.UpdatedAt = cols.UpdatedAt

	return nil
}

func (repo *profileRepository[M, D]) order() []field.Expr {
	return []field.Expr{repo.fields.CreatedAt, repo.fields.ID}
}

func (repo *profileRepository[M, D]) toDomainList(models []*M) ([]entity.Profile, error) {
	profiles := make([]entity.Profile, 0, len(models))
	for _, m := range models {
		profile, err := repo.table.toDomain(m, repo.codec)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}
