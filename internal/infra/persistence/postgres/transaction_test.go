package postgres

import (
	"context"
	"testing"

	"profile/internal/domain/entity"
	domainerrors "profile/internal/domain/errors"
	"profile/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	codec := newTestCodec(t)
	tm := NewTransactionManager(db, codec)

	customer := newCustomer("Jane Doe", "jane@example.com")
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo, err := f.ProfileRepo(entity.KindCustomer)
		if err != nil {
			return err
		}

		return repo.Save(ctx, customer)
	})
	require.NoError(t, err)

	_, err = NewCustomerRepository(db, codec).FindByID(ctx, customer.ID)
	assert.NoError(t, err)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	codec := newTestCodec(t)
	tm := NewTransactionManager(db, codec)
	boom := errors.New("boom")

	customer := newCustomer("Jane Doe", "jane@example.com")
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo, err := f.ProfileRepo(entity.KindCustomer)
		if err != nil {
			return err
		}
		if err := repo.Save(ctx, customer); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = NewCustomerRepository(db, codec).FindByID(ctx, customer.ID)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	codec := newTestCodec(t)
	tm := NewTransactionManager(db, codec)

	customer := newCustomer("Jane Doe", "jane@example.com")
	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			repo, _ := f.ProfileRepo(entity.KindCustomer)
			_ = repo.Save(ctx, customer)
			panic("boom")
		})
	})

	_, err := NewCustomerRepository(db, codec).FindByID(ctx, customer.ID)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestRepositoryFactory_ProfileRepo(t *testing.T) {
	factory := &gormRepositoryFactory{tx: newTestDB(t), codec: newTestCodec(t)}

	for _, kind := range entity.LookupOrder {
		repo, err := factory.ProfileRepo(kind)
		require.NoError(t, err)
		assert.Equal(t, kind, repo.Kind())
	}

	_, err := factory.ProfileRepo(entity.Kind("admin"))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidProfileKind))
}
