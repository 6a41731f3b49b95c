// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"profile/internal/domain/entity"
	domainerrors "profile/internal/domain/errors"
	"profile/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db    *gorm.DB
	codec *FieldCodec
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object (*gorm.Tx) and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx    *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
	codec *FieldCodec
}

// ProfileRepo returns the store for kind bound to the transaction.
func (f *gormRepositoryFactory) ProfileRepo(kind entity.Kind) (repository.ProfileRepository, error) {
	switch kind {
	case entity.KindCustomer:
		return NewCustomerRepository(f.tx, f.codec), nil
	case entity.KindMerchant:
		return NewMerchantRepository(f.tx, f.codec), nil
	case entity.KindDeliveryPartner:
		return NewDeliveryPartnerRepository(f.tx, f.codec), nil
	default:
		return nil, errors.Wrapf(domainerrors.ErrInvalidProfileKind, "no store for kind %q", kind)
	}
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB, codec *FieldCodec) repository.TransactionManager {
	return &gormTransactionManager{db: db, codec: codec}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// Roll back if the callback panics, then re-panic for the caller.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx, codec: tm.codec}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Return the original business error alongside the rollback failure.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err // Return the original business error.
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
