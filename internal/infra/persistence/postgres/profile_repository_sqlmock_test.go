package postgres

import (
	"context"
	"database/sql"
	"testing"

	domainerrors "profile/internal/domain/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestProfileRepository_PostgresUniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db, newTestCodec(t))

	mock.ExpectExec(`INSERT INTO "customers"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_customers_active_email_hash"})

	err := repo.Save(context.Background(), newCustomer("Jane Doe", "jane@example.com"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_DatabaseFailures(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db, newTestCodec(t))

	mock.ExpectQuery(`SELECT \* FROM "customers"`).WillReturnError(sql.ErrConnDone)
	_, err := repo.FindByID(ctx, uuid.New())
	var dbErr *domainerrors.DatabaseExecuteError
	require.True(t, errors.As(err, &dbErr))
	assert.ErrorIs(t, err, sql.ErrConnDone)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "customers"`).WillReturnError(sql.ErrConnDone)
	_, err = repo.ListPage(ctx, 0, 10)
	assert.True(t, errors.As(err, &dbErr))

	mock.ExpectExec(`INSERT INTO "customers"`).WillReturnError(sql.ErrConnDone)
	err = repo.Save(ctx, newCustomer("Jane Doe", "jane@example.com"))
	assert.True(t, errors.As(err, &dbErr))
	assert.False(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))

	assert.NoError(t, mock.ExpectationsWereMet())
}
