package postgres

import (
	"context"
	"testing"

	"profile/internal/domain/entity"
	"profile/internal/infra/crypto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func newTestCodec(t *testing.T) *FieldCodec {
	t.Helper()

	cipher, err := crypto.NewCodec(testKey)
	require.NoError(t, err)
	index, err := crypto.NewEmailIndex(testKey)
	require.NoError(t, err)

	return NewFieldCodec(cipher, index)
}

// newTestDB opens a migrated in-memory SQLite database. A single connection
// keeps every statement on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func newCustomer(name, email string) *entity.Customer {
	return &entity.Customer{
		ProfileBase: entity.ProfileBase{
			Name:         name,
			EmailAddress: email,
			AddressLine1: "12 Orchard Road",
			AddressLine2: "#04-01",
			PhoneNumber:  "+65 6123 4567",
			Pincode:      "238801",
			Coordinates:  &entity.Coordinates{Latitude: 1.3048, Longitude: 103.8318},
		},
		RewardPoints: decimal.NewFromInt(0),
	}
}

func newMerchant(name, email string) *entity.Merchant {
	return &entity.Merchant{
		ProfileBase: entity.ProfileBase{
			Name:         name,
			EmailAddress: email,
			Pincode:      "560001",
			Coordinates:  &entity.Coordinates{Latitude: 12.97, Longitude: 77.59},
		},
	}
}
