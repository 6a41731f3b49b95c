package postgres

import (
	"context"
	"fmt"

	"profile/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileTables lists every profile table, used for schema migration.
//
//nolint:gochecknoglobals
var profileTables = []struct {
	model any
	table string
}{
	{&model.CustomerModel{}, model.CustomerModel{}.TableName()},
	{&model.MerchantModel{}, model.MerchantModel{}.TableName()},
	{&model.DeliveryPartnerModel{}, model.DeliveryPartnerModel{}.TableName()},
}

// Migrate creates the profile tables and the partial unique index that keeps
// emails unique among non-deleted rows of each table.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	for _, t := range profileTables {
		if err := db.AutoMigrate(t.model); err != nil {
			return errors.Wrapf(err, "failed to migrate %s", t.table)
		}

		stmt := fmt.Sprintf(
			"CREATE UNIQUE INDEX IF NOT EXISTS uq_%[1]s_active_email_hash ON %[1]s (email_hash) WHERE deleted = false",
			t.table,
		)
		if err := db.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "failed to create active email index on %s", t.table)
		}
	}

	return nil
}
