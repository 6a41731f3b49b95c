// Package model holds the GORM persistence models. PII columns carry ciphertext.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfileColumns are the columns shared by every profile table. EmailHash is
// the keyed blind index of the normalised email address.
type ProfileColumns struct {
	Name         string   `gorm:"column:name;type:text;not null"`
	EmailAddress string   `gorm:"column:email_address;type:text;not null"`
	EmailHash    string   `gorm:"column:email_hash;type:varchar(64);not null"`
	AddressLine1 string   `gorm:"column:address_line1;type:text"`
	AddressLine2 string   `gorm:"column:address_line2;type:text"`
	PhoneNumber  string   `gorm:"column:phone_number;type:text"`
	Pincode      string   `gorm:"column:pincode;type:text"`
	Latitude     *float64 `gorm:"column:latitude"`
	Longitude    *float64 `gorm:"column:longitude"`
	Deleted      bool     `gorm:"column:deleted;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CustomerModel mirrors the 'customers' table.
type CustomerModel struct {
	ID uuid.UUID `gorm:"column:customer_id;type:uuid;primaryKey"`

	ProfileColumns `gorm:"embedded"`

	RewardPoints decimal.Decimal `gorm:"column:reward_points;type:numeric(19,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// MerchantModel mirrors the 'merchants' table.
type MerchantModel struct {
	ID uuid.UUID `gorm:"column:merchant_id;type:uuid;primaryKey"`

	ProfileColumns `gorm:"embedded"`

	Blacklisted bool `gorm:"column:blacklisted;not null"`
}

// TableName explicitly sets the table name for GORM.
func (MerchantModel) TableName() string {
	return "merchants"
}

// DeliveryPartnerModel mirrors the 'delivery_partners' table.
type DeliveryPartnerModel struct {
	ID uuid.UUID `gorm:"column:delivery_partner_id;type:uuid;primaryKey"`

	ProfileColumns `gorm:"embedded"`

	Blacklisted bool `gorm:"column:blacklisted;not null"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryPartnerModel) TableName() string {
	return "delivery_partners"
}
