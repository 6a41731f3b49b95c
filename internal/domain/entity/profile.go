package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Profile is a party record of one of three kinds. The set of implementations
// is closed: *Customer, *Merchant and *DeliveryPartner.
type Profile interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Base exposes the fields shared by every variant.
	Base() *ProfileBase

	isProfile()
}

// Blacklistable is implemented by the variants that carry an admin blacklist gate.
type Blacklistable interface {
	Profile
	IsBlacklisted() bool
	SetBlacklisted(blacklisted bool)
}

// ProfileBase holds the identity, PII, location and lifecycle flags shared by all kinds.
type ProfileBase struct {
	ID           uuid.UUID    // Assigned once by the store on first save.
	Name         string       // Immutable after creation.
	EmailAddress string       // Immutable after creation, unique per kind among active records.
	AddressLine1 string
	AddressLine2 string
	PhoneNumber  string
	Pincode      string       // Postal code the coordinates are resolved from.
	Coordinates  *Coordinates // Nil until the first successful resolution.
	Deleted      bool         // Soft-delete marker.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Customer is a consumer placing orders.
type Customer struct {
	ProfileBase
	RewardPoints decimal.Decimal
}

// Merchant sells through the platform.
type Merchant struct {
	ProfileBase
	Blacklisted bool
}

// DeliveryPartner delivers orders.
type DeliveryPartner struct {
	ProfileBase
	Blacklisted bool
}

// Kind returns KindCustomer.
func (*Customer) Kind() Kind { return KindCustomer }

// Kind returns KindMerchant.
func (*Merchant) Kind() Kind { return KindMerchant }

// Kind returns KindDeliveryPartner.
func (*DeliveryPartner) Kind() Kind { return KindDeliveryPartner }

// Base returns the shared fields.
func (c *Customer) Base() *ProfileBase { return &c.ProfileBase }

// Base returns the shared fields.
func (m *Merchant) Base() *ProfileBase { return &m.ProfileBase }

// Base returns the shared fields.
func (d *DeliveryPartner) Base() *ProfileBase { return &d.ProfileBase }

func (*Customer) isProfile() {}
func (*Merchant) isProfile() {}
func (*DeliveryPartner) isProfile() {}

// IsBlacklisted reports the admin gate.
func (m *Merchant) IsBlacklisted() bool { return m.Blacklisted }

// SetBlacklisted sets the admin gate.
func (m *Merchant) SetBlacklisted(blacklisted bool) { m.Blacklisted = blacklisted }

// IsBlacklisted reports the admin gate.
func (d *DeliveryPartner) IsBlacklisted() bool { return d.Blacklisted }

// SetBlacklisted sets the admin gate.
func (d *DeliveryPartner) SetBlacklisted(blacklisted bool) { d.Blacklisted = blacklisted }

// NewProfile returns an empty profile of the given kind, or nil for an unknown kind.
func NewProfile(kind Kind) Profile {
	switch kind {
	case KindCustomer:
		return &Customer{}
	case KindMerchant:
		return &Merchant{}
	case KindDeliveryPartner:
		return &DeliveryPartner{}
	default:
		return nil
	}
}

// IsNil reports whether p is nil or a typed nil pointer.
func IsNil(p Profile) bool {
	switch v := p.(type) {
	case nil:
		return true
	case *Customer:
		return v == nil
	case *Merchant:
		return v == nil
	case *DeliveryPartner:
		return v == nil
	default:
		return true
	}
}
