// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	domainerrors "profile/internal/domain/errors"

	"github.com/pkg/errors"
)

// Kind is the tag that selects one of the profile variants.
type Kind string

const (
	// KindCustomer tags a Customer profile.
	KindCustomer Kind = "customer"
	// KindMerchant tags a Merchant profile.
	KindMerchant Kind = "merchant"
	// KindDeliveryPartner tags a DeliveryPartner profile.
	KindDeliveryPartner Kind = "deliveryPartner"
)

// LookupOrder is the order in which kinds are searched when only an id is known.
var LookupOrder = []Kind{KindMerchant, KindCustomer, KindDeliveryPartner}

// ParseKind matches a kind tag case-insensitively.
func ParseKind(tag string) (Kind, error) {
	for _, kind := range LookupOrder {
		if strings.EqualFold(tag, string(kind)) {
			return kind, nil
		}
	}

	return "", errors.Wrapf(domainerrors.ErrInvalidProfileKind, "unknown profile kind %q", tag)
}

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// SupportsBlacklist reports whether profiles of this kind carry the blacklisted flag.
func (k Kind) SupportsBlacklist() bool {
	switch k {
	case KindMerchant, KindDeliveryPartner:
		return true
	default:
		return false
	}
}
