package entity

import (
	"log/slog"
	"strconv"
	"strings"
)

const maskFill = "****"

// MaskString keeps the first and last character of s. Values of two characters
// or fewer are fully masked.
func MaskString(s string) string {
	runes := []rune(s)
	if len(runes) <= 2 {
		return maskFill
	}

	return string(runes[0]) + maskFill + string(runes[len(runes)-1])
}

// MaskEmail masks the local part of an address and keeps the domain.
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return MaskString(email)
	}

	local := []rune(email[:at])

	return string(local[0]) + maskFill + string(local[len(local)-1]) + email[at:]
}

func (b *ProfileBase) logAttrs(kind Kind) []slog.Attr {
	lat, lng := maskFill, maskFill
	if b.Coordinates != nil {
		lat = MaskString(strconv.FormatFloat(b.Coordinates.Latitude, 'f', -1, 64))
		lng = MaskString(strconv.FormatFloat(b.Coordinates.Longitude, 'f', -1, 64))
	}

	return []slog.Attr{
		slog.String("kind", kind.String()),
		slog.String("id", b.ID.String()),
		slog.String("name", MaskString(b.Name)),
		slog.String("email", MaskEmail(b.EmailAddress)),
		slog.String("phone", MaskString(b.PhoneNumber)),
		slog.String("address1", MaskString(b.AddressLine1)),
		slog.String("address2", MaskString(b.AddressLine2)),
		slog.String("pincode", MaskString(b.Pincode)),
		slog.String("lat", lat),
		slog.String("lng", lng),
		slog.Bool("deleted", b.Deleted),
	}
}

// LogValue renders the customer with PII masked.
func (c *Customer) LogValue() slog.Value {
	attrs := c.logAttrs(KindCustomer)
	attrs = append(attrs, slog.String("rewardPoints", c.RewardPoints.String()))

	return slog.GroupValue(attrs...)
}

// LogValue renders the merchant with PII masked.
func (m *Merchant) LogValue() slog.Value {
	attrs := m.logAttrs(KindMerchant)
	attrs = append(attrs, slog.Bool("blacklisted", m.Blacklisted))

	return slog.GroupValue(attrs...)
}

// LogValue renders the delivery partner with PII masked.
func (d *DeliveryPartner) LogValue() slog.Value {
	attrs := d.logAttrs(KindDeliveryPartner)
	attrs = append(attrs, slog.Bool("blacklisted", d.Blacklisted))

	return slog.GroupValue(attrs...)
}
