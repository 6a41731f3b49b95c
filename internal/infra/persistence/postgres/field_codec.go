package postgres

import (
	"profile/internal/domain/entity"
	"profile/internal/domain/service"
	"profile/internal/errors"
	"profile/internal/infra/persistence/model"
)

// FieldCodec encrypts PII on the way into the shared profile columns and
// decrypts it on the way out. It also fills the email blind index.
type FieldCodec struct {
	cipher service.FieldCipher
	index  service.BlindIndexer
}

// NewFieldCodec is the constructor for FieldCodec.
func NewFieldCodec(cipher service.FieldCipher, index service.BlindIndexer) *FieldCodec {
	return &FieldCodec{cipher: cipher, index: index}
}

// emailDigest returns the lookup token for an email address.
func (c *FieldCodec) emailDigest(email string) string {
	return c.index.Digest(email)
}

func (c *FieldCodec) encode(base *entity.ProfileBase) (model.ProfileColumns, error) {
	cols := model.ProfileColumns{
		EmailHash: c.index.Digest(base.EmailAddress),
		Deleted:   base.Deleted,
		CreatedAt: base.CreatedAt,
		UpdatedAt: base.UpdatedAt,
	}

	fields := []struct {
		dst   *string
		value string
	}{
		{&cols.Name, base.Name},
		{&cols.EmailAddress, base.EmailAddress},
		{&cols.AddressLine1, base.AddressLine1},
		{&cols.AddressLine2, base.AddressLine2},
		{&cols.PhoneNumber, base.PhoneNumber},
		{&cols.Pincode, base.Pincode},
	}
	for _, f := range fields {
		encrypted, err := c.cipher.Encrypt(f.value)
		if err != nil {
			return model.ProfileColumns{}, errors.Wrap(err, "failed to encrypt profile field")
		}
		*f.dst = encrypted
	}

	if base.Coordinates != nil {
		lat, lng := base.Coordinates.Latitude, base.Coordinates.Longitude
		cols.Latitude = &lat
		cols.Longitude = &lng
	}

	return cols, nil
}

func (c *FieldCodec) decode(cols *model.ProfileColumns, base *entity.ProfileBase) error {
	fields := []struct {
		dst   *string
		value string
	}{
		{&base.Name, cols.Name},
		{&base.EmailAddress, cols.EmailAddress},
		{&base.AddressLine1, cols.AddressLine1},
		{&base.AddressLine2, cols.AddressLine2},
		{&base.PhoneNumber, cols.PhoneNumber},
		{&base.Pincode, cols.Pincode},
	}
	for _, f := range fields {
		decrypted, err := c.cipher.Decrypt(f.value)
		if err != nil {
			return errors.Wrap(err, "failed to decrypt profile field")
		}
		*f.dst = decrypted
	}

	// Both columns are written together; a half-set pair is treated as unresolved.
	if cols.Latitude != nil && cols.Longitude != nil {
		base.Coordinates = &entity.Coordinates{Latitude: *cols.Latitude, Longitude: *cols.Longitude}
	}
	base.Deleted = cols.Deleted
	base.CreatedAt = cols.CreatedAt
	base.UpdatedAt = cols.UpdatedAt

	return nil
}
