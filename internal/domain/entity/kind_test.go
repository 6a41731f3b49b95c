package entity

import (
	"testing"

	domainerrors "profile/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		tag  string
		want Kind
	}{
		{tag: "merchant", want: KindMerchant},
		{tag: "MERCHANT", want: KindMerchant},
		{tag: "Customer", want: KindCustomer},
		{tag: "deliveryPartner", want: KindDeliveryPartner},
		{tag: "deliverypartner", want: KindDeliveryPartner},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := ParseKind(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKind_Unknown(t *testing.T) {
	for _, tag := range []string{"widget", "", "delivery_partner", "merchants"} {
		_, err := ParseKind(tag)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidProfileKind), tag)
	}
}

func TestKind_SupportsBlacklist(t *testing.T) {
	assert.True(t, KindMerchant.SupportsBlacklist())
	assert.True(t, KindDeliveryPartner.SupportsBlacklist())
	assert.False(t, KindCustomer.SupportsBlacklist())
	assert.False(t, Kind("widget").SupportsBlacklist())
}

func TestNewProfile(t *testing.T) {
	for _, kind := range LookupOrder {
		p := NewProfile(kind)
		require.NotNil(t, p)
		assert.Equal(t, kind, p.Kind())
	}
	assert.Nil(t, NewProfile("widget"))
}

func TestIsNil(t *testing.T) {
	var merchant *Merchant

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(merchant))
	assert.False(t, IsNil(&Customer{}))
}

func TestCoordinates_Valid(t *testing.T) {
	assert.True(t, Coordinates{Latitude: 12.9, Longitude: 77.6}.Valid())
	assert.True(t, Coordinates{Latitude: -90, Longitude: 180}.Valid())
	assert.False(t, Coordinates{Latitude: 91, Longitude: 0}.Valid())
	assert.False(t, Coordinates{Latitude: 0, Longitude: -180.5}.Valid())
}

func TestNewPage(t *testing.T) {
	page := NewPage(nil, 1, 10, 21)
	assert.Equal(t, 3, page.TotalPages)

	page = NewPage(nil, 0, 10, 0)
	assert.Equal(t, 0, page.TotalPages)
}
