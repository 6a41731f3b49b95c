package handler

import (
	"time"

	"profile/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfileRequest is the register/update body shared by every kind. Only the
// identity field of the route's kind is read.
type ProfileRequest struct {
	CustomerID        *uuid.UUID `json:"customerId,omitempty"`
	MerchantID        *uuid.UUID `json:"merchantId,omitempty"`
	DeliveryPartnerID *uuid.UUID `json:"deliveryPartnerId,omitempty"`

	Name         string `json:"name" validate:"required,max=255"`
	EmailAddress string `json:"emailAddress" validate:"required,email,max=255"`
	AddressLine1 string `json:"addressLine1" validate:"max=255"`
	AddressLine2 string `json:"addressLine2" validate:"max=255"`
	PhoneNumber  string `json:"phoneNumber" validate:"omitempty,phone"`
	Pincode      string `json:"pincode" validate:"required,pincode"`
}

// ProfileResponse renders any kind. Kind-specific fields are omitted for the others.
type ProfileResponse struct {
	CustomerID        *uuid.UUID `json:"customerId,omitempty"`
	MerchantID        *uuid.UUID `json:"merchantId,omitempty"`
	DeliveryPartnerID *uuid.UUID `json:"deliveryPartnerId,omitempty"`

	Name         string   `json:"name"`
	EmailAddress string   `json:"emailAddress"`
	AddressLine1 string   `json:"addressLine1"`
	AddressLine2 string   `json:"addressLine2"`
	PhoneNumber  string   `json:"phoneNumber"`
	Pincode      string   `json:"pincode"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`

	RewardPoints *decimal.Decimal `json:"rewardPoints,omitempty"`
	Blacklisted  *bool            `json:"blacklisted,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PageResponse is one zero-based page of profiles.
type PageResponse struct {
	Items      []ProfileResponse `json:"items"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalItems int64             `json:"totalItems"`
	TotalPages int               `json:"totalPages"`
}

// identityField is the JSON name of the id for a kind.
func identityField(kind entity.Kind) string {
	switch kind {
	case entity.KindCustomer:
		return "customerId"
	case entity.KindMerchant:
		return "merchantId"
	default:
		return "deliveryPartnerId"
	}
}

// identity returns the id supplied for kind, or uuid.Nil.
func (r *ProfileRequest) identity(kind entity.Kind) uuid.UUID {
	var id *uuid.UUID
	switch kind {
	case entity.KindCustomer:
		id = r.CustomerID
	case entity.KindMerchant:
		id = r.MerchantID
	case entity.KindDeliveryPartner:
		id = r.DeliveryPartnerID
	}
	if id == nil {
		return uuid.Nil
	}

	return *id
}

// toEntity builds a profile of kind from the request. Server-controlled fields stay zero.
func (r *ProfileRequest) toEntity(kind entity.Kind) entity.Profile {
	profile := entity.NewProfile(kind)
	if profile == nil {
		return nil
	}

	base := profile.Base()
	base.ID = r.identity(kind)
	base.Name = r.Name
	base.EmailAddress = r.EmailAddress
	base.AddressLine1 = r.AddressLine1
	base.AddressLine2 = r.AddressLine2
	base.PhoneNumber = r.PhoneNumber
	base.Pincode = r.Pincode

	return profile
}

func toProfileResponse(profile entity.Profile) ProfileResponse {
	base := profile.Base()
	id := base.ID

	resp := ProfileResponse{
		Name:         base.Name,
		EmailAddress: base.EmailAddress,
		AddressLine1: base.AddressLine1,
		AddressLine2: base.AddressLine2,
		PhoneNumber:  base.PhoneNumber,
		Pincode:      base.Pincode,
		CreatedAt:    base.CreatedAt,
		UpdatedAt:    base.UpdatedAt,
	}
	if base.Coordinates != nil {
		lat, lng := base.Coordinates.Latitude, base.Coordinates.Longitude
		resp.Latitude = &lat
		resp.Longitude = &lng
	}

	switch p := profile.(type) {
	case *entity.Customer:
		resp.CustomerID = &id
		points := p.RewardPoints
		resp.RewardPoints = &points
	case *entity.Merchant:
		resp.MerchantID = &id
	case *entity.DeliveryPartner:
		resp.DeliveryPartnerID = &id
	}

	if b, ok := profile.(entity.Blacklistable); ok {
		blacklisted := b.IsBlacklisted()
		resp.Blacklisted = &blacklisted
	}

	return resp
}

func toProfileResponses(profiles []entity.Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, toProfileResponse(p))
	}

	return out
}

func toPageResponse(page *entity.Page) PageResponse {
	return PageResponse{
		Items:      toProfileResponses(page.Items),
		Page:       page.Page,
		Size:       page.Size,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
}
