package postgres

import (
	"profile/internal/domain/entity"
	"profile/internal/infra/persistence/model"
)

func toCustomerDomain(m *model.CustomerModel, codec *FieldCodec) (entity.Profile, error) {
	customer := &entity.Customer{RewardPoints: m.RewardPoints}
	customer.ID = m.ID
	if err := codec.decode(&m.ProfileColumns, &customer.ProfileBase); err != nil {
		return nil, err
	}

	return customer, nil
}

func fromCustomerDomain(p entity.Profile, codec *FieldCodec) (*model.CustomerModel, error) {
	customer := p.(*entity.Customer)

	cols, err := codec.encode(&customer.ProfileBase)
	if err != nil {
		return nil, err
	}

	return &model.CustomerModel{
		ID:             customer.ID,
		ProfileColumns: cols,
		RewardPoints:   customer.RewardPoints,
	}, nil
}

func toMerchantDomain(m *model.MerchantModel, codec *FieldCodec) (entity.Profile, error) {
	merchant := &entity.Merchant{Blacklisted: m.Blacklisted}
	merchant.ID = m.ID
	if err := codec.decode(&m.ProfileColumns, &merchant.ProfileBase); err != nil {
		return nil, err
	}

	return merchant, nil
}

func fromMerchantDomain(p entity.Profile, codec *FieldCodec) (*model.MerchantModel, error) {
	merchant := p.(*entity.Merchant)

	cols, err := codec.encode(&merchant.ProfileBase)
	if err != nil {
		return nil, err
	}

	return &model.MerchantModel{
		ID:             merchant.ID,
		ProfileColumns: cols,
		Blacklisted:    merchant.Blacklisted,
	}, nil
}

func toDeliveryPartnerDomain(m *model.DeliveryPartnerModel, codec *FieldCodec) (entity.Profile, error) {
	partner := &entity.DeliveryPartner{Blacklisted: m.Blacklisted}
	partner.ID = m.ID
	if err := codec.decode(&m.ProfileColumns, &partner.ProfileBase); err != nil {
		return nil, err
	}

	return partner, nil
}

func fromDeliveryPartnerDomain(p entity.Profile, codec *FieldCodec) (*model.DeliveryPartnerModel, error) {
	partner := p.(*entity.DeliveryPartner)

	cols, err := codec.encode(&partner.ProfileBase)
	if err != nil {
		return nil, err
	}

	return &model.DeliveryPartnerModel{
		ID:             partner.ID,
		ProfileColumns: cols,
		Blacklisted:    partner.Blacklisted,
	}, nil
}
