package main

import (
	"profile/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CustomerModel{},
		model.MerchantModel{},
		model.DeliveryPartnerModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
