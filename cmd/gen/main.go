package main

import (
	"pawmart/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.AccountModel{},
		model.PetOwnerProfileModel{},
		model.EntrepreneurProfileModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
