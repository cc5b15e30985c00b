package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/uptrace/bun"
)

// Product is a catalog entry, uniformly visible to every authenticated caller.
type Product struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID          string `bun:"id,pk" json:"id"`
	Name        string `bun:"name,notnull" json:"name"`
	Description string `bun:"description" json:"description"`
	Color       string `bun:"color" json:"color"`
	Price       string `bun:"price" json:"price"`
}

// Validate checks the product record.
func (p Product) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name,
			validation.Required.Error("Product name is mandatory"),
			validation.Length(1, 255).Error("Product name must have between 1 and 255 characters"),
		),
	)
}
