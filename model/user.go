package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/uptrace/bun"
)

// User is a tenant-owned record. Every persisted user has exactly one owning
// client; the reference is empty only transiently before the service assigns
// it.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        string `bun:"id,pk" json:"id"`
	Name      string `bun:"name,notnull" json:"name"`
	Address   string `bun:"address" json:"address"`
	Telephone string `bun:"telephone" json:"telephone"`
	ClientID  string `bun:"client_id,notnull" json:"clientId"`
}

// Validate checks the user record.
func (u User) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Name,
			validation.Required.Error("User name is mandatory"),
			validation.Length(1, 255).Error("User name must have between 1 and 255 characters"),
		),
		validation.Field(&u.ClientID,
			validation.Required.Error("User client is mandatory"),
		),
	)
}
