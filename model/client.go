package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/uptrace/bun"
)

// Client is a tenant: the organization owning users, and at the same time the
// authentication principal issuing API requests. The password hash never
// leaves the server.
type Client struct {
	bun.BaseModel `bun:"table:clients,alias:c"`

	ID           string   `bun:"id,pk" json:"id"`
	Email        string   `bun:"email,notnull,unique" json:"email"`
	Name         string   `bun:"name,notnull" json:"name"`
	Roles        RoleList `bun:"roles" json:"roles"`
	PasswordHash string   `bun:"password_hash,notnull" json:"-"`
}

// Validate checks the client record.
func (c Client) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email,
			validation.Required.Error("Client email is mandatory"),
			is.EmailFormat.Error("Client email must be a valid email address"),
		),
		validation.Field(&c.Name,
			validation.Required.Error("Client name is mandatory"),
			validation.Length(1, 255).Error("Client name must be between 1 and 255 characters"),
		),
		validation.Field(&c.PasswordHash,
			validation.Required.Error("Client password is mandatory"),
		),
	)
}
