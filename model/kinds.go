package model

import (
	"encoding/json"

	"github.com/goliatone/go-tenant-api/resource"
)

func encodeOne[T any](record T) ([]byte, error) {
	return json.Marshal(record)
}

func encodeList[T any](records []T) ([]byte, error) {
	return json.Marshal(records)
}

// ProductKind configures the uniformly visible product catalog.
var ProductKind = resource.Kind[Product]{
	Name:      "products",
	ListTag:   "productsCache",
	DetailTag: "productCache",
	ID:        func(p Product) string { return p.ID },
	SetID:     func(p *Product, id string) { p.ID = id },
	Merge: func(current *Product, patch Product) {
		current.Name = patch.Name
		current.Description = patch.Description
		current.Color = patch.Color
		current.Price = patch.Price
	},
	Validate:   Product.Validate,
	EncodeOne:  encodeOne[Product],
	EncodeList: encodeList[Product],
}

// ClientKind configures the tenant accounts themselves. Visibility is not
// tenant-scoped here; the admin-only restriction on client operations is
// enforced at the HTTP boundary.
var ClientKind = resource.Kind[Client]{
	Name:      "clients",
	ListTag:   "clientsCache",
	DetailTag: "clientCache",
	ID:        func(c Client) string { return c.ID },
	SetID:     func(c *Client, id string) { c.ID = id },
	Merge: func(current *Client, patch Client) {
		current.Email = patch.Email
		current.Name = patch.Name
		// A fresh hash is present only when the caller supplied a new password.
		if patch.PasswordHash != "" {
			current.PasswordHash = patch.PasswordHash
		}
	},
	Validate:   Client.Validate,
	EncodeOne:  encodeOne[Client],
	EncodeList: encodeList[Client],
}

// UserKind configures the tenant-scoped user records. Ownership is never
// merged from payloads; the service's tenant-assignment rule controls it.
var UserKind = resource.Kind[User]{
	Name:      "users",
	ListTag:   "usersCache",
	DetailTag: "userCache",
	Scoped:    true,
	ID:        func(u User) string { return u.ID },
	SetID:     func(u *User, id string) { u.ID = id },
	OwnerID:   func(u User) string { return u.ClientID },
	SetOwner:  func(u *User, tenantID string) { u.ClientID = tenantID },
	Merge: func(current *User, patch User) {
		current.Name = patch.Name
		current.Address = patch.Address
		current.Telephone = patch.Telephone
	},
	Validate:   User.Validate,
	EncodeOne:  encodeOne[User],
	EncodeList: encodeList[User],
}
