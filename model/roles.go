package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// RoleList stores a set of role names as a JSON-encoded text column so the
// same model works on sqlite and postgres.
type RoleList []string

// Contains reports whether the list carries the given role.
func (r RoleList) Contains(role string) bool {
	for _, v := range r {
		if v == role {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer.
func (r RoleList) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (r *RoleList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*r = nil
		return nil
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("cannot scan %T into RoleList", src)
	}
}
