package model

import (
	"strings"
	"testing"
)

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr string
	}{
		{
			name: "valid user",
			user: User{ID: "u-1", Name: "Boutique 1", ClientID: "c-1"},
		},
		{
			name:    "missing name",
			user:    User{ID: "u-1", ClientID: "c-1"},
			wantErr: "User name is mandatory",
		},
		{
			name:    "missing client",
			user:    User{ID: "u-1", Name: "Boutique 1"},
			wantErr: "User client is mandatory",
		},
		{
			name:    "name too long",
			user:    User{ID: "u-1", Name: strings.Repeat("x", 256), ClientID: "c-1"},
			wantErr: "User name must have between 1 and 255 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected valid record, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestClientValidate(t *testing.T) {
	valid := Client{
		ID:           "c-1",
		Email:        "contact@example.com",
		Name:         "Test client",
		Roles:        RoleList{"STANDARD"},
		PasswordHash: "$2a$10$hash",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("expected valid record, got %v", err)
	}

	bad := valid
	bad.Email = "not-an-email"
	if err := bad.Validate(); err == nil || !strings.Contains(err.Error(), "Client email must be a valid email address") {
		t.Errorf("expected email format error, got %v", err)
	}

	bad = valid
	bad.Email = ""
	if err := bad.Validate(); err == nil || !strings.Contains(err.Error(), "Client email is mandatory") {
		t.Errorf("expected missing email error, got %v", err)
	}

	bad = valid
	bad.PasswordHash = ""
	if err := bad.Validate(); err == nil || !strings.Contains(err.Error(), "Client password is mandatory") {
		t.Errorf("expected missing password error, got %v", err)
	}
}

func TestProductValidate(t *testing.T) {
	if err := (Product{ID: "p-1", Name: "Univers S1"}).Validate(); err != nil {
		t.Errorf("expected valid record, got %v", err)
	}
	if err := (Product{ID: "p-1"}).Validate(); err == nil || !strings.Contains(err.Error(), "Product name is mandatory") {
		t.Errorf("expected missing name error, got %v", err)
	}
}

func TestRoleListContains(t *testing.T) {
	roles := RoleList{"STANDARD", "ADMIN"}
	if !roles.Contains("ADMIN") {
		t.Error("expected ADMIN to be present")
	}
	if roles.Contains("SUPERUSER") {
		t.Error("unexpected role reported present")
	}
	if (RoleList)(nil).Contains("ADMIN") {
		t.Error("nil list must contain nothing")
	}
}

func TestRoleListValueScan(t *testing.T) {
	roles := RoleList{"STANDARD"}
	v, err := roles.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v != `["STANDARD"]` {
		t.Errorf("unexpected column value: %v", v)
	}

	var scanned RoleList
	if err := scanned.Scan(v); err != nil {
		t.Fatalf("Scan from string failed: %v", err)
	}
	if len(scanned) != 1 || scanned[0] != "STANDARD" {
		t.Errorf("unexpected scanned roles: %v", scanned)
	}

	if err := scanned.Scan([]byte(`["ADMIN"]`)); err != nil {
		t.Fatalf("Scan from bytes failed: %v", err)
	}
	if !scanned.Contains("ADMIN") {
		t.Errorf("unexpected scanned roles: %v", scanned)
	}

	if err := scanned.Scan(nil); err != nil {
		t.Fatalf("Scan from nil failed: %v", err)
	}
	if scanned != nil {
		t.Errorf("expected nil roles, got %v", scanned)
	}

	if err := scanned.Scan(42); err == nil {
		t.Error("expected error scanning unsupported type")
	}

	nilValue, err := (RoleList)(nil).Value()
	if err != nil {
		t.Fatalf("Value of nil list failed: %v", err)
	}
	if nilValue != "[]" {
		t.Errorf("expected empty array for nil list, got %v", nilValue)
	}
}

func TestUserKindMergePreservesIdentityAndOwnership(t *testing.T) {
	current := User{ID: "u-1", Name: "Boutique 1", Address: "old", ClientID: "c-1"}
	patch := User{ID: "forged", Name: "Renamed", Address: "new", Telephone: "0600000000", ClientID: "c-2"}

	UserKind.Merge(&current, patch)

	if current.ID != "u-1" || current.ClientID != "c-1" {
		t.Errorf("merge must not touch id or owner: %+v", current)
	}
	if current.Name != "Renamed" || current.Address != "new" || current.Telephone != "0600000000" {
		t.Errorf("mutable fields not merged: %+v", current)
	}
}

func TestClientKindMergeKeepsHashWithoutNewPassword(t *testing.T) {
	current := Client{ID: "c-1", Email: "old@example.com", Name: "Old", PasswordHash: "$2a$10$old"}

	ClientKind.Merge(&current, Client{Email: "new@example.com", Name: "New"})
	if current.PasswordHash != "$2a$10$old" {
		t.Errorf("hash must survive a patch without password, got %q", current.PasswordHash)
	}
	if current.Email != "new@example.com" || current.Name != "New" {
		t.Errorf("mutable fields not merged: %+v", current)
	}

	ClientKind.Merge(&current, Client{Email: "new@example.com", Name: "New", PasswordHash: "$2a$10$fresh"})
	if current.PasswordHash != "$2a$10$fresh" {
		t.Errorf("new hash not applied, got %q", current.PasswordHash)
	}
}
