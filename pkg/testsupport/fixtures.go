package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-tenant-api/model"
	"github.com/goliatone/go-tenant-api/resource"
)

// LoadFixture loads test data from a fixture file.
// The path is relative to the test package directory.
func LoadFixture(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture from %s: %v", path, err)
	}

	return data
}

// LoadFixtureJSON loads JSON test data from a fixture file and unmarshals it.
// The path is relative to the test package directory.
func LoadFixtureJSON(t *testing.T, path string, dest interface{}) {
	t.Helper()

	data := LoadFixture(t, path)
	if err := json.Unmarshal(data, dest); err != nil {
		t.Fatalf("failed to unmarshal JSON fixture from %s: %v", path, err)
	}
}

// FixturePath constructs a path to a fixture file relative to the testdata directory.
func FixturePath(filename string) string {
	return filepath.Join("testdata", filename)
}

// AdminIdentity returns an identity carrying the admin role.
func AdminIdentity() resource.Identity {
	return resource.Identity{ID: "admin-1", Roles: []string{resource.RoleAdmin}}
}

// TenantIdentity returns a standard (tenant-restricted) identity for the
// given tenant id.
func TenantIdentity(id string) resource.Identity {
	return resource.Identity{ID: id, Roles: []string{resource.RoleStandard}}
}

// SeedUsers builds one deterministic user per owner id, numbered in order.
func SeedUsers(owners ...string) []model.User {
	users := make([]model.User, 0, len(owners))
	for i, owner := range owners {
		n := i + 1
		users = append(users, model.User{
			ID:        fmt.Sprintf("user-%d", n),
			Name:      fmt.Sprintf("Boutique %d", n),
			Address:   fmt.Sprintf("%d rue de la Paix, Paris", n),
			Telephone: fmt.Sprintf("+33 1 00 00 00 %02d", n),
			ClientID:  owner,
		})
	}
	return users
}

// SeedProducts builds n deterministic catalog products.
func SeedProducts(n int) []model.Product {
	products := make([]model.Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, model.Product{
			ID:          fmt.Sprintf("product-%d", i),
			Name:        fmt.Sprintf("Univers S%d", i),
			Description: fmt.Sprintf("Description of BileMo model Univers S%d", i),
			Color:       "Blue",
			Price:       "399$",
		})
	}
	return products
}
