package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-tenant-api/model"
	"github.com/goliatone/go-tenant-api/resource"
)

func TestFixturePath(t *testing.T) {
	want := filepath.Join("testdata", "users.json")
	if got := FixturePath("users.json"); got != want {
		t.Errorf("FixturePath = %q, want %q", got, want)
	}
}

func TestLoadFixtureJSON(t *testing.T) {
	var users []model.User
	LoadFixtureJSON(t, FixturePath("users.json"), &users)

	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].ID != "user-1" || users[0].ClientID != "client-1" {
		t.Errorf("unexpected first user: %+v", users[0])
	}
}

func TestIdentities(t *testing.T) {
	if !AdminIdentity().IsAdmin() {
		t.Error("AdminIdentity must carry the admin role")
	}

	tenant := TenantIdentity("client-7")
	if tenant.IsAdmin() {
		t.Error("TenantIdentity must not be admin")
	}
	if tenant.ID != "client-7" || !tenant.HasRole(resource.RoleStandard) {
		t.Errorf("unexpected tenant identity: %+v", tenant)
	}
}

func TestSeedUsersDeterministic(t *testing.T) {
	users := SeedUsers("client-1", "client-2")
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].ID != "user-1" || users[0].Name != "Boutique 1" || users[0].ClientID != "client-1" {
		t.Errorf("unexpected first user: %+v", users[0])
	}
	if users[1].ClientID != "client-2" {
		t.Errorf("owner order not preserved: %+v", users[1])
	}
}

func TestSeedProducts(t *testing.T) {
	products := SeedProducts(3)
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	if products[2].ID != "product-3" || products[2].Name != "Univers S3" {
		t.Errorf("unexpected last product: %+v", products[2])
	}
}
