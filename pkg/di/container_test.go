package di

import (
	"testing"

	"github.com/goliatone/go-tenant-api/cache"
	"github.com/goliatone/go-tenant-api/storage"
)

func TestNewContainerWiresAllServices(t *testing.T) {
	db, err := storage.OpenDB("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("OpenDB failed: %v", err)
	}
	defer db.Close()

	container, err := NewContainer(db, cache.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer failed: %v", err)
	}

	if container.CacheService() == nil {
		t.Error("expected a cache service")
	}
	if container.ClientStore() == nil {
		t.Error("expected a client store")
	}
	if container.Clients() == nil || container.Users() == nil || container.Products() == nil {
		t.Error("expected all three resource services")
	}
}

func TestNewContainerRejectsBadCacheConfig(t *testing.T) {
	db, err := storage.OpenDB("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("OpenDB failed: %v", err)
	}
	defer db.Close()

	if _, err := NewContainer(db, cache.Config{}); err == nil {
		t.Error("expected zero cache config to be rejected")
	}
}
