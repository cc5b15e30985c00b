package di

import (
	"context"
	"errors"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-tenant-api/cache"
	"github.com/goliatone/go-tenant-api/model"
	"github.com/goliatone/go-tenant-api/resource"
	"github.com/goliatone/go-tenant-api/storage"
)

// Container wires the cache, stores, and resource services together.
// It manages one shared tagged cache and one service per resource kind.
type Container struct {
	cacheService cache.TagCacheService

	clientStore  *storage.BunStore[model.Client]
	userStore    *storage.BunStore[model.User]
	productStore *storage.BunStore[model.Product]

	clients  *resource.Service[model.Client]
	users    *resource.Service[model.User]
	products *resource.Service[model.Product]
}

// NewContainer creates a container over the given database using the provided
// cache configuration.
func NewContainer(db *bun.DB, cacheCfg cache.Config) (*Container, error) {
	cacheService, err := cache.NewTagCacheService(cacheCfg)
	if err != nil {
		return nil, err
	}

	c := &Container{cacheService: cacheService}

	c.clientStore = storage.NewBunStore(db, storage.ModelHandlers[model.Client]{
		GetID: func(r model.Client) string { return r.ID },
		SetID: func(r *model.Client, id string) { r.ID = id },
	})
	c.userStore = storage.NewBunStore(db, storage.ModelHandlers[model.User]{
		GetID: func(r model.User) string { return r.ID },
		SetID: func(r *model.User, id string) { r.ID = id },
	}, storage.WithOwnerColumn[model.User]("client_id"))
	c.productStore = storage.NewBunStore(db, storage.ModelHandlers[model.Product]{
		GetID: func(r model.Product) string { return r.ID },
		SetID: func(r *model.Product, id string) { r.ID = id },
	})

	c.products = resource.New(model.ProductKind, c.productStore, cacheService)

	c.users = resource.New(model.UserKind, c.userStore, cacheService,
		resource.WithTenantChecker[model.User](func(ctx context.Context, tenantID string) (bool, error) {
			_, err := c.clientStore.FindByID(ctx, tenantID)
			if errors.Is(err, resource.ErrNotFound) {
				return false, nil
			}
			if err != nil {
				return false, err
			}
			return true, nil
		}),
	)

	c.clients = resource.New(model.ClientKind, c.clientStore, cacheService,
		resource.WithDeleteGuard[model.Client](func(ctx context.Context, client model.Client) error {
			owned, err := c.userStore.CountWhere(ctx, "client_id", client.ID)
			if err != nil {
				return err
			}
			if owned > 0 {
				return &resource.ConflictError{Message: "client still owns users"}
			}
			return nil
		}),
	)

	return c, nil
}

// CacheService returns the shared tagged cache instance.
func (c *Container) CacheService() cache.TagCacheService {
	return c.cacheService
}

// ClientStore returns the client store, used by the authentication layer to
// look up principals by email.
func (c *Container) ClientStore() *storage.BunStore[model.Client] {
	return c.clientStore
}

// Clients returns the client resource service.
func (c *Container) Clients() *resource.Service[model.Client] {
	return c.clients
}

// Users returns the user resource service.
func (c *Container) Users() *resource.Service[model.User] {
	return c.users
}

// Products returns the product resource service.
func (c *Container) Products() *resource.Service[model.Product] {
	return c.products
}
