package resource

import (
	"context"

	"github.com/goliatone/go-tenant-api/cache"
)

// Store is the narrow persistence contract the service needs. Pagination is
// 1-indexed, pages are ordered by id ascending so identical parameters yield
// identical pages, and tenantID == "" means no tenant filter.
type Store[T any] interface {
	FindPage(ctx context.Context, page, limit int, tenantID string) ([]T, error)
	// FindByID returns ErrNotFound when no record has the given id.
	FindByID(ctx context.Context, id string) (T, error)
	Persist(ctx context.Context, record T) (T, error)
	Remove(ctx context.Context, record T) error
}

// TenantCheckFn reports whether a tenant id refers to an existing tenant.
type TenantCheckFn func(ctx context.Context, tenantID string) (bool, error)

// DeleteGuardFn can veto a delete based on the record's related state.
type DeleteGuardFn[T any] func(ctx context.Context, record T) error

// Service implements the uniform List/Detail/Create/Update/Delete operations
// for one resource kind, orchestrating scope resolution, cache keys, the
// tagged cache, and the entity store.
type Service[T any] struct {
	kind         Kind[T]
	store        Store[T]
	cache        cache.TagCacheService
	keys         KeyBuilder
	tenantExists TenantCheckFn
	deleteGuard  DeleteGuardFn[T]
}

// Option configures optional service behaviour.
type Option[T any] func(*Service[T])

// WithTenantChecker installs the existence check used when an admin supplies
// the owning tenant in a payload. Only meaningful for scoped kinds.
func WithTenantChecker[T any](fn TenantCheckFn) Option[T] {
	return func(s *Service[T]) { s.tenantExists = fn }
}

// WithDeleteGuard installs a veto hook run before a delete is performed.
func WithDeleteGuard[T any](fn DeleteGuardFn[T]) Option[T] {
	return func(s *Service[T]) { s.deleteGuard = fn }
}

// New creates a resource service for one kind.
func New[T any](kind Kind[T], store Store[T], cacheService cache.TagCacheService, opts ...Option[T]) *Service[T] {
	s := &Service[T]{
		kind:  kind,
		store: store,
		cache: cacheService,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the serialized page of records visible to the caller.
//
// For scoped kinds the caller's scope is resolved and folded into the cache
// key; a restricted scope also narrows the store query to the caller's
// tenant. An empty page is a valid result and is cached like any other.
func (s *Service[T]) List(ctx context.Context, ident Identity, p Pagination) ([]byte, error) {
	p = p.Normalize()

	scope := Unrestricted()
	if s.kind.Scoped {
		scope = ResolveScope(ident)
	}

	key := s.keys.ListKey(s.kind.Name, p, scope)
	return cache.GetOrFetch(ctx, s.cache, key, []string{s.kind.ListTag}, func(ctx context.Context) ([]byte, error) {
		records, err := s.store.FindPage(ctx, p.Page, p.Limit, scope.TenantID())
		if err != nil {
			return nil, err
		}
		if records == nil {
			records = []T{}
		}
		return s.kind.EncodeList(records)
	})
}

// Detail returns the serialized record with the given id.
//
// The record is always fetched from the store first: the cached payload is
// identity-independent but access is not, so the authorization check runs on
// every call and is never itself cached. Denial reads as ErrNotFound.
func (s *Service[T]) Detail(ctx context.Context, ident Identity, id string) ([]byte, error) {
	record, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ident, record); err != nil {
		return nil, err
	}

	key := s.keys.DetailKey(s.kind.Name, id)
	return cache.GetOrFetch(ctx, s.cache, key, []string{s.kind.DetailTag}, func(ctx context.Context) ([]byte, error) {
		return s.kind.EncodeOne(record)
	})
}

// Create validates and persists a new record, returning the stored record.
//
// The kind's list tag is invalidated before the write so no cached page can
// outlive the mutation. A create that subsequently fails validation has
// already invalidated the tag; the only cost is a recompute on the next list.
//
// For scoped kinds the owning tenant is forced: admins choose it via the
// payload (checked to exist), everyone else gets their own tenant regardless
// of what the payload claimed.
func (s *Service[T]) Create(ctx context.Context, ident Identity, payload T) (T, error) {
	var zero T

	if err := s.cache.InvalidateTags(ctx, s.kind.ListTag); err != nil {
		return zero, err
	}

	s.kind.SetID(&payload, "")

	if s.kind.Scoped {
		if err := s.assignOwner(ctx, ident, &payload, s.kind.OwnerID(payload)); err != nil {
			return zero, err
		}
	}

	if err := s.validate(payload); err != nil {
		return zero, err
	}

	return s.store.Persist(ctx, payload)
}

// Update merges the client-mutable fields of payload onto the stored record
// and persists the result. Both the list and detail tags are invalidated up
// front. A caller who may not see the record gets ErrNotFound, and a
// non-admin payload naming a foreign tenant is rejected the same way.
func (s *Service[T]) Update(ctx context.Context, ident Identity, id string, payload T) (T, error) {
	var zero T

	if err := s.cache.InvalidateTags(ctx, s.kind.ListTag, s.kind.DetailTag); err != nil {
		return zero, err
	}

	current, err := s.store.FindByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if err := s.authorize(ident, current); err != nil {
		return zero, err
	}

	s.kind.Merge(&current, payload)

	if s.kind.Scoped {
		requested := s.kind.OwnerID(payload)
		if !ident.IsAdmin() && requested != "" && requested != ident.ID {
			return zero, ErrNotFound
		}
		if err := s.assignOwner(ctx, ident, &current, requested); err != nil {
			return zero, err
		}
	}

	if err := s.validate(current); err != nil {
		return zero, err
	}

	return s.store.Persist(ctx, current)
}

// Delete removes the record with the given id. The authorization check is
// identical to Detail; tags are invalidated only once the delete is allowed.
func (s *Service[T]) Delete(ctx context.Context, ident Identity, id string) error {
	record, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(ident, record); err != nil {
		return err
	}
	if s.deleteGuard != nil {
		if err := s.deleteGuard(ctx, record); err != nil {
			return err
		}
	}

	if err := s.cache.InvalidateTags(ctx, s.kind.ListTag, s.kind.DetailTag); err != nil {
		return err
	}

	return s.store.Remove(ctx, record)
}

// Encode serializes a single record with the kind's encoder.
func (s *Service[T]) Encode(record T) ([]byte, error) {
	return s.kind.EncodeOne(record)
}

// ID returns the record's id.
func (s *Service[T]) ID(record T) string {
	return s.kind.ID(record)
}

// Name returns the kind's name.
func (s *Service[T]) Name() string {
	return s.kind.Name
}

// authorize applies the scoped visibility rule: a restricted caller may only
// touch records owned by their own tenant. Denial is ErrNotFound.
func (s *Service[T]) authorize(ident Identity, record T) error {
	if !s.kind.Scoped {
		return nil
	}
	scope := ResolveScope(ident)
	if !scope.IsRestricted() {
		return nil
	}
	if s.kind.OwnerID(record) != scope.TenantID() {
		return ErrNotFound
	}
	return nil
}

// assignOwner applies the tenant-assignment rule shared by Create and Update.
// Non-admins always get their own tenant. Admins must name an existing tenant
// in the payload.
func (s *Service[T]) assignOwner(ctx context.Context, ident Identity, record *T, requested string) error {
	if !ident.IsAdmin() {
		s.kind.SetOwner(record, ident.ID)
		return nil
	}

	if requested == "" {
		return NewValidationError("client is mandatory")
	}

	if s.tenantExists != nil {
		ok, err := s.tenantExists(ctx, requested)
		if err != nil {
			return err
		}
		if !ok {
			return NewValidationError("client does not exist")
		}
	}

	s.kind.SetOwner(record, requested)
	return nil
}

// validate runs the kind's validator and normalizes violation sets into a
// *ValidationError with deterministic ordering.
func (s *Service[T]) validate(record T) error {
	if s.kind.Validate == nil {
		return nil
	}
	return asValidationError(s.kind.Validate(record))
}
