package cache

import "context"

// FetchFn is the function signature TagCacheService expects when fetching from the source of truth.
type FetchFn[T any] func(ctx context.Context) (T, error)

// TagCacheService exposes the tag-aware read-through caching operations the resource
// services need. Every stored entry carries zero or more invalidation tags; invalidating
// a tag removes every entry associated with it.
// It is exported so that other packages can provide alternate cache backends.
type TagCacheService interface {
	// GetOrFetch returns the stored value for key if present. Otherwise it invokes
	// fetchFn once, associates the result with tags, and returns it. Concurrent
	// callers for the same missing key share a single fetch. A failed fetch stores
	// nothing and the error propagates to every waiting caller.
	GetOrFetch(ctx context.Context, key string, tags []string, fetchFn any) (any, error)

	// InvalidateTags removes every entry associated with any of the given tags.
	// The removal is immediate: subsequent GetOrFetch calls miss and recompute.
	InvalidateTags(ctx context.Context, tags ...string) error

	// Delete removes a single entry by key.
	Delete(ctx context.Context, key string) error
}

// GetOrFetch is a type-safe wrapper function that provides generic support for TagCacheService.
func GetOrFetch[T any](ctx context.Context, service TagCacheService, key string, tags []string, fetchFn FetchFn[T]) (T, error) {
	result, err := service.GetOrFetch(ctx, key, tags, fetchFn)
	if err != nil {
		var zero T
		return zero, err
	}
	return result.(T), nil
}
