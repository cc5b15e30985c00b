package cacheinfra

import (
	"context"
	"reflect"
	"time"

	"github.com/viccon/sturdyc"
)

// Config holds the configuration for the sturdyc cache adapter.
type Config struct {
	// Capacity defines the maximum number of entries that the cache can store.
	// Must be greater than 0.
	Capacity int

	// NumShards determines the number of cache shards for concurrent access.
	// Higher values improve concurrency but increase memory overhead.
	// Must be greater than 0. Default: 256
	NumShards int

	// TTL is the backstop time-to-live for cached entries. Entries are
	// normally removed by tag invalidation well before this expires.
	// Must be greater than 0.
	TTL time.Duration

	// EvictionPercentage specifies what percentage of entries to evict
	// when the cache reaches its capacity. Must be between 1-100.
	EvictionPercentage int

	// EvictionInterval sets how often the cache checks for expired entries.
	// Zero value uses the default interval.
	EvictionInterval time.Duration
}

// DefaultConfig returns a Config with sensible defaults for most use cases.
func DefaultConfig() Config {
	return Config{
		Capacity:           10000,
		NumShards:          256,
		TTL:                time.Hour,
		EvictionPercentage: 10,
	}
}

// ToSturdycOptions converts the Config to sturdyc.Option slice.
// Capacity, NumShards, TTL, and EvictionPercentage are passed directly
// to sturdyc.New() and are not included in the options.
func (c Config) ToSturdycOptions() []sturdyc.Option {
	var options []sturdyc.Option

	if c.EvictionInterval > 0 {
		options = append(options, sturdyc.WithEvictionInterval(c.EvictionInterval))
	}

	return options
}

// Validate checks if the configuration values are valid.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
	}

	if c.NumShards <= 0 {
		return &ConfigError{Field: "NumShards", Message: "must be greater than 0"}
	}

	if c.TTL <= 0 {
		return &ConfigError{Field: "TTL", Message: "must be greater than 0"}
	}

	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return &ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"}
	}

	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}

// sturdycService wraps a sturdyc client and a tag index to provide
// tag-invalidating read-through caching.
type sturdycService struct {
	client *sturdyc.Client[any]
	tags   *tagIndex
}

// NewSturdycService creates a new sturdyc-backed tagged cache.
// It validates the configuration and initializes a sturdyc client with the
// provided settings. Single-flight behaviour for concurrent misses on the
// same key is provided by sturdyc's in-flight request deduplication.
func NewSturdycService(cfg Config) (*sturdycService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := sturdyc.New[any](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		cfg.ToSturdycOptions()...,
	)

	return &sturdycService{client: client, tags: newTagIndex()}, nil
}

// GetOrFetch implements cache.TagCacheService.GetOrFetch.
//
// The fetchFn parameter must be of type cache.FetchFn[T]. The key is
// registered under the provided tags before the fetch is issued, and the
// registration is re-checked after sturdyc has stored the result: an
// invalidation that drained a tag while the fetch was in flight would
// otherwise leave an entry the index no longer tracks, unreachable by any
// later invalidation. Evicting it here confines the staleness to this one
// read. sturdyc never stores a result when fetchFn errors, so a failed fetch
// leaves behind only a harmless index entry.
func (s *sturdycService) GetOrFetch(ctx context.Context, key string, tags []string, fetchFn any) (any, error) {
	if err := validateFetchFn(fetchFn); err != nil {
		return nil, err
	}

	s.tags.register(key, tags)

	typedFetchFn := func(ctx context.Context) (any, error) {
		return callFetchFunctionWithReflection(ctx, fetchFn)
	}

	result, err := s.client.GetOrFetch(ctx, key, typedFetchFn)
	if err != nil {
		return nil, err
	}

	for _, tag := range tags {
		if !s.tags.contains(tag, key) {
			s.client.Delete(key)
			break
		}
	}

	return result, nil
}

// InvalidateTags implements cache.TagCacheService.InvalidateTags.
// It removes every entry registered under any of the given tags, then drops
// the index buckets. A fetch racing the invalidation may re-store its key
// afterwards, but GetOrFetch detects the drained registration and evicts the
// entry again, so the stale payload is served at most once.
func (s *sturdycService) InvalidateTags(ctx context.Context, tags ...string) error {
	for _, tag := range tags {
		for _, key := range s.tags.drain(tag) {
			s.client.Delete(key)
		}
	}
	return nil
}

// Delete implements cache.TagCacheService.Delete.
func (s *sturdycService) Delete(ctx context.Context, key string) error {
	s.client.Delete(key)
	return nil
}

// validateFetchFn performs validation of the fetchFn parameter to ensure it
// matches the expected signature: func(context.Context) (T, error)
func validateFetchFn(fetchFn any) error {
	if fetchFn == nil {
		return &ConfigError{Field: "fetchFn", Message: "cannot be nil"}
	}

	fnType := reflect.TypeOf(fetchFn)

	if fnType.Kind() != reflect.Func {
		return &ConfigError{Field: "fetchFn", Message: "must be a function"}
	}

	if fnType.NumIn() != 1 || fnType.NumOut() != 2 {
		return &ConfigError{Field: "fetchFn", Message: "must have signature func(context.Context) (T, error)"}
	}

	contextType := reflect.TypeOf((*context.Context)(nil)).Elem()
	if !fnType.In(0).Implements(contextType) {
		return &ConfigError{Field: "fetchFn", Message: "first parameter must be context.Context"}
	}

	errorType := reflect.TypeOf((*error)(nil)).Elem()
	if !fnType.Out(1).Implements(errorType) {
		return &ConfigError{Field: "fetchFn", Message: "second return value must be error"}
	}

	return nil
}

// callFetchFunctionWithReflection calls any function matching the
// cache.FetchFn[T] signature. fetchFn is pre-validated by validateFetchFn.
func callFetchFunctionWithReflection(ctx context.Context, fetchFn any) (any, error) {
	// Direct type assertion for the common case
	if fn, ok := fetchFn.(func(context.Context) (any, error)); ok {
		return fn(ctx)
	}

	results := reflect.ValueOf(fetchFn).Call([]reflect.Value{reflect.ValueOf(ctx)})

	var result any
	if resultValue := results[0]; resultValue.IsValid() && resultValue.CanInterface() {
		result = resultValue.Interface()
	}

	var err error
	if errorValue := results[1]; errorValue.IsValid() && !errorValue.IsNil() {
		err = errorValue.Interface().(error)
	}

	return result, err
}
