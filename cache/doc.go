// Package cache provides the tag-aware caching contract used in front of
// expensive resource lookups.
//
// # Overview
//
// The package exports one main interface and its default implementation:
//
//   - TagCacheService: a read-through cache where every entry carries
//     invalidation tags and tags can be invalidated in bulk
//
// Entries have no meaningful time-based lifecycle here; freshness is driven by
// tag invalidation issued on mutations. The TTL in Config is a backstop for
// memory pressure, not a consistency mechanism.
//
// # Basic Usage
//
//	svc, err := cache.NewTagCacheService(cache.DefaultConfig())
//	if err != nil {
//		return err
//	}
//
//	payload, err := cache.GetOrFetch(ctx, svc, "products:list:page=1:limit=3", []string{"productsCache"},
//		func(ctx context.Context) ([]byte, error) {
//			return loadAndEncodeProducts(ctx)
//		})
//
//	// later, on any product mutation:
//	svc.InvalidateTags(ctx, "productsCache", "productCache")
//
// # Guarantees
//
//   - Single-flight: concurrent GetOrFetch calls for the same missing key run
//     the fetch function once; every caller receives the same result.
//   - No poisoned entries: a failed fetch stores nothing, the error propagates
//     untouched, and the next call retries.
//   - Immediate invalidation: after InvalidateTags returns, no GetOrFetch call
//     observes an entry that carried one of the invalidated tags. A fetch that
//     was already in flight when the invalidation landed may still serve its
//     result to the caller that issued it, but the implementation detects the
//     lost registration and evicts the stored entry, so staleness is bounded
//     to that one read and the next request recomputes.
//
// For the concrete sturdyc-backed implementation, see internal/cacheinfra.
package cache
