// Package resource implements the tenant-scoped resource services and the
// pieces they orchestrate: scope resolution, deterministic cache keys,
// pagination bounds, and the per-kind configuration records.
//
// # Orchestration
//
// A read flows caller -> Service -> ResolveScope -> KeyBuilder ->
// TagCacheService.GetOrFetch; on a miss the fetch function queries the store
// filtered by scope, encodes the result, and the payload is stored under the
// kind's tag. A write invalidates the kind's tags first and then mutates the
// store; the two steps are deliberately not atomic, which bounds staleness to
// a single read after a racing in-flight fetch.
//
// # Visibility
//
// User records are partitioned by owning tenant. The scope computed for the
// caller is folded into every scoped list cache key, so two tenants can never
// observe each other's cached pages, and authorization denial on a specific
// record is reported as ErrNotFound rather than a distinguishable
// "forbidden", hiding the record's existence.
package resource
