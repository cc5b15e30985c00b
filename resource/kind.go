package resource

// Kind describes one resource kind to the generic service: its cache
// namespace and tags, whether its visibility is tenant-scoped, and the small
// set of per-kind behaviours (owner access, field merge, validation,
// encoding) that the uniform operations delegate to.
//
// One Kind value per resource replaces what would otherwise be a copy of the
// whole service per kind.
type Kind[T any] struct {
	// Name is the plural kind name and cache key namespace, e.g. "users".
	Name string

	// ListTag and DetailTag are the invalidation tags carried by cached list
	// and detail entries for this kind.
	ListTag   string
	DetailTag string

	// Scoped marks kinds whose visibility depends on the caller's tenant.
	// Unscoped kinds are uniformly visible and cache under the wildcard scope.
	Scoped bool

	// ID returns the record's id.
	ID func(record T) string

	// SetID assigns the record's id. Create uses it to discard any
	// client-supplied id; ids are server-managed.
	SetID func(record *T, id string)

	// OwnerID returns the owning tenant id, or "" when unassigned.
	// Required when Scoped.
	OwnerID func(record T) string

	// SetOwner assigns the owning tenant. Required when Scoped.
	SetOwner func(record *T, tenantID string)

	// Merge copies exactly the client-mutable fields of patch onto current.
	// Server-managed fields (id, ownership, credentials) are never merged.
	Merge func(current *T, patch T)

	// Validate checks the record, returning nil, an ozzo validation.Errors,
	// or a *ValidationError.
	Validate func(record T) error

	// EncodeOne and EncodeList produce the response payloads stored in the
	// cache, so serialization runs at most once per cache miss.
	EncodeOne  func(record T) ([]byte, error)
	EncodeList func(records []T) ([]byte, error)
}
