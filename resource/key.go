package resource

import "fmt"

// KeyBuilder derives deterministic cache keys for resource queries.
//
// Keys must be injective across semantically different queries. The critical
// rule: whenever a result set depends on the caller's scope, the scope is
// folded into the key. Two tenants issuing the same pagination request must
// never share a cached page:
//
//	users:list:page=1:limit=3:tenant=42
//	users:list:page=1:limit=3:tenant=*
//
// Detail keys carry only the id; detail payloads are identity-independent and
// the access check happens outside the cache.
type KeyBuilder struct{}

// ListKey builds the key for a paginated list query under the given scope.
// Kinds with uniform visibility pass the unrestricted scope, which maps to
// the "*" wildcard segment.
func (KeyBuilder) ListKey(kind string, p Pagination, scope Scope) string {
	return fmt.Sprintf("%s:list:page=%d:limit=%d:tenant=%s", kind, p.Page, p.Limit, scope.Segment())
}

// DetailKey builds the key for a detail-by-id lookup.
func (KeyBuilder) DetailKey(kind, id string) string {
	return fmt.Sprintf("%s:detail:id=%s", kind, id)
}
