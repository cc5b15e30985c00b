package resource

// Role names recognised by the authorization rules.
const (
	RoleAdmin    = "ADMIN"
	RoleStandard = "STANDARD"
)

// Identity is the already-authenticated caller. It is supplied explicitly to
// every service operation; nothing in this package reads ambient request state.
type Identity struct {
	ID    string
	Roles []string
}

// HasRole reports whether the identity carries the given role.
func (i Identity) HasRole(role string) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.HasRole(RoleAdmin)
}

// Scope is the visibility restriction computed for a caller: either
// unrestricted, or restricted to a single tenant. It is derived fresh per
// request and never persisted or cached.
type Scope struct {
	tenantID string
}

// Unrestricted returns the scope that sees every record.
func Unrestricted() Scope {
	return Scope{}
}

// RestrictedTo returns the scope limited to records owned by tenantID.
func RestrictedTo(tenantID string) Scope {
	return Scope{tenantID: tenantID}
}

// IsRestricted reports whether the scope is limited to one tenant.
func (s Scope) IsRestricted() bool {
	return s.tenantID != ""
}

// TenantID returns the tenant the scope is restricted to, or "" when unrestricted.
func (s Scope) TenantID() string {
	return s.tenantID
}

// Segment returns the scope's cache key segment: the tenant id, or "*" for
// the unrestricted wildcard.
func (s Scope) Segment() string {
	if s.tenantID == "" {
		return "*"
	}
	return s.tenantID
}

// ResolveScope computes the visibility scope for a caller. Admins see
// everything; every other caller is restricted to their own tenant, since a
// client account is itself the authentication principal.
func ResolveScope(ident Identity) Scope {
	if ident.IsAdmin() {
		return Unrestricted()
	}
	return RestrictedTo(ident.ID)
}
