package resource

// Pagination defaults and bounds. Limit is capped so a single request cannot
// ask the store for an unbounded page.
const (
	DefaultPage  = 1
	DefaultLimit = 3
	MaxLimit     = 100
)

// Pagination carries the 1-indexed page selection for list operations.
type Pagination struct {
	Page  int
	Limit int
}

// Normalize clamps the pagination parameters into their valid ranges,
// substituting defaults for missing values. Identical normalized parameters
// always produce identical cache keys.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}
