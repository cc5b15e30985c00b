package storage

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"
)

// OrderByID makes pages deterministic: identical parameters always return
// the same slice of records.
func OrderByID() repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("id ASC")
	}
}

// Paginate applies 1-indexed pagination.
func Paginate(page, limit int) repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Limit(limit).Offset((page - 1) * limit)
	}
}

// OwnedBy restricts the query to records whose owner column equals tenantID.
func OwnedBy(column, tenantID string) repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("? = ?", bun.Ident(column), tenantID)
	}
}
