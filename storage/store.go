package storage

import (
	"context"
	"database/sql"
	"errors"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-tenant-api/resource"
)

// ModelHandlers holds the per-model accessors the store cannot express
// generically.
type ModelHandlers[T any] struct {
	GetID func(record T) string
	SetID func(record *T, id string)
}

// BunStore persists one model kind through bun. It implements
// resource.Store[T].
type BunStore[T any] struct {
	db          *bun.DB
	handlers    ModelHandlers[T]
	ownerColumn string
}

// StoreOption configures optional store behaviour.
type StoreOption[T any] func(*BunStore[T])

// WithOwnerColumn names the column holding the owning tenant id, enabling
// tenant-filtered pages for scoped kinds.
func WithOwnerColumn[T any](column string) StoreOption[T] {
	return func(s *BunStore[T]) { s.ownerColumn = column }
}

// NewBunStore creates a store for one model kind.
func NewBunStore[T any](db *bun.DB, handlers ModelHandlers[T], opts ...StoreOption[T]) *BunStore[T] {
	s := &BunStore[T]{db: db, handlers: handlers}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindPage returns one page of records ordered by id ascending. A non-empty
// tenantID narrows the page to that tenant's records; it is ignored for
// stores without an owner column.
func (s *BunStore[T]) FindPage(ctx context.Context, page, limit int, tenantID string) ([]T, error) {
	criteria := []repository.SelectCriteria{OrderByID(), Paginate(page, limit)}
	if tenantID != "" && s.ownerColumn != "" {
		criteria = append(criteria, OwnedBy(s.ownerColumn, tenantID))
	}

	records := make([]T, 0, limit)
	q := s.db.NewSelect().Model(&records)
	for _, c := range criteria {
		q = c(q)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	return records, nil
}

// FindByID returns the record with the given id, or resource.ErrNotFound.
func (s *BunStore[T]) FindByID(ctx context.Context, id string) (T, error) {
	var record T
	err := s.db.NewSelect().Model(&record).Where("id = ?", id).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return record, resource.ErrNotFound
	}
	return record, err
}

// Persist inserts the record, assigning a fresh id when it has none, or
// updates the existing row.
func (s *BunStore[T]) Persist(ctx context.Context, record T) (T, error) {
	if s.handlers.GetID(record) == "" {
		s.handlers.SetID(&record, uuid.New().String())
		_, err := s.db.NewInsert().Model(&record).Exec(ctx)
		return record, err
	}

	res, err := s.db.NewUpdate().Model(&record).WherePK().Exec(ctx)
	if err != nil {
		return record, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Caller-chosen id that does not exist yet, e.g. seeded data.
		_, err := s.db.NewInsert().Model(&record).Exec(ctx)
		return record, err
	}
	return record, nil
}

// Remove deletes the record by primary key.
func (s *BunStore[T]) Remove(ctx context.Context, record T) error {
	_, err := s.db.NewDelete().Model(&record).WherePK().Exec(ctx)
	return err
}

// CountWhere returns how many records have column equal to value.
func (s *BunStore[T]) CountWhere(ctx context.Context, column string, value any) (int, error) {
	return s.db.NewSelect().Model((*T)(nil)).Where("? = ?", bun.Ident(column), value).Count(ctx)
}

// FindOne returns the first record with column equal to value, or
// resource.ErrNotFound.
func (s *BunStore[T]) FindOne(ctx context.Context, column string, value any) (T, error) {
	var record T
	err := s.db.NewSelect().Model(&record).Where("? = ?", bun.Ident(column), value).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return record, resource.ErrNotFound
	}
	return record, err
}
