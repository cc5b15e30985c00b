package storage

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-tenant-api/model"
)

// CreateSchema creates the tables for every model kind if they do not exist.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*model.Client)(nil),
		(*model.User)(nil),
		(*model.Product)(nil),
	}

	for _, m := range models {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
