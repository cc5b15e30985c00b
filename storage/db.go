package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// OpenDB opens a bun database for the configured driver.
// Supported drivers: "sqlite3" and "postgres".
func OpenDB(driver, dsn string) (*bun.DB, error) {
	switch driver {
	case "sqlite3":
		sqldb, err := sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, err
		}
		return bun.NewDB(sqldb, sqlitedialect.New()), nil
	case "postgres":
		sqldb, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, err
		}
		return bun.NewDB(sqldb, pgdialect.New()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
