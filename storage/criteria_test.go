package storage

import (
	"strings"
	"testing"

	"github.com/goliatone/go-tenant-api/model"
)

func TestCriteriaRendering(t *testing.T) {
	db, err := OpenDB("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("OpenDB failed: %v", err)
	}
	defer db.Close()

	q := db.NewSelect().Model((*model.User)(nil))
	q = OrderByID()(q)
	q = Paginate(2, 3)(q)
	q = OwnedBy("client_id", "c-1")(q)

	sql := q.String()
	for _, want := range []string{
		"ORDER BY id ASC",
		"LIMIT 3",
		"OFFSET 3",
		`"client_id" = 'c-1'`,
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("query %q missing %q", sql, want)
		}
	}
}

func TestPaginateFirstPageHasNoOffset(t *testing.T) {
	db, err := OpenDB("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("OpenDB failed: %v", err)
	}
	defer db.Close()

	q := Paginate(1, 3)(db.NewSelect().Model((*model.User)(nil)))
	if sql := q.String(); strings.Contains(sql, "OFFSET") {
		t.Errorf("first page must not offset: %q", sql)
	}
}

func TestOpenDBUnsupportedDriver(t *testing.T) {
	if _, err := OpenDB("oracle", "dsn"); err == nil {
		t.Error("expected error for unsupported driver")
	}
}
