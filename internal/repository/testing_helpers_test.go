package repository

import (
	"context"
	"path/filepath"
	"testing"
)

// openTestStore opens a SQLite store in a temporary directory with the schema applied.
func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "products.db") + "?_pragma=busy_timeout(5000)"
	store, err := Open(context.Background(), "sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	return store, dsn
}
