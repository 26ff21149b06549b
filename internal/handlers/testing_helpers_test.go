package handlers

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/product-catalog/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/product-catalog/internal/service"
	"github.com/Lixing-Zhang/kart-challenge/product-catalog/pkg/logger"
)

// newTestCatalog builds the catalog router over a fresh SQLite store,
// seeded with the sample products when seed is true.
func newTestCatalog(t *testing.T, seed bool) (http.Handler, *repository.Store) {
	t.Helper()

	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "products.db")
	store, err := repository.Open(ctx, "sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.EnsureSchema(ctx); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}
	if seed {
		if _, err := store.Seed(ctx); err != nil {
			t.Fatalf("failed to seed store: %v", err)
		}
	}

	log := logger.New("error")
	svc := service.NewProductService(repository.NewSQLProductRepository(store))
	router := NewRouter(NewProductHandler(svc, log), NewHealthHandler(store, log), log)

	return router, store
}
