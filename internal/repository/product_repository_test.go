package repository

import (
	"context"
	"errors"
	"testing"
)

func TestSQLProductRepository_GetAll(t *testing.T) {
	t.Run("empty store returns empty slice", func(t *testing.T) {
		store, _ := openTestStore(t)
		repo := NewSQLProductRepository(store)

		products, err := repo.GetAll(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if products == nil {
			t.Error("expected non-nil empty slice")
		}
		if len(products) != 0 {
			t.Errorf("expected 0 products, got %d", len(products))
		}
	})

	t.Run("seeded store is ordered by id", func(t *testing.T) {
		store, _ := openTestStore(t)
		if _, err := store.Seed(context.Background()); err != nil {
			t.Fatalf("failed to seed: %v", err)
		}
		repo := NewSQLProductRepository(store)

		products, err := repo.GetAll(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}

		names := []string{"Laptop", "Smartphone", "Desk Chair", "Coffee Maker"}
		if len(products) != len(names) {
			t.Fatalf("expected %d products, got %d", len(names), len(products))
		}
		for i, p := range products {
			if p.ID != int64(i+1) {
				t.Errorf("product %d: expected id %d, got %d", i, i+1, p.ID)
			}
			if p.Name != names[i] {
				t.Errorf("product %d: expected name %s, got %s", i, names[i], p.Name)
			}
		}
	})
}

func TestSQLProductRepository_GetByID(t *testing.T) {
	store, _ := openTestStore(t)
	if _, err := store.Seed(context.Background()); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	repo := NewSQLProductRepository(store)

	tests := []struct {
		name     string
		id       int64
		wantName string
		wantErr  error
	}{
		{"first", 1, "Laptop", nil},
		{"last", 4, "Coffee Maker", nil},
		{"unknown", 99, "", ErrProductNotFound},
		{"zero", 0, "", ErrProductNotFound},
		{"negative", -1, "", ErrProductNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := repo.GetByID(context.Background(), tt.id)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("GetByID(%d) error = %v, want %v", tt.id, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("GetByID(%d) unexpected error = %v", tt.id, err)
			}
			if product.ID != tt.id {
				t.Errorf("expected id %d, got %d", tt.id, product.ID)
			}
			if product.Name != tt.wantName {
				t.Errorf("expected name %s, got %s", tt.wantName, product.Name)
			}
		})
	}
}

func TestSQLProductRepository_ClosedStore(t *testing.T) {
	store, _ := openTestStore(t)
	repo := NewSQLProductRepository(store)
	store.Close()

	if _, err := repo.GetAll(context.Background()); err == nil {
		t.Error("expected error from closed store")
	}
	if _, err := repo.GetByID(context.Background(), 1); err == nil || errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected store failure, got %v", err)
	}
}
