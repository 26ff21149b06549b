package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/product-catalog/internal/models"
)

func TestSampleProducts(t *testing.T) {
	products, err := SampleProducts()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	expected := []models.Product{
		{Name: "Laptop", Description: "High-performance laptop", Price: 999.99, Category: "Electronics"},
		{Name: "Smartphone", Description: "Latest model smartphone", Price: 699.99, Category: "Electronics"},
		{Name: "Desk Chair", Description: "Ergonomic office chair", Price: 199.99, Category: "Furniture"},
		{Name: "Coffee Maker", Description: "Automatic coffee machine", Price: 89.99, Category: "Appliances"},
	}

	if len(products) != len(expected) {
		t.Fatalf("expected %d sample products, got %d", len(expected), len(products))
	}
	for i := range expected {
		if products[i] != expected[i] {
			t.Errorf("sample %d = %+v, want %+v", i, products[i], expected[i])
		}
	}
}

func TestStore_Seed(t *testing.T) {
	t.Run("seeds empty store", func(t *testing.T) {
		store, _ := openTestStore(t)

		inserted, err := store.Seed(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if inserted != 4 {
			t.Errorf("expected 4 rows inserted, got %d", inserted)
		}

		products, err := NewSQLProductRepository(store).GetAll(context.Background())
		if err != nil {
			t.Fatalf("failed to list products: %v", err)
		}
		if len(products) != 4 {
			t.Errorf("expected 4 products, got %d", len(products))
		}
	})

	t.Run("second seed is a no-op", func(t *testing.T) {
		store, _ := openTestStore(t)

		if _, err := store.Seed(context.Background()); err != nil {
			t.Fatalf("first seed failed: %v", err)
		}

		inserted, err := store.Seed(context.Background())
		if err != nil {
			t.Fatalf("second seed failed: %v", err)
		}
		if inserted != 0 {
			t.Errorf("expected 0 rows inserted, got %d", inserted)
		}

		products, err := NewSQLProductRepository(store).GetAll(context.Background())
		if err != nil {
			t.Fatalf("failed to list products: %v", err)
		}
		if len(products) != 4 {
			t.Errorf("expected 4 products after reseed, got %d", len(products))
		}
	})

	t.Run("concurrent startups seed once", func(t *testing.T) {
		_, dsn := openTestStore(t)

		const instances = 4
		stores := make([]*Store, instances)
		for i := range stores {
			s, err := Open(context.Background(), "sqlite", dsn)
			if err != nil {
				t.Fatalf("failed to open instance %d: %v", i, err)
			}
			defer s.Close()
			stores[i] = s
		}

		var (
			wg    sync.WaitGroup
			mu    sync.Mutex
			total int
			errs  []error
		)
		for _, s := range stores {
			wg.Add(1)
			go func(s *Store) {
				defer wg.Done()

				n, err := s.Seed(context.Background())
				mu.Lock()
				defer mu.Unlock()
				total += n
				if err != nil {
					errs = append(errs, err)
				}
			}(s)
		}
		wg.Wait()

		if len(errs) > 0 {
			t.Fatalf("unexpected seed errors: %v", errs)
		}
		if total != 4 {
			t.Errorf("expected 4 rows inserted across instances, got %d", total)
		}
	})
}

func TestWithImmediateTxLock(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"file:products.db", "file:products.db?_txlock=immediate"},
		{"file:products.db?_pragma=busy_timeout(5000)", "file:products.db?_pragma=busy_timeout(5000)&_txlock=immediate"},
		{"file:products.db?_txlock=exclusive", "file:products.db?_txlock=exclusive"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			if got := withImmediateTxLock(tt.dsn); got != tt.want {
				t.Errorf("withImmediateTxLock(%q) = %q, want %q", tt.dsn, got, tt.want)
			}
		})
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	if _, err := Open(context.Background(), "mysql", "root@/catalog"); err == nil {
		t.Error("expected error for unsupported driver")
	}
}

func TestStore_BulkInsertPlaceholders(t *testing.T) {
	products := []models.Product{
		{Name: "A", Description: "a", Price: 1, Category: "X"},
		{Name: "B", Description: "b", Price: 2, Category: "Y"},
	}

	pg := &Store{dialect: dialects["postgres"]}
	query, args := pg.bulkInsert(products)

	want := `INSERT INTO products (name, description, price, category) VALUES ($1, $2, $3, $4), ($5, $6, $7, $8)`
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}
	if len(args) != 8 {
		t.Errorf("expected 8 args, got %d", len(args))
	}
}
