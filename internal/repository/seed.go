package repository

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/Lixing-Zhang/kart-challenge/product-catalog/internal/models"
	"github.com/gocarina/gocsv"
)

//go:embed seed_products.csv
var seedCSV []byte

// SampleProducts returns the fixed sample rows inserted into an empty store.
// IDs are zero; the store assigns them on insert.
func SampleProducts() ([]models.Product, error) {
	var products []models.Product
	if err := gocsv.UnmarshalBytes(seedCSV, &products); err != nil {
		return nil, fmt.Errorf("failed to parse sample products: %w", err)
	}
	return products, nil
}

// Seed inserts the sample products if the products table is empty and
// returns the number of rows inserted. The count and the insert run in a
// single transaction holding the table's write lock, so concurrent callers
// never insert the sample set twice.
func (s *Store) Seed(ctx context.Context) (int, error) {
	products, err := SampleProducts()
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	if s.dialect.lockForSeed != "" {
		if _, err := tx.ExecContext(ctx, s.dialect.lockForSeed); err != nil {
			return 0, fmt.Errorf("failed to lock products table: %w", err)
		}
	}

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return 0, tx.Commit()
	}

	query, args := s.bulkInsert(products)
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("failed to insert sample products: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit sample products: %w", err)
	}

	return len(products), nil
}

// bulkInsert builds one multi-row INSERT for the given products.
func (s *Store) bulkInsert(products []models.Product) (string, []any) {
	var b strings.Builder
	b.WriteString(`INSERT INTO products (name, description, price, category) VALUES `)

	args := make([]any, 0, len(products)*4)
	for i, p := range products {
		if i > 0 {
			b.WriteString(", ")
		}
		n := len(args)
		fmt.Fprintf(&b, "(%s, %s, %s, %s)",
			s.dialect.placeholder(n+1),
			s.dialect.placeholder(n+2),
			s.dialect.placeholder(n+3),
			s.dialect.placeholder(n+4),
		)
		args = append(args, p.Name, p.Description, p.Price, p.Category)
	}

	return b.String(), args
}
