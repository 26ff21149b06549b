package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/kart-challenge/product-catalog/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

const productColumns = `id, name, description, price, category`

// SQLProductRepository implements ProductRepository on top of the relational store.
// Each call holds its own connection and releases it before returning.
type SQLProductRepository struct {
	store *Store
}

// NewSQLProductRepository creates a product repository backed by store
func NewSQLProductRepository(store *Store) *SQLProductRepository {
	return &SQLProductRepository{
		store: store,
	}
}

// GetAll returns all products ordered by id
func (r *SQLProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0)

	err := r.store.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
		if err != nil {
			return fmt.Errorf("failed to query products: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			product, err := scanProduct(rows)
			if err != nil {
				return err
			}
			products = append(products, product)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// GetByID returns a product by its ID
func (r *SQLProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product

	err := r.store.withConn(ctx, func(conn *sql.Conn) error {
		row := conn.QueryRowContext(ctx,
			`SELECT `+productColumns+` FROM products WHERE id = `+r.store.dialect.placeholder(1), id)

		var err error
		product, err = scanProduct(row)
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return &product, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanProduct maps one products row onto the wire struct.
func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category); err != nil {
		return p, fmt.Errorf("failed to scan product: %w", err)
	}
	return p, nil
}
