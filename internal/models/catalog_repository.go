package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrProductNotFound is returned when no active product matches an id.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository runs the read queries of the catalog against MySQL.
type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const productColumns = `
	SELECT
		p.id, p.name, p.description, p.price, p.category_id, p.image_url,
		p.stock_quantity, p.is_active, p.created_at, p.updated_at,
		c.name AS category_name
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.id`

// ListActiveProducts returns every active product, newest first.
func (r *CatalogRepository) ListActiveProducts(ctx context.Context) ([]Product, error) {
	query := productColumns + `
	WHERE p.is_active = TRUE
	ORDER BY p.created_at DESC, p.id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// GetActiveProduct returns the active product with the given id,
// or ErrProductNotFound when it is missing or inactive.
func (r *CatalogRepository) GetActiveProduct(ctx context.Context, id int64) (*Product, error) {
	query := productColumns + `
	WHERE p.id = ? AND p.is_active = TRUE`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("query product %d: %w", id, err)
	}
	return &p, nil
}

// ListCategories returns all categories ordered by name.
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, description, created_at FROM categories ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := []Category{}
	for rows.Next() {
		var cat Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// Ping checks that the pool can still reach the database.
func (r *CatalogRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.CategoryID,
		&p.ImageURL,
		&p.StockQuantity,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.CategoryName,
	)
	return p, err
}
