package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

// SeedCategory is one row of the fixed starter catalog.
type SeedCategory struct {
	Name        string
	Description string
}

// SeedProduct is one product of the fixed starter catalog.
// Category is the 1-based position of its category in SeedCategories.
type SeedProduct struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	Category      int
	ImageURL      string
	StockQuantity int
}

// SeedCategories is inserted in this order.
var SeedCategories = []SeedCategory{
	{"Electronics", "Electronic devices and gadgets"},
	{"Clothing", "Fashion and apparel"},
	{"Books", "Books and educational materials"},
	{"Home & Garden", "Home improvement and garden supplies"},
	{"Sports", "Sports and fitness equipment"},
}

// SeedProducts is inserted in this order, after SeedCategories.
var SeedProducts = []SeedProduct{
	{"Smartphone Pro Max", "Latest flagship smartphone with advanced features", decimal.RequireFromString("999.99"), 1, "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400", 50},
	{"Wireless Headphones", "Premium noise-cancelling wireless headphones", decimal.RequireFromString("299.99"), 1, "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400", 75},
	{"Laptop Ultra", "High-performance laptop for professionals", decimal.RequireFromString("1299.99"), 1, "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400", 30},
	{"Smart Watch", "Fitness tracking smartwatch with health monitoring", decimal.RequireFromString("399.99"), 1, "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400", 60},
	{"Classic T-Shirt", "Comfortable cotton t-shirt in various colors", decimal.RequireFromString("29.99"), 2, "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400", 100},
	{"Denim Jeans", "Premium quality denim jeans with perfect fit", decimal.RequireFromString("79.99"), 2, "https://images.unsplash.com/photo-1542272604-787c3835535d?w=400", 80},
	{"Winter Jacket", "Warm and stylish winter jacket for cold weather", decimal.RequireFromString("149.99"), 2, "https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=400", 45},
	{"Running Shoes", "Comfortable running shoes for daily exercise", decimal.RequireFromString("119.99"), 2, "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=400", 65},
	{"Programming Guide", "Complete guide to modern programming languages", decimal.RequireFromString("49.99"), 3, "https://images.unsplash.com/photo-1532012197267-da84d127e765?w=400", 40},
	{"Fiction Novel", "Bestselling fiction novel by renowned author", decimal.RequireFromString("19.99"), 3, "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400", 55},
	{"Cookbook Deluxe", "Professional cookbook with 500+ recipes", decimal.RequireFromString("39.99"), 3, "https://images.unsplash.com/photo-1589829085413-56de8ae18c73?w=400", 35},
	{"Coffee Maker", "Automatic coffee maker with programmable features", decimal.RequireFromString("89.99"), 4, "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=400", 25},
	{"Garden Tools Set", "Complete set of essential garden tools", decimal.RequireFromString("69.99"), 4, "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=400", 40},
	{"Decorative Lamp", "Modern decorative lamp for living room", decimal.RequireFromString("129.99"), 4, "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400", 30},
	{"Yoga Mat", "Premium non-slip yoga mat for all exercises", decimal.RequireFromString("39.99"), 5, "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400", 70},
	{"Basketball", "Official size basketball for indoor/outdoor play", decimal.RequireFromString("24.99"), 5, "https://images.unsplash.com/photo-1546519638-68e109498ffc?w=400", 85},
	{"Fitness Tracker", "Advanced fitness tracker with heart rate monitor", decimal.RequireFromString("199.99"), 5, "https://images.unsplash.com/photo-1575311373937-040b8e1fd5b6?w=400", 50},
}

// SeedIfEmpty seeds the catalog only when the categories table has no rows.
// It reports whether rows were inserted.
func SeedIfEmpty(ctx context.Context, db *sql.DB) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return false, fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return false, nil
	}
	if err := Seed(ctx, db); err != nil {
		return false, err
	}
	return true, nil
}

// Seed inserts the fixed catalog in one transaction.
func Seed(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	// 1. --- Categories ---
	categoryIDs := make([]int64, len(SeedCategories))
	for i, cat := range SeedCategories {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO categories (name, description) VALUES (?, ?)",
			cat.Name, cat.Description)
		if err != nil {
			return fmt.Errorf("insert category %q: %w", cat.Name, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("category %q id: %w", cat.Name, err)
		}
		categoryIDs[i] = id
	}

	// 2. --- Products ---
	productQuery := `
		INSERT INTO products
		(name, description, price, category_id, image_url, stock_quantity)
		VALUES (?, ?, ?, ?, ?, ?)`
	for _, p := range SeedProducts {
		if _, err := tx.ExecContext(ctx, productQuery,
			p.Name, p.Description, p.Price.StringFixed(2), categoryIDs[p.Category-1], p.ImageURL, p.StockQuantity,
		); err != nil {
			return fmt.Errorf("insert product %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}
