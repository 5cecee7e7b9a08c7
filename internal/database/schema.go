package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// Schema statements, in creation order. Both are safe to run on every boot.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(200) NOT NULL,
		description TEXT,
		price DECIMAL(10,2) NOT NULL,
		category_id INT,
		image_url VARCHAR(500),
		stock_quantity INT DEFAULT 0,
		is_active BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		FOREIGN KEY (category_id) REFERENCES categories(id)
	)`,
}

// CreateSchema issues the idempotent CREATE TABLE statements.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// Bootstrap creates the schema and seeds the catalog when it is empty.
// A schema failure is returned; a seed failure is logged and swallowed.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	if err := CreateSchema(ctx, db); err != nil {
		return err
	}

	seeded, err := SeedIfEmpty(ctx, db)
	if err != nil {
		log.Printf("Error inserting sample data: %v", err)
		return nil
	}
	if seeded {
		log.Println("Sample data inserted successfully")
	}
	return nil
}
