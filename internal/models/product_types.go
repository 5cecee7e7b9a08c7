package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product is the model for the 'products' table, joined with its category name.
// Nullable columns are pointers so they serialize as JSON null.
type Product struct {
	ID            int64           `json:"id" db:"id"`
	Name          string          `json:"name" db:"name"`
	Description   *string         `json:"description" db:"description"`
	Price         decimal.Decimal `json:"price" db:"price"`
	CategoryID    *int64          `json:"category_id" db:"category_id"`
	ImageURL      *string         `json:"image_url" db:"image_url"`
	StockQuantity int             `json:"stock_quantity" db:"stock_quantity"`
	IsActive      bool            `json:"is_active" db:"is_active"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`

	// Join (not in the products table)
	CategoryName *string `json:"category_name" db:"-"`
}

// MarshalJSON writes the price as a two-place fixed-point string, the way
// the DECIMAL(10,2) column stores it.
func (p Product) MarshalJSON() ([]byte, error) {
	type row Product
	return json.Marshal(struct {
		row
		Price string `json:"price"`
	}{row: row(p), Price: p.Price.StringFixed(2)})
}

// Pagination describes the page a product listing covers.
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

// SinglePage returns pagination metadata for one page holding all n rows.
func SinglePage(n int) Pagination {
	return Pagination{
		CurrentPage:  1,
		TotalPages:   1,
		TotalItems:   n,
		ItemsPerPage: n,
	}
}

// ProductList is the envelope returned by the product listing.
type ProductList struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}
