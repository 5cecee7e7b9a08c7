package models

import (
	"encoding/json"
	"time"

	"github.com/gosimple/slug"
)

// Category defines the struct for the 'categories' table
type Category struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"` // NULL allowed
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Slug is derived from the name on the way out; it is never stored.
func (c Category) Slug() string {
	return slug.Make(c.Name)
}

// MarshalJSON adds the derived slug next to the stored columns.
func (c Category) MarshalJSON() ([]byte, error) {
	type row Category
	return json.Marshal(struct {
		row
		Slug string `json:"slug"`
	}{row: row(c), Slug: c.Slug()})
}
