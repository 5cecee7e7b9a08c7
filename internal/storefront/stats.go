package storefront

import "github.com/01moynul/storefront/internal/models"

// Stats are the aggregate figures shown above the product grid.
type Stats struct {
	TotalProducts int
	Categories    int
}

// Summarize counts products and the distinct category names among them.
// Products without a category count together as one more distinct value.
func Summarize(products []models.Product) Stats {
	names := make(map[string]struct{})
	uncategorized := false
	for _, p := range products {
		if p.CategoryName == nil {
			uncategorized = true
			continue
		}
		names[*p.CategoryName] = struct{}{}
	}

	categories := len(names)
	if uncategorized {
		categories++
	}
	return Stats{TotalProducts: len(products), Categories: categories}
}
