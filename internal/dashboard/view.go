package dashboard

import "github.com/Lixing-Zhang/kart-challenge/product-catalog/internal/models"

// AllCategories is the selector option that disables filtering
const AllCategories = "All"

// Categories returns the distinct categories in order of first appearance
func Categories(products []models.Product) []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)

	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}

	return categories
}

// Filter returns the products whose category equals category.
// AllCategories and the empty string return every product.
func Filter(products []models.Product, category string) []models.Product {
	filtered := make([]models.Product, 0, len(products))

	for _, p := range products {
		if category == AllCategories || category == "" || p.Category == category {
			filtered = append(filtered, p)
		}
	}

	return filtered
}
