package models

// Product represents a catalog product.
// The same struct is the wire format of the catalog API and a row of the products table.
type Product struct {
	ID          int64   `json:"id" csv:"id"`
	Name        string  `json:"name" csv:"name"`
	Description string  `json:"description" csv:"description"`
	Price       float64 `json:"price" csv:"price"`
	Category    string  `json:"category" csv:"category"`
}
