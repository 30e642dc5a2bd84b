package models

// LowStockThreshold is the stock level below which the storefront shows a
// "Low Stock" badge. Display-only; nothing enforces it.
const LowStockThreshold = 5

// Product is a catalog record. The catalog owns these; the rest of the
// system treats them as immutable.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Stock       int     `json:"stock"`
}

func (p Product) LowStock() bool {
	return p.Stock < LowStockThreshold
}
