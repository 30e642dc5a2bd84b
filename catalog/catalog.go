package catalog

import (
	"errors"
	"sync"

	"github.com/lumina-commerce/storefront-api/models"
)

var ErrProductNotFound = errors.New("product not found")

// Store is the catalog provider as seen by the rest of the system:
// read-only product records.
type Store interface {
	// ListProducts returns all products in catalog order.
	ListProducts() []models.Product

	// GetProduct returns the product with the given id, or
	// ErrProductNotFound.
	GetProduct(id string) (models.Product, error)

	// Categories returns the distinct product categories in catalog order.
	Categories() []string
}

// MemoryStore implements Store with in-memory storage.
type MemoryStore struct {
	mu       sync.RWMutex
	products []models.Product
	byID     map[string]models.Product
}

// NewMemoryStore creates a catalog holding the given products.
func NewMemoryStore(products []models.Product) *MemoryStore {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &MemoryStore{products: products, byID: byID}
}

func (s *MemoryStore) ListProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *MemoryStore) GetProduct(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *MemoryStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var categories []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}
