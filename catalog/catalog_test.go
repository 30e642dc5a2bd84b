package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-commerce/storefront-api/models"
)

func TestMemoryStore_GetProduct(t *testing.T) {
	store := NewMemoryStore(SeedProducts())

	p, err := store.GetProduct("2")
	require.NoError(t, err)
	assert.Equal(t, "Nordic Lounge Chair", p.Name)
	assert.Equal(t, 349.00, p.Price)

	_, err = store.GetProduct("999")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestMemoryStore_ListProductsReturnsACopy(t *testing.T) {
	store := NewMemoryStore(SeedProducts())

	products := store.ListProducts()
	require.Len(t, products, 6)
	products[0].Name = "mutated"

	again := store.ListProducts()
	assert.Equal(t, "Lumina X-1 Sneakers", again[0].Name)
}

func TestMemoryStore_Categories(t *testing.T) {
	store := NewMemoryStore(SeedProducts())

	assert.Equal(t, []string{"Fashion", "Furniture", "Electronics", "Accessories"}, store.Categories())
}

func TestLowStockThreshold(t *testing.T) {
	assert.False(t, models.Product{Stock: 5}.LowStock())
	assert.True(t, models.Product{Stock: 4}.LowStock())
	assert.False(t, models.Product{Stock: 100}.LowStock())
}
