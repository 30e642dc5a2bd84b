package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumina-commerce/storefront-api/catalog"
)

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(store catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		product, err := store.GetProduct(id)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, newProductView(product))
	}
}
