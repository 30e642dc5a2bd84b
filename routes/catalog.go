package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lumina-commerce/storefront-api/catalog"
	productControllers "github.com/lumina-commerce/storefront-api/controllers/product"
)

// SetupCatalogRoutes registers the public browsing endpoints.
func SetupCatalogRoutes(r *gin.Engine, products catalog.Store) {
	r.GET("/products", productControllers.GetProducts(products))       // GET /products
	r.GET("/products/:id", productControllers.GetProductByID(products)) // GET /products/:id
	r.GET("/categories", productControllers.GetCategories(products))   // GET /categories
}
