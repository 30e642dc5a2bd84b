package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lumina-commerce/storefront-api/catalog"
	orderControllers "github.com/lumina-commerce/storefront-api/controllers/order"
	productControllers "github.com/lumina-commerce/storefront-api/controllers/product"
	sellerControllers "github.com/lumina-commerce/storefront-api/controllers/seller"
	"github.com/lumina-commerce/storefront-api/middleware"
	"github.com/lumina-commerce/storefront-api/session"
)

// SetupSellerRoutes registers the "/seller/*" endpoints. Seller role required.
func SetupSellerRoutes(r *gin.Engine, products catalog.Store, sessions *session.Store, feed *orderControllers.Feed) {
	sellerGroup := r.Group("/seller")
	sellerGroup.Use(middleware.ValidateToken(sessions), middleware.RequireSeller)
	{
		sellerGroup.GET("/dashboard", sellerControllers.Dashboard(products, feed))        // GET /seller/dashboard
		sellerGroup.GET("/products/export", productControllers.ExportProductsToExcel(products)) // GET /seller/products/export
		sellerGroup.GET("/orders/ws", feed.WebSocketHandler)                              // GET /seller/orders/ws
	}
}
