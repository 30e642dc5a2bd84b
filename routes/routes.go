package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lumina-commerce/storefront-api/catalog"
	orderControllers "github.com/lumina-commerce/storefront-api/controllers/order"
	"github.com/lumina-commerce/storefront-api/session"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, products catalog.Store, sessions *session.Store, feed *orderControllers.Feed) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, sessions)

	// Public catalog browsing
	SetupCatalogRoutes(r, products)

	// Cart + checkout (session-token protected)
	SetupCartRoutes(r, products, sessions)
	SetupCheckoutRoutes(r, sessions, feed)

	// Seller-only dashboard views
	SetupSellerRoutes(r, products, sessions, feed)
}
