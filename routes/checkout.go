package routes

import (
	"github.com/gin-gonic/gin"

	checkoutControllers "github.com/lumina-commerce/storefront-api/controllers/checkout"
	orderControllers "github.com/lumina-commerce/storefront-api/controllers/order"
	"github.com/lumina-commerce/storefront-api/middleware"
	"github.com/lumina-commerce/storefront-api/session"
)

// SetupCheckoutRoutes registers the checkout endpoint. Requires a session token.
func SetupCheckoutRoutes(r *gin.Engine, sessions *session.Store, feed *orderControllers.Feed) {
	r.POST("/checkout", middleware.ValidateToken(sessions), checkoutControllers.PlaceOrder(feed))
}
