package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lumina-commerce/storefront-api/catalog"
	cartControllers "github.com/lumina-commerce/storefront-api/controllers/cart"
	"github.com/lumina-commerce/storefront-api/middleware"
	"github.com/lumina-commerce/storefront-api/session"
)

// SetupCartRoutes registers all "/cart/*" endpoints. Requires a session token.
func SetupCartRoutes(r *gin.Engine, products catalog.Store, sessions *session.Store) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken(sessions))
	{
		cartGroup.GET("", cartControllers.GetCart())                           // GET /cart
		cartGroup.POST("/items", cartControllers.AddCartItem(products))        // POST /cart/items
		cartGroup.PUT("/items/:product_id", cartControllers.UpdateCartItem())  // PUT /cart/items/:product_id
		cartGroup.DELETE("/items/:product_id", cartControllers.DeleteCartItem()) // DELETE /cart/items/:product_id
		cartGroup.DELETE("", cartControllers.ClearCart())                      // DELETE /cart
		cartGroup.POST("/toggle", cartControllers.ToggleCart())                // POST /cart/toggle
	}
}
