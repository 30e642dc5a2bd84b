package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumina-commerce/storefront-api/session"
)

// RequireSeller gates seller-only views. Roles affect nothing but
// visibility; cart and checkout never look at them.
func RequireSeller(c *gin.Context) {
	role, exists := c.Get(ContextRole)
	if !exists || role != session.RoleSeller {
		c.JSON(http.StatusForbidden, gin.H{"error": "Seller access required"})
		c.Abort()
		return
	}
	c.Next()
}
