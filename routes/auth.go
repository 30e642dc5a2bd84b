package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lumina-commerce/storefront-api/auth"
	"github.com/lumina-commerce/storefront-api/session"
)

// SetupAuthRoutes registers the "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, sessions *session.Store) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/session", auth.CreateSession(sessions)) // POST /auth/session
	}
}
