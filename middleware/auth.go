package middleware

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/lumina-commerce/storefront-api/session"
)

// Context keys set by ValidateToken.
const (
	ContextSession = "session"
	ContextRole    = "role"
)

// ValidateToken resolves the session behind the Authorization token and
// puts it on the request context.
func ValidateToken(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		sessionID, _ := claims["session_id"].(string)
		sess, err := sessions.Get(sessionID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired, start a new one"})
			c.Abort()
			return
		}

		c.Set(ContextSession, sess)
		c.Set(ContextRole, sess.Role)

		c.Next()
	}
}

// SessionFromContext pulls the session set by ValidateToken. The bool is
// false on routes that skipped the middleware.
func SessionFromContext(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(ContextSession)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}
