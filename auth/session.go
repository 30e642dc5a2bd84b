package auth

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/lumina-commerce/storefront-api/session"
)

type SessionRequest struct {
	Role string `json:"role"`
}

// POST /auth/session
//
// Starts a shopping session and returns a signed token for it. The demo
// identity provider takes the requested role at face value; customer is
// the default, anonymous covers guests who just browse.
func CreateSession(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SessionRequest
		// Body is optional; an empty body means a customer session.
		_ = c.ShouldBindJSON(&req)

		role := session.RoleCustomer
		if req.Role != "" {
			parsed, err := session.ParseRole(req.Role)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			role = parsed
		}

		sess := sessions.Create(role)

		token, err := issueSessionToken(sess)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sess.ID,
			"role":       sess.Role,
			"token":      token,
			"expires_at": sess.ExpiresAt,
		})
	}
}

func issueSessionToken(s *session.Session) (string, error) {
	claims := jwt.MapClaims{
		"session_id": s.ID,
		"role":       string(s.Role),
		"exp":        s.ExpiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
