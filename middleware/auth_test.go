package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-commerce/storefront-api/auth"
	"github.com/lumina-commerce/storefront-api/middleware"
	"github.com/lumina-commerce/storefront-api/session"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	sessions := session.NewStore()
	t.Cleanup(sessions.Close)

	r := gin.New()
	r.POST("/auth/session", auth.CreateSession(sessions))

	protected := r.Group("/", middleware.ValidateToken(sessions))
	protected.GET("/whoami", func(c *gin.Context) {
		sess, _ := middleware.SessionFromContext(c)
		c.JSON(http.StatusOK, gin.H{"session_id": sess.ID, "role": sess.Role})
	})
	protected.GET("/seller-only", middleware.RequireSeller, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

func createSession(t *testing.T, r *gin.Engine, role string) (token, sessionID string) {
	t.Helper()

	var buf bytes.Buffer
	if role != "" {
		require.NoError(t, json.NewEncoder(&buf).Encode(gin.H{"role": role}))
	}
	req := httptest.NewRequest(http.MethodPost, "/auth/session", &buf)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp["token"].(string), resp["session_id"].(string)
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTokenRoundTrip(t *testing.T) {
	r := newAuthRouter(t)
	token, sessionID := createSession(t, r, "")

	w := get(r, "/whoami", token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, sessionID, resp["session_id"])
	assert.Equal(t, "customer", resp["role"], "customer is the default role")
}

func TestMissingToken(t *testing.T) {
	r := newAuthRouter(t)

	w := get(r, "/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGarbageToken(t *testing.T) {
	r := newAuthRouter(t)

	w := get(r, "/whoami", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInvalidRoleRejected(t *testing.T) {
	r := newAuthRouter(t)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(gin.H{"role": "admin"}))
	req := httptest.NewRequest(http.MethodPost, "/auth/session", &buf)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSellerGate(t *testing.T) {
	r := newAuthRouter(t)

	customerToken, _ := createSession(t, r, "customer")
	w := get(r, "/seller-only", customerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	sellerToken, _ := createSession(t, r, "seller")
	w = get(r, "/seller-only", sellerToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
