package checkoutControllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-commerce/storefront-api/catalog"
	checkoutControllers "github.com/lumina-commerce/storefront-api/controllers/checkout"
	orderControllers "github.com/lumina-commerce/storefront-api/controllers/order"
	"github.com/lumina-commerce/storefront-api/middleware"
	"github.com/lumina-commerce/storefront-api/models"
	"github.com/lumina-commerce/storefront-api/session"
)

func newTestRouter(t *testing.T) (*gin.Engine, *session.Session, *orderControllers.Feed) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := session.NewStore()
	t.Cleanup(sessions.Close)
	sess := sessions.Create(session.RoleCustomer)

	feed := orderControllers.NewFeed()

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextSession, sess)
		c.Set(middleware.ContextRole, sess.Role)
	})
	r.POST("/checkout", checkoutControllers.PlaceOrder(feed))

	return r, sess, feed
}

func postCheckout(t *testing.T, r *gin.Engine, form any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(form))
	req := httptest.NewRequest(http.MethodPost, "/checkout", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validForm() models.CheckoutForm {
	return models.CheckoutForm{
		Email:         "jane@example.com",
		FirstName:     "Jane",
		LastName:      "Doe",
		Address:       "123 Main St",
		City:          "New York",
		Zip:           "10001",
		Country:       "United States",
		PaymentMethod: models.PaymentMethodCard,
	}
}

func seedCart(t *testing.T, sess *session.Session) {
	t.Helper()
	products := catalog.NewMemoryStore(catalog.SeedProducts())

	p1, err := products.GetProduct("1") // 129.00
	require.NoError(t, err)
	p2, err := products.GetProduct("2") // 349.00
	require.NoError(t, err)

	sess.Cart.AddItem(p1)
	sess.Cart.AddItem(p2)
	sess.Cart.AddItem(p2)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	r, sess, feed := newTestRouter(t)

	w := postCheckout(t, r, validForm())
	assert.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Your cart is empty", resp["error"])

	count, _ := feed.Stats()
	assert.Equal(t, 0, count)
	assert.Equal(t, 0, sess.Cart.ItemCount())
}

func TestPlaceOrder_ValidationFailure(t *testing.T) {
	r, sess, feed := newTestRouter(t)
	seedCart(t, sess)

	form := validForm()
	form.Email = "not-an-email"

	w := postCheckout(t, r, form)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		State  string              `json:"state"`
		Errors []models.FieldError `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "editing", resp.State)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "email", resp.Errors[0].Field)

	// Nothing was emitted, nothing was cleared.
	count, _ := feed.Stats()
	assert.Equal(t, 0, count)
	assert.Equal(t, 3, sess.Cart.ItemCount())
}

func TestPlaceOrder_Success(t *testing.T) {
	r, sess, feed := newTestRouter(t)
	seedCart(t, sess)

	w := postCheckout(t, r, validForm())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string       `json:"message"`
		State   string       `json:"state"`
		Order   models.Order `json:"order"`
		Display struct {
			Subtotal string `json:"subtotal"`
			Tax      string `json:"tax"`
			Shipping string `json:"shipping"`
			Total    string `json:"total"`
		} `json:"display"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Equal(t, "Order Placed Successfully!", resp.Message)
	assert.Equal(t, "confirmed", resp.State)
	assert.Len(t, resp.Order.Items, 2)
	assert.Equal(t, 827.00, resp.Order.Subtotal)

	// Display amounts are rounded exactly once, here at the boundary.
	assert.Equal(t, "827.00", resp.Display.Subtotal)
	assert.Equal(t, "66.16", resp.Display.Tax)
	assert.Equal(t, "Free", resp.Display.Shipping)
	assert.Equal(t, "893.16", resp.Display.Total)

	// Atomic confirmation: exactly one order emitted, cart now empty.
	count, revenue := feed.Stats()
	assert.Equal(t, 1, count)
	assert.InDelta(t, 893.16, revenue, 1e-9)
	assert.Equal(t, 0, sess.Cart.ItemCount())
}

func TestPlaceOrder_SecondSubmitHitsEmptyCartGuard(t *testing.T) {
	r, sess, feed := newTestRouter(t)
	seedCart(t, sess)

	require.Equal(t, http.StatusCreated, postCheckout(t, r, validForm()).Code)

	// The cart was cleared by the first confirmation, so a replay cannot
	// produce a second order.
	w := postCheckout(t, r, validForm())
	assert.Equal(t, http.StatusConflict, w.Code)

	count, _ := feed.Stats()
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, sess.Cart.ItemCount())
}

func TestPlaceOrder_MalformedBody(t *testing.T) {
	r, sess, _ := newTestRouter(t)
	seedCart(t, sess)

	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 3, sess.Cart.ItemCount())
}
