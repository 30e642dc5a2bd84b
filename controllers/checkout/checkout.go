package checkoutControllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumina-commerce/storefront-api/checkout"
	cartControllers "github.com/lumina-commerce/storefront-api/controllers/cart"
	orderControllers "github.com/lumina-commerce/storefront-api/controllers/order"
	"github.com/lumina-commerce/storefront-api/middleware"
	"github.com/lumina-commerce/storefront-api/models"
)

// POST /checkout
//
// Runs the checkout state machine against the session's cart. Outcomes:
//   - 409 the cart is empty (checkout cannot be entered at all)
//   - 422 one or more form fields are invalid; every failure is returned
//   - 201 order confirmed; the cart is empty by the time this responds
func PlaceOrder(feed *orderControllers.Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.SessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var form models.CheckoutForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess.Lock()
		defer sess.Unlock()

		co, err := checkout.New(sess.Cart)
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Your cart is empty"})
			return
		}

		order, err := co.Submit(form)
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusConflict, gin.H{"error": "Your cart is empty"})
			return
		case errors.Is(err, checkout.ErrValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"state":  co.State(),
				"errors": co.FieldErrors(),
			})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		feed.Record(*order)

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order Placed Successfully!",
			"detail":  fmt.Sprintf("Thank you %s, your order has been confirmed.", order.Shipping.FirstName),
			"state":   co.State(),
			"order":   order,
			// Amounts rounded here, at the presentation boundary only.
			"display": gin.H{
				"subtotal": fmt.Sprintf("%.2f", order.Subtotal),
				"tax":      fmt.Sprintf("%.2f", order.TaxAmount),
				"shipping": "Free",
				"total":    fmt.Sprintf("%.2f", order.Total),
			},
			"cart": cartControllers.NewSnapshot(sess.Cart),
		})
	}
}
