package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumina-commerce/storefront-api/catalog"
	"github.com/lumina-commerce/storefront-api/middleware"
	"github.com/lumina-commerce/storefront-api/models"
	"github.com/lumina-commerce/storefront-api/session"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

type UpdateQuantityInput struct {
	// Pointer so an explicit zero binds; zero and below mean "remove".
	Quantity *int `json:"quantity" binding:"required"`
}

// Snapshot is the read-only projection the storefront renders.
type Snapshot struct {
	Items     []models.LineItem `json:"items"`
	ItemCount int               `json:"item_count"`
	Subtotal  float64           `json:"subtotal"`
	IsVisible bool              `json:"is_visible"`
}

func NewSnapshot(cart *models.Cart) Snapshot {
	return Snapshot{
		Items:     cart.Snapshot(),
		ItemCount: cart.ItemCount(),
		Subtotal:  cart.Subtotal(),
		IsVisible: cart.Visible(),
	}
}

func sessionOrAbort(c *gin.Context) (*session.Session, bool) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return sess, true
}

// GET /cart
func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionOrAbort(c)
		if !ok {
			return
		}
		sess.Lock()
		defer sess.Unlock()

		c.JSON(http.StatusOK, NewSnapshot(sess.Cart))
	}
}

// POST /cart/items
func AddCartItem(products catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionOrAbort(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := products.GetProduct(input.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		sess.Lock()
		defer sess.Unlock()

		sess.Cart.AddItem(product)
		c.JSON(http.StatusOK, NewSnapshot(sess.Cart))
	}
}

// PUT /cart/items/:product_id
//
// A quantity of zero or less removes the line instead of persisting it;
// the aggregate's UpdateQuantity primitive stays total and this is the
// one call site that writes quantities.
func UpdateCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionOrAbort(c)
		if !ok {
			return
		}

		productID := c.Param("product_id")
		if productID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess.Lock()
		defer sess.Unlock()

		if *input.Quantity <= 0 {
			sess.Cart.RemoveItem(productID)
		} else {
			sess.Cart.UpdateQuantity(productID, *input.Quantity)
		}
		c.JSON(http.StatusOK, NewSnapshot(sess.Cart))
	}
}

// DELETE /cart/items/:product_id
//
// Removal is idempotent: deleting something already gone is fine, the
// client was acting on a stale snapshot.
func DeleteCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionOrAbort(c)
		if !ok {
			return
		}

		productID := c.Param("product_id")
		if productID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
			return
		}

		sess.Lock()
		defer sess.Unlock()

		sess.Cart.RemoveItem(productID)
		c.JSON(http.StatusOK, NewSnapshot(sess.Cart))
	}
}

// DELETE /cart
func ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionOrAbort(c)
		if !ok {
			return
		}

		sess.Lock()
		defer sess.Unlock()

		sess.Cart.Clear()
		c.JSON(http.StatusOK, NewSnapshot(sess.Cart))
	}
}

// POST /cart/toggle
func ToggleCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionOrAbort(c)
		if !ok {
			return
		}

		sess.Lock()
		defer sess.Unlock()

		sess.Cart.ToggleVisibility()
		c.JSON(http.StatusOK, NewSnapshot(sess.Cart))
	}
}
