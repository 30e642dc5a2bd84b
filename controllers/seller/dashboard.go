package sellerControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumina-commerce/storefront-api/catalog"
	orderControllers "github.com/lumina-commerce/storefront-api/controllers/order"
	"github.com/lumina-commerce/storefront-api/models"
)

// GET /seller/dashboard
//
// Stats for the seller dashboard. Revenue covers orders placed since the
// process started; there is no durable order history.
func Dashboard(store catalog.Store, feed *orderControllers.Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := store.ListProducts()

		unitsInStock := 0
		var lowStock []models.Product
		for _, p := range products {
			unitsInStock += p.Stock
			if p.LowStock() {
				lowStock = append(lowStock, p)
			}
		}

		orderCount, revenue := feed.Stats()

		c.JSON(http.StatusOK, gin.H{
			"product_count":      len(products),
			"units_in_stock":     unitsInStock,
			"low_stock_products": lowStock,
			"order_count":        orderCount,
			"gross_revenue":      revenue,
			"recent_orders":      feed.Orders(),
		})
	}
}
