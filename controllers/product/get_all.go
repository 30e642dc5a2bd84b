package productControllers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lumina-commerce/storefront-api/catalog"
	"github.com/lumina-commerce/storefront-api/models"
)

// productView is a Product plus its derived display flags.
type productView struct {
	models.Product
	LowStock bool `json:"low_stock"`
}

func newProductView(p models.Product) productView {
	return productView{Product: p, LowStock: p.LowStock()}
}

// GET /products
//
// Query params: category, search, min_price, max_price, sort_by
// (price|rating|name), order (asc|desc).
func GetProducts(store catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")
		search := strings.ToLower(c.Query("search"))
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.Query("sort_by")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "asc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "asc"
		}

		minPrice, maxPrice := 0.0, 0.0
		hasMin, hasMax := false, false
		if minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			minPrice, hasMin = mp, true
		}
		if maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			maxPrice, hasMax = mp, true
		}

		products := store.ListProducts()
		filtered := make([]models.Product, 0, len(products))
		for _, p := range products {
			if category != "" && category != "All" && p.Category != category {
				continue
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(p.Name), search) &&
				!strings.Contains(strings.ToLower(p.Description), search) {
				continue
			}
			if hasMin && p.Price < minPrice {
				continue
			}
			if hasMax && p.Price > maxPrice {
				continue
			}
			filtered = append(filtered, p)
		}

		switch sortBy {
		case "price":
			sort.SliceStable(filtered, func(i, j int) bool {
				if sortOrder == "desc" {
					return filtered[i].Price > filtered[j].Price
				}
				return filtered[i].Price < filtered[j].Price
			})
		case "rating":
			sort.SliceStable(filtered, func(i, j int) bool {
				if sortOrder == "desc" {
					return filtered[i].Rating > filtered[j].Rating
				}
				return filtered[i].Rating < filtered[j].Rating
			})
		case "name":
			sort.SliceStable(filtered, func(i, j int) bool {
				if sortOrder == "desc" {
					return filtered[i].Name > filtered[j].Name
				}
				return filtered[i].Name < filtered[j].Name
			})
		}

		views := make([]productView, 0, len(filtered))
		for _, p := range filtered {
			views = append(views, newProductView(p))
		}
		c.JSON(http.StatusOK, views)
	}
}

// GET /categories
//
// Returns the filter tabs for the storefront, "All" first.
func GetCategories(store catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories := append([]string{"All"}, store.Categories()...)
		c.JSON(http.StatusOK, categories)
	}
}
