package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/lumina-commerce/storefront-api/catalog"
	orderControllers "github.com/lumina-commerce/storefront-api/controllers/order"
	"github.com/lumina-commerce/storefront-api/routes"
	"github.com/lumina-commerce/storefront-api/session"
)

func main() {
	log.Println("✅ Starting storefront API...")

	// Load environment variables
	_ = godotenv.Load()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET is not set")
	}

	// Demo catalog; products are read-only for the whole process lifetime
	products := catalog.NewMemoryStore(catalog.SeedProducts())

	// Session-owned carts, expired in the background
	sessions := session.NewStore()
	defer sessions.Close()

	// Order journal + live feed for the seller dashboard
	feed := orderControllers.NewFeed()

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, products, sessions, feed)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
