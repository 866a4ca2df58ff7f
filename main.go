package main

import (
	"Farolero/config"
	"Farolero/routes"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectGORM()
	if err != nil {
		log.Fatalf("Error opening sqlite database: %v", err)
	}

	if err := config.MigrateDatabase(db); err != nil {
		log.Printf("Warning: Database migration failed: %v", err)
		// Continue execution even if migration fails
	}

	r := gin.Default()

	routes.SetupRoutes(r, db)

	// Configure port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.Printf("Server started on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
