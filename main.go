package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"staffMan/config"
	"staffMan/database"
	"staffMan/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()

	if config.AppConfig.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET must be set")
	}

	_, err := database.Connect()
	if err != nil {
		log.Fatalf("❌ MongoDB Connection Error: %v", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "x-auth-token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	// Uploaded profile images are served read-only
	r.Static("/uploads", config.AppConfig.UploadDir)

	routes.SetupRoutes(r)

	// Handle graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := r.Run(":" + config.AppConfig.PORT); err != nil {
			log.Fatalf("❌ Server Startup Error: %v", err)
		}
	}()

	<-quit
	log.Println("🛑 Shutting down server...")

	database.Disconnect()
}
