package main

import (
	"context"
	"log"

	"message-board-api/internal/board"
	"message-board-api/internal/config"
	"message-board-api/internal/database"
	"message-board-api/internal/routes"
	"message-board-api/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration (.env in development)
	cfg := config.Load()
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Init database
	database.InitDB(cfg.DBPath)

	// Build the board over the SQLite-backed key-value store and load the
	// cached messages before serving
	kv := store.NewGormKV(database.GetDB())
	msgBoard := board.New(kv)
	msgBoard.Load(context.Background())
	defer msgBoard.Close()

	// Setup the routes (public and protected routes)
	ginRoutes := routes.SetupRoutes(msgBoard)

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server starting on port %s", port)
	log.Println("API endpoints:")
	log.Println("  POST   /api/register")
	log.Println("  POST   /api/login")
	log.Println("  GET    /api/messages")
	log.Println("  POST   /api/messages")
	log.Println("  GET    /api/users")
	log.Println("  GET    /api/ws")
	log.Println("  GET    /health")

	if err := ginRoutes.Run(port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
