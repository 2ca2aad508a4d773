package routes

import (
	"message-board-api/internal/board"
	"message-board-api/internal/handlers"
	"message-board-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(b *board.Board) *gin.Engine {
	// Create a new GIN Router
	ginRouter := gin.Default()

	// CORS middleware (for mobile/web client integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204) // This depends on the implementation of the frontend
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Message Board API is running in Health Check Endpoint",
		})
	})

	messageHandler := handlers.NewMessageHandler(b)

	// Public routes (no authentication required)
	api := ginRouter.Group("/api")
	{
		// Account endpoints
		api.POST("/register", handlers.Register)
		api.POST("/login", handlers.Login)
	}

	// Protected routes (authentication required)
	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuthMiddleware())
	{
		// Message endpoints
		protectedRoutes.GET("/messages", messageHandler.GetMessages)
		protectedRoutes.POST("/messages", messageHandler.PostMessage)
		// Users endpoint
		protectedRoutes.GET("/users", handlers.GetAllUsers)
		// Realtime events
		protectedRoutes.GET("/ws", handlers.WebSocketHandler)
	}

	return ginRouter
}
