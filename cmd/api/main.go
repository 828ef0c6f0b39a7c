package main

import (
	"fmt"
	"log"
	"os"

	"microgrid-sim/internal/api/handlers"
	"microgrid-sim/internal/api/middleware"
	"microgrid-sim/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Optional run-history store.
	var st *store.Store
	if dbPath := os.Getenv("SIM_DB"); dbPath != "" {
		var err error
		st, err = store.NewStore(dbPath)
		if err != nil {
			log.Fatalf("Failed to open run store %s: %v", dbPath, err)
		}
		defer st.Close()
		log.Printf("Run history store: %s", dbPath)
	} else {
		log.Printf("SIM_DB not set, run history disabled")
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	simulateHandler := handlers.NewSimulateHandler(st)
	compareHandler := handlers.NewCompareHandler()
	strategiesHandler := handlers.NewStrategiesHandler()
	runsHandler := handlers.NewRunsHandler(st)
	streamHandler := handlers.NewStreamHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.GET("/simulate/stream", streamHandler.StreamSimulation)
		api.POST("/compare", compareHandler.CompareStrategies)

		api.GET("/strategies", strategiesHandler.ListStrategies)
		api.GET("/runs", runsHandler.ListRuns)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
