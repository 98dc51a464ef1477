package main

import (
	"context"
	"log"
	"time"

	"watson/config"
	"watson/database"
	"watson/handlers"
	"watson/middleware"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Create context with timeout for initial connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.DatabaseURL, cfg.DBTLSSkipVerify)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	r := gin.Default()
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RequestID())

	r.GET("/", handlers.Root)
	r.GET("/health", handlers.HealthCheck(db))
	r.GET("/api/projects", handlers.ListProjects(db))
	r.POST("/api/projects", handlers.CreateProject(db))

	log.Println("Server starting on :" + cfg.Port)
	r.Run(":" + cfg.Port)
}
