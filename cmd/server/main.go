package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/diet-planner/internal/catalog"
	"github.com/example/diet-planner/internal/database"
	"github.com/example/diet-planner/internal/engine"
	"github.com/example/diet-planner/internal/handlers"
	"github.com/example/diet-planner/internal/middleware"
	"github.com/example/diet-planner/internal/suitability"
	"github.com/example/diet-planner/pkg/config"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	// Startup-sequenced initialization: catalog and model are loaded once
	// before any request is served. A catalog failure is fatal; a missing
	// model only degrades suitability ranking.
	db, err := database.Connect(database.Config{
		Path:        cfg.Database.Path,
		Debug:       cfg.Server.Debug,
		MaxIdleConn: cfg.Database.MaxIdleConn,
		MaxOpenConn: cfg.Database.MaxOpenConn,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	store := catalog.NewStore(db)
	if err := store.Seed(catalog.SeedFoods); err != nil {
		log.Fatalf("Failed to seed food catalog: %v", err)
	}
	foods, err := store.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load food catalog: %v", err)
	}
	cat, err := catalog.New(foods)
	if err != nil {
		log.Fatalf("Failed to build catalog snapshot: %v", err)
	}
	log.Printf("Loaded food catalog: %d records", cat.Len())

	var scorer suitability.Scorer
	if model, err := suitability.Load(cfg.Model.Path); err != nil {
		log.Printf("Warning: suitability model unavailable, falling back to rotation-only selection: %v", err)
	} else {
		scorer = model
		log.Printf("Loaded suitability model from %s", cfg.Model.Path)
	}

	eng := &engine.EngineContext{Catalog: cat, Scorer: scorer}

	targetHandler := handlers.NewTargetHandler()
	planHandler := handlers.NewPlanHandler(eng)
	foodHandler := handlers.NewFoodHandler(cat, scorer)

	router := setupRouter(targetHandler, planHandler, foodHandler)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests time to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func setupRouter(
	targetHandler *handlers.TargetHandler,
	planHandler *handlers.PlanHandler,
	foodHandler *handlers.FoodHandler,
) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RequestID())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "diet-planner",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/targets", targetHandler.Compute)
		v1.POST("/mealplan", planHandler.Generate)

		v1.GET("/diet-options", foodHandler.DietOptions)

		foods := v1.Group("/foods")
		{
			foods.GET("", foodHandler.List)
			foods.POST("/score", foodHandler.Score)
		}
	}

	return router
}
