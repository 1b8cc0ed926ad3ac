package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"urbandash/internal/config"
	"urbandash/internal/handler"
	"urbandash/internal/metrics"
	"urbandash/internal/repository"
	"urbandash/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Print version info
	log.Printf("Urban Design Dashboard API")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Load the building dataset once; the server serves no traffic without it
	repo, err := repository.NewBuildingRepository(cfg.Dataset.Path)
	if err != nil {
		log.Fatalf("Failed to load building data from %s: %v", cfg.Dataset.Path, err)
	}

	log.Printf("✅ Loaded %d building features from %s", repo.FeatureCount(), cfg.Dataset.Path)

	// Initialize HuggingFace client
	hfClient := service.NewHuggingFaceClient(&cfg.HuggingFace)
	if cfg.HuggingFace.APIKey != "" {
		log.Printf("✅ HuggingFace client initialized")
		log.Printf("   - API URL: %s", cfg.HuggingFace.APIURL)
		log.Printf("   - Timeout: %ds", cfg.HuggingFace.Timeout)
	} else {
		log.Println("⚠️  HUGGINGFACE_API_KEY is not set - inference calls will go out unauthenticated and fail")
		log.Println("   Set HUGGINGFACE_API_KEY environment variable to enable query interpretation")
	}

	// Initialize services
	interpreter := service.NewQueryInterpreter(hfClient)

	log.Println("✅ Services initialized")

	// Initialize handlers
	buildingHandler := handler.NewBuildingHandler(repo)
	queryHandler := handler.NewQueryHandler(interpreter)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.Server.AllowedOrigins, ",")
	corsConfig.AllowMethods = strings.Split(cfg.Server.AllowedMethods, ",")
	corsConfig.AllowHeaders = strings.Split(cfg.Server.AllowedHeaders, ",")
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "urban-dashboard-api",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// API routes
	api := router.Group("/api")
	{
		api.GET("/buildings", buildingHandler.GetBuildings)
		api.POST("/query", queryHandler.Query)
	}

	// Serve static files (frontend)
	// This function is implemented in embed.go (production) or static_dev.go (development)
	setupStaticFiles(router)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API: http://localhost:%d/api", cfg.Server.Port)
	log.Printf("🌐 Web UI: http://localhost:%d", cfg.Server.Port)

	// Graceful shutdown
	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
