package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	_ "samsat-api/api/swagger" // swagger docs
	"samsat-api/internal/config"
	"samsat-api/internal/database"
	"samsat-api/internal/handler"
	"samsat-api/internal/jr"
	"samsat-api/internal/middleware"
	"samsat-api/internal/repository"
	"samsat-api/internal/service"
	"samsat-api/pkg/response"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Samsat Info API
// @version         1.0
// @description     Read-only API for vehicle, tax (PKB/opsen), PNBP and Jasa Raharja tariff lookups.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-KEY
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	db, err := database.NewConnection(cfg.DSN())
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Set up dependencies (Repository -> Service -> Handler)
	kendaraanRepo := repository.NewKendaraanRepository(db)
	kendaraanService := service.NewKendaraanService(kendaraanRepo)
	pajakService := service.NewPajakService(kendaraanRepo)
	pnbpService := service.NewPnbpService(kendaraanRepo)
	jrClient := jr.NewClient(cfg.JR, logger)
	jrService := service.NewJrService(kendaraanRepo, jrClient)

	// Initialize Handlers
	kendaraanHandler := handler.NewKendaraanHandler(kendaraanService, pnbpService)
	pajakHandler := handler.NewPajakHandler(pajakService)
	jrHandler := handler.NewJrHandler(jrService)

	// Set up Gin Router
	router := gin.Default()
	router.Use(middleware.RequestID())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-API-KEY"}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.Error(response.MsgRouteNotFound))
	})

	// Register API Routes
	api := router.Group("/api")
	api.Use(middleware.APIKey(cfg.APIKey))
	kendaraanHandler.RegisterRoutes(api)
	pajakHandler.RegisterRoutes(api)
	jrHandler.RegisterRoutes(api)

	log.Printf("Server listening on :%s", cfg.AppPort)
	if err := router.Run(":" + cfg.AppPort); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
