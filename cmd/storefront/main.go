package main

import (
	"github.com/gin-gonic/gin"
	cartAPI "github.com/ridloal/storefront-demo/internal/cart/api"
	cartService "github.com/ridloal/storefront-demo/internal/cart/service"
	catalogAPI "github.com/ridloal/storefront-demo/internal/catalog/api"
	catalogRepo "github.com/ridloal/storefront-demo/internal/catalog/repository"
	catalogService "github.com/ridloal/storefront-demo/internal/catalog/service"
	"github.com/ridloal/storefront-demo/internal/platform/config"
	"github.com/ridloal/storefront-demo/internal/platform/database"
	"github.com/ridloal/storefront-demo/internal/platform/logger"
	sessionAPI "github.com/ridloal/storefront-demo/internal/session/api"
	sessionRepo "github.com/ridloal/storefront-demo/internal/session/repository"
	sessionService "github.com/ridloal/storefront-demo/internal/session/service"
)

func main() {
	// Load Config
	serverCfg := config.LoadServerConfig("8080")
	storageCfg := config.LoadStorageConfig()
	mockCfg := config.LoadMockConfig()
	cartCfg := config.LoadCartConfig()

	logger.Info("Starting Storefront Demo Service...")

	// Setup local session storage (sqlite file, device-level)
	db, err := database.Connect(storageCfg.SessionDBPath)
	if err != nil {
		logger.Error("Failed to open local session storage", err)
		return
	}
	defer db.Close()

	// Setup Dependencies
	productRepository := catalogRepo.NewMemoryProductRepository()
	ctlgService := catalogService.NewCatalogService(productRepository, mockCfg)
	catalogHandler := catalogAPI.NewCatalogHandler(ctlgService)

	sessionRepository, err := sessionRepo.NewSQLiteSessionRepository(db)
	if err != nil {
		logger.Error("Failed to initialize session repository", err)
		return
	}
	ssnService := sessionService.NewSessionService(sessionRepository, mockCfg)
	sessionHandler := sessionAPI.NewSessionHandler(ssnService)

	crtService := cartService.NewCartService(productRepository, cartCfg)
	cartHandler := cartAPI.NewCartHandler(crtService)

	// Setup Gin Router
	router := gin.Default() // Default with Logger and Recovery middleware

	apiV1 := router.Group("/api/v1")
	catalogHandler.RegisterRoutes(apiV1)
	sessionHandler.RegisterRoutes(apiV1)
	cartHandler.RegisterRoutes(apiV1, sessionAPI.RequireSession(ssnService))

	logger.Info("Storefront Demo Service running on port " + serverCfg.Port)
	if err := router.Run(serverCfg.Port); err != nil {
		logger.Error("Failed to run server", err)
	}
}
