package main

import (
	"log"

	"github.com/Govind-619/Storefront/config"
	"github.com/Govind-619/Storefront/controllers"
	"github.com/Govind-619/Storefront/metrics"
	"github.com/Govind-619/Storefront/payment"
	"github.com/Govind-619/Storefront/repository"
	"github.com/Govind-619/Storefront/routes"
	"github.com/Govind-619/Storefront/services"
	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	// Initialize logger
	if err := utils.InitLogger(utils.LoggerOptions{
		Dir:        cfg.LogDir,
		Production: cfg.IsProduction(),
		Debug:      cfg.LogDebug,
	}); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer utils.SyncLogger()

	if err := cfg.Validate(); err != nil {
		utils.LogError("Invalid config: %v", err)
		log.Fatal("Invalid config:", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		utils.LogError("Database initialization failed: %v", err)
		log.Fatal("Database initialization failed:", err)
	}

	registry := metrics.New()
	store := repository.NewGormOrderStore(db)
	verifier := payment.NewSignatureVerifier(cfg.RazorpayKeySecret)
	gateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	orders := services.NewOrderService(store, registry)
	returns := services.NewReturnService(store, registry)
	checkout := services.NewCheckoutService(store, verifier, registry)

	// Set up router
	router := routes.SetupRouter(routes.Dependencies{
		Orders:     controllers.NewOrderController(orders, returns),
		Payments:   controllers.NewPaymentController(checkout, gateway),
		Metrics:    registry,
		JWTSecret:  cfg.JWTSecret,
		CORSOrigin: cfg.CORSOrigin,
	})

	utils.LogInfo("Server starting on port %s", cfg.Port)
	// Start server
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
