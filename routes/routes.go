package routes

import (
	"net/http"

	"github.com/Govind-619/Storefront/controllers"
	"github.com/Govind-619/Storefront/metrics"
	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-gonic/gin"
)

// Dependencies are the collaborators the HTTP layer is built from
type Dependencies struct {
	Orders     *controllers.OrderController
	Payments   *controllers.PaymentController
	Metrics    *metrics.Registry
	JWTSecret  string
	CORSOrigin string
}

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New()

	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.MetricsMiddleware(deps.Metrics))
	router.Use(utils.CORSMiddleware(deps.CORSOrigin))
	router.Use(utils.SecurityHeadersMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	api := router.Group("/api")
	{
		initOrderRoutes(api, deps)
		initPaymentRoutes(api, deps)
	}

	return router
}
