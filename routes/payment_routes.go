package routes

import (
	"github.com/Govind-619/Storefront/middleware"
	"github.com/gin-gonic/gin"
)

// initPaymentRoutes initializes gateway payment routes
func initPaymentRoutes(router *gin.RouterGroup, deps Dependencies) {
	payments := router.Group("/payment")
	payments.Use(middleware.AuthMiddleware(deps.JWTSecret))
	{
		payments.POST("/create", deps.Payments.CreatePaymentIntent)
		payments.POST("/verify", deps.Payments.VerifyPayment)
	}
}
