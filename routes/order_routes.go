package routes

import (
	"github.com/Govind-619/Storefront/middleware"
	"github.com/gin-gonic/gin"
)

// initOrderRoutes initializes order lifecycle and return routes
func initOrderRoutes(router *gin.RouterGroup, deps Dependencies) {
	ctl := deps.Orders
	admin := middleware.AdminMiddleware()

	orders := router.Group("/orders")
	orders.Use(middleware.AuthMiddleware(deps.JWTSecret))
	{
		orders.POST("", ctl.CreateOrder)
		orders.GET("/my-orders", ctl.GetMyOrders)
		orders.GET("/:orderId", ctl.GetOrder)
		orders.GET("/:orderId/invoice", ctl.DownloadInvoice)
		orders.PUT("/:orderId/cancel", ctl.CancelOrder)
		orders.PUT("/:orderId/return-request", ctl.RequestReturn)

		// Admin only
		orders.GET("", admin, ctl.GetOrders)
		orders.GET("/export", admin, ctl.ExportOrders)
		orders.PUT("/:orderId/status", admin, ctl.UpdateOrderStatus)
		orders.PUT("/:orderId/approve-return", admin, ctl.ApproveReturn)
		orders.PUT("/:orderId/reject-return", admin, ctl.RejectReturn)
	}
}
