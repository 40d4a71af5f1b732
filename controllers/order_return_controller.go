package controllers

import (
	"errors"
	"io"

	"github.com/Govind-619/Storefront/middleware"
	"github.com/Govind-619/Storefront/models"
	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-gonic/gin"
)

// RequestReturn handles PUT /api/orders/:orderId/return-request
func (ctl *OrderController) RequestReturn(c *gin.Context) {
	orderID := c.Param("orderId")
	utils.LogInfo("RequestReturn called for order %s", orderID)
	var req struct {
		Reason      string `json:"reason"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	order, err := ctl.Returns.RequestReturn(c.Request.Context(), middleware.CurrentIdentity(c), orderID, req.Reason, req.Description)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, "Return request submitted successfully", order)
}

// ApproveReturn handles PUT /api/orders/:orderId/approve-return (admin).
// The body is optional; refund_status overrides the refund status.
func (ctl *OrderController) ApproveReturn(c *gin.Context) {
	orderID := c.Param("orderId")
	utils.LogInfo("ApproveReturn called for order %s", orderID)
	var req struct {
		RefundStatus string `json:"refund_status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	var override *models.RefundStatus
	if req.RefundStatus != "" {
		status := models.RefundStatus(req.RefundStatus)
		override = &status
	}
	order, err := ctl.Returns.ApproveReturn(c.Request.Context(), middleware.CurrentIdentity(c), orderID, override)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, "Return request approved", order)
}

// RejectReturn handles PUT /api/orders/:orderId/reject-return (admin)
func (ctl *OrderController) RejectReturn(c *gin.Context) {
	orderID := c.Param("orderId")
	utils.LogInfo("RejectReturn called for order %s", orderID)

	order, err := ctl.Returns.RejectReturn(c.Request.Context(), middleware.CurrentIdentity(c), orderID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, "Return request rejected", order)
}
