package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/Govind-619/Storefront/middleware"
	"github.com/Govind-619/Storefront/reports"
	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DownloadInvoice handles GET /api/orders/:orderId/invoice
func (ctl *OrderController) DownloadInvoice(c *gin.Context) {
	orderID := c.Param("orderId")
	utils.LogInfo("DownloadInvoice called for order %s", orderID)

	order, err := ctl.Orders.Get(c.Request.Context(), middleware.CurrentIdentity(c), orderID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	pdf, err := reports.InvoicePDF(order, ctl.Store)
	if err != nil {
		utils.LogError("Failed to generate invoice for order %s: %v", orderID, err)
		utils.InternalServerError(c, "Failed to generate invoice", nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%s.pdf", order.ID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// ExportOrders handles GET /api/orders/export (admin)
func (ctl *OrderController) ExportOrders(c *gin.Context) {
	utils.LogInfo("ExportOrders called")

	orders, err := ctl.Orders.ListAll(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	now := time.Now()
	var buf bytes.Buffer
	if err := reports.WriteOrdersXLSX(&buf, orders, now); err != nil {
		utils.LogError("Failed to write order export: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=orders_%s.xlsx", now.Format("20060102")))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	utils.LogInfo("Exported %d orders", len(orders))
}
