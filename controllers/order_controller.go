package controllers

import (
	"github.com/Govind-619/Storefront/middleware"
	"github.com/Govind-619/Storefront/models"
	"github.com/Govind-619/Storefront/reports"
	"github.com/Govind-619/Storefront/services"
	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// OrderController serves the order lifecycle and return endpoints
type OrderController struct {
	Orders  *services.OrderService
	Returns *services.ReturnService
	Store   reports.StoreInfo
}

// NewOrderController wires the controller to its services
func NewOrderController(orders *services.OrderService, returns *services.ReturnService) *OrderController {
	return &OrderController{Orders: orders, Returns: returns, Store: reports.DefaultStoreInfo}
}

type itemRequest struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size"`
}

type shippingAddressRequest struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Phone    string `json:"phone"`
}

func (r shippingAddressRequest) toModel() models.ShippingAddress {
	return models.ShippingAddress(r)
}

func toItemInputs(items []itemRequest) []services.ItemInput {
	inputs := make([]services.ItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, services.ItemInput{
			ProductRef: item.ProductID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
			Size:       item.Size,
		})
	}
	return inputs
}

// CreateOrder handles POST /api/orders
func (ctl *OrderController) CreateOrder(c *gin.Context) {
	utils.LogInfo("CreateOrder called")
	var req struct {
		Items           []itemRequest          `json:"items"`
		TotalAmount     *decimal.Decimal       `json:"total_amount"`
		ShippingAddress shippingAddressRequest `json:"shipping_address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}
	if req.TotalAmount == nil {
		utils.BadRequest(c, "Total amount is required", nil)
		return
	}

	order, err := ctl.Orders.Create(c.Request.Context(), middleware.CurrentIdentity(c), services.CreateOrderInput{
		Items:           toItemInputs(req.Items),
		TotalAmount:     *req.TotalAmount,
		ShippingAddress: req.ShippingAddress.toModel(),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Created(c, "Order placed successfully", order)
}

// GetMyOrders handles GET /api/orders/my-orders
func (ctl *OrderController) GetMyOrders(c *gin.Context) {
	orders, err := ctl.Orders.ListMine(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, "Orders retrieved successfully", orders)
}

// GetOrders handles GET /api/orders (admin). The full list is returned
// unless page or limit is given.
func (ctl *OrderController) GetOrders(c *gin.Context) {
	orders, err := ctl.Orders.ListAll(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if !utils.PaginationRequested(c) {
		utils.Success(c, "Orders retrieved successfully", orders)
		return
	}
	pagination := utils.NewPagination(c)
	start, end := pagination.Window(len(orders))
	utils.SendPaginatedResponse(c, "Orders retrieved successfully", orders[start:end], pagination)
}

// GetOrder handles GET /api/orders/:orderId
func (ctl *OrderController) GetOrder(c *gin.Context) {
	order, err := ctl.Orders.Get(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("orderId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, "Order retrieved successfully", order)
}

// UpdateOrderStatus handles PUT /api/orders/:orderId/status (admin)
func (ctl *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("orderId")
	utils.LogInfo("UpdateOrderStatus called for order %s", orderID)
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Status is required", nil)
		return
	}

	order, err := ctl.Orders.SetStatus(c.Request.Context(), middleware.CurrentIdentity(c), orderID, models.OrderStatus(req.Status))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, "Order status updated", order)
}

// CancelOrder handles PUT /api/orders/:orderId/cancel
func (ctl *OrderController) CancelOrder(c *gin.Context) {
	orderID := c.Param("orderId")
	utils.LogInfo("CancelOrder called for order %s", orderID)

	order, err := ctl.Orders.Cancel(c.Request.Context(), middleware.CurrentIdentity(c), orderID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, "Order cancelled successfully", order)
}
