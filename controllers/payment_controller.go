package controllers

import (
	"strings"

	"github.com/Govind-619/Storefront/middleware"
	"github.com/Govind-619/Storefront/payment"
	"github.com/Govind-619/Storefront/services"
	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentController serves gateway intent creation and checkout finalization
type PaymentController struct {
	Checkout *services.CheckoutService
	Gateway  payment.IntentCreator
}

// NewPaymentController wires the controller to checkout and the gateway
func NewPaymentController(checkout *services.CheckoutService, gateway payment.IntentCreator) *PaymentController {
	return &PaymentController{Checkout: checkout, Gateway: gateway}
}

// CreatePaymentIntent handles POST /api/payment/create
func (ctl *PaymentController) CreatePaymentIntent(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	utils.LogInfo("CreatePaymentIntent called by %s", id.Principal)
	var req struct {
		Amount *decimal.Decimal `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}
	if req.Amount == nil || !req.Amount.IsPositive() {
		utils.BadRequest(c, "Amount must be positive", nil)
		return
	}

	receipt := "rcpt_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:20]
	intent, err := ctl.Gateway.CreateOrderIntent(*req.Amount, receipt)
	if err != nil {
		utils.LogError("Failed to create gateway order for %s: %v", id.Principal, err)
		utils.InternalServerError(c, "Failed to create payment order", nil)
		return
	}
	utils.Success(c, "Payment order created", intent)
}

// VerifyPayment handles POST /api/payment/verify. A verified payment is
// turned into a paid order in the same call.
func (ctl *PaymentController) VerifyPayment(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	var req struct {
		RazorpayOrderID   string                 `json:"razorpay_order_id"`
		RazorpayPaymentID string                 `json:"razorpay_payment_id"`
		RazorpaySignature string                 `json:"razorpay_signature"`
		Cart              []itemRequest          `json:"cart"`
		TotalAmount       *decimal.Decimal       `json:"total_amount"`
		PaymentMethod     string                 `json:"payment_method"`
		ShippingAddress   shippingAddressRequest `json:"shipping_address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}
	if req.TotalAmount == nil {
		utils.BadRequest(c, "Total amount is required", nil)
		return
	}
	utils.LogInfo("VerifyPayment called by %s for gateway order %s (%d items)", id.Principal, req.RazorpayOrderID, len(req.Cart))

	order, err := ctl.Checkout.FinalizeCheckout(c.Request.Context(), id, services.CheckoutRequest{
		Cart:              toItemInputs(req.Cart),
		TotalAmount:       req.TotalAmount,
		PaymentMethod:     req.PaymentMethod,
		ShippingAddress:   req.ShippingAddress.toModel(),
		GatewayOrderRef:   req.RazorpayOrderID,
		GatewayPaymentRef: req.RazorpayPaymentID,
		Signature:         req.RazorpaySignature,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, "Payment verified and order placed", order)
}
