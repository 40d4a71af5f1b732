package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Govind-619/Storefront/metrics"
	"github.com/Govind-619/Storefront/models"
	"github.com/Govind-619/Storefront/repository"
	"github.com/Govind-619/Storefront/utils"
	"github.com/shopspring/decimal"
)

// SignatureChecker validates a payment gateway callback
type SignatureChecker interface {
	Verify(gatewayOrderRef, gatewayPaymentRef, signature string) (bool, error)
}

// CheckoutRequest is a cart together with the gateway's payment confirmation
type CheckoutRequest struct {
	Cart              []ItemInput
	TotalAmount       *decimal.Decimal
	PaymentMethod     string
	ShippingAddress   models.ShippingAddress
	GatewayOrderRef   string
	GatewayPaymentRef string
	Signature         string
}

// CheckoutService turns a verified payment into exactly one paid order
type CheckoutService struct {
	store    repository.OrderStore
	verifier SignatureChecker
	metrics  *metrics.Registry
}

// NewCheckoutService creates a CheckoutService. m may be nil.
func NewCheckoutService(store repository.OrderStore, verifier SignatureChecker, m *metrics.Registry) *CheckoutService {
	return &CheckoutService{store: store, verifier: verifier, metrics: m}
}

// FinalizeCheckout verifies the gateway signature and records the paid order.
// A failed verification creates nothing. Replaying a confirmation that is
// already recorded returns the existing order to the same caller.
func (s *CheckoutService) FinalizeCheckout(ctx context.Context, id Identity, req CheckoutRequest) (*models.Order, error) {
	if err := requireAuthenticated(id); err != nil {
		return nil, err
	}
	// The gateway fields are verified and stored exactly as received.
	if req.GatewayOrderRef == "" || req.GatewayPaymentRef == "" || req.Signature == "" {
		return nil, utils.InvalidRequestError("Missing payment data", nil)
	}
	items, err := snapshotItems(req.Cart)
	if err != nil {
		return nil, err
	}
	if req.TotalAmount == nil {
		return nil, utils.InvalidRequestError("Total amount is required", nil)
	}
	if req.TotalAmount.IsNegative() {
		return nil, utils.InvalidRequestError("Total amount cannot be negative", nil)
	}

	ok, err := s.verifier.Verify(req.GatewayOrderRef, req.GatewayPaymentRef, req.Signature)
	if err != nil {
		s.metrics.SignatureVerification("error")
		return nil, utils.InternalError("Payment verification unavailable", err)
	}
	if !ok {
		s.metrics.SignatureVerification("invalid")
		utils.LogSecurity("payment_signature_mismatch",
			"principal", id.Principal,
			"gateway_order_ref", req.GatewayOrderRef,
			"gateway_payment_ref", req.GatewayPaymentRef,
		)
		return nil, utils.PaymentVerificationError("Invalid signature")
	}
	s.metrics.SignatureVerification("valid")

	method := strings.TrimSpace(req.PaymentMethod)
	if method == "" {
		method = models.DefaultPaymentMethod
	}
	order := &models.Order{
		OwnerID:     id.Principal,
		Items:       items,
		TotalAmount: *req.TotalAmount,
		PaymentInfo: models.PaymentInfo{
			GatewayOrderRef:   req.GatewayOrderRef,
			GatewayPaymentRef: req.GatewayPaymentRef,
			Method:            method,
		},
		PaymentStatus:   models.PaymentStatusPaid,
		OrderStatus:     models.OrderStatusPlaced,
		ReturnRequest:   models.NewReturnRequest(),
		ShippingAddress: req.ShippingAddress,
	}

	err = s.store.Create(ctx, order)
	if errors.Is(err, repository.ErrDuplicatePayment) {
		return s.replayed(ctx, id, req.GatewayPaymentRef)
	}
	if err != nil {
		utils.LogError("Failed to record paid order for payment %s: %v", req.GatewayPaymentRef, err)
		return nil, mapOrderError(err)
	}
	s.metrics.OrderCreated("checkout")
	utils.LogInfo("Order %s created for %s from payment %s", order.ID, id.Principal, req.GatewayPaymentRef)
	return order, nil
}

func (s *CheckoutService) replayed(ctx context.Context, id Identity, gatewayPaymentRef string) (*models.Order, error) {
	existing, err := s.store.FindByPaymentRef(ctx, gatewayPaymentRef)
	if err != nil {
		return nil, mapOrderError(err)
	}
	if !existing.IsOwnedBy(id.Principal) {
		utils.LogSecurity("payment_replay_by_other_principal",
			"principal", id.Principal,
			"gateway_payment_ref", gatewayPaymentRef,
		)
		return nil, utils.ConflictError("Payment already recorded for another order", repository.ErrDuplicatePayment)
	}
	utils.LogInfo("Payment %s already recorded as order %s", gatewayPaymentRef, existing.ID)
	return existing, nil
}
