package services

import (
	"context"
	"time"

	"github.com/Govind-619/Storefront/metrics"
	"github.com/Govind-619/Storefront/models"
	"github.com/Govind-619/Storefront/repository"
	"github.com/Govind-619/Storefront/utils"
	"github.com/shopspring/decimal"
)

// ItemInput is one cart or order line as supplied by the caller. Name and
// price are trusted as the catalog snapshot; nothing re-prices them.
type ItemInput struct {
	ProductRef string
	Name       string
	Price      decimal.Decimal
	Quantity   int
	Size       string
}

// CreateOrderInput is the payload of a direct, non-payment-gated order
type CreateOrderInput struct {
	Items           []ItemInput
	TotalAmount     decimal.Decimal
	ShippingAddress models.ShippingAddress
}

// OrderService enforces the order status state machine and its
// owner/administrator rules.
type OrderService struct {
	mutator
}

// NewOrderService creates an OrderService over store. m may be nil.
func NewOrderService(store repository.OrderStore, m *metrics.Registry) *OrderService {
	return &OrderService{mutator{store: store, metrics: m, now: time.Now}}
}

// Create places an unpaid order for the caller
func (s *OrderService) Create(ctx context.Context, id Identity, in CreateOrderInput) (*models.Order, error) {
	if err := requireAuthenticated(id); err != nil {
		return nil, err
	}
	items, err := snapshotItems(in.Items)
	if err != nil {
		return nil, err
	}
	if in.TotalAmount.IsNegative() {
		return nil, utils.InvalidRequestError("Total amount cannot be negative", nil)
	}

	order := &models.Order{
		OwnerID:         id.Principal,
		Items:           items,
		TotalAmount:     in.TotalAmount,
		PaymentStatus:   models.PaymentStatusPending,
		OrderStatus:     models.OrderStatusPlaced,
		ReturnRequest:   models.NewReturnRequest(),
		ShippingAddress: in.ShippingAddress,
	}
	if err := s.store.Create(ctx, order); err != nil {
		return nil, mapOrderError(err)
	}
	s.metrics.OrderCreated("direct")
	utils.LogInfo("Order %s created by %s", order.ID, id.Principal)
	return order, nil
}

// ListAll returns every order, most recent first. Administrators only.
func (s *OrderService) ListAll(ctx context.Context, id Identity) ([]models.Order, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}
	orders, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, mapOrderError(err)
	}
	return orders, nil
}

// ListMine returns the caller's orders, most recent first
func (s *OrderService) ListMine(ctx context.Context, id Identity) ([]models.Order, error) {
	if err := requireAuthenticated(id); err != nil {
		return nil, err
	}
	orders, err := s.store.ListByOwner(ctx, id.Principal)
	if err != nil {
		return nil, mapOrderError(err)
	}
	utils.LogDebug("Found %d orders for %s", len(orders), id.Principal)
	return orders, nil
}

// Get returns one order to its owner or to an administrator
func (s *OrderService) Get(ctx context.Context, id Identity, orderID string) (*models.Order, error) {
	if err := requireAuthenticated(id); err != nil {
		return nil, err
	}
	order, err := s.store.Get(ctx, orderID)
	if err != nil {
		return nil, mapOrderError(err)
	}
	if !id.IsAdmin && !order.IsOwnedBy(id.Principal) {
		return nil, utils.ForbiddenError("Not authorized")
	}
	return order, nil
}

// SetStatus assigns Placed, Shipped or Delivered. Administrators only.
func (s *OrderService) SetStatus(ctx context.Context, id Identity, orderID string, status models.OrderStatus) (*models.Order, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}
	if !models.IsAdminSettable(status) {
		return nil, utils.InvalidStateError("Invalid order status", nil)
	}
	order, err := s.apply(ctx, "set_status", orderID, func(order *models.Order) error {
		return order.SetStatus(status)
	})
	if err != nil {
		return nil, err
	}
	utils.LogInfo("Order %s set to %s by %s", orderID, status, id.Principal)
	return order, nil
}

// Cancel cancels the caller's own order while it is still Placed
func (s *OrderService) Cancel(ctx context.Context, id Identity, orderID string) (*models.Order, error) {
	if err := requireAuthenticated(id); err != nil {
		return nil, err
	}
	order, err := s.apply(ctx, "cancel", orderID, ownedBy(id.Principal, func(order *models.Order) error {
		return order.Cancel()
	}))
	if err != nil {
		return nil, err
	}
	utils.LogInfo("Order %s cancelled by %s", orderID, id.Principal)
	return order, nil
}

// snapshotItems copies caller-supplied lines into order items. A missing
// quantity counts as one.
func snapshotItems(lines []ItemInput) ([]models.OrderItem, error) {
	if len(lines) == 0 {
		return nil, utils.InvalidRequestError("Cart is empty", nil)
	}
	items := make([]models.OrderItem, 0, len(lines))
	for i, line := range lines {
		if line.ProductRef == "" {
			return nil, utils.InvalidRequestError("Each item needs a product reference", nil)
		}
		if line.Price.IsNegative() {
			return nil, utils.InvalidRequestError("Item price cannot be negative", nil)
		}
		qty := line.Quantity
		if qty == 0 {
			qty = 1
		}
		if qty < 0 {
			return nil, utils.InvalidRequestError("Item quantity must be positive", nil)
		}
		items = append(items, models.OrderItem{
			Position:   i,
			ProductRef: line.ProductRef,
			Name:       line.Name,
			UnitPrice:  line.Price,
			Quantity:   qty,
			Size:       line.Size,
		})
	}
	return items, nil
}
