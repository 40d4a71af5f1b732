package services

import (
	"context"
	"strings"
	"time"

	"github.com/Govind-619/Storefront/metrics"
	"github.com/Govind-619/Storefront/models"
	"github.com/Govind-619/Storefront/repository"
	"github.com/Govind-619/Storefront/utils"
)

// ReturnService drives the return request attached to a delivered order.
// None of its operations touch the order status.
type ReturnService struct {
	mutator
}

// NewReturnService creates a ReturnService over store. m may be nil.
func NewReturnService(store repository.OrderStore, m *metrics.Registry) *ReturnService {
	return &ReturnService{mutator{store: store, metrics: m, now: time.Now}}
}

// RequestReturn opens a return on the caller's delivered order
func (s *ReturnService) RequestReturn(ctx context.Context, id Identity, orderID, reason, description string) (*models.Order, error) {
	if err := requireAuthenticated(id); err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	description = strings.TrimSpace(description)
	if reason == "" || description == "" {
		return nil, utils.InvalidRequestError("Reason and description are required", nil)
	}
	now := s.now()
	order, err := s.apply(ctx, "request_return", orderID, ownedBy(id.Principal, func(order *models.Order) error {
		return order.RequestReturn(reason, description, now)
	}))
	if err != nil {
		return nil, err
	}
	utils.LogInfo("Return requested for order %s by %s", orderID, id.Principal)
	return order, nil
}

// ApproveReturn accepts a pending return. refundStatus, when non-nil,
// replaces the refund status. Administrators only.
func (s *ReturnService) ApproveReturn(ctx context.Context, id Identity, orderID string, refundStatus *models.RefundStatus) (*models.Order, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}
	if refundStatus != nil && !models.ValidRefundStatus(*refundStatus) {
		return nil, utils.InvalidRequestError("Invalid refund status", models.ErrInvalidRefundStatus)
	}
	now := s.now()
	order, err := s.apply(ctx, "approve_return", orderID, func(order *models.Order) error {
		return order.ReturnRequest.Approve(now, refundStatus)
	})
	if err != nil {
		return nil, err
	}
	utils.LogInfo("Return approved for order %s by %s", orderID, id.Principal)
	return order, nil
}

// RejectReturn declines a pending return. Administrators only.
func (s *ReturnService) RejectReturn(ctx context.Context, id Identity, orderID string) (*models.Order, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}
	order, err := s.apply(ctx, "reject_return", orderID, func(order *models.Order) error {
		return order.ReturnRequest.Reject()
	})
	if err != nil {
		return nil, err
	}
	utils.LogInfo("Return rejected for order %s by %s", orderID, id.Principal)
	return order, nil
}
