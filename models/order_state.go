package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidTransition is returned when an order cannot move to the requested state
var ErrInvalidTransition = errors.New("invalid order status transition")

// AdminSettableStatuses are the values an administrator may assign directly
var AdminSettableStatuses = []OrderStatus{OrderStatusPlaced, OrderStatusShipped, OrderStatusDelivered}

// IsAdminSettable reports whether s may be assigned through SetStatus
func IsAdminSettable(s OrderStatus) bool {
	for _, allowed := range AdminSettableStatuses {
		if s == allowed {
			return true
		}
	}
	return false
}

// SetStatus assigns one of the admin-settable statuses. Any of the three may
// follow any other so that shipping mistakes can be corrected, but a
// cancelled order stays cancelled and an order with a return on file stays
// delivered.
func (o *Order) SetStatus(status OrderStatus) error {
	if !IsAdminSettable(status) {
		return fmt.Errorf("%w: %q cannot be set directly", ErrInvalidTransition, status)
	}
	if o.OrderStatus == OrderStatusCancelled {
		return fmt.Errorf("%w: order is cancelled", ErrInvalidTransition)
	}
	if o.ReturnRequest.Active() && status != OrderStatusDelivered {
		return fmt.Errorf("%w: order has a return request", ErrInvalidTransition)
	}
	o.OrderStatus = status
	return nil
}

// Cancel moves a Placed order to Cancelled
func (o *Order) Cancel() error {
	if o.OrderStatus != OrderStatusPlaced {
		return fmt.Errorf("%w: cannot cancel order that has already been %s", ErrInvalidTransition, o.OrderStatus)
	}
	o.OrderStatus = OrderStatusCancelled
	return nil
}

// RequestReturn opens a return on a delivered order, refunding the order total
func (o *Order) RequestReturn(reason, description string, now time.Time) error {
	if o.OrderStatus != OrderStatusDelivered {
		return fmt.Errorf("%w: return can only be requested for delivered orders", ErrInvalidTransition)
	}
	return o.ReturnRequest.Request(reason, description, o.TotalAmount, now)
}

// ItemsTotal sums unit price times quantity over the item snapshots.
// It is informational only; TotalAmount is never recomputed from items.
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
