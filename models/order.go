package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the primary lifecycle state of an order
type OrderStatus string

// Order status constants
const (
	OrderStatusPlaced    OrderStatus = "Placed"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// PaymentStatus tracks whether the order has been paid for
type PaymentStatus string

// Payment status constants
const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusFailed  PaymentStatus = "Failed"
)

// DefaultPaymentMethod is recorded when the gateway callback does not name one
const DefaultPaymentMethod = "Unknown"

// Order is the root aggregate. Items, payment info, shipping address and the
// return request are snapshots owned by the order and saved with it.
type Order struct {
	ID              string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	OwnerID         string          `gorm:"type:varchar(128);not null;index" json:"owner_id"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	PaymentInfo     PaymentInfo     `gorm:"embedded;embeddedPrefix:payment_" json:"payment_info"`
	PaymentStatus   PaymentStatus   `gorm:"type:varchar(16);not null;default:Pending" json:"payment_status"`
	OrderStatus     OrderStatus     `gorm:"type:varchar(16);not null;default:Placed;index" json:"order_status"`
	ReturnRequest   ReturnRequest   `gorm:"embedded;embeddedPrefix:return_" json:"return_request"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	CreatedAt       time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderItem is a catalog snapshot taken when the order was placed
type OrderItem struct {
	ID         uint            `gorm:"primaryKey" json:"-"`
	OrderID    string          `gorm:"type:varchar(36);not null;index" json:"-"`
	Position   int             `gorm:"not null" json:"-"`
	ProductRef string          `gorm:"type:varchar(64)" json:"product_ref"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	Size       string          `json:"size,omitempty"`
}

// PaymentInfo holds the gateway references of a paid order.
// Unpaid orders carry the zero value.
type PaymentInfo struct {
	GatewayOrderRef   string `gorm:"type:varchar(64)" json:"gateway_order_ref,omitempty"`
	GatewayPaymentRef string `gorm:"type:varchar(64);uniqueIndex:idx_orders_payment_ref,where:payment_gateway_payment_ref <> ''" json:"gateway_payment_ref,omitempty"`
	Method            string `gorm:"type:varchar(32)" json:"method,omitempty"`
}

// ShippingAddress is copied onto the order at creation
type ShippingAddress struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Phone    string `json:"phone"`
}

// HasPayment reports whether gateway references were recorded for the order
func (o *Order) HasPayment() bool {
	return o.PaymentInfo.GatewayPaymentRef != ""
}

// IsOwnedBy reports whether principal placed the order
func (o *Order) IsOwnedBy(principal string) bool {
	return principal != "" && o.OwnerID == principal
}

// Clone returns a deep copy of the order so that callers can mutate it
// without touching the original.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	cp := *o
	if o.Items != nil {
		cp.Items = make([]OrderItem, len(o.Items))
		copy(cp.Items, o.Items)
	}
	cp.ReturnRequest = o.ReturnRequest.clone()
	return &cp
}
