// Package repository persists orders. Every implementation applies Update as
// a read-modify-write cycle that is atomic for the single order it touches.
package repository

import (
	"context"
	"errors"

	"github.com/Govind-619/Storefront/models"
	"github.com/google/uuid"
)

var (
	// ErrOrderNotFound is returned when no order has the requested id
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicatePayment is returned when a gateway payment ref is already recorded
	ErrDuplicatePayment = errors.New("gateway payment already recorded")
)

// MutateFunc changes an order in place. Returning an error aborts the update
// and leaves the stored order untouched.
type MutateFunc func(order *models.Order) error

// OrderStore is the persistence boundary of the order services
type OrderStore interface {
	Get(ctx context.Context, id string) (*models.Order, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	FindByPaymentRef(ctx context.Context, gatewayPaymentRef string) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	Update(ctx context.Context, id string, mutate MutateFunc) (*models.Order, error)
}

// prepareForInsert assigns the id and item positions of a new order
func prepareForInsert(order *models.Order) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.ReturnRequest.Status == "" {
		order.ReturnRequest = models.NewReturnRequest()
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
		order.Items[i].Position = i
	}
}
