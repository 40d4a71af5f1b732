package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Govind-619/Storefront/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderStore keeps orders in Postgres through gorm
type GormOrderStore struct {
	db *gorm.DB
}

// NewGormOrderStore wraps an open gorm connection
func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Get loads one order with its items
func (s *GormOrderStore) Get(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Preload("Items", orderedItems).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load order %s: %w", id, err)
	}
	return &order, nil
}

// ListByOwner returns the owner's orders, most recent first
func (s *GormOrderStore) ListByOwner(ctx context.Context, ownerID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders for %s: %w", ownerID, err)
	}
	return orders, nil
}

// ListAll returns every order, most recent first
func (s *GormOrderStore) ListAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// FindByPaymentRef returns the order recorded for a gateway payment
func (s *GormOrderStore) FindByPaymentRef(ctx context.Context, gatewayPaymentRef string) (*models.Order, error) {
	if gatewayPaymentRef == "" {
		return nil, ErrOrderNotFound
	}
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Items", orderedItems).
		First(&order, "payment_gateway_payment_ref = ?", gatewayPaymentRef).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find order by payment %s: %w", gatewayPaymentRef, err)
	}
	return &order, nil
}

// Create inserts the order and its items in one transaction
func (s *GormOrderStore) Create(ctx context.Context, order *models.Order) error {
	prepareForInsert(order)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicatePayment
	}
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

// Update locks the order row, applies mutate and saves the result. Items are
// immutable after creation and are not rewritten.
func (s *GormOrderStore) Update(ctx context.Context, id string, mutate MutateFunc) (*models.Order, error) {
	var updated models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return fmt.Errorf("lock order %s: %w", id, err)
		}
		if err := tx.Where("order_id = ?", id).Order("position ASC").Find(&order.Items).Error; err != nil {
			return fmt.Errorf("load items of order %s: %w", id, err)
		}

		if err := mutate(&order); err != nil {
			return err
		}
		order.ID = id
		order.UpdatedAt = time.Now()

		if err := tx.Omit(clause.Associations).Save(&order).Error; err != nil {
			return fmt.Errorf("save order %s: %w", id, err)
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
