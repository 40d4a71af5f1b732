package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Govind-619/Storefront/models"
)

type memoryEntry struct {
	order *models.Order
	seq   uint64
}

// MemoryOrderStore keeps orders in process memory. A single mutex covers
// every read-modify-write, which is enough since orders are never mutated
// together.
type MemoryOrderStore struct {
	mu     sync.Mutex
	orders map[string]*memoryEntry
	seq    uint64
	now    func() time.Time
}

// NewMemoryOrderStore returns an empty store
func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{
		orders: make(map[string]*memoryEntry),
		now:    time.Now,
	}
}

// Get returns a copy of the order
func (s *MemoryOrderStore) Get(_ context.Context, id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return entry.order.Clone(), nil
}

// ListByOwner returns copies of the owner's orders, most recent first
func (s *MemoryOrderStore) ListByOwner(_ context.Context, ownerID string) ([]models.Order, error) {
	return s.list(func(o *models.Order) bool { return o.OwnerID == ownerID }), nil
}

// ListAll returns copies of every order, most recent first
func (s *MemoryOrderStore) ListAll(_ context.Context) ([]models.Order, error) {
	return s.list(func(*models.Order) bool { return true }), nil
}

func (s *MemoryOrderStore) list(keep func(*models.Order) bool) []models.Order {
	s.mu.Lock()
	entries := make([]*memoryEntry, 0, len(s.orders))
	for _, entry := range s.orders {
		if keep(entry.order) {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.order.CreatedAt.Equal(b.order.CreatedAt) {
			return a.order.CreatedAt.After(b.order.CreatedAt)
		}
		return a.seq > b.seq
	})
	orders := make([]models.Order, 0, len(entries))
	for _, entry := range entries {
		orders = append(orders, *entry.order.Clone())
	}
	s.mu.Unlock()
	return orders
}

// FindByPaymentRef returns a copy of the order recorded for a gateway payment
func (s *MemoryOrderStore) FindByPaymentRef(_ context.Context, gatewayPaymentRef string) (*models.Order, error) {
	if gatewayPaymentRef == "" {
		return nil, ErrOrderNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry := s.byPaymentRef(gatewayPaymentRef); entry != nil {
		return entry.order.Clone(), nil
	}
	return nil, ErrOrderNotFound
}

func (s *MemoryOrderStore) byPaymentRef(ref string) *memoryEntry {
	for _, entry := range s.orders {
		if entry.order.PaymentInfo.GatewayPaymentRef == ref {
			return entry
		}
	}
	return nil
}

// Create stores a copy of order, filling in id and timestamps on order itself
func (s *MemoryOrderStore) Create(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ref := order.PaymentInfo.GatewayPaymentRef; ref != "" && s.byPaymentRef(ref) != nil {
		return ErrDuplicatePayment
	}
	prepareForInsert(order)
	now := s.now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	s.seq++
	s.orders[order.ID] = &memoryEntry{order: order.Clone(), seq: s.seq}
	return nil
}

// Update applies mutate to a copy and commits it only when mutate succeeds
func (s *MemoryOrderStore) Update(_ context.Context, id string, mutate MutateFunc) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	working := entry.order.Clone()
	if err := mutate(working); err != nil {
		return nil, err
	}
	working.ID = id
	working.OwnerID = entry.order.OwnerID
	working.CreatedAt = entry.order.CreatedAt
	working.UpdatedAt = s.now()
	entry.order = working
	return working.Clone(), nil
}
