// Package snapshot provides the in-memory order snapshot shared between the
// poll job (writer) and the query handlers (readers). The store holds the
// last successfully fetched set of active orders; a failed poll leaves the
// previous snapshot in place so the board keeps showing the last known state.
package snapshot

import (
	"sync"
	"time"

	"pos/internal/core/domain/model/order"
)

// Store is a mutex-guarded snapshot of active orders. The zero value is
// usable and reports an empty snapshot until the first Replace.
type Store struct {
	mu        sync.RWMutex
	orders    []order.Order
	fetchedAt time.Time
}

// NewStore creates an empty snapshot store.
func NewStore() *Store {
	return &Store{}
}

// Replace swaps the snapshot with a freshly fetched set of orders.
func (s *Store) Replace(orders []order.Order, fetchedAt time.Time) {
	copied := make([]order.Order, len(orders))
	copy(copied, orders)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = copied
	s.fetchedAt = fetchedAt
}

// ActiveOrders returns a copy of the current snapshot along with the time it
// was fetched. Callers may mutate the returned slice freely.
func (s *Store) ActiveOrders() ([]order.Order, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]order.Order, len(s.orders))
	copy(copied, s.orders)

	return copied, s.fetchedAt
}
