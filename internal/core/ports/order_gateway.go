// Package ports defines the contracts between the point-of-sale core and
// the outside world. The core never issues network calls itself; it consumes
// snapshots and produces decisions, and the adapters behind these interfaces
// carry them to the backend.
package ports

import (
	"context"
	"time"

	"pos/internal/core/domain/model/cart"
	"pos/internal/core/domain/model/catalog"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
)

// OrderGateway is the client side of the remote order API. The backend is
// the source of truth for every order: after any mutation through this
// gateway the locally held order list is stale until re-fetched.
type OrderGateway interface {
	// SubmitOrder creates an order from a validated cart submission and
	// returns the server-assigned order identity and number.
	SubmitOrder(ctx context.Context, submission cart.Submission) (OrderRef, error)

	// SubmitCashPayment settles an order with a cash tender and returns the
	// receipt. The tender must already have been validated to cover the
	// total.
	SubmitCashPayment(ctx context.Context, orderID kernel.UUID, amountPaid int) (Receipt, error)

	// UpdateOrderStatus commits a status transition. The backend enforces
	// transition validity; a conflict means another terminal advanced the
	// order first.
	UpdateOrderStatus(ctx context.Context, orderID kernel.UUID, status order.Status) error

	// ActiveOrders fetches the orders currently on the kitchen board.
	ActiveOrders(ctx context.Context) ([]order.Order, error)
}

// OrderRef identifies a freshly created order.
type OrderRef struct {
	ID     kernel.UUID
	Number string
}

// Receipt is the settlement record returned for a cash payment.
type Receipt struct {
	OrderID     kernel.UUID
	OrderNumber string
	Total       int
	AmountPaid  int
	Change      int
}

// CatalogProvider fetches the store's reference data.
type CatalogProvider interface {
	Catalog(ctx context.Context) (catalog.Catalog, error)
}

// OrderSnapshot is read access to the most recently fetched active orders.
// Queries recompute their views from this snapshot on every call.
type OrderSnapshot interface {
	// ActiveOrders returns the snapshot and the time it was fetched. The
	// returned slice is the caller's to keep.
	ActiveOrders() ([]order.Order, time.Time)
}

// OrderSink receives a freshly fetched order list. Implemented by the
// snapshot store and fed by the polling job.
type OrderSink interface {
	Replace(orders []order.Order, fetchedAt time.Time)
}
