// Package queries contains the read operations of the terminal: the kitchen
// board view and the admin dashboard stats. Queries recompute their read
// models from the current order snapshot on every call; they issue no I/O
// and tolerate the snapshot being stale between poll ticks.
package queries

import (
	"errors"
	"time"

	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var (
	ErrGetKitchenBoardQueryIsNotConstructed = errors.New(
		"GetKitchenBoardQuery must be created via NewGetKitchenBoardQuery constructor",
	)
)

// GetKitchenBoardQuery retrieves the kitchen board: active orders grouped by
// status column, optionally filtered to a single order source.
//
// Example:
//
//	query := NewGetKitchenBoardQuery(order.SourceGrabFood)
//	board, err := handler.Handle(ctx, query)
type GetKitchenBoardQuery struct {
	source order.Source

	guard guard.ConstructorGuard
}

// NewGetKitchenBoardQuery creates a board query. The empty source applies no
// filter; any other value keeps only orders from that source, including tags
// the client does not recognize (the filter is an exact match on the raw
// tag).
func NewGetKitchenBoardQuery(source order.Source) GetKitchenBoardQuery {
	return GetKitchenBoardQuery{
		source: source,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetKitchenBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenBoardQueryIsNotConstructed)
}

// Source returns the source filter, empty when no filter applies.
func (q GetKitchenBoardQuery) Source() order.Source {
	return q.source
}

// GetKitchenBoardQueryResponse is the kitchen board read model: one card
// list per status column plus the snapshot's fetch time, which the screen
// uses to show how fresh the board is.
type GetKitchenBoardQueryResponse struct {
	Pending   []BoardCard
	Confirmed []BoardCard
	Cooking   []BoardCard
	Ready     []BoardCard
	FetchedAt time.Time
}

// BoardCard is one order as rendered on the kitchen board.
type BoardCard struct {
	Order order.Order

	// StatusLabel and StatusColor come from the order's status descriptor.
	StatusLabel string
	StatusColor string

	// Source display metadata, total over unknown tags.
	SourceLabel string
	SourceColor string
	SourceGlyph string

	// NextStatus is the single transition the board may offer; HasNext is
	// false for terminal or unrecognized statuses and hides the button.
	NextStatus order.Status
	HasNext    bool

	// Age is the elapsed time since creation ("Just now", "5m ago", ...).
	Age string
}
