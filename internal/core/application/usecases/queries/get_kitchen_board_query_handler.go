package queries

import (
	"context"
	"time"

	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/services"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

// GetKitchenBoardQueryHandler builds the kitchen board from the current
// order snapshot. Pure recomputation: filter by source, group by status,
// derive display metadata per card.
type GetKitchenBoardQueryHandler struct {
	snapshot ports.OrderSnapshot
	board    services.KitchenBoard
	now      func() time.Time
}

// NewGetKitchenBoardQueryHandler creates a handler reading from the given
// snapshot.
func NewGetKitchenBoardQueryHandler(snapshot ports.OrderSnapshot) (GetKitchenBoardQueryHandler, error) {
	if snapshot == nil {
		return GetKitchenBoardQueryHandler{}, errs.NewValueIsRequiredError("snapshot")
	}

	return GetKitchenBoardQueryHandler{
		snapshot: snapshot,
		board:    services.NewKitchenBoard(),
		now:      time.Now,
	}, nil
}

// Handle executes the query against the current snapshot.
func (h GetKitchenBoardQueryHandler) Handle(
	_ context.Context,
	query GetKitchenBoardQuery,
) (GetKitchenBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetKitchenBoardQueryResponse{}, err
	}

	orders, fetchedAt := h.snapshot.ActiveOrders()
	filtered := h.board.FilterBySource(orders, query.Source())
	groups := h.board.GroupByStatus(filtered)

	now := h.now()
	return GetKitchenBoardQueryResponse{
		Pending:   h.cards(groups.Pending, now),
		Confirmed: h.cards(groups.Confirmed, now),
		Cooking:   h.cards(groups.Cooking, now),
		Ready:     h.cards(groups.Ready, now),
		FetchedAt: fetchedAt,
	}, nil
}

func (h GetKitchenBoardQueryHandler) cards(orders []order.Order, now time.Time) []BoardCard {
	cards := make([]BoardCard, len(orders))
	for i, o := range orders {
		source := o.Source.Describe()
		next, hasNext := o.NextStatus()

		cards[i] = BoardCard{
			Order:       o,
			StatusLabel: o.Status.Label(),
			StatusColor: o.Status.Color(),
			SourceLabel: source.Label,
			SourceColor: source.Color,
			SourceGlyph: source.Glyph,
			NextStatus:  next,
			HasNext:     hasNext,
			Age:         h.board.TimeSince(o.CreatedAt, now),
		}
	}
	return cards
}
