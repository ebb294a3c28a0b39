package queries

import (
	"context"

	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/services"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

// GetDashboardStatsQueryHandler computes the admin dashboard numbers from
// the current order snapshot.
type GetDashboardStatsQueryHandler struct {
	snapshot ports.OrderSnapshot
	board    services.KitchenBoard
}

// NewGetDashboardStatsQueryHandler creates a handler reading from the given
// snapshot.
func NewGetDashboardStatsQueryHandler(snapshot ports.OrderSnapshot) (GetDashboardStatsQueryHandler, error) {
	if snapshot == nil {
		return GetDashboardStatsQueryHandler{}, errs.NewValueIsRequiredError("snapshot")
	}

	return GetDashboardStatsQueryHandler{
		snapshot: snapshot,
		board:    services.NewKitchenBoard(),
	}, nil
}

// Handle executes the stats query against the current snapshot.
func (h GetDashboardStatsQueryHandler) Handle(
	_ context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	orders, _ := h.snapshot.ActiveOrders()

	revenue := 0
	for _, o := range orders {
		if o.PaymentStatus == order.PaymentPaid {
			revenue += o.Total
		}
	}

	return GetDashboardStatsQueryResponse{
		TotalOrders:  len(orders),
		TotalRevenue: revenue,
		ActiveOrders: h.board.GroupByStatus(orders).ActiveCount(),
	}, nil
}
