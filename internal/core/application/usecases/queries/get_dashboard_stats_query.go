package queries

import (
	"errors"

	"pos/internal/pkg/guard"
)

var (
	ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
		"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
	)
)

// GetDashboardStatsQuery retrieves the admin dashboard headline numbers
// derived from the current order snapshot.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a parameterless stats query.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse holds the dashboard read model. Revenue
// sums the totals of paid orders only; active counts the orders currently on
// the kitchen board.
type GetDashboardStatsQueryResponse struct {
	TotalOrders  int
	TotalRevenue int
	ActiveOrders int
}
