package services

import (
	"fmt"
	"time"

	"pos/internal/core/domain/model/order"
)

// KitchenBoard partitions and filters externally fetched orders for the
// kitchen display and the admin dashboard. It is a read-only view over the
// supplied snapshot: nothing is mutated and the result is recomputed from
// scratch on every poll tick.
type KitchenBoard struct{}

// NewKitchenBoard creates a KitchenBoard instance.
func NewKitchenBoard() KitchenBoard {
	return KitchenBoard{}
}

// BoardGroups holds the active orders by status column. Completed and
// cancelled orders are historical and never appear on the board; orders with
// an unrecognized status are likewise excluded rather than misfiled.
type BoardGroups struct {
	Pending   []order.Order
	Confirmed []order.Order
	Cooking   []order.Order
	Ready     []order.Order
}

// ActiveCount returns the number of orders across all board columns.
func (g BoardGroups) ActiveCount() int {
	return len(g.Pending) + len(g.Confirmed) + len(g.Cooking) + len(g.Ready)
}

// FilterBySource keeps only orders from the given source. The empty source
// applies no filter and returns the input orders unchanged.
func (KitchenBoard) FilterBySource(orders []order.Order, source order.Source) []order.Order {
	if source == "" {
		return orders
	}

	filtered := make([]order.Order, 0, len(orders))
	for _, o := range orders {
		if o.Source == source {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// GroupByStatus partitions orders into the four board columns, preserving
// the order of the input within each column.
func (KitchenBoard) GroupByStatus(orders []order.Order) BoardGroups {
	var groups BoardGroups
	for _, o := range orders {
		switch o.Status {
		case order.StatusPending:
			groups.Pending = append(groups.Pending, o)
		case order.StatusConfirmed:
			groups.Confirmed = append(groups.Confirmed, o)
		case order.StatusCooking:
			groups.Cooking = append(groups.Cooking, o)
		case order.StatusReady:
			groups.Ready = append(groups.Ready, o)
		default:
			// completed, cancelled and unknown statuses stay off the board
		}
	}
	return groups
}

// TimeSince renders the elapsed time since an order was created for the
// board card: "Just now" under a minute, "Nm ago" under an hour, otherwise
// "Hh Mm ago". Deterministic given the two timestamps; a createdAt ahead of
// now (clock skew between terminal and server) renders as "Just now".
func (KitchenBoard) TimeSince(createdAt, now time.Time) string {
	minutes := int(now.Sub(createdAt).Minutes())
	if minutes < 1 {
		return "Just now"
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}
	return fmt.Sprintf("%dh %dm ago", minutes/60, minutes%60)
}
