package order

import (
	"time"

	"pos/internal/core/domain/model/kernel"
)

// Order is the client's read model of a server-owned order. The backend is
// the source of truth: the client only classifies orders, groups them for
// the kitchen board and recommends the next status transition. Fields are
// exported because nothing here is mutated locally; every snapshot is
// replaced wholesale on refresh.
type Order struct {
	ID     kernel.UUID
	Number string

	// ExternalID is the aggregator-side order reference, set only for
	// delivery-channel orders.
	ExternalID string

	Type          Type
	Source        Source
	Status        Status
	PaymentStatus PaymentStatus

	// TableID and TableNumber are set for dine-in orders.
	TableID     string
	TableNumber int

	// Items are priced server-side and immutable from the client's view.
	Items []Line

	Subtotal int
	Tax      int
	Total    int

	Notes string

	// Delivery is present only when Source is a delivery channel;
	// non-delivery orders leave it nil.
	Delivery *DeliveryDetails

	CashierID   string
	CashierName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Line is one priced product entry inside a server-owned order.
type Line struct {
	ID          string
	ProductID   string
	ProductName string
	VariantID   string
	VariantName string
	Modifiers   []string
	Quantity    int
	UnitPrice   int
	Subtotal    int
	Notes       string
}

// DeliveryDetails carries the customer and driver metadata of a
// delivery-channel order.
type DeliveryDetails struct {
	CustomerName  string
	CustomerPhone string
	Address       string
	DriverName    string
}

// HasDeliveryDetails reports whether the order carries meaningful delivery
// metadata. Only orders from delivery sources do; the metadata of a
// non-delivery order is ignored even if present on the wire.
func (o Order) HasDeliveryDetails() bool {
	return o.Source.IsDelivery() && o.Delivery != nil
}

// NextStatus returns the single forward transition recommended for the
// order, or false when the order is terminal or its status is unknown. The
// caller commits the transition through the order API and must treat the
// local list as stale until the next refresh: another terminal may already
// have advanced the order.
func (o Order) NextStatus() (Status, bool) {
	return o.Status.Next()
}
