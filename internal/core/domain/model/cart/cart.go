package cart

import (
	"errors"
	"slices"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart was not created through
	// the NewCart factory method.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

	// ErrCartIsEmpty is returned when an empty cart is turned into a
	// submission.
	ErrCartIsEmpty = errors.New("cart has no items")

	// ErrTableIsRequired is returned when a dine-in cart is submitted
	// without a table binding.
	ErrTableIsRequired = errs.NewValueIsRequiredError("tableId")

	// ErrTableNotAllowed is returned when a table is bound to a takeaway
	// cart.
	ErrTableNotAllowed = errs.NewValueIsInvalidErrorWithCause("tableId",
		errors.New("takeaway orders cannot have a table"))
)

// TaxCalculator computes the tax owed on a subtotal. The cart keeps no tax
// rate of its own; the configured pricing service is injected at
// construction.
type TaxCalculator interface {
	Tax(subtotal int) int
}

// Cart is the mutable aggregate holding one in-progress order. It owns its
// line items exclusively: identities are assigned at insertion and items are
// destroyed on removal or clear.
//
// A cart is created per session and passed explicitly to its consumers;
// there is no ambient shared instance. It must not be mutated from two call
// sites concurrently without external serialization.
//
// Invariants:
//   - stored line items always have quantity >= 1 (a non-positive quantity
//     update removes the line)
//   - a table is bound only while the order type is dine-in
//   - insertion order of items is preserved for display
type Cart struct {
	items     []LineItem
	orderType order.Type
	tableID   string
	notes     string

	calc          TaxCalculator
	isConstructed bool
}

// NewCart creates an empty cart with the dine-in order type, matching the
// default ordering flow at the counter. The tax calculator is required.
func NewCart(calc TaxCalculator) (*Cart, error) {
	if calc == nil {
		return nil, errs.NewValueIsRequiredError("taxCalculator")
	}

	return &Cart{
		orderType:     order.TypeDineIn,
		calc:          calc,
		isConstructed: true,
	}, nil
}

// Validate ensures the cart was created through NewCart.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// AddItem inserts a line item and assigns its identity, which is returned to
// the caller for later quantity edits. Items are appended; the cart never
// merges lines, matching how the cashier builds an order entry by entry.
func (c *Cart) AddItem(item LineItem) (kernel.UUID, error) {
	if err := item.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	item.id = kernel.NewUUID()
	c.items = append(c.items, item)
	return item.id, nil
}

// RemoveItem destroys the line with the given identity.
// Returns an ObjectNotFoundError when no such line exists.
func (c *Cart) RemoveItem(id kernel.UUID) error {
	for idx, item := range c.items {
		if item.id.IsEqual(id) {
			c.items = slices.Delete(c.items, idx, idx+1)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("lineItemId", id.String())
}

// UpdateQuantity sets the quantity of the identified line. A quantity of
// zero or less removes the line entirely; a zero-quantity line is never
// stored.
func (c *Cart) UpdateQuantity(id kernel.UUID, quantity int) error {
	if quantity <= 0 {
		return c.RemoveItem(id)
	}

	for idx := range c.items {
		if c.items[idx].id.IsEqual(id) {
			return c.items[idx].setQuantity(quantity)
		}
	}
	return errs.NewObjectNotFoundError("lineItemId", id.String())
}

// Clear empties the cart, unbinds the table and resets the order note. The
// order type is kept for the next order at the same terminal. Called after
// successful submission or an explicit cancel.
func (c *Cart) Clear() {
	c.items = nil
	c.tableID = ""
	c.notes = ""
}

// SetOrderType switches between dine-in and takeaway. Switching to takeaway
// clears the table binding, since a table is meaningful only for dine-in.
// Delivery is not a cart order type; delivery orders enter through the
// aggregator webhooks server-side.
func (c *Cart) SetOrderType(t order.Type) error {
	if t != order.TypeDineIn && t != order.TypeTakeaway {
		return errs.NewValueIsInvalidErrorWithCause("orderType",
			errors.New(t.String()+" is not a cart order type"))
	}

	c.orderType = t
	if t == order.TypeTakeaway {
		c.tableID = ""
	}
	return nil
}

// SetTableID binds the cart to a table. Binding is allowed only for dine-in
// carts; an empty ID clears the binding regardless of order type.
func (c *Cart) SetTableID(tableID string) error {
	if tableID == "" {
		c.tableID = ""
		return nil
	}
	if c.orderType != order.TypeDineIn {
		return ErrTableNotAllowed
	}

	c.tableID = tableID
	return nil
}

// SetNotes replaces the free-text order note.
func (c *Cart) SetNotes(notes string) {
	c.notes = notes
}

// Items returns the line items in insertion order. The slice is a copy; the
// cart retains exclusive ownership of its lines.
func (c *Cart) Items() []LineItem {
	return slices.Clone(c.items)
}

// OrderType returns the current order type tag.
func (c *Cart) OrderType() order.Type {
	return c.orderType
}

// TableID returns the bound table, empty when none is bound.
func (c *Cart) TableID() string {
	return c.tableID
}

// Notes returns the free-text order note.
func (c *Cart) Notes() string {
	return c.notes
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// ItemCount returns the total quantity across all lines, the number shown on
// the cart badge.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.quantity
	}
	return count
}

// Subtotal sums unit price times quantity over all lines. Integer currency
// units throughout; the result does not depend on line order.
func (c *Cart) Subtotal() int {
	subtotal := 0
	for _, item := range c.items {
		subtotal += item.unitPrice * item.quantity
	}
	return subtotal
}

// Tax returns the tax owed on the current subtotal.
func (c *Cart) Tax() int {
	return c.calc.Tax(c.Subtotal())
}

// Total returns subtotal plus tax.
func (c *Cart) Total() int {
	subtotal := c.Subtotal()
	return subtotal + c.calc.Tax(subtotal)
}

// Submission validates the cart and produces the order-creation request for
// the order API. It fails with ErrCartIsEmpty for an empty cart and
// ErrTableIsRequired for a dine-in cart without a table. The cart itself is
// not changed; the caller clears it after the API accepts the order.
func (c *Cart) Submission() (Submission, error) {
	if err := c.Validate(); err != nil {
		return Submission{}, err
	}
	if c.IsEmpty() {
		return Submission{}, ErrCartIsEmpty
	}
	if c.orderType == order.TypeDineIn && c.tableID == "" {
		return Submission{}, ErrTableIsRequired
	}

	items := make([]SubmissionItem, len(c.items))
	for idx, item := range c.items {
		items[idx] = SubmissionItem{
			ProductID: item.productID,
			VariantID: item.variantID,
			Modifiers: slices.Clone(item.modifiers),
			Quantity:  item.quantity,
			Notes:     item.notes,
		}
	}

	return Submission{
		OrderType: c.orderType,
		TableID:   c.tableID,
		Items:     items,
		Notes:     c.notes,
	}, nil
}

// Submission is the order-creation request produced by a validated cart.
// Prices are intentionally absent: the backend reprices every item from its
// own catalog.
type Submission struct {
	OrderType order.Type
	TableID   string
	Items     []SubmissionItem
	Notes     string
}

// SubmissionItem is one line of an order-creation request.
type SubmissionItem struct {
	ProductID string
	VariantID string
	Modifiers []string
	Quantity  int
	Notes     string
}
