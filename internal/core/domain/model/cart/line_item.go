package cart

import (
	"errors"
	"slices"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem was not created
	// through NewLineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem is one product entry inside the cart: a product reference, an
// optional variant, opaque modifier tags, a quantity and the unit price at
// selection time. Its identity is assigned by the owning Cart at insertion
// and is unique within that cart.
//
// LineItem is a value object with private fields; mutation happens only
// through the Cart that owns it.
type LineItem struct { //nolint:recvcheck //using for validation
	id          kernel.UUID
	productID   string
	productName string
	variantID   string
	variantName string
	modifiers   []string
	quantity    int
	unitPrice   int
	notes       string

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item ready for insertion into a cart.
// The product reference must be present, quantity must be at least 1 and the
// unit price non-negative. Variant, modifiers and notes are optional.
// The identity stays zero until Cart.AddItem assigns it.
func NewLineItem(
	productID string,
	productName string,
	variantID string,
	variantName string,
	modifiers []string,
	quantity int,
	unitPrice int,
	notes string,
) (LineItem, error) {
	item := LineItem{
		variantID:   variantID,
		variantName: variantName,
		modifiers:   slices.Clone(modifiers),
		notes:       notes,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProduct(productID, productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the line item was created through NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// ID returns the identity assigned by the owning cart. It is the zero UUID
// until the item has been added to a cart.
func (i LineItem) ID() kernel.UUID {
	return i.id
}

// ProductID returns the product reference.
func (i LineItem) ProductID() string {
	return i.productID
}

// ProductName returns the display name of the product.
func (i LineItem) ProductName() string {
	return i.productName
}

// VariantID returns the variant reference, empty when no variant is chosen.
func (i LineItem) VariantID() string {
	return i.variantID
}

// VariantName returns the display name of the chosen variant.
func (i LineItem) VariantName() string {
	return i.variantName
}

// Modifiers returns a copy of the opaque modifier tags.
func (i LineItem) Modifiers() []string {
	return slices.Clone(i.modifiers)
}

// Quantity returns the quantity, always at least 1 while the item is stored.
func (i LineItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit in the smallest currency unit.
func (i LineItem) UnitPrice() int {
	return i.unitPrice
}

// Notes returns the free-text note attached to the line.
func (i LineItem) Notes() string {
	return i.notes
}

func (i *LineItem) setProduct(productID, productName string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}

	i.productID = productID
	i.productName = productName
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineQuantity)
	}
	if quantity > maxLineQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineQuantity)
	}

	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice int) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidError("unitPrice")
	}

	i.unitPrice = unitPrice
	return nil
}

// maxLineQuantity bounds a single line; larger orders are split server-side.
const maxLineQuantity = 999
