package services

import (
	"errors"

	"pos/internal/core/domain/model/cart"
	"pos/internal/pkg/errs"
)

var (
	// ErrInsufficientPayment is returned by Change when the tendered amount
	// does not cover the total. Settlement must be blocked by the caller; the
	// error is a user-facing prompt, not a failure.
	ErrInsufficientPayment = errors.New("amount tendered does not cover the total")
)

// DefaultTaxBasisPoints is the configured tax fraction: 11%.
const DefaultTaxBasisPoints = 1100

// basisPointScale is the denominator of a basis-point fraction.
const basisPointScale = 10000

// Pricing is the pure calculator for cart and payment arithmetic. All
// amounts are integers in the smallest currency unit; no floating point is
// involved anywhere, so results are exact and order-independent.
//
// Pricing is a value, holds no state beyond the configured tax rate and is
// safe for concurrent use.
type Pricing struct {
	taxBasisPoints int
}

// NewPricing creates a calculator with the given tax rate in basis points
// (1100 = 11%). The rate must lie within [0, 10000].
func NewPricing(taxBasisPoints int) (Pricing, error) {
	if taxBasisPoints < 0 || taxBasisPoints > basisPointScale {
		return Pricing{}, errs.NewValueIsOutOfRangeError("taxBasisPoints", taxBasisPoints, 0, basisPointScale)
	}

	return Pricing{taxBasisPoints: taxBasisPoints}, nil
}

// NewDefaultPricing creates a calculator with the standard 11% rate.
func NewDefaultPricing() Pricing {
	return Pricing{taxBasisPoints: DefaultTaxBasisPoints}
}

// Subtotal sums unit price times quantity over the given lines. The sum is
// commutative under reordering since it is plain integer addition.
func (p Pricing) Subtotal(items []cart.LineItem) int {
	subtotal := 0
	for _, item := range items {
		subtotal += item.UnitPrice() * item.Quantity()
	}
	return subtotal
}

// Tax computes the tax owed on a subtotal, rounding half away from zero.
// With the 11% rate a subtotal of 50 owes 5.5 units and yields 6.
// Tax is monotonic non-decreasing in the subtotal.
func (p Pricing) Tax(subtotal int) int {
	product := subtotal * p.taxBasisPoints
	if product >= 0 {
		return (product + basisPointScale/2) / basisPointScale
	}
	return (product - basisPointScale/2) / basisPointScale
}

// Total returns subtotal plus tax.
func (p Pricing) Total(subtotal, tax int) int {
	return subtotal + tax
}

// Change returns the amount to hand back for a cash tender. An exact tender
// yields zero change; a short tender fails with ErrInsufficientPayment and
// the caller must block settlement.
func (p Pricing) Change(amountTendered, total int) (int, error) {
	change := amountTendered - total
	if change < 0 {
		return 0, ErrInsufficientPayment
	}
	return change, nil
}
