package order

import (
	"fmt"

	"pos/internal/pkg/errs"
)

// Type classifies how an order is fulfilled.
type Type int

const (
	// TypeUnknown represents an order type tag the client does not recognize.
	TypeUnknown Type = iota

	// TypeDineIn is an in-house order bound to a table.
	TypeDineIn

	// TypeTakeaway is an in-house order without a table.
	TypeTakeaway

	// TypeDelivery is an order originating from a delivery channel. It is
	// assigned server-side and never selectable on the cart.
	TypeDelivery
)

func typeTags() map[Type]string {
	return map[Type]string{
		TypeDineIn:   "dine_in",
		TypeTakeaway: "takeaway",
		TypeDelivery: "delivery",
	}
}

// TypeFromString maps a wire tag to its Type, falling back to TypeUnknown
// for unrecognized tags.
func TypeFromString(tag string) Type {
	for t, s := range typeTags() {
		if s == tag {
			return t
		}
	}
	return TypeUnknown
}

// String returns the wire tag of the order type.
func (t Type) String() string {
	if tag, ok := typeTags()[t]; ok {
		return tag
	}
	return "unknown"
}

// Validate returns nil for the three known order types.
func (t Type) Validate() error {
	if _, ok := typeTags()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order type is invalid",
			fmt.Errorf("%d is not a valid order type", int(t)))
	}
	return nil
}

// PaymentStatus tracks whether an order has been settled.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentUnpaid
	PaymentPaid
)

// PaymentStatusFromString maps a wire tag to its PaymentStatus, falling back
// to PaymentUnknown for unrecognized tags.
func PaymentStatusFromString(tag string) PaymentStatus {
	switch tag {
	case "unpaid":
		return PaymentUnpaid
	case "paid":
		return PaymentPaid
	default:
		return PaymentUnknown
	}
}

// String returns the wire tag of the payment status.
func (p PaymentStatus) String() string {
	switch p {
	case PaymentUnpaid:
		return "unpaid"
	case PaymentPaid:
		return "paid"
	default:
		return "unknown"
	}
}
