package commands

import (
	"errors"

	"pos/internal/core/domain/model/cart"
	"pos/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrCartIsRequired = errors.New("cart is required")
)

// CheckoutCommand represents a request to finalize the cart into an order.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(cart)
//	if err != nil {
//	    return err
//	}
//	ref, err := handler.Handle(ctx, cmd)
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	cart *cart.Cart

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to submit the given cart. The cart
// must be a constructed instance; its content is validated by the handler at
// submission time, so an empty cart fails there, not here.
func NewCheckoutCommand(c *cart.Cart) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := checkoutCommand.setCart(c); err != nil {
		return CheckoutCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// Cart returns the cart being checked out.
func (c CheckoutCommand) Cart() *cart.Cart {
	return c.cart
}

func (c *CheckoutCommand) setCart(cartInstance *cart.Cart) error {
	if cartInstance == nil {
		return ErrCartIsRequired
	}
	if err := cartInstance.Validate(); err != nil {
		return err
	}

	c.cart = cartInstance
	return nil
}
