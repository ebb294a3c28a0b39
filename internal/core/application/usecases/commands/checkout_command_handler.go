package commands

import (
	"context"

	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

// CheckoutCommandHandler submits a cart to the order API and clears it on
// success. Validation failures (empty cart, dine-in without a table) surface
// as errors for the screen to prompt on; the cart is left untouched so the
// cashier can fix and retry.
type CheckoutCommandHandler struct {
	gateway ports.OrderGateway
}

// NewCheckoutCommandHandler creates a handler for cart checkout.
func NewCheckoutCommandHandler(gateway ports.OrderGateway) (CheckoutCommandHandler, error) {
	if gateway == nil {
		return CheckoutCommandHandler{}, errs.NewValueIsRequiredError("gateway")
	}

	return CheckoutCommandHandler{gateway: gateway}, nil
}

// Handle validates the cart, submits it and returns the server-assigned
// order reference. The cart is cleared only after the API accepts the order.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (ports.OrderRef, error) {
	if err := cmd.Validate(); err != nil {
		return ports.OrderRef{}, err
	}

	submission, err := cmd.Cart().Submission()
	if err != nil {
		return ports.OrderRef{}, err
	}

	ref, err := h.gateway.SubmitOrder(ctx, submission)
	if err != nil {
		return ports.OrderRef{}, err
	}

	cmd.Cart().Clear()
	return ref, nil
}
