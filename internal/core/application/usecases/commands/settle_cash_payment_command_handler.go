package commands

import (
	"context"

	"pos/internal/core/domain/services"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

// SettleCashPaymentCommandHandler settles an order with a cash tender. The
// tender is checked against the total before anything reaches the gateway:
// an insufficient tender fails with services.ErrInsufficientPayment and the
// screen keeps the payment dialog open.
type SettleCashPaymentCommandHandler struct {
	gateway ports.OrderGateway
	pricing services.Pricing
}

// NewSettleCashPaymentCommandHandler creates a handler for cash settlement.
func NewSettleCashPaymentCommandHandler(
	gateway ports.OrderGateway,
	pricing services.Pricing,
) (SettleCashPaymentCommandHandler, error) {
	if gateway == nil {
		return SettleCashPaymentCommandHandler{}, errs.NewValueIsRequiredError("gateway")
	}

	return SettleCashPaymentCommandHandler{
		gateway: gateway,
		pricing: pricing,
	}, nil
}

// Handle validates the tender and submits the payment. Returns the receipt
// from the order API on success.
func (h SettleCashPaymentCommandHandler) Handle(
	ctx context.Context,
	cmd SettleCashPaymentCommand,
) (ports.Receipt, error) {
	if err := cmd.Validate(); err != nil {
		return ports.Receipt{}, err
	}

	if _, err := h.pricing.Change(cmd.AmountTendered(), cmd.Total()); err != nil {
		return ports.Receipt{}, err
	}

	receipt, err := h.gateway.SubmitCashPayment(ctx, cmd.OrderID(), cmd.AmountTendered())
	if err != nil {
		return ports.Receipt{}, err
	}

	return receipt, nil
}
