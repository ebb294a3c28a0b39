package commands

import (
	"context"

	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

// AdvanceOrderStatusCommandHandler commits the single forward transition the
// status machine offers from the observed status. The handler never chooses
// a target status itself; skipping states is not expressible.
//
// The observed status may already be stale: another terminal can advance the
// order between the last poll and this call. The backend enforces actual
// transition validity, and the caller treats the local list as stale until
// the next refresh either way.
type AdvanceOrderStatusCommandHandler struct {
	gateway ports.OrderGateway
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status
// advancement.
func NewAdvanceOrderStatusCommandHandler(gateway ports.OrderGateway) (AdvanceOrderStatusCommandHandler, error) {
	if gateway == nil {
		return AdvanceOrderStatusCommandHandler{}, errs.NewValueIsRequiredError("gateway")
	}

	return AdvanceOrderStatusCommandHandler{gateway: gateway}, nil
}

// Handle computes the next status and commits it through the gateway.
// Returns the committed status, or ErrNoNextStatus when the observed status
// is terminal.
func (h AdvanceOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceOrderStatusCommand,
) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.StatusUnknown, err
	}

	next, ok := cmd.Current().Next()
	if !ok {
		return order.StatusUnknown, ErrNoNextStatus
	}

	if err := h.gateway.UpdateOrderStatus(ctx, cmd.OrderID(), next); err != nil {
		return order.StatusUnknown, err
	}

	return next, nil
}
