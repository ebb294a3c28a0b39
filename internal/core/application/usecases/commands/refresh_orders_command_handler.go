package commands

import (
	"context"
	"time"

	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

// RefreshOrdersCommandHandler fetches the current active orders and replaces
// the local snapshot wholesale. Run periodically by the polling job; the
// queries read whatever snapshot is current and tolerate it being stale
// between ticks.
type RefreshOrdersCommandHandler struct {
	gateway ports.OrderGateway
	sink    ports.OrderSink
	now     func() time.Time
}

// NewRefreshOrdersCommandHandler creates a handler for snapshot refresh.
func NewRefreshOrdersCommandHandler(
	gateway ports.OrderGateway,
	sink ports.OrderSink,
) (RefreshOrdersCommandHandler, error) {
	if gateway == nil {
		return RefreshOrdersCommandHandler{}, errs.NewValueIsRequiredError("gateway")
	}
	if sink == nil {
		return RefreshOrdersCommandHandler{}, errs.NewValueIsRequiredError("sink")
	}

	return RefreshOrdersCommandHandler{
		gateway: gateway,
		sink:    sink,
		now:     time.Now,
	}, nil
}

// Handle fetches and stores the active order list. On fetch failure the
// previous snapshot is kept; a stale board beats an empty one.
func (h RefreshOrdersCommandHandler) Handle(ctx context.Context, cmd RefreshOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	orders, err := h.gateway.ActiveOrders(ctx)
	if err != nil {
		return err
	}

	h.sink.Replace(orders, h.now())
	return nil
}
