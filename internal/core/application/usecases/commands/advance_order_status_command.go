package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var (
	ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
		"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
	)

	// ErrNoNextStatus is returned when the order's current status offers no
	// forward transition: terminal orders and unrecognized statuses.
	ErrNoNextStatus = errors.New("no next status from the current status")
)

// AdvanceOrderStatusCommand represents a request to move an order one step
// along the kitchen workflow, from the status the terminal last observed.
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	current order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates a command to advance an order. The
// current status must be one of the known statuses; Unknown is rejected here
// since the machine could never have recommended a transition from it.
func NewAdvanceOrderStatusCommand(orderID kernel.UUID, current order.Status) (AdvanceOrderStatusCommand, error) {
	statusCommand := AdvanceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setCurrent(current),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order being advanced.
func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Current returns the status the terminal last observed for the order.
func (c AdvanceOrderStatusCommand) Current() order.Status {
	return c.current
}

func (c *AdvanceOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderStatusCommand) setCurrent(current order.Status) error {
	if err := current.Validate(); err != nil {
		return err
	}

	c.current = current
	return nil
}
