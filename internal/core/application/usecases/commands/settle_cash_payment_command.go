package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var (
	ErrSettleCashPaymentCommandIsNotConstructed = errors.New(
		"SettleCashPaymentCommand must be created via NewSettleCashPaymentCommand constructor",
	)
)

// SettleCashPaymentCommand represents a cash tender against an order's
// total. Total and tender are integers in the smallest currency unit.
type SettleCashPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	total          int
	amountTendered int

	guard guard.ConstructorGuard
}

// NewSettleCashPaymentCommand creates a command to settle an order in cash.
// The order identity must be valid and both amounts non-negative; whether
// the tender covers the total is the handler's decision, because that
// failure is a user-facing prompt rather than invalid input.
func NewSettleCashPaymentCommand(orderID kernel.UUID, total, amountTendered int) (SettleCashPaymentCommand, error) {
	paymentCommand := SettleCashPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setOrderID(orderID),
		paymentCommand.setTotal(total),
		paymentCommand.setAmountTendered(amountTendered),
	); err != nil {
		return SettleCashPaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SettleCashPaymentCommand) Validate() error {
	return c.guard.Validate(ErrSettleCashPaymentCommandIsNotConstructed)
}

// OrderID returns the order being settled.
func (c SettleCashPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Total returns the amount owed.
func (c SettleCashPaymentCommand) Total() int {
	return c.total
}

// AmountTendered returns the cash handed over by the customer.
func (c SettleCashPaymentCommand) AmountTendered() int {
	return c.amountTendered
}

func (c *SettleCashPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SettleCashPaymentCommand) setTotal(total int) error {
	if total < 0 {
		return errs.NewValueIsInvalidError("total")
	}

	c.total = total
	return nil
}

func (c *SettleCashPaymentCommand) setAmountTendered(amountTendered int) error {
	if amountTendered < 0 {
		return errs.NewValueIsInvalidError("amountTendered")
	}

	c.amountTendered = amountTendered
	return nil
}
