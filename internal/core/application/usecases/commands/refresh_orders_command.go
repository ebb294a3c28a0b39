package commands

import (
	"errors"

	"pos/internal/pkg/guard"
)

var ErrRefreshOrdersCommandIsNotConstructed = errors.New(
	"RefreshOrdersCommand must be created via NewRefreshOrdersCommand constructor",
)

// RefreshOrdersCommand requests a re-fetch of the active order list into the
// local snapshot. It carries no parameters; the command exists so the
// polling job drives the same handler pattern as every other operation.
type RefreshOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshOrdersCommand creates a refresh command.
func NewRefreshOrdersCommand() RefreshOrdersCommand {
	return RefreshOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RefreshOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRefreshOrdersCommandIsNotConstructed)
}
