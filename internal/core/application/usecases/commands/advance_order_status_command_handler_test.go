package commands_test

import (
	"errors"
	"fmt"
	"testing"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvanceOrderStatusCommandHandler_Handle_ForwardPath(t *testing.T) {
	testCases := []struct {
		current order.Status
		next    order.Status
	}{
		{order.StatusPending, order.StatusConfirmed},
		{order.StatusConfirmed, order.StatusCooking},
		{order.StatusCooking, order.StatusReady},
		{order.StatusReady, order.StatusCompleted},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s advances to %s", tc.current, tc.next), func(t *testing.T) {
			ctx := t.Context()
			orderID := kernel.NewUUID()
			cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, tc.current)
			require.NoError(t, err)

			gateway := new(MockOrderGateway)
			gateway.On("UpdateOrderStatus", ctx, orderID, tc.next).Return(nil).Once()

			h, err := commands.NewAdvanceOrderStatusCommandHandler(gateway)
			require.NoError(t, err)

			committed, err := h.Handle(ctx, cmd)

			require.NoError(t, err)
			require.Equal(t, tc.next, committed)
			gateway.AssertExpectations(t)
		})
	}
}

func TestAdvanceOrderStatusCommandHandler_Handle_TerminalStatus(t *testing.T) {
	for _, current := range []order.Status{order.StatusCompleted, order.StatusCancelled} {
		t.Run(current.String(), func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewAdvanceOrderStatusCommand(kernel.NewUUID(), current)
			require.NoError(t, err)

			gateway := new(MockOrderGateway)
			h, err := commands.NewAdvanceOrderStatusCommandHandler(gateway)
			require.NoError(t, err)

			_, err = h.Handle(ctx, cmd)

			require.ErrorIs(t, err, commands.ErrNoNextStatus)
			gateway.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAdvanceOrderStatusCommandHandler_Handle_GatewayError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, order.StatusCooking)
	require.NoError(t, err)

	gateway := new(MockOrderGateway)
	gateway.On("UpdateOrderStatus", ctx, orderID, order.StatusReady).
		Return(errors.New("conflict: already advanced")).Once()

	h, err := commands.NewAdvanceOrderStatusCommandHandler(gateway)
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	gateway.AssertExpectations(t)
}

func TestNewAdvanceOrderStatusCommand_Validation(t *testing.T) {
	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := commands.NewAdvanceOrderStatusCommand(kernel.NewUUID(), order.StatusUnknown)
		require.Error(t, err)
	})

	t.Run("rejects zero order ID", func(t *testing.T) {
		_, err := commands.NewAdvanceOrderStatusCommand(kernel.UUID{}, order.StatusPending)
		require.Error(t, err)
	})
}
