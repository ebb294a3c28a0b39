package order_test

import (
	"testing"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_HasDeliveryDetails(t *testing.T) {
	details := &order.DeliveryDetails{
		CustomerName:  "Budi Santoso",
		CustomerPhone: "+62812345678",
		Address:       "Jl. Sudirman No. 1",
		DriverName:    "Andi",
	}

	t.Run("delivery source with metadata", func(t *testing.T) {
		o := order.Order{Source: order.SourceGrabFood, Delivery: details}

		assert.True(t, o.HasDeliveryDetails())
	})

	t.Run("delivery source without metadata", func(t *testing.T) {
		o := order.Order{Source: order.SourceGoFood}

		assert.False(t, o.HasDeliveryDetails())
	})

	t.Run("metadata on a non-delivery source is ignored", func(t *testing.T) {
		o := order.Order{Source: order.SourceCashier, Delivery: details}

		assert.False(t, o.HasDeliveryDetails())
	})
}

func TestOrder_NextStatus(t *testing.T) {
	t.Run("recommends the machine's forward transition", func(t *testing.T) {
		o := order.Order{
			ID:     kernel.NewUUID(),
			Status: order.StatusCooking,
		}

		next, ok := o.NextStatus()

		require.True(t, ok)
		assert.Equal(t, order.StatusReady, next)
	})

	t.Run("offers nothing for terminal orders", func(t *testing.T) {
		for _, status := range []order.Status{order.StatusCompleted, order.StatusCancelled} {
			o := order.Order{Status: status}

			_, ok := o.NextStatus()

			assert.False(t, ok, "%s order should offer no transition", status)
		}
	})

	t.Run("offers nothing for unrecognized statuses", func(t *testing.T) {
		o := order.Order{Status: order.StatusFromString("on_hold")}

		_, ok := o.NextStatus()

		assert.False(t, ok)
	})
}

func TestTypeFromString(t *testing.T) {
	assert.Equal(t, order.TypeDineIn, order.TypeFromString("dine_in"))
	assert.Equal(t, order.TypeTakeaway, order.TypeFromString("takeaway"))
	assert.Equal(t, order.TypeDelivery, order.TypeFromString("delivery"))
	assert.Equal(t, order.TypeUnknown, order.TypeFromString("drive_thru"))
}

func TestType_Validate(t *testing.T) {
	require.NoError(t, order.TypeDineIn.Validate())
	require.NoError(t, order.TypeTakeaway.Validate())
	require.NoError(t, order.TypeDelivery.Validate())
	require.Error(t, order.TypeUnknown.Validate())
}

func TestPaymentStatusFromString(t *testing.T) {
	assert.Equal(t, order.PaymentUnpaid, order.PaymentStatusFromString("unpaid"))
	assert.Equal(t, order.PaymentPaid, order.PaymentStatusFromString("paid"))
	assert.Equal(t, order.PaymentUnknown, order.PaymentStatusFromString("refunded"))

	assert.Equal(t, "paid", order.PaymentPaid.String())
	assert.Equal(t, "unpaid", order.PaymentUnpaid.String())
	assert.Equal(t, "unknown", order.PaymentUnknown.String())
}
