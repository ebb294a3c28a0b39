package order_test

import (
	"testing"

	"pos/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestSource_Describe(t *testing.T) {
	t.Run("known sources carry their branding", func(t *testing.T) {
		testCases := []struct {
			source   order.Source
			label    string
			color    string
			delivery bool
		}{
			{order.SourceCashier, "Cashier", "#6B7280", false},
			{order.SourceTableQR, "Table QR", "#8B5CF6", false},
			{order.SourceGrabFood, "GrabFood", "#00B14F", true},
			{order.SourceGoFood, "GoFood", "#D71920", true},
			{order.SourceShopeeFood, "Shopee", "#EE4D2D", true},
		}

		for _, tc := range testCases {
			t.Run(string(tc.source), func(t *testing.T) {
				desc := tc.source.Describe()

				assert.Equal(t, tc.label, desc.Label)
				assert.Equal(t, tc.color, desc.Color)
				assert.Equal(t, tc.delivery, desc.Delivery)
				assert.NotEmpty(t, desc.Glyph)
			})
		}
	})

	t.Run("unknown sources fail closed with a default descriptor", func(t *testing.T) {
		desc := order.Source("ubereats").Describe()

		assert.Equal(t, "ubereats", desc.Label)
		assert.Equal(t, "#6B7280", desc.Color)
		assert.False(t, desc.Delivery)
		assert.Empty(t, desc.Glyph)
	})

	t.Run("is total over the empty tag", func(t *testing.T) {
		desc := order.Source("").Describe()

		assert.Equal(t, "", desc.Label)
		assert.False(t, desc.Delivery)
	})
}

func TestSource_IsDelivery(t *testing.T) {
	t.Run("true exactly for the delivery aggregators", func(t *testing.T) {
		assert.True(t, order.SourceGrabFood.IsDelivery())
		assert.True(t, order.SourceGoFood.IsDelivery())
		assert.True(t, order.SourceShopeeFood.IsDelivery())
	})

	t.Run("false for in-house and unknown tags", func(t *testing.T) {
		assert.False(t, order.SourceCashier.IsDelivery())
		assert.False(t, order.SourceTableQR.IsDelivery())
		assert.False(t, order.Source("ubereats").IsDelivery())
		assert.False(t, order.Source("").IsDelivery())
	})
}

func TestSource_IsKnown(t *testing.T) {
	for _, source := range order.KnownSources() {
		assert.True(t, source.IsKnown(), "%s should be known", source)
	}
	assert.False(t, order.Source("ubereats").IsKnown())
}

func TestSource_InitialStatus(t *testing.T) {
	t.Run("delivery orders arrive pending acceptance", func(t *testing.T) {
		assert.Equal(t, order.StatusPending, order.SourceGrabFood.InitialStatus())
		assert.Equal(t, order.StatusPending, order.SourceGoFood.InitialStatus())
		assert.Equal(t, order.StatusPending, order.SourceShopeeFood.InitialStatus())
	})

	t.Run("in-house orders are confirmed at submission", func(t *testing.T) {
		assert.Equal(t, order.StatusConfirmed, order.SourceCashier.InitialStatus())
		assert.Equal(t, order.StatusConfirmed, order.SourceTableQR.InitialStatus())
	})
}
