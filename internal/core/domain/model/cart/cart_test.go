package cart_test

import (
	"testing"

	"pos/internal/core/domain/model/cart"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// elevenPercent mirrors the configured tax policy: 11%, rounded half away
// from zero.
type elevenPercent struct{}

func (elevenPercent) Tax(subtotal int) int {
	return (subtotal*1100 + 5000) / 10000
}

func newCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(elevenPercent{})
	require.NoError(t, err)
	return c
}

func newLine(t *testing.T, productID string, quantity, unitPrice int) cart.LineItem {
	t.Helper()
	item, err := cart.NewLineItem(productID, productID, "", "", nil, quantity, unitPrice, "")
	require.NoError(t, err)
	return item
}

func TestNewCart(t *testing.T) {
	t.Run("starts empty with dine-in type", func(t *testing.T) {
		c := newCart(t)

		assert.True(t, c.IsEmpty())
		assert.Equal(t, order.TypeDineIn, c.OrderType())
		assert.Empty(t, c.TableID())
		assert.Empty(t, c.Notes())
	})

	t.Run("requires a tax calculator", func(t *testing.T) {
		_, err := cart.NewCart(nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var c cart.Cart

		require.ErrorIs(t, c.Validate(), cart.ErrCartIsNotConstructed)
	})
}

func TestNewLineItem(t *testing.T) {
	t.Run("validates its inputs", func(t *testing.T) {
		testCases := []struct {
			name      string
			productID string
			quantity  int
			unitPrice int
		}{
			{"missing product", "", 1, 1000},
			{"zero quantity", "prod-1", 0, 1000},
			{"negative quantity", "prod-1", -2, 1000},
			{"negative price", "prod-1", 1, -500},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := cart.NewLineItem(tc.productID, "Name", "", "", nil, tc.quantity, tc.unitPrice, "")
				require.Error(t, err)
			})
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var item cart.LineItem

		require.ErrorIs(t, item.Validate(), cart.ErrLineItemIsNotConstructed)
	})

	t.Run("copies the modifier list", func(t *testing.T) {
		modifiers := []string{"extra cheese"}
		item, err := cart.NewLineItem("prod-1", "Pizza", "", "", modifiers, 1, 50000, "")
		require.NoError(t, err)

		modifiers[0] = "mutated"

		assert.Equal(t, []string{"extra cheese"}, item.Modifiers())
	})
}

func TestCart_AddItem(t *testing.T) {
	t.Run("assigns a unique identity at insertion", func(t *testing.T) {
		c := newCart(t)

		first, err := c.AddItem(newLine(t, "prod-1", 1, 25000))
		require.NoError(t, err)
		second, err := c.AddItem(newLine(t, "prod-1", 1, 25000))
		require.NoError(t, err)

		require.NoError(t, first.Validate())
		require.NoError(t, second.Validate())
		assert.False(t, first.IsEqual(second))
		assert.Len(t, c.Items(), 2)
	})

	t.Run("rejects unconstructed items", func(t *testing.T) {
		c := newCart(t)

		_, err := c.AddItem(cart.LineItem{})

		require.ErrorIs(t, err, cart.ErrLineItemIsNotConstructed)
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		c := newCart(t)

		_, _ = c.AddItem(newLine(t, "prod-a", 1, 1000))
		_, _ = c.AddItem(newLine(t, "prod-b", 1, 1000))
		_, _ = c.AddItem(newLine(t, "prod-c", 1, 1000))

		items := c.Items()
		require.Len(t, items, 3)
		assert.Equal(t, "prod-a", items[0].ProductID())
		assert.Equal(t, "prod-b", items[1].ProductID())
		assert.Equal(t, "prod-c", items[2].ProductID())
	})
}

func TestCart_RemoveItem(t *testing.T) {
	t.Run("destroys the identified line", func(t *testing.T) {
		c := newCart(t)
		id, _ := c.AddItem(newLine(t, "prod-1", 2, 25000))
		keep, _ := c.AddItem(newLine(t, "prod-2", 1, 15000))

		require.NoError(t, c.RemoveItem(id))

		items := c.Items()
		require.Len(t, items, 1)
		assert.True(t, items[0].ID().IsEqual(keep))
	})

	t.Run("unknown identity is reported", func(t *testing.T) {
		c := newCart(t)

		err := c.RemoveItem(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestCart_UpdateQuantity(t *testing.T) {
	t.Run("changes the stored quantity", func(t *testing.T) {
		c := newCart(t)
		id, _ := c.AddItem(newLine(t, "prod-1", 1, 25000))

		require.NoError(t, c.UpdateQuantity(id, 3))

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity())
	})

	t.Run("zero quantity removes the line entirely", func(t *testing.T) {
		c := newCart(t)
		id, _ := c.AddItem(newLine(t, "prod-1", 2, 25000))
		_, _ = c.AddItem(newLine(t, "prod-2", 1, 15000))

		require.NoError(t, c.UpdateQuantity(id, 0))

		// The line is gone, not stored with quantity zero.
		assert.Len(t, c.Items(), 1)
		assert.Equal(t, 1, c.ItemCount())
	})

	t.Run("negative quantity removes the line", func(t *testing.T) {
		c := newCart(t)
		id, _ := c.AddItem(newLine(t, "prod-1", 2, 25000))

		require.NoError(t, c.UpdateQuantity(id, -5))

		assert.True(t, c.IsEmpty())
	})

	t.Run("unknown identity is reported", func(t *testing.T) {
		c := newCart(t)

		err := c.UpdateQuantity(kernel.NewUUID(), 2)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestCart_SetOrderType(t *testing.T) {
	t.Run("switching to takeaway clears the table binding", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.SetTableID("table-3"))

		require.NoError(t, c.SetOrderType(order.TypeTakeaway))

		assert.Equal(t, order.TypeTakeaway, c.OrderType())
		assert.Empty(t, c.TableID())
	})

	t.Run("rejects delivery and unknown types", func(t *testing.T) {
		c := newCart(t)

		require.ErrorIs(t, c.SetOrderType(order.TypeDelivery), errs.ErrValueIsInvalid)
		require.ErrorIs(t, c.SetOrderType(order.TypeUnknown), errs.ErrValueIsInvalid)
	})
}

func TestCart_SetTableID(t *testing.T) {
	t.Run("binds a table to a dine-in cart", func(t *testing.T) {
		c := newCart(t)

		require.NoError(t, c.SetTableID("table-1"))

		assert.Equal(t, "table-1", c.TableID())
	})

	t.Run("rejects a table on a takeaway cart", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.SetOrderType(order.TypeTakeaway))

		err := c.SetTableID("table-1")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Empty(t, c.TableID())
	})

	t.Run("empty ID clears the binding", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.SetTableID("table-1"))

		require.NoError(t, c.SetTableID(""))

		assert.Empty(t, c.TableID())
	})
}

func TestCart_Clear(t *testing.T) {
	t.Run("empties items, unbinds table, resets notes", func(t *testing.T) {
		c := newCart(t)
		_, _ = c.AddItem(newLine(t, "prod-1", 2, 25000))
		require.NoError(t, c.SetTableID("table-2"))
		c.SetNotes("no onions")

		c.Clear()

		assert.True(t, c.IsEmpty())
		assert.Empty(t, c.TableID())
		assert.Empty(t, c.Notes())
		assert.Zero(t, c.Subtotal())
	})

	t.Run("keeps the order type for the next order", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.SetOrderType(order.TypeTakeaway))

		c.Clear()

		assert.Equal(t, order.TypeTakeaway, c.OrderType())
	})
}

func TestCart_Totals(t *testing.T) {
	t.Run("two-line reference scenario", func(t *testing.T) {
		c := newCart(t)
		_, _ = c.AddItem(newLine(t, "prod-1", 2, 25000))
		_, _ = c.AddItem(newLine(t, "prod-2", 1, 15000))

		assert.Equal(t, 65000, c.Subtotal())
		assert.Equal(t, 7150, c.Tax())
		assert.Equal(t, 72150, c.Total())
		assert.Equal(t, 3, c.ItemCount())
	})

	t.Run("empty cart has zero totals", func(t *testing.T) {
		c := newCart(t)

		assert.Zero(t, c.Subtotal())
		assert.Zero(t, c.Tax())
		assert.Zero(t, c.Total())
		assert.Zero(t, c.ItemCount())
	})
}

func TestCart_Submission(t *testing.T) {
	t.Run("produces the order-creation request", func(t *testing.T) {
		c := newCart(t)
		_, _ = c.AddItem(newLine(t, "prod-1", 2, 25000))
		require.NoError(t, c.SetTableID("table-4"))
		c.SetNotes("rush order")

		sub, err := c.Submission()

		require.NoError(t, err)
		assert.Equal(t, order.TypeDineIn, sub.OrderType)
		assert.Equal(t, "table-4", sub.TableID)
		assert.Equal(t, "rush order", sub.Notes)
		require.Len(t, sub.Items, 1)
		assert.Equal(t, "prod-1", sub.Items[0].ProductID)
		assert.Equal(t, 2, sub.Items[0].Quantity)
	})

	t.Run("rejects an empty cart", func(t *testing.T) {
		c := newCart(t)

		_, err := c.Submission()

		require.ErrorIs(t, err, cart.ErrCartIsEmpty)
	})

	t.Run("dine-in requires a table", func(t *testing.T) {
		c := newCart(t)
		_, _ = c.AddItem(newLine(t, "prod-1", 1, 25000))

		_, err := c.Submission()

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("takeaway needs no table", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.SetOrderType(order.TypeTakeaway))
		_, _ = c.AddItem(newLine(t, "prod-1", 1, 25000))

		_, err := c.Submission()

		require.NoError(t, err)
	})

	t.Run("does not mutate the cart", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.SetOrderType(order.TypeTakeaway))
		_, _ = c.AddItem(newLine(t, "prod-1", 1, 25000))

		_, err := c.Submission()
		require.NoError(t, err)

		assert.Len(t, c.Items(), 1)
	})
}
