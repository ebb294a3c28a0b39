package http

import (
	"pos/internal/core/domain/model/cart"
)

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type addCartItemRequest struct {
	ProductID   string   `json:"product_id"`
	ProductName string   `json:"product_name"`
	VariantID   string   `json:"variant_id"`
	VariantName string   `json:"variant_name"`
	Modifiers   []string `json:"modifiers"`
	Quantity    int      `json:"quantity"`
	UnitPrice   int      `json:"unit_price"`
	Notes       string   `json:"notes"`
}

type addCartItemResponse struct {
	ItemID string   `json:"item_id"`
	Cart   cartView `json:"cart"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type setOrderTypeRequest struct {
	OrderType string `json:"order_type"`
}

type setTableRequest struct {
	TableID string `json:"table_id"`
}

type setNotesRequest struct {
	Notes string `json:"notes"`
}

type checkoutResponse struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
}

type cashPaymentRequest struct {
	OrderID        string `json:"order_id"`
	Total          int    `json:"total"`
	AmountTendered int    `json:"amount_tendered"`
}

type receiptResponse struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number,omitempty"`
	Total       int    `json:"total"`
	AmountPaid  int    `json:"amount_paid"`
	Change      int    `json:"change"`
}

type advanceStatusRequest struct {
	Current string `json:"current"`
}

type advanceStatusResponse struct {
	Status string `json:"status"`
}

type cartView struct {
	Items     []cartItemView `json:"items"`
	OrderType string         `json:"order_type"`
	TableID   string         `json:"table_id,omitempty"`
	Notes     string         `json:"notes,omitempty"`
	ItemCount int            `json:"item_count"`
	Subtotal  int            `json:"subtotal"`
	Tax       int            `json:"tax"`
	Total     int            `json:"total"`
}

type cartItemView struct {
	ID          string   `json:"id"`
	ProductID   string   `json:"product_id"`
	ProductName string   `json:"product_name"`
	VariantID   string   `json:"variant_id,omitempty"`
	VariantName string   `json:"variant_name,omitempty"`
	Modifiers   []string `json:"modifiers,omitempty"`
	Quantity    int      `json:"quantity"`
	UnitPrice   int      `json:"unit_price"`
	Subtotal    int      `json:"subtotal"`
	Notes       string   `json:"notes,omitempty"`
}

// cartViewFrom renders the cart with its running totals. Caller holds the
// cart mutex.
func cartViewFrom(c *cart.Cart) cartView {
	items := c.Items()
	views := make([]cartItemView, len(items))
	for i, item := range items {
		views[i] = cartItemView{
			ID:          item.ID().String(),
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			VariantID:   item.VariantID(),
			VariantName: item.VariantName(),
			Modifiers:   item.Modifiers(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Subtotal:    item.UnitPrice() * item.Quantity(),
			Notes:       item.Notes(),
		}
	}

	return cartView{
		Items:     views,
		OrderType: c.OrderType().String(),
		TableID:   c.TableID(),
		Notes:     c.Notes(),
		ItemCount: c.ItemCount(),
		Subtotal:  c.Subtotal(),
		Tax:       c.Tax(),
		Total:     c.Total(),
	}
}
