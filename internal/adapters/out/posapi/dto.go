// Package posapi implements the order gateway and catalog provider against
// the store backend's JSON API. Every response arrives in a common envelope;
// the data payloads are mapped to domain read models here, with unknown
// status tags mapping to the unknown status so they never reach the board.
package posapi

import (
	"encoding/json"
	"log/slog"
	"time"

	"pos/internal/core/domain/model/cart"
	"pos/internal/core/domain/model/catalog"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
)

// envelope is the backend's standard response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *apiError       `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type createOrderRequest struct {
	OrderType string            `json:"order_type"`
	TableID   string            `json:"table_id,omitempty"`
	Items     []createOrderItem `json:"items"`
	Notes     string            `json:"notes,omitempty"`
}

type createOrderItem struct {
	ProductID string   `json:"product_id"`
	VariantID string   `json:"variant_id,omitempty"`
	Modifiers []string `json:"modifiers,omitempty"`
	Quantity  int      `json:"quantity"`
	Notes     string   `json:"notes,omitempty"`
}

func createOrderRequestFromSubmission(submission cart.Submission) createOrderRequest {
	items := make([]createOrderItem, len(submission.Items))
	for i, item := range submission.Items {
		items[i] = createOrderItem{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Modifiers: item.Modifiers,
			Quantity:  item.Quantity,
			Notes:     item.Notes,
		}
	}

	return createOrderRequest{
		OrderType: submission.OrderType.String(),
		TableID:   submission.TableID,
		Items:     items,
		Notes:     submission.Notes,
	}
}

type cashPaymentRequest struct {
	OrderID    string `json:"order_id"`
	AmountPaid int    `json:"amount_paid"`
}

type cashPaymentResponse struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number,omitempty"`
	Total       int    `json:"total"`
	AmountPaid  int    `json:"amount_paid"`
	Change      int    `json:"change"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type orderDTO struct {
	ID              string         `json:"id"`
	OrderNumber     string         `json:"order_number"`
	ExternalOrderID string         `json:"external_order_id,omitempty"`
	TableID         string         `json:"table_id,omitempty"`
	TableNumber     int            `json:"table_number,omitempty"`
	OrderType       string         `json:"order_type"`
	OrderSource     string         `json:"order_source"`
	Status          string         `json:"status"`
	PaymentStatus   string         `json:"payment_status"`
	Items           []orderItemDTO `json:"items"`
	Subtotal        int            `json:"subtotal"`
	Tax             int            `json:"tax"`
	Total           int            `json:"total"`
	Notes           string         `json:"notes,omitempty"`
	CustomerName    string         `json:"customer_name,omitempty"`
	CustomerPhone   string         `json:"customer_phone,omitempty"`
	DeliveryAddress string         `json:"delivery_address,omitempty"`
	DriverName      string         `json:"driver_name,omitempty"`
	CashierID       string         `json:"cashier_id,omitempty"`
	CashierName     string         `json:"cashier_name,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type orderItemDTO struct {
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

// toDomain maps a wire order to the domain read model. Unknown status tags
// map to the unknown status and are logged; unknown source tags are kept
// raw, the domain renders them with a generic descriptor.
func (dto orderDTO) toDomain(logger *slog.Logger) (order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return order.Order{}, err
	}

	status := order.StatusFromString(dto.Status)
	if status == order.StatusUnknown {
		logger.Warn("order carries unknown status tag",
			"order_id", dto.ID,
			"status", dto.Status,
		)
	}

	items := make([]order.Line, len(dto.Items))
	for i, item := range dto.Items {
		items[i] = order.Line{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			VariantID:   item.VariantID,
			VariantName: item.VariantName,
			Modifiers:   item.Modifiers,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
			Notes:       item.Notes,
		}
	}

	result := order.Order{
		ID:            id,
		Number:        dto.OrderNumber,
		ExternalID:    dto.ExternalOrderID,
		Type:          order.TypeFromString(dto.OrderType),
		Source:        order.Source(dto.OrderSource),
		Status:        status,
		PaymentStatus: order.PaymentStatusFromString(dto.PaymentStatus),
		TableID:       dto.TableID,
		TableNumber:   dto.TableNumber,
		Items:         items,
		Subtotal:      dto.Subtotal,
		Tax:           dto.Tax,
		Total:         dto.Total,
		Notes:         dto.Notes,
		CashierID:     dto.CashierID,
		CashierName:   dto.CashierName,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	}

	if result.Source.IsDelivery() {
		result.Delivery = &order.DeliveryDetails{
			CustomerName:  dto.CustomerName,
			CustomerPhone: dto.CustomerPhone,
			Address:       dto.DeliveryAddress,
			DriverName:    dto.DriverName,
		}
	}

	return result, nil
}

type categoryDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

type productDTO struct {
	ID          string        `json:"id"`
	CategoryID  string        `json:"category_id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	BasePrice   int           `json:"base_price"`
	ImageURL    string        `json:"image_url"`
	IsAvailable bool          `json:"is_available"`
	Variants    []variantDTO  `json:"variants"`
	Modifiers   []modifierDTO `json:"modifiers"`
}

type variantDTO struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	PriceAdjustment int    `json:"price_adjustment"`
}

type modifierDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Price  int    `json:"price"`
	MaxQty int    `json:"max_qty"`
}

type tableDTO struct {
	ID       string `json:"id"`
	Number   int    `json:"number"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
	QRCode   string `json:"qr_code"`
}

func (dto categoryDTO) toDomain() catalog.Category {
	return catalog.Category{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
		SortOrder:   dto.SortOrder,
	}
}

func (dto productDTO) toDomain() catalog.Product {
	variants := make([]catalog.Variant, len(dto.Variants))
	for i, v := range dto.Variants {
		variants[i] = catalog.Variant{
			ID:              v.ID,
			Name:            v.Name,
			PriceAdjustment: v.PriceAdjustment,
		}
	}

	modifiers := make([]catalog.Modifier, len(dto.Modifiers))
	for i, m := range dto.Modifiers {
		modifiers[i] = catalog.Modifier{
			ID:     m.ID,
			Name:   m.Name,
			Price:  m.Price,
			MaxQty: m.MaxQty,
		}
	}

	return catalog.Product{
		ID:          dto.ID,
		CategoryID:  dto.CategoryID,
		Name:        dto.Name,
		Description: dto.Description,
		BasePrice:   dto.BasePrice,
		ImageURL:    dto.ImageURL,
		IsAvailable: dto.IsAvailable,
		Variants:    variants,
		Modifiers:   modifiers,
	}
}

func (dto tableDTO) toDomain() catalog.Table {
	return catalog.Table{
		ID:       dto.ID,
		Number:   dto.Number,
		Capacity: dto.Capacity,
		Status:   dto.Status,
		QRCode:   dto.QRCode,
	}
}
