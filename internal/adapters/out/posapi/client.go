package posapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"pos/internal/core/domain/model/cart"
	"pos/internal/core/domain/model/catalog"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// Client talks to the store backend's JSON API. It implements the order
// gateway and the catalog provider.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a backend API client. A non-positive timeout falls back
// to the default.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With("component", "posapi_client"),
	}, nil
}

// SubmitOrder creates an order from a cart submission.
func (c *Client) SubmitOrder(ctx context.Context, submission cart.Submission) (ports.OrderRef, error) {
	var dto orderDTO
	err := c.do(ctx, http.MethodPost, "/orders", createOrderRequestFromSubmission(submission), &dto)
	if err != nil {
		return ports.OrderRef{}, err
	}

	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return ports.OrderRef{}, err
	}

	return ports.OrderRef{ID: id, Number: dto.OrderNumber}, nil
}

// SubmitCashPayment settles an order with cash.
func (c *Client) SubmitCashPayment(
	ctx context.Context,
	orderID kernel.UUID,
	amountPaid int,
) (ports.Receipt, error) {
	if err := orderID.Validate(); err != nil {
		return ports.Receipt{}, err
	}

	req := cashPaymentRequest{OrderID: orderID.String(), AmountPaid: amountPaid}

	var resp cashPaymentResponse
	if err := c.do(ctx, http.MethodPost, "/payments/cash", req, &resp); err != nil {
		return ports.Receipt{}, err
	}

	return ports.Receipt{
		OrderID:     orderID,
		OrderNumber: resp.OrderNumber,
		Total:       resp.Total,
		AmountPaid:  resp.AmountPaid,
		Change:      resp.Change,
	}, nil
}

// UpdateOrderStatus commits a status transition on the backend.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID kernel.UUID, status order.Status) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}

	path := fmt.Sprintf("/orders/%s/status", orderID.String())
	return c.do(ctx, http.MethodPatch, path, updateStatusRequest{Status: status.String()}, nil)
}

// ActiveOrders fetches the orders currently on the kitchen board. An order
// that cannot be mapped is dropped with a warning rather than failing the
// whole fetch.
func (c *Client) ActiveOrders(ctx context.Context) ([]order.Order, error) {
	var dtos []orderDTO
	if err := c.do(ctx, http.MethodGet, "/orders/active", nil, &dtos); err != nil {
		return nil, err
	}

	orders := make([]order.Order, 0, len(dtos))
	for _, dto := range dtos {
		mapped, err := dto.toDomain(c.logger)
		if err != nil {
			c.logger.Warn("skipping unmappable order",
				"order_id", dto.ID,
				"error", err,
			)
			continue
		}
		orders = append(orders, mapped)
	}

	return orders, nil
}

// Catalog fetches the menu and floor reference data.
func (c *Client) Catalog(ctx context.Context) (catalog.Catalog, error) {
	var categories []categoryDTO
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return catalog.Catalog{}, err
	}

	var products []productDTO
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return catalog.Catalog{}, err
	}

	var tables []tableDTO
	if err := c.do(ctx, http.MethodGet, "/tables", nil, &tables); err != nil {
		return catalog.Catalog{}, err
	}

	result := catalog.Catalog{
		Categories: make([]catalog.Category, len(categories)),
		Products:   make([]catalog.Product, len(products)),
		Tables:     make([]catalog.Table, len(tables)),
	}
	for i, dto := range categories {
		result.Categories[i] = dto.toDomain()
	}
	for i, dto := range products {
		result.Products[i] = dto.toDomain()
	}
	for i, dto := range tables {
		result.Tables[i] = dto.toDomain()
	}

	return result, nil
}

// do performs one request against the backend, unwraps the response
// envelope, and decodes the data payload into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s %s: decoding response: %w", method, path, err)
	}

	if !env.Success {
		if resp.StatusCode == http.StatusNotFound {
			return errs.NewObjectNotFoundErrorWithCause("path", path, apiErr(env.Error))
		}
		return fmt.Errorf("%s %s: backend rejected request: %w", method, path, apiErr(env.Error))
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s %s: decoding data payload: %w", method, path, err)
	}

	return nil
}

func apiErr(e *apiError) error {
	if e == nil {
		return errs.NewValueIsInvalidError("response")
	}
	return fmt.Errorf("%s: %s", e.Code, e.Message)
}
