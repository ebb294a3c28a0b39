// Package http exposes the terminal's operations over an echo server: cart
// editing, checkout, cash settlement, status advancement, and the kitchen
// board and dashboard read models.
//
// The terminal holds exactly one cart. Cart mutations are serialized under a
// mutex so concurrent requests from the UI cannot interleave edits.
package http

import (
	"errors"
	"net/http"
	"sync"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/cart"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/services"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	mu   sync.Mutex
	cart *cart.Cart

	catalog ports.CatalogProvider

	// Command handlers
	checkoutHandler      commands.CheckoutCommandHandler
	settleCashHandler    commands.SettleCashPaymentCommandHandler
	advanceStatusHandler commands.AdvanceOrderStatusCommandHandler
	refreshHandler       commands.RefreshOrdersCommandHandler

	// Query handlers
	kitchenBoardHandler   queries.GetKitchenBoardQueryHandler
	dashboardStatsHandler queries.GetDashboardStatsQueryHandler
}

// NewServer creates an HTTP server around the terminal's single cart and the
// application handlers.
func NewServer(
	terminalCart *cart.Cart,
	catalog ports.CatalogProvider,
	checkoutHandler commands.CheckoutCommandHandler,
	settleCashHandler commands.SettleCashPaymentCommandHandler,
	advanceStatusHandler commands.AdvanceOrderStatusCommandHandler,
	refreshHandler commands.RefreshOrdersCommandHandler,
	kitchenBoardHandler queries.GetKitchenBoardQueryHandler,
	dashboardStatsHandler queries.GetDashboardStatsQueryHandler,
) (*Server, error) {
	if terminalCart == nil {
		return nil, errs.NewValueIsRequiredError("terminalCart")
	}
	if catalog == nil {
		return nil, errs.NewValueIsRequiredError("catalog")
	}

	return &Server{
		cart:                  terminalCart,
		catalog:               catalog,
		checkoutHandler:       checkoutHandler,
		settleCashHandler:     settleCashHandler,
		advanceStatusHandler:  advanceStatusHandler,
		refreshHandler:        refreshHandler,
		kitchenBoardHandler:   kitchenBoardHandler,
		dashboardStatsHandler: dashboardStatsHandler,
	}, nil
}

// RegisterRoutes attaches all the terminal's routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.GET("/catalog", s.GetCatalog)

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddCartItem)
	api.PATCH("/cart/items/:id", s.UpdateCartItemQuantity)
	api.DELETE("/cart/items/:id", s.RemoveCartItem)
	api.DELETE("/cart", s.ClearCart)
	api.PUT("/cart/order-type", s.SetCartOrderType)
	api.PUT("/cart/table", s.SetCartTable)
	api.PUT("/cart/notes", s.SetCartNotes)

	api.POST("/checkout", s.Checkout)
	api.POST("/payments/cash", s.SettleCashPayment)
	api.POST("/orders/:id/advance", s.AdvanceOrderStatus)
	api.POST("/orders/refresh", s.RefreshOrders)

	api.GET("/board", s.GetKitchenBoard)
	api.GET("/stats", s.GetDashboardStats)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetCatalog handles GET /api/v1/catalog - fetches the menu and floor data.
func (s *Server) GetCatalog(ctx echo.Context) error {
	result, err := s.catalog.Catalog(ctx.Request().Context())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetCart handles GET /api/v1/cart - returns the current cart view.
func (s *Server) GetCart(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ctx.JSON(http.StatusOK, cartViewFrom(s.cart))
}

// AddCartItem handles POST /api/v1/cart/items - adds a line to the cart.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var req addCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	item, err := cart.NewLineItem(
		req.ProductID,
		req.ProductName,
		req.VariantID,
		req.VariantName,
		req.Modifiers,
		req.Quantity,
		req.UnitPrice,
		req.Notes,
	)
	if err != nil {
		return badRequest(ctx, "Invalid cart item: "+err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.cart.AddItem(item)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, addCartItemResponse{
		ItemID: id.String(),
		Cart:   cartViewFrom(s.cart),
	})
}

// UpdateCartItemQuantity handles PATCH /api/v1/cart/items/:id - sets a
// line's quantity; zero or negative removes the line.
func (s *Server) UpdateCartItemQuantity(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid item ID")
	}

	var req updateQuantityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cart.UpdateQuantity(id, req.Quantity); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartViewFrom(s.cart))
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:id.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid item ID")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cart.RemoveItem(id); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartViewFrom(s.cart))
}

// ClearCart handles DELETE /api/v1/cart - empties the cart, keeping the
// order type.
func (s *Server) ClearCart(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()

	return ctx.JSON(http.StatusOK, cartViewFrom(s.cart))
}

// SetCartOrderType handles PUT /api/v1/cart/order-type.
func (s *Server) SetCartOrderType(ctx echo.Context) error {
	var req setOrderTypeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderType := order.TypeFromString(req.OrderType)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cart.SetOrderType(orderType); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartViewFrom(s.cart))
}

// SetCartTable handles PUT /api/v1/cart/table - binds the cart to a table;
// an empty table ID unbinds.
func (s *Server) SetCartTable(ctx echo.Context) error {
	var req setTableRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cart.SetTableID(req.TableID); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartViewFrom(s.cart))
}

// SetCartNotes handles PUT /api/v1/cart/notes.
func (s *Server) SetCartNotes(ctx echo.Context) error {
	var req setNotesRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.SetNotes(req.Notes)

	return ctx.JSON(http.StatusOK, cartViewFrom(s.cart))
}

// Checkout handles POST /api/v1/checkout - submits the cart as an order.
// The cart is cleared only after the backend accepts the order.
func (s *Server) Checkout(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd, err := commands.NewCheckoutCommand(s.cart)
	if err != nil {
		return badRequest(ctx, "Invalid checkout: "+err.Error())
	}

	ref, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, checkoutResponse{
		OrderID:     ref.ID.String(),
		OrderNumber: ref.Number,
	})
}

// SettleCashPayment handles POST /api/v1/payments/cash.
func (s *Server) SettleCashPayment(ctx echo.Context) error {
	var req cashPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewSettleCashPaymentCommand(orderID, req.Total, req.AmountTendered)
	if err != nil {
		return badRequest(ctx, "Invalid payment: "+err.Error())
	}

	receipt, err := s.settleCashHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, receiptResponse{
		OrderID:     receipt.OrderID.String(),
		OrderNumber: receipt.OrderNumber,
		Total:       receipt.Total,
		AmountPaid:  receipt.AmountPaid,
		Change:      receipt.Change,
	})
}

// AdvanceOrderStatus handles POST /api/v1/orders/:id/advance - moves an
// order one step along the lifecycle from the status the terminal observed.
func (s *Server) AdvanceOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req advanceStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, order.StatusFromString(req.Current))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	committed, err := s.advanceStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, advanceStatusResponse{Status: committed.String()})
}

// RefreshOrders handles POST /api/v1/orders/refresh - forces a fetch of the
// active orders outside the polling schedule.
func (s *Server) RefreshOrders(ctx echo.Context) error {
	cmd := commands.NewRefreshOrdersCommand()

	if err := s.refreshHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetKitchenBoard handles GET /api/v1/board - returns the board columns,
// optionally filtered with ?source=.
func (s *Server) GetKitchenBoard(ctx echo.Context) error {
	query := queries.NewGetKitchenBoardQuery(order.Source(ctx.QueryParam("source")))

	board, err := s.kitchenBoardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, board)
}

// GetDashboardStats handles GET /api/v1/stats.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	query := queries.NewGetDashboardStatsQuery()

	stats, err := s.dashboardStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}

// errorResponse maps domain and application errors onto HTTP statuses.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorBody{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, cart.ErrCartIsEmpty),
		errors.Is(err, cart.ErrTableIsRequired),
		errors.Is(err, cart.ErrTableNotAllowed),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrInsufficientPayment):
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrNoNextStatus):
		return ctx.JSON(http.StatusConflict, errorBody{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorBody{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorBody{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
