package cmd

import (
	"log/slog"
	"strconv"
	"time"

	httpin "pos/internal/adapters/in/http"
	"pos/internal/adapters/out/posapi"
	"pos/internal/adapters/out/snapshot"
	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/cart"
	"pos/internal/core/domain/services"
	"pos/internal/jobs"
)

type CompositionRoot struct {
	client  *posapi.Client
	store   *snapshot.Store
	pricing services.Pricing
	cart    *cart.Cart
	logger  *slog.Logger
}

func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	timeout, err := time.ParseDuration(config.BackendTimeout)
	if err != nil {
		timeout = 0 // client falls back to its default
	}

	client, err := posapi.NewClient(config.BackendBaseURL, timeout, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	pricing := services.NewDefaultPricing()
	if config.TaxBasisPoints != "" {
		basisPoints, parseErr := strconv.Atoi(config.TaxBasisPoints)
		if parseErr != nil {
			return CompositionRoot{}, parseErr
		}
		pricing, err = services.NewPricing(basisPoints)
		if err != nil {
			return CompositionRoot{}, err
		}
	}

	terminalCart, err := cart.NewCart(pricing)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		client:  client,
		store:   snapshot.NewStore(),
		pricing: pricing,
		cart:    terminalCart,
		logger:  logger,
	}, nil
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() (commands.CheckoutCommandHandler, error) {
	return commands.NewCheckoutCommandHandler(c.client)
}

func (c *CompositionRoot) CreateSettleCashPaymentCommandHandler() (commands.SettleCashPaymentCommandHandler, error) {
	return commands.NewSettleCashPaymentCommandHandler(c.client, c.pricing)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() (commands.AdvanceOrderStatusCommandHandler, error) {
	return commands.NewAdvanceOrderStatusCommandHandler(c.client)
}

func (c *CompositionRoot) CreateRefreshOrdersCommandHandler() (commands.RefreshOrdersCommandHandler, error) {
	return commands.NewRefreshOrdersCommandHandler(c.client, c.store)
}

func (c *CompositionRoot) CreateGetKitchenBoardQueryHandler() (queries.GetKitchenBoardQueryHandler, error) {
	return queries.NewGetKitchenBoardQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() (queries.GetDashboardStatsQueryHandler, error) {
	return queries.NewGetDashboardStatsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	refreshHandler, err := c.CreateRefreshOrdersCommandHandler()
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(refreshHandler, c.logger), nil
}

func (c *CompositionRoot) CreateServer() (*httpin.Server, error) {
	checkoutHandler, err := c.CreateCheckoutCommandHandler()
	if err != nil {
		return nil, err
	}

	settleHandler, err := c.CreateSettleCashPaymentCommandHandler()
	if err != nil {
		return nil, err
	}

	advanceHandler, err := c.CreateAdvanceOrderStatusCommandHandler()
	if err != nil {
		return nil, err
	}

	refreshHandler, err := c.CreateRefreshOrdersCommandHandler()
	if err != nil {
		return nil, err
	}

	boardHandler, err := c.CreateGetKitchenBoardQueryHandler()
	if err != nil {
		return nil, err
	}

	statsHandler, err := c.CreateGetDashboardStatsQueryHandler()
	if err != nil {
		return nil, err
	}

	return httpin.NewServer(
		c.cart,
		c.client,
		checkoutHandler,
		settleHandler,
		advanceHandler,
		refreshHandler,
		boardHandler,
		statsHandler,
	)
}
