package cmd

import (
	"context"
	"fmt"

	httpadapter "photoflow/internal/adapters/in/http"
	"photoflow/internal/adapters/out/clock"
	"photoflow/internal/adapters/out/invoicing"
	"photoflow/internal/adapters/out/postgres"
	"photoflow/internal/adapters/out/postgres/subscriptionrepo"
	"photoflow/internal/adapters/out/postgres/userrepo"
	"photoflow/internal/core/application/usecases/commands"
	"photoflow/internal/core/application/usecases/queries"
	"photoflow/internal/core/ports"
	"photoflow/internal/jobs"
	"photoflow/internal/observability"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	invoices   ports.InvoiceGateway
	logger     *zap.Logger
	registry   *prometheus.Registry
	metrics    *observability.Metrics
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock.NewSystemClock(),
		invoices:   invoicing.NewStubGateway(logger),
		logger:     logger,
		registry:   registry,
		metrics:    observability.NewMetrics(registry),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAssignPhotographerCommandHandler() commands.AssignPhotographerCommandHandler {
	return commands.NewAssignPhotographerCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdatePhotographerChecklistCommandHandler() commands.UpdatePhotographerChecklistCommandHandler {
	return commands.NewUpdatePhotographerChecklistCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAssignEditorCommandHandler() commands.AssignEditorCommandHandler {
	return commands.NewAssignEditorCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUploadEditsCommandHandler() commands.UploadEditsCommandHandler {
	return commands.NewUploadEditsCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSubmitForReviewCommandHandler() commands.SubmitForReviewCommandHandler {
	return commands.NewSubmitForReviewCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateReviewOrderCommandHandler() commands.ReviewOrderCommandHandler {
	return commands.NewReviewOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGenerateMonthlyOrdersCommandHandler() commands.GenerateMonthlyOrdersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateMonthlyOrdersCommandHandler(f, c.clock, c.invoices)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateQuoteOrderAmountQueryHandler() queries.QuoteOrderAmountQueryHandler {
	return queries.NewQuoteOrderAmountQueryHandler(subscriptionrepo.NewGormSubscriptionRepository(c.gormDB))
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer(ctx context.Context) (*httpadapter.Server, error) {
	contract, err := httpadapter.LoadContract(ctx)
	if err != nil {
		return nil, fmt.Errorf("load api contract: %w", err)
	}

	handlers := httpadapter.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		AssignPhotographer: c.CreateAssignPhotographerCommandHandler(),
		AcceptOrder:        c.CreateAcceptOrderCommandHandler(),
		UpdateChecklist:    c.CreateUpdatePhotographerChecklistCommandHandler(),
		AssignEditor:       c.CreateAssignEditorCommandHandler(),
		UploadEdits:        c.CreateUploadEditsCommandHandler(),
		SubmitForReview:    c.CreateSubmitForReviewCommandHandler(),
		ReviewOrder:        c.CreateReviewOrderCommandHandler(),
		CancelOrder:        c.CreateCancelOrderCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		GenerateMonthly:    c.CreateGenerateMonthlyOrdersCommandHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		GetOrderDetails:    c.CreateGetOrderDetailsQueryHandler(),
		QuoteOrder:         c.CreateQuoteOrderAmountQueryHandler(),
	}

	auth := httpadapter.NewAuthenticator(c.config.AuthJWTSecret, userrepo.NewGormActorDirectory(c.gormDB), c.logger)
	return httpadapter.NewServer(handlers, auth, contract, c.metrics, c.logger, httpadapter.Options{
		CronSecret: c.config.CronSecret,
		Gatherer:   c.registry,
	}), nil
}

// CreateJobManager schedules the recurring order run when a schedule is
// configured.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if c.config.RecurringOrdersSchedule == "" {
		return jobs.NewJobManager(nil)
	}
	return jobs.NewJobManager(jobs.NewMonthlyOrderJob(
		c.CreateGenerateMonthlyOrdersCommandHandler(),
		c.config.RecurringOrdersSchedule,
		c.metrics,
		c.logger,
	))
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
