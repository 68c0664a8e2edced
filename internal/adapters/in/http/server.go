package http

import (
	"context"
	"net/http"

	"photoflow/internal/core/application/usecases/commands"
	"photoflow/internal/core/application/usecases/queries"
	"photoflow/internal/observability"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// Handler is a use case returning a result.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// CommandHandler is a use case that only reports success.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// Handlers are the use cases exposed over HTTP.
type Handlers struct {
	// Command handlers
	CreateOrder        Handler[commands.CreateOrderCommand, commands.CreateOrderResult]
	AssignPhotographer CommandHandler[commands.AssignPhotographerCommand]
	AcceptOrder        CommandHandler[commands.AcceptOrderCommand]
	UpdateChecklist    CommandHandler[commands.UpdatePhotographerChecklistCommand]
	AssignEditor       CommandHandler[commands.AssignEditorCommand]
	UploadEdits        CommandHandler[commands.UploadEditsCommand]
	SubmitForReview    CommandHandler[commands.SubmitForReviewCommand]
	ReviewOrder        CommandHandler[commands.ReviewOrderCommand]
	CancelOrder        CommandHandler[commands.CancelOrderCommand]
	DeleteOrder        CommandHandler[commands.DeleteOrderCommand]
	GenerateMonthly    Handler[commands.GenerateMonthlyOrdersCommand, commands.MonthlyRunSummary]

	// Query handlers
	ListOrders      Handler[queries.ListOrdersQuery, []queries.OrderSummary]
	GetOrderDetails Handler[queries.GetOrderDetailsQuery, queries.OrderDetails]
	QuoteOrder      Handler[queries.QuoteOrderAmountQuery, queries.OrderQuote]
}

type Options struct {
	CronSecret string
	Gatherer   prometheus.Gatherer
}

// Server maps HTTP requests onto the order use cases.
type Server struct {
	handlers Handlers
	auth     *Authenticator
	contract *Contract
	metrics  *observability.Metrics
	logger   *zap.Logger
	opts     Options
}

func NewServer(
	handlers Handlers,
	auth *Authenticator,
	contract *Contract,
	metrics *observability.Metrics,
	logger *zap.Logger,
	opts Options,
) *Server {
	return &Server{
		handlers: handlers,
		auth:     auth,
		contract: contract,
		metrics:  metrics,
		logger:   observability.Component(logger, "http"),
		opts:     opts,
	}
}

// NewEcho builds an echo instance with every route registered.
func (s *Server) NewEcho() (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	if err := s.RegisterRoutes(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Server) RegisterRoutes(e *echo.Echo) error {
	e.Use(middleware.RequestID(), middleware.Recover(), s.observe())

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	if s.opts.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{})))
	}
	if err := s.contract.RegisterSwaggerDoc(); err != nil {
		return err
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.GET("/api/cron/monthly-orders", s.RunMonthlyOrders)

	api := e.Group("/api/v1", s.auth.Middleware(), s.contract.ValidateRequests())

	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.POST("/orders/:id/assign-photographer", s.AssignPhotographer)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/contact", s.RecordContact)
	api.POST("/orders/:id/schedule", s.ScheduleShoot)
	api.POST("/orders/:id/upload", s.UploadPhotos)
	api.POST("/orders/:id/assign-editor", s.AssignEditor)
	api.POST("/orders/:id/edits", s.UploadEdits)
	api.POST("/orders/:id/submit-review", s.SubmitForReview)
	api.POST("/orders/:id/review", s.ReviewOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.POST("/workspaces/:id/quote", s.QuoteOrder)

	return nil
}

// record counts a use case call under the result class of err.
func (s *Server) record(operation string, err error) {
	if s.metrics == nil {
		return
	}
	result := "ok"
	if err != nil {
		_, result = errorClass(err)
	}
	s.metrics.RecordOrderOperation(operation, result)
}
