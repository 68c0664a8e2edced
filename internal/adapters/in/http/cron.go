package http

import (
	"net/http"

	"photoflow/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type cronError struct {
	Error string `json:"error"`
}

// RunMonthlyOrders handles GET /api/cron/monthly-orders. It is called by an
// external scheduler holding the cron secret.
func (s *Server) RunMonthlyOrders(ctx echo.Context) error {
	if !secretMatches(ctx.Request(), s.opts.CronSecret) {
		return ctx.JSON(http.StatusUnauthorized, cronError{Error: "unauthorized"})
	}

	summary, err := s.handlers.GenerateMonthly.Handle(ctx.Request().Context(), commands.NewGenerateMonthlyOrdersCommand())
	if s.metrics != nil {
		s.metrics.RecordRecurringRun("http", err, summary.OutcomeCounts(), summary.InvoiceFailures())
	}
	if err != nil {
		s.logger.Error("recurring order run failed", zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, cronError{Error: err.Error()})
	}

	s.logger.Info("recurring order run finished",
		zap.Int("created", summary.Created),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)
	return ctx.JSON(http.StatusOK, toMonthlyRun(summary))
}
