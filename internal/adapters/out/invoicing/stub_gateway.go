// Package invoicing talks to the accounting system. Only a stub exists until
// the accounting API is chosen.
package invoicing

import (
	"context"
	"fmt"

	"photoflow/internal/core/ports"

	"go.uber.org/zap"
)

// StubGateway accepts every request, logs it and returns a placeholder id
// derived from the order.
type StubGateway struct {
	logger *zap.Logger
}

func NewStubGateway(logger *zap.Logger) *StubGateway {
	return &StubGateway{logger: logger.With(zap.String("component", "invoicing"))}
}

func (g *StubGateway) CreateInvoice(ctx context.Context, req ports.InvoiceRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := req.OrderID.Validate(); err != nil {
		return "", fmt.Errorf("invoice request: %w", err)
	}

	invoiceID := "stub-" + req.OrderID.String()
	g.logger.Info("invoice requested",
		zap.String("invoice_id", invoiceID),
		zap.String("workspace_id", req.WorkspaceID.String()),
		zap.String("order_id", req.OrderID.String()),
		zap.Int64("amount", req.Amount),
		zap.String("description", req.Description),
	)

	return invoiceID, nil
}
