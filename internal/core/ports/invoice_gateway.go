package ports

import (
	"context"

	"photoflow/internal/core/domain/model/kernel"
)

type InvoiceRequest struct {
	WorkspaceID kernel.UUID
	OrderID     kernel.UUID
	Amount      int64
	Description string
}

// InvoiceGateway issues invoices in the external accounting system.
type InvoiceGateway interface {
	CreateInvoice(ctx context.Context, req InvoiceRequest) (invoiceID string, err error)
}
