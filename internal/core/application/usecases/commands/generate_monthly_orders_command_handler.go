package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/subscription"
	"photoflow/internal/core/domain/services"
	"photoflow/internal/core/ports"
	"photoflow/internal/pkg/errs"
)

// DefaultRecurringRequirements is the requirements note of generated orders.
const DefaultRecurringRequirements = "Monthly subscription shoot. Contact the client to agree on the date and scope."

type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// WorkspaceResult is the outcome of one workspace in a run. InvoiceError is
// set when the order was stored but the invoice request failed.
type WorkspaceResult struct {
	WorkspaceID  kernel.UUID
	Outcome      Outcome
	OrderID      *kernel.UUID
	Amount       int64
	InvoiceID    string
	InvoiceError string
	Error        string
}

type MonthlyRunSummary struct {
	RanAt   time.Time
	Created int
	Skipped int
	Failed  int
	Results []WorkspaceResult
}

// OutcomeCounts keys the counters by outcome name.
func (s MonthlyRunSummary) OutcomeCounts() map[string]int {
	return map[string]int{
		string(OutcomeCreated): s.Created,
		string(OutcomeSkipped): s.Skipped,
		string(OutcomeFailed):  s.Failed,
	}
}

// InvoiceFailures counts created orders whose invoice request failed.
func (s MonthlyRunSummary) InvoiceFailures() int {
	n := 0
	for _, r := range s.Results {
		if r.InvoiceError != "" {
			n++
		}
	}
	return n
}

// GenerateMonthlyOrdersCommandHandler creates the next recurring order of
// every active subscription that is due. A workspace is due when it has no
// order yet or its latest order is at least one calendar month old.
//
// Workspaces are processed one after another, each in its own transaction.
// A failing workspace is recorded in the summary and the run goes on.
type GenerateMonthlyOrdersCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
	invoices   ports.InvoiceGateway
	pricer     services.OrderPricer
}

func NewGenerateMonthlyOrdersCommandHandler(
	uowFactory UoWFactory,
	clock ports.Clock,
	invoices ports.InvoiceGateway,
) GenerateMonthlyOrdersCommandHandler {
	return GenerateMonthlyOrdersCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		invoices:   invoices,
		pricer:     services.NewOrderPricer(),
	}
}

// Handle fails only when the active subscriptions cannot be listed.
func (h GenerateMonthlyOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd GenerateMonthlyOrdersCommand,
) (MonthlyRunSummary, error) {
	if err := cmd.Validate(); err != nil {
		return MonthlyRunSummary{}, err
	}

	now := h.clock.Now()
	subs, err := h.uowFactory.Create().SubscriptionRepository().ListActive(ctx)
	if err != nil {
		return MonthlyRunSummary{}, fmt.Errorf("list active subscriptions: %w", err)
	}

	summary := MonthlyRunSummary{RanAt: now, Results: make([]WorkspaceResult, 0, len(subs))}
	for _, sub := range subs {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}

		result := h.processWorkspace(ctx, sub, now)
		switch result.Outcome {
		case OutcomeCreated:
			summary.Created++
		case OutcomeSkipped:
			summary.Skipped++
		default:
			summary.Failed++
		}
		summary.Results = append(summary.Results, result)
	}

	return summary, nil
}

func (h GenerateMonthlyOrdersCommandHandler) processWorkspace(
	ctx context.Context,
	sub *subscription.Subscription,
	now time.Time,
) WorkspaceResult {
	result := WorkspaceResult{WorkspaceID: sub.WorkspaceID()}

	created, due, err := h.createIfDue(ctx, sub.WorkspaceID(), now)
	switch {
	case err != nil:
		result.Outcome = OutcomeFailed
		result.Error = err.Error()
		return result
	case !due:
		result.Outcome = OutcomeSkipped
		return result
	}

	result.Outcome = OutcomeCreated
	result.OrderID = &created.OrderID
	result.Amount = created.Amount

	invoiceID, err := h.invoices.CreateInvoice(ctx, ports.InvoiceRequest{
		WorkspaceID: sub.WorkspaceID(),
		OrderID:     created.OrderID,
		Amount:      created.Amount,
		Description: fmt.Sprintf("%s plan, %s", sub.Plan().Name(), now.Format("January 2006")),
	})
	if err != nil {
		result.InvoiceError = err.Error()
		return result
	}
	result.InvoiceID = invoiceID

	return result
}

func (h GenerateMonthlyOrdersCommandHandler) createIfDue(
	ctx context.Context,
	workspaceID kernel.UUID,
	now time.Time,
) (CreateOrderResult, bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Overlapping runs queue on the subscription row, so the latest order
	// date below includes an order committed by a concurrent run.
	_, err := uow.SubscriptionRepository().LockActiveByWorkspace(ctx, workspaceID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return CreateOrderResult{}, false, nil
	}
	if err != nil {
		return CreateOrderResult{}, false, err
	}

	latest, err := uow.OrderRepository().LatestOrderDate(ctx, workspaceID)
	if err != nil {
		return CreateOrderResult{}, false, err
	}
	if !IsRecurringOrderDue(latest, now) {
		return CreateOrderResult{}, false, nil
	}

	ws, err := uow.WorkspaceRepository().Get(ctx, workspaceID)
	if err != nil {
		return CreateOrderResult{}, false, err
	}

	cmd, err := NewCreateOrderCommand(kernel.SystemActor(), CreateOrderParams{
		OrderID:      kernel.NewUUID(),
		WorkspaceID:  workspaceID,
		Location:     ws.Address().Address(),
		Requirements: DefaultRecurringRequirements,
	})
	if err != nil {
		return CreateOrderResult{}, false, err
	}

	created, err := createOrder(ctx, uow, h.pricer, cmd, now)
	if err != nil {
		return CreateOrderResult{}, false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, false, err
	}

	return created, true, nil
}

// IsRecurringOrderDue reports whether a workspace whose newest order is dated
// latest needs a new recurring order at now.
func IsRecurringOrderDue(latest *time.Time, now time.Time) bool {
	return latest == nil || !now.Before(latest.AddDate(0, 1, 0))
}
