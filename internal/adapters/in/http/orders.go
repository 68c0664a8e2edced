package http

import (
	"net/http"
	"time"

	"photoflow/internal/core/application/usecases/commands"
	"photoflow/internal/core/application/usecases/queries"
	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/order"
	"photoflow/internal/observability"
	"photoflow/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"go.opentelemetry.io/otel/trace"
)

type createOrderRequest struct {
	WorkspaceID   string     `json:"workspaceId"`
	Location      string     `json:"location"`
	Requirements  string     `json:"requirements"`
	PhotoCount    *int       `json:"photoCount"`
	VideoCount    *int       `json:"videoCount"`
	ScheduledDate *time.Time `json:"scheduledDate"`
}

type assignPhotographerRequest struct {
	PhotographerID string `json:"photographerId"`
}

type scheduleRequest struct {
	ScheduledDate time.Time `json:"scheduledDate"`
}

type uploadPhotosRequest struct {
	DropboxURL string `json:"dropboxUrl"`
}

type uploadEditsRequest struct {
	ReviewURL string `json:"reviewUrl"`
}

type reviewRequest struct {
	Decision string `json:"decision"`
	Notes    string `json:"notes"`
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

type quoteRequest struct {
	PhotoCount int `json:"photoCount"`
	VideoCount int `json:"videoCount"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body createOrderRequest
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	workspaceID, err := kernel.UUIDFromString(body.WorkspaceID)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("workspaceId", err))
	}

	cmd, err := commands.NewCreateOrderCommand(actorFrom(ctx), commands.CreateOrderParams{
		OrderID:       kernel.NewUUID(),
		WorkspaceID:   workspaceID,
		Location:      body.Location,
		Requirements:  body.Requirements,
		PhotoCount:    body.PhotoCount,
		VideoCount:    body.VideoCount,
		ScheduledDate: body.ScheduledDate,
	})
	if err != nil {
		s.record("create", err)
		return s.fail(ctx, err)
	}

	result, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	s.record("create", err)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ok(ctx, http.StatusCreated, createdOrder{ID: result.OrderID.String(), Amount: result.Amount})
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	var status *string
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &status); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("status", err))
	}

	filter := ""
	if status != nil {
		filter = *status
	}
	query, err := queries.NewListOrdersQuery(actorFrom(ctx), filter)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]orderSummary, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderSummary(o))
	}
	return ok(ctx, http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderDetailsQuery(actorFrom(ctx), id)
	if err != nil {
		return s.fail(ctx, err)
	}

	details, err := s.handlers.GetOrderDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ok(ctx, http.StatusOK, toOrderDetails(details))
}

func (s *Server) DeleteOrder(ctx echo.Context) error {
	return execute(s, ctx, "delete", s.handlers.DeleteOrder, commands.NewDeleteOrderCommand)
}

func (s *Server) AssignPhotographer(ctx echo.Context) error {
	var body assignPhotographerRequest
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	return execute(s, ctx, "assign_photographer", s.handlers.AssignPhotographer,
		func(actor kernel.Actor, id kernel.UUID) (commands.AssignPhotographerCommand, error) {
			photographerID, err := kernel.UUIDFromString(body.PhotographerID)
			if err != nil {
				return commands.AssignPhotographerCommand{},
					errs.NewValueIsInvalidErrorWithCause("photographerId", err)
			}
			return commands.NewAssignPhotographerCommand(actor, id, photographerID)
		})
}

func (s *Server) AcceptOrder(ctx echo.Context) error {
	return execute(s, ctx, "accept", s.handlers.AcceptOrder, commands.NewAcceptOrderCommand)
}

func (s *Server) RecordContact(ctx echo.Context) error {
	return execute(s, ctx, "contact", s.handlers.UpdateChecklist,
		func(actor kernel.Actor, id kernel.UUID) (commands.UpdatePhotographerChecklistCommand, error) {
			return commands.NewUpdatePhotographerChecklistCommand(actor, id, commands.StepContact, time.Time{}, "")
		})
}

func (s *Server) ScheduleShoot(ctx echo.Context) error {
	var body scheduleRequest
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	return execute(s, ctx, "schedule", s.handlers.UpdateChecklist,
		func(actor kernel.Actor, id kernel.UUID) (commands.UpdatePhotographerChecklistCommand, error) {
			return commands.NewUpdatePhotographerChecklistCommand(
				actor, id, commands.StepSchedule, body.ScheduledDate, "")
		})
}

func (s *Server) UploadPhotos(ctx echo.Context) error {
	var body uploadPhotosRequest
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	return execute(s, ctx, "upload_photos", s.handlers.UpdateChecklist,
		func(actor kernel.Actor, id kernel.UUID) (commands.UpdatePhotographerChecklistCommand, error) {
			return commands.NewUpdatePhotographerChecklistCommand(
				actor, id, commands.StepUpload, time.Time{}, body.DropboxURL)
		})
}

func (s *Server) AssignEditor(ctx echo.Context) error {
	return execute(s, ctx, "assign_editor", s.handlers.AssignEditor, commands.NewAssignEditorCommand)
}

func (s *Server) UploadEdits(ctx echo.Context) error {
	var body uploadEditsRequest
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	return execute(s, ctx, "upload_edits", s.handlers.UploadEdits,
		func(actor kernel.Actor, id kernel.UUID) (commands.UploadEditsCommand, error) {
			return commands.NewUploadEditsCommand(actor, id, body.ReviewURL)
		})
}

func (s *Server) SubmitForReview(ctx echo.Context) error {
	return execute(s, ctx, "submit_review", s.handlers.SubmitForReview, commands.NewSubmitForReviewCommand)
}

func (s *Server) ReviewOrder(ctx echo.Context) error {
	var body reviewRequest
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	return execute(s, ctx, "review", s.handlers.ReviewOrder,
		func(actor kernel.Actor, id kernel.UUID) (commands.ReviewOrderCommand, error) {
			decision, err := order.ReviewDecisionFromString(body.Decision)
			if err != nil {
				return commands.ReviewOrderCommand{}, err
			}
			return commands.NewReviewOrderCommand(actor, id, decision, body.Notes)
		})
}

func (s *Server) CancelOrder(ctx echo.Context) error {
	var body cancelRequest
	if err := bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	return execute(s, ctx, "cancel", s.handlers.CancelOrder,
		func(actor kernel.Actor, id kernel.UUID) (commands.CancelOrderCommand, error) {
			return commands.NewCancelOrderCommand(actor, id, body.Reason)
		})
}

// QuoteOrder handles POST /api/v1/workspaces/{id}/quote.
func (s *Server) QuoteOrder(ctx echo.Context) error {
	workspaceID, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body quoteRequest
	if err = bindBody(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewQuoteOrderAmountQuery(actorFrom(ctx), workspaceID, body.PhotoCount, body.VideoCount)
	if err != nil {
		return s.fail(ctx, err)
	}

	quote, err := s.handlers.QuoteOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ok(ctx, http.StatusOK, toOrderQuote(quote))
}

// execute runs a command addressed to the order in the path and answers
// with its id.
func execute[C any](
	s *Server,
	ctx echo.Context,
	operation string,
	handler CommandHandler[C],
	build func(actor kernel.Actor, orderID kernel.UUID) (C, error),
) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	trace.SpanFromContext(ctx.Request().Context()).SetAttributes(observability.AttrOrderID.String(id.String()))

	cmd, err := build(actorFrom(ctx), id)
	if err != nil {
		s.record(operation, err)
		return s.fail(ctx, err)
	}

	err = handler.Handle(ctx.Request().Context(), cmd)
	s.record(operation, err)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ok(ctx, http.StatusOK, orderRef{ID: id.String()})
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	var raw uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

func bindBody(ctx echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(ctx, dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}
