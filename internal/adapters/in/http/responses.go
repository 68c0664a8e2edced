package http

import (
	"time"

	"photoflow/internal/core/application/usecases/commands"
	"photoflow/internal/core/application/usecases/queries"
	"photoflow/internal/core/domain/model/kernel"
)

type orderRef struct {
	ID string `json:"id"`
}

type createdOrder struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
}

type orderSummary struct {
	ID             string     `json:"id"`
	WorkspaceID    string     `json:"workspaceId"`
	WorkspaceName  string     `json:"workspaceName"`
	PhotographerID *string    `json:"photographerId"`
	EditorID       *string    `json:"editorId"`
	Status         string     `json:"status"`
	OrderDate      time.Time  `json:"orderDate"`
	ScheduledDate  *time.Time `json:"scheduledDate"`
	Location       string     `json:"location"`
	Amount         int64      `json:"amount"`
}

type photographerChecklist struct {
	ContactedAt *time.Time `json:"contactedAt"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	DropboxURL  string     `json:"dropboxUrl"`
	UploadedAt  *time.Time `json:"uploadedAt"`
	Notes       string     `json:"notes"`
}

type editorChecklist struct {
	EditingStartedAt *time.Time `json:"editingStartedAt"`
	UploadedAt       *time.Time `json:"uploadedAt"`
	CompletedAt      *time.Time `json:"completedAt"`
	ReviewURL        string     `json:"reviewUrl"`
}

type historyEntry struct {
	Status    string    `json:"status"`
	ChangedBy string    `json:"changedBy"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	Sequence  int       `json:"sequence"`
}

type orderDetails struct {
	orderSummary

	StartedAt       *time.Time            `json:"startedAt"`
	CompletedAt     *time.Time            `json:"completedAt"`
	Requirements    string                `json:"requirements"`
	PhotoCount      *int                  `json:"photoCount"`
	VideoCount      *int                  `json:"videoCount"`
	CancelReason    string                `json:"cancelReason,omitempty"`
	Version         int                   `json:"version"`
	Checklist       photographerChecklist `json:"checklist"`
	EditorChecklist editorChecklist       `json:"editorChecklist"`
	History         []historyEntry        `json:"history"`
}

type orderQuote struct {
	PlanCode     string `json:"planCode"`
	BillingCycle string `json:"billingCycle"`
	Base         int64  `json:"base"`
	ExtraPhotos  int    `json:"extraPhotos"`
	ExtraVideos  int    `json:"extraVideos"`
	Extras       int64  `json:"extras"`
	Subtotal     int64  `json:"subtotal"`
	VAT          int64  `json:"vat"`
	Total        int64  `json:"total"`
}

type workspaceRun struct {
	WorkspaceID  string  `json:"workspaceId"`
	Outcome      string  `json:"outcome"`
	OrderID      *string `json:"orderId,omitempty"`
	Amount       int64   `json:"amount,omitempty"`
	InvoiceID    string  `json:"invoiceId,omitempty"`
	InvoiceError string  `json:"invoiceError,omitempty"`
	Error        string  `json:"error,omitempty"`
}

type monthlyRun struct {
	Success bool           `json:"success"`
	RanAt   time.Time      `json:"ranAt"`
	Created int            `json:"created"`
	Skipped int            `json:"skipped"`
	Failed  int            `json:"failed"`
	Results []workspaceRun `json:"results"`
}

func toOrderSummary(o queries.OrderSummary) orderSummary {
	return orderSummary{
		ID:             o.ID.String(),
		WorkspaceID:    o.WorkspaceID.String(),
		WorkspaceName:  o.WorkspaceName,
		PhotographerID: optionalString(o.PhotographerID),
		EditorID:       optionalString(o.EditorID),
		Status:         o.Status.String(),
		OrderDate:      o.OrderDate,
		ScheduledDate:  o.ScheduledDate,
		Location:       o.Location,
		Amount:         o.Amount,
	}
}

func toOrderDetails(d queries.OrderDetails) orderDetails {
	history := make([]historyEntry, 0, len(d.History))
	for _, h := range d.History {
		history = append(history, historyEntry{
			Status:    h.Status.String(),
			ChangedBy: h.ChangedBy.String(),
			Notes:     h.Notes,
			CreatedAt: h.CreatedAt,
			Sequence:  h.Sequence,
		})
	}

	return orderDetails{
		orderSummary: toOrderSummary(d.OrderSummary),
		StartedAt:    d.StartedAt,
		CompletedAt:  d.CompletedAt,
		Requirements: d.Requirements,
		PhotoCount:   d.PhotoCount,
		VideoCount:   d.VideoCount,
		CancelReason: d.CancelReason,
		Version:      d.Version,
		Checklist: photographerChecklist{
			ContactedAt: d.Checklist.ContactedAt,
			ScheduledAt: d.Checklist.ScheduledAt,
			DropboxURL:  d.Checklist.DropboxURL,
			UploadedAt:  d.Checklist.UploadedAt,
			Notes:       d.Checklist.Notes,
		},
		EditorChecklist: editorChecklist{
			EditingStartedAt: d.EditorChecklist.EditingStartedAt,
			UploadedAt:       d.EditorChecklist.UploadedAt,
			CompletedAt:      d.EditorChecklist.CompletedAt,
			ReviewURL:        d.EditorChecklist.ReviewURL,
		},
		History: history,
	}
}

func toOrderQuote(q queries.OrderQuote) orderQuote {
	return orderQuote{
		PlanCode:     q.PlanCode,
		BillingCycle: q.BillingCycle,
		Base:         q.Base,
		ExtraPhotos:  q.ExtraPhotos,
		ExtraVideos:  q.ExtraVideos,
		Extras:       q.Extras,
		Subtotal:     q.Subtotal,
		VAT:          q.VAT,
		Total:        q.Total,
	}
}

func toMonthlyRun(summary commands.MonthlyRunSummary) monthlyRun {
	results := make([]workspaceRun, 0, len(summary.Results))
	for _, r := range summary.Results {
		results = append(results, workspaceRun{
			WorkspaceID:  r.WorkspaceID.String(),
			Outcome:      string(r.Outcome),
			OrderID:      optionalString(r.OrderID),
			Amount:       r.Amount,
			InvoiceID:    r.InvoiceID,
			InvoiceError: r.InvoiceError,
			Error:        r.Error,
		})
	}

	return monthlyRun{
		Success: true,
		RanAt:   summary.RanAt,
		Created: summary.Created,
		Skipped: summary.Skipped,
		Failed:  summary.Failed,
		Results: results,
	}
}

func optionalString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
