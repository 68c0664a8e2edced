package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle filters by visibility in SQL. Deleted orders are never listed.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx).
		Table("orders AS o").
		Select(summaryColumns).
		Joins("JOIN workspaces w ON w.id = o.workspace_id").
		Where("o.deleted_at IS NULL").
		Scopes(visibleTo(query.Actor()))
	if s := query.Status(); s != nil {
		db = db.Where("o.status = ?", s.String())
	}

	var rows []summaryRow
	if err := db.Order("o.order_date DESC, o.id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]OrderSummary, 0, len(rows))
	for _, row := range rows {
		summary, err := row.toSummary()
		if err != nil {
			return nil, err
		}
		orders = append(orders, summary)
	}

	return orders, nil
}
