package queries

import (
	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// visibleTo narrows a query over "orders AS o" to the rows actor may read.
// It mirrors order.CanView.
func visibleTo(actor kernel.Actor) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch {
		case actor.Validate() != nil:
			return db.Where("1 = 0")
		case actor.IsAdministrator(), actor.Is(kernel.RoleSystem):
			return db
		case actor.Is(kernel.RoleBusiness):
			return db.Where("o.workspace_id = ?", actor.WorkspaceID().Bytes())
		case actor.Is(kernel.RolePhotographer):
			return db.Where("(o.photographer_id = ? OR (o.status = ? AND o.photographer_id IS NULL))",
				actor.ID().Bytes(), order.PendingPhotographer.String())
		case actor.Is(kernel.RoleEditor):
			return db.Where("(o.editor_id = ? OR (o.status = ? AND o.editor_id IS NULL))",
				actor.ID().Bytes(), order.Editing.String())
		default:
			return db.Where("1 = 0")
		}
	}
}
