package commands_test

import (
	"testing"
	"time"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/order"
	"photoflow/internal/core/domain/model/subscription"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	var ws *kernel.UUID
	if role == kernel.RoleBusiness {
		id := kernel.NewUUID()
		ws = &id
	}
	a, err := kernel.NewActor(kernel.NewUUID(), role, ws)
	require.NoError(t, err)
	return a
}

func basicSubscription(t *testing.T, workspaceID kernel.UUID) *subscription.Subscription {
	t.Helper()
	plan, err := subscription.NewPlan(subscription.PlanParams{
		Code:               "BASIC",
		Name:               "Basic",
		MonthlyPrice:       10000,
		YearlyMonthlyPrice: 8500,
		PhotosPerMonth:     100,
		VideosPerMonth:     2,
		ExtraPhotoPrice:    100,
		ExtraVideoPrice:    2500,
	})
	require.NoError(t, err)
	sub, err := subscription.NewSubscription(kernel.NewUUID(), workspaceID, plan,
		subscription.CycleMonthly, nil, subscription.StatusActive, now.AddDate(-1, 0, 0))
	require.NoError(t, err)
	return sub
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	loc, err := kernel.NewLocation("4 Quay Street")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.Details{Location: loc},
		12500, kernel.SystemActor(), now.Add(-24*time.Hour))
	require.NoError(t, err)
	o.MarkPersisted(1)
	return o
}

func intPtr(v int) *int { return &v }
