package queries_test

import (
	"context"
	"testing"
	"time"

	"photoflow/internal/core/application/usecases/queries"
	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/subscription"
	"photoflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSubscriptionReader struct{ mock.Mock }

func (m *MockSubscriptionReader) GetActiveByWorkspace(
	ctx context.Context,
	workspaceID kernel.UUID,
) (*subscription.Subscription, error) {
	args := m.Called(ctx, workspaceID)
	s, _ := args.Get(0).(*subscription.Subscription)
	return s, args.Error(1)
}

func basicPlanSubscription(t *testing.T, workspaceID kernel.UUID, cycle subscription.BillingCycle) *subscription.Subscription {
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
	sub, err := subscription.NewSubscription(kernel.NewUUID(), workspaceID, plan, cycle, nil,
		subscription.StatusActive, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return sub
}

func TestQuoteOrderAmountQueryHandler_Handle(t *testing.T) {
	wsID := kernel.NewUUID()
	member, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleBusiness, &wsID)
	require.NoError(t, err)
	admin, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleAdministrator, nil)
	require.NoError(t, err)

	t.Run("member gets itemized quote", func(t *testing.T) {
		reader := new(MockSubscriptionReader)
		reader.On("GetActiveByWorkspace", mock.Anything, wsID).
			Return(basicPlanSubscription(t, wsID, subscription.CycleMonthly), nil).Once()

		query, err := queries.NewQuoteOrderAmountQuery(member, wsID, 120, 0)
		require.NoError(t, err)
		quote, err := queries.NewQuoteOrderAmountQueryHandler(reader).Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, "BASIC", quote.PlanCode)
		assert.Equal(t, "MONTHLY", quote.BillingCycle)
		assert.Equal(t, int64(10000), quote.Base)
		assert.Equal(t, 20, quote.ExtraPhotos)
		assert.Equal(t, int64(2000), quote.Extras)
		assert.Equal(t, int64(12000), quote.Subtotal)
		assert.Equal(t, int64(3000), quote.VAT)
		assert.Equal(t, int64(15000), quote.Total)
		reader.AssertExpectations(t)
	})

	t.Run("yearly cycle uses discounted base", func(t *testing.T) {
		reader := new(MockSubscriptionReader)
		reader.On("GetActiveByWorkspace", mock.Anything, wsID).
			Return(basicPlanSubscription(t, wsID, subscription.CycleYearly), nil).Once()

		query, err := queries.NewQuoteOrderAmountQuery(admin, wsID, 0, 3)
		require.NoError(t, err)
		quote, err := queries.NewQuoteOrderAmountQueryHandler(reader).Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, int64(8500), quote.Base)
		assert.Equal(t, 1, quote.ExtraVideos)
		assert.Equal(t, int64(13750), quote.Total)
	})

	t.Run("other workspace is refused", func(t *testing.T) {
		reader := new(MockSubscriptionReader)
		query, err := queries.NewQuoteOrderAmountQuery(member, kernel.NewUUID(), 10, 0)
		require.NoError(t, err)

		_, err = queries.NewQuoteOrderAmountQueryHandler(reader).Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		reader.AssertNotCalled(t, "GetActiveByWorkspace", mock.Anything, mock.Anything)
	})

	t.Run("photographers are refused", func(t *testing.T) {
		photographer, err := kernel.NewActor(kernel.NewUUID(), kernel.RolePhotographer, nil)
		require.NoError(t, err)
		query, err := queries.NewQuoteOrderAmountQuery(photographer, wsID, 10, 0)
		require.NoError(t, err)

		_, err = queries.NewQuoteOrderAmountQueryHandler(new(MockSubscriptionReader)).Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("no active subscription", func(t *testing.T) {
		reader := new(MockSubscriptionReader)
		reader.On("GetActiveByWorkspace", mock.Anything, wsID).
			Return(nil, errs.NewObjectNotFoundError("subscription", wsID)).Once()

		query, err := queries.NewQuoteOrderAmountQuery(member, wsID, 10, 0)
		require.NoError(t, err)
		_, err = queries.NewQuoteOrderAmountQueryHandler(reader).Handle(t.Context(), query)

		require.ErrorIs(t, err, subscription.ErrNoActiveSubscription)
	})
}

func TestNewQuoteOrderAmountQuery_Validation(t *testing.T) {
	_, err := queries.NewQuoteOrderAmountQuery(kernel.Actor{}, kernel.UUID{}, -1, -2)

	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	fields := errs.Fields(err)
	assert.Contains(t, fields, "photoCount")
	assert.Contains(t, fields, "videoCount")

	var zero queries.QuoteOrderAmountQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrQuoteOrderAmountQueryIsNotConstructed)
}
