package commands_test

import (
	"errors"
	"testing"

	"photoflow/internal/core/application/usecases/commands"
	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/order"
	"photoflow/internal/core/domain/model/subscription"
	"photoflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T, actor kernel.Actor, workspaceID kernel.UUID) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(actor, commands.CreateOrderParams{
		OrderID:      kernel.NewUUID(),
		WorkspaceID:  workspaceID,
		Location:     "4 Quay Street",
		Requirements: "  Team headshots ",
		PhotoCount:   intPtr(120),
	})
	require.NoError(t, err)
	return cmd
}

func TestNewCreateOrderCommand(t *testing.T) {
	admin := newActor(t, kernel.RoleAdministrator)

	t.Run("trims requirements", func(t *testing.T) {
		cmd := newCreateOrderCommand(t, admin, kernel.NewUUID())

		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Team headshots", cmd.Requirements())
		assert.Equal(t, "4 Quay Street", cmd.Location().Address())
		assert.Equal(t, 120, *cmd.PhotoCount())
	})

	t.Run("collects every field error", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(admin, commands.CreateOrderParams{
			OrderID:     kernel.NewUUID(),
			WorkspaceID: kernel.NewUUID(),
			Location:    " ",
			PhotoCount:  intPtr(-1),
			VideoCount:  intPtr(-2),
		})

		require.Error(t, err)
		fields := errs.Fields(err)
		assert.Contains(t, fields, "location")
		assert.Contains(t, fields, "photoCount")
		assert.Contains(t, fields, "videoCount")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	workspaceID := kernel.NewUUID()
	cmd := newCreateOrderCommand(t, newActor(t, kernel.RoleAdministrator), workspaceID)

	orders := new(MockOrderRepository)
	subs := new(MockSubscriptionRepository)
	uow := new(MockUoW)
	var stored *order.Order
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SubscriptionRepository").Return(subs).Once(),
		subs.On("GetActiveByWorkspace", ctx, workspaceID).Return(basicSubscription(t, workspaceID), nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock{now: now})
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, cmd.OrderID(), result.OrderID)
	assert.Equal(t, int64(15000), result.Amount)
	require.NotNil(t, stored)
	assert.Equal(t, order.PendingPhotographer, stored.Status())
	assert.Equal(t, now, stored.OrderDate())
	assert.Equal(t, "Team headshots", stored.Requirements())
	uow.AssertExpectations(t)
	orders.AssertExpectations(t)
	subs.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NoActiveSubscription(t *testing.T) {
	ctx := t.Context()
	workspaceID := kernel.NewUUID()
	cmd := newCreateOrderCommand(t, newActor(t, kernel.RoleAdministrator), workspaceID)

	subs := new(MockSubscriptionRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SubscriptionRepository").Return(subs).Once(),
		subs.On("GetActiveByWorkspace", ctx, workspaceID).
			Return(nil, errs.NewObjectNotFoundError("subscription", workspaceID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock{now: now})
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, subscription.ErrNoActiveSubscription)
	require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RejectsNonAdministrators(t *testing.T) {
	for _, role := range []kernel.Role{kernel.RolePhotographer, kernel.RoleEditor, kernel.RoleBusiness} {
		t.Run(role.String(), func(t *testing.T) {
			cmd := newCreateOrderCommand(t, newActor(t, role), kernel.NewUUID())
			factory := new(MockCreateOrderUoWFactory)

			h := commands.NewCreateOrderCommandHandler(factory, fixedClock{now: now})
			_, err := h.Handle(t.Context(), cmd)

			require.ErrorIs(t, err, errs.ErrNotAuthorized)
			factory.AssertNotCalled(t, "Create")
		})
	}
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockCreateOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, fixedClock{now: now})

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	workspaceID := kernel.NewUUID()
	cmd := newCreateOrderCommand(t, kernel.SystemActor(), workspaceID)

	orders := new(MockOrderRepository)
	subs := new(MockSubscriptionRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SubscriptionRepository").Return(subs).Once(),
		subs.On("GetActiveByWorkspace", ctx, workspaceID).Return(basicSubscription(t, workspaceID), nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", ctx, mock.Anything).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock{now: now})
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "add error")
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}
