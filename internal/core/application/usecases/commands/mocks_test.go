package commands_test

import (
	"context"
	"time"

	"photoflow/internal/core/application/usecases/commands"
	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/order"
	"photoflow/internal/core/domain/model/subscription"
	"photoflow/internal/core/domain/model/workspace"
	"photoflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) LatestOrderDate(ctx context.Context, workspaceID kernel.UUID) (*time.Time, error) {
	args := m.Called(ctx, workspaceID)
	t, _ := args.Get(0).(*time.Time)
	return t, args.Error(1)
}

type MockSubscriptionRepository struct{ mock.Mock }

func (m *MockSubscriptionRepository) GetActiveByWorkspace(
	ctx context.Context,
	workspaceID kernel.UUID,
) (*subscription.Subscription, error) {
	args := m.Called(ctx, workspaceID)
	s, _ := args.Get(0).(*subscription.Subscription)
	return s, args.Error(1)
}

func (m *MockSubscriptionRepository) LockActiveByWorkspace(
	ctx context.Context,
	workspaceID kernel.UUID,
) (*subscription.Subscription, error) {
	args := m.Called(ctx, workspaceID)
	s, _ := args.Get(0).(*subscription.Subscription)
	return s, args.Error(1)
}

func (m *MockSubscriptionRepository) ListActive(ctx context.Context) ([]*subscription.Subscription, error) {
	args := m.Called(ctx)
	subs, _ := args.Get(0).([]*subscription.Subscription)
	return subs, args.Error(1)
}

type MockWorkspaceRepository struct{ mock.Mock }

func (m *MockWorkspaceRepository) Get(ctx context.Context, id kernel.UUID) (*workspace.Workspace, error) {
	args := m.Called(ctx, id)
	w, _ := args.Get(0).(*workspace.Workspace)
	return w, args.Error(1)
}

// MockUoW satisfies every unit of work flavour the handlers ask for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) SubscriptionRepository() ports.SubscriptionRepository {
	args := m.Called()
	return args.Get(0).(ports.SubscriptionRepository)
}

func (m *MockUoW) WorkspaceRepository() ports.WorkspaceRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkspaceRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockInvoiceGateway struct{ mock.Mock }

func (m *MockInvoiceGateway) CreateInvoice(ctx context.Context, req ports.InvoiceRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }
