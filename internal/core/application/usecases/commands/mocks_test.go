package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/user"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

type MockPaymentProcessor struct{ mock.Mock }

func (m *MockPaymentProcessor) Status(o *order.Order) order.PaymentStatus {
	args := m.Called(o)
	return args.Get(0).(order.PaymentStatus)
}

func (m *MockPaymentProcessor) SetStatus(o *order.Order, status order.PaymentStatus) error {
	args := m.Called(o, status)
	return args.Error(0)
}

type MockOrderPayer struct{ mock.Mock }

func (m *MockOrderPayer) Handle(ctx context.Context, cmd commands.PayOrderCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

var _ commands.OrderPayer = (*MockOrderPayer)(nil)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUser(t *testing.T) *user.User {
	t.Helper()

	address, err := kernel.NewAddress("New York", "Broadway", 69)
	require.NoError(t, err)
	u, err := user.NewUser("Marco", "aunglynn@marco.com", address)
	require.NoError(t, err)

	return u
}

func newTestItems(t *testing.T) []order.Item {
	t.Helper()

	apple, err := order.NewItem("Apple", 5, 1_000)
	require.NoError(t, err)
	cherry, err := order.NewItem("Cherry", 2, 1_500)
	require.NoError(t, err)

	return []order.Item{apple, cherry}
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), newTestUser(t), newTestItems(t))
	require.NoError(t, err)

	return o
}
