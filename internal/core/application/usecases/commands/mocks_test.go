package commands_test

import (
	"context"
	"testing"

	"tradefinance/internal/core/domain/model/kernel"
	"tradefinance/internal/core/domain/model/order"

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

func (m *MockOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderChanged(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func actorWith(t *testing.T, id string, roles ...kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, roles...)
	require.NoError(t, err)
	return actor
}

func sellerActor(t *testing.T) kernel.Actor  { return actorWith(t, "seller-1", kernel.RoleSeller) }
func buyerActor(t *testing.T) kernel.Actor   { return actorWith(t, "buyer-1", kernel.RoleBuyer) }
func freightActor(t *testing.T) kernel.Actor { return actorWith(t, "freight-1", kernel.RoleFreight) }

func createdOrder(t *testing.T, id string) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(id, 7, 3, 100, 20, "1 Harbor Road", "2030-07-15")
	require.NoError(t, err)
	return aggregate
}

func confirmedOrder(t *testing.T, id string) *order.Order {
	t.Helper()
	aggregate := createdOrder(t, id)
	require.NoError(t, aggregate.Confirm())
	return aggregate
}

func shippedOrder(t *testing.T, id string) *order.Order {
	t.Helper()
	aggregate := confirmedOrder(t, id)
	require.NoError(t, aggregate.Ship("1AXCAW311"))
	return aggregate
}
