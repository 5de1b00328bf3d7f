package commands_test

import (
	"testing"

	"tradefinance/internal/core/application/usecases/commands"
	"tradefinance/internal/core/domain/model/order"
	"tradefinance/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShipOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewShipOrderCommand(sellerActor(t), "order-1", "1AXCAW311")
	require.NoError(t, err)

	aggregate := confirmedOrder(t, "order-1")
	repo := new(MockOrderRepository)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		repo.On("Get", ctx, "order-1").Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		publisher.On("PublishOrderChanged", ctx, aggregate).Return(nil).Once(),
	)

	h := commands.NewShipOrderCommandHandler(repo, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.Shipped, aggregate.State())
	require.NotNil(t, aggregate.TrackingCode())
	require.Equal(t, "1AXCAW311", *aggregate.TrackingCode())
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestShipOrderCommandHandler_Handle_MissingTrackingCode(t *testing.T) {
	_, err := commands.NewShipOrderCommand(sellerActor(t), "order-1", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestShipOrderCommandHandler_Handle_NonSellerRejected(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewShipOrderCommand(buyerActor(t), "order-1", "1AXCAW311")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	h := commands.NewShipOrderCommandHandler(repo, new(MockEventPublisher))

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestShipOrderCommandHandler_Handle_WrongState(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewShipOrderCommand(sellerActor(t), "order-1", "1AXCAW311")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, "order-1").Return(createdOrder(t, "order-1"), nil).Once()

	h := commands.NewShipOrderCommandHandler(repo, new(MockEventPublisher))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestShipOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewShipOrderCommandHandler(new(MockOrderRepository), new(MockEventPublisher))

	err := h.Handle(t.Context(), commands.ShipOrderCommand{})
	require.ErrorIs(t, err, commands.ErrShipOrderCommandIsNotConstructed)
}
