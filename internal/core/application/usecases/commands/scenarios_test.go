package commands_test

import (
	"context"
	"testing"

	"tradefinance/internal/adapters/out/ledgerstore"
	"tradefinance/internal/adapters/out/memoryledger"
	"tradefinance/internal/core/application/usecases/commands"
	"tradefinance/internal/core/domain/model/order"
	"tradefinance/internal/core/ports"

	"github.com/stretchr/testify/require"
)

// recordingPublisher captures the state carried by each published event.
type recordingPublisher struct {
	states []order.State
}

func (p *recordingPublisher) PublishOrderChanged(_ context.Context, aggregate *order.Order) error {
	p.states = append(p.states, aggregate.State())
	return nil
}

var _ ports.EventPublisher = (*recordingPublisher)(nil)

// workflow wires all command handlers over one in-memory ledger so a
// scenario can drive an order through its whole lifecycle.
type workflow struct {
	repo      *ledgerstore.LedgerOrderRepository
	publisher *recordingPublisher

	create      commands.CreateOrderCommandHandler
	confirm     commands.ConfirmOrderCommandHandler
	ship        commands.ShipOrderCommandHandler
	signArrival commands.SignArrivalCommandHandler
	cancel      commands.CancelOrderCommandHandler
	checkDate   commands.CheckDeliveryDateCommandHandler
}

func newWorkflow(clock commands.Clock) *workflow {
	repo := ledgerstore.NewLedgerOrderRepository(memoryledger.NewMemoryLedger())
	publisher := &recordingPublisher{}

	return &workflow{
		repo:        repo,
		publisher:   publisher,
		create:      commands.NewCreateOrderCommandHandler(repo, publisher),
		confirm:     commands.NewConfirmOrderCommandHandler(repo, publisher),
		ship:        commands.NewShipOrderCommandHandler(repo, publisher),
		signArrival: commands.NewSignArrivalCommandHandler(repo, publisher),
		cancel:      commands.NewCancelOrderCommandHandler(repo, publisher),
		checkDate:   commands.NewCheckDeliveryDateCommandHandler(repo, publisher, clock),
	}
}

func (w *workflow) createOrder(t *testing.T, ctx context.Context, id string) {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		sellerActor(t), id, 7, 3, 100, 20, "1 Harbor Road", "2030-07-15")
	require.NoError(t, err)
	require.NoError(t, w.create.Handle(ctx, cmd))
}

func (w *workflow) state(t *testing.T, ctx context.Context, id string) order.State {
	t.Helper()
	aggregate, err := w.repo.Get(ctx, id)
	require.NoError(t, err)
	return aggregate.State()
}

func TestWorkflow_CreateAndConfirm(t *testing.T) {
	ctx := t.Context()
	w := newWorkflow(fixedClock("2030-07-01T00:00:00Z"))

	w.createOrder(t, ctx, "order-1")
	require.Equal(t, order.Created, w.state(t, ctx, "order-1"))

	cmd, err := commands.NewConfirmOrderCommand(buyerActor(t), "order-1")
	require.NoError(t, err)
	require.NoError(t, w.confirm.Handle(ctx, cmd))

	require.Equal(t, order.Confirmed, w.state(t, ctx, "order-1"))
	require.Equal(t, []order.State{order.Created, order.Confirmed}, w.publisher.states)
}

func TestWorkflow_FullDeliveryRound(t *testing.T) {
	ctx := t.Context()
	w := newWorkflow(fixedClock("2030-07-01T00:00:00Z"))

	w.createOrder(t, ctx, "order-1")

	confirm, err := commands.NewConfirmOrderCommand(buyerActor(t), "order-1")
	require.NoError(t, err)
	require.NoError(t, w.confirm.Handle(ctx, confirm))

	ship, err := commands.NewShipOrderCommand(sellerActor(t), "order-1", "1AXCAW311")
	require.NoError(t, err)
	require.NoError(t, w.ship.Handle(ctx, ship))

	buyerSign, err := commands.NewSignArrivalCommand(buyerActor(t), "order-1")
	require.NoError(t, err)
	require.NoError(t, w.signArrival.Handle(ctx, buyerSign))
	require.Equal(t, order.Shipped, w.state(t, ctx, "order-1"))

	freightSign, err := commands.NewSignArrivalCommand(freightActor(t), "order-1")
	require.NoError(t, err)
	require.NoError(t, w.signArrival.Handle(ctx, freightSign))
	require.Equal(t, order.Delivered, w.state(t, ctx, "order-1"))

	require.Equal(t, []order.State{
		order.Created, order.Confirmed, order.Shipped, order.Shipped, order.Delivered,
	}, w.publisher.states)
}

func TestWorkflow_DeadlineExpiryAfterShipment(t *testing.T) {
	ctx := t.Context()
	w := newWorkflow(fixedClock("2030-07-16T00:00:01Z"))

	w.createOrder(t, ctx, "order-1")

	confirm, err := commands.NewConfirmOrderCommand(buyerActor(t), "order-1")
	require.NoError(t, err)
	require.NoError(t, w.confirm.Handle(ctx, confirm))

	ship, err := commands.NewShipOrderCommand(sellerActor(t), "order-1", "1AXCAW311")
	require.NoError(t, err)
	require.NoError(t, w.ship.Handle(ctx, ship))

	check, err := commands.NewCheckDeliveryDateCommand("order-1")
	require.NoError(t, err)

	passed, err := w.checkDate.Handle(ctx, check)
	require.NoError(t, err)
	require.True(t, passed)
	require.Equal(t, order.Passed, w.state(t, ctx, "order-1"))

	// Passed is terminal; a second check rejects instead of expiring again.
	_, err = w.checkDate.Handle(ctx, check)
	require.Error(t, err)
	require.Equal(t, order.Passed, w.state(t, ctx, "order-1"))
}

func TestWorkflow_CancelBeforeShipment(t *testing.T) {
	ctx := t.Context()
	w := newWorkflow(fixedClock("2030-07-01T00:00:00Z"))

	w.createOrder(t, ctx, "order-1")

	cancel, err := commands.NewCancelOrderCommand(buyerActor(t), "order-1")
	require.NoError(t, err)
	require.NoError(t, w.cancel.Handle(ctx, cancel))
	require.Equal(t, order.Cancelled, w.state(t, ctx, "order-1"))

	// Cancelled is terminal; confirmation no longer applies.
	confirm, err := commands.NewConfirmOrderCommand(buyerActor(t), "order-1")
	require.NoError(t, err)
	require.Error(t, w.confirm.Handle(ctx, confirm))
}

func TestWorkflow_DuplicateCreateRejected(t *testing.T) {
	ctx := t.Context()
	w := newWorkflow(fixedClock("2030-07-01T00:00:00Z"))

	w.createOrder(t, ctx, "order-1")

	cmd, err := commands.NewCreateOrderCommand(
		sellerActor(t), "order-1", 8, 1, 50, 5, "2 Dock Street", "2030-08-01")
	require.NoError(t, err)
	require.Error(t, w.create.Handle(ctx, cmd))

	// The original record is untouched.
	aggregate, err := w.repo.Get(ctx, "order-1")
	require.NoError(t, err)
	require.Equal(t, 7, aggregate.ProductID())
}
