package ledgerstore_test

import (
	"context"
	"testing"

	"tradefinance/internal/adapters/out/ledgerstore"
	"tradefinance/internal/adapters/out/memoryledger"
	"tradefinance/internal/core/domain/model/order"
	"tradefinance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, id string) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(id, 7, 3, 100, 20, "1 Harbor Road", "2030-07-15")
	require.NoError(t, err)
	return aggregate
}

func TestLedgerOrderRepository_AddAndGet_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repository := ledgerstore.NewLedgerOrderRepository(memoryledger.NewMemoryLedger())

	aggregate := newTestOrder(t, "order-1")
	require.NoError(t, repository.Add(ctx, aggregate))

	restored, err := repository.Get(ctx, "order-1")
	require.NoError(t, err)

	assert.Equal(t, aggregate.ID(), restored.ID())
	assert.Equal(t, order.Created, restored.State())
	assert.Equal(t, aggregate.ProductID(), restored.ProductID())
	assert.Equal(t, aggregate.Quantity(), restored.Quantity())
	assert.Equal(t, aggregate.Price(), restored.Price())
	assert.Equal(t, aggregate.ShippingCosts(), restored.ShippingCosts())
	assert.Equal(t, aggregate.ShippingAddress(), restored.ShippingAddress())
	assert.True(t, aggregate.LatestDeliveryDate().Equal(restored.LatestDeliveryDate()))
	assert.Nil(t, restored.TrackingCode())
	assert.False(t, restored.BuyerSigned())
	assert.False(t, restored.FreightSigned())
}

func TestLedgerOrderRepository_Add_DuplicateID_ReturnsAlreadyExists(t *testing.T) {
	ctx := context.Background()
	repository := ledgerstore.NewLedgerOrderRepository(memoryledger.NewMemoryLedger())

	require.NoError(t, repository.Add(ctx, newTestOrder(t, "order-1")))

	err := repository.Add(ctx, newTestOrder(t, "order-1"))
	require.Error(t, err)

	var alreadyExistsErr *errs.ObjectAlreadyExistsError
	assert.ErrorAs(t, err, &alreadyExistsErr)
	assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}

func TestLedgerOrderRepository_Update_MissingOrder_ReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	repository := ledgerstore.NewLedgerOrderRepository(memoryledger.NewMemoryLedger())

	err := repository.Update(ctx, newTestOrder(t, "order-1"))
	require.Error(t, err)

	var notFoundErr *errs.ObjectNotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestLedgerOrderRepository_Update_PersistsTransitionedState(t *testing.T) {
	ctx := context.Background()
	repository := ledgerstore.NewLedgerOrderRepository(memoryledger.NewMemoryLedger())

	aggregate := newTestOrder(t, "order-1")
	require.NoError(t, repository.Add(ctx, aggregate))

	require.NoError(t, aggregate.Confirm())
	require.NoError(t, aggregate.Ship("1AXCAW311"))
	require.NoError(t, repository.Update(ctx, aggregate))

	restored, err := repository.Get(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, order.Shipped, restored.State())
	require.NotNil(t, restored.TrackingCode())
	assert.Equal(t, "1AXCAW311", *restored.TrackingCode())
}

func TestLedgerOrderRepository_Get_MissingOrder_ReturnsNotFound(t *testing.T) {
	repository := ledgerstore.NewLedgerOrderRepository(memoryledger.NewMemoryLedger())

	aggregate, err := repository.Get(context.Background(), "order-absent")
	assert.Nil(t, aggregate)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestLedgerOrderRepository_Get_EmptyID_ReturnsRequired(t *testing.T) {
	repository := ledgerstore.NewLedgerOrderRepository(memoryledger.NewMemoryLedger())

	aggregate, err := repository.Get(context.Background(), "")
	assert.Nil(t, aggregate)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestLedgerOrderRepository_Get_CorruptRecord_ReturnsInvalid(t *testing.T) {
	ctx := context.Background()
	ledger := memoryledger.NewMemoryLedger()
	repository := ledgerstore.NewLedgerOrderRepository(ledger)

	require.NoError(t, ledger.Put(ctx, "order-1", []byte("{not json")))

	aggregate, err := repository.Get(ctx, "order-1")
	assert.Nil(t, aggregate)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrderDTO_RoundTrip_PreservesSignatures(t *testing.T) {
	aggregate := newTestOrder(t, "order-1")
	require.NoError(t, aggregate.Confirm())
	require.NoError(t, aggregate.Ship("1AXCAW311"))
	require.NoError(t, aggregate.SignArrivalByBuyer())

	raw, err := ledgerstore.Encode(aggregate)
	require.NoError(t, err)

	restored, err := ledgerstore.Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, order.Shipped, restored.State())
	assert.True(t, restored.BuyerSigned())
	assert.False(t, restored.FreightSigned())
}

func TestFromDomain_TagsDocType(t *testing.T) {
	dto := ledgerstore.FromDomain(newTestOrder(t, "order-1"))
	assert.Equal(t, ledgerstore.DocTypeOrder, dto.DocType)
	assert.Equal(t, int(order.Created), dto.State)
	assert.Equal(t, "2030-07-15", dto.LatestDeliveryDate)
}
