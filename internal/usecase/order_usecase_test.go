package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/DRSN-tech/inventory-service/internal/domain"
	"github.com/DRSN-tech/inventory-service/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderUseCase_PlaceLineRespectsStock(t *testing.T) {
	h := newHarness(sampleProducts()...)
	ctx := context.Background()

	order, err := h.order.Open(ctx, nil)
	require.NoError(t, err)

	err = h.order.PlaceLine(ctx, order, 1, 5, nil)
	assert.ErrorIs(t, err, e.ErrInsufficientStock)
	assert.Equal(t, int64(3), h.products.quantity(1))
	assert.Empty(t, order.Items)

	require.NoError(t, h.order.PlaceLine(ctx, order, 1, 2, nil))
	assert.Equal(t, int64(1), h.products.quantity(1))

	total, err := h.order.Total(ctx, order)
	require.NoError(t, err)
	assert.InDelta(t, 2.4, total, 1e-9)
}

func TestOrderUseCase_PlaceLineUnknownProduct(t *testing.T) {
	h := newHarness(sampleProducts()...)
	ctx := context.Background()

	order, err := h.order.Open(ctx, nil)
	require.NoError(t, err)

	err = h.order.PlaceLine(ctx, order, 42, 1, nil)
	assert.ErrorIs(t, err, e.ErrLineNotPlaced)
	assert.Equal(t, domain.OrderOpen, order.Status)
}

func TestOrderUseCase_PlaceLineRejectsNonPositiveQty(t *testing.T) {
	h := newHarness(sampleProducts()...)
	ctx := context.Background()

	order, err := h.order.Open(ctx, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, h.order.PlaceLine(ctx, order, 1, 0, nil), e.ErrValidation)
	assert.ErrorIs(t, h.order.PlaceLine(ctx, order, 1, -2, nil), e.ErrInvalidOrderQuantity)
	assert.Equal(t, int64(3), h.products.quantity(1))
}

func TestOrderUseCase_TotalIgnoresDeletedProducts(t *testing.T) {
	h := newHarness(sampleProducts()...)
	ctx := context.Background()

	order, err := h.order.Open(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, h.order.PlaceLine(ctx, order, 1, 1, nil))
	require.NoError(t, h.order.PlaceLine(ctx, order, 2, 2, nil))
	require.NoError(t, h.catalog.Delete(ctx, 1))

	total, err := h.order.Total(ctx, order)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, total, 1e-9)
}

func TestOrderUseCase_CheckoutRecordsHistoryAndOutbox(t *testing.T) {
	h := newHarness(sampleProducts()...)
	ctx := context.Background()

	order, err := h.order.Open(ctx, ptr("Alice"))
	require.NoError(t, err)
	require.NoError(t, h.order.PlaceLine(ctx, order, 2, 2, nil))
	require.NoError(t, h.order.PlaceLine(ctx, order, 3, 1, nil))

	entry, err := h.order.Checkout(ctx, order)
	require.NoError(t, err)
	assert.InDelta(t, 6.8, entry.Total, 1e-9)
	assert.Equal(t, "Alice", *entry.Customer)
	assert.True(t, order.IsCheckedOut())

	history, err := h.order.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, []domain.HistoryItem{
		{ProductID: 2, Qty: 2, UnitPrice: 2.5},
		{ProductID: 3, Qty: 1, UnitPrice: 1.8},
	}, history[0].Items)

	require.Len(t, h.outbox.events, 1)
	assert.Equal(t, EventOrderCheckedOut, h.outbox.events[0].EventType)
	assert.Equal(t, order.ID, h.outbox.events[0].OrderID)
	assert.Equal(t, Pending, h.outbox.events[0].Status)

	err = h.order.PlaceLine(ctx, order, 2, 1, nil)
	assert.ErrorIs(t, err, e.ErrOrderClosed)
	assert.Equal(t, int64(8), h.products.quantity(2))

	_, err = h.order.Checkout(ctx, order)
	assert.ErrorIs(t, err, e.ErrOrderClosed)
	history, err = h.order.History(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestOrderUseCase_CheckoutKeepsPriceAtCheckout(t *testing.T) {
	h := newHarness(sampleProducts()...)
	ctx := context.Background()

	order, err := h.order.Open(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, h.order.PlaceLine(ctx, order, 2, 1, nil))
	_, err = h.order.Checkout(ctx, order)
	require.NoError(t, err)

	_, err = h.catalog.Update(ctx, 2, domain.ProductPatch{Price: ptr(9.0)})
	require.NoError(t, err)

	history, err := h.order.History(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2.5, history[0].Items[0].UnitPrice)
	assert.Equal(t, 2.5, history[0].Total)

	invoice, err := h.order.Invoice(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 9.0, invoice.Total)
}

func TestOrderUseCase_CheckoutEmptyOrder(t *testing.T) {
	h := newHarness(sampleProducts()...)
	ctx := context.Background()

	order, err := h.order.Open(ctx, nil)
	require.NoError(t, err)

	entry, err := h.order.Checkout(ctx, order)
	require.NoError(t, err)
	assert.Empty(t, entry.Items)
	assert.Zero(t, entry.Total)
}

func TestOrderUseCase_CheckoutStorageFailure(t *testing.T) {
	h := newHarness(sampleProducts()...)
	ctx := context.Background()
	h.orders.saveErr = errBoom

	order, err := h.order.Open(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, h.order.PlaceLine(ctx, order, 2, 1, nil))

	_, err = h.order.Checkout(ctx, order)
	assert.ErrorIs(t, err, e.ErrStorage)
	assert.False(t, order.IsCheckedOut())
	assert.Empty(t, h.outbox.events)
}

func TestOrderUseCase_PlaceOrder(t *testing.T) {
	h := newHarness(sampleProducts()...)
	ctx := context.Background()

	res, err := h.order.PlaceOrder(ctx, NewPlaceOrderReq(ptr("Bob"), []OrderLineReq{
		{ProductID: 1, Qty: 2},
		{ProductID: 3, Qty: 1},
	}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.OrderID)
	assert.InDelta(t, 4.2, res.Total, 1e-9)
	assert.Equal(t, MsgCheckoutSuccess, res.Message)
	assert.Equal(t, int64(1), h.products.quantity(1))
	assert.Equal(t, int64(4), h.products.quantity(3))
}

func TestOrderUseCase_PlaceOrderStopsAtFirstFailedLine(t *testing.T) {
	h := newHarness(sampleProducts()...)
	ctx := context.Background()

	_, err := h.order.PlaceOrder(ctx, NewPlaceOrderReq(nil, []OrderLineReq{
		{ProductID: 2, Qty: 1},
		{ProductID: 1, Qty: 99},
		{ProductID: 3, Qty: 1},
	}))
	assert.ErrorIs(t, err, e.ErrInsufficientStock)

	assert.Equal(t, int64(9), h.products.quantity(2))
	assert.Equal(t, int64(3), h.products.quantity(1))
	assert.Equal(t, int64(5), h.products.quantity(3))

	history, err := h.order.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestOrderUseCase_ConcurrentLinesNeverOversell(t *testing.T) {
	h := newHarness(sampleProducts()...)
	ctx := context.Background()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		placed int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := h.order.Open(ctx, nil)
			if err != nil {
				return
			}
			if h.order.PlaceLine(ctx, order, 1, 1, nil) == nil {
				mu.Lock()
				placed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, placed)
	assert.Equal(t, int64(0), h.products.quantity(1))
}

func TestOrderUseCase_Invoice(t *testing.T) {
	h := newHarness(sampleProducts()...)
	ctx := context.Background()

	res, err := h.order.PlaceOrder(ctx, NewPlaceOrderReq(nil, []OrderLineReq{
		{ProductID: 1, Qty: 1},
		{ProductID: 2, Qty: 2},
	}))
	require.NoError(t, err)
	require.NoError(t, h.catalog.Delete(ctx, 1))

	invoice, err := h.order.Invoice(ctx, res.OrderID)
	require.NoError(t, err)
	require.Len(t, invoice.Lines, 2)
	assert.Equal(t, "Product#1", invoice.Lines[0].Name)
	assert.Zero(t, invoice.Lines[0].Price)
	assert.Equal(t, "Milk", invoice.Lines[1].Name)
	assert.InDelta(t, 5.0, invoice.Total, 1e-9)

	_, err = h.order.Invoice(ctx, 404)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestOrderUseCase_CartFlow(t *testing.T) {
	h := newHarness(sampleProducts()...)
	ctx := context.Background()

	cart, err := h.order.OpenCart(ctx, nil)
	require.NoError(t, err)
	id := cart.Order.ID

	cart, err = h.order.AddCartLine(ctx, id, OrderLineReq{ProductID: 1, Qty: 2}, ptr("Carol"))
	require.NoError(t, err)
	assert.InDelta(t, 2.4, cart.Total, 1e-9)
	assert.Equal(t, domain.OrderPlacing, cart.Order.Status)

	_, err = h.order.AddCartLine(ctx, id, OrderLineReq{ProductID: 1, Qty: 2}, nil)
	assert.ErrorIs(t, err, e.ErrInsufficientStock)

	cart, err = h.order.GetCart(ctx, id)
	require.NoError(t, err)
	require.Len(t, cart.Order.Items, 1)
	assert.Equal(t, "Carol", *cart.Order.Customer)

	res, err := h.order.CheckoutCart(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, res.OrderID)
	assert.InDelta(t, 2.4, res.Total, 1e-9)

	_, err = h.order.GetCart(ctx, id)
	assert.ErrorIs(t, err, e.ErrCartNotFound)
	_, err = h.order.CheckoutCart(ctx, id)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestOrderUseCase_CheckoutCartClosesCartWhenDeleteFails(t *testing.T) {
	h := newHarness(sampleProducts()...)
	ctx := context.Background()

	cart, err := h.order.OpenCart(ctx, nil)
	require.NoError(t, err)
	id := cart.Order.ID

	_, err = h.order.AddCartLine(ctx, id, OrderLineReq{ProductID: 2, Qty: 1}, nil)
	require.NoError(t, err)

	h.carts.deleteErr = errBoom
	_, err = h.order.CheckoutCart(ctx, id)
	require.NoError(t, err)

	left, err := h.order.GetCart(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCheckedOut, left.Order.Status)

	_, err = h.order.AddCartLine(ctx, id, OrderLineReq{ProductID: 2, Qty: 1}, nil)
	assert.ErrorIs(t, err, e.ErrOrderClosed)
	assert.Equal(t, int64(9), h.products.quantity(2))

	_, err = h.order.CheckoutCart(ctx, id)
	assert.ErrorIs(t, err, e.ErrOrderClosed)

	history, err := h.order.History(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
