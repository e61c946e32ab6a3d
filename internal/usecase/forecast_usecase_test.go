package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/inventory-service/internal/forecast"
	"github.com/DRSN-tech/inventory-service/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeOrders(t *testing.T, h *harness, orders ...[]OrderLineReq) {
	t.Helper()
	for _, lines := range orders {
		_, err := h.order.PlaceOrder(context.Background(), NewPlaceOrderReq(nil, lines))
		require.NoError(t, err)
	}
}

func TestForecastUseCase_LowStockReadsFreshState(t *testing.T) {
	h := newHarness(sampleProducts()...)
	uc := NewForecastUC(h.products, h.orders)
	ctx := context.Background()

	placeOrders(t, h,
		[]OrderLineReq{{ProductID: 2, Qty: 4}},
		[]OrderLineReq{{ProductID: 2, Qty: 4}, {ProductID: 3, Qty: 1}},
	)

	report, err := uc.LowStock(ctx, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), report.Threshold)
	require.Len(t, report.Results, 1)

	item := report.Results[0]
	assert.Equal(t, int64(2), item.ProductID)
	assert.Equal(t, int64(2), item.QtyLeft)
	assert.Equal(t, 4.0, item.AvgSoldPerOrder)
	require.NotNil(t, item.EstimatedOrdersLeft)
	assert.Equal(t, 0.5, *item.EstimatedOrdersLeft)
	assert.Equal(t, forecast.NoteOK, item.Note)
}

func TestForecastUseCase_Reorder(t *testing.T) {
	h := newHarness(sampleProducts()...)
	uc := NewForecastUC(h.products, h.orders)

	placeOrders(t, h,
		[]OrderLineReq{{ProductID: 2, Qty: 4}},
		[]OrderLineReq{{ProductID: 2, Qty: 2}, {ProductID: 1, Qty: 1}},
	)

	items, err := uc.Reorder(context.Background(), 2, 7)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, int64(2), items[0].ProductID)
	assert.Equal(t, 3.0, items[0].EstimatedDailyDemand)
	assert.Equal(t, int64(17), items[0].RecommendedReorderQty)

	assert.Equal(t, int64(1), items[1].ProductID)
	assert.Equal(t, int64(2), items[1].RecommendedReorderQty)

	assert.Equal(t, int64(3), items[2].ProductID)
	assert.Zero(t, items[2].RecommendedReorderQty)
}

func TestForecastUseCase_StorageFailure(t *testing.T) {
	h := newHarness(sampleProducts()...)
	h.products.listErr = errBoom
	uc := NewForecastUC(h.products, h.orders)

	_, err := uc.LowStock(context.Background(), 10, 2)
	assert.ErrorIs(t, err, e.ErrStorage)

	_, err = uc.Reorder(context.Background(), 20, 7)
	assert.ErrorIs(t, err, e.ErrStorage)
}

func TestForecastUseCase_LookbackFollowsCheckoutOrder(t *testing.T) {
	h := newHarness(sampleProducts()...)
	uc := NewForecastUC(h.products, h.orders)
	ctx := context.Background()

	// Корзина получает id раньше, чем заказ, но оформляется позже него.
	cart, err := h.order.OpenCart(ctx, nil)
	require.NoError(t, err)
	_, err = h.order.AddCartLine(ctx, cart.Order.ID, OrderLineReq{ProductID: 3, Qty: 1}, nil)
	require.NoError(t, err)

	placeOrders(t, h, []OrderLineReq{{ProductID: 2, Qty: 4}})

	_, err = h.order.CheckoutCart(ctx, cart.Order.ID)
	require.NoError(t, err)

	history, err := h.order.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, int64(2), history[0].OrderID)
	assert.Equal(t, cart.Order.ID, history[1].OrderID)

	items, err := uc.Reorder(ctx, 1, 7)
	require.NoError(t, err)

	demand := make(map[int64]float64, len(items))
	for _, item := range items {
		demand[item.ProductID] = item.EstimatedDailyDemand
	}
	assert.Equal(t, 1.0, demand[3])
	assert.Zero(t, demand[2])

	report, err := uc.LowStock(ctx, 1, 10)
	require.NoError(t, err)
	for _, item := range report.Results {
		if item.ProductID == 2 {
			assert.Zero(t, item.AvgSoldPerOrder)
		}
	}
}
