package forecast

import (
	"testing"

	"github.com/DRSN-tech/inventory-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id int64, items ...domain.HistoryItem) domain.OrderHistoryEntry {
	return *domain.NewOrderHistoryEntry(id, nil, items)
}

func item(productID, qty int64) domain.HistoryItem {
	return domain.HistoryItem{ProductID: productID, Qty: qty, UnitPrice: 1}
}

func TestRecent(t *testing.T) {
	h := []domain.OrderHistoryEntry{entry(1), entry(2), entry(3)}

	assert.Len(t, Recent(h, 0), 3)
	assert.Len(t, Recent(h, -1), 3)
	assert.Len(t, Recent(h, 10), 3)

	last := Recent(h, 2)
	require.Len(t, last, 2)
	assert.Equal(t, int64(2), last[0].OrderID)
	assert.Equal(t, int64(3), last[1].OrderID)
}

func TestLowStock_AverageOverOrdersContainingProduct(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Name: "Coke", Quantity: 2},
		{ID: 2, Name: "Milk", Quantity: 50},
		{ID: 3, Name: "Bread", Quantity: 1},
	}

	// 10 заказов, Coke продана 4 шт. в двух из них
	history := make([]domain.OrderHistoryEntry, 0, 10)
	history = append(history, entry(1, item(1, 1), item(1, 2)), entry(2, item(1, 1)))
	for i := int64(3); i <= 10; i++ {
		history = append(history, entry(i, item(2, 1)))
	}

	rep := LowStock(products, history, 10, 2)
	assert.Equal(t, int64(2), rep.Threshold)
	require.Len(t, rep.Results, 2)

	coke := rep.Results[0]
	assert.Equal(t, int64(1), coke.ProductID)
	assert.Equal(t, 2.0, coke.AvgSoldPerOrder)
	require.NotNil(t, coke.EstimatedOrdersLeft)
	assert.Equal(t, 1.0, *coke.EstimatedOrdersLeft)
	assert.Equal(t, NoteOK, coke.Note)
	assert.Equal(t, 10, coke.LookbackOrders)

	bread := rep.Results[1]
	assert.Equal(t, 0.0, bread.AvgSoldPerOrder)
	assert.Nil(t, bread.EstimatedOrdersLeft)
	assert.Equal(t, NoteNotEnoughData, bread.Note)
}

func TestLowStock_LookbackExcludesOlderOrders(t *testing.T) {
	products := []domain.Product{{ID: 1, Name: "Coke", Quantity: 1}}
	history := []domain.OrderHistoryEntry{entry(1, item(1, 5)), entry(2), entry(3)}

	rep := LowStock(products, history, 2, 2)
	require.Len(t, rep.Results, 1)
	assert.Equal(t, NoteNotEnoughData, rep.Results[0].Note)
}

func TestLowStock_RoundsToTwoDecimals(t *testing.T) {
	products := []domain.Product{{ID: 1, Name: "Coke", Quantity: 2}}
	history := []domain.OrderHistoryEntry{entry(1, item(1, 1)), entry(2, item(1, 1)), entry(3, item(1, 2))}

	rep := LowStock(products, history, 0, 5)
	require.Len(t, rep.Results, 1)
	assert.Equal(t, 1.33, rep.Results[0].AvgSoldPerOrder)
	assert.Equal(t, 1.5, *rep.Results[0].EstimatedOrdersLeft)
}

func TestReorder_DenominatorIsLookbackAndSortedDesc(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Name: "Milk", Quantity: 10},
		{ID: 2, Name: "Bread", Quantity: 0},
		{ID: 3, Name: "Coke", Quantity: 1},
	}
	history := []domain.OrderHistoryEntry{
		entry(1, item(2, 4), item(3, 2)),
		entry(2, item(2, 6)),
	}

	res := Reorder(products, history, 4, 7)
	require.Len(t, res, 3)

	// Bread: 10/4 = 2.5 в день, 17.5 на 7 дней → 18 (round half to even)
	assert.Equal(t, int64(2), res[0].ProductID)
	assert.Equal(t, 2.5, res[0].EstimatedDailyDemand)
	assert.Equal(t, int64(18), res[0].RecommendedReorderQty)

	// Coke: 2/4 = 0.5 в день, 3.5 - 1 = 2.5 → 2
	assert.Equal(t, int64(3), res[1].ProductID)
	assert.Equal(t, int64(2), res[1].RecommendedReorderQty)

	// Milk: продаж нет
	assert.Equal(t, int64(1), res[2].ProductID)
	assert.Equal(t, int64(0), res[2].RecommendedReorderQty)
	assert.Equal(t, 7, res[2].TargetDays)
	assert.Equal(t, 4, res[2].LookbackOrders)
}

func TestReorder_NonPositiveLookbackGivesZeroDemand(t *testing.T) {
	products := []domain.Product{{ID: 1, Name: "Milk", Quantity: 0}}
	history := []domain.OrderHistoryEntry{entry(1, item(1, 100))}

	res := Reorder(products, history, 0, 7)
	require.Len(t, res, 1)
	assert.Equal(t, 0.0, res[0].EstimatedDailyDemand)
	assert.Equal(t, int64(0), res[0].RecommendedReorderQty)
}

func TestReorder_StableForTies(t *testing.T) {
	products := []domain.Product{
		{ID: 5, Name: "A", Quantity: 3},
		{ID: 6, Name: "B", Quantity: 4},
	}

	res := Reorder(products, nil, 10, 7)
	require.Len(t, res, 2)
	assert.Equal(t, int64(5), res[0].ProductID)
	assert.Equal(t, int64(6), res[1].ProductID)
}
