// Package forecast содержит эвристики прогноза остатков по истории заказов.
//
// Это не статистическая модель: число заказов в день принято равным 1,
// а знаменатели у двух эвристик разные (заказы, содержащие товар, против N).
package forecast

import (
	"math"
	"sort"

	"github.com/DRSN-tech/inventory-service/internal/domain"
)

const (
	NoteOK            = "ok"
	NoteNotEnoughData = "not enough data"

	ordersPerDay = 1
)

// LowStockItem — прогноз по одному товару с низким остатком.
type LowStockItem struct {
	ProductID           int64
	ProductName         string
	QtyLeft             int64
	LookbackOrders      int
	AvgSoldPerOrder     float64
	EstimatedOrdersLeft *float64 // nil, если продаж не было
	Note                string
}

type LowStockReport struct {
	Threshold int64
	Results   []LowStockItem
}

// ReorderItem — рекомендация по дозакупке одного товара.
type ReorderItem struct {
	ProductID             int64
	ProductName           string
	QtyLeft               int64
	LookbackOrders        int
	TargetDays            int
	EstimatedDailyDemand  float64
	RecommendedReorderQty int64
}

// Recent возвращает последние lookback записей истории; lookback <= 0 — вся история.
func Recent(history []domain.OrderHistoryEntry, lookback int) []domain.OrderHistoryEntry {
	if lookback <= 0 || lookback >= len(history) {
		return history
	}
	return history[len(history)-lookback:]
}

// LowStock для каждого товара с остатком <= threshold считает среднее количество,
// продаваемое за заказ среди заказов с этим товаром, и сколько таких заказов остаток ещё выдержит.
func LowStock(products []domain.Product, history []domain.OrderHistoryEntry, lookback int, threshold int64) *LowStockReport {
	sold := make(map[int64]int64)
	hits := make(map[int64]int64)

	for _, o := range Recent(history, lookback) {
		seen := make(map[int64]struct{}, len(o.Items))
		for _, it := range o.Items {
			sold[it.ProductID] += it.Qty
			if _, ok := seen[it.ProductID]; !ok {
				hits[it.ProductID]++
				seen[it.ProductID] = struct{}{}
			}
		}
	}

	results := make([]LowStockItem, 0)
	for _, p := range products {
		if p.Quantity > threshold {
			continue
		}

		var avg float64
		if h := hits[p.ID]; h > 0 {
			avg = float64(sold[p.ID]) / float64(h)
		}

		item := LowStockItem{
			ProductID:       p.ID,
			ProductName:     p.Name,
			QtyLeft:         p.Quantity,
			LookbackOrders:  lookback,
			AvgSoldPerOrder: round2(avg),
			Note:            NoteNotEnoughData,
		}
		if avg > 0 {
			left := round2(float64(p.Quantity) / avg)
			item.EstimatedOrdersLeft = &left
			item.Note = NoteOK
		}

		results = append(results, item)
	}

	return &LowStockReport{Threshold: threshold, Results: results}
}

// Reorder считает среднее продаж на заказ по последним lookback заказам (делитель — lookback),
// проецирует на targetDays и рекомендует max(0, round(need - остаток)).
// Результат отсортирован по рекомендованному количеству по убыванию.
func Reorder(products []domain.Product, history []domain.OrderHistoryEntry, lookback int, targetDays int) []ReorderItem {
	sold := make(map[int64]int64)
	for _, o := range Recent(history, lookback) {
		for _, it := range o.Items {
			sold[it.ProductID] += it.Qty
		}
	}

	results := make([]ReorderItem, 0, len(products))
	for _, p := range products {
		var avg float64
		if lookback > 0 {
			avg = float64(sold[p.ID]) / float64(lookback)
		}

		daily := avg * ordersPerDay
		need := daily * float64(targetDays)
		qty := int64(math.RoundToEven(need - float64(p.Quantity)))
		if qty < 0 {
			qty = 0
		}

		results = append(results, ReorderItem{
			ProductID:             p.ID,
			ProductName:           p.Name,
			QtyLeft:               p.Quantity,
			LookbackOrders:        lookback,
			TargetDays:            targetDays,
			EstimatedDailyDemand:  round2(daily),
			RecommendedReorderQty: qty,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RecommendedReorderQty > results[j].RecommendedReorderQty
	})

	return results
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
