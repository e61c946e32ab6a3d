package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// HistoryItem — позиция оформленного заказа с ценой на момент checkout.
type HistoryItem struct {
	ProductID int64
	Qty       int64
	UnitPrice float64
}

// OrderHistoryEntry — снимок заказа, сделанный при checkout.
type OrderHistoryEntry struct {
	OrderID  int64
	Customer *string
	Items    []HistoryItem
	Total    float64
}

// NewOrderHistoryEntry собирает запись истории; Total = Σ unit_price × qty.
func NewOrderHistoryEntry(orderID int64, customer *string, items []HistoryItem) *OrderHistoryEntry {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(LineTotal(it.UnitPrice, it.Qty))
	}

	return &OrderHistoryEntry{
		OrderID:  orderID,
		Customer: customer,
		Items:    items,
		Total:    total.InexactFloat64(),
	}
}

// InvoiceLine — строка счёта.
type InvoiceLine struct {
	ProductID int64
	Name      string
	Qty       int64
	Price     float64
	Subtotal  float64
}

// Invoice — счёт по оформленному заказу, отрисованный по текущему каталогу.
type Invoice struct {
	OrderID  int64
	Customer *string
	Lines    []InvoiceLine
	Total    float64
}

// PlaceholderName — имя, под которым в отчётах показывается удалённый товар.
func PlaceholderName(productID int64) string {
	return fmt.Sprintf("Product#%d", productID)
}

// RenderInvoice строит счёт по текущим ценам. Удалённый после оформления товар
// попадает в счёт с именем-заглушкой и нулевой ценой.
func RenderInvoice(entry *OrderHistoryEntry, c *Catalog) *Invoice {
	lines := make([]InvoiceLine, 0, len(entry.Items))
	grand := decimal.Zero
	for _, it := range entry.Items {
		name := PlaceholderName(it.ProductID)
		var price float64
		if p, ok := c.Find(it.ProductID); ok {
			name = p.Name
			price = p.Price
		}

		sub := LineTotal(price, it.Qty)
		grand = grand.Add(sub)
		lines = append(lines, InvoiceLine{
			ProductID: it.ProductID,
			Name:      name,
			Qty:       it.Qty,
			Price:     price,
			Subtotal:  sub.InexactFloat64(),
		})
	}

	return &Invoice{
		OrderID:  entry.OrderID,
		Customer: entry.Customer,
		Lines:    lines,
		Total:    grand.InexactFloat64(),
	}
}
