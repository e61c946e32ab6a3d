package domain

import (
	"github.com/DRSN-tech/inventory-service/pkg/e"
	"github.com/shopspring/decimal"
)

// OrderStatus — состояние заказа: open → placing → checked_out.
type OrderStatus string

const (
	OrderOpen       OrderStatus = "open"
	OrderPlacing    OrderStatus = "placing"
	OrderCheckedOut OrderStatus = "checked_out"
)

// LineItem — позиция заказа (товар, количество).
type LineItem struct {
	ProductID int64
	Qty       int64
}

// Order — собираемый заказ. После checkout он неизменяем.
type Order struct {
	ID       int64
	Items    []LineItem
	Customer *string
	Status   OrderStatus
}

func NewOrder(id int64, customer *string) *Order {
	o := &Order{ID: id, Items: make([]LineItem, 0), Status: OrderOpen}
	o.setCustomer(customer)
	return o
}

// CanPlace проверяет, можно ли добавить позицию, до списания остатка.
func (o *Order) CanPlace(qty int64) error {
	if qty <= 0 {
		return e.ErrInvalidOrderQuantity
	}
	if o.Status == OrderCheckedOut {
		return e.ErrOrderClosed
	}
	return nil
}

// AddLine добавляет позицию. Остаток к этому моменту уже должен быть списан.
func (o *Order) AddLine(productID int64, qty int64, customer *string) error {
	if err := o.CanPlace(qty); err != nil {
		return err
	}

	o.Items = append(o.Items, LineItem{ProductID: productID, Qty: qty})
	o.setCustomer(customer)
	o.Status = OrderPlacing
	return nil
}

// Total считает сумму по текущим ценам каталога. Удалённые товары не учитываются.
func (o *Order) Total(c *Catalog) float64 {
	total := decimal.Zero
	for _, it := range o.Items {
		if p, ok := c.Find(it.ProductID); ok {
			total = total.Add(LineTotal(p.Price, it.Qty))
		}
	}
	return total.InexactFloat64()
}

// Snapshot фиксирует позиции заказа с ценами на момент checkout.
// Товар, которого уже нет в каталоге, записывается с ценой 0.
func (o *Order) Snapshot(c *Catalog) *OrderHistoryEntry {
	items := make([]HistoryItem, 0, len(o.Items))
	for _, it := range o.Items {
		var price float64
		if p, ok := c.Find(it.ProductID); ok {
			price = p.Price
		}
		items = append(items, HistoryItem{ProductID: it.ProductID, Qty: it.Qty, UnitPrice: price})
	}

	return NewOrderHistoryEntry(o.ID, o.Customer, items)
}

// MarkCheckedOut переводит заказ в терминальное состояние.
func (o *Order) MarkCheckedOut() error {
	if o.Status == OrderCheckedOut {
		return e.ErrOrderClosed
	}
	o.Status = OrderCheckedOut
	return nil
}

func (o *Order) IsCheckedOut() bool {
	return o.Status == OrderCheckedOut
}

func (o *Order) setCustomer(customer *string) {
	if customer != nil && *customer != "" {
		c := *customer
		o.Customer = &c
	}
}

// LineTotal возвращает price*qty без накопления ошибки float64.
func LineTotal(price float64, qty int64) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(qty))
}
