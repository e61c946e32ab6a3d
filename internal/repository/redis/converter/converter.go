package converter

import "github.com/DRSN-tech/inventory-service/internal/domain"

// CartConverter преобразует незакрытый заказ между domain и моделью Redis.
type CartConverter struct{}

func NewCartConverter() CartConverter {
	return CartConverter{}
}

func (CartConverter) ToRedisModel(order *domain.Order) *CartRedisModel {
	items := make([]CartLineRedisModel, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, CartLineRedisModel{ProductID: it.ProductID, Qty: it.Qty})
	}

	return &CartRedisModel{
		ID:       order.ID,
		Customer: order.Customer,
		Status:   string(order.Status),
		Items:    items,
	}
}

func (CartConverter) ToDomain(model *CartRedisModel) *domain.Order {
	items := make([]domain.LineItem, 0, len(model.Items))
	for _, it := range model.Items {
		items = append(items, domain.LineItem{ProductID: it.ProductID, Qty: it.Qty})
	}

	return &domain.Order{
		ID:       model.ID,
		Items:    items,
		Customer: model.Customer,
		Status:   domain.OrderStatus(model.Status),
	}
}
