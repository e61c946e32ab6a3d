package converter

import (
	"github.com/DRSN-tech/inventory-service/internal/domain"
	"github.com/DRSN-tech/inventory-service/internal/usecase"
)

// ProductConverter преобразует Product между domain и моделью PostgreSQL.
type ProductConverter struct{}

func NewProductConverter() ProductConverter {
	return ProductConverter{}
}

func (ProductConverter) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		ID:       entity.ID,
		Name:     entity.Name,
		Category: entity.Category,
		Quantity: entity.Quantity,
		Price:    entity.Price,
		Supplier: entity.Supplier,
	}
}

func (ProductConverter) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		ID:       model.ID,
		Name:     model.Name,
		Category: model.Category,
		Quantity: model.Quantity,
		Price:    model.Price,
		Supplier: model.Supplier,
	}
}

func (c ProductConverter) ToArrEntity(models []ProductModel) []domain.Product {
	res := make([]domain.Product, 0, len(models))
	for i := range models {
		res = append(res, *c.ToEntity(&models[i]))
	}
	return res
}

// OrderConverter преобразует запись истории заказов между domain и моделями orders/order_items.
type OrderConverter struct{}

func NewOrderConverter() OrderConverter {
	return OrderConverter{}
}

func (OrderConverter) ToModel(entry *domain.OrderHistoryEntry) *OrderModel {
	items := make([]OrderItemModel, 0, len(entry.Items))
	for _, it := range entry.Items {
		items = append(items, OrderItemModel{
			OrderID:   entry.OrderID,
			ProductID: it.ProductID,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
		})
	}

	return &OrderModel{ID: entry.OrderID, Customer: entry.Customer, Items: items}
}

// ToEntity пересчитывает итог из позиций, а не читает его из таблицы.
func (OrderConverter) ToEntity(model *OrderModel) *domain.OrderHistoryEntry {
	items := make([]domain.HistoryItem, 0, len(model.Items))
	for _, it := range model.Items {
		items = append(items, domain.HistoryItem{ProductID: it.ProductID, Qty: it.Qty, UnitPrice: it.UnitPrice})
	}

	return domain.NewOrderHistoryEntry(model.ID, model.Customer, items)
}

// OutboxEventConverter преобразует OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter struct{}

func NewOutboxEventConverter() OutboxEventConverter {
	return OutboxEventConverter{}
}

func (OutboxEventConverter) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   string(entity.EventType),
		OrderID:     entity.OrderID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (OutboxEventConverter) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		OrderID:     model.OrderID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c OutboxEventConverter) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	res := make([]*usecase.OutboxEvent, 0, len(models))
	for _, m := range models {
		res = append(res, c.ToEntity(m))
	}
	return res
}
