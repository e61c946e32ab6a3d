package usecase

import (
	"context"

	"github.com/DRSN-tech/inventory-service/internal/domain"
)

// ProductRepository отдаёт свежие снимки таблицы товаров; кэша между вызовами нет.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// Update меняет только заданные поля патча одним запросом и возвращает товар после изменения.
	Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	// DecrementStock одним запросом уменьшает остаток на qty, только если остаток >= qty.
	DecrementStock(ctx context.Context, id int64, qty int64) (bool, error)
}

type OrderRepository interface {
	NextID(ctx context.Context) (int64, error)
	Save(ctx context.Context, entry *domain.OrderHistoryEntry) error
	ListHistory(ctx context.Context) ([]domain.OrderHistoryEntry, error)
	GetHistory(ctx context.Context, orderID int64) (*domain.OrderHistoryEntry, error)
}

// CartRepository хранит незакрытые заказы между запросами.
type CartRepository interface {
	Save(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, id int64) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type ReportRepository interface {
	Upload(ctx context.Context, report *domain.Report) (string, error)
	Delete(ctx context.Context, key string) error
}

// TxManager выполняет fn в одной транзакции хранилища.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
