package usecase

import (
	"context"
	"errors"

	"github.com/DRSN-tech/inventory-service/internal/domain"
	"github.com/DRSN-tech/inventory-service/pkg/e"
	"github.com/DRSN-tech/inventory-service/pkg/logger"
)

// Stock — то, что заказу нужно от каталога.
type Stock interface {
	Snapshot(ctx context.Context) (*domain.Catalog, error)
	DecrementStock(ctx context.Context, id int64, qty int64) (bool, error)
}

// OrderUseCase собирает заказы, списывает остатки и оформляет заказы в историю.
type OrderUseCase struct {
	stock      Stock
	orderRepo  OrderRepository
	cartRepo   CartRepository
	outboxRepo OutboxRepository
	encoder    EventEncoder
	txManager  TxManager
	logger     logger.Logger
}

func NewOrderUC(
	stock Stock,
	orderRepo OrderRepository,
	cartRepo CartRepository,
	outboxRepo OutboxRepository,
	encoder EventEncoder,
	txManager TxManager,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		stock:      stock,
		orderRepo:  orderRepo,
		cartRepo:   cartRepo,
		outboxRepo: outboxRepo,
		encoder:    encoder,
		txManager:  txManager,
		logger:     logger,
	}
}

// Open резервирует id и создаёт пустой заказ.
func (o *OrderUseCase) Open(ctx context.Context, customer *string) (*domain.Order, error) {
	const op = "OrderUseCase.Open"

	id, err := o.orderRepo.NextID(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return domain.NewOrder(id, customer), nil
}

// PlaceLine списывает qty со склада и добавляет позицию в заказ.
// Отсутствующий товар и нехватка остатка дают одну и ту же ошибку e.ErrLineNotPlaced.
func (o *OrderUseCase) PlaceLine(ctx context.Context, order *domain.Order, productID int64, qty int64, customer *string) error {
	const op = "OrderUseCase.PlaceLine"

	if err := order.CanPlace(qty); err != nil {
		return e.Wrap(op, err)
	}

	ok, err := o.stock.DecrementStock(ctx, productID, qty)
	if err != nil {
		return e.Wrap(op, err)
	}
	if !ok {
		return e.Wrap(op, e.ErrLineNotPlaced)
	}

	return order.AddLine(productID, qty, customer)
}

// Total считает сумму заказа по текущим ценам каталога.
func (o *OrderUseCase) Total(ctx context.Context, order *domain.Order) (float64, error) {
	const op = "OrderUseCase.Total"

	catalog, err := o.stock.Snapshot(ctx)
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	return order.Total(catalog), nil
}

// Checkout в одной транзакции сохраняет заказ с ценами на момент оформления
// и событие для outbox, после чего заказ становится неизменяемым.
func (o *OrderUseCase) Checkout(ctx context.Context, order *domain.Order) (*domain.OrderHistoryEntry, error) {
	const op = "OrderUseCase.Checkout"

	if order.IsCheckedOut() {
		return nil, e.Wrap(op, e.ErrOrderClosed)
	}

	var entry *domain.OrderHistoryEntry
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		catalog, err := o.stock.Snapshot(ctx)
		if err != nil {
			return err
		}

		entry = order.Snapshot(catalog)
		if err := o.orderRepo.Save(ctx, entry); err != nil {
			return err
		}

		payload, err := o.encoder.OrderCheckedOut(entry)
		if err != nil {
			return err
		}

		_, err = o.outboxRepo.Create(ctx, NewOutboxEvent(EventOrderCheckedOut, entry.OrderID, payload))
		return err
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := order.MarkCheckedOut(); err != nil {
		return nil, e.Wrap(op, err)
	}

	o.logger.Infof("order checked out: id=%d items=%d total=%v", entry.OrderID, len(entry.Items), entry.Total)
	return entry, nil
}

// PlaceOrder открывает заказ, по очереди размещает позиции и оформляет его.
// На первой неудачной позиции процесс останавливается; уже списанные остатки не возвращаются.
func (o *OrderUseCase) PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*PlaceOrderRes, error) {
	const op = "OrderUseCase.PlaceOrder"

	order, err := o.Open(ctx, req.Customer)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	for _, line := range req.Items {
		if err := o.PlaceLine(ctx, order, line.ProductID, line.Qty, req.Customer); err != nil {
			if errors.Is(err, e.ErrLineNotPlaced) {
				o.logger.Warnf("order %d: line product=%d qty=%d not placed", order.ID, line.ProductID, line.Qty)
			}
			return nil, e.Wrap(op, err)
		}
	}

	entry, err := o.Checkout(ctx, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewPlaceOrderRes(entry.OrderID, entry.Total, MsgCheckoutSuccess), nil
}

// History возвращает все оформленные заказы в порядке оформления.
func (o *OrderUseCase) History(ctx context.Context) ([]domain.OrderHistoryEntry, error) {
	const op = "OrderUseCase.History"

	history, err := o.orderRepo.ListHistory(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return history, nil
}

// Invoice рисует счёт по оформленному заказу на текущих ценах.
func (o *OrderUseCase) Invoice(ctx context.Context, orderID int64) (*domain.Invoice, error) {
	const op = "OrderUseCase.Invoice"

	entry, err := o.orderRepo.GetHistory(ctx, orderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	catalog, err := o.stock.Snapshot(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return domain.RenderInvoice(entry, catalog), nil
}

// OpenCart создаёт незакрытый заказ и сохраняет его между запросами.
func (o *OrderUseCase) OpenCart(ctx context.Context, customer *string) (*CartRes, error) {
	const op = "OrderUseCase.OpenCart"

	order, err := o.Open(ctx, customer)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := o.cartRepo.Save(ctx, order); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartRes(order, 0), nil
}

func (o *OrderUseCase) GetCart(ctx context.Context, id int64) (*CartRes, error) {
	const op = "OrderUseCase.GetCart"

	order, err := o.cartRepo.Get(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	total, err := o.Total(ctx, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartRes(order, total), nil
}

func (o *OrderUseCase) AddCartLine(ctx context.Context, id int64, line OrderLineReq, customer *string) (*CartRes, error) {
	const op = "OrderUseCase.AddCartLine"

	order, err := o.cartRepo.Get(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := o.PlaceLine(ctx, order, line.ProductID, line.Qty, customer); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := o.cartRepo.Save(ctx, order); err != nil {
		o.logger.Errorf(err, "order %d: stock for product %d already decremented but cart was not saved", order.ID, line.ProductID)
		return nil, e.Wrap(op, err)
	}

	total, err := o.Total(ctx, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartRes(order, total), nil
}

// CheckoutCart оформляет незакрытый заказ и удаляет его из хранилища корзин.
// Если удалить не вышло, корзина сохраняется в состоянии checked_out.
func (o *OrderUseCase) CheckoutCart(ctx context.Context, id int64) (*PlaceOrderRes, error) {
	const op = "OrderUseCase.CheckoutCart"

	order, err := o.cartRepo.Get(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	entry, err := o.Checkout(ctx, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := o.cartRepo.Delete(ctx, id); err != nil {
		o.logger.Warnf("order %d checked out but cart was not removed: %v", id, e.Wrap(op, err))
		// Неудалённая корзина остаётся в хранилище только закрытой.
		if err := o.cartRepo.Save(ctx, order); err != nil {
			o.logger.Errorf(e.Wrap(op, err), "order %d checked out but cart is still open", id)
		}
	}

	return NewPlaceOrderRes(entry.OrderID, entry.Total, MsgCheckoutSuccess), nil
}
