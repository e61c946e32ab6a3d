package pgdb

import (
	"context"

	"github.com/DRSN-tech/inventory-service/internal/domain"
	"github.com/DRSN-tech/inventory-service/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/inventory-service/pkg/e"
	"github.com/DRSN-tech/inventory-service/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OrderRepo хранит историю оформленных заказов в таблицах orders и order_items.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{pool: pool, conv: conv}
}

// NextID резервирует id заказа из последовательности. Id не переиспользуются,
// даже если заказ так и не был оформлен.
func (o *OrderRepo) NextID(ctx context.Context) (int64, error) {
	var id int64
	if err := o.pool.QueryRow(ctx, "SELECT nextval('orders_id_seq')").Scan(&id); err != nil {
		return 0, e.Storage(whereami.WhereAmI(), err)
	}

	return id, nil
}

// Save записывает заголовок заказа и его позиции. Должен вызываться внутри транзакции.
func (o *OrderRepo) Save(ctx context.Context, entry *domain.OrderHistoryEntry) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	model := o.conv.ToModel(entry)

	if _, err := tx.Exec(ctx,
		"INSERT INTO orders (id, customer) VALUES ($1, $2)",
		model.ID, model.Customer,
	); err != nil {
		return e.Storage(whereami.WhereAmI(), err)
	}

	if len(model.Items) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(model.Items))
	for i, it := range model.Items {
		rows = append(rows, []any{it.OrderID, i + 1, it.ProductID, it.Qty, it.UnitPrice})
	}

	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"order_items"},
		[]string{"order_id", "line_no", "product_id", "qty", "unit_price"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return e.Storage(whereami.WhereAmI(), err)
	}

	return nil
}

// ListHistory возвращает все заказы в порядке оформления (checked_out_at, затем id)
// с позициями в порядке добавления. Корзина получает id при открытии, поэтому id не задаёт порядок оформления.
func (o *OrderRepo) ListHistory(ctx context.Context) ([]domain.OrderHistoryEntry, error) {
	q := tr.QuerierFromCtx(ctx, o.pool)

	query := `
		SELECT o.id, o.customer, o.checked_out_at, i.product_id, i.qty, i.unit_price
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		ORDER BY o.checked_out_at, o.id, i.line_no
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, e.Storage(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}

	res := make([]domain.OrderHistoryEntry, 0, len(models))
	for _, m := range models {
		res = append(res, *o.conv.ToEntity(m))
	}

	return res, nil
}

func (o *OrderRepo) GetHistory(ctx context.Context, orderID int64) (*domain.OrderHistoryEntry, error) {
	q := tr.QuerierFromCtx(ctx, o.pool)

	query := `
		SELECT o.id, o.customer, o.checked_out_at, i.product_id, i.qty, i.unit_price
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.id = $1
		ORDER BY i.line_no
	`

	rows, err := q.Query(ctx, query, orderID)
	if err != nil {
		return nil, e.Storage(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
	}

	return o.conv.ToEntity(models[0]), nil
}

// scanOrders сворачивает строки LEFT JOIN в заказы. Строки должны идти сгруппированными по id заказа.
func scanOrders(rows pgx.Rows) ([]*converter.OrderModel, error) {
	models := make([]*converter.OrderModel, 0)
	var current *converter.OrderModel

	for rows.Next() {
		var (
			header    converter.OrderModel
			productID *int64
			qty       *int64
			unitPrice *float64
		)
		if err := rows.Scan(&header.ID, &header.Customer, &header.CheckedOut, &productID, &qty, &unitPrice); err != nil {
			return nil, e.Storage(whereami.WhereAmI(), err)
		}

		if current == nil || current.ID != header.ID {
			header.Items = make([]converter.OrderItemModel, 0)
			current = &header
			models = append(models, current)
		}

		if productID == nil {
			continue
		}
		current.Items = append(current.Items, converter.OrderItemModel{
			OrderID:   current.ID,
			ProductID: *productID,
			Qty:       *qty,
			UnitPrice: *unitPrice,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, e.Storage(whereami.WhereAmI(), err)
	}

	return models, nil
}
