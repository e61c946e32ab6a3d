package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Category  string     `db:"category"`
	Quantity  int64      `db:"quantity"`
	Price     float64    `db:"price"`
	Supplier  string     `db:"supplier"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// OrderModel представляет запись таблицы orders.
type OrderModel struct {
	ID         int64     `db:"id"`
	Customer   *string   `db:"customer"`
	CheckedOut time.Time `db:"checked_out_at"`
	Items      []OrderItemModel
}

// OrderItemModel представляет запись таблицы order_items.
type OrderItemModel struct {
	OrderID   int64   `db:"order_id"`
	ProductID int64   `db:"product_id"`
	Qty       int64   `db:"qty"`
	UnitPrice float64 `db:"unit_price"`
}

// OutboxEventModel представляет запись таблицы outbox_events.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	OrderID     int64      `db:"order_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
