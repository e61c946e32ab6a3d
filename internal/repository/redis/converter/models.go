package converter

// CartLineRedisModel — позиция незакрытого заказа.
type CartLineRedisModel struct {
	ProductID int64 `json:"product_id"`
	Qty       int64 `json:"qty"`
}

// CartRedisModel — незакрытый заказ в том виде, в каком он лежит в Redis.
type CartRedisModel struct {
	ID       int64                `json:"id"`
	Customer *string              `json:"customer,omitempty"`
	Status   string               `json:"status"`
	Items    []CartLineRedisModel `json:"items"`
}
