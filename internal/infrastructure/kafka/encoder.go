package kafka

import (
	"time"

	"github.com/DRSN-tech/inventory-service/internal/domain"
	"github.com/DRSN-tech/inventory-service/pkg/e"
	"github.com/jimlawless/whereami"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// EventEncoder сериализует события заказов в protobuf google.protobuf.Struct,
// который потребители читают без сгенерированных схем.
type EventEncoder struct {
	now func() time.Time
}

func NewEventEncoder() *EventEncoder {
	return &EventEncoder{now: time.Now}
}

func (enc *EventEncoder) OrderCheckedOut(entry *domain.OrderHistoryEntry) ([]byte, error) {
	items := make([]any, 0, len(entry.Items))
	for _, it := range entry.Items {
		items = append(items, map[string]any{
			"product_id": it.ProductID,
			"qty":        it.Qty,
			"unit_price": it.UnitPrice,
		})
	}

	var customer any
	if entry.Customer != nil {
		customer = *entry.Customer
	}

	payload, err := structpb.NewStruct(map[string]any{
		"order_id":       entry.OrderID,
		"customer":       customer,
		"items":          items,
		"total":          entry.Total,
		"checked_out_at": enc.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	data, err := proto.Marshal(payload)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, nil
}
