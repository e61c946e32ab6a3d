package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"

	"github.com/DRSN-tech/inventory-service/internal/domain"
	"github.com/DRSN-tech/inventory-service/pkg/e"
	"github.com/DRSN-tech/inventory-service/pkg/logger"
)

var errBoom = errors.New("boom")

func ptr[T any](v T) *T { return &v }

type memProductRepo struct {
	mu       sync.Mutex
	products map[int64]domain.Product
	listErr  error
}

func newMemProductRepo(products ...domain.Product) *memProductRepo {
	r := &memProductRepo{products: make(map[int64]domain.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *memProductRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listErr != nil {
		return nil, e.Storage("list products", r.listErr)
	}

	res := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (r *memProductRepo) Get(_ context.Context, id int64) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	return &p, nil
}

func (r *memProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID int64
	for id := range r.products {
		if id > maxID {
			maxID = id
		}
	}

	created := *product
	created.ID = maxID + 1
	r.products[created.ID] = created
	return &created, nil
}

func (r *memProductRepo) Update(_ context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	if err := p.Apply(patch); err != nil {
		return nil, err
	}
	r.products[id] = p
	return &p, nil
}

func (r *memProductRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return e.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) DecrementStock(_ context.Context, id int64, qty int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok || p.Quantity < qty {
		return false, nil
	}
	p.Quantity -= qty
	r.products[id] = p
	return true, nil
}

func (r *memProductRepo) quantity(id int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.products[id].Quantity
}

type memOrderRepo struct {
	mu      sync.Mutex
	seq     int64
	entries []domain.OrderHistoryEntry
	saveErr error
}

func (r *memOrderRepo) NextID(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq, nil
}

func (r *memOrderRepo) Save(_ context.Context, entry *domain.OrderHistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saveErr != nil {
		return e.Storage("save order", r.saveErr)
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memOrderRepo) ListHistory(_ context.Context) ([]domain.OrderHistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// entries дописываются при оформлении, то есть уже идут в порядке checked_out_at.
	res := make([]domain.OrderHistoryEntry, len(r.entries))
	copy(res, r.entries)
	return res, nil
}

func (r *memOrderRepo) GetHistory(_ context.Context, orderID int64) (*domain.OrderHistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range r.entries {
		if entry.OrderID == orderID {
			return &entry, nil
		}
	}
	return nil, e.ErrOrderNotFound
}

// memCartRepo хранит корзины в JSON, как и Redis, чтобы тесты не делили указатели с usecase.
type memCartRepo struct {
	mu        sync.Mutex
	carts     map[int64][]byte
	deleteErr error
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: make(map[int64][]byte)}
}

func (r *memCartRepo) Save(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(order)
	if err != nil {
		return err
	}
	r.carts[order.ID] = data
	return nil
}

func (r *memCartRepo) Get(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, ok := r.carts[id]
	if !ok {
		return nil, e.ErrCartNotFound
	}

	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *memCartRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.deleteErr != nil {
		return e.Storage("delete cart", r.deleteErr)
	}
	delete(r.carts, id)
	return nil
}

type memOutboxRepo struct {
	mu     sync.Mutex
	events []*OutboxEvent
}

func (r *memOutboxRepo) Create(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event.ID = int64(len(r.events) + 1)
	r.events = append(r.events, event)
	return event, nil
}

func (r *memOutboxRepo) GetAndMarkAsProcessing(_ context.Context, limit int) ([]*OutboxEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]*OutboxEvent, 0, limit)
	for _, ev := range r.events {
		if len(res) == limit {
			break
		}
		if ev.Status == Pending {
			ev.Status = Processing
			res = append(res, ev)
		}
	}
	return res, nil
}

func (r *memOutboxRepo) MarkAsProcessed(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ev := range r.events {
		if ev.ID == id {
			ev.Status = Processed
			return nil
		}
	}
	return e.ErrNotFound
}

type jsonEncoder struct{}

func (jsonEncoder) OrderCheckedOut(entry *domain.OrderHistoryEntry) ([]byte, error) {
	return json.Marshal(entry)
}

// inlineTx эмулирует транзакцию: при ошибке fn восстанавливает историю заказов и outbox.
type inlineTx struct {
	orders *memOrderRepo
	outbox *memOutboxRepo
}

func (t inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	t.orders.mu.Lock()
	orders := len(t.orders.entries)
	t.orders.mu.Unlock()
	t.outbox.mu.Lock()
	events := len(t.outbox.events)
	t.outbox.mu.Unlock()

	if err := fn(ctx); err != nil {
		t.orders.mu.Lock()
		t.orders.entries = t.orders.entries[:orders]
		t.orders.mu.Unlock()
		t.outbox.mu.Lock()
		t.outbox.events = t.outbox.events[:events]
		t.outbox.mu.Unlock()
		return err
	}
	return nil
}

type memReportStorage struct {
	uploads []*UploadReportReq
	err     error
}

func (s *memReportStorage) UploadReport(_ context.Context, req *UploadReportReq) (*UploadReportRes, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.uploads = append(s.uploads, req)
	return NewUploadReportRes("reports/" + string(req.Kind) + "/test.csv"), nil
}

type harness struct {
	products *memProductRepo
	orders   *memOrderRepo
	carts    *memCartRepo
	outbox   *memOutboxRepo
	catalog  *CatalogUseCase
	order    *OrderUseCase
}

func newHarness(products ...domain.Product) *harness {
	h := &harness{
		products: newMemProductRepo(products...),
		orders:   &memOrderRepo{},
		carts:    newMemCartRepo(),
		outbox:   &memOutboxRepo{},
	}
	log := logger.Nop()
	h.catalog = NewCatalogUC(h.products, log)
	h.order = NewOrderUC(h.catalog, h.orders, h.carts, h.outbox, jsonEncoder{}, inlineTx{orders: h.orders, outbox: h.outbox}, log)
	return h
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Coke", Category: "Drink", Quantity: 3, Price: 1.2, Supplier: "Supplier C"},
		{ID: 2, Name: "Milk", Category: "Dairy", Quantity: 10, Price: 2.5, Supplier: "Supplier A"},
		{ID: 3, Name: "Bread", Category: "Bakery", Quantity: 5, Price: 1.8, Supplier: "Supplier B"},
	}
}
