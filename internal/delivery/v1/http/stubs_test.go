package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DRSN-tech/inventory-service/internal/cfg"
	"github.com/DRSN-tech/inventory-service/internal/domain"
	"github.com/DRSN-tech/inventory-service/internal/forecast"
	"github.com/DRSN-tech/inventory-service/internal/usecase"
	"github.com/DRSN-tech/inventory-service/pkg/e"
	"github.com/DRSN-tech/inventory-service/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type stubCatalog struct {
	products []domain.Product
	addReq   *usecase.AddProductReq
	patch    domain.ProductPatch
	err      error
	lowThr   int64
}

func (s *stubCatalog) List(context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubCatalog) Find(_ context.Context, id int64) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, e.ErrProductNotFound
}

func (s *stubCatalog) Add(_ context.Context, req *usecase.AddProductReq) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.addReq = req
	p := domain.NewProduct(req.Name, req.Category, req.Quantity, req.Price, req.Supplier)
	p.ID = int64(len(s.products) + 1)
	return p, nil
}

func (s *stubCatalog) Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	s.patch = patch
	p, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.Apply(patch); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *stubCatalog) Delete(ctx context.Context, id int64) error {
	_, err := s.Find(ctx, id)
	return err
}

func (s *stubCatalog) LowStock(_ context.Context, threshold int64) ([]domain.Product, error) {
	s.lowThr = threshold
	var res []domain.Product
	for _, p := range s.products {
		if p.Quantity <= threshold {
			res = append(res, p)
		}
	}
	return res, s.err
}

type stubOrders struct {
	placeReq *usecase.PlaceOrderReq
	placeRes *usecase.PlaceOrderRes
	history  []domain.OrderHistoryEntry
	invoice  *domain.Invoice
	cart     *usecase.CartRes
	line     usecase.OrderLineReq
	err      error
}

func (s *stubOrders) PlaceOrder(_ context.Context, req *usecase.PlaceOrderReq) (*usecase.PlaceOrderRes, error) {
	s.placeReq = req
	return s.placeRes, s.err
}

func (s *stubOrders) History(context.Context) ([]domain.OrderHistoryEntry, error) {
	return s.history, s.err
}

func (s *stubOrders) Invoice(context.Context, int64) (*domain.Invoice, error) {
	return s.invoice, s.err
}

func (s *stubOrders) OpenCart(_ context.Context, customer *string) (*usecase.CartRes, error) {
	if s.err != nil {
		return nil, s.err
	}
	return usecase.NewCartRes(domain.NewOrder(7, customer), 0), nil
}

func (s *stubOrders) GetCart(context.Context, int64) (*usecase.CartRes, error) {
	return s.cart, s.err
}

func (s *stubOrders) AddCartLine(_ context.Context, _ int64, line usecase.OrderLineReq, _ *string) (*usecase.CartRes, error) {
	s.line = line
	return s.cart, s.err
}

func (s *stubOrders) CheckoutCart(context.Context, int64) (*usecase.PlaceOrderRes, error) {
	return s.placeRes, s.err
}

type stubForecast struct {
	lookback  int
	threshold int64
	days      int
	report    *forecast.LowStockReport
	reorder   []forecast.ReorderItem
	err       error
}

func (s *stubForecast) LowStock(_ context.Context, lookback int, threshold int64) (*forecast.LowStockReport, error) {
	s.lookback, s.threshold = lookback, threshold
	return s.report, s.err
}

func (s *stubForecast) Reorder(_ context.Context, lookback int, targetDays int) ([]forecast.ReorderItem, error) {
	s.lookback, s.days = lookback, targetDays
	return s.reorder, s.err
}

type stubReports struct {
	data []byte
	key  string
	err  error
}

func (s *stubReports) Build(context.Context, domain.ReportKind) ([]byte, error) {
	return s.data, s.err
}

func (s *stubReports) Export(_ context.Context, kind domain.ReportKind) (*usecase.ExportReportRes, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &usecase.ExportReportRes{Key: s.key + string(kind), Size: int64(len(s.data))}, nil
}

type testAPI struct {
	catalog  *stubCatalog
	orders   *stubOrders
	forecast *stubForecast
	reports  *stubReports
	handler  http.Handler
}

func testForecastCfg() *cfg.ForecastCfg {
	return &cfg.ForecastCfg{
		LowStockLookback: 10,
		LowStockThresh:   2,
		ReorderLookback:  20,
		ReorderDays:      7,
		AlertThreshold:   3,
	}
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	api := &testAPI{
		catalog: &stubCatalog{products: []domain.Product{
			{ID: 1, Name: "Coke", Category: "Drinks", Quantity: 3, Price: 1.2, Supplier: "CC"},
			{ID: 2, Name: "Milk", Category: "Dairy", Quantity: 10, Price: 2.5, Supplier: "Farm"},
		}},
		orders:   &stubOrders{},
		forecast: &stubForecast{},
		reports:  &stubReports{},
	}

	r := chi.NewRouter()
	NewRouter(r, logger.Nop()).Init(UseCases{
		Catalog:  api.catalog,
		Order:    api.orders,
		Forecast: api.forecast,
		Report:   api.reports,
	}, testForecastCfg())
	api.handler = r

	return api
}

func (a *testAPI) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}
