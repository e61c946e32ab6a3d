package http

import (
	"encoding/json"

	"github.com/DRSN-tech/inventory-service/internal/domain"
	"github.com/DRSN-tech/inventory-service/internal/forecast"
	"github.com/DRSN-tech/inventory-service/internal/usecase"
	"github.com/DRSN-tech/inventory-service/pkg/e"
)

// PRODUCTS

type ProductDTO struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Price    float64 `json:"price"`
	Supplier string  `json:"supplier"`
}

type CreateProductRequest struct {
	Name     *string      `json:"name"`
	Category *string      `json:"category"`
	Quantity *int64       `json:"quantity"`
	Price    *json.Number `json:"price"`
	Supplier *string      `json:"supplier"`
}

type UpdateProductRequest struct {
	Quantity *int64       `json:"quantity"`
	Price    *json.Number `json:"price"`
	Supplier *string      `json:"supplier"`
}

type MessageResponse struct {
	OK      bool        `json:"ok"`
	Message string      `json:"message"`
	Product *ProductDTO `json:"product,omitempty"`
}

func toProductDTO(p *domain.Product) *ProductDTO {
	return &ProductDTO{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Quantity: p.Quantity,
		Price:    p.Price,
		Supplier: p.Supplier,
	}
}

func toProductDTOs(products []domain.Product) []ProductDTO {
	res := make([]ProductDTO, 0, len(products))
	for i := range products {
		res = append(res, *toProductDTO(&products[i]))
	}
	return res
}

func (req *CreateProductRequest) toUseCase() (*usecase.AddProductReq, error) {
	if req.Name == nil || req.Category == nil || req.Quantity == nil || req.Price == nil || req.Supplier == nil {
		return nil, e.ErrMissingFields
	}

	price, err := parsePrice(*req.Price)
	if err != nil {
		return nil, err
	}

	return usecase.NewAddProductReq(*req.Name, *req.Category, *req.Quantity, price, *req.Supplier), nil
}

func (req *UpdateProductRequest) toPatch() (domain.ProductPatch, error) {
	patch := domain.ProductPatch{Quantity: req.Quantity, Supplier: req.Supplier}
	if req.Price != nil {
		price, err := parsePrice(*req.Price)
		if err != nil {
			return domain.ProductPatch{}, err
		}
		patch.Price = &price
	}
	return patch, nil
}

// ORDERS

type OrderItemRequest struct {
	ProductID int64 `json:"product_id"`
	Qty       int64 `json:"qty"`
}

type CreateOrderRequest struct {
	Customer *string            `json:"customer"`
	Items    []OrderItemRequest `json:"items"`
}

type CartLineRequest struct {
	ProductID int64   `json:"product_id"`
	Qty       int64   `json:"qty"`
	Customer  *string `json:"customer"`
}

type OpenCartRequest struct {
	Customer *string `json:"customer"`
}

type PlaceOrderResponse struct {
	OK      bool    `json:"ok"`
	OrderID int64   `json:"order_id"`
	Message string  `json:"message"`
	Total   float64 `json:"total"`
}

// OrderFailedResponse — ответ на неразмещённый заказ.
type OrderFailedResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type HistoryItemDTO struct {
	ProductID int64   `json:"product_id"`
	Qty       int64   `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
}

type OrderHistoryDTO struct {
	OrderID  int64            `json:"order_id"`
	Customer *string          `json:"customer"`
	Items    []HistoryItemDTO `json:"items"`
	Total    float64          `json:"total"`
}

type InvoiceLineDTO struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Qty       int64   `json:"qty"`
	Price     float64 `json:"price"`
	Subtotal  float64 `json:"subtotal"`
}

type InvoiceDTO struct {
	OrderID  int64            `json:"order_id"`
	Customer *string          `json:"customer"`
	Lines    []InvoiceLineDTO `json:"lines"`
	Total    float64          `json:"total"`
}

type CartLineDTO struct {
	ProductID int64 `json:"product_id"`
	Qty       int64 `json:"qty"`
}

type CartDTO struct {
	ID       int64         `json:"id"`
	Customer *string       `json:"customer"`
	Status   string        `json:"status"`
	Items    []CartLineDTO `json:"items"`
	Total    float64       `json:"total"`
}

func (req *CreateOrderRequest) toUseCase() *usecase.PlaceOrderReq {
	items := make([]usecase.OrderLineReq, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.OrderLineReq{ProductID: it.ProductID, Qty: it.Qty})
	}
	return usecase.NewPlaceOrderReq(req.Customer, items)
}

func toPlaceOrderResponse(res *usecase.PlaceOrderRes) *PlaceOrderResponse {
	return &PlaceOrderResponse{OK: true, OrderID: res.OrderID, Message: res.Message, Total: res.Total}
}

func toHistoryDTOs(history []domain.OrderHistoryEntry) []OrderHistoryDTO {
	res := make([]OrderHistoryDTO, 0, len(history))
	for _, entry := range history {
		items := make([]HistoryItemDTO, 0, len(entry.Items))
		for _, it := range entry.Items {
			items = append(items, HistoryItemDTO{ProductID: it.ProductID, Qty: it.Qty, UnitPrice: it.UnitPrice})
		}
		res = append(res, OrderHistoryDTO{
			OrderID:  entry.OrderID,
			Customer: entry.Customer,
			Items:    items,
			Total:    entry.Total,
		})
	}
	return res
}

func toInvoiceDTO(inv *domain.Invoice) *InvoiceDTO {
	lines := make([]InvoiceLineDTO, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, InvoiceLineDTO{
			ProductID: l.ProductID,
			Name:      l.Name,
			Qty:       l.Qty,
			Price:     l.Price,
			Subtotal:  l.Subtotal,
		})
	}
	return &InvoiceDTO{OrderID: inv.OrderID, Customer: inv.Customer, Lines: lines, Total: inv.Total}
}

func toCartDTO(cart *usecase.CartRes) *CartDTO {
	items := make([]CartLineDTO, 0, len(cart.Order.Items))
	for _, it := range cart.Order.Items {
		items = append(items, CartLineDTO{ProductID: it.ProductID, Qty: it.Qty})
	}
	return &CartDTO{
		ID:       cart.Order.ID,
		Customer: cart.Order.Customer,
		Status:   string(cart.Order.Status),
		Items:    items,
		Total:    cart.Total,
	}
}

// FORECAST

type LowStockItemDTO struct {
	ProductID           int64    `json:"product_id"`
	ProductName         string   `json:"product_name"`
	QtyLeft             int64    `json:"qty_left"`
	LookbackOrders      int      `json:"lookback_orders"`
	AvgSoldPerOrder     float64  `json:"avg_sold_per_order"`
	EstimatedOrdersLeft *float64 `json:"estimated_orders_left"`
	Note                string   `json:"note"`
}

type LowStockForecastResponse struct {
	Threshold int64             `json:"threshold"`
	Results   []LowStockItemDTO `json:"results"`
}

type ReorderItemDTO struct {
	ProductID             int64   `json:"product_id"`
	ProductName           string  `json:"product_name"`
	QtyLeft               int64   `json:"qty_left"`
	LookbackOrders        int     `json:"lookback_orders"`
	TargetDays            int     `json:"target_days"`
	EstimatedDailyDemand  float64 `json:"estimated_daily_demand"`
	RecommendedReorderQty int64   `json:"recommended_reorder_qty"`
}

type ReorderSuggestResponse struct {
	Results []ReorderItemDTO `json:"results"`
}

func toLowStockResponse(report *forecast.LowStockReport) *LowStockForecastResponse {
	results := make([]LowStockItemDTO, 0, len(report.Results))
	for _, it := range report.Results {
		results = append(results, LowStockItemDTO(it))
	}
	return &LowStockForecastResponse{Threshold: report.Threshold, Results: results}
}

func toReorderResponse(items []forecast.ReorderItem) *ReorderSuggestResponse {
	results := make([]ReorderItemDTO, 0, len(items))
	for _, it := range items {
		results = append(results, ReorderItemDTO(it))
	}
	return &ReorderSuggestResponse{Results: results}
}

// REPORTS

type ExportReportResponse struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
}
