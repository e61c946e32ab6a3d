package usecase

import "github.com/DRSN-tech/inventory-service/internal/domain"

// Сообщения, которые видит пользователь
const (
	MsgProductAdded    = "Product added successfully"
	MsgProductUpdated  = "Product information updated successfully"
	MsgProductDeleted  = "Product deleted successfully"
	MsgOrderNotPlaced  = "Order could not be placed. Product not found or insufficient quantity."
	MsgCheckoutSuccess = "Checkout success"
)

// CATALOG

// AddProductReq — запрос на добавление товара.
type AddProductReq struct {
	Name     string
	Category string
	Quantity int64
	Price    float64
	Supplier string
}

// ORDERS

type OrderLineReq struct {
	ProductID int64
	Qty       int64
}

// PlaceOrderReq — заказ, оформляемый одним вызовом.
type PlaceOrderReq struct {
	Customer *string
	Items    []OrderLineReq
}

type PlaceOrderRes struct {
	OrderID int64
	Total   float64
	Message string
}

// CartRes — незакрытый заказ и его сумма по текущим ценам.
type CartRes struct {
	Order *domain.Order
	Total float64
}

// REPORTS

type ExportReportRes struct {
	Key  string
	Size int64
}

// INFRASTUCTURE

type WriteRawMessageReq struct {
	OrderID   int64
	EventType OutboxEventType
	Payload   []byte
}

type UploadReportReq struct {
	Kind        domain.ReportKind
	Data        []byte
	ContentType string
}

type UploadReportRes struct {
	Key string
}

// MAPPERS

func NewAddProductReq(name, category string, quantity int64, price float64, supplier string) *AddProductReq {
	return &AddProductReq{
		Name:     name,
		Category: category,
		Quantity: quantity,
		Price:    price,
		Supplier: supplier,
	}
}

func NewPlaceOrderReq(customer *string, items []OrderLineReq) *PlaceOrderReq {
	return &PlaceOrderReq{Customer: customer, Items: items}
}

func NewPlaceOrderRes(orderID int64, total float64, message string) *PlaceOrderRes {
	return &PlaceOrderRes{OrderID: orderID, Total: total, Message: message}
}

func NewCartRes(order *domain.Order, total float64) *CartRes {
	return &CartRes{Order: order, Total: total}
}

func NewWriteRawMessageReq(orderID int64, eventType OutboxEventType, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{OrderID: orderID, EventType: eventType, Payload: payload}
}

func NewUploadReportReq(kind domain.ReportKind, data []byte, contentType string) *UploadReportReq {
	return &UploadReportReq{Kind: kind, Data: data, ContentType: contentType}
}

func NewUploadReportRes(key string) *UploadReportRes {
	return &UploadReportRes{Key: key}
}
