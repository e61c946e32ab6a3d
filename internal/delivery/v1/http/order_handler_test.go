package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DRSN-tech/inventory-service/internal/domain"
	"github.com/DRSN-tech/inventory-service/internal/usecase"
	"github.com/DRSN-tech/inventory-service/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrder(t *testing.T) {
	api := newTestAPI(t)
	api.orders.placeRes = usecase.NewPlaceOrderRes(1, 4.9, usecase.MsgCheckoutSuccess)

	rec := api.do(http.MethodPost, "/orders",
		`{"customer":"alice","items":[{"product_id":1,"qty":2},{"product_id":2,"qty":1}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"order_id":1,"message":"Checkout success","total":4.9}`, rec.Body.String())

	require.NotNil(t, api.orders.placeReq)
	require.NotNil(t, api.orders.placeReq.Customer)
	assert.Equal(t, "alice", *api.orders.placeReq.Customer)
	assert.Equal(t, []usecase.OrderLineReq{{ProductID: 1, Qty: 2}, {ProductID: 2, Qty: 1}}, api.orders.placeReq.Items)
}

func TestPlaceOrder_InsufficientStock(t *testing.T) {
	api := newTestAPI(t)
	api.orders.err = e.Wrap("product 1", e.ErrLineNotPlaced)

	rec := api.do(http.MethodPost, "/orders", `{"items":[{"product_id":1,"qty":100}]}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"ok":false,"message":"`+usecase.MsgOrderNotPlaced+`"}`, rec.Body.String())
}

func TestPlaceOrder_InvalidQuantity(t *testing.T) {
	api := newTestAPI(t)
	api.orders.err = e.ErrInvalidOrderQuantity

	rec := api.do(http.MethodPost, "/orders", `{"items":[{"product_id":1,"qty":0}]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), e.ErrInvalidOrderQuantity.Error())
}

func TestListOrders(t *testing.T) {
	api := newTestAPI(t)
	api.orders.history = []domain.OrderHistoryEntry{
		*domain.NewOrderHistoryEntry(1, nil, []domain.HistoryItem{{ProductID: 1, Qty: 2, UnitPrice: 1.2}}),
	}

	rec := api.do(http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []OrderHistoryDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Customer)
	assert.Equal(t, 2.4, got[0].Total)
	assert.Equal(t, 1.2, got[0].Items[0].UnitPrice)
}

func TestInvoice(t *testing.T) {
	api := newTestAPI(t)
	api.orders.invoice = &domain.Invoice{
		OrderID: 3,
		Lines: []domain.InvoiceLine{
			{ProductID: 9, Name: domain.PlaceholderName(9), Qty: 1, Price: 0, Subtotal: 0},
		},
	}

	rec := api.do(http.MethodGet, "/orders/3/invoice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Product#9"`)

	api.orders.err = e.ErrOrderNotFound
	rec = api.do(http.MethodGet, "/orders/4/invoice", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartFlow(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/carts", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var opened CartDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opened))
	assert.Equal(t, int64(7), opened.ID)
	assert.Equal(t, string(domain.OrderOpen), opened.Status)
	assert.Empty(t, opened.Items)

	order := domain.NewOrder(7, nil)
	require.NoError(t, order.AddLine(1, 2, nil))
	api.orders.cart = usecase.NewCartRes(order, 2.4)

	rec = api.do(http.MethodPost, "/carts/7/lines", `{"product_id":1,"qty":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, usecase.OrderLineReq{ProductID: 1, Qty: 2}, api.orders.line)

	var placed CartDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &placed))
	assert.Equal(t, string(domain.OrderPlacing), placed.Status)
	assert.Equal(t, 2.4, placed.Total)

	rec = api.do(http.MethodGet, "/carts/7", "")
	require.Equal(t, http.StatusOK, rec.Code)

	api.orders.placeRes = usecase.NewPlaceOrderRes(7, 2.4, usecase.MsgCheckoutSuccess)
	rec = api.do(http.MethodPost, "/carts/7/checkout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"order_id":7`)
}

func TestCart_Errors(t *testing.T) {
	api := newTestAPI(t)

	api.orders.err = e.ErrCartNotFound
	rec := api.do(http.MethodGet, "/carts/5", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	api.orders.err = e.ErrOrderClosed
	rec = api.do(http.MethodPost, "/carts/5/lines", `{"product_id":1,"qty":1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), e.ErrOrderClosed.Error())

	api.orders.err = e.ErrLineNotPlaced
	rec = api.do(http.MethodPost, "/carts/5/lines", `{"product_id":1,"qty":100}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":false`)
}
