package http

import (
	"errors"
	"net/http"

	"github.com/DRSN-tech/inventory-service/internal/usecase"
	"github.com/DRSN-tech/inventory-service/pkg/e"
	"github.com/DRSN-tech/inventory-service/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

// writeOrderError отвечает {"ok": false, ...}, если позицию не удалось разместить.
func (o *OrderHandler) writeOrderError(w http.ResponseWriter, err error) {
	if errors.Is(err, e.ErrInsufficientStock) {
		o.logger.Warnf("%s", err.Error())
		WriteSuccess(w, http.StatusConflict, OrderFailedResponse{OK: false, Message: usecase.MsgOrderNotPlaced})
		return
	}

	code, _ := ToHTTPResponse(err)
	if code == http.StatusInternalServerError {
		o.logger.Errorf(err, "order request failed")
	}
	WriteError(w, err)
}

// placeOrder
//
//	@Summary		Оформление заказа
//	@Description	Размещает позиции по очереди и оформляет заказ. На первой неудачной позиции останавливается.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		CreateOrderRequest	true	"Заказ"
//	@Success		200		{object}	PlaceOrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	OrderFailedResponse
//	@Router			/orders [post]
func (o *OrderHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	res, err := o.orderUsecase.PlaceOrder(r.Context(), req.toUseCase())
	if err != nil {
		o.writeOrderError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toPlaceOrderResponse(res))
}

// listOrders
//
//	@Summary	История заказов
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}	OrderHistoryDTO
//	@Router		/orders [get]
func (o *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	history, err := o.orderUsecase.History(r.Context())
	if err != nil {
		o.writeOrderError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toHistoryDTOs(history))
}

// invoice
//
//	@Summary		Счёт по заказу
//	@Description	Счёт по текущим ценам; удалённые товары показываются как Product#<id> с ценой 0
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		int	true	"ID заказа"
//	@Success		200	{object}	InvoiceDTO
//	@Failure		404	{object}	ErrorResponse
//	@Router			/orders/{id}/invoice [get]
func (o *OrderHandler) invoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	inv, err := o.orderUsecase.Invoice(r.Context(), id)
	if err != nil {
		o.writeOrderError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toInvoiceDTO(inv))
}

// openCart
//
//	@Summary	Открыть заказ
//	@Tags		carts
//	@Accept		json
//	@Produce	json
//	@Param		cart	body		OpenCartRequest	false	"Покупатель"
//	@Success	201		{object}	CartDTO
//	@Router		/carts [post]
func (o *OrderHandler) openCart(w http.ResponseWriter, r *http.Request) {
	var req OpenCartRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		WriteError(w, err)
		return
	}

	cart, err := o.orderUsecase.OpenCart(r.Context(), req.Customer)
	if err != nil {
		o.writeOrderError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCartDTO(cart))
}

// getCart
//
//	@Summary	Незакрытый заказ и его сумма
//	@Tags		carts
//	@Produce	json
//	@Param		id	path		int	true	"ID заказа"
//	@Success	200	{object}	CartDTO
//	@Failure	404	{object}	ErrorResponse
//	@Router		/carts/{id} [get]
func (o *OrderHandler) getCart(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	cart, err := o.orderUsecase.GetCart(r.Context(), id)
	if err != nil {
		o.writeOrderError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartDTO(cart))
}

// addCartLine
//
//	@Summary	Добавить позицию
//	@Tags		carts
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"ID заказа"
//	@Param		line	body		CartLineRequest	true	"Позиция"
//	@Success	200		{object}	CartDTO
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	OrderFailedResponse
//	@Router		/carts/{id}/lines [post]
func (o *OrderHandler) addCartLine(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req CartLineRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	cart, err := o.orderUsecase.AddCartLine(r.Context(), id, usecase.OrderLineReq{ProductID: req.ProductID, Qty: req.Qty}, req.Customer)
	if err != nil {
		o.writeOrderError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartDTO(cart))
}

// checkoutCart
//
//	@Summary	Оформить незакрытый заказ
//	@Tags		carts
//	@Produce	json
//	@Param		id	path		int	true	"ID заказа"
//	@Success	200	{object}	PlaceOrderResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/carts/{id}/checkout [post]
func (o *OrderHandler) checkoutCart(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := o.orderUsecase.CheckoutCart(r.Context(), id)
	if err != nil {
		o.writeOrderError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toPlaceOrderResponse(res))
}
