package http

import (
	"net/http"

	"github.com/DRSN-tech/inventory-service/internal/usecase"
	"github.com/DRSN-tech/inventory-service/pkg/logger"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	alertThreshold int
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, alertThreshold int, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, alertThreshold: alertThreshold, logger: logger}
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Возвращает все товары каталога по возрастанию id
//	@Tags			products
//	@Produce		json
//	@Success		200	{array}		ProductDTO
//	@Failure		500	{object}	ErrorResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.catalogUsecase.List(r.Context())
	if err != nil {
		p.logger.Errorf(err, "list products")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductDTOs(products))
}

// addProduct
//
//	@Summary		Добавление товара
//	@Description	Добавляет товар со следующим по порядку id
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		CreateProductRequest	true	"Товар"
//	@Success		201		{object}	MessageResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	addReq, err := req.toUseCase()
	if err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	product, err := p.catalogUsecase.Add(r.Context(), addReq)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, MessageResponse{OK: true, Message: usecase.MsgProductAdded, Product: toProductDTO(product)})
}

// getProduct
//
//	@Summary	Товар по id
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	ProductDTO
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.catalogUsecase.Find(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductDTO(product))
}

// updateProduct
//
//	@Summary		Обновление товара
//	@Description	Меняет только переданные поля: quantity, price, supplier
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"ID товара"
//	@Param			patch	body		UpdateProductRequest	true	"Изменения"
//	@Success		200		{object}	MessageResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/products/{id} [patch]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req UpdateProductRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		WriteError(w, err)
		return
	}

	patch, err := req.toPatch()
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.catalogUsecase.Update(r.Context(), id, patch)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, MessageResponse{OK: true, Message: usecase.MsgProductUpdated, Product: toProductDTO(product)})
}

// deleteProduct
//
//	@Summary	Удаление товара
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	MessageResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := p.catalogUsecase.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, MessageResponse{OK: true, Message: usecase.MsgProductDeleted})
}

// lowStock
//
//	@Summary	Товары с низким остатком
//	@Tags		products
//	@Produce	json
//	@Param		threshold	query		int	false	"Порог остатка"	default(3)
//	@Success	200			{array}		ProductDTO
//	@Router		/products/low-stock [get]
func (p *ProductHandler) lowStock(w http.ResponseWriter, r *http.Request) {
	threshold, err := queryInt(r, "threshold", p.alertThreshold)
	if err != nil {
		WriteError(w, err)
		return
	}

	products, err := p.catalogUsecase.LowStock(r.Context(), int64(threshold))
	if err != nil {
		p.logger.Errorf(err, "low stock")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductDTOs(products))
}
