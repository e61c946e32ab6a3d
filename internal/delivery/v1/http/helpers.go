package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/inventory-service/internal/usecase"
	"github.com/DRSN-tech/inventory-service/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

const maxBodySize = 1 << 20

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// validationErrors — ошибки валидации, текст которых можно показать клиенту.
var validationErrors = []error{
	e.ErrNegativeQuantity,
	e.ErrNegativePrice,
	e.ErrInvalidOrderQuantity,
	e.ErrOrderClosed,
	e.ErrInvalidPrice,
	e.ErrMissingFields,
	e.ErrUnknownReport,
	e.ErrUnsupportedMediaType,
	e.ErrStatusBadRequest,
}

var notFoundErrors = []error{
	e.ErrProductNotFound,
	e.ErrOrderNotFound,
	e.ErrCartNotFound,
}

// ToHTTPResponse переводит ошибку таксономии в код ответа и сообщение для клиента.
// Детали ошибок хранилища наружу не отдаются.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrValidation):
		return http.StatusBadRequest, firstMatch(err, validationErrors, e.ErrValidation)
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound, firstMatch(err, notFoundErrors, e.ErrNotFound)
	case errors.Is(err, e.ErrInsufficientStock):
		return http.StatusConflict, usecase.MsgOrderNotPlaced
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func firstMatch(err error, candidates []error, fallback error) string {
	for _, c := range candidates {
		if errors.Is(err, c) {
			return c.Error()
		}
	}
	return fallback.Error()
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	WriteSuccess(w, code, NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decodeJSON читает тело запроса не больше maxBodySize. Пустое тело допустимо, если allowEmpty.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) && allowEmpty {
			return nil
		}
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return nil
}

// parsePrice разбирает цену из JSON-числа. Отрицательные и слишком большие значения отклоняются.
func parsePrice(n json.Number) (float64, error) {
	s := strings.TrimSpace(n.String())
	if s == "" {
		return 0, e.ErrMissingFields
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.IsNegative() {
		return 0, e.ErrNegativePrice
	}

	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	return d.InexactFloat64(), nil
}

// pathID читает положительный int64 из параметра маршрута.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, e.Wrap(name+"="+raw, e.ErrStatusBadRequest)
	}
	return id, nil
}

// queryInt читает целый query-параметр или возвращает def, если параметра нет.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, e.Wrap(name+"="+raw, e.ErrStatusBadRequest)
	}
	return v, nil
}
