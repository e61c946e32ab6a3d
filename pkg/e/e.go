package e

import "fmt"

var (
	// Корневые ошибки таксономии, по ним классифицируются все остальные
	ErrValidation        = fmt.Errorf("validation error")
	ErrNotFound          = fmt.Errorf("not found")
	ErrInsufficientStock = fmt.Errorf("insufficient stock")
	ErrStorage           = fmt.Errorf("storage error")

	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("%w: bad request", ErrValidation)
	ErrNegativeQuantity     = fmt.Errorf("%w: quantity cannot be negative", ErrValidation)
	ErrNegativePrice        = fmt.Errorf("%w: price cannot be negative", ErrValidation)
	ErrInvalidOrderQuantity = fmt.Errorf("%w: invalid order quantity", ErrValidation)
	ErrOrderClosed          = fmt.Errorf("%w: order is already checked out", ErrValidation)
	ErrInvalidPrice         = fmt.Errorf("%w: invalid price", ErrValidation)
	ErrMissingFields        = fmt.Errorf("%w: missing required fields", ErrValidation)
	ErrUnknownReport        = fmt.Errorf("%w: unknown report kind", ErrValidation)
	ErrUnsupportedMediaType = fmt.Errorf("%w: unsupported media type", ErrValidation)

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
	ErrOrderNotFound   = fmt.Errorf("order %w", ErrNotFound)
	ErrCartNotFound    = fmt.Errorf("open order %w", ErrNotFound)

	// 409 Conflict
	ErrLineNotPlaced = fmt.Errorf("%w: order could not be placed", ErrInsufficientStock)

	// 500
	ErrInternalServerError = fmt.Errorf("internal server error")

	// Конфигурация
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// Storage оборачивает ошибку хранилища, чтобы её можно было классифицировать как ErrStorage
func Storage(msg string, err error) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrStorage, err)
}
