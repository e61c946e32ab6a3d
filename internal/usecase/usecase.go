package usecase

import (
	"context"

	"github.com/DRSN-tech/inventory-service/internal/domain"
	"github.com/DRSN-tech/inventory-service/internal/forecast"
)

type CatalogUC interface {
	List(ctx context.Context) ([]domain.Product, error)
	Find(ctx context.Context, id int64) (*domain.Product, error)
	Add(ctx context.Context, req *AddProductReq) (*domain.Product, error)
	Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	LowStock(ctx context.Context, threshold int64) ([]domain.Product, error)
}

type OrderUC interface {
	PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*PlaceOrderRes, error)
	History(ctx context.Context) ([]domain.OrderHistoryEntry, error)
	Invoice(ctx context.Context, orderID int64) (*domain.Invoice, error)
	OpenCart(ctx context.Context, customer *string) (*CartRes, error)
	GetCart(ctx context.Context, id int64) (*CartRes, error)
	AddCartLine(ctx context.Context, id int64, line OrderLineReq, customer *string) (*CartRes, error)
	CheckoutCart(ctx context.Context, id int64) (*PlaceOrderRes, error)
}

type ForecastUC interface {
	LowStock(ctx context.Context, lookback int, threshold int64) (*forecast.LowStockReport, error)
	Reorder(ctx context.Context, lookback int, targetDays int) ([]forecast.ReorderItem, error)
}

type ReportUC interface {
	Build(ctx context.Context, kind domain.ReportKind) ([]byte, error)
	Export(ctx context.Context, kind domain.ReportKind) (*ExportReportRes, error)
}
