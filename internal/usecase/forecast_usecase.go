package usecase

import (
	"context"

	"github.com/DRSN-tech/inventory-service/internal/forecast"
	"github.com/DRSN-tech/inventory-service/pkg/e"
)

// ForecastUseCase загружает свежие снимки каталога и истории и прогоняет по ним эвристики.
type ForecastUseCase struct {
	productRepo ProductRepository
	orderRepo   OrderRepository
}

func NewForecastUC(productRepo ProductRepository, orderRepo OrderRepository) *ForecastUseCase {
	return &ForecastUseCase{productRepo: productRepo, orderRepo: orderRepo}
}

func (f *ForecastUseCase) LowStock(ctx context.Context, lookback int, threshold int64) (*forecast.LowStockReport, error) {
	const op = "ForecastUseCase.LowStock"

	products, err := f.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	history, err := f.orderRepo.ListHistory(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return forecast.LowStock(products, history, lookback, threshold), nil
}

func (f *ForecastUseCase) Reorder(ctx context.Context, lookback int, targetDays int) ([]forecast.ReorderItem, error) {
	const op = "ForecastUseCase.Reorder"

	products, err := f.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	history, err := f.orderRepo.ListHistory(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return forecast.Reorder(products, history, lookback, targetDays), nil
}
