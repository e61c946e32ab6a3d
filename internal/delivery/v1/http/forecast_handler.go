package http

import (
	"net/http"

	"github.com/DRSN-tech/inventory-service/internal/cfg"
	"github.com/DRSN-tech/inventory-service/internal/usecase"
	"github.com/DRSN-tech/inventory-service/pkg/logger"
)

type ForecastHandler struct {
	forecastUsecase usecase.ForecastUC
	cfg             *cfg.ForecastCfg
	logger          logger.Logger
}

func NewForecastHandler(forecastUsecase usecase.ForecastUC, cfg *cfg.ForecastCfg, logger logger.Logger) *ForecastHandler {
	return &ForecastHandler{forecastUsecase: forecastUsecase, cfg: cfg, logger: logger}
}

// lowStockForecast
//
//	@Summary		Прогноз исчерпания остатков
//	@Description	Средние продажи на заказ за последние lookback_orders заказов и оценка, на сколько заказов хватит остатка
//	@Tags			ai
//	@Produce		json
//	@Param			lookback_orders	query		int	false	"Сколько последних заказов учитывать"	default(10)
//	@Param			threshold		query		int	false	"Порог остатка"							default(2)
//	@Success		200				{object}	LowStockForecastResponse
//	@Failure		400				{object}	ErrorResponse
//	@Router			/ai/low-stock-forecast [get]
func (f *ForecastHandler) lowStockForecast(w http.ResponseWriter, r *http.Request) {
	lookback, err := queryInt(r, "lookback_orders", f.cfg.LowStockLookback)
	if err != nil {
		WriteError(w, err)
		return
	}

	threshold, err := queryInt(r, "threshold", f.cfg.LowStockThresh)
	if err != nil {
		WriteError(w, err)
		return
	}

	report, err := f.forecastUsecase.LowStock(r.Context(), lookback, int64(threshold))
	if err != nil {
		f.logger.Errorf(err, "low stock forecast")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toLowStockResponse(report))
}

// reorderSuggest
//
//	@Summary	Рекомендации по дозаказу
//	@Tags		ai
//	@Produce	json
//	@Param		lookback_orders	query		int	false	"Сколько последних заказов учитывать"	default(20)
//	@Param		target_days		query		int	false	"На сколько дней пополнять запас"		default(7)
//	@Success	200				{object}	ReorderSuggestResponse
//	@Failure	400				{object}	ErrorResponse
//	@Router		/ai/reorder-suggest [get]
func (f *ForecastHandler) reorderSuggest(w http.ResponseWriter, r *http.Request) {
	lookback, err := queryInt(r, "lookback_orders", f.cfg.ReorderLookback)
	if err != nil {
		WriteError(w, err)
		return
	}

	targetDays, err := queryInt(r, "target_days", f.cfg.ReorderDays)
	if err != nil {
		WriteError(w, err)
		return
	}

	items, err := f.forecastUsecase.Reorder(r.Context(), lookback, targetDays)
	if err != nil {
		f.logger.Errorf(err, "reorder suggest")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toReorderResponse(items))
}
