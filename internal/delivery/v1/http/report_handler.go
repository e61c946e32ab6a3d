package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/inventory-service/internal/domain"
	"github.com/DRSN-tech/inventory-service/internal/usecase"
	"github.com/DRSN-tech/inventory-service/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUC
	logger        logger.Logger
}

func NewReportHandler(reportUsecase usecase.ReportUC, logger logger.Logger) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase, logger: logger}
}

// getReport
//
//	@Summary	CSV-отчёт
//	@Tags		reports
//	@Produce	text/csv
//	@Param		kind	path		string	true	"Вид отчёта"	Enums(orders, sales)
//	@Success	200		{string}	string
//	@Failure	400		{object}	ErrorResponse
//	@Router		/reports/{kind} [get]
func (h *ReportHandler) getReport(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseReportKind(chi.URLParam(r, "kind"))
	if err != nil {
		WriteError(w, err)
		return
	}

	data, err := h.reportUsecase.Build(r.Context(), kind)
	if err != nil {
		h.logger.Errorf(err, "build %s report", kind)
		WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", usecase.ReportContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", string(kind)+".csv"))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// exportReport
//
//	@Summary		Выгрузка отчёта в хранилище
//	@Description	Формирует CSV и загружает его в бакет MinIO
//	@Tags			reports
//	@Produce		json
//	@Param			kind	path		string	true	"Вид отчёта"	Enums(orders, sales)
//	@Success		201		{object}	ExportReportResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/reports/{kind}/export [post]
func (h *ReportHandler) exportReport(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseReportKind(chi.URLParam(r, "kind"))
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.reportUsecase.Export(r.Context(), kind)
	if err != nil {
		h.logger.Errorf(err, "export %s report", kind)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, ExportReportResponse{Key: res.Key, Size: res.Size})
}
