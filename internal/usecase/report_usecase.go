package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"sort"
	"strconv"
	"strings"

	"github.com/DRSN-tech/inventory-service/internal/domain"
	"github.com/DRSN-tech/inventory-service/pkg/e"
	"github.com/DRSN-tech/inventory-service/pkg/logger"
	"github.com/shopspring/decimal"
)

const ReportContentType = "text/csv"

var (
	ordersReportHeader = []string{"order_id", "customer", "items", "total"}
	salesReportHeader  = []string{"product_id", "product_name", "units_sold", "revenue"}
)

// ReportUseCase строит CSV-отчёты по истории заказов и выгружает их в объектное хранилище.
type ReportUseCase struct {
	productRepo ProductRepository
	orderRepo   OrderRepository
	storage     ReportStorage
	logger      logger.Logger
}

func NewReportUC(productRepo ProductRepository, orderRepo OrderRepository, storage ReportStorage, logger logger.Logger) *ReportUseCase {
	return &ReportUseCase{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		storage:     storage,
		logger:      logger,
	}
}

func (r *ReportUseCase) Build(ctx context.Context, kind domain.ReportKind) ([]byte, error) {
	const op = "ReportUseCase.Build"

	history, err := r.orderRepo.ListHistory(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var rows [][]string
	switch kind {
	case domain.ReportOrders:
		rows = ordersRows(history)
	case domain.ReportSales:
		products, err := r.productRepo.List(ctx)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		rows = salesRows(domain.NewCatalog(products), history)
	default:
		return nil, e.Wrap(op, e.ErrUnknownReport)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, e.Wrap(op, err)
	}

	return buf.Bytes(), nil
}

// Export строит отчёт и кладёт его в бакет отчётов.
func (r *ReportUseCase) Export(ctx context.Context, kind domain.ReportKind) (*ExportReportRes, error) {
	const op = "ReportUseCase.Export"

	data, err := r.Build(ctx, kind)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	res, err := r.storage.UploadReport(ctx, NewUploadReportReq(kind, data, ReportContentType))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	r.logger.Infof("report %s exported: key=%s size=%d", kind, res.Key, len(data))
	return &ExportReportRes{Key: res.Key, Size: int64(len(data))}, nil
}

func ordersRows(history []domain.OrderHistoryEntry) [][]string {
	rows := make([][]string, 0, len(history)+1)
	rows = append(rows, ordersReportHeader)

	for _, entry := range history {
		customer := ""
		if entry.Customer != nil {
			customer = *entry.Customer
		}

		items := make([]string, 0, len(entry.Items))
		for _, it := range entry.Items {
			items = append(items, strconv.FormatInt(it.ProductID, 10)+"x"+strconv.FormatInt(it.Qty, 10))
		}

		rows = append(rows, []string{
			strconv.FormatInt(entry.OrderID, 10),
			customer,
			strings.Join(items, ";"),
			decimal.NewFromFloat(entry.Total).StringFixed(2),
		})
	}

	return rows
}

type salesLine struct {
	units   int64
	revenue decimal.Decimal
}

func salesRows(catalog *domain.Catalog, history []domain.OrderHistoryEntry) [][]string {
	sales := make(map[int64]*salesLine)
	for _, entry := range history {
		for _, it := range entry.Items {
			s, ok := sales[it.ProductID]
			if !ok {
				s = &salesLine{revenue: decimal.Zero}
				sales[it.ProductID] = s
			}
			s.units += it.Qty
			s.revenue = s.revenue.Add(domain.LineTotal(it.UnitPrice, it.Qty))
		}
	}

	ids := make([]int64, 0, len(sales))
	for id := range sales {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	rows := make([][]string, 0, len(ids)+1)
	rows = append(rows, salesReportHeader)
	for _, id := range ids {
		name := domain.PlaceholderName(id)
		if p, ok := catalog.Find(id); ok {
			name = p.Name
		}

		rows = append(rows, []string{
			strconv.FormatInt(id, 10),
			name,
			strconv.FormatInt(sales[id].units, 10),
			sales[id].revenue.StringFixed(2),
		})
	}

	return rows
}
