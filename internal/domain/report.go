package domain

import (
	"strings"

	"github.com/DRSN-tech/inventory-service/pkg/e"
)

// ReportKind — вид CSV-отчёта.
type ReportKind string

const (
	ReportOrders ReportKind = "orders"
	ReportSales  ReportKind = "sales"
)

func ParseReportKind(s string) (ReportKind, error) {
	switch ReportKind(strings.ToLower(strings.TrimSpace(s))) {
	case ReportOrders:
		return ReportOrders, nil
	case ReportSales:
		return ReportSales, nil
	default:
		return "", e.ErrUnknownReport
	}
}

// Report описывает отчёт, который выгружается в S3
type Report struct {
	Kind        ReportKind
	Bucket      string
	ObjectKey   string
	Data        []byte
	ContentType string
}

func NewReport(kind ReportKind, bucket string, objectKey string, data []byte, contentType string) *Report {
	return &Report{
		Kind:        kind,
		Bucket:      bucket,
		ObjectKey:   objectKey,
		Data:        data,
		ContentType: contentType,
	}
}

func (r *Report) Size() int64 {
	return int64(len(r.Data))
}
