package usecase

import (
	"context"

	"github.com/DRSN-tech/inventory-service/internal/domain"
)

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

// EventEncoder сериализует доменные события для outbox.
type EventEncoder interface {
	OrderCheckedOut(entry *domain.OrderHistoryEntry) ([]byte, error)
}

type ReportStorage interface {
	UploadReport(ctx context.Context, req *UploadReportReq) (*UploadReportRes, error)
}
