package infrastructure

import (
	"testing"
	"time"

	"github.com/DRSN-tech/inventory-service/internal/domain"
	"github.com/DRSN-tech/inventory-service/pkg/e"
	"github.com/stretchr/testify/assert"
)

func TestGetExtensionFromMIME(t *testing.T) {
	ext, err := GetExtensionFromMIME("text/csv")
	assert.NoError(t, err)
	assert.Equal(t, "csv", ext)

	ext, err = GetExtensionFromMIME("image/png")
	assert.ErrorIs(t, err, e.ErrUnsupportedMediaType)
	assert.Equal(t, "bin", ext)
}

func TestReportObjectKey(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.FixedZone("MSK", 3*60*60))

	key := ReportObjectKey("reports", domain.ReportSales, at, "abc", "csv")
	assert.Equal(t, "reports/sales/20260304T020607Z-abc.csv", key)

	assert.Equal(t, "orders/20260304T020607Z-x.csv", ReportObjectKey("", domain.ReportOrders, at, "x", "csv"))
}
