package infrastructure

import (
	"fmt"
	"path"
	"time"

	"github.com/DRSN-tech/inventory-service/internal/domain"
	"github.com/DRSN-tech/inventory-service/pkg/e"
)

// GetExtensionFromMIME возвращает расширение файла отчёта по MIME-типу.
// Поддерживает csv и json. Для остальных типов возвращает e.ErrUnsupportedMediaType.
func GetExtensionFromMIME(mime string) (string, error) {
	switch mime {
	case "text/csv", "text/csv; charset=utf-8":
		return "csv", nil
	case "application/json":
		return "json", nil
	default:
		return "bin", e.ErrUnsupportedMediaType
	}
}

// ReportObjectKey строит ключ объекта вида <prefix>/<kind>/<20060102T150405Z>-<id>.<ext>.
func ReportObjectKey(prefix string, kind domain.ReportKind, at time.Time, id string, ext string) string {
	name := fmt.Sprintf("%s-%s.%s", at.UTC().Format("20060102T150405Z"), id, ext)
	return path.Join(prefix, string(kind), name)
}
