package minio

import (
	"bytes"
	"context"

	"github.com/DRSN-tech/inventory-service/internal/cfg"
	"github.com/DRSN-tech/inventory-service/internal/domain"
	"github.com/DRSN-tech/inventory-service/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ReportRepo реализует хранилище отчётов поверх MinIO.
type ReportRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewReportRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ReportRepo {
	return &ReportRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// Upload загружает отчёт в MinIO и возвращает ключ объекта.
func (r *ReportRepo) Upload(ctx context.Context, report *domain.Report) (string, error) {
	bucket := report.Bucket
	if bucket == "" {
		bucket = r.cfg.BucketName
	}

	info, err := r.mc.PutObject(ctx, bucket, report.ObjectKey, bytes.NewReader(report.Data), report.Size(), minio.PutObjectOptions{
		ContentType: report.ContentType,
		UserMetadata: map[string]string{
			"report-kind": string(report.Kind),
		},
	})
	if err != nil {
		return "", e.Storage(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}

// Delete удаляет объект из MinIO по указанному ключу.
func (r *ReportRepo) Delete(ctx context.Context, key string) error {
	if err := r.mc.RemoveObject(ctx, r.cfg.BucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return e.Storage(whereami.WhereAmI(), err)
	}

	return nil
}
