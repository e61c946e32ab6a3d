package minio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/DRSN-tech/inventory-service/internal/cfg"
	"github.com/DRSN-tech/inventory-service/internal/domain"
	"github.com/DRSN-tech/inventory-service/internal/infrastructure"
	"github.com/DRSN-tech/inventory-service/internal/usecase"
	"github.com/DRSN-tech/inventory-service/pkg/e"
	"github.com/DRSN-tech/inventory-service/pkg/jitter"
	"github.com/DRSN-tech/inventory-service/pkg/logger"
	"github.com/google/uuid"
)

const uploadAttempts = 3

// MinioInfrastructure выгружает отчёты в MinIO с повторами и удаляет устаревшие выгрузки в фоне.
type MinioInfrastructure struct {
	reportRepo  usecase.ReportRepository
	cfg         *cfg.MinIOCfg
	logger      logger.Logger
	shutdownCtx context.Context
	backoff     *jitter.Backoff
	now         func() time.Time
	wg          sync.WaitGroup
}

func NewMinioInfrastructure(reportRepo usecase.ReportRepository, cfg *cfg.MinIOCfg, logger logger.Logger, shutdownCtx context.Context) *MinioInfrastructure {
	return &MinioInfrastructure{
		reportRepo:  reportRepo,
		cfg:         cfg,
		logger:      logger,
		shutdownCtx: shutdownCtx,
		backoff:     jitter.NewBackoff(time.Second, 10*time.Second),
		now:         time.Now,
	}
}

// UploadReport загружает отчёт под новым уникальным ключом.
// Временные ошибки повторяются с экспоненциальной задержкой и jitter.
func (m *MinioInfrastructure) UploadReport(ctx context.Context, req *usecase.UploadReportReq) (*usecase.UploadReportRes, error) {
	const op = "MinioInfrastructure.UploadReport"

	ext, err := infrastructure.GetExtensionFromMIME(req.ContentType)
	if err != nil {
		return nil, e.Wrap(op, fmt.Errorf("invalid content type %s for %s report: %w", req.ContentType, req.Kind, err))
	}

	objKey := infrastructure.ReportObjectKey(m.cfg.ReportPrefix, req.Kind, m.now(), uuid.NewString(), ext)
	report := domain.NewReport(req.Kind, m.cfg.BucketName, objKey, req.Data, req.ContentType)

	var lastErr error
	for attempt := 0; attempt < uploadAttempts; attempt++ {
		key, err := m.reportRepo.Upload(ctx, report)
		if err == nil {
			return usecase.NewUploadReportRes(key), nil
		}
		lastErr = err
		m.logger.Warnf("%s: attempt %d for %s failed: %v", op, attempt+1, objKey, err)

		if attempt < uploadAttempts-1 {
			if err := m.backoff.Wait(ctx, attempt); err != nil {
				return nil, e.Wrap(op, err)
			}
		}
	}

	// Объект мог частично записаться до ошибки
	m.CleanupReports([]string{objKey})
	return nil, e.Wrap(op, lastErr)
}

// CleanupReports запускает фоновую очистку указанных ключей MinIO.
func (m *MinioInfrastructure) CleanupReports(keys []string) {
	if len(keys) == 0 {
		return
	}
	m.wg.Add(1)
	go m.cleanupUploadedKeys(keys)
}

// cleanupUploadedKeys удаляет объекты с экспоненциальной задержкой и jitter.
func (m *MinioInfrastructure) cleanupUploadedKeys(keys []string) {
	defer m.wg.Done()
	const op = "MinioInfrastructure.cleanupUploadedKeys"
	m.logger.Infof("%s: Cleaning up uploaded keys", op)

	ctx, cancel := context.WithTimeout(m.shutdownCtx, 30*time.Second)
	defer cancel()

	for _, key := range keys {
		for attempt := 0; attempt < uploadAttempts; attempt++ {
			if err := m.reportRepo.Delete(ctx, key); err == nil {
				break
			}

			if attempt < uploadAttempts-1 {
				if err := m.backoff.Wait(ctx, attempt); err != nil {
					m.logger.Warnf("cleanup interrupted by shutdown, key=%v", key)
					return
				}
			}
		}
	}
}

// WaitForCleanup ожидает завершения всех фоновых задач очистки с учётом таймаута завершения приложения.
func (m *MinioInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}
