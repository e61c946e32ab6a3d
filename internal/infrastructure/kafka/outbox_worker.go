package kafka

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/inventory-service/internal/cfg"
	"github.com/DRSN-tech/inventory-service/internal/usecase"
	"github.com/DRSN-tech/inventory-service/pkg/e"
	"github.com/DRSN-tech/inventory-service/pkg/jitter"
	"github.com/DRSN-tech/inventory-service/pkg/logger"
	"github.com/jackc/pgx/v5"
)

// OutboxStore — то, что воркеру нужно от таблицы outbox.
type OutboxStore interface {
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
	ResetStale(ctx context.Context, olderThanSeconds int) (int64, error)
}

// Notifier блокируется до уведомления о новых событиях.
// context.DeadlineExceeded означает, что за окно ожидания уведомлений не было.
type Notifier interface {
	Wait(ctx context.Context) error
	Close(ctx context.Context)
}

// OutboxWorker переносит события из outbox в Kafka: сразу при старте, по NOTIFY
// и по таймеру окна ожидания на случай потерянных уведомлений.
type OutboxWorker struct {
	repo     OutboxStore
	producer usecase.MessageProducer
	notifier Notifier
	logger   logger.Logger
	cfg      *cfg.OutboxCfg
	backoff  *jitter.Backoff
	stop     chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

func NewOutboxWorker(
	repo OutboxStore,
	producer usecase.MessageProducer,
	notifier Notifier,
	logger logger.Logger,
	cfg *cfg.OutboxCfg,
) *OutboxWorker {
	return &OutboxWorker{
		repo:     repo,
		producer: producer,
		notifier: notifier,
		logger:   logger,
		cfg:      cfg,
		backoff:  jitter.NewBackoff(time.Second, 30*time.Second),
		stop:     make(chan struct{}),
	}
}

func (w *OutboxWorker) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer cancel()
		w.run(ctx)
	}()

	go func() {
		select {
		case <-w.stop:
			cancel()
		case <-ctx.Done():
		}
	}()
}

// Stop останавливает воркер и ждёт завершения текущего батча.
func (w *OutboxWorker) Stop() {
	w.once.Do(func() { close(w.stop) })
	w.wg.Wait()
}

func (w *OutboxWorker) run(ctx context.Context) {
	defer w.notifier.Close(context.Background())

	w.logger.Infof("Draining pending outbox events on startup...")
	w.Drain(ctx)

	failures := 0
	for {
		if ctx.Err() != nil {
			w.logger.Infof("Outbox worker stopped")
			return
		}

		waitCtx, cancel := context.WithTimeout(ctx, w.cfg.ListenWindow)
		err := w.notifier.Wait(waitCtx)
		cancel()

		switch {
		case err == nil:
			failures = 0
			w.logger.Debugf("Received outbox notification, draining outbox events")
			w.Drain(ctx)
		case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
			failures = 0
			w.resetStale(ctx)
			w.Drain(ctx)
		case ctx.Err() != nil:
			continue
		default:
			w.logger.Warnf("outbox listener failed: %v", err)
			if werr := w.backoff.Wait(ctx, failures); werr != nil {
				continue
			}
			failures++
		}
	}
}

// Drain обрабатывает батчи, пока в outbox есть ожидающие события.
func (w *OutboxWorker) Drain(ctx context.Context) {
	for {
		hasMore, err := w.processBatch(ctx)
		if err != nil {
			w.logger.Warnf("Batch processing failed: %v", err)
			return
		}
		if !hasMore {
			return
		}
	}
}

// resetStale возвращает в очередь события, застрявшие в processing дольше двух окон ожидания.
func (w *OutboxWorker) resetStale(ctx context.Context) {
	secs := int(2 * w.cfg.ListenWindow / time.Second)
	n, err := w.repo.ResetStale(ctx, secs)
	if err != nil {
		w.logger.Warnf("reset stale outbox events failed: %v", err)
		return
	}
	if n > 0 {
		w.logger.Infof("returned %d stale outbox events to the queue", n)
	}
}

// processBatch возвращает true, если батч был полным и стоит запросить следующий.
// Неотправленные события остаются в processing до resetStale.
func (w *OutboxWorker) processBatch(ctx context.Context) (bool, error) {
	events, err := w.repo.GetAndMarkAsProcessing(ctx, w.cfg.BatchSize)
	if err != nil {
		return false, err
	}

	if len(events) == 0 {
		return false, nil
	}

	sent := 0
	for _, event := range events {
		if err := w.processEvent(ctx, event); err != nil {
			w.logger.Warnf("outbox event %s (order %d) not sent: %v", event.EventID, event.OrderID, err)
			continue
		}
		sent++
		if err := w.repo.MarkAsProcessed(ctx, event.ID); err != nil {
			w.logger.Warnf("mark processed failed: %v", err)
		}
	}

	if sent == 0 {
		return false, nil
	}

	return len(events) == w.cfg.BatchSize, nil
}

func (w *OutboxWorker) processEvent(ctx context.Context, event *usecase.OutboxEvent) error {
	err := w.producer.WriteRawMessage(ctx, usecase.NewWriteRawMessageReq(event.OrderID, event.EventType, event.Payload))
	if err != nil {
		if isRetryableError(err) {
			return e.Wrap("Temporary Kafka failure, will retry", err)
		}
		return e.Wrap("Permanent Kafka failure", err)
	}
	return nil
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	retryablePhrases := []string{
		"connection refused",
		"i/o timeout",
		"network is unreachable",
		"broker not available",
		"connection reset",
		"broken pipe",
		"no such host",
	}
	for _, phrase := range retryablePhrases {
		if strings.Contains(errStr, phrase) {
			return true
		}
	}
	return false
}

// PgNotifier слушает канал Postgres через отдельное соединение и переподключается при обрыве.
type PgNotifier struct {
	dsn     string
	channel string
	conn    *pgx.Conn
	logger  logger.Logger
}

func NewPgNotifier(dsn, channel string, logger logger.Logger) *PgNotifier {
	return &PgNotifier{dsn: dsn, channel: channel, logger: logger}
}

func (n *PgNotifier) connect(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, n.dsn)
	if err != nil {
		return e.Wrap("failed to connect for LISTEN", err)
	}

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{n.channel}.Sanitize()); err != nil {
		conn.Close(ctx)
		return e.Wrap("failed to LISTEN", err)
	}

	n.conn = conn
	n.logger.Infof("Subscribed to '%s' channel", n.channel)
	return nil
}

func (n *PgNotifier) Wait(ctx context.Context) error {
	if n.conn == nil {
		if err := n.connect(ctx); err != nil {
			return err
		}
	}

	if _, err := n.conn.WaitForNotification(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return err
		}
		n.logger.Warnf("Connection lost: %v. Reconnecting...", err)
		n.conn.Close(context.Background())
		n.conn = nil
		return err
	}

	return nil
}

func (n *PgNotifier) Close(ctx context.Context) {
	if n.conn != nil {
		n.conn.Close(ctx)
		n.conn = nil
	}
}
