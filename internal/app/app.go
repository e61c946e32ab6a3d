package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/inventory-service/internal/cfg"
	v1Grpc "github.com/DRSN-tech/inventory-service/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/inventory-service/internal/delivery/v1/http"
	"github.com/DRSN-tech/inventory-service/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/inventory-service/internal/infrastructure/minio"
	s3Repo "github.com/DRSN-tech/inventory-service/internal/repository/minio"
	"github.com/DRSN-tech/inventory-service/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/inventory-service/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/inventory-service/internal/repository/redis"
	redisConv "github.com/DRSN-tech/inventory-service/internal/repository/redis/converter"
	"github.com/DRSN-tech/inventory-service/internal/usecase"
	"github.com/DRSN-tech/inventory-service/pkg/clients"
	"github.com/DRSN-tech/inventory-service/pkg/closer"
	"github.com/DRSN-tech/inventory-service/pkg/e"
	"github.com/DRSN-tech/inventory-service/pkg/logger"
	"github.com/DRSN-tech/inventory-service/pkg/postgres"
	"github.com/DRSN-tech/inventory-service/pkg/tr"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	shutdownTimeout = 10 * time.Second
	topicTimeout    = 10 * time.Second

	// Покрывает подключение, миграции и контрольный ping.
	dbConnectTimeout = 30 * time.Second
)

// App — корень композиции: поднимает хранилища, брокер, воркеры и серверы.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer
	worker  *kafka.OutboxWorker

	// workerCtx отменяется при остановке и прерывает фоновые задачи.
	workerCtx    context.Context
	workerCancel context.CancelFunc
}

func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: logger,
		closer: closer.NewCloser(0, logger),
	}
	a.workerCtx, a.workerCancel = context.WithCancel(context.Background())

	if err := a.init(); err != nil {
		a.workerCancel()
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if cerr := a.closer.Close(ctx); cerr != nil {
			logger.Warnf("cleanup after failed init: %v", cerr)
		}
		return nil, err
	}

	return a, nil
}

func (a *App) init() error {
	db, err := initPGDB(a.logger, a.cfg)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.AddSimple("postgres", func() error {
		db.Close()
		return nil
	})

	txManager := tr.NewManager(db.Pool)

	productRepo := pgdb.NewProductRepo(db.Pool, pgdbConv.NewProductConverter())
	orderRepo := pgdb.NewOrderRepo(db.Pool, pgdbConv.NewOrderConverter())
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, pgdbConv.NewOutboxEventConverter())

	redisClient := clients.NewRedisClient(a.cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return e.Wrap("failed to connect to redis", err)
	}
	a.closer.AddSimple("redis", redisClient.Close)

	cartRepo := redis.NewCartRepo(redisClient, redisConv.NewCartConverter(), a.cfg.Redis)

	minioClient, err := clients.NewMinIOClient(a.cfg.Minio)
	if err != nil {
		return e.Wrap("failed to initialize minio client", err)
	}
	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer minioCancel()
	if err := clients.EnsureBucket(minioCtx, minioClient, a.cfg.Minio.BucketName); err != nil {
		return e.Wrap("failed to initialize MinIO bucket", err)
	}

	reportRepo := s3Repo.NewReportRepo(minioClient, a.cfg.Minio)
	reportStorage := minioInfra.NewMinioInfrastructure(reportRepo, a.cfg.Minio, a.logger, a.workerCtx)
	a.closer.Add("minio cleanup", reportStorage.WaitForCleanup)

	producer := kafka.NewProducer(a.logger, a.cfg.Kafka)
	a.closer.AddSimple("kafka producer", producer.Close)
	if err := producer.EnsureTopic(topicTimeout); err != nil {
		return e.Wrap("failed to ensure kafka topic", err)
	}

	notifier := kafka.NewPgNotifier(db.Dsn, pgdb.OutboxChannel, a.logger)
	a.worker = kafka.NewOutboxWorker(outboxRepo, producer, notifier, a.logger, a.cfg.Outbox)
	a.closer.AddSimple("outbox worker", func() error {
		a.worker.Stop()
		return nil
	})

	catalogUC := usecase.NewCatalogUC(productRepo, a.logger)
	orderUC := usecase.NewOrderUC(catalogUC, orderRepo, cartRepo, outboxRepo, kafka.NewEventEncoder(), txManager, a.logger)
	forecastUC := usecase.NewForecastUC(productRepo, orderRepo)
	reportUC := usecase.NewReportUC(productRepo, orderRepo, reportStorage, a.logger)

	r := chi.NewRouter()
	v1Http.NewRouter(r, a.logger).Init(v1Http.UseCases{
		Catalog:  catalogUC,
		Order:    orderUC,
		Forecast: forecastUC,
		Report:   reportUC,
	}, a.cfg.Forecast)

	a.httpSrv = v1Http.NewServer(r, a.cfg.Http)
	a.grpcSrv = v1Grpc.NewGRPCServer(a.cfg.Grpc, a.logger)

	return nil
}

// Run запускает серверы и воркер и блокируется до сигнала остановки или фатальной ошибки.
func (a *App) Run() error {
	a.worker.Start(a.workerCtx)

	grpcErrCh := make(chan error, 1)
	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			grpcErrCh <- err
		}
	}()
	a.closer.Add("gRPC server", a.grpcSrv.Stop)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	a.closer.Add("HTTP server", a.httpSrv.Stop)

	a.grpcSrv.SetServing(true)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case appErr = <-grpcErrCh:
		a.logger.Errorf(appErr, "gRPC server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	a.grpcSrv.SetServing(false)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(ctx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
	}
	a.workerCancel()

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(ctx); err != nil {
		logger.Errorf(err, "failed to ping database")
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
