package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/eastlane-store/go-backend/internal/cfg"
	v1Http "github.com/eastlane-store/go-backend/internal/delivery/v1/http"
	"github.com/eastlane-store/go-backend/internal/infrastructure/kafka"
	minioInfra "github.com/eastlane-store/go-backend/internal/infrastructure/minio"
	s3Repo "github.com/eastlane-store/go-backend/internal/repository/minio"
	"github.com/eastlane-store/go-backend/internal/repository/pgdb"
	pgdbConv "github.com/eastlane-store/go-backend/internal/repository/pgdb/converter"
	"github.com/eastlane-store/go-backend/internal/repository/redis"
	redisConv "github.com/eastlane-store/go-backend/internal/repository/redis/converter"
	"github.com/eastlane-store/go-backend/internal/usecase"
	"github.com/eastlane-store/go-backend/pkg/clients"
	"github.com/eastlane-store/go-backend/pkg/closer"
	"github.com/eastlane-store/go-backend/pkg/e"
	"github.com/eastlane-store/go-backend/pkg/logger"
	"github.com/eastlane-store/go-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

func Run() {
	logger := logger.NewSlogLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}

	prConv := pgdbConv.NewProductConverter()
	orderConv := pgdbConv.NewOrderConverter()
	outboxConv := pgdbConv.NewOutboxEventConverter()
	cardConv := redisConv.NewProductCardConverter()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool, orderConv)
	dictRepo := pgdb.NewDictionaryRepo(db.Pool)
	contentRepo := pgdb.NewContentRepo(db.Pool)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)
	txManager := pgdb.NewTxManager(db.Pool)

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		logger.Errorf(err, "failed to initialize minio client")
		os.Exit(1)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		logger.Errorf(err, "failed to initialize MinIO bucket")
		os.Exit(1)
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		logger.Errorf(err, "failed to connect to redis")
		os.Exit(1)
	}
	cacheRepo := redis.NewCacheRepo(redisClient, cardConv, cfg.Redis, logger)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		os.Exit(1)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		logger.Errorf(err, "failed to ensure kafka topic")
		os.Exit(1)
	}

	// cleanupCtx живёт дольше воркеров: зачистка S3 должна успеть
	// доработать и после начала graceful shutdown.
	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	defer cleanupCancel()
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, logger, cleanupCtx)

	worker := kafka.NewOutboxWorker(outboxRepo, logger, producer, db.Dsn)
	workerCtx, workerCancel := context.WithCancel(context.Background())
	worker.Start(workerCtx)

	catalogUC := usecase.NewCatalogUC(productRepo, dictRepo, contentRepo, cacheRepo, logger)
	checkoutUC := usecase.NewCheckoutUC(productRepo, orderRepo, outboxRepo, contentRepo, txManager, logger)
	ordersUC := usecase.NewOrderAdminUC(orderRepo, outboxRepo, txManager, logger)
	productsUC := usecase.NewProductAdminUC(productRepo, imagesInfra, cacheRepo, txManager, logger)
	dictUC := usecase.NewDictionaryUC(dictRepo)
	contentUC := usecase.NewContentUC(contentRepo)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, cfg.Admin.Token, logger)
	router.Init(catalogUC, checkoutUC, ordersUC, productsUC, dictUC, contentUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	// Закрытие в порядке LIFO: сначала перестаём принимать запросы,
	// затем гасим фоновую обработку и только потом закрываем соединения.
	cl := closer.NewCloser(2 * time.Second)
	cl.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	cl.Add(func(ctx context.Context) error {
		if err := imagesInfra.WaitForCleanup(ctx); err != nil {
			logger.Warnf("MinIO cleanup did not finish: %v", err)
		}
		cleanupCancel()
		return nil
	})
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})
	cl.Add(func(ctx context.Context) error {
		workerCancel()
		worker.Stop()
		return nil
	})
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := cl.Close(shutdownCtx); err != nil {
		logger.Errorf(err, "shutdown finished with errors")
	} else {
		logger.Infof("Application shutdown complete")
	}

	if appErr != nil {
		os.Exit(1)
	}
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
