package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/commercekit/event-delivery/internal/adapter"
	"github.com/commercekit/event-delivery/internal/config"
	"github.com/commercekit/event-delivery/internal/delivery"
	"github.com/commercekit/event-delivery/internal/logger"
	"github.com/commercekit/event-delivery/internal/observability"
	"github.com/commercekit/event-delivery/internal/payload"
	temporalprovider "github.com/commercekit/event-delivery/internal/providers/temporal"
	"github.com/commercekit/event-delivery/internal/store"
	"github.com/commercekit/event-delivery/internal/transport"
	"github.com/commercekit/event-delivery/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadDeliveryWorkerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "delivery-worker",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Delivery Worker")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(cfg.Delivery.SendTimeout)

	// Initialize payload renderer and transport dispatcher
	renderer := payload.NewRenderer(adapter.NewJCS())
	dispatcher := transport.NewDispatcher(httpClient, adapter.NewSQSClientFactory(), adapter.NewPubSubClientFactory(), clock)

	// Initialize observability pipeline
	buffer := observability.NewBuffer(cfg.Observability.BufferCapacity)
	reporter := observability.NewReporter(buffer)
	flusher := observability.NewFlusher(buffer, dataStore, dispatcher, httpClient, observability.FlusherConfig{
		FlushPeriod:    cfg.Observability.FlushPeriod,
		BatchSize:      cfg.Observability.BatchSize,
		MaxWorkers:     cfg.Observability.MaxWorkers,
		PlatformDomain: cfg.Delivery.PlatformDomain,
		APIURL:         cfg.Delivery.APIURL,
	})

	// Connect to Temporal with logger integration
	temporalLogger := temporalprovider.NewZapLoggerAdapter(logger.Default())
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporalLogger,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal",
		zap.String("host_port", cfg.Temporal.HostPort),
		zap.String("namespace", cfg.Temporal.Namespace),
	)

	// Initialize delivery service; retries re-enter through the scheduler
	scheduler := temporalprovider.NewScheduler(temporalClient, cfg.Temporal.TaskQueue)
	service := delivery.NewService(dataStore, renderer, dispatcher, scheduler, reporter, clock,
		cfg.Delivery.PlatformDomain, cfg.Delivery.APIURL, cfg.Delivery.SyncTimeout)

	// Initialize executor for activities
	executor := workflows.NewExecutor(service)

	// Create Temporal worker with logger and Sentry interceptor
	sentryInterceptor := temporalprovider.NewSentryActivityInterceptor()
	temporalWorker := worker.New(temporalClient,
		cfg.Temporal.TaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
			Interceptors: []interceptor.WorkerInterceptor{
				sentryInterceptor,
			},
		})
	logger.InfoCtx(ctx, "Created Temporal worker", zap.String("task_queue", cfg.Temporal.TaskQueue))

	// Create worker core instance
	workerCore := workflows.NewWorkerCore(executor,
		workflows.WorkerCoreConfig{
			RetryBackoffBase: cfg.Delivery.RetryBackoffBase,
			MaxRetries:       cfg.Delivery.MaxRetries,
			SendTimeout:      cfg.Delivery.SendTimeout,
		})

	// Register workflows under the name remote clients start them by
	temporalWorker.RegisterWorkflowWithOptions(workerCore.SendWebhookRequest, workflow.RegisterOptions{
		Name: workflows.SendWebhookRequestName,
	})
	logger.InfoCtx(ctx, "Registered workflows")

	// Register activities
	temporalWorker.RegisterActivity(executor.SendDelivery)
	temporalWorker.RegisterActivity(executor.MarkDeliverySucceeded)
	temporalWorker.RegisterActivity(executor.MarkDeliveryFailed)
	logger.InfoCtx(ctx, "Registered activities")

	// Start the observability flusher
	flusherErrCh := make(chan error, 1)
	go func() {
		if err := flusher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			flusherErrCh <- err
		}
	}()

	// Start worker
	err = temporalWorker.Start()
	if err != nil {
		logger.FatalCtx(ctx, "Failed to start worker", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Worker started and listening for tasks")

	// Wait for interrupt signal or flusher failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-flusherErrCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "flusher"))
	}

	logger.InfoCtx(ctx, "Shutting down worker...")
	temporalWorker.Stop()

	// Stopping the context makes the flusher drain what the buffer still holds
	cancel()
	time.Sleep(time.Second)

	logger.InfoCtx(ctx, "Worker stopped")
}
