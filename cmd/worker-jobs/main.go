package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"dispatch/internal/app"
	locationhandler "dispatch/internal/handlers/kafka-consumer/courier_location_updated"
	completedhandler "dispatch/internal/handlers/kafka-consumer/order_completed"
	createdhandler "dispatch/internal/handlers/kafka-consumer/order_created"
	statushandler "dispatch/internal/handlers/kafka-consumer/order_status_changed"
	claimhandler "dispatch/internal/handlers/kafka-consumer/partner_claim_status"
	"dispatch/internal/handlers/rest/healthcheck_head"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/dotenv"
	"dispatch/internal/pkg/kafka"
	"dispatch/internal/pkg/postgres"
	"dispatch/internal/pkg/redisclient"
	"dispatch/pkg/logger"
	"dispatch/pkg/logger/zap_adapter"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting jobs-worker application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file",
				logger.NewField("error", err),
			)
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config",
			logger.NewField("error", err),
		)
		return
	}

	err = run(context.Background(), appLogger, cfg)
	if err != nil {
		mainLog.Error("application failed",
			logger.NewField("error", err),
		)
		return
	}
}

//nolint:contextcheck // наследование от context.Background() — часть graceful shutdown
func run(ctx context.Context, log logger.Logger, cfg *config.Config) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	redisClient, err := redisclient.New(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			runLog.Error("failed to close redis client",
				logger.NewField("error", err),
			)
		}
	}()

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	producer, err := kafka.NewProducer(brokers, cfg.Kafka.Sarama.Version)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := app.InitializeKafkaWorkerApp(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	healthServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Kafka.PortHealthcheck),
		Handler: initHealthcheckRouter(&isShuttingDown),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	healthServerErr := make(chan error, 1)
	go func() {
		defer close(healthServerErr)

		runLog.With(
			logger.NewField("port", cfg.Kafka.PortHealthcheck),
		).Info("Server starting")
		if err := healthServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			healthServerErr <- err
		}
	}()

	topics := cfg.Kafka.Topics
	handlers := map[string]sarama.ConsumerGroupHandler{
		topics.OrderCreated: createdhandler.New(
			log, businessApp.ServiceDispatch, producer,
			topics.OrderCreated, cfg.Kafka.ProcessTimeout, cfg.Kafka.MaxAttempts,
		),
		topics.StatusChanged: statushandler.New(
			log, businessApp.ServiceOrderState, producer,
			topics.StatusChanged, cfg.Kafka.ProcessTimeout, cfg.Kafka.MaxAttempts,
		),
		topics.LocationUpdated: locationhandler.New(
			log, businessApp.ServiceOrderState, producer,
			topics.LocationUpdated, cfg.Kafka.ProcessTimeout, cfg.Kafka.MaxAttempts,
		),
		topics.OrderCompleted: completedhandler.New(
			log, businessApp.OrderRepository, businessApp.ServiceLedger, producer,
			topics.OrderCompleted, cfg.Kafka.ProcessTimeout, cfg.Kafka.MaxAttempts,
		),
		topics.PartnerStatus: claimhandler.New(
			log, businessApp.ServiceDispatch, producer,
			topics.PartnerStatus, cfg.Kafka.ProcessTimeout, cfg.Kafka.MaxAttempts,
		),
	}

	// один consumer на топик: у каждого типа заданий свой пул
	consumers := make([]*kafka.Consumer, 0, len(handlers))
	consumerErr := make(chan error, len(handlers))
	for topic, handler := range handlers {
		groupID := fmt.Sprintf("%s-%s", cfg.Kafka.ConsumerGroup, topic)

		consumer, err := kafka.NewConsumer(ctx, log, &cfg.Kafka, brokers, groupID, []string{topic}, handler)
		if err != nil {
			return fmt.Errorf("kafka consumer for %s: %w", topic, err)
		}
		consumers = append(consumers, consumer)

		consumerLog := runLog.With(
			logger.NewField("topic", topic),
			logger.NewField("group", groupID),
		)
		go func(consumer *kafka.Consumer, consumerLog logger.Logger, topic string) {
			consumerLog.Info("Kafka consumer starting")

			if err := consumer.Start(ongoingCtx); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, sarama.ErrClosedConsumerGroup) {
					consumerLog.Info("Kafka consumer stopped gracefully")
				} else {
					consumerErr <- fmt.Errorf("consumer %s: %w", topic, err)
				}
			}
		}(consumer, consumerLog, topic)
	}

	if err := businessApp.GarantJob.Start(); err != nil {
		return fmt.Errorf("garant job: %w", err)
	}
	defer businessApp.GarantJob.Stop()

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-consumerErr:
		return fmt.Errorf("consumer: %w", err)
	case err := <-healthServerErr:
		return fmt.Errorf("healthcheck server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("Draining Kafka messages")

	// shutdownCtx независим от ctx, который уже отменен на этом этапе
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	err = healthServer.Shutdown(shutdownCtx)
	if err != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	stopOngoingGracefully()

	for _, consumer := range consumers {
		if err := consumer.Close(); err != nil {
			runLog.With(logger.NewField("error", err)).Error("Failed to close Kafka consumer")
		}
	}

	runLog.Info("Worker stopped")
	return nil
}

func initHealthcheckRouter(isShuttingDown *atomic.Bool) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/healthcheck", healthcheck_head.New(isShuttingDown))
	return mux
}
