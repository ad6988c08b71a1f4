// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"
	"dispatch/internal/gateway/partner"
	"dispatch/internal/gateway/routing"
	"dispatch/internal/handlers/rest/courier_queue_post"
	"dispatch/internal/handlers/rest/order_post"
	"dispatch/internal/handlers/rest/order_status_post"
	"dispatch/internal/handlers/rest/order_terminal_post"
	"dispatch/internal/handlers/tasks/dispatch_retry"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/cronjobs"
	"dispatch/internal/pkg/kafka"
	"dispatch/internal/repository/courier"
	ledger2 "dispatch/internal/repository/ledger"
	"dispatch/internal/repository/order"
	"dispatch/internal/repository/queue"
	"dispatch/internal/repository/refcache"
	"dispatch/internal/service/dispatch"
	"dispatch/internal/service/garant"
	"dispatch/internal/service/ledger"
	"dispatch/internal/service/orderstate"
	"dispatch/internal/service/pricing"
	queue2 "dispatch/internal/service/queue"
	"dispatch/pkg/background"
	"dispatch/pkg/clock"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Injectors from wire.go:

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, redisClient *redis.Client, producer *kafka.Producer, cfg *config.Config) (*Application, error) {
	querier := provideQuerier(pool, getter)
	repository := provideOrderRepository(querier)
	queueRepository := provideQueueRepository(redisClient)
	refcacheRepository := provideRefCache(redisClient)
	system := provideClock()
	queue := provideServiceQueue(queueRepository, refcacheRepository, system, log, cfg)
	orderState := provideServiceOrderState(repository, refcacheRepository, producer, system, log, cfg)
	gateway := provideRoutingGateway(cfg)
	pricing := provideServicePricing(refcacheRepository, gateway, system, log, cfg)
	partnerGateway := providePartnerGateway(cfg)
	dispatch := provideServiceDispatch(repository, queue, orderState, pricing, partnerGateway, refcacheRepository, producer, system, log, cfg)
	courierRepository := provideCourierRepository(querier)
	dispatchRetry := provideDispatchRetryTask(dispatch, cfg)
	v := provideTaskList(dispatchRetry)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		ServiceDispatch:   dispatch,
		ServiceOrderState: orderState,
		ServiceQueue:      queue,
		CourierRepository: courierRepository,
		Producer:          producer,
		BackgroundWorkers: worker,
	}
	return application, nil
}

// InitializeKafkaWorkerApp для воркера очередей (cmd/worker-jobs)
func InitializeKafkaWorkerApp(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, redisClient *redis.Client, producer *kafka.Producer, cfg *config.Config) (*KafkaWorkerApp, error) {
	querier := provideQuerier(pool, getter)
	repository := provideOrderRepository(querier)
	queueRepository := provideQueueRepository(redisClient)
	refcacheRepository := provideRefCache(redisClient)
	system := provideClock()
	queue := provideServiceQueue(queueRepository, refcacheRepository, system, log, cfg)
	orderState := provideServiceOrderState(repository, refcacheRepository, producer, system, log, cfg)
	gateway := provideRoutingGateway(cfg)
	pricing := provideServicePricing(refcacheRepository, gateway, system, log, cfg)
	partnerGateway := providePartnerGateway(cfg)
	dispatch := provideServiceDispatch(repository, queue, orderState, pricing, partnerGateway, refcacheRepository, producer, system, log, cfg)
	ledgerRepository := provideLedgerRepository(querier)
	manager := provideTxManager(pool)
	ledger := provideServiceLedger(ledgerRepository, refcacheRepository, manager, system, log, cfg)
	courierRepository := provideCourierRepository(querier)
	garant := provideServiceGarant(courierRepository, repository, ledger, refcacheRepository, system, log, cfg)
	garantReconcileJob := provideGarantJob(garant, log, cfg)
	kafkaWorkerApp := &KafkaWorkerApp{
		ServiceDispatch:   dispatch,
		ServiceOrderState: orderState,
		ServiceLedger:     ledger,
		OrderRepository:   repository,
		GarantJob:         garantReconcileJob,
		Producer:          producer,
	}
	return kafkaWorkerApp, nil
}

// wire.go:

type Application struct {
	ServiceDispatch   ServiceDispatch
	ServiceOrderState ServiceOrderState
	ServiceQueue      ServiceQueue
	CourierRepository *courier.Repository
	Producer          *kafka.Producer
	BackgroundWorkers *background.Worker
}

type ServiceDispatch interface {
	order_post.Service
	order_terminal_post.Service
}

type ServiceOrderState interface {
	order_status_post.Service
}

type ServiceQueue interface {
	courier_queue_post.Service
}

type KafkaWorkerApp struct {
	ServiceDispatch   *dispatch.Dispatch
	ServiceOrderState *orderstate.OrderState
	ServiceLedger     *ledger.Ledger
	OrderRepository   *order.Repository
	GarantJob         *cronjobs.GarantReconcileJob
	Producer          *kafka.Producer
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideClock() clock.System {
	return clock.NewSystem()
}

func provideOrderRepository(querier2 *querier.Querier) *order.Repository {
	return order.New(querier2)
}

func provideLedgerRepository(querier2 *querier.Querier) *ledger2.Repository {
	return ledger2.New(querier2)
}

func provideCourierRepository(querier2 *querier.Querier) *courier.Repository {
	return courier.New(querier2)
}

func provideQueueRepository(client *redis.Client) *queue.Repository {
	return queue.New(client)
}

func provideRefCache(client *redis.Client) *refcache.Repository {
	return refcache.New(client)
}

func provideRoutingGateway(cfg *config.Config) *routing.Gateway {
	return routing.New(cfg.Routing.BaseURL, cfg.Routing.Timeout)
}

func providePartnerGateway(cfg *config.Config) *partner.Gateway {
	return partner.New(cfg.Partner.BaseURL, cfg.Partner.Token, cfg.Partner.Timeout)
}

func provideServiceQueue(
	repository queue2.Repository,
	refCache queue2.RefCache,
	clk queue2.Clock,
	log logger.Logger,
	cfg *config.Config,
) *queue2.Queue {
	return queue2.New(repository, refCache, clk, log, cfg.Queue.ShiftEndHour)
}

func provideServicePricing(
	refCache pricing.RefCache,
	gateway pricing.RoutingGateway,
	clk pricing.Clock,
	log logger.Logger,
	cfg *config.Config,
) *pricing.Pricing {
	return pricing.New(refCache, gateway, clk, log, cfg.Pricing.SurchargeUnit)
}

func provideServiceOrderState(
	repository orderstate.Repository,
	refCache orderstate.RefCache,
	producer orderstate.JobProducer,
	clk orderstate.Clock,
	log logger.Logger,
	cfg *config.Config,
) *orderstate.OrderState {
	return orderstate.New(repository, refCache, producer, clk, log, cfg.Kafka.Topics.OrderCompleted)
}

func provideServiceDispatch(
	repository dispatch.Repository,
	courierQueue dispatch.CourierQueue,
	orderState dispatch.OrderState,
	pricingResolver dispatch.PricingResolver,
	partnerGw dispatch.PartnerGateway,
	refCache dispatch.RefCache,
	producer dispatch.JobProducer,
	clk dispatch.Clock,
	log logger.Logger,
	cfg *config.Config,
) *dispatch.Dispatch {
	return dispatch.New(
		repository,
		courierQueue,
		orderState,
		pricingResolver,
		partnerGw,
		refCache,
		producer,
		clk,
		log,
		cfg.Kafka.Topics.OrderCreated,
		cfg.Partner.CourierID,
		cfg.Dispatch.PartnerFallbackAfter,
		cfg.Partner.EmergencyName,
		cfg.Partner.EmergencyPhone,
	)
}

func provideServiceLedger(
	repository ledger.Repository,
	refCache ledger.RefCache,
	txManager ledger.TxManager,
	clk ledger.Clock,
	log logger.Logger,
	cfg *config.Config,
) *ledger.Ledger {
	return ledger.New(repository, refCache, txManager, clk, log, cfg.Ledger.DedupeWindow)
}

func provideServiceGarant(
	couriers garant.CourierRepository,
	orders garant.OrderRepository,
	ledgerSvc garant.Ledger,
	refCache garant.RefCache,
	clk garant.Clock,
	log logger.Logger,
	cfg *config.Config,
) *garant.Garant {
	return garant.New(couriers, orders, ledgerSvc, refCache, clk, log, cfg.Garant.GraceWindow)
}

func provideGarantJob(service cronjobs.GarantService, log logger.Logger, cfg *config.Config) *cronjobs.GarantReconcileJob {
	return cronjobs.NewGarantReconcileJob(service, log, cfg.Tasks.GarantCronSpec)
}

func provideDispatchRetryTask(service dispatch_retry.Service, cfg *config.Config) *dispatch_retry.DispatchRetry {
	return dispatch_retry.New(service, cfg.Tasks.DispatchRetryInterval)
}

func provideTaskList(dispatchRetryTask *dispatch_retry.DispatchRetry) []background.Task {
	return []background.Task{
		dispatchRetryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
