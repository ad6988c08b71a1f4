//go:build wireinject
// +build wireinject

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

	courierRepo "dispatch/internal/repository/courier"
	ledgerRepo "dispatch/internal/repository/ledger"
	orderRepo "dispatch/internal/repository/order"
	queueRepo "dispatch/internal/repository/queue"
	"dispatch/internal/repository/refcache"

	dispatchService "dispatch/internal/service/dispatch"
	garantService "dispatch/internal/service/garant"
	ledgerService "dispatch/internal/service/ledger"
	orderstateService "dispatch/internal/service/orderstate"
	pricingService "dispatch/internal/service/pricing"
	queueService "dispatch/internal/service/queue"

	"dispatch/pkg/background"
	"dispatch/pkg/clock"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Application struct {
	ServiceDispatch   ServiceDispatch
	ServiceOrderState ServiceOrderState
	ServiceQueue      ServiceQueue
	CourierRepository *courierRepo.Repository
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

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideQuerier,
		provideClock,

		provideOrderRepository,
		provideCourierRepository,
		provideQueueRepository,
		provideRefCache,

		provideRoutingGateway,
		providePartnerGateway,

		provideServiceQueue,
		provideServicePricing,
		provideServiceOrderState,
		provideServiceDispatch,

		provideDispatchRetryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),
		wire.Bind(new(ServiceOrderState), new(*orderstateService.OrderState)),
		wire.Bind(new(ServiceQueue), new(*queueService.Queue)),

		wire.Bind(new(queueService.Repository), new(*queueRepo.Repository)),
		wire.Bind(new(queueService.RefCache), new(*refcache.Repository)),
		wire.Bind(new(queueService.Clock), new(clock.System)),

		wire.Bind(new(pricingService.RefCache), new(*refcache.Repository)),
		wire.Bind(new(pricingService.RoutingGateway), new(*routing.Gateway)),
		wire.Bind(new(pricingService.Clock), new(clock.System)),

		wire.Bind(new(orderstateService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderstateService.RefCache), new(*refcache.Repository)),
		wire.Bind(new(orderstateService.JobProducer), new(*kafka.Producer)),
		wire.Bind(new(orderstateService.Clock), new(clock.System)),

		wire.Bind(new(dispatchService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.CourierQueue), new(*queueService.Queue)),
		wire.Bind(new(dispatchService.OrderState), new(*orderstateService.OrderState)),
		wire.Bind(new(dispatchService.PricingResolver), new(*pricingService.Pricing)),
		wire.Bind(new(dispatchService.PartnerGateway), new(*partner.Gateway)),
		wire.Bind(new(dispatchService.RefCache), new(*refcache.Repository)),
		wire.Bind(new(dispatchService.JobProducer), new(*kafka.Producer)),
		wire.Bind(new(dispatchService.Clock), new(clock.System)),

		wire.Bind(new(dispatch_retry.Service), new(*dispatchService.Dispatch)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ServiceDispatch   *dispatchService.Dispatch
	ServiceOrderState *orderstateService.OrderState
	ServiceLedger     *ledgerService.Ledger
	OrderRepository   *orderRepo.Repository
	GarantJob         *cronjobs.GarantReconcileJob
	Producer          *kafka.Producer
}

// InitializeKafkaWorkerApp для воркера очередей (cmd/worker-jobs)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer *kafka.Producer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideClock,

		provideOrderRepository,
		provideLedgerRepository,
		provideCourierRepository,
		provideQueueRepository,
		provideRefCache,

		provideRoutingGateway,
		providePartnerGateway,

		provideServiceQueue,
		provideServicePricing,
		provideServiceOrderState,
		provideServiceDispatch,
		provideServiceLedger,
		provideServiceGarant,
		provideGarantJob,

		wire.Struct(new(KafkaWorkerApp), "*"),

		wire.Bind(new(queueService.Repository), new(*queueRepo.Repository)),
		wire.Bind(new(queueService.RefCache), new(*refcache.Repository)),
		wire.Bind(new(queueService.Clock), new(clock.System)),

		wire.Bind(new(pricingService.RefCache), new(*refcache.Repository)),
		wire.Bind(new(pricingService.RoutingGateway), new(*routing.Gateway)),
		wire.Bind(new(pricingService.Clock), new(clock.System)),

		wire.Bind(new(orderstateService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderstateService.RefCache), new(*refcache.Repository)),
		wire.Bind(new(orderstateService.JobProducer), new(*kafka.Producer)),
		wire.Bind(new(orderstateService.Clock), new(clock.System)),

		wire.Bind(new(dispatchService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.CourierQueue), new(*queueService.Queue)),
		wire.Bind(new(dispatchService.OrderState), new(*orderstateService.OrderState)),
		wire.Bind(new(dispatchService.PricingResolver), new(*pricingService.Pricing)),
		wire.Bind(new(dispatchService.PartnerGateway), new(*partner.Gateway)),
		wire.Bind(new(dispatchService.RefCache), new(*refcache.Repository)),
		wire.Bind(new(dispatchService.JobProducer), new(*kafka.Producer)),
		wire.Bind(new(dispatchService.Clock), new(clock.System)),

		wire.Bind(new(ledgerService.Repository), new(*ledgerRepo.Repository)),
		wire.Bind(new(ledgerService.RefCache), new(*refcache.Repository)),
		wire.Bind(new(ledgerService.TxManager), new(*tx.Manager)),
		wire.Bind(new(ledgerService.Clock), new(clock.System)),

		wire.Bind(new(garantService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(garantService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(garantService.Ledger), new(*ledgerService.Ledger)),
		wire.Bind(new(garantService.RefCache), new(*refcache.Repository)),
		wire.Bind(new(garantService.Clock), new(clock.System)),
		wire.Bind(new(cronjobs.GarantService), new(*garantService.Garant)),
	)
	return nil, nil
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

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideLedgerRepository(querier *querier.Querier) *ledgerRepo.Repository {
	return ledgerRepo.New(querier)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideQueueRepository(client *redis.Client) *queueRepo.Repository {
	return queueRepo.New(client)
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
	repository queueService.Repository,
	refCache queueService.RefCache,
	clk queueService.Clock,
	log logger.Logger,
	cfg *config.Config,
) *queueService.Queue {
	return queueService.New(repository, refCache, clk, log, cfg.Queue.ShiftEndHour)
}

func provideServicePricing(
	refCache pricingService.RefCache,
	gateway pricingService.RoutingGateway,
	clk pricingService.Clock,
	log logger.Logger,
	cfg *config.Config,
) *pricingService.Pricing {
	return pricingService.New(refCache, gateway, clk, log, cfg.Pricing.SurchargeUnit)
}

func provideServiceOrderState(
	repository orderstateService.Repository,
	refCache orderstateService.RefCache,
	producer orderstateService.JobProducer,
	clk orderstateService.Clock,
	log logger.Logger,
	cfg *config.Config,
) *orderstateService.OrderState {
	return orderstateService.New(repository, refCache, producer, clk, log, cfg.Kafka.Topics.OrderCompleted)
}

func provideServiceDispatch(
	repository dispatchService.Repository,
	courierQueue dispatchService.CourierQueue,
	orderState dispatchService.OrderState,
	pricingResolver dispatchService.PricingResolver,
	partnerGw dispatchService.PartnerGateway,
	refCache dispatchService.RefCache,
	producer dispatchService.JobProducer,
	clk dispatchService.Clock,
	log logger.Logger,
	cfg *config.Config,
) *dispatchService.Dispatch {
	return dispatchService.New(
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
	repository ledgerService.Repository,
	refCache ledgerService.RefCache,
	txManager ledgerService.TxManager,
	clk ledgerService.Clock,
	log logger.Logger,
	cfg *config.Config,
) *ledgerService.Ledger {
	return ledgerService.New(repository, refCache, txManager, clk, log, cfg.Ledger.DedupeWindow)
}

func provideServiceGarant(
	couriers garantService.CourierRepository,
	orders garantService.OrderRepository,
	ledgerSvc garantService.Ledger,
	refCache garantService.RefCache,
	clk garantService.Clock,
	log logger.Logger,
	cfg *config.Config,
) *garantService.Garant {
	return garantService.New(couriers, orders, ledgerSvc, refCache, clk, log, cfg.Garant.GraceWindow)
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
