package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		DispatchRetryInterval time.Duration
		GarantCronSpec        string
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Routing struct {
		BaseURL string
		Timeout time.Duration
	}

	Partner struct {
		BaseURL string
		Token   string

		// CourierID зарезервированный системный "курьер",
		// представляющий внешнего партнера.
		CourierID int64

		// Контакт диспетчерской для экстренной связи в заявке партнера.
		EmergencyName  string
		EmergencyPhone string

		Timeout time.Duration
	}

	Dispatch struct {
		// PartnerFallbackAfter сколько заказ ждет внутреннего курьера
		// до передачи внешнему партнеру.
		PartnerFallbackAfter time.Duration
	}

	Queue struct {
		// ShiftEndHour час окончания смены; до этого часа очередь
		// принадлежит смене предыдущего календарного дня.
		ShiftEndHour int
	}

	Pricing struct {
		// SurchargeUnit номинал надбавки за дробный остаток километра.
		SurchargeUnit int64
	}

	Ledger struct {
		// DedupeWindow окно идемпотентности order-транзакций.
		DedupeWindow time.Duration
	}

	Garant struct {
		// GraceWindow насколько старое закрытие смены еще сверяем.
		GraceWindow time.Duration
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		ConsumerGroup   string
		Topics          KafkaTopics
		Sarama          Sarama
		ProcessTimeout  time.Duration
		MaxAttempts     int
	}

	KafkaTopics struct {
		OrderCreated    string
		StatusChanged   string
		LocationUpdated string
		OrderCompleted  string
		PartnerStatus   string
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Redis    Redis
		Routing  Routing
		Partner  Partner
		Dispatch Dispatch
		Queue    Queue
		Pricing  Pricing
		Ledger   Ledger
		Garant   Garant
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	dispatchRetryInterval, err := osGetEnvDuration("BACKGROUND_DISPATCH_RETRY_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	routingTimeout, err := osGetEnvDuration("ROUTING_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	partnerCourierID, err := osGetInt64("PARTNER_COURIER_ID")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	partnerTimeout, err := osGetEnvDuration("PARTNER_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	partnerFallbackAfter, err := osGetEnvDuration("DISPATCH_PARTNER_FALLBACK_AFTER")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	shiftEndHour, err := osGetInt("QUEUE_SHIFT_END_HOUR")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	surchargeUnit, err := osGetInt64("PRICING_SURCHARGE_UNIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	ledgerDedupeWindow, err := osGetEnvDuration("LEDGER_DEDUPE_WINDOW")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	garantGraceWindow, err := osGetEnvDuration("GARANT_GRACE_WINDOW")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	kafkaProcessTimeout, err := osGetEnvDuration("KAFKA_HANDLER_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	kafkaMaxAttempts, err := osGetInt("KAFKA_HANDLER_MAX_ATTEMPTS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			DispatchRetryInterval: dispatchRetryInterval,
			GarantCronSpec:        os.Getenv("GARANT_CRON_SPEC"),
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Routing: Routing{
			BaseURL: os.Getenv("ROUTING_BASE_URL"),
			Timeout: routingTimeout,
		},
		Partner: Partner{
			BaseURL:        os.Getenv("PARTNER_BASE_URL"),
			Token:          os.Getenv("PARTNER_TOKEN"),
			CourierID:      partnerCourierID,
			EmergencyName:  os.Getenv("PARTNER_EMERGENCY_NAME"),
			EmergencyPhone: os.Getenv("PARTNER_EMERGENCY_PHONE"),
			Timeout:        partnerTimeout,
		},
		Dispatch: Dispatch{
			PartnerFallbackAfter: partnerFallbackAfter,
		},
		Queue: Queue{
			ShiftEndHour: shiftEndHour,
		},
		Pricing: Pricing{
			SurchargeUnit: surchargeUnit,
		},
		Ledger: Ledger{
			DedupeWindow: ledgerDedupeWindow,
		},
		Garant: Garant{
			GraceWindow: garantGraceWindow,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Topics: KafkaTopics{
				OrderCreated:    os.Getenv("KAFKA_TOPIC_ORDER_CREATED"),
				StatusChanged:   os.Getenv("KAFKA_TOPIC_STATUS_CHANGED"),
				LocationUpdated: os.Getenv("KAFKA_TOPIC_LOCATION_UPDATED"),
				OrderCompleted:  os.Getenv("KAFKA_TOPIC_ORDER_COMPLETED"),
				PartnerStatus:   os.Getenv("KAFKA_TOPIC_PARTNER_STATUS"),
			},
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			ProcessTimeout: kafkaProcessTimeout,
			MaxAttempts:    kafkaMaxAttempts,
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	if cfg.Routing.BaseURL == "" {
		return errors.New("ROUTING_BASE_URL is required")
	}
	if cfg.Routing.Timeout == time.Duration(0) {
		return errors.New("ROUTING_TIMEOUT is required")
	}

	if cfg.Partner.BaseURL == "" {
		return errors.New("PARTNER_BASE_URL is required")
	}
	if cfg.Partner.CourierID == 0 {
		return errors.New("PARTNER_COURIER_ID is required")
	}

	if cfg.Dispatch.PartnerFallbackAfter == time.Duration(0) {
		return errors.New("DISPATCH_PARTNER_FALLBACK_AFTER is required")
	}

	if cfg.Queue.ShiftEndHour < 0 || cfg.Queue.ShiftEndHour > 23 {
		return errors.New("QUEUE_SHIFT_END_HOUR must be in [0, 23]")
	}

	if cfg.Pricing.SurchargeUnit == 0 {
		return errors.New("PRICING_SURCHARGE_UNIT is required")
	}

	if cfg.Ledger.DedupeWindow == time.Duration(0) {
		return errors.New("LEDGER_DEDUPE_WINDOW is required")
	}

	if cfg.Garant.GraceWindow == time.Duration(0) {
		return errors.New("GARANT_GRACE_WINDOW is required")
	}
	if cfg.Tasks.GarantCronSpec == "" {
		return errors.New("GARANT_CRON_SPEC is required")
	}
	if cfg.Tasks.DispatchRetryInterval == time.Duration(0) {
		return errors.New("BACKGROUND_DISPATCH_RETRY_INTERVAL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_PROCESS_TIMEOUT is required")
	}
	if cfg.Kafka.MaxAttempts == 0 {
		return errors.New("KAFKA_HANDLER_MAX_ATTEMPTS is required")
	}

	topics := []string{
		cfg.Kafka.Topics.OrderCreated,
		cfg.Kafka.Topics.StatusChanged,
		cfg.Kafka.Topics.LocationUpdated,
		cfg.Kafka.Topics.OrderCompleted,
		cfg.Kafka.Topics.PartnerStatus,
	}
	for _, topic := range topics {
		if topic == "" {
			return errors.New("all KAFKA_TOPIC_* variables are required")
		}
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetInt64(s string) (int64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
