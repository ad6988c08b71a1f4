package dispatch_retry

import (
	"context"
	"time"
)

type Service interface {
	ProcessUnassigned(ctx context.Context) error
}

// DispatchRetry периодический проход по неназначенным заказам: очередь
// могла пополниться, а заждавшиеся заказы уходят внешнему партнеру.
type DispatchRetry struct {
	service  Service
	interval time.Duration
}

func New(service Service, interval time.Duration) *DispatchRetry {
	return &DispatchRetry{
		service:  service,
		interval: interval,
	}
}

// TTL возвращает интервал между выполнениями задачи.
func (d *DispatchRetry) TTL() time.Duration {
	return d.interval
}

// Do выполняет логику задачи.
func (d *DispatchRetry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	return d.service.ProcessUnassigned(ctxWithTimeout)
}

// Info возвращает читаемое описание задачи для логгирования и отладки.
func (d *DispatchRetry) Info() string {
	return "dispatch retry"
}
