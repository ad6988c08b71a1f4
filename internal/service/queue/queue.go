package queue

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/repository/refcache"
	"dispatch/pkg/logger"
)

// Queue FIFO-лист ожидания доступных курьеров. Ключ списка —
// (тип транспорта, кластер терминалов, дата смены); ночная смена
// переживает полночь за счет сдвига даты до shiftEndHour.
type Queue struct {
	repository   Repository
	refCache     RefCache
	clock        Clock
	log          logger.Logger
	shiftEndHour int
}

func New(repository Repository, refCache RefCache, clock Clock, log logger.Logger, shiftEndHour int) *Queue {
	return &Queue{
		repository:   repository,
		refCache:     refCache,
		clock:        clock,
		log:          log.With(),
		shiftEndHour: shiftEndHour,
	}
}

// Push ставит курьера в хвост очереди его терминального кластера.
// Идемпотентен: повторный push присутствующего курьера — no-op.
// Неизвестный терминал — тоже no-op: запоздавшее задание по удаленному
// терминалу не должно ронять вызывающего.
func (q *Queue) Push(ctx context.Context, courierID, terminalID int64, vehicle entities.VehicleType) error {
	key, err := q.key(ctx, terminalID, vehicle)
	if err != nil {
		if errors.Is(err, refcache.ErrNotFound) {
			q.log.With(
				logger.NewField("courier", courierID),
				logger.NewField("terminal", terminalID),
			).Warn("queue push for unknown terminal, skipping")
			return nil
		}
		return fmt.Errorf("queue key: %w", err)
	}

	added, err := q.repository.Push(ctx, key, courierID)
	if err != nil {
		return fmt.Errorf("push courier %d: %w", courierID, err)
	}

	if !added {
		q.log.With(
			logger.NewField("courier", courierID),
			logger.NewField("key", key),
		).Info("courier already queued, skipping")
	}
	return nil
}

// Pop снимает и возвращает голову очереди терминала.
func (q *Queue) Pop(ctx context.Context, terminalID int64, vehicle entities.VehicleType) (int64, error) {
	key, err := q.key(ctx, terminalID, vehicle)
	if err != nil {
		if errors.Is(err, refcache.ErrNotFound) {
			q.log.With(
				logger.NewField("terminal", terminalID),
			).Warn("queue pop for unknown terminal")
			return 0, ErrQueueEmpty
		}
		return 0, fmt.Errorf("queue key: %w", err)
	}

	courierID, err := q.repository.Pop(ctx, key)
	if err != nil {
		if errors.Is(err, ErrQueueEmpty) {
			popsTotal.WithLabelValues("empty").Inc()
			return 0, ErrQueueEmpty
		}
		return 0, fmt.Errorf("pop courier: %w", err)
	}

	popsTotal.WithLabelValues("hit").Inc()
	return courierID, nil
}

// SetLast запоминает последнего назначенного курьера по ключу очереди.
func (q *Queue) SetLast(ctx context.Context, courierID, terminalID int64, vehicle entities.VehicleType) error {
	key, err := q.key(ctx, terminalID, vehicle)
	if err != nil {
		if errors.Is(err, refcache.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("queue key: %w", err)
	}

	if err := q.repository.SetLast(ctx, key, courierID); err != nil {
		return fmt.Errorf("set last courier %d: %w", courierID, err)
	}
	return nil
}

func (q *Queue) key(ctx context.Context, terminalID int64, vehicle entities.VehicleType) (string, error) {
	terminal, err := q.refCache.Terminal(ctx, terminalID)
	if err != nil {
		return "", err
	}

	cluster := []int64{terminal.ID}
	if terminal.LinkedTerminalID != nil {
		cluster = append(cluster, *terminal.LinkedTerminalID)
	}
	sort.Slice(cluster, func(i, j int) bool { return cluster[i] < cluster[j] })

	ids := make([]string, 0, len(cluster))
	for _, id := range cluster {
		ids = append(ids, strconv.FormatInt(id, 10))
	}

	shiftDate := q.shiftDate(q.clock.Now())
	return fmt.Sprintf("queue:%s:%s:%s", vehicle, strings.Join(ids, "-"), shiftDate), nil
}

// shiftDate дата смены: до shiftEndHour запись относится к смене
// предыдущего календарного дня.
func (q *Queue) shiftDate(now time.Time) string {
	if now.Hour() < q.shiftEndHour {
		now = now.AddDate(0, 0, -1)
	}
	return now.Format("2006-01-02")
}
