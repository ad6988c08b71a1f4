package queue

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	queueservice "dispatch/internal/service/queue"
)

// Очередь курьеров живет в Redis-списках. Атомарность push/pop —
// гарантия самого Redis: два воркера не получат одного курьера.

// pushScript добавляет курьера в хвост списка, только если его там нет.
// LPOS + RPUSH одним скриптом, чтобы дедупликация была атомарной.
var pushScript = redis.NewScript(`
if redis.call('LPOS', KEYS[1], ARGV[1]) then
  return 0
end
redis.call('RPUSH', KEYS[1], ARGV[1])
return 1
`)

type Repository struct {
	client *redis.Client
}

func New(client *redis.Client) *Repository {
	return &Repository{
		client: client,
	}
}

// Push ставит курьера в конец списка key. Возвращает false, если курьер
// уже присутствовал и вставка не выполнялась.
func (r *Repository) Push(ctx context.Context, key string, courierID int64) (bool, error) {
	added, err := pushScript.Run(ctx, r.client, []string{key}, courierID).Int()
	if err != nil {
		return false, fmt.Errorf("queue push %s: %w", key, err)
	}
	return added == 1, nil
}

// Pop снимает голову списка key.
func (r *Repository) Pop(ctx context.Context, key string) (int64, error) {
	raw, err := r.client.LPop(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, queueservice.ErrQueueEmpty
		}
		return 0, fmt.Errorf("queue pop %s: %w", key, err)
	}

	courierID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("queue pop %s: bad entry %q: %w", key, raw, err)
	}
	return courierID, nil
}

// SetLast запоминает последнего назначенного курьера по ключу очереди.
// Используется эвристиками справедливости, на порядок не влияет.
func (r *Repository) SetLast(ctx context.Context, key string, courierID int64) error {
	err := r.client.Set(ctx, "last:"+key, courierID, 0).Err()
	if err != nil {
		return fmt.Errorf("queue set last %s: %w", key, err)
	}
	return nil
}
