//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=queue_test
package queue

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	Push(ctx context.Context, key string, courierID int64) (bool, error)
	Pop(ctx context.Context, key string) (int64, error)
	SetLast(ctx context.Context, key string, courierID int64) error
}

type RefCache interface {
	Terminal(ctx context.Context, id int64) (*entities.Terminal, error)
}

type Clock interface {
	Now() time.Time
}
