//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderstate_test
package orderstate

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	ClearCourier(ctx context.Context, orderID string) error

	OpenByCourier(ctx context.Context, courierID int64) ([]entities.Order, error)
	FinishedByCourier(ctx context.Context, courierID int64, from, to time.Time) ([]entities.Order, error)

	InsertAction(ctx context.Context, action entities.OrderAction) error
	LastStatusChangeAt(ctx context.Context, orderID string) (time.Time, error)

	InsertLocation(ctx context.Context, location entities.OrderLocation) error
	HasLocation(ctx context.Context, orderID string) (bool, error)
}

type RefCache interface {
	Terminal(ctx context.Context, id int64) (*entities.Terminal, error)
	StatusesByOrganization(ctx context.Context, organizationID int64) ([]entities.OrderStatus, error)
}

type JobProducer interface {
	Enqueue(topic, key string, payload any) error
}

type Clock interface {
	Now() time.Time
}
