//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=garant_test
package garant

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type CourierRepository interface {
	ListWithGarantPolicy(ctx context.Context) ([]entities.Courier, error)
	PolicyByCourier(ctx context.Context, courierID int64) (*entities.GarantPolicy, error)
	ClosingEntry(ctx context.Context, courierID int64) (*entities.WorkScheduleEntry, error)
}

type OrderRepository interface {
	CountOpenInWindow(ctx context.Context, courierID int64, from, to time.Time) (int64, error)
	SumFinishedRevenue(ctx context.Context, courierID int64, from, to time.Time) (int64, error)
	FinishedByCourier(ctx context.Context, courierID int64, from, to time.Time) ([]entities.Order, error)
}

type Ledger interface {
	SumCredits(ctx context.Context, courierID int64, from, to time.Time) (int64, error)
	ExistsGarantTransaction(ctx context.Context, courierID int64, from, to time.Time) (bool, error)
	RecordCredit(ctx context.Context, courierID, terminalID, organizationID, amount int64, txnType entities.TransactionType) error
}

type RefCache interface {
	Terminal(ctx context.Context, id int64) (*entities.Terminal, error)
}

type Clock interface {
	Now() time.Time
}
