//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ledger_test
package ledger

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	GetBalance(ctx context.Context, courierID, terminalID int64) (int64, error)
	ExistsOrderTransaction(ctx context.Context, orderID string, since time.Time) (bool, error)
	ExistsGarantTransaction(ctx context.Context, courierID int64, from, to time.Time) (bool, error)
	InsertTransaction(ctx context.Context, txn entities.LedgerTransaction) (*entities.LedgerTransaction, error)
	UpsertBalance(ctx context.Context, courierID, terminalID, organizationID, balance int64) error
	SumCredits(ctx context.Context, courierID int64, from, to time.Time) (int64, error)
}

type RefCache interface {
	Organization(ctx context.Context, id int64) (*entities.Organization, error)
	PricingRules(ctx context.Context, organizationID int64) ([]entities.PricingRule, error)
	BonusRules(ctx context.Context, organizationID int64) ([]entities.BonusRule, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Clock interface {
	Now() time.Time
}
