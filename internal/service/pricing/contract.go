//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pricing_test
package pricing

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/gateway/routing"
)

type RefCache interface {
	Terminal(ctx context.Context, id int64) (*entities.Terminal, error)
	PricingRules(ctx context.Context, organizationID int64) ([]entities.PricingRule, error)
}

type RoutingGateway interface {
	GetRoute(ctx context.Context, from, to entities.Location) (*routing.Route, error)
}

type Clock interface {
	Now() time.Time
}
