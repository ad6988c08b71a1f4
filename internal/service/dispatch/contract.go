//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/gateway/partner"
	"dispatch/internal/service/pricing"
)

type Repository interface {
	Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	GetByPartnerClaim(ctx context.Context, claimID string) (*entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	ListUnassigned(ctx context.Context, limit int) ([]entities.Order, error)
}

type JobProducer interface {
	Enqueue(topic, key string, payload any) error
}

type CourierQueue interface {
	Pop(ctx context.Context, terminalID int64, vehicle entities.VehicleType) (int64, error)
	SetLast(ctx context.Context, courierID, terminalID int64, vehicle entities.VehicleType) error
}

type OrderState interface {
	AssignCourier(ctx context.Context, orderID string, courierID int64, actor string) (*entities.Order, error)
	ChangeStatus(ctx context.Context, orderID string, statusID int64, actor string) (*entities.Order, error)
	ClearCourier(ctx context.Context, orderID string, actor string) error
}

type PricingResolver interface {
	Resolve(ctx context.Context, in pricing.ResolveInput) (*pricing.Resolution, error)
}

type PartnerGateway interface {
	CreateClaim(ctx context.Context, req partner.ShipmentRequest) (*partner.Claim, error)
	AcceptClaim(ctx context.Context, claimID string, version int) (*partner.Claim, error)
	ClaimInfo(ctx context.Context, claimID string) (*partner.Claim, error)
}

type RefCache interface {
	Terminal(ctx context.Context, id int64) (*entities.Terminal, error)
	Organization(ctx context.Context, id int64) (*entities.Organization, error)
	StatusesByOrganization(ctx context.Context, organizationID int64) ([]entities.OrderStatus, error)
	PricingRules(ctx context.Context, organizationID int64) ([]entities.PricingRule, error)
}

type Clock interface {
	Now() time.Time
}
