package order

import "time"

type OrderDB struct {
	ID             string
	OrganizationID int64
	TerminalID     int64
	CustomerName   string
	CustomerPhone  string
	CourierID      *int64
	StatusID       int64
	CreatedAt      time.Time
	FinishedAt     *time.Time
	DistanceKm     float64
	DurationSec    int64
	Price          int64
	PricingRuleID  *int64
	PaymentKind    string
	PickupLat      float64
	PickupLon      float64
	DestLat        float64
	DestLon        float64
	PartnerClaimID *string
}

type OrderActionDB struct {
	ID          int64
	OrderID     string
	Kind        string
	Before      string
	After       string
	Description string
	DurationSec int64
	Actor       string
	CreatedAt   time.Time
}
