package entities

import "time"

type Order struct {
	ID             string
	OrganizationID int64
	TerminalID     int64
	CustomerName   string
	CustomerPhone  string
	CourierID      *int64
	StatusID       int64
	CreatedAt      time.Time

	// FinishedAt проставляется только при переходе в статус
	// с флагом finish или cancel.
	FinishedAt *time.Time

	DistanceKm    float64
	Duration      time.Duration
	Price         int64
	PricingRuleID *int64
	PaymentKind   PaymentKind

	Pickup      Location
	Destination Location

	// PartnerClaimID заполнен, если заказ отдан внешнему партнеру.
	PartnerClaimID *string
}

type OrderModify struct {
	ID             *string
	CourierID      *int64
	StatusID       *int64
	TerminalID     *int64
	FinishedAt     *time.Time
	DistanceKm     *float64
	Duration       *time.Duration
	Price          *int64
	PricingRuleID  *int64
	Pickup         *Location
	Destination    *Location
	PartnerClaimID *string
}

// OrderStatus запись каталога статусов организации. Поведение машины
// состояний определяется флагами, а не идентичностью статуса.
type OrderStatus struct {
	ID             int64
	OrganizationID int64
	Name           string
	Sort           int

	Finish       bool
	Cancel       bool
	OnWay        bool
	InTerminal   bool
	NeedLocation bool
	ShouldPay    bool
}

// Terminal статус считается конечным: заказ завершен или отменен.
func (s OrderStatus) Terminal() bool {
	return s.Finish || s.Cancel
}

type ActionKind string

const (
	ActionStatusChange  ActionKind = "STATUS_CHANGE"
	ActionCourierChange ActionKind = "COURIER_CHANGE"
)

// OrderAction append-only запись аудита, никогда не изменяется.
type OrderAction struct {
	ID          int64
	OrderID     string
	Kind        ActionKind
	Before      string
	After       string
	Description string
	Duration    time.Duration
	Actor       string
	CreatedAt   time.Time
}

// OrderLocation сэмпл координат курьера, привязанный к заказу
// со статусом need_location.
type OrderLocation struct {
	ID        int64
	OrderID   string
	CourierID int64
	Point     Location
	CreatedAt time.Time
}
