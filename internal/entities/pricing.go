package entities

import "time"

// DistanceBracket плоская цена за отрезок дистанции [FromKm, ToKm).
type DistanceBracket struct {
	FromKm float64
	ToKm   float64
	Price  int64
}

type PricingRule struct {
	ID             int64
	OrganizationID int64

	// TerminalID nil — правило действует на всю организацию.
	TerminalID *int64

	Active  bool
	Default bool
	Vehicle VehicleType

	Days []time.Weekday

	// Окно активности "15:04"; окно может переходить через полночь
	// (EndTime < StartTime).
	StartTime string
	EndTime   string

	MinPrice      int64
	MinDistanceKm float64
	PricePerKm    int64
	Brackets      []DistanceBracket

	// PaymentKind nil — без ограничения по типу оплаты.
	PaymentKind *PaymentKind
}

// BonusRule правило бонуса курьеру: подходит, если дистанция заказа
// попала в скобку и время с момента создания не превысило MaxMinutes.
type BonusRule struct {
	ID             int64
	OrganizationID int64
	TerminalID     *int64
	DistanceFromKm float64
	DistanceToKm   float64
	MaxMinutes     int
	Amount         int64
}
