package entities

type Terminal struct {
	ID               int64
	OrganizationID   int64
	Name             string
	Location         Location
	LinkedTerminalID *int64
	FuelBonus        bool
	Active           bool
}

type PaymentKind string

const (
	PaymentCash   PaymentKind = "cash"
	PaymentCard   PaymentKind = "card"
	PaymentClient PaymentKind = "client"
)

func (p PaymentKind) String() string {
	return string(p)
}

type Organization struct {
	ID           int64
	Name         string
	PaymentModel PaymentKind

	// PartnerStatusCodes отображает коды статусов внешнего партнера
	// на id статусов каталога организации.
	PartnerStatusCodes map[string]int64
}
