package partner

import "dispatch/internal/entities"

// ShipmentRequest структура заявки на доставку внешнему партнеру.
type ShipmentRequest struct {
	OrderID string

	Source      entities.Location
	SourceName  string
	Destination entities.Location

	CustomerName  string
	CustomerPhone string

	// CashAmount > 0 — курьер партнера забирает наличные у клиента.
	CashAmount int64

	Items []ShipmentItem

	EmergencyContactName  string
	EmergencyContactPhone string
}

type ShipmentItem struct {
	Title    string
	Quantity int
	Price    int64
}

// Claim заявка, зарегистрированная у партнера.
type Claim struct {
	ID      string
	Status  string
	Version int
}
