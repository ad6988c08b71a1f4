package refcache

// Денормализованные справочники, которые внешний рефрешер складывает
// в Redis в JSON. Структуры повторяют его формат записи.

type terminalJSON struct {
	ID               int64    `json:"id"`
	OrganizationID   int64    `json:"organization_id"`
	Name             string   `json:"name"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	LinkedTerminalID *int64   `json:"linked_terminal_id"`
	FuelBonus        bool     `json:"fuel_bonus"`
	Active           bool     `json:"active"`
}

type organizationJSON struct {
	ID                 int64            `json:"id"`
	Name               string           `json:"name"`
	PaymentModel       string           `json:"payment_model"`
	PartnerStatusCodes map[string]int64 `json:"partner_status_codes"`
}

type orderStatusJSON struct {
	ID             int64  `json:"id"`
	OrganizationID int64  `json:"organization_id"`
	Name           string `json:"name"`
	Sort           int    `json:"sort"`
	Finish         bool   `json:"finish"`
	Cancel         bool   `json:"cancel"`
	OnWay          bool   `json:"on_way"`
	InTerminal     bool   `json:"in_terminal"`
	NeedLocation   bool   `json:"need_location"`
	ShouldPay      bool   `json:"should_pay"`
}

type distanceBracketJSON struct {
	DistanceFrom float64 `json:"distance_from"`
	DistanceTo   float64 `json:"distance_to"`
	Price        int64   `json:"price"`
}

type pricingRuleJSON struct {
	ID             int64                 `json:"id"`
	OrganizationID int64                 `json:"organization_id"`
	TerminalID     *int64                `json:"terminal_id"`
	Active         bool                  `json:"active"`
	Default        bool                  `json:"default"`
	Vehicle        string                `json:"drive_type"`
	Days           []int                 `json:"days"`
	StartTime      string                `json:"start_time"`
	EndTime        string                `json:"end_time"`
	MinPrice       int64                 `json:"min_price"`
	MinDistanceKm  float64               `json:"min_distance_km"`
	PricePerKm     int64                 `json:"price_per_km"`
	Rules          []distanceBracketJSON `json:"rules"`
	PaymentKind    *string               `json:"payment_type"`
}

type bonusRuleJSON struct {
	ID             int64   `json:"id"`
	OrganizationID int64   `json:"organization_id"`
	TerminalID     *int64  `json:"terminal_id"`
	DistanceFrom   float64 `json:"distance_from"`
	DistanceTo     float64 `json:"distance_to"`
	TimeTo         int     `json:"time_to"`
	Bonus          int64   `json:"bonus"`
}
