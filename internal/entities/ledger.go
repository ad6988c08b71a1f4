package entities

import "time"

type TransactionType string

const (
	TransactionOrder      TransactionType = "order"
	TransactionOrderBonus TransactionType = "order_bonus"
	TransactionGarant     TransactionType = "daily_garant"
)

func (t TransactionType) String() string {
	return string(t)
}

// LedgerTransaction строка журнала, append-only.
// Инвариант: BalanceAfter = BalanceBefore + Amount.
type LedgerTransaction struct {
	ID             int64
	OrderID        *string
	CourierID      int64
	TerminalID     int64
	OrganizationID int64
	Amount         int64
	NotPaidAmount  int64
	Type           TransactionType
	PaymentKind    PaymentKind
	BalanceBefore  int64
	BalanceAfter   int64
	CreatedAt      time.Time
}

// TerminalBalance текущий баланс курьера по терминалу. Меняется только
// вместе со вставкой новой LedgerTransaction, в одной транзакции.
type TerminalBalance struct {
	CourierID      int64
	TerminalID     int64
	OrganizationID int64
	Balance        int64
	UpdatedAt      time.Time
}
