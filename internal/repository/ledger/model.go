package ledger

import "time"

type TransactionDB struct {
	ID             int64
	OrderID        *string
	CourierID      int64
	TerminalID     int64
	OrganizationID int64
	Amount         int64
	NotPaidAmount  int64
	Type           string
	PaymentKind    string
	BalanceBefore  int64
	BalanceAfter   int64
	CreatedAt      time.Time
}
