package ledger

import (
	"dispatch/internal/entities"
)

func ToDomain(t *TransactionDB) *entities.LedgerTransaction {
	return &entities.LedgerTransaction{
		ID:             t.ID,
		OrderID:        t.OrderID,
		CourierID:      t.CourierID,
		TerminalID:     t.TerminalID,
		OrganizationID: t.OrganizationID,
		Amount:         t.Amount,
		NotPaidAmount:  t.NotPaidAmount,
		Type:           entities.TransactionType(t.Type),
		PaymentKind:    entities.PaymentKind(t.PaymentKind),
		BalanceBefore:  t.BalanceBefore,
		BalanceAfter:   t.BalanceAfter,
		CreatedAt:      t.CreatedAt,
	}
}
