package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetBalance текущий баланс курьера по терминалу; 0, если строки еще нет.
func (r *Repository) GetBalance(ctx context.Context, courierID, terminalID int64) (int64, error) {
	query := `
		SELECT balance
		FROM courier_terminal_balances
		WHERE courier_id = $1 AND terminal_id = $2`

	var balance int64
	err := r.querier.QueryRow(ctx, query, courierID, terminalID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("unexpected ledger repository get balance error: %w", err)
	}
	return balance, nil
}

// ExistsOrderTransaction проверка идемпотентности: есть ли уже
// транзакция по заказу не старше since.
func (r *Repository) ExistsOrderTransaction(ctx context.Context, orderID string, since time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM order_transactions
			WHERE order_id = $1
			  AND type = $2
			  AND created_at >= $3
		)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, orderID, entities.TransactionOrder.String(), since).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected ledger repository exists order transaction error: %w", err)
	}
	return exists, nil
}

// ExistsGarantTransaction была ли уже выплата daily_garant курьеру
// в заданном окне. Сверка передает сюда окно от закрытия смены до
// текущего момента: сама выплата всегда создается после закрытия.
func (r *Repository) ExistsGarantTransaction(ctx context.Context, courierID int64, from, to time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM order_transactions
			WHERE courier_id = $1
			  AND type = $2
			  AND created_at >= $3 AND created_at < $4
		)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, courierID, entities.TransactionGarant.String(), from, to).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected ledger repository exists garant transaction error: %w", err)
	}
	return exists, nil
}

func (r *Repository) InsertTransaction(ctx context.Context, txn entities.LedgerTransaction) (*entities.LedgerTransaction, error) {
	query := `
		INSERT INTO order_transactions (order_id, courier_id, terminal_id, organization_id,
			amount, not_paid_amount, type, payment_kind, balance_before, balance_after, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, order_id, courier_id, terminal_id, organization_id,
			amount, not_paid_amount, type, payment_kind, balance_before, balance_after, created_at`

	var txnDB TransactionDB
	err := r.querier.QueryRow(
		ctx,
		query,
		txn.OrderID,
		txn.CourierID,
		txn.TerminalID,
		txn.OrganizationID,
		txn.Amount,
		txn.NotPaidAmount,
		txn.Type.String(),
		txn.PaymentKind.String(),
		txn.BalanceBefore,
		txn.BalanceAfter,
		txn.CreatedAt,
	).Scan(
		&txnDB.ID,
		&txnDB.OrderID,
		&txnDB.CourierID,
		&txnDB.TerminalID,
		&txnDB.OrganizationID,
		&txnDB.Amount,
		&txnDB.NotPaidAmount,
		&txnDB.Type,
		&txnDB.PaymentKind,
		&txnDB.BalanceBefore,
		&txnDB.BalanceAfter,
		&txnDB.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected ledger repository insert transaction error: %w", err)
	}

	return ToDomain(&txnDB), nil
}

// UpsertBalance выставляет баланс курьера по терминалу в новое значение.
// Вызывается только вместе с InsertTransaction внутри одной транзакции.
func (r *Repository) UpsertBalance(ctx context.Context, courierID, terminalID, organizationID, balance int64) error {
	query := `
		INSERT INTO courier_terminal_balances (courier_id, terminal_id, organization_id, balance, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (courier_id, terminal_id)
		DO UPDATE SET balance = EXCLUDED.balance, updated_at = NOW()`

	_, err := r.querier.Exec(ctx, query, courierID, terminalID, organizationID, balance)
	if err != nil {
		return fmt.Errorf("unexpected ledger repository upsert balance error: %w", err)
	}
	return nil
}

// SumCredits сумма кредитов курьера, не привязанных к заказам, за окно.
func (r *Repository) SumCredits(ctx context.Context, courierID int64, from, to time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM order_transactions
		WHERE courier_id = $1
		  AND order_id IS NULL
		  AND amount > 0
		  AND created_at >= $2 AND created_at < $3`

	var total int64
	err := r.querier.QueryRow(ctx, query, courierID, from, to).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("unexpected ledger repository sum credits error: %w", err)
	}
	return total, nil
}
