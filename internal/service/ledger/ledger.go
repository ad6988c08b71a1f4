package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

var ErrOrderNotFinished = errors.New("order is not finished")

// Ledger журнал расчетов курьера. Каждая запись несет цепочку
// balance_before/balance_after; вставка строки и апдейт баланса
// выполняются в одной транзакции БД.
type Ledger struct {
	repository Repository
	refCache   RefCache
	txManager  TxManager
	clock      Clock
	log        logger.Logger

	dedupeWindow time.Duration
}

func New(
	repository Repository,
	refCache RefCache,
	txManager TxManager,
	clock Clock,
	log logger.Logger,
	dedupeWindow time.Duration,
) *Ledger {
	return &Ledger{
		repository:   repository,
		refCache:     refCache,
		txManager:    txManager,
		clock:        clock,
		log:          log.With(),
		dedupeWindow: dedupeWindow,
	}
}

// ProcessCompletion обрабатывает завершение заказа: запись выручки
// (только наличный расчет) и бонус курьеру. Идемпотентна в скользящем
// окне: повторная доставка события по заказу с уже записанной
// транзакцией — no-op.
func (l *Ledger) ProcessCompletion(ctx context.Context, order *entities.Order) error {
	if order.FinishedAt == nil {
		return ErrOrderNotFinished
	}
	if order.CourierID == nil {
		l.log.With(logger.NewField("order", order.ID)).Info("completed order without courier, nothing to record")
		return nil
	}

	now := l.clock.Now()

	cash, err := l.cashSettled(ctx, order)
	if err != nil {
		return err
	}
	bonus, err := l.computeBonus(ctx, order)
	if err != nil {
		return err
	}

	// проверка идемпотентности и записи живут в одной serializable
	// транзакции: две конкурентные доставки одного завершения не
	// должны обе пройти проверку и обе вставить строки
	return l.txManager.Do(ctx, func(ctx context.Context) error {
		exists, err := l.repository.ExistsOrderTransaction(ctx, order.ID, now.Add(-l.dedupeWindow))
		if err != nil {
			return fmt.Errorf("ledger dedupe check: %w", err)
		}
		if exists {
			l.log.With(logger.NewField("order", order.ID)).Info("order already recorded in ledger, skipping")
			return nil
		}

		if cash {
			txn := entities.LedgerTransaction{
				OrderID:        &order.ID,
				CourierID:      *order.CourierID,
				TerminalID:     order.TerminalID,
				OrganizationID: order.OrganizationID,
				Amount:         order.Price,
				NotPaidAmount:  order.Price,
				Type:           entities.TransactionOrder,
				PaymentKind:    entities.PaymentCash,
				CreatedAt:      now,
			}
			if err := l.applyInTx(ctx, txn); err != nil {
				return fmt.Errorf("record order transaction: %w", err)
			}
		}

		if bonus > 0 {
			txn := entities.LedgerTransaction{
				OrderID:        &order.ID,
				CourierID:      *order.CourierID,
				TerminalID:     order.TerminalID,
				OrganizationID: order.OrganizationID,
				Amount:         bonus,
				Type:           entities.TransactionOrderBonus,
				PaymentKind:    order.PaymentKind,
				CreatedAt:      now,
			}
			if err := l.applyInTx(ctx, txn); err != nil {
				return fmt.Errorf("record bonus transaction: %w", err)
			}
		}

		return nil
	})
}

// RecordCredit пополнение без привязки к заказу (гарант и прочие
// начисления).
func (l *Ledger) RecordCredit(
	ctx context.Context,
	courierID, terminalID, organizationID, amount int64,
	txnType entities.TransactionType,
) error {
	txn := entities.LedgerTransaction{
		CourierID:      courierID,
		TerminalID:     terminalID,
		OrganizationID: organizationID,
		Amount:         amount,
		Type:           txnType,
		CreatedAt:      l.clock.Now(),
	}
	if err := l.apply(ctx, txn); err != nil {
		return fmt.Errorf("record credit: %w", err)
	}
	return nil
}

func (l *Ledger) Balance(ctx context.Context, courierID, terminalID int64) (int64, error) {
	return l.repository.GetBalance(ctx, courierID, terminalID)
}

func (l *Ledger) SumCredits(ctx context.Context, courierID int64, from, to time.Time) (int64, error) {
	return l.repository.SumCredits(ctx, courierID, from, to)
}

func (l *Ledger) ExistsGarantTransaction(ctx context.Context, courierID int64, from, to time.Time) (bool, error) {
	return l.repository.ExistsGarantTransaction(ctx, courierID, from, to)
}

// apply одна запись вне внешней транзакции (гарант и прочие кредиты).
func (l *Ledger) apply(ctx context.Context, txn entities.LedgerTransaction) error {
	return l.txManager.Do(ctx, func(ctx context.Context) error {
		return l.applyInTx(ctx, txn)
	})
}

// applyInTx читает текущий баланс, вставляет строку с цепочкой
// balance_before/after и обновляет баланс. Вызывается только внутри
// txManager.Do, иначе конкурентные завершения теряют апдейты.
func (l *Ledger) applyInTx(ctx context.Context, txn entities.LedgerTransaction) error {
	balance, err := l.repository.GetBalance(ctx, txn.CourierID, txn.TerminalID)
	if err != nil {
		return fmt.Errorf("get balance: %w", err)
	}

	txn.BalanceBefore = balance
	txn.BalanceAfter = balance + txn.Amount

	if _, err := l.repository.InsertTransaction(ctx, txn); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	if err := l.repository.UpsertBalance(ctx, txn.CourierID, txn.TerminalID, txn.OrganizationID, txn.BalanceAfter); err != nil {
		return fmt.Errorf("upsert balance: %w", err)
	}

	transactionsTotal.WithLabelValues(txn.Type.String()).Inc()
	return nil
}

// cashSettled наличный расчет задает либо платежная модель
// организации, либо примененное тарифное правило.
func (l *Ledger) cashSettled(ctx context.Context, order *entities.Order) (bool, error) {
	organization, err := l.refCache.Organization(ctx, order.OrganizationID)
	if err != nil {
		return false, fmt.Errorf("organization %d: %w", order.OrganizationID, err)
	}
	if organization.PaymentModel == entities.PaymentCash {
		return true, nil
	}

	if order.PricingRuleID == nil {
		return false, nil
	}

	rules, err := l.refCache.PricingRules(ctx, order.OrganizationID)
	if err != nil {
		return false, fmt.Errorf("pricing rules: %w", err)
	}
	for _, rule := range rules {
		if rule.ID == *order.PricingRuleID {
			return rule.PaymentKind != nil && *rule.PaymentKind == entities.PaymentCash, nil
		}
	}
	return false, nil
}

// computeBonus подбирает бонусное правило по скобке дистанции и
// времени доставки; среди подходящих берется правило с наименьшей
// верхней границей минут.
func (l *Ledger) computeBonus(ctx context.Context, order *entities.Order) (int64, error) {
	rules, err := l.refCache.BonusRules(ctx, order.OrganizationID)
	if err != nil {
		return 0, fmt.Errorf("bonus rules: %w", err)
	}
	if len(rules) == 0 {
		return 0, nil
	}

	elapsed := int(order.FinishedAt.Sub(order.CreatedAt) / time.Minute)

	var best *entities.BonusRule
	for i := range rules {
		rule := &rules[i]
		if rule.TerminalID != nil && *rule.TerminalID != order.TerminalID {
			continue
		}
		if order.DistanceKm < rule.DistanceFromKm || order.DistanceKm >= rule.DistanceToKm {
			continue
		}
		if elapsed > rule.MaxMinutes {
			continue
		}
		if best == nil || rule.MaxMinutes < best.MaxMinutes {
			best = rule
		}
	}

	if best == nil {
		return 0, nil
	}
	return best.Amount, nil
}
