package garant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// Garant сверка гарантированного минимума за смену. Запускается
// периодически; на каждого курьера с политикой проверяет закрытую
// смену и при недоборе доначисляет разницу одной транзакцией.
type Garant struct {
	couriers CourierRepository
	orders   OrderRepository
	ledger   Ledger
	refCache RefCache
	clock    Clock
	log      logger.Logger

	// graceWindow насколько давно закрытая смена еще подлежит сверке.
	graceWindow time.Duration
}

func New(
	couriers CourierRepository,
	orders OrderRepository,
	ledgerService Ledger,
	refCache RefCache,
	clock Clock,
	log logger.Logger,
	graceWindow time.Duration,
) *Garant {
	return &Garant{
		couriers:    couriers,
		orders:      orders,
		ledger:      ledgerService,
		refCache:    refCache,
		clock:       clock,
		log:         log.With(),
		graceWindow: graceWindow,
	}
}

// Reconcile проход по всем курьерам с назначенной политикой. Ошибка по
// одному курьеру логируется и не прерывает остальных.
func (g *Garant) Reconcile(ctx context.Context) error {
	couriers, err := g.couriers.ListWithGarantPolicy(ctx)
	if err != nil {
		return fmt.Errorf("list couriers with policy: %w", err)
	}

	for i := range couriers {
		if err := g.ReconcileCourier(ctx, couriers[i].ID); err != nil {
			g.log.With(
				logger.NewField("courier", couriers[i].ID),
				logger.NewField("error", err),
			).Warn("garant reconciliation failed for courier")
		}
	}

	return nil
}

// ReconcileCourier сверяет одного курьера по его последней закрытой
// смене. Отсутствие политики или закрытой смены — штатный скип.
func (g *Garant) ReconcileCourier(ctx context.Context, courierID int64) error {
	policy, err := g.couriers.PolicyByCourier(ctx, courierID)
	if err != nil {
		if errors.Is(err, ErrNoPolicy) {
			return nil
		}
		return fmt.Errorf("garant policy: %w", err)
	}

	entry, err := g.couriers.ClosingEntry(ctx, courierID)
	if err != nil {
		if errors.Is(err, ErrNoClosedShift) {
			return nil
		}
		return fmt.Errorf("closing schedule entry: %w", err)
	}
	if entry.ClosedAt == nil {
		return nil
	}

	now := g.clock.Now()
	if now.Sub(*entry.ClosedAt) > g.graceWindow {
		// слишком старая смена, сверять поздно
		return nil
	}

	from, to := entry.OpenedAt, *entry.ClosedAt

	// доначисление пишется уже после закрытия смены, поэтому искать
	// его надо в окне от закрытия до текущего момента, а не внутри
	// самой смены
	exists, err := g.ledger.ExistsGarantTransaction(ctx, courierID, to, now)
	if err != nil {
		return fmt.Errorf("garant existence check: %w", err)
	}
	if exists {
		return nil
	}

	open, err := g.orders.CountOpenInWindow(ctx, courierID, from, to)
	if err != nil {
		return fmt.Errorf("count open orders: %w", err)
	}
	if open > 0 {
		// незакрытые заказы еще изменят выручку смены
		return nil
	}

	revenue, err := g.orders.SumFinishedRevenue(ctx, courierID, from, to)
	if err != nil {
		return fmt.Errorf("sum finished revenue: %w", err)
	}
	credits, err := g.ledger.SumCredits(ctx, courierID, from, to)
	if err != nil {
		return fmt.Errorf("sum credits: %w", err)
	}

	earned := revenue + credits - entry.LateMinutes*policy.LateMinutePenalty
	topUp := policy.Amount - earned
	if topUp <= 0 {
		return nil
	}

	terminal, err := g.attributionTerminal(ctx, courierID, from, to)
	if err != nil {
		return err
	}
	if terminal == nil {
		g.log.With(logger.NewField("courier", courierID)).Info("no fuel-bonus terminal in shift window, skipping garant top-up")
		return nil
	}

	if err := g.ledger.RecordCredit(ctx, courierID, terminal.ID, terminal.OrganizationID, topUp, entities.TransactionGarant); err != nil {
		return fmt.Errorf("record garant top-up: %w", err)
	}

	g.log.With(
		logger.NewField("courier", courierID),
		logger.NewField("amount", topUp),
	).Info("garant top-up recorded")

	return nil
}

// attributionTerminal терминал с включенным fuel_bonus среди
// завершенных в окне заказов; к нему относится доначисление.
func (g *Garant) attributionTerminal(ctx context.Context, courierID int64, from, to time.Time) (*entities.Terminal, error) {
	finished, err := g.orders.FinishedByCourier(ctx, courierID, from, to)
	if err != nil {
		return nil, fmt.Errorf("finished orders in window: %w", err)
	}

	for i := range finished {
		terminal, err := g.refCache.Terminal(ctx, finished[i].TerminalID)
		if err != nil {
			g.log.With(
				logger.NewField("terminal", finished[i].TerminalID),
				logger.NewField("error", err),
			).Warn("terminal lookup failed during garant attribution")
			continue
		}
		if terminal.FuelBonus {
			return terminal, nil
		}
	}

	return nil, nil
}
