package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/orderstate"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, organization_id, terminal_id, customer_name, customer_phone,
		courier_id, status_id, created_at, finished_at, distance_km, duration_sec,
		price, pricing_rule_id, payment_kind, pickup_lat, pickup_lon, dest_lat, dest_lon,
		partner_claim_id`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	query := `
		INSERT INTO orders (id, organization_id, terminal_id, customer_name, customer_phone,
			status_id, created_at, distance_km, duration_sec, price, pricing_rule_id,
			payment_kind, pickup_lat, pickup_lon, dest_lat, dest_lon)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.ID,
		orderEntity.OrganizationID,
		orderEntity.TerminalID,
		orderEntity.CustomerName,
		orderEntity.CustomerPhone,
		orderEntity.StatusID,
		orderEntity.CreatedAt,
		orderEntity.DistanceKm,
		int64(orderEntity.Duration/time.Second),
		orderEntity.Price,
		orderEntity.PricingRuleID,
		orderEntity.PaymentKind.String(),
		orderEntity.Pickup.Lat,
		orderEntity.Pickup.Lon,
		orderEntity.Destination.Lat,
		orderEntity.Destination.Lon,
	)

	orderDB, err := scanOrder(row)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, orderstate.ErrOrderAlreadyExists
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderstate.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) GetByPartnerClaim(ctx context.Context, claimID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE partner_claim_id = $1`

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, claimID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderstate.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get by claim error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil {
		return nil, orderstate.ErrOrderNotFound
	}

	builder := qb.
		Update("orders")

	// опциональные поля
	if orderModify.CourierID != nil {
		builder = builder.Set("courier_id", orderModify.CourierID)
	}
	if orderModify.StatusID != nil {
		builder = builder.Set("status_id", orderModify.StatusID)
	}
	if orderModify.TerminalID != nil {
		builder = builder.Set("terminal_id", orderModify.TerminalID)
	}
	if orderModify.FinishedAt != nil {
		builder = builder.Set("finished_at", orderModify.FinishedAt)
	}
	if orderModify.DistanceKm != nil {
		builder = builder.Set("distance_km", orderModify.DistanceKm)
	}
	if orderModify.Duration != nil {
		builder = builder.Set("duration_sec", int64(*orderModify.Duration/time.Second))
	}
	if orderModify.Price != nil {
		builder = builder.Set("price", orderModify.Price)
	}
	if orderModify.PricingRuleID != nil {
		builder = builder.Set("pricing_rule_id", orderModify.PricingRuleID)
	}
	if orderModify.Pickup != nil {
		builder = builder.
			Set("pickup_lat", orderModify.Pickup.Lat).
			Set("pickup_lon", orderModify.Pickup.Lon)
	}
	if orderModify.Destination != nil {
		builder = builder.
			Set("dest_lat", orderModify.Destination.Lat).
			Set("dest_lon", orderModify.Destination.Lon)
	}
	if orderModify.PartnerClaimID != nil {
		builder = builder.Set("partner_claim_id", orderModify.PartnerClaimID)
	}

	builder = builder.
		Where(sq.Eq{"id": orderModify.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderstate.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(orderDB), nil
}

// ClearCourier снимает курьера с заказа (courier_id = NULL).
// Update через OrderModify это выразить не может.
func (r *Repository) ClearCourier(ctx context.Context, orderID string) error {
	query := `UPDATE orders SET courier_id = NULL WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return fmt.Errorf("unexpected order repository clear courier error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return orderstate.ErrOrderNotFound
	}
	return nil
}

// ListUnassigned открытые заказы без курьера и без внешнего партнера,
// отсортированные от старых к новым.
func (r *Repository) ListUnassigned(ctx context.Context, limit int) ([]entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE courier_id IS NULL
		  AND finished_at IS NULL
		  AND partner_claim_id IS NULL
		ORDER BY created_at ASC
		LIMIT $1`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list unassigned error: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

// OpenByCourier незавершенные заказы курьера.
func (r *Repository) OpenByCourier(ctx context.Context, courierID int64) ([]entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE courier_id = $1
		  AND finished_at IS NULL
		ORDER BY created_at ASC`

	rows, err := r.querier.Query(ctx, query, courierID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository open by courier error: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *Repository) CountOpenInWindow(ctx context.Context, courierID int64, from, to time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM orders
		WHERE courier_id = $1
		  AND created_at >= $2 AND created_at < $3
		  AND finished_at IS NULL`

	var count int64
	err := r.querier.QueryRow(ctx, query, courierID, from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count open error: %w", err)
	}
	return count, nil
}

func (r *Repository) SumFinishedRevenue(ctx context.Context, courierID int64, from, to time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(price), 0)
		FROM orders
		WHERE courier_id = $1
		  AND finished_at >= $2 AND finished_at < $3`

	var total int64
	err := r.querier.QueryRow(ctx, query, courierID, from, to).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository sum revenue error: %w", err)
	}
	return total, nil
}

func (r *Repository) FinishedByCourier(ctx context.Context, courierID int64, from, to time.Time) ([]entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE courier_id = $1
		  AND finished_at >= $2 AND finished_at < $3
		ORDER BY finished_at ASC`

	rows, err := r.querier.Query(ctx, query, courierID, from, to)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository finished by courier error: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *Repository) InsertAction(ctx context.Context, action entities.OrderAction) error {
	query := `
		INSERT INTO order_actions (order_id, kind, previous_value, current_value,
			description, duration_sec, actor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.querier.Exec(
		ctx,
		query,
		action.OrderID,
		string(action.Kind),
		action.Before,
		action.After,
		action.Description,
		int64(action.Duration/time.Second),
		action.Actor,
		action.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected order repository insert action error: %w", err)
	}
	return nil
}

// LastStatusChangeAt время последнего STATUS_CHANGE действия по заказу.
// Нулевое время без ошибки, если действий еще не было.
func (r *Repository) LastStatusChangeAt(ctx context.Context, orderID string) (time.Time, error) {
	query := `
		SELECT MAX(created_at)
		FROM order_actions
		WHERE order_id = $1 AND kind = $2`

	var last *time.Time
	err := r.querier.QueryRow(ctx, query, orderID, string(entities.ActionStatusChange)).Scan(&last)
	if err != nil {
		return time.Time{}, fmt.Errorf("unexpected order repository last status change error: %w", err)
	}

	if last == nil {
		return time.Time{}, nil
	}
	return *last, nil
}

func (r *Repository) InsertLocation(ctx context.Context, location entities.OrderLocation) error {
	query := `
		INSERT INTO order_locations (order_id, courier_id, lat, lon, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.querier.Exec(
		ctx,
		query,
		location.OrderID,
		location.CourierID,
		location.Point.Lat,
		location.Point.Lon,
		location.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected order repository insert location error: %w", err)
	}
	return nil
}

func (r *Repository) HasLocation(ctx context.Context, orderID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM order_locations WHERE order_id = $1)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, orderID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected order repository has location error: %w", err)
	}
	return exists, nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var o OrderDB
	err := row.Scan(
		&o.ID,
		&o.OrganizationID,
		&o.TerminalID,
		&o.CustomerName,
		&o.CustomerPhone,
		&o.CourierID,
		&o.StatusID,
		&o.CreatedAt,
		&o.FinishedAt,
		&o.DistanceKm,
		&o.DurationSec,
		&o.Price,
		&o.PricingRuleID,
		&o.PaymentKind,
		&o.PickupLat,
		&o.PickupLon,
		&o.DestLat,
		&o.DestLon,
		&o.PartnerClaimID,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func collectOrders(rows pgx.Rows) ([]entities.Order, error) {
	var orders []entities.Order
	for rows.Next() {
		orderDB, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		orders = append(orders, *ToDomain(orderDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}
	return orders, nil
}
