package courier

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/service/garant"
	"dispatch/internal/service/queue"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, courierID int64) (*entities.Courier, error) {
	query := `
		SELECT id, name, phone, status, vehicle, garant_policy_id, created_at, updated_at
		FROM couriers
		WHERE id = $1`

	var courierEntity entities.Courier
	var status, vehicle string
	err := r.querier.QueryRow(ctx, query, courierID).Scan(
		&courierEntity.ID,
		&courierEntity.Name,
		&courierEntity.Phone,
		&status,
		&vehicle,
		&courierEntity.GarantPolicyID,
		&courierEntity.CreatedAt,
		&courierEntity.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, queue.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository get error: %w", err)
	}

	courierEntity.Status = entities.CourierStatusType(status)
	courierEntity.Vehicle = entities.VehicleType(vehicle)
	return &courierEntity, nil
}

// ListWithGarantPolicy курьеры, которым назначен гарантированный минимум.
func (r *Repository) ListWithGarantPolicy(ctx context.Context) ([]entities.Courier, error) {
	query := `
		SELECT id, name, phone, status, vehicle, garant_policy_id, created_at, updated_at
		FROM couriers
		WHERE garant_policy_id IS NOT NULL
		ORDER BY id ASC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository list error: %w", err)
	}
	defer rows.Close()

	var couriers []entities.Courier
	for rows.Next() {
		var courierEntity entities.Courier
		var status, vehicle string
		err := rows.Scan(
			&courierEntity.ID,
			&courierEntity.Name,
			&courierEntity.Phone,
			&status,
			&vehicle,
			&courierEntity.GarantPolicyID,
			&courierEntity.CreatedAt,
			&courierEntity.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository scan error: %w", err)
		}
		courierEntity.Status = entities.CourierStatusType(status)
		courierEntity.Vehicle = entities.VehicleType(vehicle)
		couriers = append(couriers, courierEntity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier repository rows error: %w", err)
	}
	return couriers, nil
}

func (r *Repository) PolicyByCourier(ctx context.Context, courierID int64) (*entities.GarantPolicy, error) {
	query := `
		SELECT p.id, p.name, p.amount, p.late_minute_penalty
		FROM daily_garant_policies p
		JOIN couriers c ON c.garant_policy_id = p.id
		WHERE c.id = $1`

	var policy entities.GarantPolicy
	err := r.querier.QueryRow(ctx, query, courierID).Scan(
		&policy.ID,
		&policy.Name,
		&policy.Amount,
		&policy.LateMinutePenalty,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, garant.ErrNoPolicy
		}
		return nil, fmt.Errorf("unexpected courier repository policy error: %w", err)
	}
	return &policy, nil
}

// ClosingEntry последняя закрытая запись графика курьера.
func (r *Repository) ClosingEntry(ctx context.Context, courierID int64) (*entities.WorkScheduleEntry, error) {
	query := `
		SELECT id, courier_id, status, opened_at, closed_at, late_minutes
		FROM work_schedule_entries
		WHERE courier_id = $1 AND status = $2
		ORDER BY closed_at DESC
		LIMIT 1`

	var entry entities.WorkScheduleEntry
	var status string
	err := r.querier.QueryRow(ctx, query, courierID, string(entities.ScheduleClosed)).Scan(
		&entry.ID,
		&entry.CourierID,
		&status,
		&entry.OpenedAt,
		&entry.ClosedAt,
		&entry.LateMinutes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, garant.ErrNoClosedShift
		}
		return nil, fmt.Errorf("unexpected courier repository closing entry error: %w", err)
	}

	entry.Status = entities.ScheduleStatus(status)
	return &entry, nil
}
