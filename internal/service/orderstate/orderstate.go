package orderstate

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// geofenceRadiusMeters порог удаления от терминала, после которого
// заказ in_terminal автоматически переводится в on_way.
const geofenceRadiusMeters = 200.0

// retrospectiveWindow как далеко назад искать завершенные заказы,
// которым нужен ретроспективный сэмпл координат.
const retrospectiveWindow = 24 * time.Hour

// OrderState машина состояний заказа. Поведение управляется флагами
// статуса, а не его идентичностью; каталог читается из кеша справочников.
type OrderState struct {
	repository Repository
	refCache   RefCache
	producer   JobProducer
	clock      Clock
	log        logger.Logger

	completedTopic string
}

func New(
	repository Repository,
	refCache RefCache,
	producer JobProducer,
	clock Clock,
	log logger.Logger,
	completedTopic string,
) *OrderState {
	return &OrderState{
		repository:     repository,
		refCache:       refCache,
		producer:       producer,
		clock:          clock,
		log:            log.With(),
		completedTopic: completedTopic,
	}
}

// ChangeStatus переводит заказ в новый статус каталога. finished_date
// проставляется тогда и только тогда, когда целевой статус несет флаг
// finish или cancel.
func (s *OrderState) ChangeStatus(ctx context.Context, orderID string, statusID int64, actor string) (*entities.Order, error) {
	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	statuses, err := s.refCache.StatusesByOrganization(ctx, order.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("status catalog: %w", err)
	}

	from, ok := FindStatus(statuses, order.StatusID)
	if !ok {
		return nil, fmt.Errorf("%w: current status %d", ErrStatusNotFound, order.StatusID)
	}
	to, ok := FindStatus(statuses, statusID)
	if !ok {
		return nil, fmt.Errorf("%w: target status %d", ErrStatusNotFound, statusID)
	}

	// из терминального статуса выхода нет, иначе finished_date
	// перестает совпадать с флагами статуса. Повторная доставка того
	// же терминального перехода — штатный no-op.
	if from.Terminal() {
		if statusID == order.StatusID {
			return order, nil
		}
		return nil, fmt.Errorf("%w: order %s is in terminal status %d", ErrOrderFinished, orderID, order.StatusID)
	}

	orderModify := entities.OrderModify{
		ID:       &orderID,
		StatusID: &statusID,
	}
	if to.Terminal() {
		now := s.clock.Now()
		orderModify.FinishedAt = &now
	}

	updated, err := s.repository.Update(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	if err := s.recordAction(ctx, orderID, entities.ActionStatusChange, from.Name, to.Name, actor); err != nil {
		return nil, fmt.Errorf("record status action: %w", err)
	}

	if to.Finish {
		event := struct {
			OrderID string `json:"order_id"`
		}{OrderID: orderID}
		if err := s.producer.Enqueue(s.completedTopic, orderID, event); err != nil {
			// переход уже состоялся, потерю события заметит сверка
			s.log.With(
				logger.NewField("order", orderID),
				logger.NewField("error", err),
			).Error("failed to enqueue order completion")
		}
	}

	return updated, nil
}

// AssignCourier назначает курьера на заказ. Наличие courier_id само по
// себе авторитетно; отдельного перехода статуса не требуется.
func (s *OrderState) AssignCourier(ctx context.Context, orderID string, courierID int64, actor string) (*entities.Order, error) {
	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order.FinishedAt != nil {
		return nil, ErrOrderFinished
	}

	before := ""
	if order.CourierID != nil {
		before = strconv.FormatInt(*order.CourierID, 10)
	}

	orderModify := entities.OrderModify{
		ID:        &orderID,
		CourierID: &courierID,
	}
	updated, err := s.repository.Update(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("assign courier: %w", err)
	}

	after := strconv.FormatInt(courierID, 10)
	if err := s.recordAction(ctx, orderID, entities.ActionCourierChange, before, after, actor); err != nil {
		return nil, fmt.Errorf("record courier action: %w", err)
	}

	return updated, nil
}

// ClearCourier снимает курьера с заказа.
func (s *OrderState) ClearCourier(ctx context.Context, orderID string, actor string) error {
	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}

	before := ""
	if order.CourierID != nil {
		before = strconv.FormatInt(*order.CourierID, 10)
	}

	if err := s.repository.ClearCourier(ctx, orderID); err != nil {
		return fmt.Errorf("clear courier: %w", err)
	}

	if err := s.recordAction(ctx, orderID, entities.ActionCourierChange, before, "", actor); err != nil {
		return fmt.Errorf("record courier action: %w", err)
	}

	return nil
}

// ProcessLocation обрабатывает репорт координат курьера: геозона для
// in_terminal заказов, сэмплы координат для need_location. Ошибки по
// одному заказу логируются и не роняют остальную пачку.
func (s *OrderState) ProcessLocation(ctx context.Context, courierID int64, point entities.Location) error {
	openOrders, err := s.repository.OpenByCourier(ctx, courierID)
	if err != nil {
		return fmt.Errorf("open orders for courier %d: %w", courierID, err)
	}

	for i := range openOrders {
		if err := s.processOpenOrderLocation(ctx, &openOrders[i], point); err != nil {
			s.log.With(
				logger.NewField("order", openOrders[i].ID),
				logger.NewField("courier", courierID),
				logger.NewField("error", err),
			).Warn("location update skipped for order")
		}
	}

	now := s.clock.Now()
	finished, err := s.repository.FinishedByCourier(ctx, courierID, now.Add(-retrospectiveWindow), now)
	if err != nil {
		return fmt.Errorf("finished orders for courier %d: %w", courierID, err)
	}

	for i := range finished {
		if err := s.recordRetrospectiveSample(ctx, &finished[i], point); err != nil {
			s.log.With(
				logger.NewField("order", finished[i].ID),
				logger.NewField("courier", courierID),
				logger.NewField("error", err),
			).Warn("retrospective location sample skipped")
		}
	}

	return nil
}

func (s *OrderState) processOpenOrderLocation(ctx context.Context, order *entities.Order, point entities.Location) error {
	statuses, err := s.refCache.StatusesByOrganization(ctx, order.OrganizationID)
	if err != nil {
		return fmt.Errorf("status catalog: %w", err)
	}

	status, ok := FindStatus(statuses, order.StatusID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrStatusNotFound, order.StatusID)
	}

	if status.InTerminal {
		terminal, err := s.refCache.Terminal(ctx, order.TerminalID)
		if err != nil {
			return fmt.Errorf("terminal %d: %w", order.TerminalID, err)
		}

		if point.DistanceMeters(terminal.Location) >= geofenceRadiusMeters {
			onWay, ok := OnWayStatus(statuses)
			if !ok {
				return fmt.Errorf("%w: no on_way status for organization %d", ErrStatusNotFound, order.OrganizationID)
			}

			if _, err := s.ChangeStatus(ctx, order.ID, onWay.ID, "geofence"); err != nil {
				return fmt.Errorf("geofence transition: %w", err)
			}
		}
	}

	if status.NeedLocation && !status.Finish {
		location := entities.OrderLocation{
			OrderID:   order.ID,
			CourierID: derefCourier(order),
			Point:     point,
			CreatedAt: s.clock.Now(),
		}
		if err := s.repository.InsertLocation(ctx, location); err != nil {
			return fmt.Errorf("insert location sample: %w", err)
		}
	}

	return nil
}

// recordRetrospectiveSample единственный сэмпл для завершенного
// need_location заказа, если сэмплов по нему еще нет: берется последняя
// известная позиция курьера.
func (s *OrderState) recordRetrospectiveSample(ctx context.Context, order *entities.Order, point entities.Location) error {
	statuses, err := s.refCache.StatusesByOrganization(ctx, order.OrganizationID)
	if err != nil {
		return fmt.Errorf("status catalog: %w", err)
	}

	status, ok := FindStatus(statuses, order.StatusID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrStatusNotFound, order.StatusID)
	}

	if !status.NeedLocation || !status.Finish {
		return nil
	}

	exists, err := s.repository.HasLocation(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("check location samples: %w", err)
	}
	if exists {
		return nil
	}

	location := entities.OrderLocation{
		OrderID:   order.ID,
		CourierID: derefCourier(order),
		Point:     point,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repository.InsertLocation(ctx, location); err != nil {
		return fmt.Errorf("insert retrospective sample: %w", err)
	}
	return nil
}

// recordAction пишет строку аудита; длительность — секунды с последнего
// STATUS_CHANGE по заказу, 0 если его не было.
func (s *OrderState) recordAction(ctx context.Context, orderID string, kind entities.ActionKind, before, after, actor string) error {
	last, err := s.repository.LastStatusChangeAt(ctx, orderID)
	if err != nil {
		return fmt.Errorf("last status change: %w", err)
	}

	now := s.clock.Now()
	var duration time.Duration
	if !last.IsZero() {
		duration = now.Sub(last)
	}

	action := entities.OrderAction{
		OrderID:     orderID,
		Kind:        kind,
		Before:      before,
		After:       after,
		Description: actionDescription(kind, before, after),
		Duration:    duration,
		Actor:       actor,
		CreatedAt:   now,
	}

	return s.repository.InsertAction(ctx, action)
}

func actionDescription(kind entities.ActionKind, before, after string) string {
	switch kind {
	case entities.ActionStatusChange:
		return fmt.Sprintf("status changed from %q to %q", before, after)
	case entities.ActionCourierChange:
		if after == "" {
			return fmt.Sprintf("courier %s removed", before)
		}
		if before == "" {
			return fmt.Sprintf("courier %s assigned", after)
		}
		return fmt.Sprintf("courier changed from %s to %s", before, after)
	default:
		return string(kind)
	}
}

func derefCourier(order *entities.Order) int64 {
	if order.CourierID == nil {
		return 0
	}
	return *order.CourierID
}
