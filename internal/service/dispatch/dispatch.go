package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/gateway/partner"
	"dispatch/internal/service/orderstate"
	"dispatch/internal/service/pricing"
	queueservice "dispatch/internal/service/queue"
	"dispatch/pkg/logger"
)

// dispatchableSort максимальный sort статуса, в котором заказ еще
// можно назначать из очереди.
const dispatchableSort = 1

const unassignedBatchSize = 100

const (
	actorDispatch = "dispatch"
	actorPartner  = "partner"
)

// Dispatch координатор назначения: очередь курьеров первична, внешний
// партнер — fallback после порога ожидания.
type Dispatch struct {
	repository Repository
	queue      CourierQueue
	orderState OrderState
	pricing    PricingResolver
	partnerGw  PartnerGateway
	refCache   RefCache
	producer   JobProducer
	clock      Clock
	log        logger.Logger

	createdTopic         string
	partnerCourierID     int64
	partnerFallbackAfter time.Duration
	emergencyName        string
	emergencyPhone       string
}

func New(
	repository Repository,
	queue CourierQueue,
	orderState OrderState,
	pricingResolver PricingResolver,
	partnerGw PartnerGateway,
	refCache RefCache,
	producer JobProducer,
	clock Clock,
	log logger.Logger,
	createdTopic string,
	partnerCourierID int64,
	partnerFallbackAfter time.Duration,
	emergencyName string,
	emergencyPhone string,
) *Dispatch {
	return &Dispatch{
		repository:           repository,
		queue:                queue,
		orderState:           orderState,
		pricing:              pricingResolver,
		partnerGw:            partnerGw,
		refCache:             refCache,
		producer:             producer,
		clock:                clock,
		log:                  log.With(),
		createdTopic:         createdTopic,
		partnerCourierID:     partnerCourierID,
		partnerFallbackAfter: partnerFallbackAfter,
		emergencyName:        emergencyName,
		emergencyPhone:       emergencyPhone,
	}
}

type CreateOrderInput struct {
	ID             string
	OrganizationID int64
	TerminalID     int64
	CustomerName   string
	CustomerPhone  string
	OrderPrice     int64
	PaymentKind    entities.PaymentKind
	Destination    entities.Location
	Vehicle        entities.VehicleType
}

// CreateOrder прием заказа: цена доставки резолвится сразу, заказ
// сохраняется в первом статусе прогрессии и ставится в очередь на
// назначение событием order.created.
func (d *Dispatch) CreateOrder(ctx context.Context, in CreateOrderInput) (*entities.Order, error) {
	resolution, err := d.pricing.Resolve(ctx, pricing.ResolveInput{
		OrganizationID: in.OrganizationID,
		TerminalID:     in.TerminalID,
		Destination:    in.Destination,
		OrderPrice:     in.OrderPrice,
		PaymentKind:    in.PaymentKind,
		Vehicle:        in.Vehicle,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve pricing: %w", err)
	}

	statuses, err := d.refCache.StatusesByOrganization(ctx, in.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("status catalog: %w", err)
	}
	first, ok := orderstate.FirstSortStatus(statuses)
	if !ok {
		return nil, fmt.Errorf("%w: empty catalog for organization %d", orderstate.ErrStatusNotFound, in.OrganizationID)
	}

	terminal, err := d.refCache.Terminal(ctx, in.TerminalID)
	if err != nil {
		return nil, fmt.Errorf("terminal %d: %w", in.TerminalID, err)
	}

	order, err := d.repository.Create(ctx, entities.Order{
		ID:             in.ID,
		OrganizationID: in.OrganizationID,
		TerminalID:     in.TerminalID,
		CustomerName:   in.CustomerName,
		CustomerPhone:  in.CustomerPhone,
		StatusID:       first.ID,
		CreatedAt:      d.clock.Now(),
		DistanceKm:     resolution.DistanceKm,
		Duration:       resolution.Duration,
		Price:          resolution.Price,
		PricingRuleID:  &resolution.Rule.ID,
		PaymentKind:    in.PaymentKind,
		Pickup:         terminal.Location,
		Destination:    in.Destination,
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	event := struct {
		OrderID string `json:"order_id"`
	}{OrderID: order.ID}
	if err := d.producer.Enqueue(d.createdTopic, order.ID, event); err != nil {
		// заказ создан, подбор курьера догонит retry-проход
		d.log.With(
			logger.NewField("order", order.ID),
			logger.NewField("error", err),
		).Error("failed to enqueue order.created")
	}

	return order, nil
}

// AssignFromQueue пытается назначить на заказ следующего курьера из
// очереди его терминала. Пустая очередь — не ошибка: заказ остается
// неназначенным до следующего прохода, а после порога ожидания уходит
// внешнему партнеру.
func (d *Dispatch) AssignFromQueue(ctx context.Context, orderID string) error {
	order, err := d.repository.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}

	if !d.dispatchable(ctx, order) {
		return nil
	}

	vehicle := d.ruleVehicle(ctx, order)

	courierID, err := d.queue.Pop(ctx, order.TerminalID, vehicle)
	if err != nil {
		if errors.Is(err, queueservice.ErrQueueEmpty) {
			return d.maybeFallbackToPartner(ctx, order)
		}
		return fmt.Errorf("pop courier: %w", err)
	}

	if _, err := d.orderState.AssignCourier(ctx, orderID, courierID, actorDispatch); err != nil {
		return fmt.Errorf("assign courier %d: %w", courierID, err)
	}

	if err := d.queue.SetLast(ctx, courierID, order.TerminalID, vehicle); err != nil {
		// назначение уже состоялось, маркер последнего курьера
		// информационный
		d.log.With(
			logger.NewField("courier", courierID),
			logger.NewField("order", orderID),
			logger.NewField("error", err),
		).Warn("failed to set last assigned courier")
	}

	return nil
}

// ProcessUnassigned проход по неназначенным заказам; ошибка по одному
// заказу не прерывает остальные.
func (d *Dispatch) ProcessUnassigned(ctx context.Context) error {
	orders, err := d.repository.ListUnassigned(ctx, unassignedBatchSize)
	if err != nil {
		return fmt.Errorf("list unassigned: %w", err)
	}

	for i := range orders {
		if err := d.AssignFromQueue(ctx, orders[i].ID); err != nil {
			d.log.With(
				logger.NewField("order", orders[i].ID),
				logger.NewField("error", err),
			).Warn("dispatch pass failed for order")
		}
	}

	return nil
}

// ReassignTerminal переносит заказ на другой терминал: курьер
// снимается, цена пересчитывается от координат нового терминала,
// статус возвращается в начало прогрессии.
func (d *Dispatch) ReassignTerminal(ctx context.Context, orderID string, terminalID int64) (*entities.Order, error) {
	order, err := d.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order.FinishedAt != nil {
		return nil, orderstate.ErrOrderFinished
	}

	if order.CourierID != nil {
		if err := d.orderState.ClearCourier(ctx, orderID, actorDispatch); err != nil {
			return nil, fmt.Errorf("clear courier: %w", err)
		}
	}

	resolution, err := d.pricing.Resolve(ctx, pricing.ResolveInput{
		OrganizationID: order.OrganizationID,
		TerminalID:     terminalID,
		Destination:    order.Destination,
		OrderPrice:     order.Price,
		PaymentKind:    order.PaymentKind,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve pricing for terminal %d: %w", terminalID, err)
	}

	orderModify := entities.OrderModify{
		ID:            &orderID,
		TerminalID:    &terminalID,
		Price:         &resolution.Price,
		DistanceKm:    &resolution.DistanceKm,
		Duration:      &resolution.Duration,
		PricingRuleID: &resolution.Rule.ID,
	}
	if _, err := d.repository.Update(ctx, orderModify); err != nil {
		return nil, fmt.Errorf("update order terminal: %w", err)
	}

	statuses, err := d.refCache.StatusesByOrganization(ctx, order.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("status catalog: %w", err)
	}
	first, ok := orderstate.FirstSortStatus(statuses)
	if !ok {
		return nil, fmt.Errorf("%w: empty catalog for organization %d", orderstate.ErrStatusNotFound, order.OrganizationID)
	}

	updated, err := d.orderState.ChangeStatus(ctx, orderID, first.ID, actorDispatch)
	if err != nil {
		return nil, fmt.Errorf("reseed status: %w", err)
	}

	return updated, nil
}

// HandlePartnerStatus пришедший по вебхуку статус заявки партнера.
// Коды вне таблицы организации игнорируются.
func (d *Dispatch) HandlePartnerStatus(ctx context.Context, claimID, statusCode string) error {
	order, err := d.repository.GetByPartnerClaim(ctx, claimID)
	if err != nil {
		return fmt.Errorf("order by claim %s: %w", claimID, err)
	}

	organization, err := d.refCache.Organization(ctx, order.OrganizationID)
	if err != nil {
		return fmt.Errorf("organization %d: %w", order.OrganizationID, err)
	}

	statusID, ok := organization.PartnerStatusCodes[statusCode]
	if !ok {
		d.log.With(
			logger.NewField("order", order.ID),
			logger.NewField("code", statusCode),
		).Info("unmapped partner status code, ignoring")
		return nil
	}

	if _, err := d.orderState.ChangeStatus(ctx, order.ID, statusID, actorPartner); err != nil {
		return fmt.Errorf("apply partner status: %w", err)
	}
	return nil
}

// dispatchable курьер не назначен, заказ не завершен, не отдан
// партнеру и стоит в начале прогрессии статусов.
func (d *Dispatch) dispatchable(ctx context.Context, order *entities.Order) bool {
	if order.CourierID != nil || order.FinishedAt != nil || order.PartnerClaimID != nil {
		return false
	}

	statuses, err := d.refCache.StatusesByOrganization(ctx, order.OrganizationID)
	if err != nil {
		d.log.With(
			logger.NewField("order", order.ID),
			logger.NewField("error", err),
		).Warn("status catalog unavailable, skipping order")
		return false
	}

	status, ok := orderstate.FindStatus(statuses, order.StatusID)
	if !ok {
		d.log.With(
			logger.NewField("order", order.ID),
			logger.NewField("status", order.StatusID),
		).Warn("order status missing from catalog, skipping order")
		return false
	}

	return status.Sort <= dispatchableSort
}

// ruleVehicle предпочтение по транспорту из тарифного правила заказа;
// пустое значение — без предпочтения.
func (d *Dispatch) ruleVehicle(ctx context.Context, order *entities.Order) entities.VehicleType {
	if order.PricingRuleID == nil {
		return ""
	}

	rules, err := d.refCache.PricingRules(ctx, order.OrganizationID)
	if err != nil {
		d.log.With(
			logger.NewField("order", order.ID),
			logger.NewField("error", err),
		).Warn("pricing rules unavailable, dispatching without vehicle preference")
		return ""
	}

	for _, rule := range rules {
		if rule.ID == *order.PricingRuleID {
			return rule.Vehicle
		}
	}
	return ""
}

func (d *Dispatch) maybeFallbackToPartner(ctx context.Context, order *entities.Order) error {
	if d.clock.Now().Sub(order.CreatedAt) < d.partnerFallbackAfter {
		return nil
	}
	return d.fallbackToPartner(ctx, order)
}

// fallbackToPartner бронирует доставку у внешнего партнера: create →
// accept, затем заказ помечается claim id и зарезервированным
// "курьером" партнера. При любой ошибке до accept заказ остается в
// исходном состоянии для следующего прохода.
func (d *Dispatch) fallbackToPartner(ctx context.Context, order *entities.Order) error {
	terminal, err := d.refCache.Terminal(ctx, order.TerminalID)
	if err != nil {
		return fmt.Errorf("terminal %d: %w", order.TerminalID, err)
	}

	req := partner.ShipmentRequest{
		OrderID:       order.ID,
		Source:        terminal.Location,
		SourceName:    terminal.Name,
		Destination:   order.Destination,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		Items: []partner.ShipmentItem{
			{
				Title:    fmt.Sprintf("delivery order %s", order.ID),
				Quantity: 1,
				Price:    order.Price,
			},
		},
		EmergencyContactName:  d.emergencyName,
		EmergencyContactPhone: d.emergencyPhone,
	}
	if order.PaymentKind == entities.PaymentCash {
		req.CashAmount = order.Price
	}

	claim, err := d.partnerGw.CreateClaim(ctx, req)
	if err != nil {
		return fmt.Errorf("create partner claim: %w", err)
	}

	if _, err := d.partnerGw.AcceptClaim(ctx, claim.ID, claim.Version); err != nil {
		return fmt.Errorf("accept partner claim %s: %w", claim.ID, err)
	}

	orderModify := entities.OrderModify{
		ID:             &order.ID,
		PartnerClaimID: &claim.ID,
	}
	if _, err := d.repository.Update(ctx, orderModify); err != nil {
		return fmt.Errorf("record partner claim: %w", err)
	}

	if _, err := d.orderState.AssignCourier(ctx, order.ID, d.partnerCourierID, actorPartner); err != nil {
		return fmt.Errorf("assign partner courier: %w", err)
	}

	d.log.With(
		logger.NewField("order", order.ID),
		logger.NewField("claim", claim.ID),
	).Info("order dispatched to external partner")

	return nil
}
