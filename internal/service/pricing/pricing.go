package pricing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/repository/refcache"
	"dispatch/pkg/logger"
)

// distancePaddingMeters добавляется к сырой дистанции маршрута, чтобы
// сгладить погрешность измерения. Подстроечная константа, не инвариант.
const distancePaddingMeters = 100.0

const minutesPerDay = 24 * 60

type ResolveInput struct {
	OrganizationID int64
	TerminalID     int64
	Destination    entities.Location
	OrderPrice     int64
	PaymentKind    entities.PaymentKind

	// Vehicle пустой — без предпочтения по типу транспорта.
	Vehicle entities.VehicleType
}

type Resolution struct {
	Rule       entities.PricingRule
	Price      int64
	DistanceKm float64
	Duration   time.Duration
}

// Pricing подбирает тарифное правило и считает цену доставки.
// Дистанция выводится через движок маршрутизации на каждый вызов,
// без кеширования между вызовами.
type Pricing struct {
	refCache      RefCache
	routing       RoutingGateway
	clock         Clock
	log           logger.Logger
	surchargeUnit int64
}

func New(refCache RefCache, routing RoutingGateway, clock Clock, log logger.Logger, surchargeUnit int64) *Pricing {
	return &Pricing{
		refCache:      refCache,
		routing:       routing,
		clock:         clock,
		log:           log,
		surchargeUnit: surchargeUnit,
	}
}

func (p *Pricing) Resolve(ctx context.Context, in ResolveInput) (*Resolution, error) {
	terminal, err := p.refCache.Terminal(ctx, in.TerminalID)
	if err != nil {
		if errors.Is(err, refcache.ErrNotFound) {
			return nil, ErrTerminalNotFound
		}
		return nil, fmt.Errorf("pricing terminal lookup: %w", err)
	}

	rules, err := p.refCache.PricingRules(ctx, in.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("pricing rules lookup: %w", err)
	}

	candidates := p.filterCandidates(rules, in, p.clock.Now())
	if len(candidates) == 0 {
		rejectionsTotal.Inc()
		return nil, ErrNoEligiblePricing
	}

	sortCandidates(candidates)

	route, err := p.routing.GetRoute(ctx, terminal.Location, in.Destination)
	if err != nil {
		return nil, fmt.Errorf("pricing route: %w", err)
	}

	distanceKm := (route.DistanceMeters + distancePaddingMeters) / 1000

	chosen := chooseRule(candidates, distanceKm)
	if chosen == nil {
		rejectionsTotal.Inc()
		return nil, ErrNoEligiblePricing
	}

	return &Resolution{
		Rule:       *chosen,
		Price:      p.computePrice(chosen, distanceKm),
		DistanceKm: distanceKm,
		Duration:   route.Duration,
	}, nil
}

func (p *Pricing) filterCandidates(rules []entities.PricingRule, in ResolveInput, now time.Time) []entities.PricingRule {
	var candidates []entities.PricingRule
	for _, rule := range rules {
		if !rule.Active {
			continue
		}
		if rule.OrganizationID != in.OrganizationID {
			continue
		}
		if rule.TerminalID != nil && *rule.TerminalID != in.TerminalID {
			continue
		}
		if in.Vehicle != "" && rule.Vehicle != in.Vehicle {
			continue
		}
		if rule.MinPrice > in.OrderPrice {
			continue
		}
		if rule.PaymentKind != nil && *rule.PaymentKind != in.PaymentKind {
			continue
		}
		if !containsDay(rule.Days, now.Weekday()) {
			continue
		}
		if !p.windowContains(&rule, now) {
			continue
		}
		candidates = append(candidates, rule)
	}
	return candidates
}

// sortCandidates фиксированный порядок предпочтения: не-дефолтные
// раньше дефолтных, дешевле за км раньше, выше порог min_price раньше.
func sortCandidates(candidates []entities.PricingRule) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Default != b.Default {
			return !a.Default
		}
		if a.PricePerKm != b.PricePerKm {
			return a.PricePerKm < b.PricePerKm
		}
		return a.MinPrice > b.MinPrice
	})
}

// chooseRule выбирает правило под фактическую дистанцию. Для чисто
// скобочных тарифов (price_per_km = 0) кандидат отбрасывается, если
// его максимальная скобка меньше дистанции; для тарифов со ставкой за
// км дистанция должна превышать min_distance_km правила.
func chooseRule(candidates []entities.PricingRule, distanceKm float64) *entities.PricingRule {
	var chosen *entities.PricingRule
	best := math.MaxFloat64

	for i := range candidates {
		rule := &candidates[i]

		if rule.PricePerKm == 0 {
			if maxBracketKm(rule) < distanceKm {
				continue
			}
		} else {
			if distanceKm < rule.MinDistanceKm {
				continue
			}
		}

		if distanceKm < best {
			best = distanceKm
			chosen = rule
		}
	}
	return chosen
}

// computePrice проходит скобки по порядку, списывая дистанцию и
// накапливая их плоские цены; остаток тарифицируется за целые
// километры плюс полосная надбавка за дробный хвост.
func (p *Pricing) computePrice(rule *entities.PricingRule, distanceKm float64) int64 {
	remaining := distanceKm
	var total int64

	for _, bracket := range rule.Brackets {
		if remaining <= 0 {
			break
		}
		total += bracket.Price
		remaining -= bracket.ToKm - bracket.FromKm
	}

	if remaining > 0 {
		whole := math.Floor(remaining)
		total += int64(whole) * rule.PricePerKm
		total += p.fractionSurcharge(remaining - whole)
	}

	return total
}

func (p *Pricing) fractionSurcharge(frac float64) int64 {
	switch {
	case frac <= 0:
		return 0
	case frac < 0.25:
		return p.surchargeUnit
	case frac < 0.5:
		return 2 * p.surchargeUnit
	default:
		return 3 * p.surchargeUnit
	}
}

func maxBracketKm(rule *entities.PricingRule) float64 {
	var max float64
	for _, bracket := range rule.Brackets {
		if bracket.ToKm > max {
			max = bracket.ToKm
		}
	}
	return max
}

func containsDay(days []time.Weekday, day time.Weekday) bool {
	if len(days) == 0 {
		return true
	}
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

// windowContains проверяет попадание "сейчас" в окно активности.
// Окно через полночь (end < start) обрабатывается сдвигом конца
// и текущей минуты за 24:00. Правило с нечитаемым окном считается
// активным всегда, но битая строка справочника должна быть видна в
// логах.
func (p *Pricing) windowContains(rule *entities.PricingRule, now time.Time) bool {
	startMin, ok := parseMinutes(rule.StartTime)
	if !ok {
		p.log.With(
			logger.NewField("rule_id", rule.ID),
			logger.NewField("start_time", rule.StartTime),
		).Warn("pricing rule has malformed start_time, treating window as always active")
		return true
	}
	endMin, ok := parseMinutes(rule.EndTime)
	if !ok {
		p.log.With(
			logger.NewField("rule_id", rule.ID),
			logger.NewField("end_time", rule.EndTime),
		).Warn("pricing rule has malformed end_time, treating window as always active")
		return true
	}

	nowMin := now.Hour()*60 + now.Minute()

	if endMin < startMin {
		endMin += minutesPerDay
		if nowMin < startMin {
			nowMin += minutesPerDay
		}
	}

	return nowMin >= startMin && nowMin <= endMin
}

func parseMinutes(value string) (int, bool) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
