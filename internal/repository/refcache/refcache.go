package refcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"dispatch/internal/entities"
)

// Репозиторий читает справочники сквозь Redis; наполнение и рефреш
// кеша — обязанность внешнего коллаборатора, здесь только чтение.

const keyPrefix = "ref:"

var ErrNotFound = errors.New("reference data not found")

type Repository struct {
	client *redis.Client
}

func New(client *redis.Client) *Repository {
	return &Repository{
		client: client,
	}
}

func (r *Repository) Terminal(ctx context.Context, id int64) (*entities.Terminal, error) {
	var model terminalJSON
	err := r.getJSON(ctx, fmt.Sprintf("%sterminals:%d", keyPrefix, id), &model)
	if err != nil {
		return nil, fmt.Errorf("refcache terminal %d: %w", id, err)
	}
	return toTerminalDomain(&model), nil
}

func (r *Repository) Organization(ctx context.Context, id int64) (*entities.Organization, error) {
	var model organizationJSON
	err := r.getJSON(ctx, fmt.Sprintf("%sorganizations:%d", keyPrefix, id), &model)
	if err != nil {
		return nil, fmt.Errorf("refcache organization %d: %w", id, err)
	}
	return toOrganizationDomain(&model), nil
}

func (r *Repository) StatusesByOrganization(ctx context.Context, organizationID int64) ([]entities.OrderStatus, error) {
	var models []orderStatusJSON
	err := r.getJSON(ctx, fmt.Sprintf("%sorder_statuses:%d", keyPrefix, organizationID), &models)
	if err != nil {
		return nil, fmt.Errorf("refcache order statuses for organization %d: %w", organizationID, err)
	}

	statuses := make([]entities.OrderStatus, 0, len(models))
	for i := range models {
		statuses = append(statuses, toStatusDomain(&models[i]))
	}
	return statuses, nil
}

func (r *Repository) PricingRules(ctx context.Context, organizationID int64) ([]entities.PricingRule, error) {
	var models []pricingRuleJSON
	err := r.getJSON(ctx, fmt.Sprintf("%sdelivery_pricing:%d", keyPrefix, organizationID), &models)
	if err != nil {
		return nil, fmt.Errorf("refcache pricing rules for organization %d: %w", organizationID, err)
	}

	rules := make([]entities.PricingRule, 0, len(models))
	for i := range models {
		rules = append(rules, toPricingRuleDomain(&models[i]))
	}
	return rules, nil
}

func (r *Repository) BonusRules(ctx context.Context, organizationID int64) ([]entities.BonusRule, error) {
	var models []bonusRuleJSON
	err := r.getJSON(ctx, fmt.Sprintf("%sorder_bonus_pricing:%d", keyPrefix, organizationID), &models)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// отсутствие таблицы бонусов — штатная ситуация
			return nil, nil
		}
		return nil, fmt.Errorf("refcache bonus rules for organization %d: %w", organizationID, err)
	}

	rules := make([]entities.BonusRule, 0, len(models))
	for i := range models {
		rules = append(rules, toBonusRuleDomain(&models[i]))
	}
	return rules, nil
}

func (r *Repository) getJSON(ctx context.Context, key string, dest any) error {
	raw, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}
