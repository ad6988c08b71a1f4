package order

import (
	"time"

	"dispatch/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	return &entities.Order{
		ID:             o.ID,
		OrganizationID: o.OrganizationID,
		TerminalID:     o.TerminalID,
		CustomerName:   o.CustomerName,
		CustomerPhone:  o.CustomerPhone,
		CourierID:      o.CourierID,
		StatusID:       o.StatusID,
		CreatedAt:      o.CreatedAt,
		FinishedAt:     o.FinishedAt,
		DistanceKm:     o.DistanceKm,
		Duration:       time.Duration(o.DurationSec) * time.Second,
		Price:          o.Price,
		PricingRuleID:  o.PricingRuleID,
		PaymentKind:    entities.PaymentKind(o.PaymentKind),
		Pickup:         entities.Location{Lat: o.PickupLat, Lon: o.PickupLon},
		Destination:    entities.Location{Lat: o.DestLat, Lon: o.DestLon},
		PartnerClaimID: o.PartnerClaimID,
	}
}

func ToActionDomain(a *OrderActionDB) *entities.OrderAction {
	return &entities.OrderAction{
		ID:          a.ID,
		OrderID:     a.OrderID,
		Kind:        entities.ActionKind(a.Kind),
		Before:      a.Before,
		After:       a.After,
		Description: a.Description,
		Duration:    time.Duration(a.DurationSec) * time.Second,
		Actor:       a.Actor,
		CreatedAt:   a.CreatedAt,
	}
}
