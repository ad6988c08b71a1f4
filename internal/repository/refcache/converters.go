package refcache

import (
	"time"

	"dispatch/internal/entities"
)

func toTerminalDomain(t *terminalJSON) *entities.Terminal {
	return &entities.Terminal{
		ID:             t.ID,
		OrganizationID: t.OrganizationID,
		Name:           t.Name,
		Location: entities.Location{
			Lat: t.Latitude,
			Lon: t.Longitude,
		},
		LinkedTerminalID: t.LinkedTerminalID,
		FuelBonus:        t.FuelBonus,
		Active:           t.Active,
	}
}

func toOrganizationDomain(o *organizationJSON) *entities.Organization {
	return &entities.Organization{
		ID:                 o.ID,
		Name:               o.Name,
		PaymentModel:       entities.PaymentKind(o.PaymentModel),
		PartnerStatusCodes: o.PartnerStatusCodes,
	}
}

func toStatusDomain(s *orderStatusJSON) entities.OrderStatus {
	return entities.OrderStatus{
		ID:             s.ID,
		OrganizationID: s.OrganizationID,
		Name:           s.Name,
		Sort:           s.Sort,
		Finish:         s.Finish,
		Cancel:         s.Cancel,
		OnWay:          s.OnWay,
		InTerminal:     s.InTerminal,
		NeedLocation:   s.NeedLocation,
		ShouldPay:      s.ShouldPay,
	}
}

func toPricingRuleDomain(r *pricingRuleJSON) entities.PricingRule {
	days := make([]time.Weekday, 0, len(r.Days))
	for _, d := range r.Days {
		days = append(days, time.Weekday(d))
	}

	brackets := make([]entities.DistanceBracket, 0, len(r.Rules))
	for _, b := range r.Rules {
		brackets = append(brackets, entities.DistanceBracket{
			FromKm: b.DistanceFrom,
			ToKm:   b.DistanceTo,
			Price:  b.Price,
		})
	}

	var paymentKind *entities.PaymentKind
	if r.PaymentKind != nil {
		kind := entities.PaymentKind(*r.PaymentKind)
		paymentKind = &kind
	}

	return entities.PricingRule{
		ID:             r.ID,
		OrganizationID: r.OrganizationID,
		TerminalID:     r.TerminalID,
		Active:         r.Active,
		Default:        r.Default,
		Vehicle:        entities.VehicleType(r.Vehicle),
		Days:           days,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		MinPrice:       r.MinPrice,
		MinDistanceKm:  r.MinDistanceKm,
		PricePerKm:     r.PricePerKm,
		Brackets:       brackets,
		PaymentKind:    paymentKind,
	}
}

func toBonusRuleDomain(r *bonusRuleJSON) entities.BonusRule {
	return entities.BonusRule{
		ID:             r.ID,
		OrganizationID: r.OrganizationID,
		TerminalID:     r.TerminalID,
		DistanceFromKm: r.DistanceFrom,
		DistanceToKm:   r.DistanceTo,
		MaxMinutes:     r.TimeTo,
		Amount:         r.Bonus,
	}
}
