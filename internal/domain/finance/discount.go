package finance

import (
	"os_financeiro/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CalculateDiscount derives one level's discount from its applicable subtotal:
// percent -> subtotal*value/100, value -> min(value, subtotal).
//
// The value is not clamped here. Negative inputs propagate as-is.
func CalculateDiscount(d entities.DiscountCategory, subtotal decimal.Decimal) decimal.Decimal {
	if d.Type == entities.DiscountTypePercent {
		return subtotal.Mul(d.Value).Div(hundred)
	}
	return decimal.Min(d.Value, subtotal)
}

type totalsStep func(entities.CalculatedTotals, entities.DiscountConfig) entities.CalculatedTotals

// The order is significant: the total level is computed on the already discounted
// parts and services totals.
var discountCascade = []totalsStep{
	applyPartsDiscount,
	applyServicesDiscount,
	applyTotalDiscount,
}

// ComputeTotals runs the discount cascade over the two subtotals. It never fails;
// use ValidateTotals for the post-condition.
func ComputeTotals(subtotalParts, subtotalServices decimal.Decimal, cfg entities.DiscountConfig) entities.CalculatedTotals {
	t := entities.CalculatedTotals{
		SubtotalParts:    subtotalParts,
		SubtotalServices: subtotalServices,
	}
	for _, step := range discountCascade {
		t = step(t, cfg)
	}
	return t
}

func applyPartsDiscount(t entities.CalculatedTotals, cfg entities.DiscountConfig) entities.CalculatedTotals {
	t.DiscountParts = CalculateDiscount(cfg.Parts, t.SubtotalParts)
	t.TotalParts = t.SubtotalParts.Sub(t.DiscountParts)
	return t
}

func applyServicesDiscount(t entities.CalculatedTotals, cfg entities.DiscountConfig) entities.CalculatedTotals {
	t.DiscountServices = CalculateDiscount(cfg.Services, t.SubtotalServices)
	t.TotalServices = t.SubtotalServices.Sub(t.DiscountServices)
	return t
}

func applyTotalDiscount(t entities.CalculatedTotals, cfg entities.DiscountConfig) entities.CalculatedTotals {
	base := t.TotalParts.Add(t.TotalServices)
	t.DiscountTotal = CalculateDiscount(cfg.Total, base)
	t.GrandTotal = base.Sub(t.DiscountTotal)
	return t
}

// ValidateTotals reports a negative grand total. Callers surface it as a warning.
func ValidateTotals(t entities.CalculatedTotals) error {
	if t.GrandTotal.IsNegative() {
		return &ValidationError{Err: ErrNegativeGrandTotal, Details: t.GrandTotal.StringFixed(CentPlaces)}
	}
	return nil
}

// WithCalculated returns cfg with every level's Calculated field taken from t.
func WithCalculated(cfg entities.DiscountConfig, t entities.CalculatedTotals) entities.DiscountConfig {
	cfg.Parts.Calculated = t.DiscountParts
	cfg.Services.Calculated = t.DiscountServices
	cfg.Total.Calculated = t.DiscountTotal
	return cfg
}

// ClampDiscount applies the clamp-at-input policy for one level: percent values are
// kept within [0,100], absolute values within [0, subtotal].
func ClampDiscount(d entities.DiscountCategory, subtotal decimal.Decimal) entities.DiscountCategory {
	if !d.Type.Valid() {
		d.Type = entities.DiscountTypeValue
	}

	upper := hundred
	if d.Type == entities.DiscountTypeValue {
		upper = decimal.Max(subtotal, decimal.Zero)
	}
	value := decimal.Min(decimal.Max(d.Value, decimal.Zero), upper)

	clamped := entities.DiscountCategory{Type: d.Type, Value: value}
	clamped.Calculated = CalculateDiscount(clamped, subtotal)
	return clamped
}

// ClampDiscountConfig clamps all three levels, each against the subtotal it applies
// to in the cascade.
func ClampDiscountConfig(cfg entities.DiscountConfig, subtotalParts, subtotalServices decimal.Decimal) entities.DiscountConfig {
	parts := ClampDiscount(cfg.Parts, subtotalParts)
	services := ClampDiscount(cfg.Services, subtotalServices)
	base := subtotalParts.Sub(parts.Calculated).Add(subtotalServices.Sub(services.Calculated))
	total := ClampDiscount(cfg.Total, base)
	return entities.DiscountConfig{Parts: parts, Services: services, Total: total}
}
