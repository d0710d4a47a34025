package entities

import "github.com/shopspring/decimal"

type DiscountType string

const (
	DiscountTypePercent DiscountType = "percent"
	DiscountTypeValue   DiscountType = "value"
)

func (t DiscountType) Valid() bool {
	return t == DiscountTypePercent || t == DiscountTypeValue
}

// DiscountCategory is one discount level. Calculated is always re-derived from
// Type, Value and the level's subtotal; it is never persisted.
type DiscountCategory struct {
	Type       DiscountType    `json:"type"`
	Value      decimal.Decimal `json:"value"`
	Calculated decimal.Decimal `json:"calculated"`
}

// DiscountConfig holds the three cascading levels, applied parts -> services -> total.
type DiscountConfig struct {
	Parts    DiscountCategory `json:"parts"`
	Services DiscountCategory `json:"services"`
	Total    DiscountCategory `json:"total"`
}

// CalculatedTotals is a pure function of the line items and a DiscountConfig.
type CalculatedTotals struct {
	SubtotalParts    decimal.Decimal `json:"subtotal_parts"`
	SubtotalServices decimal.Decimal `json:"subtotal_services"`
	DiscountParts    decimal.Decimal `json:"discount_parts"`
	DiscountServices decimal.Decimal `json:"discount_services"`
	DiscountTotal    decimal.Decimal `json:"discount_total"`
	TotalParts       decimal.Decimal `json:"total_parts"`
	TotalServices    decimal.Decimal `json:"total_services"`
	GrandTotal       decimal.Decimal `json:"grand_total"`
}
