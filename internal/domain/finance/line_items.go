package finance

import (
	"os_financeiro/internal/domain/entities"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// LineItemTotal is qty*unitPrice - discount.
func LineItemTotal(qty, unitPrice, discount decimal.Decimal) decimal.Decimal {
	return qty.Mul(unitPrice).Sub(discount)
}

// Subtotals sums item totals per kind.
func Subtotals(items []entities.LineItem) (parts, services decimal.Decimal) {
	sumKind := func(kind entities.LineItemKind) decimal.Decimal {
		return lo.Reduce(items, func(acc decimal.Decimal, it entities.LineItem, _ int) decimal.Decimal {
			if it.Kind != kind {
				return acc
			}
			return acc.Add(it.Total)
		}, decimal.Zero)
	}
	return sumKind(entities.LineItemKindProduto), sumKind(entities.LineItemKindServico)
}

// ComputeItemTotals is the summary shortcut: subtotals from items, then the cascade.
func ComputeItemTotals(items []entities.LineItem, cfg entities.DiscountConfig) entities.CalculatedTotals {
	parts, services := Subtotals(items)
	return ComputeTotals(parts, services, cfg)
}
