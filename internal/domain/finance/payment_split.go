package finance

import (
	"os_financeiro/internal/domain/entities"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// SplitResult is advisory: an invalid split never blocks saving or generation.
type SplitResult struct {
	MethodsTotal decimal.Decimal `json:"methods_total"`
	Difference   decimal.Decimal `json:"difference"`
	IsValid      bool            `json:"is_valid"`
}

func SumMethods(methods []entities.PaymentMethodEntry) decimal.Decimal {
	return lo.Reduce(methods, func(acc decimal.Decimal, m entities.PaymentMethodEntry, _ int) decimal.Decimal {
		return acc.Add(m.Amount)
	}, decimal.Zero)
}

// ValidateSplit checks that the methods reconcile to grandTotal within SplitTolerance.
func ValidateSplit(grandTotal decimal.Decimal, methods []entities.PaymentMethodEntry) SplitResult {
	total := SumMethods(methods)
	diff := grandTotal.Sub(total)
	return SplitResult{
		MethodsTotal: total,
		Difference:   diff,
		IsValid:      diff.Abs().LessThan(SplitTolerance),
	}
}

// AutoFillRemaining sets the target method's amount to whatever the other methods
// leave uncovered, never below zero. The input slice is not modified.
func AutoFillRemaining(grandTotal decimal.Decimal, methods []entities.PaymentMethodEntry, targetID string) ([]entities.PaymentMethodEntry, error) {
	if _, ok := lo.Find(methods, func(m entities.PaymentMethodEntry) bool { return m.ID == targetID }); !ok {
		return nil, &ValidationError{Err: ErrPaymentMethodNotFound, Details: targetID}
	}

	others := lo.Filter(methods, func(m entities.PaymentMethodEntry, _ int) bool { return m.ID != targetID })
	remaining := decimal.Max(grandTotal.Sub(SumMethods(others)), decimal.Zero)

	return lo.Map(methods, func(m entities.PaymentMethodEntry, _ int) entities.PaymentMethodEntry {
		if m.ID == targetID {
			m.Amount = remaining
		}
		return m
	}), nil
}
