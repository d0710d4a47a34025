package finance

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDayOffsets        = errors.New("at least one installment day offset is required")
	ErrNegativeDayOffset      = errors.New("installment day offset cannot be negative")
	ErrNegativeGrandTotal     = errors.New("grand total is negative after discounts")
	ErrPaymentMethodNotFound  = errors.New("payment method not found")
	ErrInvalidDate            = errors.New("invalid calendar date")
	ErrUnknownInstallmentPlan = errors.New("unknown installment preset")
)

// ValidationError wraps a sentinel with the offending detail so callers can still
// match with errors.Is.
type ValidationError struct {
	Err     error
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
