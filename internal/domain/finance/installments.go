package finance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Installment is one row of a generated schedule, before persistence.
// Days is the offset that produced DueDate from the previous due date.
type Installment struct {
	Number  int             `json:"number"`
	DueDate time.Time       `json:"due_date"`
	Amount  decimal.Decimal `json:"amount"`
	Days    int             `json:"days"`
}

// GenerateInstallments builds the schedule for total over len(dayOffsets) installments.
//
// Offsets are cumulative: installment k is due at startDate + dayOffsets[0] + ... +
// dayOffsets[k]. Amounts are an equal split rounded to cents; the rounding remainder
// goes to the last installment so the schedule always sums to total.
//
// total is not validated here; a zero or negative total yields a zero or negative
// schedule.
func GenerateInstallments(startDate time.Time, dayOffsets []int, total decimal.Decimal) ([]Installment, error) {
	n := len(dayOffsets)
	if n == 0 {
		return nil, ErrEmptyDayOffsets
	}
	for i, d := range dayOffsets {
		if d < 0 {
			return nil, &ValidationError{Err: ErrNegativeDayOffset, Details: fmt.Sprintf("offset %d at position %d", d, i+1)}
		}
	}

	amounts := SplitEqually(total, n)
	due := DateOf(startDate)
	out := make([]Installment, 0, n)
	for i, d := range dayOffsets {
		due = due.AddDate(0, 0, d)
		out = append(out, Installment{
			Number:  i + 1,
			DueDate: due,
			Amount:  amounts[i],
			Days:    d,
		})
	}
	return out, nil
}

// SplitEqually divides total into n cent-rounded parts; the last part absorbs the
// remainder. n must be positive.
func SplitEqually(total decimal.Decimal, n int) []decimal.Decimal {
	count := decimal.NewFromInt(int64(n))
	base := total.DivRound(count, CentPlaces)
	last := total.Sub(base.Mul(count.Sub(decimal.NewFromInt(1))))

	out := make([]decimal.Decimal, n)
	for i := 0; i < n-1; i++ {
		out[i] = base
	}
	out[n-1] = last
	return out
}

// SumInstallments is the schedule total, used to reconcile against the grand total.
func SumInstallments(items []Installment) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Amount)
	}
	return sum
}
