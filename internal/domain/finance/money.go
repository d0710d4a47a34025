package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// CentPlaces is the precision every persisted amount is rounded to (BRL).
const CentPlaces int32 = 2

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

var (
	hundred = decimal.NewFromInt(100)
	// SplitTolerance is the maximum absolute difference (exclusive) accepted between
	// the grand total and the sum of the payment methods.
	SplitTolerance = decimal.New(1, -2)
)

// RoundCents rounds half away from zero to two places.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(CentPlaces)
}

// DateOf drops the time component, keeping the calendar day as seen in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts a plain YYYY-MM-DD date or a full RFC 3339 timestamp, whose
// calendar day is kept.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return DateOf(t), nil
	}
	return time.Time{}, &ValidationError{Err: ErrInvalidDate, Details: s}
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
