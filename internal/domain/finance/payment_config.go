package finance

import (
	"bytes"
	"encoding/json"
	"time"

	"os_financeiro/internal/domain/entities"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Wire shape of the payment_config blob. Field names are camelCase and amounts are
// JSON numbers; records written by earlier clients use the same shape, so it must
// not change.
type paymentConfigWire struct {
	StartDate       string              `json:"startDate"`
	InstallmentDays []int               `json:"installmentDays"`
	PaymentMethods  []paymentMethodWire `json:"paymentMethods"`
}

type paymentMethodWire struct {
	ID      string      `json:"id"`
	Method  string      `json:"method"`
	Amount  json.Number `json:"amount"`
	Details string      `json:"details,omitempty"`
}

// BuildPaymentConfig copies its inputs; the returned value shares no slices with them.
// Amounts are rounded to cents, as ParsePaymentConfig does, so a config survives
// encode and parse unchanged, exponent included.
func BuildPaymentConfig(startDate time.Time, dayOffsets []int, methods []entities.PaymentMethodEntry) entities.PaymentConfig {
	days := make([]int, len(dayOffsets))
	copy(days, dayOffsets)
	ms := lo.Map(methods, func(m entities.PaymentMethodEntry, _ int) entities.PaymentMethodEntry {
		m.Amount = RoundCents(m.Amount)
		return m
	})

	return entities.PaymentConfig{
		StartDate:       DateOf(startDate),
		InstallmentDays: days,
		PaymentMethods:  ms,
	}
}

func EncodePaymentConfig(cfg entities.PaymentConfig) (json.RawMessage, error) {
	w := paymentConfigWire{
		StartDate:       FormatDate(cfg.StartDate),
		InstallmentDays: cfg.InstallmentDays,
		PaymentMethods: lo.Map(cfg.PaymentMethods, func(m entities.PaymentMethodEntry, _ int) paymentMethodWire {
			return paymentMethodWire{ID: m.ID, Method: m.Method, Amount: json.Number(m.Amount.String()), Details: m.Details}
		}),
	}
	if w.InstallmentDays == nil {
		w.InstallmentDays = []int{}
	}
	return json.Marshal(w)
}

// ParsePaymentConfig returns nil for a missing or malformed blob so the caller can
// fall back to defaults. It never panics.
//
// A blob is malformed when it is not a JSON object, has no parseable startDate, or
// carries installmentDays/paymentMethods of the wrong shape. Missing arrays are
// read as empty.
func ParsePaymentConfig(raw []byte) *entities.PaymentConfig {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var w paymentConfigWire
	if err := json.Unmarshal(trimmed, &w); err != nil {
		return nil
	}

	start, err := ParseDate(w.StartDate)
	if err != nil {
		return nil
	}

	methods := make([]entities.PaymentMethodEntry, 0, len(w.PaymentMethods))
	for _, m := range w.PaymentMethods {
		amount := decimal.Zero
		if m.Amount != "" {
			if amount, err = decimal.NewFromString(m.Amount.String()); err != nil {
				return nil
			}
		}
		methods = append(methods, entities.PaymentMethodEntry{ID: m.ID, Method: m.Method, Amount: RoundCents(amount), Details: m.Details})
	}

	days := w.InstallmentDays
	if days == nil {
		days = []int{}
	}

	return &entities.PaymentConfig{
		StartDate:       start,
		InstallmentDays: days,
		PaymentMethods:  methods,
	}
}
