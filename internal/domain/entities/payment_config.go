package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethodEntry is one slice of the grand total assigned to a payment channel.
// Method is a free-form key such as "pix" or "cartao_credito".
type PaymentMethodEntry struct {
	ID      string          `json:"id"`
	Method  string          `json:"method"`
	Amount  decimal.Decimal `json:"amount"`
	Details string          `json:"details,omitempty"`
}

// PaymentConfig is persisted as an opaque blob on the service call (last write wins).
type PaymentConfig struct {
	StartDate       time.Time            `json:"start_date"`
	InstallmentDays []int                `json:"installment_days"`
	PaymentMethods  []PaymentMethodEntry `json:"payment_methods"`
}
