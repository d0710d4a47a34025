package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionDirection string

const (
	TransactionDirectionReceber TransactionDirection = "receber"
	TransactionDirectionPagar   TransactionDirection = "pagar"
)

type TransactionOrigin string

const (
	TransactionOriginOrdemServico TransactionOrigin = "ordem_servico"
)

// TransactionStatus is the installment lifecycle.
//
//	aberto -> pago       (sets PaidAt)
//	aberto -> cancelado
//
// pago and cancelado are terminal. Edits and deletes are only allowed while aberto.
type TransactionStatus string

const (
	TransactionStatusAberto    TransactionStatus = "aberto"
	TransactionStatusPago      TransactionStatus = "pago"
	TransactionStatusCancelado TransactionStatus = "cancelado"
)

// FinancialTransaction is one installment row generated for a service call.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (service_call_id-index): service_call_id
//
// All rows created by one "generate" action share InstallmentsGroupID.
type FinancialTransaction struct {
	ID                  string               `json:"id"`
	Direction           TransactionDirection `json:"direction"`
	OriginType          TransactionOrigin    `json:"origin_type"`
	Status              TransactionStatus    `json:"status"`
	ServiceCallID       string               `json:"service_call_id"`
	ClientID            string               `json:"client_id"`
	DueDate             time.Time            `json:"due_date"`
	Amount              decimal.Decimal      `json:"amount"`
	PaymentMethod       string               `json:"payment_method"`
	InstallmentNumber   int                  `json:"installment_number"`
	InstallmentsTotal   int                  `json:"installments_total"`
	InstallmentsGroupID string               `json:"installments_group_id"`
	IntervalDays        int                  `json:"interval_days"`
	PaidAt              *time.Time           `json:"paid_at,omitempty"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

func (t FinancialTransaction) IsOpen() bool {
	return t.Status == TransactionStatusAberto
}

// TransactionPatch overwrites the given fields of an open installment. Nil fields
// are left untouched; other installments are never rebalanced.
type TransactionPatch struct {
	DueDate *time.Time
	Amount  *decimal.Decimal
}

func (p TransactionPatch) IsEmpty() bool {
	return p.DueDate == nil && p.Amount == nil
}
