package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemKind separates parts (produto) from labor (servico); each kind has its own
// subtotal and discount level.
type LineItemKind string

const (
	LineItemKindProduto LineItemKind = "produto"
	LineItemKindServico LineItemKind = "servico"
)

func (k LineItemKind) Valid() bool {
	return k == LineItemKindProduto || k == LineItemKindServico
}

// LineItem is a billable product or service entry on a service call (OS).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (service_call_id-index): service_call_id
//
// Items are immutable once created; the only mutation is deletion.
// Total = Qty*UnitPrice - DiscountValue and is not forced to be non-negative.
type LineItem struct {
	ID            string          `json:"id"`
	ServiceCallID string          `json:"service_call_id"`
	Kind          LineItemKind    `json:"kind"`
	ProductID     string          `json:"product_id,omitempty"`
	Description   string          `json:"description"`
	Qty           decimal.Decimal `json:"qty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"created_at"`
}
