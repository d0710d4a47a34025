package entities

import "github.com/shopspring/decimal"

// Product is the catalog entry used to prefill a new produto line item.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
