package request

import (
	"strings"

	"os_financeiro/internal/domain/entities"
	"os_financeiro/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreateLineItemRequest adds a produto or servico to a service call. For produto,
// description and unit_price fall back to the catalog when omitted.
type CreateLineItemRequest struct {
	Kind          string           `json:"kind" binding:"required,oneof=produto servico"`
	ProductID     string           `json:"product_id"`
	Description   string           `json:"description" binding:"max=500"`
	Qty           decimal.Decimal  `json:"qty" binding:"gt=0"`
	UnitPrice     *decimal.Decimal `json:"unit_price" binding:"omitempty,gte=0"`
	DiscountValue decimal.Decimal  `json:"discount_value" binding:"gte=0"`
}

func (r CreateLineItemRequest) ToInput(serviceCallID string) usecase.CreateLineItemInput {
	return usecase.CreateLineItemInput{
		ServiceCallID: serviceCallID,
		Kind:          entities.LineItemKind(strings.TrimSpace(r.Kind)),
		ProductID:     strings.TrimSpace(r.ProductID),
		Description:   strings.TrimSpace(r.Description),
		Qty:           r.Qty,
		UnitPrice:     r.UnitPrice,
		DiscountValue: r.DiscountValue,
	}
}
