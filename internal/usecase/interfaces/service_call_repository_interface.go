package interfaces

import (
	"context"
	"encoding/json"

	"os_financeiro/internal/domain/entities"
)

// IServiceCallRepository reads and updates the financial fields of the parent
// service call record. A zero value means the record does not exist.

type IServiceCallRepository interface {
	GetByID(ctx context.Context, id string) (entities.ServiceCall, error)
	UpdateFinancials(ctx context.Context, id string, discounts entities.DiscountConfig, paymentConfig json.RawMessage) (entities.ServiceCall, error)
}
