package interfaces

import (
	"context"

	"os_financeiro/internal/domain/entities"
)

// ILineItemRepository abstracts DynamoDB persistence for LineItem.
//
// Delete returns the removed item; a zero value means it did not exist.

type ILineItemRepository interface {
	Create(ctx context.Context, item entities.LineItem) (entities.LineItem, error)
	GetByID(ctx context.Context, id string) (entities.LineItem, error)
	Delete(ctx context.Context, id string) (entities.LineItem, error)
	ListByServiceCallID(ctx context.Context, serviceCallID string) ([]entities.LineItem, error)
}
