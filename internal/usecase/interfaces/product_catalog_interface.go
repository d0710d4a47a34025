package interfaces

import (
	"context"

	"os_financeiro/internal/domain/entities"
)

// IProductCatalog supplies default name and unit price for produto line items.

type IProductCatalog interface {
	GetByID(ctx context.Context, id string) (entities.Product, error)
}
