package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"os_financeiro/internal/domain/entities"
	"os_financeiro/internal/domain/finance"
	"os_financeiro/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidLineItemID    = errors.New("invalid line item id")
	ErrInvalidLineItemKind  = errors.New("invalid line item kind")
	ErrProductRequired      = errors.New("product selection is required")
	ErrProductNotFound      = errors.New("product not found")
	ErrDescriptionRequired  = errors.New("service description is required")
	ErrInvalidQty           = errors.New("quantity must be positive")
	ErrUnitPriceRequired    = errors.New("unit price is required")
	ErrInvalidUnitPrice     = errors.New("unit price cannot be negative")
	ErrInvalidDiscountValue = errors.New("discount cannot be negative")
	ErrLineItemNotFound     = errors.New("line item not found")
)

// CreateLineItemInput describes a new produto or servico entry. For produto,
// Description and UnitPrice default to the catalog's name and price when omitted.
type CreateLineItemInput struct {
	ServiceCallID string
	Kind          entities.LineItemKind
	ProductID     string
	Description   string
	Qty           decimal.Decimal
	UnitPrice     *decimal.Decimal
	DiscountValue decimal.Decimal
}

// ILineItemUseCase manages the billable entries of a service call.
//
// Items are never edited: a wrong entry is deleted and created again.

type ILineItemUseCase interface {
	Create(ctx context.Context, in CreateLineItemInput) (entities.LineItem, error)
	Delete(ctx context.Context, serviceCallID, itemID string) error
	ListByServiceCall(ctx context.Context, serviceCallID string) ([]entities.LineItem, error)
}

type LineItemUseCase struct {
	repo         interfaces.ILineItemRepository
	serviceCalls interfaces.IServiceCallRepository
	catalog      interfaces.IProductCatalog
	now          func() time.Time
}

var _ ILineItemUseCase = (*LineItemUseCase)(nil)

func NewLineItemUseCase(repo interfaces.ILineItemRepository, serviceCalls interfaces.IServiceCallRepository, catalog interfaces.IProductCatalog) *LineItemUseCase {
	return &LineItemUseCase{repo: repo, serviceCalls: serviceCalls, catalog: catalog, now: time.Now}
}

func (u *LineItemUseCase) Create(ctx context.Context, in CreateLineItemInput) (entities.LineItem, error) {
	serviceCallID := strings.TrimSpace(in.ServiceCallID)
	if serviceCallID == "" {
		return entities.LineItem{}, ErrInvalidServiceCallID
	}
	if !in.Kind.Valid() {
		return entities.LineItem{}, ErrInvalidLineItemKind
	}
	if !in.Qty.IsPositive() {
		return entities.LineItem{}, ErrInvalidQty
	}
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		return entities.LineItem{}, ErrInvalidUnitPrice
	}
	if in.DiscountValue.IsNegative() {
		return entities.LineItem{}, ErrInvalidDiscountValue
	}

	item := entities.LineItem{
		ServiceCallID: serviceCallID,
		Kind:          in.Kind,
		Description:   strings.TrimSpace(in.Description),
		Qty:           in.Qty,
		DiscountValue: in.DiscountValue,
	}
	if in.UnitPrice != nil {
		item.UnitPrice = *in.UnitPrice
	}

	switch in.Kind {
	case entities.LineItemKindProduto:
		item.ProductID = strings.TrimSpace(in.ProductID)
		if item.ProductID == "" {
			return entities.LineItem{}, ErrProductRequired
		}
	case entities.LineItemKindServico:
		if item.Description == "" {
			return entities.LineItem{}, ErrDescriptionRequired
		}
		if in.UnitPrice == nil {
			return entities.LineItem{}, ErrUnitPriceRequired
		}
	}

	sc, err := u.serviceCalls.GetByID(ctx, serviceCallID)
	if err != nil {
		zap.S().Errorw("[line-item][usecase] load service call failed", "service_call_id", serviceCallID, "err", err)
		return entities.LineItem{}, err
	}
	if sc.ID == "" {
		return entities.LineItem{}, ErrServiceCallNotFound
	}

	if item.Kind == entities.LineItemKindProduto {
		product, err := u.catalog.GetByID(ctx, item.ProductID)
		if err != nil {
			zap.S().Errorw("[line-item][usecase] load product failed", "product_id", item.ProductID, "err", err)
			return entities.LineItem{}, err
		}
		if product.ID == "" {
			return entities.LineItem{}, ErrProductNotFound
		}
		if item.Description == "" {
			item.Description = product.Name
		}
		if in.UnitPrice == nil {
			item.UnitPrice = product.UnitPrice
		}
	}

	item.ID = uuid.NewString()
	item.Total = finance.LineItemTotal(item.Qty, item.UnitPrice, item.DiscountValue)
	item.CreatedAt = u.now().UTC()

	created, err := u.repo.Create(ctx, item)
	if err != nil {
		zap.S().Errorw("[line-item][usecase] create failed", "service_call_id", serviceCallID, "err", err)
		return entities.LineItem{}, err
	}
	zap.S().Infow("[line-item][usecase] created",
		"service_call_id", serviceCallID,
		"item_id", created.ID,
		"kind", created.Kind,
		"total", created.Total.StringFixed(finance.CentPlaces),
	)
	return created, nil
}

func (u *LineItemUseCase) Delete(ctx context.Context, serviceCallID, itemID string) error {
	serviceCallID = strings.TrimSpace(serviceCallID)
	if serviceCallID == "" {
		return ErrInvalidServiceCallID
	}
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return ErrInvalidLineItemID
	}

	existing, err := u.repo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if existing.ID == "" || existing.ServiceCallID != serviceCallID {
		return ErrLineItemNotFound
	}

	deleted, err := u.repo.Delete(ctx, itemID)
	if err != nil {
		zap.S().Errorw("[line-item][usecase] delete failed", "item_id", itemID, "err", err)
		return err
	}
	if deleted.ID == "" {
		return ErrLineItemNotFound
	}
	zap.S().Infow("[line-item][usecase] deleted", "service_call_id", serviceCallID, "item_id", itemID)
	return nil
}

func (u *LineItemUseCase) ListByServiceCall(ctx context.Context, serviceCallID string) ([]entities.LineItem, error) {
	serviceCallID = strings.TrimSpace(serviceCallID)
	if serviceCallID == "" {
		return nil, ErrInvalidServiceCallID
	}
	items, err := u.repo.ListByServiceCallID(ctx, serviceCallID)
	if err != nil {
		return nil, err
	}
	return sortLineItems(items), nil
}

// sortLineItems orders by creation time; the index query returns no useful order.
func sortLineItems(items []entities.LineItem) []entities.LineItem {
	slices.SortStableFunc(items, func(a, b entities.LineItem) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return items
}
