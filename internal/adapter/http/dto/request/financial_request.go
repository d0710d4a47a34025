package request

import (
	"strings"
	"time"

	"os_financeiro/internal/domain/entities"
	"os_financeiro/internal/domain/finance"
	"os_financeiro/internal/usecase"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DiscountCategoryRequest is one discount level. An empty type means no discount.
type DiscountCategoryRequest struct {
	Type  string          `json:"type" binding:"omitempty,oneof=percent value"`
	Value decimal.Decimal `json:"value" binding:"gte=0"`
}

type DiscountConfigRequest struct {
	Parts    DiscountCategoryRequest `json:"parts"`
	Services DiscountCategoryRequest `json:"services"`
	Total    DiscountCategoryRequest `json:"total"`
}

func (r DiscountConfigRequest) ToEntity() entities.DiscountConfig {
	return entities.DiscountConfig{
		Parts:    r.Parts.toEntity(),
		Services: r.Services.toEntity(),
		Total:    r.Total.toEntity(),
	}
}

func (r DiscountCategoryRequest) toEntity() entities.DiscountCategory {
	return entities.DiscountCategory{
		Type:  entities.DiscountType(strings.TrimSpace(r.Type)),
		Value: r.Value,
	}
}

type PaymentMethodRequest struct {
	ID      string          `json:"id"`
	Method  string          `json:"method" binding:"required"`
	Amount  decimal.Decimal `json:"amount" binding:"gte=0"`
	Details string          `json:"details"`
}

func toPaymentMethods(in []PaymentMethodRequest) []entities.PaymentMethodEntry {
	return lo.Map(in, func(m PaymentMethodRequest, _ int) entities.PaymentMethodEntry {
		return entities.PaymentMethodEntry{ID: m.ID, Method: m.Method, Amount: m.Amount, Details: m.Details}
	})
}

// SaveFinancialsRequest is the body of PUT .../financeiro. start_date defaults to
// today when omitted.
type SaveFinancialsRequest struct {
	Discounts       DiscountConfigRequest  `json:"discounts"`
	StartDate       string                 `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	InstallmentDays []int                  `json:"installment_days" binding:"max=99,dive,gte=0"`
	PaymentMethods  []PaymentMethodRequest `json:"payment_methods" binding:"dive"`
}

func (r SaveFinancialsRequest) ToInput(serviceCallID string) (usecase.SaveFinancialsInput, error) {
	var start time.Time
	if s := strings.TrimSpace(r.StartDate); s != "" {
		d, err := finance.ParseDate(s)
		if err != nil {
			return usecase.SaveFinancialsInput{}, err
		}
		start = d
	}
	return usecase.SaveFinancialsInput{
		ServiceCallID:   serviceCallID,
		Discounts:       r.Discounts.ToEntity(),
		StartDate:       start,
		InstallmentDays: r.InstallmentDays,
		PaymentMethods:  toPaymentMethods(r.PaymentMethods),
	}, nil
}

// AutoFillRequest asks for the remaining amount to be assigned to target_id. When
// discounts is present it replaces the saved discounts for this computation only.
type AutoFillRequest struct {
	Discounts      *DiscountConfigRequest `json:"discounts"`
	PaymentMethods []PaymentMethodRequest `json:"payment_methods" binding:"required,min=1,dive"`
	TargetID       string                 `json:"target_id" binding:"required"`
}

func (r AutoFillRequest) ToInput(serviceCallID string) usecase.AutoFillInput {
	in := usecase.AutoFillInput{
		ServiceCallID:  serviceCallID,
		PaymentMethods: toPaymentMethods(r.PaymentMethods),
		TargetID:       r.TargetID,
	}
	if r.Discounts != nil {
		d := r.Discounts.ToEntity()
		in.Discounts = &d
	}
	return in
}
