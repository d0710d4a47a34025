package response

import (
	"time"

	"os_financeiro/internal/domain/entities"
	"os_financeiro/internal/domain/finance"
	"os_financeiro/internal/usecase"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

func money(d decimal.Decimal) float64 {
	return finance.RoundCents(d).InexactFloat64()
}

type LineItemResponse struct {
	ID            string    `json:"id"`
	ServiceCallID string    `json:"service_call_id"`
	Kind          string    `json:"kind"`
	ProductID     string    `json:"product_id,omitempty"`
	Description   string    `json:"description"`
	Qty           float64   `json:"qty"`
	UnitPrice     float64   `json:"unit_price"`
	DiscountValue float64   `json:"discount_value"`
	Total         float64   `json:"total"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromLineItem(i entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:            i.ID,
		ServiceCallID: i.ServiceCallID,
		Kind:          string(i.Kind),
		ProductID:     i.ProductID,
		Description:   i.Description,
		Qty:           i.Qty.InexactFloat64(),
		UnitPrice:     money(i.UnitPrice),
		DiscountValue: money(i.DiscountValue),
		Total:         money(i.Total),
		CreatedAt:     i.CreatedAt,
	}
}

func FromLineItems(items []entities.LineItem) []LineItemResponse {
	return lo.Map(items, func(i entities.LineItem, _ int) LineItemResponse { return FromLineItem(i) })
}

type DiscountCategoryResponse struct {
	Type       string  `json:"type"`
	Value      float64 `json:"value"`
	Calculated float64 `json:"calculated"`
}

type DiscountConfigResponse struct {
	Parts    DiscountCategoryResponse `json:"parts"`
	Services DiscountCategoryResponse `json:"services"`
	Total    DiscountCategoryResponse `json:"total"`
}

func fromDiscountCategory(d entities.DiscountCategory) DiscountCategoryResponse {
	return DiscountCategoryResponse{
		Type:       string(d.Type),
		Value:      d.Value.InexactFloat64(),
		Calculated: money(d.Calculated),
	}
}

func FromDiscountConfig(cfg entities.DiscountConfig) DiscountConfigResponse {
	return DiscountConfigResponse{
		Parts:    fromDiscountCategory(cfg.Parts),
		Services: fromDiscountCategory(cfg.Services),
		Total:    fromDiscountCategory(cfg.Total),
	}
}

type TotalsResponse struct {
	SubtotalParts    float64 `json:"subtotal_parts"`
	SubtotalServices float64 `json:"subtotal_services"`
	DiscountParts    float64 `json:"discount_parts"`
	DiscountServices float64 `json:"discount_services"`
	DiscountTotal    float64 `json:"discount_total"`
	TotalParts       float64 `json:"total_parts"`
	TotalServices    float64 `json:"total_services"`
	GrandTotal       float64 `json:"grand_total"`
}

func FromTotals(t entities.CalculatedTotals) TotalsResponse {
	return TotalsResponse{
		SubtotalParts:    money(t.SubtotalParts),
		SubtotalServices: money(t.SubtotalServices),
		DiscountParts:    money(t.DiscountParts),
		DiscountServices: money(t.DiscountServices),
		DiscountTotal:    money(t.DiscountTotal),
		TotalParts:       money(t.TotalParts),
		TotalServices:    money(t.TotalServices),
		GrandTotal:       money(t.GrandTotal),
	}
}

type PaymentMethodResponse struct {
	ID      string  `json:"id"`
	Method  string  `json:"method"`
	Amount  float64 `json:"amount"`
	Details string  `json:"details,omitempty"`
}

func FromPaymentMethods(methods []entities.PaymentMethodEntry) []PaymentMethodResponse {
	return lo.Map(methods, func(m entities.PaymentMethodEntry, _ int) PaymentMethodResponse {
		return PaymentMethodResponse{ID: m.ID, Method: m.Method, Amount: money(m.Amount), Details: m.Details}
	})
}

type PaymentConfigResponse struct {
	StartDate       string                  `json:"start_date"`
	InstallmentDays []int                   `json:"installment_days"`
	PaymentMethods  []PaymentMethodResponse `json:"payment_methods"`
}

type SplitResponse struct {
	MethodsTotal float64 `json:"methods_total"`
	Difference   float64 `json:"difference"`
	IsValid      bool    `json:"is_valid"`
}

func FromSplit(s finance.SplitResult) SplitResponse {
	return SplitResponse{MethodsTotal: money(s.MethodsTotal), Difference: money(s.Difference), IsValid: s.IsValid}
}

type WarningResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FinancialSummaryResponse is the financial tab of a service call.
type FinancialSummaryResponse struct {
	ServiceCallID string                 `json:"service_call_id"`
	Items         []LineItemResponse     `json:"items"`
	Discounts     DiscountConfigResponse `json:"discounts"`
	Totals        TotalsResponse         `json:"totals"`
	PaymentConfig *PaymentConfigResponse `json:"payment_config"`
	Split         *SplitResponse         `json:"split"`
	Installments  []InstallmentResponse  `json:"installments"`
	Warnings      []WarningResponse      `json:"warnings"`
}

func FromFinancialSummary(s usecase.FinancialSummary) FinancialSummaryResponse {
	out := FinancialSummaryResponse{
		ServiceCallID: s.ServiceCallID,
		Items:         FromLineItems(s.Items),
		Discounts:     FromDiscountConfig(s.Discounts),
		Totals:        FromTotals(s.Totals),
		Installments:  FromInstallments(s.Transactions),
		Warnings: lo.Map(s.Warnings, func(w usecase.Warning, _ int) WarningResponse {
			return WarningResponse{Code: w.Code, Message: w.Message}
		}),
	}
	if s.PaymentConfig != nil {
		out.PaymentConfig = &PaymentConfigResponse{
			StartDate:       finance.FormatDate(s.PaymentConfig.StartDate),
			InstallmentDays: lo.Ternary(s.PaymentConfig.InstallmentDays == nil, []int{}, s.PaymentConfig.InstallmentDays),
			PaymentMethods:  FromPaymentMethods(s.PaymentConfig.PaymentMethods),
		}
	}
	if s.Split != nil {
		split := FromSplit(*s.Split)
		out.Split = &split
	}
	return out
}

type AutoFillResponse struct {
	PaymentMethods []PaymentMethodResponse `json:"payment_methods"`
	Totals         TotalsResponse          `json:"totals"`
	Split          SplitResponse           `json:"split"`
}

func FromAutoFill(r usecase.AutoFillResult) AutoFillResponse {
	return AutoFillResponse{
		PaymentMethods: FromPaymentMethods(r.PaymentMethods),
		Totals:         FromTotals(r.Totals),
		Split:          FromSplit(r.Split),
	}
}

// MessageResponse is the success notification for actions with no body to return.
type MessageResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}
