package response

import (
	"time"

	"os_financeiro/internal/domain/entities"
	"os_financeiro/internal/domain/finance"
	"os_financeiro/internal/usecase"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type InstallmentResponse struct {
	ID                  string     `json:"id"`
	Direction           string     `json:"direction"`
	OriginType          string     `json:"origin_type"`
	Status              string     `json:"status"`
	ServiceCallID       string     `json:"service_call_id"`
	ClientID            string     `json:"client_id"`
	DueDate             string     `json:"due_date"`
	Amount              float64    `json:"amount"`
	PaymentMethod       string     `json:"payment_method"`
	InstallmentNumber   int        `json:"installment_number"`
	InstallmentsTotal   int        `json:"installments_total"`
	InstallmentsGroupID string     `json:"installments_group_id"`
	IntervalDays        int        `json:"interval_days"`
	PaidAt              *time.Time `json:"paid_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func FromInstallment(t entities.FinancialTransaction) InstallmentResponse {
	return InstallmentResponse{
		ID:                  t.ID,
		Direction:           string(t.Direction),
		OriginType:          string(t.OriginType),
		Status:              string(t.Status),
		ServiceCallID:       t.ServiceCallID,
		ClientID:            t.ClientID,
		DueDate:             finance.FormatDate(t.DueDate),
		Amount:              money(t.Amount),
		PaymentMethod:       t.PaymentMethod,
		InstallmentNumber:   t.InstallmentNumber,
		InstallmentsTotal:   t.InstallmentsTotal,
		InstallmentsGroupID: t.InstallmentsGroupID,
		IntervalDays:        t.IntervalDays,
		PaidAt:              t.PaidAt,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}

func FromInstallments(txs []entities.FinancialTransaction) []InstallmentResponse {
	return lo.Map(txs, func(t entities.FinancialTransaction, _ int) InstallmentResponse { return FromInstallment(t) })
}

type InstallmentPreviewItem struct {
	Number  int     `json:"number"`
	DueDate string  `json:"due_date"`
	Amount  float64 `json:"amount"`
	Days    int     `json:"days"`
}

type InstallmentPreviewResponse struct {
	Installments []InstallmentPreviewItem `json:"installments"`
	Total        float64                  `json:"total"`
}

func FromSchedule(items []finance.Installment) InstallmentPreviewResponse {
	return InstallmentPreviewResponse{
		Installments: lo.Map(items, func(i finance.Installment, _ int) InstallmentPreviewItem {
			return InstallmentPreviewItem{Number: i.Number, DueDate: finance.FormatDate(i.DueDate), Amount: money(i.Amount), Days: i.Days}
		}),
		Total: money(finance.SumInstallments(items)),
	}
}

type ChargeResponse struct {
	Installment       InstallmentResponse `json:"installment"`
	ProviderPaymentID string              `json:"provider_payment_id"`
	ProviderStatus    string              `json:"provider_status"`
	Paid              bool                `json:"paid"`
}

func FromCharge(r usecase.ChargeResult) ChargeResponse {
	return ChargeResponse{
		Installment:       FromInstallment(r.Transaction),
		ProviderPaymentID: r.ProviderPaymentID,
		ProviderStatus:    r.ProviderStatus,
		Paid:              r.Paid,
	}
}

type PresetResponse struct {
	Name  string `json:"name"`
	Days  []int  `json:"days"`
	Count int    `json:"count"`
}

func FromPresets(presets []finance.Preset) []PresetResponse {
	return lo.Map(presets, func(p finance.Preset, _ int) PresetResponse {
		return PresetResponse{Name: p.Name, Days: p.Days, Count: len(p.Days)}
	})
}

// ParseOffsetsResponse echoes the offsets read from free text and the day of
// each due date counted from the start.
type ParseOffsetsResponse struct {
	Days       []int `json:"days"`
	Cumulative []int `json:"cumulative"`
}

func FromOffsets(days []int) ParseOffsetsResponse {
	sum := 0
	cumulative := lo.Map(days, func(d int, _ int) int {
		sum += d
		return sum
	})
	return ParseOffsetsResponse{Days: lo.Ternary(days == nil, []int{}, days), Cumulative: cumulative}
}

func sumAmounts(txs []entities.FinancialTransaction) decimal.Decimal {
	return lo.Reduce(txs, func(acc decimal.Decimal, t entities.FinancialTransaction, _ int) decimal.Decimal {
		return acc.Add(t.Amount)
	}, decimal.Zero)
}

type InstallmentListResponse struct {
	Installments []InstallmentResponse `json:"installments"`
	Total        float64               `json:"total"`
}

func FromInstallmentList(txs []entities.FinancialTransaction) InstallmentListResponse {
	return InstallmentListResponse{Installments: FromInstallments(txs), Total: money(sumAmounts(txs))}
}
