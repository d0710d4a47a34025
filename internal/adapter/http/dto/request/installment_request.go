package request

import (
	"errors"
	"strings"

	"os_financeiro/internal/domain/entities"
	"os_financeiro/internal/domain/finance"
	"os_financeiro/internal/usecase"

	"github.com/shopspring/decimal"
)

var ErrInstallmentPlanRequired = errors.New("one of days, preset or days_text is required")

// GenerateInstallmentsRequest describes a schedule. The day offsets come from the
// first of days, preset or days_text that is set.
type GenerateInstallmentsRequest struct {
	StartDate     string          `json:"start_date" binding:"required,datetime=2006-01-02"`
	Days          []int           `json:"days" binding:"omitempty,max=99,dive,gte=0"`
	Preset        string          `json:"preset"`
	DaysText      string          `json:"days_text"`
	Total         decimal.Decimal `json:"total" binding:"gt=0"`
	PaymentMethod string          `json:"payment_method"`
}

func (r GenerateInstallmentsRequest) ToInput(serviceCallID string) (usecase.GenerateInstallmentsInput, error) {
	start, err := finance.ParseDate(strings.TrimSpace(r.StartDate))
	if err != nil {
		return usecase.GenerateInstallmentsInput{}, err
	}
	days, err := r.dayOffsets()
	if err != nil {
		return usecase.GenerateInstallmentsInput{}, err
	}
	return usecase.GenerateInstallmentsInput{
		ServiceCallID: serviceCallID,
		StartDate:     start,
		DayOffsets:    days,
		Total:         r.Total,
		PaymentMethod: strings.TrimSpace(r.PaymentMethod),
	}, nil
}

func (r GenerateInstallmentsRequest) dayOffsets() ([]int, error) {
	switch {
	case len(r.Days) > 0:
		return r.Days, nil
	case strings.TrimSpace(r.Preset) != "":
		return finance.PresetDays(strings.TrimSpace(r.Preset))
	case strings.TrimSpace(r.DaysText) != "":
		if days := finance.ParseDayOffsets(r.DaysText); len(days) > 0 {
			return days, nil
		}
		return nil, finance.ErrEmptyDayOffsets
	default:
		return nil, ErrInstallmentPlanRequired
	}
}

// UpdateInstallmentRequest edits an open installment. Omitted fields are kept.
type UpdateInstallmentRequest struct {
	DueDate *string          `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Amount  *decimal.Decimal `json:"amount" binding:"omitempty,gt=0"`
}

func (r UpdateInstallmentRequest) ToPatch() (entities.TransactionPatch, error) {
	var patch entities.TransactionPatch
	if r.DueDate != nil {
		d, err := finance.ParseDate(strings.TrimSpace(*r.DueDate))
		if err != nil {
			return entities.TransactionPatch{}, err
		}
		patch.DueDate = &d
	}
	if r.Amount != nil {
		a := *r.Amount
		patch.Amount = &a
	}
	return patch, nil
}

// ParseOffsetsRequest carries free text such as "30+30+30".
type ParseOffsetsRequest struct {
	Text string `json:"text" binding:"required"`
}
