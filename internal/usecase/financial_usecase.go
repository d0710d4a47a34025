package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"os_financeiro/internal/domain/entities"
	"os_financeiro/internal/domain/finance"
	"os_financeiro/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrFinancialAccessDenied     = errors.New("financial data is not available for this user")
	ErrInvalidServiceCallID      = errors.New("invalid service_call_id")
	ErrServiceCallNotFound       = errors.New("service call not found")
	ErrInvalidPaymentMethod      = errors.New("payment method is required")
	ErrDuplicatePaymentMethodID  = errors.New("duplicate payment method id")
	ErrInvalidPaymentAmount      = errors.New("payment method amount cannot be negative")
	ErrInvalidInstallmentDays    = errors.New("invalid installment day offsets")
	ErrInvalidDiscountConfigType = errors.New("invalid discount type")
)

// Advisory warning codes returned with a summary. None of them blocks saving.
const (
	WarningNegativeGrandTotal    = "NEGATIVE_GRAND_TOTAL"
	WarningPaymentSplitMismatch  = "PAYMENT_SPLIT_MISMATCH"
	WarningInstallmentsMismatch  = "INSTALLMENTS_TOTAL_MISMATCH"
	WarningPaymentConfigUnparsed = "PAYMENT_CONFIG_UNREADABLE"
)

type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FinancialSummary is everything the financial tab of a service call shows.
// PaymentConfig and Split are nil when nothing has been saved yet.
type FinancialSummary struct {
	ServiceCallID string
	Items         []entities.LineItem
	Discounts     entities.DiscountConfig
	Totals        entities.CalculatedTotals
	PaymentConfig *entities.PaymentConfig
	Split         *finance.SplitResult
	Transactions  []entities.FinancialTransaction
	Warnings      []Warning
}

type SaveFinancialsInput struct {
	ServiceCallID   string
	Discounts       entities.DiscountConfig
	StartDate       time.Time
	InstallmentDays []int
	PaymentMethods  []entities.PaymentMethodEntry
}

// AutoFillInput carries the methods being edited. Discounts, when set, replace the
// saved discounts for the grand total computation without being persisted.
type AutoFillInput struct {
	ServiceCallID  string
	Discounts      *entities.DiscountConfig
	PaymentMethods []entities.PaymentMethodEntry
	TargetID       string
}

type AutoFillResult struct {
	PaymentMethods []entities.PaymentMethodEntry
	Totals         entities.CalculatedTotals
	Split          finance.SplitResult
}

// IFinancialUseCase orchestrates discounts, payment split and payment config for a
// service call.
//
// Every method takes the caller's capabilities, resolved once per request, and
// refuses to run without CanViewFinancials.

type IFinancialUseCase interface {
	GetSummary(ctx context.Context, caps entities.Capabilities, serviceCallID string) (FinancialSummary, error)
	Save(ctx context.Context, caps entities.Capabilities, in SaveFinancialsInput) (FinancialSummary, error)
	AutoFill(ctx context.Context, caps entities.Capabilities, in AutoFillInput) (AutoFillResult, error)
}

type FinancialUseCase struct {
	serviceCalls interfaces.IServiceCallRepository
	lineItems    interfaces.ILineItemRepository
	transactions interfaces.ITransactionRepository
	now          func() time.Time
}

var _ IFinancialUseCase = (*FinancialUseCase)(nil)

func NewFinancialUseCase(serviceCalls interfaces.IServiceCallRepository, lineItems interfaces.ILineItemRepository, transactions interfaces.ITransactionRepository) *FinancialUseCase {
	return &FinancialUseCase{serviceCalls: serviceCalls, lineItems: lineItems, transactions: transactions, now: time.Now}
}

func (u *FinancialUseCase) GetSummary(ctx context.Context, caps entities.Capabilities, serviceCallID string) (FinancialSummary, error) {
	if !caps.CanViewFinancials {
		return FinancialSummary{}, ErrFinancialAccessDenied
	}
	sc, err := u.loadServiceCall(ctx, serviceCallID)
	if err != nil {
		return FinancialSummary{}, err
	}
	items, err := u.lineItems.ListByServiceCallID(ctx, sc.ID)
	if err != nil {
		zap.S().Errorw("[financeiro][usecase] list line items failed", "service_call_id", sc.ID, "err", err)
		return FinancialSummary{}, err
	}
	txs, err := u.transactions.ListByServiceCallID(ctx, sc.ID)
	if err != nil {
		zap.S().Errorw("[financeiro][usecase] list transactions failed", "service_call_id", sc.ID, "err", err)
		return FinancialSummary{}, err
	}
	return buildSummary(sc, sortLineItems(items), sortTransactions(txs)), nil
}

// Save clamps the discounts against the current subtotals, rebuilds the payment
// config and persists both on the service call. Split mismatch and a negative grand
// total come back as warnings.
func (u *FinancialUseCase) Save(ctx context.Context, caps entities.Capabilities, in SaveFinancialsInput) (FinancialSummary, error) {
	if !caps.CanViewFinancials {
		return FinancialSummary{}, ErrFinancialAccessDenied
	}
	methods, err := normalizePaymentMethods(in.PaymentMethods)
	if err != nil {
		return FinancialSummary{}, err
	}
	if err := validateDiscountTypes(in.Discounts); err != nil {
		return FinancialSummary{}, err
	}
	for i, d := range in.InstallmentDays {
		if d < 0 {
			return FinancialSummary{}, fmt.Errorf("%w: offset %d at position %d", ErrInvalidInstallmentDays, d, i)
		}
	}

	sc, err := u.loadServiceCall(ctx, in.ServiceCallID)
	if err != nil {
		return FinancialSummary{}, err
	}
	items, err := u.lineItems.ListByServiceCallID(ctx, sc.ID)
	if err != nil {
		zap.S().Errorw("[financeiro][usecase] list line items failed", "service_call_id", sc.ID, "err", err)
		return FinancialSummary{}, err
	}

	parts, services := finance.Subtotals(items)
	discounts := finance.ClampDiscountConfig(in.Discounts, parts, services)

	startDate := in.StartDate
	if startDate.IsZero() {
		startDate = u.now()
	}
	raw, err := finance.EncodePaymentConfig(finance.BuildPaymentConfig(startDate, in.InstallmentDays, methods))
	if err != nil {
		return FinancialSummary{}, err
	}

	updated, err := u.serviceCalls.UpdateFinancials(ctx, sc.ID, discounts, raw)
	if err != nil {
		zap.S().Errorw("[financeiro][usecase] save failed", "service_call_id", sc.ID, "err", err)
		return FinancialSummary{}, err
	}
	if updated.ID == "" {
		return FinancialSummary{}, ErrServiceCallNotFound
	}

	txs, err := u.transactions.ListByServiceCallID(ctx, sc.ID)
	if err != nil {
		zap.S().Errorw("[financeiro][usecase] list transactions failed", "service_call_id", sc.ID, "err", err)
		return FinancialSummary{}, err
	}

	summary := buildSummary(updated, sortLineItems(items), sortTransactions(txs))
	zap.S().Infow("[financeiro][usecase] saved",
		"service_call_id", sc.ID,
		"grand_total", summary.Totals.GrandTotal.StringFixed(finance.CentPlaces),
		"methods", len(methods),
		"warnings", len(summary.Warnings),
	)
	return summary, nil
}

// AutoFill assigns to the target method whatever the other methods leave of the
// grand total. Nothing is persisted.
func (u *FinancialUseCase) AutoFill(ctx context.Context, caps entities.Capabilities, in AutoFillInput) (AutoFillResult, error) {
	if !caps.CanViewFinancials {
		return AutoFillResult{}, ErrFinancialAccessDenied
	}
	sc, err := u.loadServiceCall(ctx, in.ServiceCallID)
	if err != nil {
		return AutoFillResult{}, err
	}
	items, err := u.lineItems.ListByServiceCallID(ctx, sc.ID)
	if err != nil {
		return AutoFillResult{}, err
	}

	parts, services := finance.Subtotals(items)
	discounts := sc.Discounts
	if in.Discounts != nil {
		if err := validateDiscountTypes(*in.Discounts); err != nil {
			return AutoFillResult{}, err
		}
		discounts = finance.ClampDiscountConfig(*in.Discounts, parts, services)
	}
	totals := finance.ComputeTotals(parts, services, discounts)

	filled, err := finance.AutoFillRemaining(totals.GrandTotal, in.PaymentMethods, strings.TrimSpace(in.TargetID))
	if err != nil {
		return AutoFillResult{}, err
	}
	return AutoFillResult{
		PaymentMethods: filled,
		Totals:         totals,
		Split:          finance.ValidateSplit(totals.GrandTotal, filled),
	}, nil
}

func (u *FinancialUseCase) loadServiceCall(ctx context.Context, serviceCallID string) (entities.ServiceCall, error) {
	serviceCallID = strings.TrimSpace(serviceCallID)
	if serviceCallID == "" {
		return entities.ServiceCall{}, ErrInvalidServiceCallID
	}
	sc, err := u.serviceCalls.GetByID(ctx, serviceCallID)
	if err != nil {
		zap.S().Errorw("[financeiro][usecase] load service call failed", "service_call_id", serviceCallID, "err", err)
		return entities.ServiceCall{}, err
	}
	if sc.ID == "" {
		return entities.ServiceCall{}, ErrServiceCallNotFound
	}
	return sc, nil
}

func buildSummary(sc entities.ServiceCall, items []entities.LineItem, txs []entities.FinancialTransaction) FinancialSummary {
	totals := finance.ComputeItemTotals(items, sc.Discounts)
	summary := FinancialSummary{
		ServiceCallID: sc.ID,
		Items:         items,
		Discounts:     finance.WithCalculated(sc.Discounts, totals),
		Totals:        totals,
		Transactions:  txs,
		Warnings:      []Warning{},
	}

	if err := finance.ValidateTotals(totals); err != nil {
		summary.Warnings = append(summary.Warnings, Warning{Code: WarningNegativeGrandTotal, Message: err.Error()})
	}

	if len(sc.PaymentConfigRaw) > 0 {
		cfg := finance.ParsePaymentConfig(sc.PaymentConfigRaw)
		if cfg == nil {
			summary.Warnings = append(summary.Warnings, Warning{Code: WarningPaymentConfigUnparsed, Message: "saved payment config could not be read"})
		} else {
			split := finance.ValidateSplit(totals.GrandTotal, cfg.PaymentMethods)
			summary.PaymentConfig = cfg
			summary.Split = &split
			if len(cfg.PaymentMethods) > 0 && !split.IsValid {
				summary.Warnings = append(summary.Warnings, Warning{
					Code:    WarningPaymentSplitMismatch,
					Message: fmt.Sprintf("payment methods differ from grand total by %s", split.Difference.StringFixed(finance.CentPlaces)),
				})
			}
		}
	}

	active := lo.Filter(txs, func(t entities.FinancialTransaction, _ int) bool {
		return t.Status != entities.TransactionStatusCancelado
	})
	if len(active) > 0 {
		scheduled := lo.Reduce(active, func(acc decimal.Decimal, t entities.FinancialTransaction, _ int) decimal.Decimal {
			return acc.Add(t.Amount)
		}, decimal.Zero)
		if diff := totals.GrandTotal.Sub(scheduled); diff.Abs().GreaterThanOrEqual(finance.SplitTolerance) {
			summary.Warnings = append(summary.Warnings, Warning{
				Code:    WarningInstallmentsMismatch,
				Message: fmt.Sprintf("installments differ from grand total by %s", diff.StringFixed(finance.CentPlaces)),
			})
		}
	}
	return summary
}

// normalizePaymentMethods trims fields and assigns an id to entries created
// without one.
func normalizePaymentMethods(methods []entities.PaymentMethodEntry) ([]entities.PaymentMethodEntry, error) {
	seen := make(map[string]struct{}, len(methods))
	out := make([]entities.PaymentMethodEntry, 0, len(methods))
	for _, m := range methods {
		m.ID = strings.TrimSpace(m.ID)
		m.Method = strings.TrimSpace(m.Method)
		m.Details = strings.TrimSpace(m.Details)
		if m.Method == "" {
			return nil, ErrInvalidPaymentMethod
		}
		if m.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPaymentAmount, m.Method)
		}
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		if _, dup := seen[m.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePaymentMethodID, m.ID)
		}
		seen[m.ID] = struct{}{}
		out = append(out, m)
	}
	return out, nil
}

// validateDiscountTypes accepts an empty type (no discount) but rejects unknown ones.
func validateDiscountTypes(cfg entities.DiscountConfig) error {
	for _, d := range []entities.DiscountCategory{cfg.Parts, cfg.Services, cfg.Total} {
		if d.Type != "" && !d.Type.Valid() {
			return fmt.Errorf("%w: %s", ErrInvalidDiscountConfigType, d.Type)
		}
	}
	return nil
}
