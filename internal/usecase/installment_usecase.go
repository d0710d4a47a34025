package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
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

// MaxInstallments bounds one generation batch: every row plus the service call
// guard must fit in a single DynamoDB transaction (100 actions).
const MaxInstallments = 99

var (
	ErrInvalidTransactionID        = errors.New("invalid transaction id")
	ErrInvalidInstallmentTotal     = errors.New("installment total must be positive")
	ErrTooManyInstallments         = errors.New("too many installments")
	ErrInstallmentsAlreadyExist    = errors.New("installments already exist for this service call")
	ErrTransactionNotFound         = errors.New("transaction not found")
	ErrTransactionNotOpen          = errors.New("transaction is not open")
	ErrEmptyTransactionPatch       = errors.New("nothing to update")
	ErrInvalidTransactionAmount    = errors.New("amount must be positive")
	ErrInvalidChargePayload        = errors.New("invalid charge payload")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrClearInstallmentsFailed     = errors.New("could not clear installments")
	ErrPaymentGatewayFailed        = errors.New("payment provider failed")
)

type GenerateInstallmentsInput struct {
	ServiceCallID string
	StartDate     time.Time
	DayOffsets    []int
	Total         decimal.Decimal
	PaymentMethod string
}

// ChargeResult reports the provider outcome. Transaction is marked pago only when
// the provider approved the payment; pending charges leave it aberto.
type ChargeResult struct {
	Transaction       entities.FinancialTransaction
	ProviderPaymentID string
	ProviderStatus    string
	Paid              bool
}

// IInstallmentUseCase generates and manages the receivable installments of a
// service call.
//
// Requested behavior:
//   - Generation writes the whole batch or nothing, and only when the service call
//     has no installments yet.
//   - Clearing removes every row of the service call in one atomic step.
//   - Edits, deletes and transitions only apply to aberto rows.

type IInstallmentUseCase interface {
	Preview(in GenerateInstallmentsInput) ([]finance.Installment, error)
	Generate(ctx context.Context, in GenerateInstallmentsInput) ([]entities.FinancialTransaction, error)
	Clear(ctx context.Context, serviceCallID string) (int, error)
	ListByServiceCall(ctx context.Context, serviceCallID string) ([]entities.FinancialTransaction, error)
	Update(ctx context.Context, id string, patch entities.TransactionPatch) (entities.FinancialTransaction, error)
	MarkPaid(ctx context.Context, id string) (entities.FinancialTransaction, error)
	Cancel(ctx context.Context, id string) (entities.FinancialTransaction, error)
	Delete(ctx context.Context, id string) error
	Charge(ctx context.Context, id string, payload json.RawMessage) (ChargeResult, error)
}

type InstallmentUseCase struct {
	repo         interfaces.ITransactionRepository
	serviceCalls interfaces.IServiceCallRepository
	gateway      interfaces.IPaymentGateway
	now          func() time.Time
}

var _ IInstallmentUseCase = (*InstallmentUseCase)(nil)

func NewInstallmentUseCase(repo interfaces.ITransactionRepository, serviceCalls interfaces.IServiceCallRepository, gateway interfaces.IPaymentGateway) *InstallmentUseCase {
	return &InstallmentUseCase{repo: repo, serviceCalls: serviceCalls, gateway: gateway, now: time.Now}
}

// Preview runs the schedule generator without touching storage.
func (u *InstallmentUseCase) Preview(in GenerateInstallmentsInput) ([]finance.Installment, error) {
	return u.schedule(in)
}

func (u *InstallmentUseCase) schedule(in GenerateInstallmentsInput) ([]finance.Installment, error) {
	if !in.Total.IsPositive() {
		return nil, ErrInvalidInstallmentTotal
	}
	if len(in.DayOffsets) > MaxInstallments {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrTooManyInstallments, len(in.DayOffsets), MaxInstallments)
	}
	start := in.StartDate
	if start.IsZero() {
		start = u.now()
	}
	return finance.GenerateInstallments(start, in.DayOffsets, in.Total)
}

func (u *InstallmentUseCase) Generate(ctx context.Context, in GenerateInstallmentsInput) ([]entities.FinancialTransaction, error) {
	serviceCallID := strings.TrimSpace(in.ServiceCallID)
	if serviceCallID == "" {
		return nil, ErrInvalidServiceCallID
	}
	zap.S().Infow("[installments][usecase] generate start", "service_call_id", serviceCallID, "count", len(in.DayOffsets))

	schedule, err := u.schedule(in)
	if err != nil {
		zap.S().Warnw("[installments][usecase] invalid schedule", "service_call_id", serviceCallID, "err", err)
		return nil, err
	}

	sc, err := u.serviceCalls.GetByID(ctx, serviceCallID)
	if err != nil {
		zap.S().Errorw("[installments][usecase] load service call failed", "service_call_id", serviceCallID, "err", err)
		return nil, err
	}
	if sc.ID == "" {
		return nil, ErrServiceCallNotFound
	}

	existing, err := u.repo.ListByServiceCallID(ctx, serviceCallID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 || sc.InstallmentsGroupID != "" {
		zap.S().Warnw("[installments][usecase] installments already exist", "service_call_id", serviceCallID, "existing", len(existing))
		return nil, ErrInstallmentsAlreadyExist
	}

	groupID := uuid.NewString()
	now := u.now().UTC()
	txs := lo.Map(schedule, func(inst finance.Installment, _ int) entities.FinancialTransaction {
		return entities.FinancialTransaction{
			ID:                  uuid.NewString(),
			Direction:           entities.TransactionDirectionReceber,
			OriginType:          entities.TransactionOriginOrdemServico,
			Status:              entities.TransactionStatusAberto,
			ServiceCallID:       serviceCallID,
			ClientID:            sc.ClientID,
			DueDate:             inst.DueDate,
			Amount:              inst.Amount,
			PaymentMethod:       strings.TrimSpace(in.PaymentMethod),
			InstallmentNumber:   inst.Number,
			InstallmentsTotal:   len(schedule),
			InstallmentsGroupID: groupID,
			IntervalDays:        inst.Days,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
	})

	if err := u.repo.CreateBatch(ctx, serviceCallID, groupID, txs); err != nil {
		if errors.Is(err, interfaces.ErrConcurrentModification) {
			zap.S().Warnw("[installments][usecase] generation guard taken", "service_call_id", serviceCallID)
			return nil, ErrInstallmentsAlreadyExist
		}
		zap.S().Errorw("[installments][usecase] batch create failed", "service_call_id", serviceCallID, "err", err)
		return nil, err
	}
	zap.S().Infow("[installments][usecase] generate success",
		"service_call_id", serviceCallID,
		"group_id", groupID,
		"count", len(txs),
		"total", in.Total.StringFixed(finance.CentPlaces),
	)
	return txs, nil
}

// Clear deletes every installment of the service call. It either removes all of
// them or none and reports a single error.
func (u *InstallmentUseCase) Clear(ctx context.Context, serviceCallID string) (int, error) {
	serviceCallID = strings.TrimSpace(serviceCallID)
	if serviceCallID == "" {
		return 0, ErrInvalidServiceCallID
	}
	n, err := u.repo.DeleteAllByServiceCallID(ctx, serviceCallID)
	if err != nil {
		zap.S().Errorw("[installments][usecase] clear failed", "service_call_id", serviceCallID, "err", err)
		return 0, fmt.Errorf("%w: %w", ErrClearInstallmentsFailed, err)
	}
	zap.S().Infow("[installments][usecase] cleared", "service_call_id", serviceCallID, "deleted", n)
	return n, nil
}

func (u *InstallmentUseCase) ListByServiceCall(ctx context.Context, serviceCallID string) ([]entities.FinancialTransaction, error) {
	serviceCallID = strings.TrimSpace(serviceCallID)
	if serviceCallID == "" {
		return nil, ErrInvalidServiceCallID
	}
	txs, err := u.repo.ListByServiceCallID(ctx, serviceCallID)
	if err != nil {
		return nil, err
	}
	return sortTransactions(txs), nil
}

// Update overwrites due date and/or amount of one open installment. The other
// installments are not rebalanced.
func (u *InstallmentUseCase) Update(ctx context.Context, id string, patch entities.TransactionPatch) (entities.FinancialTransaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FinancialTransaction{}, ErrInvalidTransactionID
	}
	if patch.IsEmpty() {
		return entities.FinancialTransaction{}, ErrEmptyTransactionPatch
	}
	if patch.Amount != nil && !patch.Amount.IsPositive() {
		return entities.FinancialTransaction{}, ErrInvalidTransactionAmount
	}
	if patch.DueDate != nil {
		d := finance.DateOf(*patch.DueDate)
		patch.DueDate = &d
	}

	updated, err := u.repo.UpdateOpen(ctx, id, patch)
	if err != nil {
		zap.S().Errorw("[installments][usecase] update failed", "transaction_id", id, "err", err)
		return entities.FinancialTransaction{}, err
	}
	if updated.ID == "" {
		return entities.FinancialTransaction{}, u.missError(ctx, id)
	}
	zap.S().Infow("[installments][usecase] updated", "transaction_id", id, "amount", updated.Amount.StringFixed(finance.CentPlaces), "due_date", finance.FormatDate(updated.DueDate))
	return updated, nil
}

func (u *InstallmentUseCase) MarkPaid(ctx context.Context, id string) (entities.FinancialTransaction, error) {
	paidAt := u.now().UTC()
	return u.transition(ctx, id, entities.TransactionStatusPago, &paidAt)
}

func (u *InstallmentUseCase) Cancel(ctx context.Context, id string) (entities.FinancialTransaction, error) {
	return u.transition(ctx, id, entities.TransactionStatusCancelado, nil)
}

func (u *InstallmentUseCase) transition(ctx context.Context, id string, status entities.TransactionStatus, paidAt *time.Time) (entities.FinancialTransaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FinancialTransaction{}, ErrInvalidTransactionID
	}
	updated, err := u.repo.TransitionFromOpen(ctx, id, status, paidAt)
	if err != nil {
		zap.S().Errorw("[installments][usecase] transition failed", "transaction_id", id, "status", status, "err", err)
		return entities.FinancialTransaction{}, err
	}
	if updated.ID == "" {
		return entities.FinancialTransaction{}, u.missError(ctx, id)
	}
	zap.S().Infow("[installments][usecase] transition", "transaction_id", id, "status", updated.Status)
	return updated, nil
}

// Delete removes one open installment. When it was the last row of its group the
// generation guard is released so a new batch can be generated; the repository
// decides that from the guard's own row counter.
func (u *InstallmentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTransactionID
	}
	deleted, err := u.repo.DeleteOpen(ctx, id)
	if err != nil {
		zap.S().Errorw("[installments][usecase] delete failed", "transaction_id", id, "err", err)
		return err
	}
	if deleted.ID == "" {
		return u.missError(ctx, id)
	}
	zap.S().Infow("[installments][usecase] deleted", "transaction_id", id, "service_call_id", deleted.ServiceCallID)

	if err := u.repo.ReleaseGuard(ctx, deleted.ServiceCallID, deleted.InstallmentsGroupID); err != nil {
		// The row is gone; Clear still releases a leftover guard.
		zap.S().Warnw("[installments][usecase] release guard failed", "service_call_id", deleted.ServiceCallID, "err", err)
	}
	return nil
}

// Charge sends an open installment to the payment gateway. The amount always
// comes from the stored row, never from the payload.
func (u *InstallmentUseCase) Charge(ctx context.Context, id string, payload json.RawMessage) (ChargeResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ChargeResult{}, ErrInvalidTransactionID
	}
	if u.gateway == nil {
		return ChargeResult{}, ErrPaymentGatewayNotConfigured
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		return ChargeResult{}, ErrInvalidChargePayload
	}

	tx, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return ChargeResult{}, err
	}
	if tx.ID == "" {
		return ChargeResult{}, ErrTransactionNotFound
	}
	if !tx.IsOpen() {
		return ChargeResult{}, ErrTransactionNotOpen
	}

	if !hasNonEmptyString(reqMap, "payment_method_id") {
		if tx.PaymentMethod == "" {
			return ChargeResult{}, fmt.Errorf("%w: payment_method_id is required", ErrInvalidChargePayload)
		}
		reqMap["payment_method_id"] = tx.PaymentMethod
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = tx.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("OS %s parcela %d/%d", tx.ServiceCallID, tx.InstallmentNumber, tx.InstallmentsTotal)
	}
	reqMap["transaction_amount"] = tx.Amount.InexactFloat64()
	body, err := json.Marshal(reqMap)
	if err != nil {
		return ChargeResult{}, err
	}

	zap.S().Infow("[installments][usecase] charge start", "transaction_id", id, "amount", tx.Amount.StringFixed(finance.CentPlaces))
	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		zap.S().Errorw("[installments][usecase] payment gateway failed", "transaction_id", id, "err", err)
		return ChargeResult{}, fmt.Errorf("%w: %w", ErrPaymentGatewayFailed, err)
	}

	result := ChargeResult{Transaction: tx, ProviderPaymentID: providerID, ProviderStatus: providerStatus}
	if providerStatus != interfaces.PaymentStatusApproved {
		zap.S().Infow("[installments][usecase] charge pending", "transaction_id", id, "provider_status", providerStatus)
		return result, nil
	}

	paid, err := u.MarkPaid(ctx, id)
	if err != nil {
		return ChargeResult{}, err
	}
	result.Transaction = paid
	result.Paid = true
	zap.S().Infow("[installments][usecase] charge success", "transaction_id", id, "provider_payment_id", providerID)
	return result, nil
}

// missError tells a missing row apart from one that is no longer open after a
// conditional write did not apply.
func (u *InstallmentUseCase) missError(ctx context.Context, id string) error {
	tx, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tx.ID == "" {
		return ErrTransactionNotFound
	}
	return ErrTransactionNotOpen
}

func sortTransactions(txs []entities.FinancialTransaction) []entities.FinancialTransaction {
	slices.SortStableFunc(txs, func(a, b entities.FinancialTransaction) int {
		if c := a.DueDate.Compare(b.DueDate); c != 0 {
			return c
		}
		return a.InstallmentNumber - b.InstallmentNumber
	})
	return txs
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}
