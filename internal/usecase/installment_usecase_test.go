package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"os_financeiro/internal/domain/entities"
	"os_financeiro/internal/domain/finance"
	"os_financeiro/internal/usecase/interfaces"
	mock_interfaces "os_financeiro/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)

func newInstallmentUseCase(t *testing.T) (*InstallmentUseCase, *mock_interfaces.MockITransactionRepository, *mock_interfaces.MockIServiceCallRepository, *mock_interfaces.MockIPaymentGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockITransactionRepository(ctrl)
	scRepo := mock_interfaces.NewMockIServiceCallRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewInstallmentUseCase(repo, scRepo, gateway)
	uc.now = func() time.Time { return fixedNow }
	return uc, repo, scRepo, gateway
}

func openTx(id string) entities.FinancialTransaction {
	return entities.FinancialTransaction{
		ID:                  id,
		Status:              entities.TransactionStatusAberto,
		ServiceCallID:       "os-1",
		Amount:              decimal.RequireFromString("100"),
		PaymentMethod:       "pix",
		InstallmentNumber:   1,
		InstallmentsTotal:   3,
		InstallmentsGroupID: "grp-1",
	}
}

func TestInstallmentUseCase_Preview(t *testing.T) {
	uc, _, _, _ := newInstallmentUseCase(t)

	got, err := uc.Preview(GenerateInstallmentsInput{
		StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DayOffsets: []int{30, 30, 30},
		Total:      decimal.RequireFromString("100"),
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "33.33", got[0].Amount.StringFixed(2))
	assert.Equal(t, "33.34", got[2].Amount.StringFixed(2))
	assert.Equal(t, "2024-03-31", finance.FormatDate(got[2].DueDate))

	t.Run("defaults start date to today", func(t *testing.T) {
		got, err := uc.Preview(GenerateInstallmentsInput{DayOffsets: []int{0}, Total: decimal.RequireFromString("10")})
		require.NoError(t, err)
		assert.Equal(t, "2024-05-10", finance.FormatDate(got[0].DueDate))
	})
}

func TestInstallmentUseCase_Preview_Validations(t *testing.T) {
	uc, _, _, _ := newInstallmentUseCase(t)

	_, err := uc.Preview(GenerateInstallmentsInput{DayOffsets: []int{30}, Total: decimal.Zero})
	assert.ErrorIs(t, err, ErrInvalidInstallmentTotal)

	_, err = uc.Preview(GenerateInstallmentsInput{Total: decimal.RequireFromString("10")})
	assert.ErrorIs(t, err, finance.ErrEmptyDayOffsets)

	_, err = uc.Preview(GenerateInstallmentsInput{DayOffsets: []int{30, -1}, Total: decimal.RequireFromString("10")})
	assert.ErrorIs(t, err, finance.ErrNegativeDayOffset)

	_, err = uc.Preview(GenerateInstallmentsInput{DayOffsets: make([]int, MaxInstallments+1), Total: decimal.RequireFromString("10")})
	assert.ErrorIs(t, err, ErrTooManyInstallments)
}

func TestInstallmentUseCase_Generate(t *testing.T) {
	uc, repo, scRepo, _ := newInstallmentUseCase(t)
	ctx := context.Background()

	scRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceCall{ID: "os-1", ClientID: "cli-9"}, nil)
	repo.EXPECT().ListByServiceCallID(gomock.Any(), "os-1").Return(nil, nil)
	repo.EXPECT().CreateBatch(gomock.Any(), "os-1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, groupID string, txs []entities.FinancialTransaction) error {
			require.Len(t, txs, 3)
			for i, tx := range txs {
				assert.Equal(t, groupID, tx.InstallmentsGroupID)
				assert.Equal(t, i+1, tx.InstallmentNumber)
				assert.Equal(t, 3, tx.InstallmentsTotal)
				assert.Equal(t, "cli-9", tx.ClientID)
				assert.Equal(t, entities.TransactionStatusAberto, tx.Status)
				assert.Equal(t, entities.TransactionDirectionReceber, tx.Direction)
				assert.Equal(t, entities.TransactionOriginOrdemServico, tx.OriginType)
				assert.Equal(t, "boleto", tx.PaymentMethod)
				assert.Equal(t, 30, tx.IntervalDays)
			}
			return nil
		},
	)

	got, err := uc.Generate(ctx, GenerateInstallmentsInput{
		ServiceCallID: " os-1 ",
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DayOffsets:    []int{30, 30, 30},
		Total:         decimal.RequireFromString("300"),
		PaymentMethod: "boleto",
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2024-01-31", finance.FormatDate(got[0].DueDate))
	assert.Equal(t, "100.00", got[1].Amount.StringFixed(2))
}

func TestInstallmentUseCase_Generate_RejectsWhenRowsExist(t *testing.T) {
	uc, repo, scRepo, _ := newInstallmentUseCase(t)

	scRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceCall{ID: "os-1"}, nil)
	repo.EXPECT().ListByServiceCallID(gomock.Any(), "os-1").Return([]entities.FinancialTransaction{openTx("tx-1")}, nil)
	// CreateBatch has no expectation: any insert fails the test.

	_, err := uc.Generate(context.Background(), GenerateInstallmentsInput{
		ServiceCallID: "os-1",
		DayOffsets:    []int{30},
		Total:         decimal.RequireFromString("100"),
	})
	assert.ErrorIs(t, err, ErrInstallmentsAlreadyExist)
}

func TestInstallmentUseCase_Generate_RejectsWhenGuardTaken(t *testing.T) {
	t.Run("guard already on the record", func(t *testing.T) {
		uc, repo, scRepo, _ := newInstallmentUseCase(t)
		scRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceCall{ID: "os-1", InstallmentsGroupID: "grp-0"}, nil)
		repo.EXPECT().ListByServiceCallID(gomock.Any(), "os-1").Return(nil, nil)

		_, err := uc.Generate(context.Background(), GenerateInstallmentsInput{ServiceCallID: "os-1", DayOffsets: []int{30}, Total: decimal.RequireFromString("100")})
		assert.ErrorIs(t, err, ErrInstallmentsAlreadyExist)
	})

	t.Run("concurrent generation wins the guard", func(t *testing.T) {
		uc, repo, scRepo, _ := newInstallmentUseCase(t)
		scRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceCall{ID: "os-1"}, nil)
		repo.EXPECT().ListByServiceCallID(gomock.Any(), "os-1").Return(nil, nil)
		repo.EXPECT().CreateBatch(gomock.Any(), "os-1", gomock.Any(), gomock.Any()).Return(interfaces.ErrConcurrentModification)

		_, err := uc.Generate(context.Background(), GenerateInstallmentsInput{ServiceCallID: "os-1", DayOffsets: []int{30}, Total: decimal.RequireFromString("100")})
		assert.ErrorIs(t, err, ErrInstallmentsAlreadyExist)
	})
}

func TestInstallmentUseCase_Generate_Validations(t *testing.T) {
	uc, _, scRepo, _ := newInstallmentUseCase(t)
	ctx := context.Background()

	_, err := uc.Generate(ctx, GenerateInstallmentsInput{ServiceCallID: " "})
	assert.ErrorIs(t, err, ErrInvalidServiceCallID)

	_, err = uc.Generate(ctx, GenerateInstallmentsInput{ServiceCallID: "os-1", DayOffsets: []int{30}, Total: decimal.RequireFromString("-1")})
	assert.ErrorIs(t, err, ErrInvalidInstallmentTotal)

	scRepo.EXPECT().GetByID(gomock.Any(), "os-404").Return(entities.ServiceCall{}, nil)
	_, err = uc.Generate(ctx, GenerateInstallmentsInput{ServiceCallID: "os-404", DayOffsets: []int{30}, Total: decimal.RequireFromString("1")})
	assert.ErrorIs(t, err, ErrServiceCallNotFound)
}

func TestInstallmentUseCase_Clear(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().DeleteAllByServiceCallID(gomock.Any(), "os-1").Return(3, nil)

		n, err := uc.Clear(context.Background(), "os-1")
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("single error for the whole batch", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().DeleteAllByServiceCallID(gomock.Any(), "os-1").Return(0, interfaces.ErrConcurrentModification)

		n, err := uc.Clear(context.Background(), "os-1")
		assert.Zero(t, n)
		assert.ErrorIs(t, err, ErrClearInstallmentsFailed)
		assert.ErrorIs(t, err, interfaces.ErrConcurrentModification)
	})
}

func TestInstallmentUseCase_ListByServiceCall_SortsByDueDate(t *testing.T) {
	uc, repo, _, _ := newInstallmentUseCase(t)
	a := openTx("a")
	a.DueDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	a.InstallmentNumber = 2
	b := openTx("b")
	b.DueDate = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().ListByServiceCallID(gomock.Any(), "os-1").Return([]entities.FinancialTransaction{a, b}, nil)

	got, err := uc.ListByServiceCall(context.Background(), "os-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, []string{got[0].ID, got[1].ID})
}

func TestInstallmentUseCase_Update(t *testing.T) {
	ctx := context.Background()
	amount := decimal.RequireFromString("150")
	due := time.Date(2024, 7, 1, 18, 0, 0, 0, time.UTC)

	t.Run("overwrites open row", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().UpdateOpen(gomock.Any(), "tx-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, patch entities.TransactionPatch) (entities.FinancialTransaction, error) {
				require.NotNil(t, patch.DueDate)
				assert.Equal(t, "2024-07-01", finance.FormatDate(*patch.DueDate))
				assert.Zero(t, patch.DueDate.Hour())
				tx := openTx("tx-1")
				tx.Amount = *patch.Amount
				tx.DueDate = *patch.DueDate
				return tx, nil
			},
		)

		got, err := uc.Update(ctx, "tx-1", entities.TransactionPatch{DueDate: &due, Amount: &amount})
		require.NoError(t, err)
		assert.Equal(t, "150.00", got.Amount.StringFixed(2))
	})

	t.Run("empty patch", func(t *testing.T) {
		uc, _, _, _ := newInstallmentUseCase(t)
		_, err := uc.Update(ctx, "tx-1", entities.TransactionPatch{})
		assert.ErrorIs(t, err, ErrEmptyTransactionPatch)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		uc, _, _, _ := newInstallmentUseCase(t)
		zero := decimal.Zero
		_, err := uc.Update(ctx, "tx-1", entities.TransactionPatch{Amount: &zero})
		assert.ErrorIs(t, err, ErrInvalidTransactionAmount)
	})

	t.Run("row no longer open", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		paid := openTx("tx-1")
		paid.Status = entities.TransactionStatusPago
		repo.EXPECT().UpdateOpen(gomock.Any(), "tx-1", gomock.Any()).Return(entities.FinancialTransaction{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "tx-1").Return(paid, nil)

		_, err := uc.Update(ctx, "tx-1", entities.TransactionPatch{Amount: &amount})
		assert.ErrorIs(t, err, ErrTransactionNotOpen)
	})

	t.Run("missing row", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().UpdateOpen(gomock.Any(), "tx-9", gomock.Any()).Return(entities.FinancialTransaction{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "tx-9").Return(entities.FinancialTransaction{}, nil)

		_, err := uc.Update(ctx, "tx-9", entities.TransactionPatch{Amount: &amount})
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}

func TestInstallmentUseCase_Transitions(t *testing.T) {
	ctx := context.Background()

	t.Run("mark paid sets paid_at", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().TransitionFromOpen(gomock.Any(), "tx-1", entities.TransactionStatusPago, gomock.Not(gomock.Nil())).DoAndReturn(
			func(_ context.Context, _ string, status entities.TransactionStatus, paidAt *time.Time) (entities.FinancialTransaction, error) {
				assert.True(t, paidAt.Equal(fixedNow))
				tx := openTx("tx-1")
				tx.Status = status
				tx.PaidAt = paidAt
				return tx, nil
			},
		)

		got, err := uc.MarkPaid(ctx, "tx-1")
		require.NoError(t, err)
		assert.Equal(t, entities.TransactionStatusPago, got.Status)
		require.NotNil(t, got.PaidAt)
	})

	t.Run("cancel leaves paid_at empty", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().TransitionFromOpen(gomock.Any(), "tx-1", entities.TransactionStatusCancelado, gomock.Nil()).Return(
			entities.FinancialTransaction{ID: "tx-1", Status: entities.TransactionStatusCancelado}, nil)

		got, err := uc.Cancel(ctx, "tx-1")
		require.NoError(t, err)
		assert.Equal(t, entities.TransactionStatusCancelado, got.Status)
	})

	t.Run("terminal rows are rejected", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		cancelled := openTx("tx-1")
		cancelled.Status = entities.TransactionStatusCancelado
		repo.EXPECT().TransitionFromOpen(gomock.Any(), "tx-1", entities.TransactionStatusPago, gomock.Any()).Return(entities.FinancialTransaction{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "tx-1").Return(cancelled, nil)

		_, err := uc.MarkPaid(ctx, "tx-1")
		assert.ErrorIs(t, err, ErrTransactionNotOpen)
	})

	t.Run("empty id", func(t *testing.T) {
		uc, _, _, _ := newInstallmentUseCase(t)
		_, err := uc.Cancel(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidTransactionID)
	})
}

func TestInstallmentUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("release does not depend on the index", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().DeleteOpen(gomock.Any(), "tx-1").Return(openTx("tx-1"), nil)
		// A lagging index still lists the row that was just deleted.
		repo.EXPECT().ListByServiceCallID(gomock.Any(), "os-1").Return([]entities.FinancialTransaction{openTx("tx-1")}, nil).AnyTimes()
		repo.EXPECT().ReleaseGuard(gomock.Any(), "os-1", "grp-1").Return(nil)

		require.NoError(t, uc.Delete(ctx, "tx-1"))
	})

	t.Run("concurrent guard change is reported", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().DeleteOpen(gomock.Any(), "tx-1").Return(entities.FinancialTransaction{}, interfaces.ErrConcurrentModification)

		assert.ErrorIs(t, uc.Delete(ctx, "tx-1"), interfaces.ErrConcurrentModification)
	})

	t.Run("paid row cannot be deleted", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		paid := openTx("tx-1")
		paid.Status = entities.TransactionStatusPago
		repo.EXPECT().DeleteOpen(gomock.Any(), "tx-1").Return(entities.FinancialTransaction{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "tx-1").Return(paid, nil)

		assert.ErrorIs(t, uc.Delete(ctx, "tx-1"), ErrTransactionNotOpen)
	})

	t.Run("guard release failure is not fatal", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().DeleteOpen(gomock.Any(), "tx-1").Return(openTx("tx-1"), nil)
		repo.EXPECT().ReleaseGuard(gomock.Any(), "os-1", "grp-1").Return(errors.New("throttled"))

		assert.NoError(t, uc.Delete(ctx, "tx-1"))
	})
}

func TestInstallmentUseCase_Charge(t *testing.T) {
	ctx := context.Background()

	t.Run("approved payment marks the row paid", func(t *testing.T) {
		uc, repo, _, gateway := newInstallmentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "tx-1").Return(openTx("tx-1"), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var body map[string]any
				require.NoError(t, json.Unmarshal(payload, &body))
				assert.Equal(t, float64(100), body["transaction_amount"])
				assert.Equal(t, "tx-1", body["external_reference"])
				assert.Equal(t, "pix", body["payment_method_id"])
				assert.Equal(t, "OS os-1 parcela 1/3", body["description"])
				return "pay-1", "approved", json.RawMessage(`{"id":1}`), nil
			},
		)
		paid := openTx("tx-1")
		paid.Status = entities.TransactionStatusPago
		repo.EXPECT().TransitionFromOpen(gomock.Any(), "tx-1", entities.TransactionStatusPago, gomock.Any()).Return(paid, nil)

		got, err := uc.Charge(ctx, "tx-1", json.RawMessage(`{"transaction_amount":1}`))
		require.NoError(t, err)
		assert.True(t, got.Paid)
		assert.Equal(t, "pay-1", got.ProviderPaymentID)
		assert.Equal(t, entities.TransactionStatusPago, got.Transaction.Status)
	})

	t.Run("pending payment keeps the row open", func(t *testing.T) {
		uc, repo, _, gateway := newInstallmentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "tx-1").Return(openTx("tx-1"), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-2", "pending", nil, nil)

		got, err := uc.Charge(ctx, "tx-1", nil)
		require.NoError(t, err)
		assert.False(t, got.Paid)
		assert.Equal(t, "pending", got.ProviderStatus)
		assert.True(t, got.Transaction.IsOpen())
	})

	t.Run("closed row", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		tx := openTx("tx-1")
		tx.Status = entities.TransactionStatusCancelado
		repo.EXPECT().GetByID(gomock.Any(), "tx-1").Return(tx, nil)

		_, err := uc.Charge(ctx, "tx-1", nil)
		assert.ErrorIs(t, err, ErrTransactionNotOpen)
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc, _, _, _ := newInstallmentUseCase(t)
		_, err := uc.Charge(ctx, "tx-1", json.RawMessage(`[1]`))
		assert.ErrorIs(t, err, ErrInvalidChargePayload)
	})

	t.Run("gateway error", func(t *testing.T) {
		uc, repo, _, gateway := newInstallmentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "tx-1").Return(openTx("tx-1"), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := uc.Charge(ctx, "tx-1", nil)
		assert.ErrorIs(t, err, ErrPaymentGatewayFailed)
		assert.ErrorContains(t, err, "boom")
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewInstallmentUseCase(nil, nil, nil)
		_, err := uc.Charge(ctx, "tx-1", nil)
		assert.ErrorIs(t, err, ErrPaymentGatewayNotConfigured)
	})
}
