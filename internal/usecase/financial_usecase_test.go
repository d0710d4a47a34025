package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"os_financeiro/internal/domain/entities"
	"os_financeiro/internal/domain/finance"
	mock_interfaces "os_financeiro/internal/usecase/interfaces/mocks"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var financeAccess = entities.Capabilities{CanViewFinancials: true}

type financialMocks struct {
	serviceCalls *mock_interfaces.MockIServiceCallRepository
	lineItems    *mock_interfaces.MockILineItemRepository
	transactions *mock_interfaces.MockITransactionRepository
}

func newFinancialUseCase(t *testing.T) (*FinancialUseCase, financialMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := financialMocks{
		serviceCalls: mock_interfaces.NewMockIServiceCallRepository(ctrl),
		lineItems:    mock_interfaces.NewMockILineItemRepository(ctrl),
		transactions: mock_interfaces.NewMockITransactionRepository(ctrl),
	}
	uc := NewFinancialUseCase(m.serviceCalls, m.lineItems, m.transactions)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func item(kind entities.LineItemKind, total string) entities.LineItem {
	return entities.LineItem{ID: string(kind) + total, ServiceCallID: "os-1", Kind: kind, Total: decimal.RequireFromString(total)}
}

// Parts 100, services 200.
func sampleItems() []entities.LineItem {
	return []entities.LineItem{
		item(entities.LineItemKindProduto, "60"),
		item(entities.LineItemKindProduto, "40"),
		item(entities.LineItemKindServico, "200"),
	}
}

func discount(kind entities.DiscountType, v string) entities.DiscountCategory {
	return entities.DiscountCategory{Type: kind, Value: decimal.RequireFromString(v)}
}

func warningCodes(ws []Warning) []string {
	return lo.Map(ws, func(w Warning, _ int) string { return w.Code })
}

func TestFinancialUseCase_RequiresCapability(t *testing.T) {
	uc, _ := newFinancialUseCase(t)
	ctx := context.Background()
	none := entities.Roles{IsAdmin: true, IsTechnician: true}.Capabilities()

	_, err := uc.GetSummary(ctx, none, "os-1")
	assert.ErrorIs(t, err, ErrFinancialAccessDenied)
	_, err = uc.Save(ctx, none, SaveFinancialsInput{ServiceCallID: "os-1"})
	assert.ErrorIs(t, err, ErrFinancialAccessDenied)
	_, err = uc.AutoFill(ctx, none, AutoFillInput{ServiceCallID: "os-1"})
	assert.ErrorIs(t, err, ErrFinancialAccessDenied)
}

func TestFinancialUseCase_GetSummary(t *testing.T) {
	uc, m := newFinancialUseCase(t)
	raw, err := finance.EncodePaymentConfig(finance.BuildPaymentConfig(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		[]int{30},
		[]entities.PaymentMethodEntry{{ID: "m1", Method: "pix", Amount: decimal.RequireFromString("250")}},
	))
	require.NoError(t, err)

	sc := entities.ServiceCall{
		ID: "os-1",
		Discounts: entities.DiscountConfig{
			Parts:    discount(entities.DiscountTypePercent, "10"),
			Services: discount(entities.DiscountTypeValue, "20"),
			Total:    discount(entities.DiscountTypePercent, "5"),
		},
		PaymentConfigRaw: raw,
	}
	m.serviceCalls.EXPECT().GetByID(gomock.Any(), "os-1").Return(sc, nil)
	m.lineItems.EXPECT().ListByServiceCallID(gomock.Any(), "os-1").Return(sampleItems(), nil)
	m.transactions.EXPECT().ListByServiceCallID(gomock.Any(), "os-1").Return(nil, nil)

	got, err := uc.GetSummary(context.Background(), financeAccess, "os-1")
	require.NoError(t, err)

	// (100-10) + (200-20) = 270; 5% of 270 = 13.5.
	assert.Equal(t, "256.50", got.Totals.GrandTotal.StringFixed(2))
	assert.Equal(t, "10.00", got.Discounts.Parts.Calculated.StringFixed(2))
	assert.Equal(t, "13.50", got.Discounts.Total.Calculated.StringFixed(2))
	require.NotNil(t, got.PaymentConfig)
	require.NotNil(t, got.Split)
	assert.False(t, got.Split.IsValid)
	assert.Equal(t, "6.50", got.Split.Difference.StringFixed(2))
	assert.Equal(t, []string{WarningPaymentSplitMismatch}, warningCodes(got.Warnings))
}

func TestFinancialUseCase_GetSummary_Warnings(t *testing.T) {
	t.Run("negative grand total", func(t *testing.T) {
		uc, m := newFinancialUseCase(t)
		// Unclamped stored value: 150% of 300.
		sc := entities.ServiceCall{ID: "os-1", Discounts: entities.DiscountConfig{Total: discount(entities.DiscountTypePercent, "150")}}
		m.serviceCalls.EXPECT().GetByID(gomock.Any(), "os-1").Return(sc, nil)
		m.lineItems.EXPECT().ListByServiceCallID(gomock.Any(), "os-1").Return(sampleItems(), nil)
		m.transactions.EXPECT().ListByServiceCallID(gomock.Any(), "os-1").Return(nil, nil)

		got, err := uc.GetSummary(context.Background(), financeAccess, "os-1")
		require.NoError(t, err)
		assert.Equal(t, "-150.00", got.Totals.GrandTotal.StringFixed(2))
		assert.Contains(t, warningCodes(got.Warnings), WarningNegativeGrandTotal)
		assert.Nil(t, got.PaymentConfig)
	})

	t.Run("unreadable payment config", func(t *testing.T) {
		uc, m := newFinancialUseCase(t)
		sc := entities.ServiceCall{ID: "os-1", PaymentConfigRaw: json.RawMessage(`{"startDate":"nope"}`)}
		m.serviceCalls.EXPECT().GetByID(gomock.Any(), "os-1").Return(sc, nil)
		m.lineItems.EXPECT().ListByServiceCallID(gomock.Any(), "os-1").Return(nil, nil)
		m.transactions.EXPECT().ListByServiceCallID(gomock.Any(), "os-1").Return(nil, nil)

		got, err := uc.GetSummary(context.Background(), financeAccess, "os-1")
		require.NoError(t, err)
		assert.Equal(t, []string{WarningPaymentConfigUnparsed}, warningCodes(got.Warnings))
	})

	t.Run("installments ignore cancelled rows", func(t *testing.T) {
		uc, m := newFinancialUseCase(t)
		m.serviceCalls.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceCall{ID: "os-1"}, nil)
		m.lineItems.EXPECT().ListByServiceCallID(gomock.Any(), "os-1").Return(sampleItems(), nil)
		txs := []entities.FinancialTransaction{
			{ID: "t1", Status: entities.TransactionStatusPago, Amount: decimal.RequireFromString("150")},
			{ID: "t2", Status: entities.TransactionStatusAberto, Amount: decimal.RequireFromString("150")},
			{ID: "t3", Status: entities.TransactionStatusCancelado, Amount: decimal.RequireFromString("99")},
		}
		m.transactions.EXPECT().ListByServiceCallID(gomock.Any(), "os-1").Return(txs, nil)

		got, err := uc.GetSummary(context.Background(), financeAccess, "os-1")
		require.NoError(t, err)
		assert.Empty(t, got.Warnings)
		assert.Len(t, got.Transactions, 3)
	})
}

func TestFinancialUseCase_GetSummary_Errors(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newFinancialUseCase(t)
		_, err := uc.GetSummary(context.Background(), financeAccess, " ")
		assert.ErrorIs(t, err, ErrInvalidServiceCallID)
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newFinancialUseCase(t)
		m.serviceCalls.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceCall{}, nil)
		_, err := uc.GetSummary(context.Background(), financeAccess, "os-1")
		assert.ErrorIs(t, err, ErrServiceCallNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		uc, m := newFinancialUseCase(t)
		m.serviceCalls.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceCall{ID: "os-1"}, nil)
		m.lineItems.EXPECT().ListByServiceCallID(gomock.Any(), "os-1").Return(nil, errors.New("db"))
		_, err := uc.GetSummary(context.Background(), financeAccess, "os-1")
		assert.EqualError(t, err, "db")
	})
}

func TestFinancialUseCase_Save(t *testing.T) {
	uc, m := newFinancialUseCase(t)

	m.serviceCalls.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceCall{ID: "os-1"}, nil)
	m.lineItems.EXPECT().ListByServiceCallID(gomock.Any(), "os-1").Return(sampleItems(), nil)
	m.serviceCalls.EXPECT().UpdateFinancials(gomock.Any(), "os-1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, d entities.DiscountConfig, raw json.RawMessage) (entities.ServiceCall, error) {
			// Clamped at input: 150% -> 100%, value 999 -> services subtotal.
			assert.Equal(t, "100", d.Parts.Value.String())
			assert.Equal(t, "200", d.Services.Value.String())

			cfg := finance.ParsePaymentConfig(raw)
			require.NotNil(t, cfg)
			assert.Equal(t, "2024-05-10", finance.FormatDate(cfg.StartDate))
			assert.Equal(t, []int{30, 30}, cfg.InstallmentDays)
			require.Len(t, cfg.PaymentMethods, 2)
			assert.Equal(t, "m1", cfg.PaymentMethods[0].ID)
			assert.NotEmpty(t, cfg.PaymentMethods[1].ID)
			return entities.ServiceCall{ID: id, Discounts: d, PaymentConfigRaw: raw}, nil
		},
	)
	m.transactions.EXPECT().ListByServiceCallID(gomock.Any(), "os-1").Return(nil, nil)

	got, err := uc.Save(context.Background(), financeAccess, SaveFinancialsInput{
		ServiceCallID: "os-1",
		Discounts: entities.DiscountConfig{
			Parts:    discount(entities.DiscountTypePercent, "150"),
			Services: discount(entities.DiscountTypeValue, "999"),
		},
		InstallmentDays: []int{30, 30},
		PaymentMethods: []entities.PaymentMethodEntry{
			{ID: "m1", Method: "pix", Amount: decimal.RequireFromString("10")},
			{Method: " dinheiro ", Amount: decimal.Zero},
		},
	})
	require.NoError(t, err)
	assert.True(t, got.Totals.GrandTotal.IsZero())
	// Methods sum to 10 against a zero total: saved anyway, reported as a warning.
	assert.Equal(t, []string{WarningPaymentSplitMismatch}, warningCodes(got.Warnings))
	assert.Equal(t, "dinheiro", got.PaymentConfig.PaymentMethods[1].Method)
}

func TestFinancialUseCase_Save_Validations(t *testing.T) {
	cases := []struct {
		name string
		in   SaveFinancialsInput
		want error
	}{
		{
			name: "blank method",
			in:   SaveFinancialsInput{ServiceCallID: "os-1", PaymentMethods: []entities.PaymentMethodEntry{{ID: "m1", Method: " "}}},
			want: ErrInvalidPaymentMethod,
		},
		{
			name: "negative amount",
			in:   SaveFinancialsInput{ServiceCallID: "os-1", PaymentMethods: []entities.PaymentMethodEntry{{ID: "m1", Method: "pix", Amount: decimal.RequireFromString("-1")}}},
			want: ErrInvalidPaymentAmount,
		},
		{
			name: "duplicate id",
			in: SaveFinancialsInput{ServiceCallID: "os-1", PaymentMethods: []entities.PaymentMethodEntry{
				{ID: "m1", Method: "pix"}, {ID: "m1", Method: "boleto"},
			}},
			want: ErrDuplicatePaymentMethodID,
		},
		{
			name: "negative day offset",
			in:   SaveFinancialsInput{ServiceCallID: "os-1", InstallmentDays: []int{30, -1}},
			want: ErrInvalidInstallmentDays,
		},
		{
			name: "unknown discount type",
			in:   SaveFinancialsInput{ServiceCallID: "os-1", Discounts: entities.DiscountConfig{Total: discount("fixed", "1")}},
			want: ErrInvalidDiscountConfigType,
		},
		{
			name: "blank service call",
			in:   SaveFinancialsInput{},
			want: ErrInvalidServiceCallID,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newFinancialUseCase(t)
			_, err := uc.Save(context.Background(), financeAccess, tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFinancialUseCase_AutoFill(t *testing.T) {
	methods := []entities.PaymentMethodEntry{
		{ID: "m1", Method: "pix", Amount: decimal.RequireFromString("100")},
		{ID: "m2", Method: "cartao_credito", Amount: decimal.Zero},
	}

	t.Run("uses saved discounts", func(t *testing.T) {
		uc, m := newFinancialUseCase(t)
		sc := entities.ServiceCall{ID: "os-1", Discounts: entities.DiscountConfig{Services: discount(entities.DiscountTypeValue, "50")}}
		m.serviceCalls.EXPECT().GetByID(gomock.Any(), "os-1").Return(sc, nil)
		m.lineItems.EXPECT().ListByServiceCallID(gomock.Any(), "os-1").Return(sampleItems(), nil)

		got, err := uc.AutoFill(context.Background(), financeAccess, AutoFillInput{ServiceCallID: "os-1", PaymentMethods: methods, TargetID: "m2"})
		require.NoError(t, err)
		assert.Equal(t, "150.00", got.PaymentMethods[1].Amount.StringFixed(2))
		assert.True(t, got.Split.IsValid)
		assert.Equal(t, "0", methods[1].Amount.String())
	})

	t.Run("uses draft discounts", func(t *testing.T) {
		uc, m := newFinancialUseCase(t)
		m.serviceCalls.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceCall{ID: "os-1"}, nil)
		m.lineItems.EXPECT().ListByServiceCallID(gomock.Any(), "os-1").Return(sampleItems(), nil)
		draft := entities.DiscountConfig{Total: discount(entities.DiscountTypePercent, "50")}

		got, err := uc.AutoFill(context.Background(), financeAccess, AutoFillInput{ServiceCallID: "os-1", Discounts: &draft, PaymentMethods: methods, TargetID: "m2"})
		require.NoError(t, err)
		assert.Equal(t, "50.00", got.PaymentMethods[1].Amount.StringFixed(2))
		assert.Equal(t, "150.00", got.Totals.GrandTotal.StringFixed(2))
	})

	t.Run("unknown target", func(t *testing.T) {
		uc, m := newFinancialUseCase(t)
		m.serviceCalls.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceCall{ID: "os-1"}, nil)
		m.lineItems.EXPECT().ListByServiceCallID(gomock.Any(), "os-1").Return(sampleItems(), nil)

		_, err := uc.AutoFill(context.Background(), financeAccess, AutoFillInput{ServiceCallID: "os-1", PaymentMethods: methods, TargetID: "m9"})
		assert.ErrorIs(t, err, finance.ErrPaymentMethodNotFound)
	})
}
