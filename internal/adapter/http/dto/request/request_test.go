package request

import (
	"errors"
	"testing"
	"time"

	"os_financeiro/internal/domain/entities"
	"os_financeiro/internal/domain/finance"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bind(t *testing.T, body string, obj any) error {
	t.Helper()
	RegisterValidators()
	return binding.JSON.BindBody([]byte(body), obj)
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestCreateLineItemRequest_Binding(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "service with price", body: `{"kind":"servico","description":"Troca de oleo","qty":1,"unit_price":"80.00"}`},
		{name: "product without price", body: `{"kind":"produto","product_id":"p1","qty":"2.5"}`},
		{name: "unknown kind", body: `{"kind":"outro","qty":1}`, wantErr: "kind must satisfy oneof"},
		{name: "zero qty", body: `{"kind":"produto","product_id":"p1","qty":0}`, wantErr: "qty must satisfy gt=0"},
		{name: "negative price", body: `{"kind":"servico","description":"x","qty":1,"unit_price":-1}`, wantErr: "unit_price must satisfy gte=0"},
		{name: "negative discount", body: `{"kind":"servico","description":"x","qty":1,"unit_price":1,"discount_value":-0.01}`, wantErr: "discount_value must satisfy gte=0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateLineItemRequest
			err := bind(t, tt.body, &req)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, ValidationDetails(err), tt.wantErr)
		})
	}
}

func TestCreateLineItemRequest_ToInput(t *testing.T) {
	var req CreateLineItemRequest
	require.NoError(t, bind(t, `{"kind":" produto ","product_id":" p1 ","qty":2,"discount_value":"1.50"}`, &req))

	in := req.ToInput("os-1")
	assert.Equal(t, "os-1", in.ServiceCallID)
	assert.Equal(t, entities.LineItemKindProduto, in.Kind)
	assert.Equal(t, "p1", in.ProductID)
	assert.Nil(t, in.UnitPrice)
	assert.Equal(t, "1.5", in.DiscountValue.String())
}

func TestSaveFinancialsRequest_ToInput(t *testing.T) {
	body := `{
		"discounts": {"parts": {"type": "percent", "value": 10}, "total": {"type": "value", "value": "25.50"}},
		"start_date": "2024-01-31",
		"installment_days": [0, 30, 30],
		"payment_methods": [{"id": "m1", "method": "pix", "amount": "100.00"}, {"method": "cartao_credito", "amount": 50}]
	}`
	var req SaveFinancialsRequest
	require.NoError(t, bind(t, body, &req))

	in, err := req.ToInput("os-1")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), in.StartDate)
	assert.Equal(t, []int{0, 30, 30}, in.InstallmentDays)
	assert.Equal(t, entities.DiscountTypePercent, in.Discounts.Parts.Type)
	assert.Equal(t, entities.DiscountType(""), in.Discounts.Services.Type)
	assert.Equal(t, "25.5", in.Discounts.Total.Value.String())
	require.Len(t, in.PaymentMethods, 2)
	assert.Equal(t, "m1", in.PaymentMethods[0].ID)
	assert.Empty(t, in.PaymentMethods[1].ID)
}

func TestSaveFinancialsRequest_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad discount type", body: `{"discounts":{"parts":{"type":"fixed","value":1}}}`},
		{name: "negative discount", body: `{"discounts":{"total":{"type":"value","value":-5}}}`},
		{name: "bad date", body: `{"start_date":"31/01/2024"}`},
		{name: "negative offset", body: `{"installment_days":[30,-1]}`},
		{name: "method without name", body: `{"payment_methods":[{"amount":10}]}`},
		{name: "negative amount", body: `{"payment_methods":[{"method":"pix","amount":-10}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req SaveFinancialsRequest
			assert.Error(t, bind(t, tt.body, &req))
		})
	}
}

func TestSaveFinancialsRequest_EmptyStartDate(t *testing.T) {
	in, err := SaveFinancialsRequest{}.ToInput("os-1")
	require.NoError(t, err)
	assert.True(t, in.StartDate.IsZero())
}

func TestAutoFillRequest_ToInput(t *testing.T) {
	var req AutoFillRequest
	require.NoError(t, bind(t, `{"target_id":"m2","payment_methods":[{"id":"m1","method":"pix","amount":10},{"id":"m2","method":"boleto","amount":0}]}`, &req))
	in := req.ToInput("os-1")
	assert.Nil(t, in.Discounts)
	assert.Equal(t, "m2", in.TargetID)
	assert.Len(t, in.PaymentMethods, 2)

	req.Discounts = &DiscountConfigRequest{Total: DiscountCategoryRequest{Type: "percent"}}
	in = req.ToInput("os-1")
	require.NotNil(t, in.Discounts)
	assert.Equal(t, entities.DiscountTypePercent, in.Discounts.Total.Type)

	var missing AutoFillRequest
	assert.Error(t, bind(t, `{"payment_methods":[{"id":"m1","method":"pix","amount":10}]}`, &missing))
}

func TestGenerateInstallmentsRequest_DayOffsets(t *testing.T) {
	base := GenerateInstallmentsRequest{StartDate: "2024-01-01", Total: mustDecimal(t, "100")}

	withDays := base
	withDays.Days = []int{0, 30}
	withDays.Preset = "30/60/90"
	in, err := withDays.ToInput("os-1")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 30}, in.DayOffsets)

	withPreset := base
	withPreset.Preset = "30/60/90"
	in, err = withPreset.ToInput("os-1")
	require.NoError(t, err)
	assert.Equal(t, []int{30, 30, 30}, in.DayOffsets)

	withText := base
	withText.DaysText = "15+15"
	in, err = withText.ToInput("os-1")
	require.NoError(t, err)
	assert.Equal(t, []int{15, 15}, in.DayOffsets)

	garbage := base
	garbage.DaysText = "abc"
	_, err = garbage.ToInput("os-1")
	assert.True(t, errors.Is(err, finance.ErrEmptyDayOffsets))

	unknown := base
	unknown.Preset = "nope"
	_, err = unknown.ToInput("os-1")
	assert.True(t, errors.Is(err, finance.ErrUnknownInstallmentPlan))

	_, err = base.ToInput("os-1")
	assert.True(t, errors.Is(err, ErrInstallmentPlanRequired))
}

func TestGenerateInstallmentsRequest_Binding(t *testing.T) {
	var ok GenerateInstallmentsRequest
	require.NoError(t, bind(t, `{"start_date":"2024-01-01","days":[30],"total":"99.90"}`, &ok))

	var zero GenerateInstallmentsRequest
	assert.Error(t, bind(t, `{"start_date":"2024-01-01","days":[30],"total":0}`, &zero))

	var noDate GenerateInstallmentsRequest
	assert.Error(t, bind(t, `{"days":[30],"total":10}`, &noDate))
}

func TestUpdateInstallmentRequest_ToPatch(t *testing.T) {
	var req UpdateInstallmentRequest
	require.NoError(t, bind(t, `{"due_date":"2024-03-15"}`, &req))
	patch, err := req.ToPatch()
	require.NoError(t, err)
	require.NotNil(t, patch.DueDate)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *patch.DueDate)
	assert.Nil(t, patch.Amount)

	var empty UpdateInstallmentRequest
	require.NoError(t, bind(t, `{}`, &empty))
	patch, err = empty.ToPatch()
	require.NoError(t, err)
	assert.True(t, patch.IsEmpty())

	var negative UpdateInstallmentRequest
	assert.Error(t, bind(t, `{"amount":-1}`, &negative))
}
