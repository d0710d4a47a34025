package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"os_financeiro/internal/adapter/http/handlers/mocks"
	"os_financeiro/internal/domain/entities"
	"os_financeiro/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestLineItemHandler_CreateItem(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)
		r := newTestRouter(financeAccess)
		r.POST("/v1/service-calls/:service_call_id/items", h.CreateItem)

		w := serve(r, http.MethodPost, "/v1/service-calls/os-1/items", `{"kind":"servico","qty":0}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "INVALID_REQUEST" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("product not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)
		r := newTestRouter(financeAccess)
		r.POST("/v1/service-calls/:service_call_id/items", h.CreateItem)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.LineItem{}, usecase.ErrProductNotFound)

		w := serve(r, http.MethodPost, "/v1/service-calls/os-1/items", `{"kind":"produto","product_id":"p9","qty":1}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("service without price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)
		r := newTestRouter(financeAccess)
		r.POST("/v1/service-calls/:service_call_id/items", h.CreateItem)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.LineItem{}, usecase.ErrUnitPriceRequired)

		w := serve(r, http.MethodPost, "/v1/service-calls/os-1/items", `{"kind":"servico","description":"Alinhamento","qty":1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "INVALID_ITEM_VALUES" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)
		r := newTestRouter(financeAccess)
		r.POST("/v1/service-calls/:service_call_id/items", h.CreateItem)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.CreateLineItemInput) (entities.LineItem, error) {
				if in.ServiceCallID != "os-1" || in.Kind != entities.LineItemKindServico {
					t.Fatalf("unexpected input: %+v", in)
				}
				if in.UnitPrice == nil || in.UnitPrice.String() != "80" {
					t.Fatalf("unexpected unit price: %v", in.UnitPrice)
				}
				return entities.LineItem{
					ID:            "it-1",
					ServiceCallID: "os-1",
					Kind:          in.Kind,
					Description:   in.Description,
					Qty:           in.Qty,
					UnitPrice:     *in.UnitPrice,
					Total:         decimal.RequireFromString("160"),
				}, nil
			})

		w := serve(r, http.MethodPost, "/v1/service-calls/os-1/items", `{"kind":"servico","description":"Mao de obra","qty":2,"unit_price":80}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["id"] != "it-1" || body["total"] != float64(160) {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestLineItemHandler_ListAndDelete(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)
		r := newTestRouter(financeAccess)
		r.GET("/v1/service-calls/:service_call_id/items", h.ListItems)

		uc.EXPECT().ListByServiceCall(gomock.Any(), "os-1").Return(nil, nil)

		w := serve(r, http.MethodGet, "/v1/service-calls/os-1/items", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 with empty array, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)
		r := newTestRouter(financeAccess)
		r.DELETE("/v1/service-calls/:service_call_id/items/:item_id", h.DeleteItem)

		uc.EXPECT().Delete(gomock.Any(), "os-1", "it-9").Return(usecase.ErrLineItemNotFound)

		w := serve(r, http.MethodDelete, "/v1/service-calls/os-1/items/it-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete internal error hides cause", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)
		r := newTestRouter(financeAccess)
		r.DELETE("/v1/service-calls/:service_call_id/items/:item_id", h.DeleteItem)

		uc.EXPECT().Delete(gomock.Any(), "os-1", "it-1").Return(errors.New("dynamo exploded"))

		w := serve(r, http.MethodDelete, "/v1/service-calls/os-1/items/it-1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if _, leaked := decodeBody(t, w)["details"]; leaked {
			t.Fatalf("internal cause leaked: %s", w.Body.String())
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)
		r := newTestRouter(financeAccess)
		r.DELETE("/v1/service-calls/:service_call_id/items/:item_id", h.DeleteItem)

		uc.EXPECT().Delete(gomock.Any(), "os-1", "it-1").Return(nil)

		w := serve(r, http.MethodDelete, "/v1/service-calls/os-1/items/it-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
