package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"os_financeiro/internal/adapter/http/middleware"
	"os_financeiro/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		App:         config.AppConfig{Port: "0", GinMode: gin.TestMode},
		Auth:        config.AuthConfig{JWTSecret: "routes-secret"},
		MercadoPago: config.MercadoPagoConfig{Mock: true},
	}
}

func bearer(t *testing.T, claims middleware.AccessClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("routes-secret"))
	require.NoError(t, err)
	return "Bearer " + s
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	router, err := NewRouter(testConfig(), nil)
	require.NoError(t, err)
	return router
}

func TestNewRouter_RequiresJWTSecret(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.JWTSecret = ""

	router, err := NewRouter(cfg, nil)
	assert.Nil(t, router)
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestNewRouter_AccessGate(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		auth   string
		want   int
	}{
		{name: "ping is public", method: http.MethodGet, path: "/v1/ping", want: http.StatusOK},
		{name: "presets need a token", method: http.MethodGet, path: "/v1/installment-presets", want: http.StatusUnauthorized},
		{name: "technician is refused", method: http.MethodGet, path: "/v1/installment-presets", auth: bearer(t, middleware.AccessClaims{UserID: "t1", IsTechnician: true}), want: http.StatusForbidden},
		{name: "technician cannot reach a service call", method: http.MethodGet, path: "/v1/service-calls/os-1/financeiro", auth: bearer(t, middleware.AccessClaims{UserID: "t1", IsAdmin: true, IsTechnician: true}), want: http.StatusForbidden},
		{name: "technician cannot pay", method: http.MethodPost, path: "/v1/installments/tx-1/pay", auth: bearer(t, middleware.AccessClaims{UserID: "t1", IsTechnician: true}), want: http.StatusForbidden},
		{name: "admin lists presets", method: http.MethodGet, path: "/v1/installment-presets", auth: bearer(t, middleware.AccessClaims{UserID: "a1", IsAdmin: true}), want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestNewRouter_RegistersFinanceiroRoutes(t *testing.T) {
	router := newTestRouter(t)

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /v1/service-calls/:service_call_id/financeiro",
		"PUT /v1/service-calls/:service_call_id/financeiro",
		"POST /v1/service-calls/:service_call_id/financeiro/autofill",
		"GET /v1/service-calls/:service_call_id/items",
		"POST /v1/service-calls/:service_call_id/items",
		"DELETE /v1/service-calls/:service_call_id/items/:item_id",
		"GET /v1/service-calls/:service_call_id/installments",
		"POST /v1/service-calls/:service_call_id/installments",
		"DELETE /v1/service-calls/:service_call_id/installments",
		"POST /v1/service-calls/:service_call_id/installments/preview",
		"PATCH /v1/installments/:transaction_id",
		"DELETE /v1/installments/:transaction_id",
		"POST /v1/installments/:transaction_id/pay",
		"POST /v1/installments/:transaction_id/cancel",
		"POST /v1/installments/:transaction_id/charge",
		"POST /v1/installment-presets/parse",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}
