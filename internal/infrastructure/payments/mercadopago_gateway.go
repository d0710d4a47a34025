package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"os_financeiro/internal/config"
	"os_financeiro/internal/usecase/interfaces"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	now      func() time.Time
}

func NewMercadoPagoGateway(cfg config.MercadoPagoConfig) (*MercadoPagoGateway, error) {
	if cfg.Mock {
		zap.S().Infow("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, now: time.Now}, nil
	}

	if cfg.AccessToken == "" {
		zap.S().Errorw("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := mpconfig.New(cfg.AccessToken)
	if err != nil {
		zap.S().Errorw("[payment][gateway] failed creating sdk config", "err", err)
		return nil, err
	}
	zap.S().Infow("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(sdkCfg), now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockPayment(requestPayload)
	}

	if g == nil || g.client == nil {
		zap.S().Errorw("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	zap.S().Infow("[payment][gateway] create start", "payload_len", len(requestPayload))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		zap.S().Warnw("[payment][gateway] payload unmarshal failed", "err", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		zap.S().Errorw("[payment][gateway] sdk create failed", "err", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		zap.S().Errorw("[payment][gateway] response marshal failed", "err", err)
		return "", "", nil, err
	}
	zap.S().Infow("[payment][gateway] create success", "provider_payment_id", resp.ID, "provider_status", resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

// mockPayment echoes the request back as an approved payment.
func (g *MercadoPagoGateway) mockPayment(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	zap.S().Infow("[payment][gateway] mock create start", "payload_len", len(requestPayload))

	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	stamp := now.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = interfaces.PaymentStatusApproved
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = stamp
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = stamp
	}

	b, err := json.Marshal(resp)
	if err != nil {
		zap.S().Errorw("[payment][gateway] mock response marshal failed", "err", err)
		return "", "", nil, err
	}

	zap.S().Infow("[payment][gateway] mock create success", "provider_payment_id", id, "provider_status", interfaces.PaymentStatusApproved)
	return id, interfaces.PaymentStatusApproved, b, nil
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)
