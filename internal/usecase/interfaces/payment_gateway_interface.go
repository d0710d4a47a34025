package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// It is used to charge an open installment; the provider response is only logged,
// the installment row is the source of truth.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}

// PaymentStatusApproved is the provider status of a settled payment.
const PaymentStatusApproved = "approved"
