package entities

import (
	"encoding/json"
	"time"
)

// ServiceCall is the parent work order (OS). Only the fields the financial module
// reads or writes are modeled here; the rest of the record belongs to other modules.
//
// Storage model (DynamoDB):
//   - PK: id
//
// InstallmentsGroupID is set while a generated installment batch exists and acts as
// the generation guard: a new batch can only be written when it is empty.
type ServiceCall struct {
	ID                  string          `json:"id"`
	ClientID            string          `json:"client_id"`
	Discounts           DiscountConfig  `json:"discounts"`
	PaymentConfigRaw    json.RawMessage `json:"payment_config,omitempty"`
	InstallmentsGroupID string          `json:"installments_group_id,omitempty"`
	UpdatedAt           time.Time       `json:"updated_at"`
}
