package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	request "os_financeiro/internal/adapter/http/dto/request"
	"os_financeiro/internal/domain/finance"
	"os_financeiro/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ParamServiceCallID = "service_call_id"
	ParamItemID        = "item_id"
	ParamTransactionID = "transaction_id"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errInternal       = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidPayload(err error) *pkg.AppError {
	return errInvalidPayload.WithDetails(request.ValidationDetails(err))
}

func validationError(code, message string, err error) *pkg.AppError {
	return pkg.NewDomainError(code, message, err, http.StatusBadRequest)
}

// mapScheduleError covers the date and day offset errors shared by every
// endpoint that builds an installment plan.
func mapScheduleError(err error) (*pkg.AppError, bool) {
	switch {
	case errors.Is(err, finance.ErrInvalidDate):
		return validationError("INVALID_DATE", "Invalid date, expected YYYY-MM-DD", err), true
	case errors.Is(err, finance.ErrEmptyDayOffsets), errors.Is(err, request.ErrInstallmentPlanRequired):
		return validationError("INSTALLMENT_DAYS_REQUIRED", "At least one installment is required", err), true
	case errors.Is(err, finance.ErrNegativeDayOffset):
		return validationError("INVALID_INSTALLMENT_DAYS", "Installment day offsets cannot be negative", err), true
	case errors.Is(err, finance.ErrUnknownInstallmentPlan):
		return validationError("UNKNOWN_INSTALLMENT_PRESET", "Unknown installment preset", err), true
	}
	return nil, false
}

// readMPPayload accepts either the raw Mercado Pago body or one wrapped in
// {"mp_payload": {...}}. An empty body becomes {}.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
