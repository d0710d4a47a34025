package handlers

import (
	"errors"
	"net/http"

	request "os_financeiro/internal/adapter/http/dto/request"
	response "os_financeiro/internal/adapter/http/dto/response"
	"os_financeiro/internal/adapter/http/middleware"
	"os_financeiro/internal/domain/finance"
	"os_financeiro/internal/usecase"
	"os_financeiro/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FinancialHandler serves the financial tab of a service call: summary, save and
// the auto-fill helper of the payment split.

type FinancialHandler struct {
	usecase usecase.IFinancialUseCase
}

func NewFinancialHandler(uc usecase.IFinancialUseCase) *FinancialHandler {
	return &FinancialHandler{usecase: uc}
}

// GetSummary godoc
// @Summary      Financial summary of a service call
// @Tags         financeiro
// @Produce      json
// @Security     Bearer
// @Param        service_call_id  path  string  true  "Service call ID"
// @Success      200  {object}  response.FinancialSummaryResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-calls/{service_call_id}/financeiro [get]
func (h *FinancialHandler) GetSummary(c *gin.Context) {
	serviceCallID := c.Param(ParamServiceCallID)

	summary, err := h.usecase.GetSummary(c.Request.Context(), middleware.CapabilitiesFrom(c), serviceCallID)
	if err != nil {
		zap.S().Infow("[financeiro][handler] summary failed", "service_call_id", serviceCallID, "err", err)
		writeError(c, mapFinancialError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialSummary(summary))
}

// Save godoc
// @Summary      Save discounts and payment configuration
// @Description  Discounts are clamped to their valid range. A payment split that does not match the grand total is saved and reported as a warning.
// @Tags         financeiro
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        service_call_id  path  string                         true  "Service call ID"
// @Param        body             body  request.SaveFinancialsRequest  true  "Financial data"
// @Success      200  {object}  response.FinancialSummaryResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-calls/{service_call_id}/financeiro [put]
func (h *FinancialHandler) Save(c *gin.Context) {
	serviceCallID := c.Param(ParamServiceCallID)

	var payload request.SaveFinancialsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidPayload(err))
		return
	}
	in, err := payload.ToInput(serviceCallID)
	if err != nil {
		writeError(c, mapFinancialError(err))
		return
	}

	summary, err := h.usecase.Save(c.Request.Context(), middleware.CapabilitiesFrom(c), in)
	if err != nil {
		zap.S().Infow("[financeiro][handler] save failed", "service_call_id", serviceCallID, "err", err)
		writeError(c, mapFinancialError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialSummary(summary))
}

// AutoFill godoc
// @Summary      Assign the remaining amount to one payment method
// @Tags         financeiro
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        service_call_id  path  string                   true  "Service call ID"
// @Param        body             body  request.AutoFillRequest  true  "Payment methods being edited"
// @Success      200  {object}  response.AutoFillResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /service-calls/{service_call_id}/financeiro/autofill [post]
func (h *FinancialHandler) AutoFill(c *gin.Context) {
	serviceCallID := c.Param(ParamServiceCallID)

	var payload request.AutoFillRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidPayload(err))
		return
	}

	result, err := h.usecase.AutoFill(c.Request.Context(), middleware.CapabilitiesFrom(c), payload.ToInput(serviceCallID))
	if err != nil {
		writeError(c, mapFinancialError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAutoFill(result))
}

func mapFinancialError(err error) *pkg.AppError {
	if appErr, ok := mapScheduleError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrFinancialAccessDenied):
		return pkg.NewDomainErrorSimple("FINANCIAL_ACCESS_DENIED", "Financial data is not available for this user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidServiceCallID):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_CALL_ID", "Invalid service call id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceCallNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_CALL_NOT_FOUND", "Service call not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrDuplicatePaymentMethodID):
		return validationError("INVALID_PAYMENT_METHOD", "Invalid payment method", err)
	case errors.Is(err, usecase.ErrInvalidDiscountConfigType):
		return validationError("INVALID_DISCOUNT", "Invalid discount", err)
	case errors.Is(err, usecase.ErrInvalidInstallmentDays):
		return validationError("INVALID_INSTALLMENT_DAYS", "Installment day offsets cannot be negative", err)
	case errors.Is(err, finance.ErrPaymentMethodNotFound):
		return validationError("PAYMENT_METHOD_NOT_FOUND", "Payment method not found", err)
	default:
		return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
	}
}
