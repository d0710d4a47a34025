package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	request "os_financeiro/internal/adapter/http/dto/request"
	response "os_financeiro/internal/adapter/http/dto/response"
	"os_financeiro/internal/domain/entities"
	"os_financeiro/internal/usecase"
	"os_financeiro/internal/usecase/interfaces"
	"os_financeiro/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InstallmentHandler handles the receivable installments of a service call.

type InstallmentHandler struct {
	usecase usecase.IInstallmentUseCase
}

func NewInstallmentHandler(uc usecase.IInstallmentUseCase) *InstallmentHandler {
	return &InstallmentHandler{usecase: uc}
}

// ListInstallments godoc
// @Summary      List installments of a service call
// @Tags         installments
// @Produce      json
// @Security     Bearer
// @Param        service_call_id  path  string  true  "Service call ID"
// @Success      200  {object}  response.InstallmentListResponse
// @Router       /service-calls/{service_call_id}/installments [get]
func (h *InstallmentHandler) ListInstallments(c *gin.Context) {
	serviceCallID := c.Param(ParamServiceCallID)

	txs, err := h.usecase.ListByServiceCall(c.Request.Context(), serviceCallID)
	if err != nil {
		writeError(c, mapInstallmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInstallmentList(txs))
}

// PreviewInstallments godoc
// @Summary      Preview an installment schedule without saving it
// @Tags         installments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        service_call_id  path  string                               true  "Service call ID"
// @Param        body             body  request.GenerateInstallmentsRequest  true  "Schedule"
// @Success      200  {object}  response.InstallmentPreviewResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /service-calls/{service_call_id}/installments/preview [post]
func (h *InstallmentHandler) PreviewInstallments(c *gin.Context) {
	in, ok := bindSchedule(c)
	if !ok {
		return
	}

	schedule, err := h.usecase.Preview(in)
	if err != nil {
		writeError(c, mapInstallmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSchedule(schedule))
}

// GenerateInstallments godoc
// @Summary      Generate the installments of a service call
// @Description  All installments are written or none. Fails with 409 when the service call already has installments.
// @Tags         installments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        service_call_id  path  string                               true  "Service call ID"
// @Param        body             body  request.GenerateInstallmentsRequest  true  "Schedule"
// @Success      201  {object}  response.InstallmentListResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /service-calls/{service_call_id}/installments [post]
func (h *InstallmentHandler) GenerateInstallments(c *gin.Context) {
	in, ok := bindSchedule(c)
	if !ok {
		return
	}

	txs, err := h.usecase.Generate(c.Request.Context(), in)
	if err != nil {
		zap.S().Infow("[installments][handler] generate failed", "service_call_id", in.ServiceCallID, "err", err)
		writeError(c, mapInstallmentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromInstallmentList(txs))
}

// ClearInstallments godoc
// @Summary      Delete every installment of a service call
// @Tags         installments
// @Produce      json
// @Security     Bearer
// @Param        service_call_id  path  string  true  "Service call ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /service-calls/{service_call_id}/installments [delete]
func (h *InstallmentHandler) ClearInstallments(c *gin.Context) {
	serviceCallID := c.Param(ParamServiceCallID)

	n, err := h.usecase.Clear(c.Request.Context(), serviceCallID)
	if err != nil {
		writeError(c, mapInstallmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: fmt.Sprintf("%d parcela(s) removida(s)", n), Count: n})
}

// UpdateInstallment godoc
// @Summary      Edit due date or amount of an open installment
// @Tags         installments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        transaction_id  path  string                            true  "Installment ID"
// @Param        body            body  request.UpdateInstallmentRequest  true  "Fields to change"
// @Success      200  {object}  response.InstallmentResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /installments/{transaction_id} [patch]
func (h *InstallmentHandler) UpdateInstallment(c *gin.Context) {
	id := c.Param(ParamTransactionID)

	var payload request.UpdateInstallmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidPayload(err))
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		writeError(c, mapInstallmentError(err))
		return
	}

	tx, err := h.usecase.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, mapInstallmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInstallment(tx))
}

// DeleteInstallment godoc
// @Summary      Delete an open installment
// @Tags         installments
// @Produce      json
// @Security     Bearer
// @Param        transaction_id  path  string  true  "Installment ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /installments/{transaction_id} [delete]
func (h *InstallmentHandler) DeleteInstallment(c *gin.Context) {
	id := c.Param(ParamTransactionID)

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		writeError(c, mapInstallmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Parcela removida"})
}

// PayInstallment godoc
// @Summary      Mark an open installment as paid
// @Tags         installments
// @Produce      json
// @Security     Bearer
// @Param        transaction_id  path  string  true  "Installment ID"
// @Success      200  {object}  response.InstallmentResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /installments/{transaction_id}/pay [post]
func (h *InstallmentHandler) PayInstallment(c *gin.Context) {
	h.transition(c, h.usecase.MarkPaid)
}

// CancelInstallment godoc
// @Summary      Cancel an open installment
// @Tags         installments
// @Produce      json
// @Security     Bearer
// @Param        transaction_id  path  string  true  "Installment ID"
// @Success      200  {object}  response.InstallmentResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /installments/{transaction_id}/cancel [post]
func (h *InstallmentHandler) CancelInstallment(c *gin.Context) {
	h.transition(c, h.usecase.Cancel)
}

func (h *InstallmentHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, id string) (entities.FinancialTransaction, error),
) {
	id := c.Param(ParamTransactionID)

	tx, err := apply(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapInstallmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInstallment(tx))
}

// ChargeInstallment godoc
// @Summary      Charge an open installment through Mercado Pago
// @Description  The body is a Mercado Pago payment request, optionally wrapped in mp_payload. The amount always comes from the installment. Approved payments mark the installment as paid; other statuses return 202 and leave it open.
// @Tags         installments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        transaction_id  path  string  true  "Installment ID"
// @Success      200  {object}  response.ChargeResponse
// @Success      202  {object}  response.ChargeResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /installments/{transaction_id}/charge [post]
func (h *InstallmentHandler) ChargeInstallment(c *gin.Context) {
	id := c.Param(ParamTransactionID)

	payload, err := readMPPayload(c)
	if err != nil {
		writeError(c, invalidPayload(err))
		return
	}

	result, err := h.usecase.Charge(c.Request.Context(), id, payload)
	if err != nil {
		zap.S().Infow("[installments][handler] charge failed", "transaction_id", id, "err", err)
		writeError(c, mapInstallmentError(err))
		return
	}

	status := http.StatusOK
	if !result.Paid {
		status = http.StatusAccepted
	}
	c.JSON(status, response.FromCharge(result))
}

func bindSchedule(c *gin.Context) (usecase.GenerateInstallmentsInput, bool) {
	var payload request.GenerateInstallmentsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidPayload(err))
		return usecase.GenerateInstallmentsInput{}, false
	}
	in, err := payload.ToInput(c.Param(ParamServiceCallID))
	if err != nil {
		writeError(c, mapInstallmentError(err))
		return usecase.GenerateInstallmentsInput{}, false
	}
	return in, true
}

func mapInstallmentError(err error) *pkg.AppError {
	if appErr, ok := mapScheduleError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceCallID):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_CALL_ID", "Invalid service call id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransactionID):
		return pkg.NewDomainErrorSimple("INVALID_INSTALLMENT_ID", "Invalid installment id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInstallmentTotal):
		return validationError("INVALID_INSTALLMENT_TOTAL", "Total must be greater than zero", err)
	case errors.Is(err, usecase.ErrTooManyInstallments):
		return validationError("TOO_MANY_INSTALLMENTS", fmt.Sprintf("At most %d installments per service call", usecase.MaxInstallments), err)
	case errors.Is(err, usecase.ErrEmptyTransactionPatch):
		return validationError("NOTHING_TO_UPDATE", "Provide due_date or amount", err)
	case errors.Is(err, usecase.ErrInvalidTransactionAmount):
		return validationError("INVALID_INSTALLMENT_AMOUNT", "Amount must be greater than zero", err)
	case errors.Is(err, usecase.ErrInvalidChargePayload):
		return validationError("INVALID_CHARGE_PAYLOAD", "Invalid payment request", err)
	case errors.Is(err, usecase.ErrServiceCallNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_CALL_NOT_FOUND", "Service call not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("INSTALLMENT_NOT_FOUND", "Installment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInstallmentsAlreadyExist):
		return pkg.NewDomainErrorSimple("INSTALLMENTS_ALREADY_EXIST", "Installments already generated for this service call", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransactionNotOpen):
		return pkg.NewDomainErrorSimple("INSTALLMENT_NOT_OPEN", "Only open installments can be changed", http.StatusConflict)
	case errors.Is(err, interfaces.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Installments changed concurrently, reload and try again", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider failed", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrClearInstallmentsFailed):
		return pkg.NewDomainError("CLEAR_INSTALLMENTS_FAILED", "Could not remove installments, nothing was changed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
	}
}
