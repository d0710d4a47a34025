package handlers

import (
	"errors"
	"net/http"

	request "os_financeiro/internal/adapter/http/dto/request"
	response "os_financeiro/internal/adapter/http/dto/response"
	"os_financeiro/internal/usecase"
	"os_financeiro/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LineItemHandler handles the produto/servico entries of a service call.

type LineItemHandler struct {
	usecase usecase.ILineItemUseCase
}

func NewLineItemHandler(uc usecase.ILineItemUseCase) *LineItemHandler {
	return &LineItemHandler{usecase: uc}
}

// ListItems godoc
// @Summary      List line items of a service call
// @Tags         items
// @Produce      json
// @Security     Bearer
// @Param        service_call_id  path  string  true  "Service call ID"
// @Success      200  {array}   response.LineItemResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-calls/{service_call_id}/items [get]
func (h *LineItemHandler) ListItems(c *gin.Context) {
	serviceCallID := c.Param(ParamServiceCallID)

	items, err := h.usecase.ListByServiceCall(c.Request.Context(), serviceCallID)
	if err != nil {
		writeError(c, mapLineItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLineItems(items))
}

// CreateItem godoc
// @Summary      Add a product or service to a service call
// @Description  For kind=produto the description and unit price default to the catalog values.
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        service_call_id  path  string                         true  "Service call ID"
// @Param        body             body  request.CreateLineItemRequest  true  "Line item"
// @Success      201  {object}  response.LineItemResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-calls/{service_call_id}/items [post]
func (h *LineItemHandler) CreateItem(c *gin.Context) {
	serviceCallID := c.Param(ParamServiceCallID)

	var payload request.CreateLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidPayload(err))
		return
	}

	item, err := h.usecase.Create(c.Request.Context(), payload.ToInput(serviceCallID))
	if err != nil {
		zap.S().Infow("[items][handler] create failed", "service_call_id", serviceCallID, "err", err)
		writeError(c, mapLineItemError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromLineItem(item))
}

// DeleteItem godoc
// @Summary      Remove a line item
// @Tags         items
// @Produce      json
// @Security     Bearer
// @Param        service_call_id  path  string  true  "Service call ID"
// @Param        item_id          path  string  true  "Line item ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-calls/{service_call_id}/items/{item_id} [delete]
func (h *LineItemHandler) DeleteItem(c *gin.Context) {
	serviceCallID := c.Param(ParamServiceCallID)
	itemID := c.Param(ParamItemID)

	if err := h.usecase.Delete(c.Request.Context(), serviceCallID, itemID); err != nil {
		writeError(c, mapLineItemError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Item removido"})
}

func mapLineItemError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceCallID):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_CALL_ID", "Invalid service call id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLineItemID):
		return pkg.NewDomainErrorSimple("INVALID_ITEM_ID", "Invalid item id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLineItemKind):
		return validationError("INVALID_ITEM_KIND", "Item kind must be produto or servico", err)
	case errors.Is(err, usecase.ErrProductRequired):
		return validationError("PRODUCT_REQUIRED", "Select a product", err)
	case errors.Is(err, usecase.ErrDescriptionRequired):
		return validationError("DESCRIPTION_REQUIRED", "Describe the service", err)
	case errors.Is(err, usecase.ErrUnitPriceRequired),
		errors.Is(err, usecase.ErrInvalidUnitPrice),
		errors.Is(err, usecase.ErrInvalidQty),
		errors.Is(err, usecase.ErrInvalidDiscountValue):
		return validationError("INVALID_ITEM_VALUES", "Invalid quantity, price or discount", err)
	case errors.Is(err, usecase.ErrServiceCallNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_CALL_NOT_FOUND", "Service call not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
	}
}
