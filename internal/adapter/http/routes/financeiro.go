package routes

import (
	"os_financeiro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceCalls       = "/service-calls/:" + handlers.ParamServiceCallID
	PathInstallments       = "/installments/:" + handlers.ParamTransactionID
	PathInstallmentPresets = "/installment-presets"
)

type financeiroHandlers struct {
	financial    *handlers.FinancialHandler
	lineItems    *handlers.LineItemHandler
	installments *handlers.InstallmentHandler
	presets      *handlers.PresetHandler
}

// addFinanceiroRoutes registers every financial route behind the access gate.
func addFinanceiroRoutes(rg *gin.RouterGroup, gate gin.HandlerFunc, h financeiroHandlers) {
	presets := rg.Group(PathInstallmentPresets, gate)
	{
		presets.GET("", h.presets.ListPresets)
		presets.POST("/parse", h.presets.ParseOffsets)
	}

	serviceCalls := rg.Group(PathServiceCalls, gate)
	{
		serviceCalls.GET("/financeiro", h.financial.GetSummary)
		serviceCalls.PUT("/financeiro", h.financial.Save)
		serviceCalls.POST("/financeiro/autofill", h.financial.AutoFill)

		serviceCalls.GET("/items", h.lineItems.ListItems)
		serviceCalls.POST("/items", h.lineItems.CreateItem)
		serviceCalls.DELETE("/items/:"+handlers.ParamItemID, h.lineItems.DeleteItem)

		serviceCalls.GET("/installments", h.installments.ListInstallments)
		serviceCalls.POST("/installments", h.installments.GenerateInstallments)
		serviceCalls.DELETE("/installments", h.installments.ClearInstallments)
		serviceCalls.POST("/installments/preview", h.installments.PreviewInstallments)
	}

	installments := rg.Group(PathInstallments, gate)
	{
		installments.PATCH("", h.installments.UpdateInstallment)
		installments.DELETE("", h.installments.DeleteInstallment)
		installments.POST("/pay", h.installments.PayInstallment)
		installments.POST("/cancel", h.installments.CancelInstallment)
		installments.POST("/charge", h.installments.ChargeInstallment)
	}
}
