package handlers

import (
	"net/http"

	request "os_financeiro/internal/adapter/http/dto/request"
	response "os_financeiro/internal/adapter/http/dto/response"
	"os_financeiro/internal/domain/finance"

	"github.com/gin-gonic/gin"
)

// PresetHandler exposes the installment quick-select presets. It is stateless.
type PresetHandler struct{}

func NewPresetHandler() *PresetHandler {
	return &PresetHandler{}
}

// ListPresets godoc
// @Summary      Installment presets
// @Tags         installments
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  response.PresetResponse
// @Router       /installment-presets [get]
func (h *PresetHandler) ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPresets(finance.Presets()))
}

// ParseOffsets godoc
// @Summary      Parse free-text day offsets
// @Description  Accepts text such as "30+30+30" or "30, 30; 30". Tokens that are not positive integers are dropped.
// @Tags         installments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  request.ParseOffsetsRequest  true  "Text"
// @Success      200  {object}  response.ParseOffsetsResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /installment-presets/parse [post]
func (h *PresetHandler) ParseOffsets(c *gin.Context) {
	var payload request.ParseOffsetsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidPayload(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOffsets(finance.ParseDayOffsets(payload.Text)))
}
