package v1

import (
	"net/http"

	"github.com/docsense/docsense/internal/api/dto"
	"github.com/docsense/docsense/internal/config"
	ierr "github.com/docsense/docsense/internal/errors"
	"github.com/docsense/docsense/internal/logger"
	"github.com/docsense/docsense/internal/service"
	"github.com/gin-gonic/gin"
)

type CalculatorHandler struct {
	service service.CalculatorService
	log     *logger.Logger
}

func NewCalculatorHandler(service service.CalculatorService, log *logger.Logger) *CalculatorHandler {
	return &CalculatorHandler{service: service, log: log}
}

// @Summary Compute the savings business case
// @Description Compute time and cost savings, recommended tier, ROI and payback period for a business size
// @Tags Calculator
// @Accept json
// @Produce json
// @Param input body dto.CalculateSavingsRequest true "Business-size inputs"
// @Success 200 {object} dto.CalculateSavingsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /calculator/savings [post]
func (h *CalculatorHandler) CalculateSavings(c *gin.Context) {
	var req dto.CalculateSavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("failed to bind calculator request", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	result, err := h.service.Compute(c.Request.Context(), req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}

	locale := config.GetLocaleOrDefault(req.Locale)
	c.JSON(http.StatusOK, dto.NewCalculateSavingsResponse(result, locale, req.IncludeDisplay))
}
