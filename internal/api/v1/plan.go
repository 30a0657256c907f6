package v1

import (
	"net/http"

	"github.com/docsense/docsense/internal/config"
	ierr "github.com/docsense/docsense/internal/errors"
	"github.com/docsense/docsense/internal/logger"
	"github.com/docsense/docsense/internal/service"
	"github.com/docsense/docsense/internal/types"
	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	service service.PlanService
	log     *logger.Logger
}

func NewPlanHandler(service service.PlanService, log *logger.Logger) *PlanHandler {
	return &PlanHandler{service: service, log: log}
}

// @Summary List pricing plans
// @Description List the published pricing plans with copy localized for the requested language
// @Tags Plans
// @Produce json
// @Param locale query string false "Locale (de or en)"
// @Success 200 {object} dto.ListPlansResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	locale := config.GetLocaleOrDefault(c.Query("locale"))

	resp, err := h.service.ListPlans(c.Request.Context(), locale)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get a pricing plan by tier
// @Description Get one pricing plan with copy localized for the requested language
// @Tags Plans
// @Produce json
// @Param tier path string true "Tier (starter, professional, enterprise)"
// @Param locale query string false "Locale (de or en)"
// @Success 200 {object} dto.PlanResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /plans/{tier} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	tier := types.SubscriptionTier(c.Param("tier"))
	if tier == "" {
		c.Error(ierr.NewError("tier is required").
			WithHint("Tier is required").
			Mark(ierr.ErrValidation))
		return
	}

	locale := config.GetLocaleOrDefault(c.Query("locale"))

	resp, err := h.service.GetPlanByTier(c.Request.Context(), tier, locale)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
