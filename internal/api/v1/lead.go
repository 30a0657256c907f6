package v1

import (
	"net/http"

	"github.com/docsense/docsense/internal/api/dto"
	ierr "github.com/docsense/docsense/internal/errors"
	"github.com/docsense/docsense/internal/logger"
	"github.com/docsense/docsense/internal/service"
	"github.com/gin-gonic/gin"
)

type LeadHandler struct {
	service service.LeadService
	log     *logger.Logger
}

func NewLeadHandler(service service.LeadService, log *logger.Logger) *LeadHandler {
	return &LeadHandler{service: service, log: log}
}

// @Summary Submit a demo or contact request
// @Description Capture a demo/contact request from the site, optionally with the visitor's calculator inputs
// @Tags Leads
// @Accept json
// @Produce json
// @Param lead body dto.CreateLeadRequest true "Lead details"
// @Success 201 {object} dto.LeadResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req dto.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("failed to bind lead request", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateLead(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
