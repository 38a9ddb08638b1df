package v1

import (
	"net/http"

	"github.com/anishchandragiri369/studio-sub000/internal/api/dto"
	ierr "github.com/anishchandragiri369/studio-sub000/internal/errors"
	"github.com/anishchandragiri369/studio-sub000/internal/logger"
	"github.com/anishchandragiri369/studio-sub000/internal/service"
	"github.com/anishchandragiri369/studio-sub000/internal/types"
	"github.com/gin-gonic/gin"
)

// PricingHandler handles API requests for duration pricing
type PricingHandler struct {
	service service.PricingService
	log     *logger.Logger
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(service service.PricingService, log *logger.Logger) *PricingHandler {
	return &PricingHandler{
		service: service,
		log:     log,
	}
}

// @Summary Calculate duration pricing
// @Description Calculate the itemized price breakdown for a base price and duration
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.CalculatePricingRequest true "Pricing request"
// @Success 200 {object} dto.PricingResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /pricing/calculate [post]
func (h *PricingHandler) Calculate(c *gin.Context) {
	var req dto.CalculatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request body").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.Calculate(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List duration options
// @Description List the published duration options for a delivery frequency
// @Tags Pricing
// @Produce json
// @Param frequency query string true "Delivery frequency" Enums(weekly, monthly)
// @Success 200 {object} dto.ListDurationOptionsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /pricing/options [get]
func (h *PricingHandler) ListOptions(c *gin.Context) {
	frequency := types.DeliveryFrequency(c.Query("frequency"))

	resp, err := h.service.ListOptions(c.Request.Context(), frequency)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
