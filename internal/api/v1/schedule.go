package v1

import (
	"net/http"

	"github.com/anishchandragiri369/studio-sub000/internal/api/dto"
	ierr "github.com/anishchandragiri369/studio-sub000/internal/errors"
	"github.com/anishchandragiri369/studio-sub000/internal/logger"
	"github.com/anishchandragiri369/studio-sub000/internal/service"
	"github.com/gin-gonic/gin"
)

// ScheduleHandler handles API requests for delivery schedules
type ScheduleHandler struct {
	service service.ScheduleService
	log     *logger.Logger
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(service service.ScheduleService, log *logger.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service: service,
		log:     log,
	}
}

// @Summary Compute the next delivery date
// @Description Compute the next valid delivery date after a reference date
// @Tags Schedules
// @Accept json
// @Produce json
// @Param request body dto.NextDeliveryRequest true "Next delivery request"
// @Success 200 {object} dto.NextDeliveryResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /schedules/next [post]
func (h *ScheduleHandler) NextDelivery(c *gin.Context) {
	var req dto.NextDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request body").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.NextDelivery(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Preview upcoming deliveries
// @Description Generate the upcoming delivery dates for a start date, by count or until an end date
// @Tags Schedules
// @Accept json
// @Produce json
// @Param request body dto.SchedulePreviewRequest true "Schedule preview request"
// @Success 200 {object} dto.SchedulePreviewResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /schedules/preview [post]
func (h *ScheduleHandler) Preview(c *gin.Context) {
	var req dto.SchedulePreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request body").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.Preview(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
