package dto

import (
	"time"

	ierr "github.com/anishchandragiri369/studio-sub000/internal/errors"
	"github.com/anishchandragiri369/studio-sub000/internal/types"
)

// MaxPreviewDeliveries caps how many occurrences a single preview request
// may ask for.
const MaxPreviewDeliveries = 100

type NextDeliveryRequest struct {
	ReferenceDate time.Time               `json:"reference_date" binding:"required"`
	Frequency     types.DeliveryFrequency `json:"frequency" binding:"required"`
}

func (r *NextDeliveryRequest) Validate() error {
	return r.Frequency.Validate()
}

type NextDeliveryResponse struct {
	DeliveryDate time.Time               `json:"delivery_date"`
	Frequency    types.DeliveryFrequency `json:"frequency"`
}

// SchedulePreviewRequest asks for upcoming deliveries either as a fixed
// count or bounded by an end date. Exactly one of Count and EndDate must
// be provided.
type SchedulePreviewRequest struct {
	StartDate time.Time               `json:"start_date" binding:"required"`
	Frequency types.DeliveryFrequency `json:"frequency" binding:"required"`
	Count     int                     `json:"count,omitempty"`
	EndDate   *time.Time              `json:"end_date,omitempty"`
}

func (r *SchedulePreviewRequest) Validate() error {
	if err := r.Frequency.Validate(); err != nil {
		return err
	}

	hasCount := r.Count > 0
	hasEndDate := r.EndDate != nil
	if hasCount == hasEndDate {
		return ierr.NewError("invalid schedule preview request").
			WithHint("Provide either a delivery count or an end date, not both").
			Mark(ierr.ErrValidation)
	}

	if r.Count > MaxPreviewDeliveries {
		return ierr.NewError("invalid schedule preview request").
			WithHintf("A preview may include at most %d deliveries", MaxPreviewDeliveries).
			WithReportableDetails(map[string]any{
				"count": r.Count,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

type SchedulePreviewResponse struct {
	Frequency  types.DeliveryFrequency `json:"frequency"`
	Deliveries []time.Time             `json:"deliveries"`
}
