package dto

import (
	"time"

	"github.com/google/uuid"
)

// CopyEventRequest clones an event into another school year. When
// NewStartDate is omitted the copy lands one year after the source.
type CopyEventRequest struct {
	TargetSchoolYearID uuid.UUID  `json:"target_school_year_id" validate:"required"`
	NewTitle           *string    `json:"new_title" validate:"omitempty,min=3,max=200"`
	NewStartDate       *time.Time `json:"new_start_date" validate:"omitempty"`
	NewCoordinatorID   *uuid.UUID `json:"new_coordinator_id" validate:"omitempty"`
	CopyEventDays      bool       `json:"copy_event_days"`
}
