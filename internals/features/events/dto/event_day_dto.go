package dto

import (
	"time"

	"github.com/google/uuid"

	evModel "ptaweb_backend/internals/features/events/model"
)

// ===================== EVENT DAYS =====================

// CreateEventDayRequest adds one day to a multi-day event. Day number 0 asks
// the server to append after the current highest day.
type CreateEventDayRequest struct {
	EventDayNumber int       `json:"event_day_number" validate:"omitempty,min=0"`
	EventDayDate   time.Time `json:"event_day_date" validate:"required"`

	EventDayTitle       string `json:"event_day_title" validate:"omitempty,max=200"`
	EventDayDescription string `json:"event_day_description" validate:"omitempty"`
	EventDayLocation    string `json:"event_day_location" validate:"omitempty,max=300"`

	EventDayStartTime *time.Time `json:"event_day_start_time" validate:"omitempty"`
	EventDayEndTime   *time.Time `json:"event_day_end_time" validate:"omitempty"`

	EventDaySpecialInstructions string `json:"event_day_special_instructions" validate:"omitempty"`

	EventDayMaxAttendees       *int `json:"event_day_max_attendees" validate:"omitempty,min=0"`
	EventDayEstimatedAttendees *int `json:"event_day_estimated_attendees" validate:"omitempty,min=0"`

	EventDayWeatherBackupPlan string `json:"event_day_weather_backup_plan" validate:"omitempty"`
}

func (r *CreateEventDayRequest) ToModel(eventID uuid.UUID) *evModel.EventDayModel {
	return &evModel.EventDayModel{
		EventDayEventID: eventID,
		EventDayNumber:  r.EventDayNumber,
		EventDayDate:    r.EventDayDate,

		EventDayTitle:       r.EventDayTitle,
		EventDayDescription: r.EventDayDescription,
		EventDayLocation:    r.EventDayLocation,

		EventDayStartTime: r.EventDayStartTime,
		EventDayEndTime:   r.EventDayEndTime,

		EventDayIsActive:            true,
		EventDaySpecialInstructions: r.EventDaySpecialInstructions,

		EventDayMaxAttendees:       r.EventDayMaxAttendees,
		EventDayEstimatedAttendees: r.EventDayEstimatedAttendees,

		EventDayWeatherBackupPlan: r.EventDayWeatherBackupPlan,
	}
}

// CopyEventDayRequest clones one day onto another event. The date defaults
// to one year after the source day; the day number defaults to appending
// after the target's highest.
type CopyEventDayRequest struct {
	TargetEventID uuid.UUID  `json:"target_event_id" validate:"required"`
	NewDate       *time.Time `json:"new_date" validate:"omitempty"`
	NewDayNumber  *int       `json:"new_day_number" validate:"omitempty,min=1"`
}

type UpdateEventDayRequest struct {
	EventDayNumber *int       `json:"event_day_number" validate:"omitempty,min=1"`
	EventDayDate   *time.Time `json:"event_day_date" validate:"omitempty"`

	EventDayTitle       *string `json:"event_day_title" validate:"omitempty,max=200"`
	EventDayDescription *string `json:"event_day_description" validate:"omitempty"`
	EventDayLocation    *string `json:"event_day_location" validate:"omitempty,max=300"`

	EventDayStartTime *time.Time `json:"event_day_start_time" validate:"omitempty"`
	EventDayEndTime   *time.Time `json:"event_day_end_time" validate:"omitempty"`

	EventDayIsActive            *bool   `json:"event_day_is_active" validate:"omitempty"`
	EventDaySpecialInstructions *string `json:"event_day_special_instructions" validate:"omitempty"`

	EventDayMaxAttendees       *int `json:"event_day_max_attendees" validate:"omitempty,min=0"`
	EventDayEstimatedAttendees *int `json:"event_day_estimated_attendees" validate:"omitempty,min=0"`

	EventDayWeatherBackupPlan *string `json:"event_day_weather_backup_plan" validate:"omitempty"`
}

func (r *UpdateEventDayRequest) ApplyToModel(m *evModel.EventDayModel) {
	if r.EventDayNumber != nil {
		m.EventDayNumber = *r.EventDayNumber
	}
	if r.EventDayDate != nil {
		m.EventDayDate = *r.EventDayDate
	}
	if r.EventDayTitle != nil {
		m.EventDayTitle = *r.EventDayTitle
	}
	if r.EventDayDescription != nil {
		m.EventDayDescription = *r.EventDayDescription
	}
	if r.EventDayLocation != nil {
		m.EventDayLocation = *r.EventDayLocation
	}
	if r.EventDayStartTime != nil {
		m.EventDayStartTime = r.EventDayStartTime
	}
	if r.EventDayEndTime != nil {
		m.EventDayEndTime = r.EventDayEndTime
	}
	if r.EventDayIsActive != nil {
		m.EventDayIsActive = *r.EventDayIsActive
	}
	if r.EventDaySpecialInstructions != nil {
		m.EventDaySpecialInstructions = *r.EventDaySpecialInstructions
	}
	if r.EventDayMaxAttendees != nil {
		m.EventDayMaxAttendees = r.EventDayMaxAttendees
	}
	if r.EventDayEstimatedAttendees != nil {
		m.EventDayEstimatedAttendees = r.EventDayEstimatedAttendees
	}
	if r.EventDayWeatherBackupPlan != nil {
		m.EventDayWeatherBackupPlan = *r.EventDayWeatherBackupPlan
	}
}
