package dto

import (
	"time"

	"github.com/google/uuid"

	evModel "ptaweb_backend/internals/features/events/model"
)

// ===================== REQUESTS =====================

type CreateEventRequest struct {
	EventTitle string    `json:"event_title" validate:"required,min=3,max=200"`
	EventDate  time.Time `json:"event_date" validate:"required"`

	EventDescription string `json:"event_description" validate:"omitempty"`
	EventLocation    string `json:"event_location" validate:"omitempty,max=300"`
	EventImageURL    string `json:"event_image_url" validate:"omitempty,url"`
	EventLink        string `json:"event_link" validate:"omitempty,url"`

	EventCoordinatorID *uuid.UUID `json:"event_coordinator_id" validate:"omitempty"`

	EventSetupStartTime *time.Time `json:"event_setup_start_time" validate:"omitempty"`
	EventStartTime      time.Time  `json:"event_start_time" validate:"omitempty"`
	EventEndTime        time.Time  `json:"event_end_time" validate:"omitempty"`
	EventCleanupEndTime *time.Time `json:"event_cleanup_end_time" validate:"omitempty"`

	EventMaxAttendees       *int `json:"event_max_attendees" validate:"omitempty,min=0"`
	EventEstimatedAttendees *int `json:"event_estimated_attendees" validate:"omitempty,min=0"`

	EventRequiresVolunteers bool `json:"event_requires_volunteers"`
	EventRequiresSetup      bool `json:"event_requires_setup"`
	EventRequiresCleanup    bool `json:"event_requires_cleanup"`

	EventNotes              string `json:"event_notes" validate:"omitempty"`
	EventPublicInstructions string `json:"event_public_instructions" validate:"omitempty"`
	EventWeatherBackupPlan  string `json:"event_weather_backup_plan" validate:"omitempty"`

	EventExcelImportID *string `json:"event_excel_import_id" validate:"omitempty,max=100"`

	EventSchoolYearID  uuid.UUID  `json:"event_school_year_id" validate:"required"`
	EventCategoryID    uuid.UUID  `json:"event_category_id" validate:"required"`
	EventSubcategoryID *uuid.UUID `json:"event_subcategory_id" validate:"omitempty"`
}

func (r *CreateEventRequest) ToModel() *evModel.EventModel {
	return &evModel.EventModel{
		EventTitle: r.EventTitle,
		EventDate:  r.EventDate,

		EventDescription: r.EventDescription,
		EventLocation:    r.EventLocation,
		EventImageURL:    r.EventImageURL,
		EventLink:        r.EventLink,

		EventCoordinatorID: r.EventCoordinatorID,
		EventStatus:        evModel.StatusPlanning,

		EventSetupStartTime: r.EventSetupStartTime,
		EventStartTime:      r.EventStartTime,
		EventEndTime:        r.EventEndTime,
		EventCleanupEndTime: r.EventCleanupEndTime,

		EventMaxAttendees:       r.EventMaxAttendees,
		EventEstimatedAttendees: r.EventEstimatedAttendees,

		EventRequiresVolunteers: r.EventRequiresVolunteers,
		EventRequiresSetup:      r.EventRequiresSetup,
		EventRequiresCleanup:    r.EventRequiresCleanup,

		EventNotes:              r.EventNotes,
		EventPublicInstructions: r.EventPublicInstructions,
		EventWeatherBackupPlan:  r.EventWeatherBackupPlan,

		EventExcelImportID: r.EventExcelImportID,

		EventSchoolYearID:  r.EventSchoolYearID,
		EventCategoryID:    r.EventCategoryID,
		EventSubcategoryID: r.EventSubcategoryID,
	}
}

// UpdateEventRequest is partial: nil means "leave as is". Status changes ride
// along and are validated against the transition rules in the controller.
type UpdateEventRequest struct {
	EventTitle *string    `json:"event_title" validate:"omitempty,min=3,max=200"`
	EventDate  *time.Time `json:"event_date" validate:"omitempty"`

	EventDescription *string `json:"event_description" validate:"omitempty"`
	EventLocation    *string `json:"event_location" validate:"omitempty,max=300"`
	EventImageURL    *string `json:"event_image_url" validate:"omitempty"`
	EventLink        *string `json:"event_link" validate:"omitempty"`

	EventCoordinatorID *uuid.UUID `json:"event_coordinator_id" validate:"omitempty"`

	EventStatus *evModel.EventStatus `json:"event_status" validate:"omitempty"`

	EventSetupStartTime *time.Time `json:"event_setup_start_time" validate:"omitempty"`
	EventStartTime      *time.Time `json:"event_start_time" validate:"omitempty"`
	EventEndTime        *time.Time `json:"event_end_time" validate:"omitempty"`
	EventCleanupEndTime *time.Time `json:"event_cleanup_end_time" validate:"omitempty"`

	EventMaxAttendees       *int `json:"event_max_attendees" validate:"omitempty,min=0"`
	EventEstimatedAttendees *int `json:"event_estimated_attendees" validate:"omitempty,min=0"`

	EventRequiresVolunteers *bool `json:"event_requires_volunteers" validate:"omitempty"`
	EventRequiresSetup      *bool `json:"event_requires_setup" validate:"omitempty"`
	EventRequiresCleanup    *bool `json:"event_requires_cleanup" validate:"omitempty"`

	EventNotes              *string `json:"event_notes" validate:"omitempty"`
	EventPublicInstructions *string `json:"event_public_instructions" validate:"omitempty"`
	EventWeatherBackupPlan  *string `json:"event_weather_backup_plan" validate:"omitempty"`

	EventExcelImportID *string `json:"event_excel_import_id" validate:"omitempty,max=100"`

	EventCategoryID    *uuid.UUID `json:"event_category_id" validate:"omitempty"`
	EventSubcategoryID *uuid.UUID `json:"event_subcategory_id" validate:"omitempty"`

	ChangeNotes string `json:"change_notes" validate:"omitempty"`
}

// ApplyToModel copies the provided fields onto the model. The slug is never
// touched here: it is fixed at creation.
func (r *UpdateEventRequest) ApplyToModel(m *evModel.EventModel) {
	if r.EventTitle != nil {
		m.EventTitle = *r.EventTitle
	}
	if r.EventDate != nil {
		m.EventDate = *r.EventDate
	}
	if r.EventDescription != nil {
		m.EventDescription = *r.EventDescription
	}
	if r.EventLocation != nil {
		m.EventLocation = *r.EventLocation
	}
	if r.EventImageURL != nil {
		m.EventImageURL = *r.EventImageURL
	}
	if r.EventLink != nil {
		m.EventLink = *r.EventLink
	}
	if r.EventCoordinatorID != nil {
		m.EventCoordinatorID = r.EventCoordinatorID
	}
	if r.EventStatus != nil {
		m.EventStatus = *r.EventStatus
	}
	if r.EventSetupStartTime != nil {
		m.EventSetupStartTime = r.EventSetupStartTime
	}
	if r.EventStartTime != nil {
		m.EventStartTime = *r.EventStartTime
	}
	if r.EventEndTime != nil {
		m.EventEndTime = *r.EventEndTime
	}
	if r.EventCleanupEndTime != nil {
		m.EventCleanupEndTime = r.EventCleanupEndTime
	}
	if r.EventMaxAttendees != nil {
		m.EventMaxAttendees = r.EventMaxAttendees
	}
	if r.EventEstimatedAttendees != nil {
		m.EventEstimatedAttendees = r.EventEstimatedAttendees
	}
	if r.EventRequiresVolunteers != nil {
		m.EventRequiresVolunteers = *r.EventRequiresVolunteers
	}
	if r.EventRequiresSetup != nil {
		m.EventRequiresSetup = *r.EventRequiresSetup
	}
	if r.EventRequiresCleanup != nil {
		m.EventRequiresCleanup = *r.EventRequiresCleanup
	}
	if r.EventNotes != nil {
		m.EventNotes = *r.EventNotes
	}
	if r.EventPublicInstructions != nil {
		m.EventPublicInstructions = *r.EventPublicInstructions
	}
	if r.EventWeatherBackupPlan != nil {
		m.EventWeatherBackupPlan = *r.EventWeatherBackupPlan
	}
	if r.EventExcelImportID != nil {
		m.EventExcelImportID = r.EventExcelImportID
	}
	if r.EventCategoryID != nil {
		m.EventCategoryID = *r.EventCategoryID
	}
	if r.EventSubcategoryID != nil {
		m.EventSubcategoryID = r.EventSubcategoryID
	}
}

type ApproveEventRequest struct {
	ApprovalNotes string `json:"approval_notes" validate:"omitempty"`
}
