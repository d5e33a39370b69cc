package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	syModel "ptaweb_backend/internals/features/schoolyears/model"
)

type EventModel struct {
	EventID    uuid.UUID `gorm:"column:event_id;type:uuid;primaryKey" json:"event_id"`
	EventTitle string    `gorm:"column:event_title;type:varchar(200);not null" json:"event_title"`
	EventDate  time.Time `gorm:"column:event_date;not null" json:"event_date"`

	EventDescription string `gorm:"column:event_description;type:text;not null;default:''" json:"event_description"`
	EventLocation    string `gorm:"column:event_location;type:varchar(300);not null;default:''" json:"event_location"`
	EventImageURL    string `gorm:"column:event_image_url;type:text;not null;default:''" json:"event_image_url"`
	EventLink        string `gorm:"column:event_link;type:text;not null;default:''" json:"event_link"`

	EventCoordinatorID *uuid.UUID `gorm:"column:event_coordinator_id;type:uuid" json:"event_coordinator_id,omitempty"`

	EventStatus EventStatus `gorm:"column:event_status;type:smallint;not null;default:0" json:"event_status"`

	// Timing
	EventSetupStartTime *time.Time `gorm:"column:event_setup_start_time" json:"event_setup_start_time,omitempty"`
	EventStartTime      time.Time  `gorm:"column:event_start_time" json:"event_start_time"`
	EventEndTime        time.Time  `gorm:"column:event_end_time" json:"event_end_time"`
	EventCleanupEndTime *time.Time `gorm:"column:event_cleanup_end_time" json:"event_cleanup_end_time,omitempty"`

	// Capacity
	EventMaxAttendees       *int `gorm:"column:event_max_attendees" json:"event_max_attendees,omitempty"`
	EventEstimatedAttendees *int `gorm:"column:event_estimated_attendees" json:"event_estimated_attendees,omitempty"`

	// Volunteer flags
	EventRequiresVolunteers bool `gorm:"column:event_requires_volunteers;not null;default:false" json:"event_requires_volunteers"`
	EventRequiresSetup      bool `gorm:"column:event_requires_setup;not null;default:false" json:"event_requires_setup"`
	EventRequiresCleanup    bool `gorm:"column:event_requires_cleanup;not null;default:false" json:"event_requires_cleanup"`

	// Notes: internal vs public-facing
	EventNotes              string `gorm:"column:event_notes;type:text;not null;default:''" json:"event_notes"`
	EventPublicInstructions string `gorm:"column:event_public_instructions;type:text;not null;default:''" json:"event_public_instructions"`
	EventWeatherBackupPlan  string `gorm:"column:event_weather_backup_plan;type:text;not null;default:''" json:"event_weather_backup_plan"`

	// Volunteer-signup spreadsheet imports reference events by this id.
	EventExcelImportID *string `gorm:"column:event_excel_import_id;type:varchar(100)" json:"event_excel_import_id,omitempty"`

	// Copying and templates. Slug is unique per school year at the DB level;
	// the check-then-insert pre-check is backed by this constraint.
	EventSlug           string     `gorm:"column:event_slug;type:varchar(300);not null;uniqueIndex:ux_events_slug_per_year,priority:2" json:"event_slug"`
	EventSourceEventID  *uuid.UUID `gorm:"column:event_source_event_id;type:uuid" json:"event_source_event_id,omitempty"`
	EventCopyGeneration int        `gorm:"column:event_copy_generation;not null;default:0" json:"event_copy_generation"`

	// Approval tracking
	EventApprovedByUserID *uuid.UUID `gorm:"column:event_approved_by_user_id;type:uuid" json:"event_approved_by_user_id,omitempty"`
	EventApprovedDate     *time.Time `gorm:"column:event_approved_date" json:"event_approved_date,omitempty"`
	EventApprovalNotes    string     `gorm:"column:event_approval_notes;type:text;not null;default:''" json:"event_approval_notes"`

	// Relationships
	EventSchoolYearID uuid.UUID  `gorm:"column:event_school_year_id;type:uuid;not null;uniqueIndex:ux_events_slug_per_year,priority:1" json:"event_school_year_id"`
	EventCategoryID   uuid.UUID  `gorm:"column:event_category_id;type:uuid;not null" json:"event_category_id"`
	EventSubcategoryID *uuid.UUID `gorm:"column:event_subcategory_id;type:uuid" json:"event_subcategory_id,omitempty"`

	SchoolYear *syModel.SchoolYearModel `gorm:"foreignKey:EventSchoolYearID;references:SchoolYearID" json:"school_year,omitempty"`
	EventDays  []EventDayModel          `gorm:"foreignKey:EventDayEventID;references:EventID" json:"event_days,omitempty"`

	AuditMeta `gorm:"embedded;embeddedPrefix:event_"`

	EventCreatedAt time.Time `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
}

func (EventModel) TableName() string { return "events" }

func (m *EventModel) BeforeCreate(_ *gorm.DB) error {
	if m.EventID == uuid.Nil {
		m.EventID = uuid.New()
	}
	return nil
}

// EventDuration is derived, never stored: end - start when both are set.
func (m *EventModel) EventDuration() *time.Duration {
	if m.EventStartTime.IsZero() || m.EventEndTime.IsZero() {
		return nil
	}
	d := m.EventEndTime.Sub(m.EventStartTime)
	return &d
}

// TotalEventDuration spans setup through cleanup when both are set.
func (m *EventModel) TotalEventDuration() *time.Duration {
	if m.EventSetupStartTime == nil || m.EventCleanupEndTime == nil {
		return nil
	}
	d := m.EventCleanupEndTime.Sub(*m.EventSetupStartTime)
	return &d
}

// MultiDayStartDate falls back to the event date for single-day events.
func (m *EventModel) MultiDayStartDate() time.Time {
	if len(m.EventDays) <= 1 {
		return m.EventDate
	}
	earliest := m.EventDays[0].EventDayDate
	for _, d := range m.EventDays[1:] {
		if d.EventDayDate.Before(earliest) {
			earliest = d.EventDayDate
		}
	}
	return earliest
}

func (m *EventModel) MultiDayEndDate() time.Time {
	if len(m.EventDays) <= 1 {
		return m.EventDate
	}
	latest := m.EventDays[0].EventDayDate
	for _, d := range m.EventDays[1:] {
		if d.EventDayDate.After(latest) {
			latest = d.EventDayDate
		}
	}
	return latest
}

func (m *EventModel) DayCount() int {
	if len(m.EventDays) > 1 {
		return len(m.EventDays)
	}
	return 1
}
