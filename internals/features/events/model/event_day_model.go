package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventDayModel struct {
	EventDayID      uuid.UUID `gorm:"column:event_day_id;type:uuid;primaryKey" json:"event_day_id"`
	EventDayEventID uuid.UUID `gorm:"column:event_day_event_id;type:uuid;not null;uniqueIndex:ux_event_days_number,priority:1" json:"event_day_event_id"`

	EventDayNumber int       `gorm:"column:event_day_number;not null;uniqueIndex:ux_event_days_number,priority:2" json:"event_day_number"` // 1, 2, 3, ...
	EventDayDate   time.Time `gorm:"column:event_day_date;not null" json:"event_day_date"`

	EventDayTitle       string `gorm:"column:event_day_title;type:varchar(200);not null;default:''" json:"event_day_title"` // e.g. "Kick-off Day"
	EventDayDescription string `gorm:"column:event_day_description;type:text;not null;default:''" json:"event_day_description"`
	EventDayLocation    string `gorm:"column:event_day_location;type:varchar(300);not null;default:''" json:"event_day_location"`

	// Optional overrides of the parent event's times.
	EventDayStartTime *time.Time `gorm:"column:event_day_start_time" json:"event_day_start_time,omitempty"`
	EventDayEndTime   *time.Time `gorm:"column:event_day_end_time" json:"event_day_end_time,omitempty"`

	EventDayIsActive            bool   `gorm:"column:event_day_is_active;not null;default:true" json:"event_day_is_active"`
	EventDaySpecialInstructions string `gorm:"column:event_day_special_instructions;type:text;not null;default:''" json:"event_day_special_instructions"`

	EventDayMaxAttendees       *int `gorm:"column:event_day_max_attendees" json:"event_day_max_attendees,omitempty"`
	EventDayEstimatedAttendees *int `gorm:"column:event_day_estimated_attendees" json:"event_day_estimated_attendees,omitempty"`

	EventDayWeatherBackupPlan string `gorm:"column:event_day_weather_backup_plan;type:text;not null;default:''" json:"event_day_weather_backup_plan"`

	EventDayCreatedAt time.Time `gorm:"column:event_day_created_at;autoCreateTime" json:"event_day_created_at"`
	EventDayUpdatedAt time.Time `gorm:"column:event_day_updated_at;autoUpdateTime" json:"event_day_updated_at"`
}

func (EventDayModel) TableName() string { return "event_days" }

func (m *EventDayModel) BeforeCreate(_ *gorm.DB) error {
	if m.EventDayID == uuid.Nil {
		m.EventDayID = uuid.New()
	}
	return nil
}

func (m *EventDayModel) Duration() *time.Duration {
	if m.EventDayStartTime == nil || m.EventDayEndTime == nil {
		return nil
	}
	d := m.EventDayEndTime.Sub(*m.EventDayStartTime)
	return &d
}

// EffectiveStartTime falls back to the parent event's start, then the day's
// own date.
func (m *EventDayModel) EffectiveStartTime(parent *EventModel) time.Time {
	if m.EventDayStartTime != nil {
		return *m.EventDayStartTime
	}
	if parent != nil && !parent.EventStartTime.IsZero() {
		return parent.EventStartTime
	}
	return m.EventDayDate
}

func (m *EventDayModel) EffectiveEndTime(parent *EventModel) time.Time {
	if m.EventDayEndTime != nil {
		return *m.EventDayEndTime
	}
	if parent != nil && !parent.EventEndTime.IsZero() {
		return parent.EventEndTime
	}
	return m.EventDayDate.Add(2 * time.Hour)
}

func (m *EventDayModel) EffectiveLocation(parent *EventModel) string {
	if m.EventDayLocation != "" {
		return m.EventDayLocation
	}
	if parent != nil {
		return parent.EventLocation
	}
	return ""
}
