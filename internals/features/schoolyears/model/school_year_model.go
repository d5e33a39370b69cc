package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchoolYearStatus int16

const (
	SchoolYearFuture  SchoolYearStatus = 1 // board elected, planning phase
	SchoolYearPending SchoolYearStatus = 2
	SchoolYearCurrent SchoolYearStatus = 3
	SchoolYearWrapup  SchoolYearStatus = 4 // audit/review phase, no new events
	SchoolYearPrev    SchoolYearStatus = 5 // archived after audit
)

func (s SchoolYearStatus) String() string {
	switch s {
	case SchoolYearFuture:
		return "FutureYear"
	case SchoolYearPending:
		return "PendingYear"
	case SchoolYearCurrent:
		return "CurrentYear"
	case SchoolYearWrapup:
		return "Wrapup"
	case SchoolYearPrev:
		return "PrevYear"
	}
	return "Unknown"
}

type SchoolYearModel struct {
	SchoolYearID        uuid.UUID        `gorm:"column:school_year_id;type:uuid;primaryKey" json:"school_year_id"`
	SchoolYearName      string           `gorm:"column:school_year_name;type:varchar(60);not null" json:"school_year_name"` // e.g. "2025-2026"
	SchoolYearStartDate time.Time        `gorm:"column:school_year_start_date;not null" json:"school_year_start_date"`
	SchoolYearEndDate   time.Time        `gorm:"column:school_year_end_date;not null" json:"school_year_end_date"`
	SchoolYearStatus    SchoolYearStatus `gorm:"column:school_year_status;type:smallint;not null;default:1" json:"school_year_status"`

	SchoolYearIsVisibleToPublic bool `gorm:"column:school_year_is_visible_to_public;not null;default:false" json:"school_year_is_visible_to_public"`

	SchoolYearPrintableCalendarURL string `gorm:"column:school_year_printable_calendar_url;type:text;not null;default:''" json:"school_year_printable_calendar_url"`
	SchoolYearReflectionsTheme     string `gorm:"column:school_year_reflections_theme;type:varchar(200);not null;default:''" json:"school_year_reflections_theme"`

	SchoolYearCreatedAt time.Time `gorm:"column:school_year_created_at;autoCreateTime" json:"school_year_created_at"`
	SchoolYearUpdatedAt time.Time `gorm:"column:school_year_updated_at;autoUpdateTime" json:"school_year_updated_at"`
}

func (SchoolYearModel) TableName() string { return "school_years" }

func (m *SchoolYearModel) BeforeCreate(_ *gorm.DB) error {
	if m.SchoolYearID == uuid.Nil {
		m.SchoolYearID = uuid.New()
	}
	return nil
}

// Contains reports whether t falls inside the year's date range.
func (m *SchoolYearModel) Contains(t time.Time) bool {
	return !t.Before(m.SchoolYearStartDate) && !t.After(m.SchoolYearEndDate)
}

// Overlaps reports whether [start, end] intersects the year's date range.
func (m *SchoolYearModel) Overlaps(start, end time.Time) bool {
	return !start.After(m.SchoolYearEndDate) && !end.Before(m.SchoolYearStartDate)
}
