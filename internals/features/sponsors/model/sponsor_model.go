package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	syModel "ptaweb_backend/internals/features/schoolyears/model"
)

type SponsorModel struct {
	SponsorID   uuid.UUID `gorm:"column:sponsor_id;type:uuid;primaryKey" json:"sponsor_id"`
	SponsorName string    `gorm:"column:sponsor_name;type:varchar(160);not null" json:"sponsor_name"`

	SponsorLogoURL    string `gorm:"column:sponsor_logo_url;type:text;not null;default:''" json:"sponsor_logo_url"`
	SponsorWebsiteURL string `gorm:"column:sponsor_website_url;type:text;not null;default:''" json:"sponsor_website_url"`

	// Free-form platform→URL map, e.g. {"facebook": "...", "instagram": "..."}.
	SponsorSocialLinks datatypes.JSON `gorm:"column:sponsor_social_links;type:jsonb" json:"sponsor_social_links,omitempty"`

	SponsorIsActive bool `gorm:"column:sponsor_is_active;not null;default:true" json:"sponsor_is_active"`

	SponsorCreatedAt time.Time `gorm:"column:sponsor_created_at;autoCreateTime" json:"sponsor_created_at"`
	SponsorUpdatedAt time.Time `gorm:"column:sponsor_updated_at;autoUpdateTime" json:"sponsor_updated_at"`
}

func (SponsorModel) TableName() string { return "sponsors" }

func (m *SponsorModel) BeforeCreate(_ *gorm.DB) error {
	if m.SponsorID == uuid.Nil {
		m.SponsorID = uuid.New()
	}
	return nil
}

// SponsorLevelModel is a giving tier (Platinum, Gold, ...).
type SponsorLevelModel struct {
	SponsorLevelID   uuid.UUID `gorm:"column:sponsor_level_id;type:uuid;primaryKey" json:"sponsor_level_id"`
	SponsorLevelName string    `gorm:"column:sponsor_level_name;type:varchar(120);not null" json:"sponsor_level_name"`

	SponsorLevelColor       string  `gorm:"column:sponsor_level_color;type:varchar(40);not null;default:''" json:"sponsor_level_color"`
	SponsorLevelAmount      float64 `gorm:"column:sponsor_level_amount;type:numeric(10,2);not null;default:0" json:"sponsor_level_amount"`
	SponsorLevelDescription string  `gorm:"column:sponsor_level_description;type:text;not null;default:''" json:"sponsor_level_description"`

	SponsorLevelSortOrder int `gorm:"column:sponsor_level_sort_order;not null;default:0" json:"sponsor_level_sort_order"`

	SponsorLevelCreatedAt time.Time `gorm:"column:sponsor_level_created_at;autoCreateTime" json:"sponsor_level_created_at"`
	SponsorLevelUpdatedAt time.Time `gorm:"column:sponsor_level_updated_at;autoUpdateTime" json:"sponsor_level_updated_at"`
}

func (SponsorLevelModel) TableName() string { return "sponsor_levels" }

func (m *SponsorLevelModel) BeforeCreate(_ *gorm.DB) error {
	if m.SponsorLevelID == uuid.Nil {
		m.SponsorLevelID = uuid.New()
	}
	return nil
}

// SponsorAssignmentModel ties a sponsor to a level for a school year, either
// year-wide or for one specific event.
type SponsorAssignmentModel struct {
	SponsorAssignmentID uuid.UUID `gorm:"column:sponsor_assignment_id;type:uuid;primaryKey" json:"sponsor_assignment_id"`

	SponsorAssignmentSponsorID    uuid.UUID  `gorm:"column:sponsor_assignment_sponsor_id;type:uuid;not null" json:"sponsor_assignment_sponsor_id"`
	SponsorAssignmentLevelID      uuid.UUID  `gorm:"column:sponsor_assignment_level_id;type:uuid;not null" json:"sponsor_assignment_level_id"`
	SponsorAssignmentSchoolYearID uuid.UUID  `gorm:"column:sponsor_assignment_school_year_id;type:uuid;not null" json:"sponsor_assignment_school_year_id"`
	SponsorAssignmentEventID      *uuid.UUID `gorm:"column:sponsor_assignment_event_id;type:uuid" json:"sponsor_assignment_event_id,omitempty"`

	Sponsor    *SponsorModel            `gorm:"foreignKey:SponsorAssignmentSponsorID;references:SponsorID" json:"sponsor,omitempty"`
	Level      *SponsorLevelModel       `gorm:"foreignKey:SponsorAssignmentLevelID;references:SponsorLevelID" json:"level,omitempty"`
	SchoolYear *syModel.SchoolYearModel `gorm:"foreignKey:SponsorAssignmentSchoolYearID;references:SchoolYearID" json:"school_year,omitempty"`

	SponsorAssignmentCreatedAt time.Time `gorm:"column:sponsor_assignment_created_at;autoCreateTime" json:"sponsor_assignment_created_at"`
	SponsorAssignmentUpdatedAt time.Time `gorm:"column:sponsor_assignment_updated_at;autoUpdateTime" json:"sponsor_assignment_updated_at"`
}

func (SponsorAssignmentModel) TableName() string { return "sponsor_assignments" }

func (m *SponsorAssignmentModel) BeforeCreate(_ *gorm.DB) error {
	if m.SponsorAssignmentID == uuid.Nil {
		m.SponsorAssignmentID = uuid.New()
	}
	return nil
}

// IsYearWide reports whether the assignment covers the whole school year
// rather than one event.
func (m *SponsorAssignmentModel) IsYearWide() bool {
	return m.SponsorAssignmentEventID == nil
}
