package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	syModel "ptaweb_backend/internals/features/schoolyears/model"
)

// BoardPositionTitleModel is the catalog of positions a PTA board can have
// (President, Treasurer, ...). Actual holders are per school year in
// BoardPositionModel.
type BoardPositionTitleModel struct {
	BoardPositionTitleID   uuid.UUID `gorm:"column:board_position_title_id;type:uuid;primaryKey" json:"board_position_title_id"`
	BoardPositionTitleName string    `gorm:"column:board_position_title_name;type:varchar(120);not null" json:"board_position_title_name"`

	BoardPositionTitleRoleType    string `gorm:"column:board_position_title_role_type;type:varchar(60);not null;default:''" json:"board_position_title_role_type"` // e.g. "Officer", "Chair"
	BoardPositionTitleSortOrder   int    `gorm:"column:board_position_title_sort_order;not null;default:0" json:"board_position_title_sort_order"`
	BoardPositionTitleDescription string `gorm:"column:board_position_title_description;type:text;not null;default:''" json:"board_position_title_description"`

	BoardPositionTitleIsRequired bool `gorm:"column:board_position_title_is_required;not null;default:false" json:"board_position_title_is_required"`
	BoardPositionTitleIsElected  bool `gorm:"column:board_position_title_is_elected;not null;default:false" json:"board_position_title_is_elected"`

	// Elected titles can point at the election event where voting happens.
	BoardPositionTitleElectionEventID *uuid.UUID `gorm:"column:board_position_title_election_event_id;type:uuid" json:"board_position_title_election_event_id,omitempty"`

	BoardPositionTitleCreatedAt time.Time `gorm:"column:board_position_title_created_at;autoCreateTime" json:"board_position_title_created_at"`
	BoardPositionTitleUpdatedAt time.Time `gorm:"column:board_position_title_updated_at;autoUpdateTime" json:"board_position_title_updated_at"`
}

func (BoardPositionTitleModel) TableName() string { return "board_position_titles" }

func (m *BoardPositionTitleModel) BeforeCreate(_ *gorm.DB) error {
	if m.BoardPositionTitleID == uuid.Nil {
		m.BoardPositionTitleID = uuid.New()
	}
	return nil
}

// BoardPositionModel assigns one title to at most one user for one school
// year.
type BoardPositionModel struct {
	BoardPositionID uuid.UUID `gorm:"column:board_position_id;type:uuid;primaryKey" json:"board_position_id"`

	BoardPositionTitleID     uuid.UUID  `gorm:"column:board_position_title_id;type:uuid;not null;uniqueIndex:ux_board_positions_title_year,priority:2" json:"board_position_title_id"`
	BoardPositionSchoolYearID uuid.UUID `gorm:"column:board_position_school_year_id;type:uuid;not null;uniqueIndex:ux_board_positions_title_year,priority:1" json:"board_position_school_year_id"`
	BoardPositionUserID      *uuid.UUID `gorm:"column:board_position_user_id;type:uuid" json:"board_position_user_id,omitempty"`

	BoardPositionIsVotingMember bool `gorm:"column:board_position_is_voting_member;not null;default:true" json:"board_position_is_voting_member"`

	Title      *BoardPositionTitleModel `gorm:"foreignKey:BoardPositionTitleID;references:BoardPositionTitleID" json:"title,omitempty"`
	SchoolYear *syModel.SchoolYearModel `gorm:"foreignKey:BoardPositionSchoolYearID;references:SchoolYearID" json:"school_year,omitempty"`

	BoardPositionCreatedAt time.Time `gorm:"column:board_position_created_at;autoCreateTime" json:"board_position_created_at"`
	BoardPositionUpdatedAt time.Time `gorm:"column:board_position_updated_at;autoUpdateTime" json:"board_position_updated_at"`
}

func (BoardPositionModel) TableName() string { return "board_positions" }

func (m *BoardPositionModel) BeforeCreate(_ *gorm.DB) error {
	if m.BoardPositionID == uuid.Nil {
		m.BoardPositionID = uuid.New()
	}
	return nil
}
