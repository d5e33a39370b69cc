package dto

import (
	"github.com/google/uuid"

	bpModel "ptaweb_backend/internals/features/boardpositions/model"
)

// ===================== TITLES =====================

type CreateBoardPositionTitleRequest struct {
	BoardPositionTitleName        string `json:"board_position_title_name" validate:"required,min=2,max=120"`
	BoardPositionTitleRoleType    string `json:"board_position_title_role_type" validate:"omitempty,max=60"`
	BoardPositionTitleSortOrder   int    `json:"board_position_title_sort_order" validate:"omitempty,min=0"`
	BoardPositionTitleDescription string `json:"board_position_title_description" validate:"omitempty"`

	BoardPositionTitleIsRequired bool `json:"board_position_title_is_required"`
	BoardPositionTitleIsElected  bool `json:"board_position_title_is_elected"`

	BoardPositionTitleElectionEventID *uuid.UUID `json:"board_position_title_election_event_id" validate:"omitempty"`
}

func (r *CreateBoardPositionTitleRequest) ToModel() *bpModel.BoardPositionTitleModel {
	return &bpModel.BoardPositionTitleModel{
		BoardPositionTitleName:        r.BoardPositionTitleName,
		BoardPositionTitleRoleType:    r.BoardPositionTitleRoleType,
		BoardPositionTitleSortOrder:   r.BoardPositionTitleSortOrder,
		BoardPositionTitleDescription: r.BoardPositionTitleDescription,

		BoardPositionTitleIsRequired: r.BoardPositionTitleIsRequired,
		BoardPositionTitleIsElected:  r.BoardPositionTitleIsElected,

		BoardPositionTitleElectionEventID: r.BoardPositionTitleElectionEventID,
	}
}

type UpdateBoardPositionTitleRequest struct {
	BoardPositionTitleName        *string `json:"board_position_title_name" validate:"omitempty,min=2,max=120"`
	BoardPositionTitleRoleType    *string `json:"board_position_title_role_type" validate:"omitempty,max=60"`
	BoardPositionTitleSortOrder   *int    `json:"board_position_title_sort_order" validate:"omitempty,min=0"`
	BoardPositionTitleDescription *string `json:"board_position_title_description" validate:"omitempty"`

	BoardPositionTitleIsRequired *bool `json:"board_position_title_is_required" validate:"omitempty"`
	BoardPositionTitleIsElected  *bool `json:"board_position_title_is_elected" validate:"omitempty"`

	BoardPositionTitleElectionEventID *uuid.UUID `json:"board_position_title_election_event_id" validate:"omitempty"`
}

func (r *UpdateBoardPositionTitleRequest) ApplyToModel(m *bpModel.BoardPositionTitleModel) {
	if r.BoardPositionTitleName != nil {
		m.BoardPositionTitleName = *r.BoardPositionTitleName
	}
	if r.BoardPositionTitleRoleType != nil {
		m.BoardPositionTitleRoleType = *r.BoardPositionTitleRoleType
	}
	if r.BoardPositionTitleSortOrder != nil {
		m.BoardPositionTitleSortOrder = *r.BoardPositionTitleSortOrder
	}
	if r.BoardPositionTitleDescription != nil {
		m.BoardPositionTitleDescription = *r.BoardPositionTitleDescription
	}
	if r.BoardPositionTitleIsRequired != nil {
		m.BoardPositionTitleIsRequired = *r.BoardPositionTitleIsRequired
	}
	if r.BoardPositionTitleIsElected != nil {
		m.BoardPositionTitleIsElected = *r.BoardPositionTitleIsElected
	}
	if r.BoardPositionTitleElectionEventID != nil {
		m.BoardPositionTitleElectionEventID = r.BoardPositionTitleElectionEventID
	}
}

// ===================== POSITIONS =====================

type CreateBoardPositionRequest struct {
	BoardPositionTitleID      uuid.UUID  `json:"board_position_title_id" validate:"required"`
	BoardPositionSchoolYearID uuid.UUID  `json:"board_position_school_year_id" validate:"required"`
	BoardPositionUserID       *uuid.UUID `json:"board_position_user_id" validate:"omitempty"`

	BoardPositionIsVotingMember *bool `json:"board_position_is_voting_member" validate:"omitempty"`
}

func (r *CreateBoardPositionRequest) ToModel() *bpModel.BoardPositionModel {
	m := &bpModel.BoardPositionModel{
		BoardPositionTitleID:        r.BoardPositionTitleID,
		BoardPositionSchoolYearID:   r.BoardPositionSchoolYearID,
		BoardPositionUserID:         r.BoardPositionUserID,
		BoardPositionIsVotingMember: true,
	}
	if r.BoardPositionIsVotingMember != nil {
		m.BoardPositionIsVotingMember = *r.BoardPositionIsVotingMember
	}
	return m
}

type UpdateBoardPositionRequest struct {
	BoardPositionUserID         *uuid.UUID `json:"board_position_user_id" validate:"omitempty"`
	BoardPositionIsVotingMember *bool      `json:"board_position_is_voting_member" validate:"omitempty"`
}

func (r *UpdateBoardPositionRequest) ApplyToModel(m *bpModel.BoardPositionModel) {
	if r.BoardPositionUserID != nil {
		m.BoardPositionUserID = r.BoardPositionUserID
	}
	if r.BoardPositionIsVotingMember != nil {
		m.BoardPositionIsVotingMember = *r.BoardPositionIsVotingMember
	}
}

// AssignUserRequest fills (or, with a nil user, vacates) one title for one
// school year, creating the position row when none exists yet.
type AssignUserRequest struct {
	BoardPositionTitleID      uuid.UUID  `json:"board_position_title_id" validate:"required"`
	BoardPositionSchoolYearID uuid.UUID  `json:"board_position_school_year_id" validate:"required"`
	BoardPositionUserID       *uuid.UUID `json:"board_position_user_id" validate:"omitempty"`
}

// BoardSlot is one row of the all-by-schoolyear view: every catalog title,
// filled or not.
type BoardSlot struct {
	Title    bpModel.BoardPositionTitleModel `json:"title"`
	Position *bpModel.BoardPositionModel     `json:"position,omitempty"`
	IsFilled bool                            `json:"is_filled"`
}
