package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	spModel "ptaweb_backend/internals/features/sponsors/model"
)

// ===================== SPONSORS =====================

type CreateSponsorRequest struct {
	SponsorName       string `json:"sponsor_name" validate:"required,min=2,max=160"`
	SponsorLogoURL    string `json:"sponsor_logo_url" validate:"omitempty,url"`
	SponsorWebsiteURL string `json:"sponsor_website_url" validate:"omitempty,url"`

	SponsorSocialLinks datatypes.JSON `json:"sponsor_social_links" validate:"omitempty"`

	SponsorIsActive *bool `json:"sponsor_is_active" validate:"omitempty"`
}

func (r *CreateSponsorRequest) ToModel() *spModel.SponsorModel {
	m := &spModel.SponsorModel{
		SponsorName:        r.SponsorName,
		SponsorLogoURL:     r.SponsorLogoURL,
		SponsorWebsiteURL:  r.SponsorWebsiteURL,
		SponsorSocialLinks: r.SponsorSocialLinks,
		SponsorIsActive:    true,
	}
	if r.SponsorIsActive != nil {
		m.SponsorIsActive = *r.SponsorIsActive
	}
	return m
}

type UpdateSponsorRequest struct {
	SponsorName       *string `json:"sponsor_name" validate:"omitempty,min=2,max=160"`
	SponsorLogoURL    *string `json:"sponsor_logo_url" validate:"omitempty"`
	SponsorWebsiteURL *string `json:"sponsor_website_url" validate:"omitempty"`

	SponsorSocialLinks datatypes.JSON `json:"sponsor_social_links" validate:"omitempty"`

	SponsorIsActive *bool `json:"sponsor_is_active" validate:"omitempty"`
}

func (r *UpdateSponsorRequest) ApplyToModel(m *spModel.SponsorModel) {
	if r.SponsorName != nil {
		m.SponsorName = *r.SponsorName
	}
	if r.SponsorLogoURL != nil {
		m.SponsorLogoURL = *r.SponsorLogoURL
	}
	if r.SponsorWebsiteURL != nil {
		m.SponsorWebsiteURL = *r.SponsorWebsiteURL
	}
	if len(r.SponsorSocialLinks) > 0 {
		m.SponsorSocialLinks = r.SponsorSocialLinks
	}
	if r.SponsorIsActive != nil {
		m.SponsorIsActive = *r.SponsorIsActive
	}
}

// ===================== LEVELS =====================

type CreateSponsorLevelRequest struct {
	SponsorLevelName        string  `json:"sponsor_level_name" validate:"required,min=2,max=120"`
	SponsorLevelColor       string  `json:"sponsor_level_color" validate:"omitempty,max=40"`
	SponsorLevelAmount      float64 `json:"sponsor_level_amount" validate:"omitempty,min=0"`
	SponsorLevelDescription string  `json:"sponsor_level_description" validate:"omitempty"`
	SponsorLevelSortOrder   int     `json:"sponsor_level_sort_order" validate:"omitempty,min=0"`
}

func (r *CreateSponsorLevelRequest) ToModel() *spModel.SponsorLevelModel {
	return &spModel.SponsorLevelModel{
		SponsorLevelName:        r.SponsorLevelName,
		SponsorLevelColor:       r.SponsorLevelColor,
		SponsorLevelAmount:      r.SponsorLevelAmount,
		SponsorLevelDescription: r.SponsorLevelDescription,
		SponsorLevelSortOrder:   r.SponsorLevelSortOrder,
	}
}

type UpdateSponsorLevelRequest struct {
	SponsorLevelName        *string  `json:"sponsor_level_name" validate:"omitempty,min=2,max=120"`
	SponsorLevelColor       *string  `json:"sponsor_level_color" validate:"omitempty,max=40"`
	SponsorLevelAmount      *float64 `json:"sponsor_level_amount" validate:"omitempty,min=0"`
	SponsorLevelDescription *string  `json:"sponsor_level_description" validate:"omitempty"`
	SponsorLevelSortOrder   *int     `json:"sponsor_level_sort_order" validate:"omitempty,min=0"`
}

func (r *UpdateSponsorLevelRequest) ApplyToModel(m *spModel.SponsorLevelModel) {
	if r.SponsorLevelName != nil {
		m.SponsorLevelName = *r.SponsorLevelName
	}
	if r.SponsorLevelColor != nil {
		m.SponsorLevelColor = *r.SponsorLevelColor
	}
	if r.SponsorLevelAmount != nil {
		m.SponsorLevelAmount = *r.SponsorLevelAmount
	}
	if r.SponsorLevelDescription != nil {
		m.SponsorLevelDescription = *r.SponsorLevelDescription
	}
	if r.SponsorLevelSortOrder != nil {
		m.SponsorLevelSortOrder = *r.SponsorLevelSortOrder
	}
}

// ===================== ASSIGNMENTS =====================

type CreateSponsorAssignmentRequest struct {
	SponsorAssignmentSponsorID    uuid.UUID  `json:"sponsor_assignment_sponsor_id" validate:"required"`
	SponsorAssignmentLevelID      uuid.UUID  `json:"sponsor_assignment_level_id" validate:"required"`
	SponsorAssignmentSchoolYearID uuid.UUID  `json:"sponsor_assignment_school_year_id" validate:"required"`
	SponsorAssignmentEventID      *uuid.UUID `json:"sponsor_assignment_event_id" validate:"omitempty"`
}

func (r *CreateSponsorAssignmentRequest) ToModel() *spModel.SponsorAssignmentModel {
	return &spModel.SponsorAssignmentModel{
		SponsorAssignmentSponsorID:    r.SponsorAssignmentSponsorID,
		SponsorAssignmentLevelID:      r.SponsorAssignmentLevelID,
		SponsorAssignmentSchoolYearID: r.SponsorAssignmentSchoolYearID,
		SponsorAssignmentEventID:      r.SponsorAssignmentEventID,
	}
}

type UpdateSponsorAssignmentRequest struct {
	SponsorAssignmentLevelID *uuid.UUID `json:"sponsor_assignment_level_id" validate:"omitempty"`
	SponsorAssignmentEventID *uuid.UUID `json:"sponsor_assignment_event_id" validate:"omitempty"`
}

func (r *UpdateSponsorAssignmentRequest) ApplyToModel(m *spModel.SponsorAssignmentModel) {
	if r.SponsorAssignmentLevelID != nil {
		m.SponsorAssignmentLevelID = *r.SponsorAssignmentLevelID
	}
	if r.SponsorAssignmentEventID != nil {
		m.SponsorAssignmentEventID = r.SponsorAssignmentEventID
	}
}
