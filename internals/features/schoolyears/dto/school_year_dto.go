package dto

import (
	"strings"
	"time"

	model "ptaweb_backend/internals/features/schoolyears/model"
)

/* ===================== REQUESTS ===================== */

type CreateSchoolYearRequest struct {
	SchoolYearName      string `json:"school_year_name" validate:"required,min=4,max=60"`
	SchoolYearStartDate string `json:"school_year_start_date" validate:"required,datetime=2006-01-02"`
	SchoolYearEndDate   string `json:"school_year_end_date" validate:"required,datetime=2006-01-02"`
}

func (r CreateSchoolYearRequest) Dates() (start, end time.Time) {
	start, _ = time.Parse("2006-01-02", strings.TrimSpace(r.SchoolYearStartDate))
	end, _ = time.Parse("2006-01-02", strings.TrimSpace(r.SchoolYearEndDate))
	return start, end
}

func (r CreateSchoolYearRequest) ToModel(status model.SchoolYearStatus, visible bool) *model.SchoolYearModel {
	start, end := r.Dates()
	return &model.SchoolYearModel{
		SchoolYearName:              strings.TrimSpace(r.SchoolYearName),
		SchoolYearStartDate:         start,
		SchoolYearEndDate:           end,
		SchoolYearStatus:            status,
		SchoolYearIsVisibleToPublic: visible,
	}
}

// Update is partial: only provided fields are applied.
type UpdateSchoolYearRequest struct {
	SchoolYearName                 *string `json:"school_year_name" validate:"omitempty,min=4,max=60"`
	SchoolYearStartDate            *string `json:"school_year_start_date" validate:"omitempty,datetime=2006-01-02"`
	SchoolYearEndDate              *string `json:"school_year_end_date" validate:"omitempty,datetime=2006-01-02"`
	SchoolYearStatus               *int16  `json:"school_year_status" validate:"omitempty,min=1,max=5"`
	SchoolYearIsVisibleToPublic    *bool   `json:"school_year_is_visible_to_public"`
	SchoolYearPrintableCalendarURL *string `json:"school_year_printable_calendar_url"`
	SchoolYearReflectionsTheme     *string `json:"school_year_reflections_theme" validate:"omitempty,max=200"`
}

func (r *UpdateSchoolYearRequest) ApplyToModel(m *model.SchoolYearModel) {
	if r.SchoolYearName != nil {
		m.SchoolYearName = strings.TrimSpace(*r.SchoolYearName)
	}
	if r.SchoolYearStartDate != nil {
		if t, err := time.Parse("2006-01-02", strings.TrimSpace(*r.SchoolYearStartDate)); err == nil {
			m.SchoolYearStartDate = t
		}
	}
	if r.SchoolYearEndDate != nil {
		if t, err := time.Parse("2006-01-02", strings.TrimSpace(*r.SchoolYearEndDate)); err == nil {
			m.SchoolYearEndDate = t
		}
	}
	if r.SchoolYearStatus != nil {
		m.SchoolYearStatus = model.SchoolYearStatus(*r.SchoolYearStatus)
	}
	if r.SchoolYearIsVisibleToPublic != nil {
		m.SchoolYearIsVisibleToPublic = *r.SchoolYearIsVisibleToPublic
	}
	if r.SchoolYearPrintableCalendarURL != nil {
		m.SchoolYearPrintableCalendarURL = strings.TrimSpace(*r.SchoolYearPrintableCalendarURL)
	}
	if r.SchoolYearReflectionsTheme != nil {
		m.SchoolYearReflectionsTheme = strings.TrimSpace(*r.SchoolYearReflectionsTheme)
	}
}

type TransitionToNewYearRequest struct {
	NewYearName string `json:"new_year_name" validate:"required,min=4,max=60"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"required,datetime=2006-01-02"`
}
