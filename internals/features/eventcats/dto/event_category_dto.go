package dto

import (
	"github.com/google/uuid"

	catModel "ptaweb_backend/internals/features/eventcats/model"
)

// ===================== CATEGORIES =====================

type CreateEventCategoryRequest struct {
	EventCategoryName        string `json:"event_category_name" validate:"required,min=2,max=120"`
	EventCategoryDescription string `json:"event_category_description" validate:"omitempty"`

	EventCategoryDisplayOrder int   `json:"event_category_display_order" validate:"omitempty,min=0"`
	EventCategoryIsActive     *bool `json:"event_category_is_active" validate:"omitempty"`

	EventCategoryIcon       string `json:"event_category_icon" validate:"omitempty,max=80"`
	EventCategoryColorClass string `json:"event_category_color_class" validate:"omitempty,max=80"`

	EventCategoryDisplayMode          string `json:"event_category_display_mode" validate:"omitempty,oneof=list cards calendar inline"`
	EventCategoryMaxEventsToShow      int    `json:"event_category_max_events_to_show" validate:"omitempty,min=0"`
	EventCategoryShowViewEventsButton *bool  `json:"event_category_show_view_events_button" validate:"omitempty"`
	EventCategoryShowInlineOnMainPage *bool  `json:"event_category_show_inline_on_main_page" validate:"omitempty"`

	EventCategoryEditingPermission      *catModel.CategoryPermission     `json:"event_category_editing_permission" validate:"omitempty,min=0,max=3"`
	EventCategoryCoordinatorRequirement *catModel.CoordinatorRequirement `json:"event_category_coordinator_requirement" validate:"omitempty,min=0,max=2"`
}

func (r *CreateEventCategoryRequest) ToModel() *catModel.EventCategoryModel {
	m := &catModel.EventCategoryModel{
		EventCategoryName:        r.EventCategoryName,
		EventCategoryDescription: r.EventCategoryDescription,

		EventCategoryDisplayOrder: r.EventCategoryDisplayOrder,
		EventCategoryIsActive:     true,

		EventCategoryIcon:       r.EventCategoryIcon,
		EventCategoryColorClass: r.EventCategoryColorClass,

		EventCategoryDisplayMode:          "list",
		EventCategoryMaxEventsToShow:      r.EventCategoryMaxEventsToShow,
		EventCategoryShowViewEventsButton: true,

		EventCategoryEditingPermission:      catModel.PermBoardMembersAndAdmin,
		EventCategoryCoordinatorRequirement: catModel.CoordinatorOptional,
	}
	if r.EventCategoryIsActive != nil {
		m.EventCategoryIsActive = *r.EventCategoryIsActive
	}
	if r.EventCategoryDisplayMode != "" {
		m.EventCategoryDisplayMode = r.EventCategoryDisplayMode
	}
	if r.EventCategoryShowViewEventsButton != nil {
		m.EventCategoryShowViewEventsButton = *r.EventCategoryShowViewEventsButton
	}
	if r.EventCategoryShowInlineOnMainPage != nil {
		m.EventCategoryShowInlineOnMainPage = *r.EventCategoryShowInlineOnMainPage
	}
	if r.EventCategoryEditingPermission != nil {
		m.EventCategoryEditingPermission = *r.EventCategoryEditingPermission
	}
	if r.EventCategoryCoordinatorRequirement != nil {
		m.EventCategoryCoordinatorRequirement = *r.EventCategoryCoordinatorRequirement
	}
	return m
}

type UpdateEventCategoryRequest struct {
	EventCategoryName        *string `json:"event_category_name" validate:"omitempty,min=2,max=120"`
	EventCategoryDescription *string `json:"event_category_description" validate:"omitempty"`

	EventCategoryDisplayOrder *int  `json:"event_category_display_order" validate:"omitempty,min=0"`
	EventCategoryIsActive     *bool `json:"event_category_is_active" validate:"omitempty"`

	EventCategoryIcon       *string `json:"event_category_icon" validate:"omitempty,max=80"`
	EventCategoryColorClass *string `json:"event_category_color_class" validate:"omitempty,max=80"`

	EventCategoryDisplayMode          *string `json:"event_category_display_mode" validate:"omitempty,oneof=list cards calendar inline"`
	EventCategoryMaxEventsToShow      *int    `json:"event_category_max_events_to_show" validate:"omitempty,min=0"`
	EventCategoryShowViewEventsButton *bool   `json:"event_category_show_view_events_button" validate:"omitempty"`
	EventCategoryShowInlineOnMainPage *bool   `json:"event_category_show_inline_on_main_page" validate:"omitempty"`

	EventCategoryEditingPermission      *catModel.CategoryPermission     `json:"event_category_editing_permission" validate:"omitempty,min=0,max=3"`
	EventCategoryCoordinatorRequirement *catModel.CoordinatorRequirement `json:"event_category_coordinator_requirement" validate:"omitempty,min=0,max=2"`
}

func (r *UpdateEventCategoryRequest) ApplyToModel(m *catModel.EventCategoryModel) {
	if r.EventCategoryName != nil {
		m.EventCategoryName = *r.EventCategoryName
	}
	if r.EventCategoryDescription != nil {
		m.EventCategoryDescription = *r.EventCategoryDescription
	}
	if r.EventCategoryDisplayOrder != nil {
		m.EventCategoryDisplayOrder = *r.EventCategoryDisplayOrder
	}
	if r.EventCategoryIsActive != nil {
		m.EventCategoryIsActive = *r.EventCategoryIsActive
	}
	if r.EventCategoryIcon != nil {
		m.EventCategoryIcon = *r.EventCategoryIcon
	}
	if r.EventCategoryColorClass != nil {
		m.EventCategoryColorClass = *r.EventCategoryColorClass
	}
	if r.EventCategoryDisplayMode != nil {
		m.EventCategoryDisplayMode = *r.EventCategoryDisplayMode
	}
	if r.EventCategoryMaxEventsToShow != nil {
		m.EventCategoryMaxEventsToShow = *r.EventCategoryMaxEventsToShow
	}
	if r.EventCategoryShowViewEventsButton != nil {
		m.EventCategoryShowViewEventsButton = *r.EventCategoryShowViewEventsButton
	}
	if r.EventCategoryShowInlineOnMainPage != nil {
		m.EventCategoryShowInlineOnMainPage = *r.EventCategoryShowInlineOnMainPage
	}
	if r.EventCategoryEditingPermission != nil {
		m.EventCategoryEditingPermission = *r.EventCategoryEditingPermission
	}
	if r.EventCategoryCoordinatorRequirement != nil {
		m.EventCategoryCoordinatorRequirement = *r.EventCategoryCoordinatorRequirement
	}
}

// ===================== SUBCATEGORIES =====================

type CreateEventSubcategoryRequest struct {
	EventSubcategoryName        string `json:"event_subcategory_name" validate:"required,min=2,max=120"`
	EventSubcategoryDescription string `json:"event_subcategory_description" validate:"omitempty"`

	EventSubcategoryDisplayOrder int   `json:"event_subcategory_display_order" validate:"omitempty,min=0"`
	EventSubcategoryIsActive     *bool `json:"event_subcategory_is_active" validate:"omitempty"`

	EventSubcategoryIcon       string `json:"event_subcategory_icon" validate:"omitempty,max=80"`
	EventSubcategoryColorClass string `json:"event_subcategory_color_class" validate:"omitempty,max=80"`

	EventSubcategoryCategoryID uuid.UUID `json:"event_subcategory_category_id" validate:"required"`
}

func (r *CreateEventSubcategoryRequest) ToModel() *catModel.EventSubcategoryModel {
	m := &catModel.EventSubcategoryModel{
		EventSubcategoryName:         r.EventSubcategoryName,
		EventSubcategoryDescription:  r.EventSubcategoryDescription,
		EventSubcategoryDisplayOrder: r.EventSubcategoryDisplayOrder,
		EventSubcategoryIsActive:     true,
		EventSubcategoryIcon:         r.EventSubcategoryIcon,
		EventSubcategoryColorClass:   r.EventSubcategoryColorClass,
		EventSubcategoryCategoryID:   r.EventSubcategoryCategoryID,
	}
	if r.EventSubcategoryIsActive != nil {
		m.EventSubcategoryIsActive = *r.EventSubcategoryIsActive
	}
	return m
}

type UpdateEventSubcategoryRequest struct {
	EventSubcategoryName        *string `json:"event_subcategory_name" validate:"omitempty,min=2,max=120"`
	EventSubcategoryDescription *string `json:"event_subcategory_description" validate:"omitempty"`

	EventSubcategoryDisplayOrder *int  `json:"event_subcategory_display_order" validate:"omitempty,min=0"`
	EventSubcategoryIsActive     *bool `json:"event_subcategory_is_active" validate:"omitempty"`

	EventSubcategoryIcon       *string `json:"event_subcategory_icon" validate:"omitempty,max=80"`
	EventSubcategoryColorClass *string `json:"event_subcategory_color_class" validate:"omitempty,max=80"`

	EventSubcategoryCategoryID *uuid.UUID `json:"event_subcategory_category_id" validate:"omitempty"`
}

func (r *UpdateEventSubcategoryRequest) ApplyToModel(m *catModel.EventSubcategoryModel) {
	if r.EventSubcategoryName != nil {
		m.EventSubcategoryName = *r.EventSubcategoryName
	}
	if r.EventSubcategoryDescription != nil {
		m.EventSubcategoryDescription = *r.EventSubcategoryDescription
	}
	if r.EventSubcategoryDisplayOrder != nil {
		m.EventSubcategoryDisplayOrder = *r.EventSubcategoryDisplayOrder
	}
	if r.EventSubcategoryIsActive != nil {
		m.EventSubcategoryIsActive = *r.EventSubcategoryIsActive
	}
	if r.EventSubcategoryIcon != nil {
		m.EventSubcategoryIcon = *r.EventSubcategoryIcon
	}
	if r.EventSubcategoryColorClass != nil {
		m.EventSubcategoryColorClass = *r.EventSubcategoryColorClass
	}
	if r.EventSubcategoryCategoryID != nil {
		m.EventSubcategoryCategoryID = *r.EventSubcategoryCategoryID
	}
}
