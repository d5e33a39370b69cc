package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryPermission defines who can create or edit events in a category.
type CategoryPermission int16

const (
	PermAdminOnly            CategoryPermission = 0
	PermBoardMembersAndAdmin CategoryPermission = 1
	PermEventCoordinators    CategoryPermission = 2
	PermAllUsers             CategoryPermission = 3
)

// CoordinatorRequirement defines whether events in a category need a
// coordinator.
type CoordinatorRequirement int16

const (
	CoordinatorNotNeeded CoordinatorRequirement = 0
	CoordinatorOptional  CoordinatorRequirement = 1
	CoordinatorRequired  CoordinatorRequirement = 2
)

type EventCategoryModel struct {
	EventCategoryID   uuid.UUID `gorm:"column:event_category_id;type:uuid;primaryKey" json:"event_category_id"`
	EventCategoryName string    `gorm:"column:event_category_name;type:varchar(120);not null" json:"event_category_name"`
	EventCategorySlug string    `gorm:"column:event_category_slug;type:varchar(160);not null;uniqueIndex" json:"event_category_slug"`

	EventCategoryDescription  string `gorm:"column:event_category_description;type:text;not null;default:''" json:"event_category_description"`
	EventCategoryDisplayOrder int    `gorm:"column:event_category_display_order;not null;default:0" json:"event_category_display_order"`
	EventCategoryIsActive     bool   `gorm:"column:event_category_is_active;not null;default:true" json:"event_category_is_active"`

	// Presentation hints for the public site.
	EventCategoryIcon       string `gorm:"column:event_category_icon;type:varchar(80);not null;default:''" json:"event_category_icon"`              // e.g. "bi-balloon"
	EventCategoryColorClass string `gorm:"column:event_category_color_class;type:varchar(80);not null;default:''" json:"event_category_color_class"` // e.g. "text-danger"

	EventCategoryDisplayMode          string `gorm:"column:event_category_display_mode;type:varchar(40);not null;default:'list'" json:"event_category_display_mode"`
	EventCategoryMaxEventsToShow      int    `gorm:"column:event_category_max_events_to_show;not null;default:0" json:"event_category_max_events_to_show"`
	EventCategoryShowViewEventsButton bool   `gorm:"column:event_category_show_view_events_button;not null;default:true" json:"event_category_show_view_events_button"`
	EventCategoryShowInlineOnMainPage bool   `gorm:"column:event_category_show_inline_on_main_page;not null;default:false" json:"event_category_show_inline_on_main_page"`

	EventCategoryEditingPermission      CategoryPermission     `gorm:"column:event_category_editing_permission;type:smallint;not null;default:1" json:"event_category_editing_permission"`
	EventCategoryCoordinatorRequirement CoordinatorRequirement `gorm:"column:event_category_coordinator_requirement;type:smallint;not null;default:1" json:"event_category_coordinator_requirement"`

	EventCategoryCreatedAt time.Time `gorm:"column:event_category_created_at;autoCreateTime" json:"event_category_created_at"`
	EventCategoryUpdatedAt time.Time `gorm:"column:event_category_updated_at;autoUpdateTime" json:"event_category_updated_at"`
}

func (EventCategoryModel) TableName() string { return "event_categories" }

func (m *EventCategoryModel) BeforeCreate(_ *gorm.DB) error {
	if m.EventCategoryID == uuid.Nil {
		m.EventCategoryID = uuid.New()
	}
	return nil
}
