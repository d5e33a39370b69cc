package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventSubcategoryModel struct {
	EventSubcategoryID   uuid.UUID `gorm:"column:event_subcategory_id;type:uuid;primaryKey" json:"event_subcategory_id"`
	EventSubcategoryName string    `gorm:"column:event_subcategory_name;type:varchar(120);not null" json:"event_subcategory_name"` // e.g. "Holiday", "Early Dismissal"
	EventSubcategorySlug string    `gorm:"column:event_subcategory_slug;type:varchar(160);not null" json:"event_subcategory_slug"`

	EventSubcategoryDescription  string `gorm:"column:event_subcategory_description;type:text;not null;default:''" json:"event_subcategory_description"`
	EventSubcategoryDisplayOrder int    `gorm:"column:event_subcategory_display_order;not null;default:0" json:"event_subcategory_display_order"`
	EventSubcategoryIsActive     bool   `gorm:"column:event_subcategory_is_active;not null;default:true" json:"event_subcategory_is_active"`

	EventSubcategoryIcon       string `gorm:"column:event_subcategory_icon;type:varchar(80);not null;default:''" json:"event_subcategory_icon"`
	EventSubcategoryColorClass string `gorm:"column:event_subcategory_color_class;type:varchar(80);not null;default:''" json:"event_subcategory_color_class"`

	EventSubcategoryCategoryID uuid.UUID           `gorm:"column:event_subcategory_category_id;type:uuid;not null" json:"event_subcategory_category_id"`
	Category                   *EventCategoryModel `gorm:"foreignKey:EventSubcategoryCategoryID;references:EventCategoryID" json:"category,omitempty"`

	EventSubcategoryCreatedAt time.Time `gorm:"column:event_subcategory_created_at;autoCreateTime" json:"event_subcategory_created_at"`
	EventSubcategoryUpdatedAt time.Time `gorm:"column:event_subcategory_updated_at;autoUpdateTime" json:"event_subcategory_updated_at"`
}

func (EventSubcategoryModel) TableName() string { return "event_subcategories" }

func (m *EventSubcategoryModel) BeforeCreate(_ *gorm.DB) error {
	if m.EventSubcategoryID == uuid.Nil {
		m.EventSubcategoryID = uuid.New()
	}
	return nil
}
