package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ptaweb_backend/internals/features/eventcats/dto"
	catModel "ptaweb_backend/internals/features/eventcats/model"
	helper "ptaweb_backend/internals/helpers"
)

type EventSubcategoryController struct{ DB *gorm.DB }

func NewEventSubcategoryController(db *gorm.DB) *EventSubcategoryController {
	return &EventSubcategoryController{DB: db}
}

func (ctl *EventSubcategoryController) GetAll(c *fiber.Ctx) error {
	var subs []catModel.EventSubcategoryModel
	err := ctl.DB.Preload("Category").
		Order("event_subcategory_display_order ASC, event_subcategory_name ASC").
		Find(&subs).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load subcategories")
	}
	return helper.JsonOK(c, subs)
}

func (ctl *EventSubcategoryController) GetByCategory(c *fiber.Ctx) error {
	catID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event category id")
	}

	var subs []catModel.EventSubcategoryModel
	err = ctl.DB.Where("event_subcategory_category_id = ?", catID).
		Order("event_subcategory_display_order ASC, event_subcategory_name ASC").
		Find(&subs).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load subcategories")
	}
	return helper.JsonOK(c, subs)
}

func (ctl *EventSubcategoryController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subcategory id")
	}

	var sub catModel.EventSubcategoryModel
	if err := ctl.DB.Preload("Category").First(&sub, "event_subcategory_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subcategory not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load subcategory")
	}
	return helper.JsonOK(c, sub)
}

func (ctl *EventSubcategoryController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventSubcategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var parent int64
	if err := ctl.DB.Model(&catModel.EventCategoryModel{}).
		Where("event_category_id = ?", req.EventSubcategoryCategoryID).
		Count(&parent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check parent category")
	}
	if parent == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event category not found")
	}

	sub := req.ToModel()
	sub.EventSubcategorySlug = helper.Slugify(sub.EventSubcategoryName)

	if err := ctl.DB.Create(sub).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subcategory")
	}
	return helper.JsonCreated(c, sub)
}

func (ctl *EventSubcategoryController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subcategory id")
	}

	var req dto.UpdateEventSubcategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var sub catModel.EventSubcategoryModel
	if err := ctl.DB.First(&sub, "event_subcategory_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subcategory not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load subcategory")
	}

	if req.EventSubcategoryCategoryID != nil {
		var parent int64
		if err := ctl.DB.Model(&catModel.EventCategoryModel{}).
			Where("event_category_id = ?", *req.EventSubcategoryCategoryID).
			Count(&parent).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check parent category")
		}
		if parent == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Event category not found")
		}
	}

	req.ApplyToModel(&sub)
	if req.EventSubcategoryName != nil {
		sub.EventSubcategorySlug = helper.Slugify(sub.EventSubcategoryName)
	}

	if err := ctl.DB.Save(&sub).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update subcategory")
	}
	return helper.JsonOK(c, &sub)
}

// Delete refuses while events still reference the subcategory.
func (ctl *EventSubcategoryController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subcategory id")
	}

	var inUse int64
	if err := ctl.DB.Table("events").Where("event_subcategory_id = ?", id).Count(&inUse).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check subcategory usage")
	}
	if inUse > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cannot delete a subcategory that still has events")
	}

	res := ctl.DB.Delete(&catModel.EventSubcategoryModel{}, "event_subcategory_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subcategory")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subcategory not found")
	}
	return helper.JsonNoContent(c)
}
