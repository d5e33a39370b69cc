package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ptaweb_backend/internals/features/eventcats/dto"
	catModel "ptaweb_backend/internals/features/eventcats/model"
	helper "ptaweb_backend/internals/helpers"
)

var validate = validator.New()

type EventCategoryController struct{ DB *gorm.DB }

func NewEventCategoryController(db *gorm.DB) *EventCategoryController {
	return &EventCategoryController{DB: db}
}

// GetAll lists categories in display order.
func (ctl *EventCategoryController) GetAll(c *fiber.Ctx) error {
	var cats []catModel.EventCategoryModel
	err := ctl.DB.Order("event_category_display_order ASC, event_category_name ASC").Find(&cats).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event categories")
	}
	return helper.JsonOK(c, cats)
}

func (ctl *EventCategoryController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event category id")
	}

	var cat catModel.EventCategoryModel
	if err := ctl.DB.First(&cat, "event_category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event category")
	}
	return helper.JsonOK(c, cat)
}

// Create derives the slug from the name; names that collide on slug are
// rejected by the unique index.
func (ctl *EventCategoryController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	cat := req.ToModel()
	cat.EventCategorySlug = helper.Slugify(cat.EventCategoryName)

	if err := ctl.DB.Create(cat).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "An event category with this name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event category")
	}
	return helper.JsonCreated(c, cat)
}

func (ctl *EventCategoryController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event category id")
	}

	var req dto.UpdateEventCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var cat catModel.EventCategoryModel
	if err := ctl.DB.First(&cat, "event_category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event category")
	}

	req.ApplyToModel(&cat)
	if req.EventCategoryName != nil {
		cat.EventCategorySlug = helper.Slugify(cat.EventCategoryName)
	}

	if err := ctl.DB.Save(&cat).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "An event category with this name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event category")
	}
	return helper.JsonOK(c, &cat)
}

// Delete refuses while events still reference the category.
func (ctl *EventCategoryController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event category id")
	}

	var inUse int64
	if err := ctl.DB.Table("events").Where("event_category_id = ?", id).Count(&inUse).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check category usage")
	}
	if inUse > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cannot delete a category that still has events")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_subcategory_category_id = ?", id).
			Delete(&catModel.EventSubcategoryModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&catModel.EventCategoryModel{}, "event_category_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Event category not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event category")
	}
	return helper.JsonNoContent(c)
}

// MoveUp swaps display order with the category just above.
func (ctl *EventCategoryController) MoveUp(c *fiber.Ctx) error {
	return ctl.move(c, true)
}

// MoveDown swaps display order with the category just below.
func (ctl *EventCategoryController) MoveDown(c *fiber.Ctx) error {
	return ctl.move(c, false)
}

func (ctl *EventCategoryController) move(c *fiber.Ctx, up bool) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event category id")
	}

	var cat catModel.EventCategoryModel
	if err := ctl.DB.First(&cat, "event_category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event category")
	}

	// Find the nearest neighbor in the requested direction.
	q := ctl.DB.Model(&catModel.EventCategoryModel{}).Where("event_category_id <> ?", cat.EventCategoryID)
	if up {
		q = q.Where("event_category_display_order < ?", cat.EventCategoryDisplayOrder).
			Order("event_category_display_order DESC")
	} else {
		q = q.Where("event_category_display_order > ?", cat.EventCategoryDisplayOrder).
			Order("event_category_display_order ASC")
	}

	var neighbor catModel.EventCategoryModel
	if err := q.First(&neighbor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Already at the edge; nothing to swap.
			return helper.JsonOK(c, &cat)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reorder categories")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		mine, theirs := cat.EventCategoryDisplayOrder, neighbor.EventCategoryDisplayOrder
		if err := tx.Model(&catModel.EventCategoryModel{}).
			Where("event_category_id = ?", cat.EventCategoryID).
			Update("event_category_display_order", theirs).Error; err != nil {
			return err
		}
		if err := tx.Model(&catModel.EventCategoryModel{}).
			Where("event_category_id = ?", neighbor.EventCategoryID).
			Update("event_category_display_order", mine).Error; err != nil {
			return err
		}
		cat.EventCategoryDisplayOrder = theirs
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reorder categories")
	}
	return helper.JsonOK(c, &cat)
}
