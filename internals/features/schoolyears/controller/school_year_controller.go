package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ptaweb_backend/internals/constants"
	syDTO "ptaweb_backend/internals/features/schoolyears/dto"
	syModel "ptaweb_backend/internals/features/schoolyears/model"
	helper "ptaweb_backend/internals/helpers"
	helperAuth "ptaweb_backend/internals/helpers/auth"
)

type SchoolYearController struct{ DB *gorm.DB }

func NewSchoolYearController(db *gorm.DB) *SchoolYearController {
	return &SchoolYearController{DB: db}
}

var validateSchoolYear = validator.New()

// GET /api/schoolyears
// Hidden years are only returned to board members and admins.
func (h *SchoolYearController) List(c *fiber.Ctx) error {
	isBoard := helperAuth.HasRole(c, "Admin", "BoardMember")

	tx := h.DB.Model(&syModel.SchoolYearModel{})
	if !isBoard {
		tx = tx.Where("school_year_is_visible_to_public = ?", true)
	}

	var rows []syModel.SchoolYearModel
	if err := tx.Order("school_year_start_date DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonOK(c, rows)
}

// GET /api/schoolyears/current
func (h *SchoolYearController) GetCurrent(c *fiber.Ctx) error {
	now := time.Now()
	var row syModel.SchoolYearModel
	err := h.DB.
		Where("school_year_start_date <= ? AND school_year_end_date >= ?", now, now).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "no current school year found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonOK(c, row)
}

// GET /api/schoolyears/last
func (h *SchoolYearController) GetLast(c *fiber.Ctx) error {
	now := time.Now()
	var row syModel.SchoolYearModel
	err := h.DB.
		Where("school_year_end_date < ?", now).
		Order("school_year_start_date DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "no previous school year found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonOK(c, row)
}

// GET /api/schoolyears/next  (board only, mounted on the admin group)
func (h *SchoolYearController) GetNext(c *fiber.Ctx) error {
	if !helperAuth.HasRole(c, constants.RoleAdmin, constants.RoleBoardMember) {
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
	}

	now := time.Now()
	var row syModel.SchoolYearModel
	err := h.DB.
		Where("school_year_start_date > ?", now).
		Order("school_year_start_date ASC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "no future school year found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonOK(c, row)
}

// GET /api/schoolyears/:id
func (h *SchoolYearController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school year id")
	}

	var row syModel.SchoolYearModel
	if err := h.DB.First(&row, "school_year_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "school year not found")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	isBoard := helperAuth.HasRole(c, "Admin", "BoardMember")
	if !isBoard && !row.SchoolYearIsVisibleToPublic {
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
	}
	return helper.JsonOK(c, row)
}

// POST /api/schoolyears
func (h *SchoolYearController) Create(c *fiber.Ctx) error {
	var req syDTO.CreateSchoolYearRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validateSchoolYear.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	start, end := req.Dates()
	if !start.Before(end) {
		return helper.JsonError(c, fiber.StatusBadRequest, "start date must be before end date")
	}

	overlapping, err := h.overlapExists(start, end, uuid.Nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if overlapping {
		return helper.JsonError(c, fiber.StatusBadRequest, "date range overlaps with an existing school year")
	}

	isLast, isNext := syModel.CreationWindow(time.Now(), start, end)
	if !isLast && !isNext {
		return helper.JsonError(c, fiber.StatusBadRequest, "can only create last year or next year")
	}

	status := syModel.SchoolYearPrev
	if isNext {
		status = syModel.SchoolYearFuture
	}
	// Future years stay hidden from the public until the board flips them on.
	row := req.ToModel(status, !isNext)

	if err := h.DB.Create(row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonCreated(c, row)
}

// PUT /api/schoolyears/:id
func (h *SchoolYearController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school year id")
	}

	var row syModel.SchoolYearModel
	if err := h.DB.First(&row, "school_year_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "school year not found")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req syDTO.UpdateSchoolYearRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validateSchoolYear.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(&row)

	if !row.SchoolYearStartDate.Before(row.SchoolYearEndDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "start date must be before end date")
	}
	overlapping, err := h.overlapExists(row.SchoolYearStartDate, row.SchoolYearEndDate, id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if overlapping {
		return helper.JsonError(c, fiber.StatusBadRequest, "date range overlaps with an existing school year")
	}

	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonNoContent(c)
}

// DELETE /api/schoolyears/:id
func (h *SchoolYearController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school year id")
	}

	var row syModel.SchoolYearModel
	if err := h.DB.First(&row, "school_year_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "school year not found")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var eventCount int64
	if err := h.DB.Table("events").Where("event_school_year_id = ?", id).Count(&eventCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if eventCount > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "cannot delete school year that contains events")
	}

	if err := h.DB.Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonNoContent(c)
}

// POST /api/schoolyears/:id/transition
// The one place where a multi-step mutation is wrapped in an explicit
// transaction: creating the follow-on year must be all-or-nothing.
func (h *SchoolYearController) TransitionToNewYear(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school year id")
	}

	var current syModel.SchoolYearModel
	if err := h.DB.First(&current, "school_year_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "current school year not found")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req syDTO.TransitionToNewYearRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validateSchoolYear.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if !start.Before(end) {
		return helper.JsonError(c, fiber.StatusBadRequest, "start date must be before end date")
	}

	newYear := &syModel.SchoolYearModel{
		SchoolYearName:              req.NewYearName,
		SchoolYearStartDate:         start,
		SchoolYearEndDate:           end,
		SchoolYearStatus:            syModel.SchoolYearFuture,
		SchoolYearIsVisibleToPublic: false,
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(newYear).Error; err != nil {
			return err
		}
		current.SchoolYearStatus = syModel.SchoolYearWrapup
		return tx.Save(&current).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonCreated(c, newYear)
}

func (h *SchoolYearController) overlapExists(start, end time.Time, excludeID uuid.UUID) (bool, error) {
	q := h.DB.Model(&syModel.SchoolYearModel{}).
		Where("school_year_start_date <= ? AND school_year_end_date >= ?", end, start)
	if excludeID != uuid.Nil {
		q = q.Where("school_year_id <> ?", excludeID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
