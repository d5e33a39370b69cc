package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ptaweb_backend/internals/features/sponsors/dto"
	spModel "ptaweb_backend/internals/features/sponsors/model"
	helper "ptaweb_backend/internals/helpers"
)

var validate = validator.New()

type SponsorController struct{ DB *gorm.DB }

func NewSponsorController(db *gorm.DB) *SponsorController {
	return &SponsorController{DB: db}
}

// ===================== PUBLIC =====================

// GetAll lists active sponsors.
func (ctl *SponsorController) GetAll(c *fiber.Ctx) error {
	var sponsors []spModel.SponsorModel
	err := ctl.DB.Where("sponsor_is_active = ?", true).
		Order("sponsor_name ASC").Find(&sponsors).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load sponsors")
	}
	return helper.JsonOK(c, sponsors)
}

// GetLevels lists giving tiers, highest amount first.
func (ctl *SponsorController) GetLevels(c *fiber.Ctx) error {
	var levels []spModel.SponsorLevelModel
	err := ctl.DB.Order("sponsor_level_sort_order ASC, sponsor_level_amount DESC").
		Find(&levels).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load sponsor levels")
	}
	return helper.JsonOK(c, levels)
}

// GetAssignmentsBySchoolYear lists one year's sponsorships with sponsor and
// level attached.
func (ctl *SponsorController) GetAssignmentsBySchoolYear(c *fiber.Ctx) error {
	yearID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school year id")
	}

	var assignments []spModel.SponsorAssignmentModel
	err = ctl.DB.Preload("Sponsor").Preload("Level").
		Where("sponsor_assignment_school_year_id = ?", yearID).
		Find(&assignments).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load sponsor assignments")
	}
	return helper.JsonOK(c, assignments)
}

// ===================== ADMIN: SPONSORS =====================

func (ctl *SponsorController) Create(c *fiber.Ctx) error {
	var req dto.CreateSponsorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	sponsor := req.ToModel()
	if err := ctl.DB.Create(sponsor).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create sponsor")
	}
	return helper.JsonCreated(c, sponsor)
}

func (ctl *SponsorController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sponsor id")
	}

	var req dto.UpdateSponsorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var sponsor spModel.SponsorModel
	if err := ctl.DB.First(&sponsor, "sponsor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sponsor not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load sponsor")
	}

	req.ApplyToModel(&sponsor)
	if err := ctl.DB.Save(&sponsor).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update sponsor")
	}
	return helper.JsonOK(c, &sponsor)
}

// Delete removes the sponsor and its assignments.
func (ctl *SponsorController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sponsor id")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sponsor_assignment_sponsor_id = ?", id).
			Delete(&spModel.SponsorAssignmentModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&spModel.SponsorModel{}, "sponsor_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Sponsor not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete sponsor")
	}
	return helper.JsonNoContent(c)
}

// ===================== ADMIN: LEVELS =====================

func (ctl *SponsorController) CreateLevel(c *fiber.Ctx) error {
	var req dto.CreateSponsorLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	level := req.ToModel()
	if err := ctl.DB.Create(level).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create sponsor level")
	}
	return helper.JsonCreated(c, level)
}

func (ctl *SponsorController) UpdateLevel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sponsor level id")
	}

	var req dto.UpdateSponsorLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var level spModel.SponsorLevelModel
	if err := ctl.DB.First(&level, "sponsor_level_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sponsor level not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load sponsor level")
	}

	req.ApplyToModel(&level)
	if err := ctl.DB.Save(&level).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update sponsor level")
	}
	return helper.JsonOK(c, &level)
}

// DeleteLevel refuses while assignments still use the level.
func (ctl *SponsorController) DeleteLevel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sponsor level id")
	}

	var inUse int64
	if err := ctl.DB.Model(&spModel.SponsorAssignmentModel{}).
		Where("sponsor_assignment_level_id = ?", id).
		Count(&inUse).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check level usage")
	}
	if inUse > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cannot delete a sponsor level that is still assigned")
	}

	res := ctl.DB.Delete(&spModel.SponsorLevelModel{}, "sponsor_level_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete sponsor level")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sponsor level not found")
	}
	return helper.JsonNoContent(c)
}

// ===================== ADMIN: ASSIGNMENTS =====================

func (ctl *SponsorController) CreateAssignment(c *fiber.Ctx) error {
	var req dto.CreateSponsorAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var sponsorCount int64
	if err := ctl.DB.Model(&spModel.SponsorModel{}).
		Where("sponsor_id = ?", req.SponsorAssignmentSponsorID).
		Count(&sponsorCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check sponsor")
	}
	if sponsorCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sponsor not found")
	}

	var levelCount int64
	if err := ctl.DB.Model(&spModel.SponsorLevelModel{}).
		Where("sponsor_level_id = ?", req.SponsorAssignmentLevelID).
		Count(&levelCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check sponsor level")
	}
	if levelCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sponsor level not found")
	}

	assignment := req.ToModel()
	if err := ctl.DB.Create(assignment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create sponsor assignment")
	}
	return helper.JsonCreated(c, assignment)
}

func (ctl *SponsorController) UpdateAssignment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sponsor assignment id")
	}

	var req dto.UpdateSponsorAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var assignment spModel.SponsorAssignmentModel
	if err := ctl.DB.First(&assignment, "sponsor_assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sponsor assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load sponsor assignment")
	}

	req.ApplyToModel(&assignment)
	if err := ctl.DB.Save(&assignment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update sponsor assignment")
	}
	return helper.JsonOK(c, &assignment)
}

func (ctl *SponsorController) DeleteAssignment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sponsor assignment id")
	}

	res := ctl.DB.Delete(&spModel.SponsorAssignmentModel{}, "sponsor_assignment_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete sponsor assignment")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sponsor assignment not found")
	}
	return helper.JsonNoContent(c)
}
