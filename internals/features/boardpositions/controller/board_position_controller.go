package controller

import (
	"errors"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ptaweb_backend/internals/features/boardpositions/dto"
	bpModel "ptaweb_backend/internals/features/boardpositions/model"
	helper "ptaweb_backend/internals/helpers"
)

var validate = validator.New()

type BoardPositionController struct{ DB *gorm.DB }

func NewBoardPositionController(db *gorm.DB) *BoardPositionController {
	return &BoardPositionController{DB: db}
}

// ===================== PUBLIC =====================

// GetBySchoolYear lists the filled positions for one school year.
func (ctl *BoardPositionController) GetBySchoolYear(c *fiber.Ctx) error {
	yearID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school year id")
	}

	var positions []bpModel.BoardPositionModel
	err = ctl.DB.Preload("Title").
		Where("board_position_school_year_id = ?", yearID).
		Find(&positions).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load board positions")
	}
	return helper.JsonOK(c, sortBySortOrder(positions))
}

// GetTitles lists the position catalog in sort order.
func (ctl *BoardPositionController) GetTitles(c *fiber.Ctx) error {
	var titles []bpModel.BoardPositionTitleModel
	err := ctl.DB.Order("board_position_title_sort_order ASC, board_position_title_name ASC").
		Find(&titles).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load board position titles")
	}
	return helper.JsonOK(c, titles)
}

// GetRequiredTitles lists only the titles the bylaws require to be filled.
func (ctl *BoardPositionController) GetRequiredTitles(c *fiber.Ctx) error {
	var titles []bpModel.BoardPositionTitleModel
	err := ctl.DB.Where("board_position_title_is_required = ?", true).
		Order("board_position_title_sort_order ASC, board_position_title_name ASC").
		Find(&titles).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load board position titles")
	}
	return helper.JsonOK(c, titles)
}

// GetAllBySchoolYear returns one slot per catalog title, with a placeholder
// for titles nobody holds this year.
func (ctl *BoardPositionController) GetAllBySchoolYear(c *fiber.Ctx) error {
	yearID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school year id")
	}

	var titles []bpModel.BoardPositionTitleModel
	err = ctl.DB.Order("board_position_title_sort_order ASC, board_position_title_name ASC").
		Find(&titles).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load board position titles")
	}

	var positions []bpModel.BoardPositionModel
	err = ctl.DB.Where("board_position_school_year_id = ?", yearID).Find(&positions).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load board positions")
	}

	byTitle := make(map[uuid.UUID]*bpModel.BoardPositionModel, len(positions))
	for i := range positions {
		byTitle[positions[i].BoardPositionTitleID] = &positions[i]
	}

	slots := make([]dto.BoardSlot, 0, len(titles))
	for _, t := range titles {
		pos := byTitle[t.BoardPositionTitleID]
		slots = append(slots, dto.BoardSlot{
			Title:    t,
			Position: pos,
			IsFilled: pos != nil && pos.BoardPositionUserID != nil,
		})
	}
	return helper.JsonOK(c, slots)
}

// ===================== ADMIN =====================

func (ctl *BoardPositionController) GetAll(c *fiber.Ctx) error {
	var positions []bpModel.BoardPositionModel
	err := ctl.DB.Preload("Title").Preload("SchoolYear").Find(&positions).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load board positions")
	}
	return helper.JsonOK(c, sortBySortOrder(positions))
}

func (ctl *BoardPositionController) Create(c *fiber.Ctx) error {
	var req dto.CreateBoardPositionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var titleCount int64
	if err := ctl.DB.Model(&bpModel.BoardPositionTitleModel{}).
		Where("board_position_title_id = ?", req.BoardPositionTitleID).
		Count(&titleCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check board position title")
	}
	if titleCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Board position title not found")
	}

	pos := req.ToModel()
	if err := ctl.DB.Create(pos).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "This title already has a position for that school year")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create board position")
	}
	return helper.JsonCreated(c, pos)
}

func (ctl *BoardPositionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid board position id")
	}

	var req dto.UpdateBoardPositionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var pos bpModel.BoardPositionModel
	if err := ctl.DB.First(&pos, "board_position_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Board position not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load board position")
	}

	req.ApplyToModel(&pos)
	if err := ctl.DB.Save(&pos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update board position")
	}
	return helper.JsonOK(c, &pos)
}

func (ctl *BoardPositionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid board position id")
	}

	res := ctl.DB.Delete(&bpModel.BoardPositionModel{}, "board_position_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete board position")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Board position not found")
	}
	return helper.JsonNoContent(c)
}

// AssignUser fills one title's seat for a school year, creating the position
// row when none exists. A nil user id vacates the seat instead.
func (ctl *BoardPositionController) AssignUser(c *fiber.Ctx) error {
	var req dto.AssignUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var pos bpModel.BoardPositionModel
	err := ctl.DB.Where("board_position_title_id = ? AND board_position_school_year_id = ?",
		req.BoardPositionTitleID, req.BoardPositionSchoolYearID).
		First(&pos).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		pos = bpModel.BoardPositionModel{
			BoardPositionTitleID:        req.BoardPositionTitleID,
			BoardPositionSchoolYearID:   req.BoardPositionSchoolYearID,
			BoardPositionUserID:         req.BoardPositionUserID,
			BoardPositionIsVotingMember: true,
		}
		if err := ctl.DB.Create(&pos).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assign board position")
		}
		return helper.JsonCreated(c, &pos)
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load board position")
	}

	pos.BoardPositionUserID = req.BoardPositionUserID
	if err := ctl.DB.Save(&pos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assign board position")
	}
	return helper.JsonOK(c, &pos)
}

// ===================== TITLES (ADMIN) =====================

func (ctl *BoardPositionController) CreateTitle(c *fiber.Ctx) error {
	var req dto.CreateBoardPositionTitleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	title := req.ToModel()
	if err := ctl.DB.Create(title).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create board position title")
	}
	return helper.JsonCreated(c, title)
}

func (ctl *BoardPositionController) UpdateTitle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid board position title id")
	}

	var req dto.UpdateBoardPositionTitleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var title bpModel.BoardPositionTitleModel
	if err := ctl.DB.First(&title, "board_position_title_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Board position title not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load board position title")
	}

	req.ApplyToModel(&title)
	if err := ctl.DB.Save(&title).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update board position title")
	}
	return helper.JsonOK(c, &title)
}

// DeleteTitle refuses while positions still reference the title.
func (ctl *BoardPositionController) DeleteTitle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid board position title id")
	}

	var inUse int64
	if err := ctl.DB.Model(&bpModel.BoardPositionModel{}).
		Where("board_position_title_id = ?", id).
		Count(&inUse).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check title usage")
	}
	if inUse > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cannot delete a title that still has assigned positions")
	}

	res := ctl.DB.Delete(&bpModel.BoardPositionTitleModel{}, "board_position_title_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete board position title")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Board position title not found")
	}
	return helper.JsonNoContent(c)
}

// sortBySortOrder orders positions by their title's sort order when titles
// are preloaded; rows without a title keep their relative order.
func sortBySortOrder(positions []bpModel.BoardPositionModel) []bpModel.BoardPositionModel {
	ordered := make([]bpModel.BoardPositionModel, len(positions))
	copy(ordered, positions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return sortKey(&ordered[i]) < sortKey(&ordered[j])
	})
	return ordered
}

func sortKey(p *bpModel.BoardPositionModel) int {
	if p.Title == nil {
		return 1 << 30
	}
	return p.Title.BoardPositionTitleSortOrder
}
