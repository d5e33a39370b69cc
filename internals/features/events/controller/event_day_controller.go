package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ptaweb_backend/internals/constants"
	"ptaweb_backend/internals/features/events/dto"
	evModel "ptaweb_backend/internals/features/events/model"
	helper "ptaweb_backend/internals/helpers"
	helperAuth "ptaweb_backend/internals/helpers/auth"
)

type EventDayController struct{ DB *gorm.DB }

func NewEventDayController(db *gorm.DB) *EventDayController {
	return &EventDayController{DB: db}
}

func (ctl *EventDayController) loadEvent(c *fiber.Ctx) (*evModel.EventModel, error) {
	id, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	var ev evModel.EventModel
	if err := ctl.DB.First(&ev, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event")
	}
	return &ev, nil
}

// canManage mirrors the event edit rule: board roles always, otherwise the
// assigned coordinator.
func (ctl *EventDayController) canManage(c *fiber.Ctx, ev *evModel.EventModel) bool {
	if helperAuth.HasRole(c, constants.RoleAdmin, constants.RoleBoardMember) {
		return true
	}
	uid, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return false
	}
	return ev.EventCoordinatorID != nil && *ev.EventCoordinatorID == uid
}

// loadDay resolves :dayId scoped to the event from the path, so day ids from
// other events read as not found.
func (ctl *EventDayController) loadDay(c *fiber.Ctx, eventID uuid.UUID) (*evModel.EventDayModel, error) {
	id, err := uuid.Parse(c.Params("dayId"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid event day id")
	}
	var day evModel.EventDayModel
	if err := ctl.DB.First(&day, "event_day_id = ? AND event_day_event_id = ?", id, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Event day not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event day")
	}
	return &day, nil
}

// GetAll lists an event's days in day-number order.
func (ctl *EventDayController) GetAll(c *fiber.Ctx) error {
	ev, err := ctl.loadEvent(c)
	if ev == nil {
		return err
	}
	if !ctl.canManage(c, ev) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the event coordinator or a board member can manage event days")
	}

	var days []evModel.EventDayModel
	if err := ctl.DB.Where("event_day_event_id = ?", ev.EventID).
		Order("event_day_number ASC").Find(&days).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event days")
	}
	return helper.JsonOK(c, days)
}

func (ctl *EventDayController) GetByID(c *fiber.Ctx) error {
	ev, err := ctl.loadEvent(c)
	if ev == nil {
		return err
	}
	if !ctl.canManage(c, ev) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the event coordinator or a board member can manage event days")
	}

	day, err := ctl.loadDay(c, ev.EventID)
	if day == nil {
		return err
	}
	return helper.JsonOK(c, day)
}

// Create adds one day. Day number 0 appends after the current highest; an
// explicit number must not collide with an existing day.
func (ctl *EventDayController) Create(c *fiber.Ctx) error {
	ev, err := ctl.loadEvent(c)
	if ev == nil {
		return err
	}
	if !ctl.canManage(c, ev) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the event coordinator or a board member can manage event days")
	}

	var req dto.CreateEventDayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.EventDayNumber == 0 {
		var maxNumber int
		row := ctl.DB.Model(&evModel.EventDayModel{}).
			Where("event_day_event_id = ?", ev.EventID).
			Select("COALESCE(MAX(event_day_number), 0)").
			Row()
		if err := row.Scan(&maxNumber); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assign day number")
		}
		req.EventDayNumber = maxNumber + 1
	} else {
		var count int64
		err := ctl.DB.Model(&evModel.EventDayModel{}).
			Where("event_day_event_id = ? AND event_day_number = ?", ev.EventID, req.EventDayNumber).
			Count(&count).Error
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check day number")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Day number is already used for this event")
		}
	}

	day := req.ToModel(ev.EventID)
	if err := ctl.DB.Create(day).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Day number is already used for this event")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event day")
	}
	return helper.JsonCreated(c, day)
}

func (ctl *EventDayController) Update(c *fiber.Ctx) error {
	ev, err := ctl.loadEvent(c)
	if ev == nil {
		return err
	}
	if !ctl.canManage(c, ev) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the event coordinator or a board member can manage event days")
	}

	var req dto.UpdateEventDayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	day, err := ctl.loadDay(c, ev.EventID)
	if day == nil {
		return err
	}

	if req.EventDayNumber != nil && *req.EventDayNumber != day.EventDayNumber {
		var count int64
		err := ctl.DB.Model(&evModel.EventDayModel{}).
			Where("event_day_event_id = ? AND event_day_number = ? AND event_day_id <> ?",
				day.EventDayEventID, *req.EventDayNumber, day.EventDayID).
			Count(&count).Error
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check day number")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Day number is already used for this event")
		}
	}

	req.ApplyToModel(day)
	if err := ctl.DB.Save(day).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event day")
	}
	return helper.JsonOK(c, day)
}

func (ctl *EventDayController) Delete(c *fiber.Ctx) error {
	ev, err := ctl.loadEvent(c)
	if ev == nil {
		return err
	}
	if !ctl.canManage(c, ev) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the event coordinator or a board member can manage event days")
	}

	id, err := uuid.Parse(c.Params("dayId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event day id")
	}

	res := ctl.DB.Delete(&evModel.EventDayModel{}, "event_day_id = ? AND event_day_event_id = ?", id, ev.EventID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event day")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event day not found")
	}
	return helper.JsonNoContent(c)
}

// CopyToEvent clones one day onto another event. The clone's date defaults
// to one year after the source day; the day number defaults to appending
// after the target's highest.
func (ctl *EventDayController) CopyToEvent(c *fiber.Ctx) error {
	ev, err := ctl.loadEvent(c)
	if ev == nil {
		return err
	}
	if !ctl.canManage(c, ev) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the event coordinator or a board member can manage event days")
	}

	var req dto.CopyEventDayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	src, err := ctl.loadDay(c, ev.EventID)
	if src == nil {
		return err
	}

	var target evModel.EventModel
	if err := ctl.DB.First(&target, "event_id = ?", req.TargetEventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Target event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load target event")
	}
	if !ctl.canManage(c, &target) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the event coordinator or a board member can manage event days")
	}

	clone := *src
	clone.EventDayID = uuid.Nil
	clone.EventDayEventID = target.EventID
	if req.NewDate != nil {
		clone.EventDayDate = *req.NewDate
	} else {
		clone.EventDayDate = src.EventDayDate.AddDate(1, 0, 0)
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if req.NewDayNumber != nil {
			var count int64
			err := tx.Model(&evModel.EventDayModel{}).
				Where("event_day_event_id = ? AND event_day_number = ?", target.EventID, *req.NewDayNumber).
				Count(&count).Error
			if err != nil {
				return err
			}
			if count > 0 {
				return errDayNumberTaken
			}
			clone.EventDayNumber = *req.NewDayNumber
			return tx.Create(&clone).Error
		}

		var maxNumber int
		row := tx.Model(&evModel.EventDayModel{}).
			Where("event_day_event_id = ?", target.EventID).
			Select("COALESCE(MAX(event_day_number), 0)").
			Row()
		if err := row.Scan(&maxNumber); err != nil {
			return err
		}
		clone.EventDayNumber = maxNumber + 1
		return tx.Create(&clone).Error
	})
	if errors.Is(err, errDayNumberTaken) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Day number is already used for this event")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to copy event day")
	}
	return helper.JsonCreated(c, &clone)
}

var errDayNumberTaken = errors.New("day number taken")
