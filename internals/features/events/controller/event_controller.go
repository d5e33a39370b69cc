package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ptaweb_backend/internals/constants"
	"ptaweb_backend/internals/features/events/dto"
	evModel "ptaweb_backend/internals/features/events/model"
	"ptaweb_backend/internals/features/events/service"
	catService "ptaweb_backend/internals/features/eventcats/service"
	syModel "ptaweb_backend/internals/features/schoolyears/model"
	helper "ptaweb_backend/internals/helpers"
	helperAuth "ptaweb_backend/internals/helpers/auth"
)

var validate = validator.New()

type EventController struct {
	DB      *gorm.DB
	Service *service.EventService
	Perms   *catService.PermissionService
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{
		DB:      db,
		Service: service.NewEventService(db),
		Perms:   catService.NewPermissionService(db),
	}
}

func (ctl *EventController) isBoardOrAdmin(c *fiber.Ctx) bool {
	return helperAuth.HasRole(c, constants.RoleAdmin, constants.RoleBoardMember)
}

func (ctl *EventController) actor(c *fiber.Ctx) string {
	id, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return evModel.AuditActor("", "")
	}
	return evModel.AuditActor(id.String(), helperAuth.GetDisplayNameFromToken(c))
}

// canViewInternals: admins, board members and the assigned coordinator see
// internal notes and non-Active events.
func (ctl *EventController) canViewInternals(c *fiber.Ctx, ev *evModel.EventModel) bool {
	if ctl.isBoardOrAdmin(c) {
		return true
	}
	uid, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return false
	}
	return ev.EventCoordinatorID != nil && *ev.EventCoordinatorID == uid
}

func redactInternals(ev *evModel.EventModel) {
	ev.EventNotes = ""
	ev.EventApprovalNotes = ""
}

// ===================== PUBLIC =====================

// GetAll lists events. Anonymous and regular users only see Active ones;
// board members and admins see every status. ?school_year_id= narrows the
// list to one year.
func (ctl *EventController) GetAll(c *fiber.Ctx) error {
	q := ctl.DB.Model(&evModel.EventModel{}).Order("event_date ASC")

	if yearID := c.Query("school_year_id"); yearID != "" {
		id, err := uuid.Parse(yearID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school year id")
		}
		q = q.Where("event_school_year_id = ?", id)
	}
	if !ctl.isBoardOrAdmin(c) {
		q = q.Where("event_status = ?", evModel.StatusActive)
	}

	var events []evModel.EventModel
	if err := q.Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}
	if !ctl.isBoardOrAdmin(c) {
		for i := range events {
			if !ctl.canViewInternals(c, &events[i]) {
				redactInternals(&events[i])
			}
		}
	}
	return helper.JsonOK(c, events)
}

// GetUpcoming returns the next five Active events within 30 days.
func (ctl *EventController) GetUpcoming(c *fiber.Ctx) error {
	now := time.Now().UTC()
	var events []evModel.EventModel
	err := ctl.DB.
		Where("event_status = ?", evModel.StatusActive).
		Where("event_date >= ? AND event_date <= ?", now, now.AddDate(0, 0, 30)).
		Order("event_date ASC").
		Limit(5).
		Find(&events).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}
	for i := range events {
		if !ctl.canViewInternals(c, &events[i]) {
			redactInternals(&events[i])
		}
	}
	return helper.JsonOK(c, events)
}

// GetByCategorySlug lists a category's events by the category slug.
func (ctl *EventController) GetByCategorySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var catIDs []uuid.UUID
	err := ctl.DB.Table("event_categories").
		Where("event_category_slug = ?", slug).
		Pluck("event_category_id", &catIDs).Error
	if err != nil || len(catIDs) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event category not found")
	}

	q := ctl.DB.Where("event_category_id = ?", catIDs[0]).Order("event_date ASC")
	if !ctl.isBoardOrAdmin(c) {
		q = q.Where("event_status = ?", evModel.StatusActive)
	}

	var events []evModel.EventModel
	if err := q.Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}
	for i := range events {
		if !ctl.canViewInternals(c, &events[i]) {
			redactInternals(&events[i])
		}
	}
	return helper.JsonOK(c, events)
}

// GetByID returns one event with its days and school year. Non-Active events
// are only visible to authorized users; everyone else gets internals
// redacted.
func (ctl *EventController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var ev evModel.EventModel
	err = ctl.DB.Preload("EventDays", func(db *gorm.DB) *gorm.DB {
		return db.Order("event_day_number ASC")
	}).Preload("SchoolYear").First(&ev, "event_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event")
	}

	authorized := ctl.canViewInternals(c, &ev)
	if ev.EventStatus != evModel.StatusActive && !authorized {
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
	}
	if !authorized {
		redactInternals(&ev)
	}
	return helper.JsonOK(c, ev)
}

// ===================== ADMIN =====================

// Create validates the category's editing permission and coordinator rule,
// then inserts with a year-unique slug.
func (ctl *EventController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	cat, err := ctl.Perms.LoadCategory(req.EventCategoryID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event category not found")
	}
	if !catService.CanEditCategory(cat.EventCategoryEditingPermission, helperAuth.GetRolesFromToken(c)) {
		return helper.JsonError(c, fiber.StatusForbidden, "You do not have permission to manage events in this category")
	}
	if err := catService.ValidateCoordinator(cat.EventCategoryCoordinatorRequirement, req.EventCoordinatorID); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var year syModel.SchoolYearModel
	if err := ctl.DB.First(&year, "school_year_id = ?", req.EventSchoolYearID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "School year not found")
	}

	ev := req.ToModel()
	ev.StampCreate(ctl.actor(c))
	if err := ctl.Service.CreateWithUniqueSlug(ev, &year); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	return helper.JsonCreated(c, ev)
}

// Update enforces the status transition table, the category permission, the
// coordinator requirement, and coordinator ownership. Only admins or board
// members may hand the event to a different coordinator.
func (ctl *EventController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var ev evModel.EventModel
	if err := ctl.DB.First(&ev, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event")
	}

	if !ctl.canViewInternals(c, &ev) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the event coordinator or a board member can edit this event")
	}

	catID := ev.EventCategoryID
	if req.EventCategoryID != nil {
		catID = *req.EventCategoryID
	}
	cat, err := ctl.Perms.LoadCategory(catID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event category not found")
	}
	if !catService.CanEditCategory(cat.EventCategoryEditingPermission, helperAuth.GetRolesFromToken(c)) {
		return helper.JsonError(c, fiber.StatusForbidden, "You do not have permission to manage events in this category")
	}

	if req.EventStatus != nil {
		if !req.EventStatus.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown event status")
		}
		if !evModel.CanTransition(ev.EventStatus, *req.EventStatus) {
			return helper.JsonError(c, fiber.StatusBadRequest,
				"Cannot change status from "+ev.EventStatus.String()+" to "+req.EventStatus.String())
		}
	}

	reassigning := req.EventCoordinatorID != nil &&
		(ev.EventCoordinatorID == nil || *req.EventCoordinatorID != *ev.EventCoordinatorID)
	if reassigning && !ctl.isBoardOrAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only a board member can reassign the event coordinator")
	}

	coordinator := ev.EventCoordinatorID
	if req.EventCoordinatorID != nil {
		coordinator = req.EventCoordinatorID
	}
	if err := catService.ValidateCoordinator(cat.EventCategoryCoordinatorRequirement, coordinator); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	req.ApplyToModel(&ev)
	ev.StampUpdate(ctl.actor(c), req.ChangeNotes)

	if err := ctl.DB.Save(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	return helper.JsonOK(c, &ev)
}

// Delete removes the event and its days.
func (ctl *EventController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var ev evModel.EventModel
	if err := ctl.DB.First(&ev, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_day_event_id = ?", id).Delete(&evModel.EventDayModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ev).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	return helper.JsonNoContent(c)
}

// Approve moves a submitted event to Active.
func (ctl *EventController) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req dto.ApproveEventRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}
	}

	approver, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	ev, err := ctl.Service.Approve(id, approver, req.ApprovalNotes)
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	case errors.Is(err, service.ErrNotSubmitted):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to approve event")
	}
	return helper.JsonOK(c, ev)
}

// Copy clones the event into another school year.
func (ctl *EventController) Copy(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req dto.CopyEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	clone, err := ctl.Service.Copy(service.CopyRequest{
		SourceEventID:      id,
		TargetSchoolYearID: req.TargetSchoolYearID,
		NewTitle:           req.NewTitle,
		NewStartDate:       req.NewStartDate,
		NewCoordinatorID:   req.NewCoordinatorID,
		CopyEventDays:      req.CopyEventDays,
	}, ctl.actor(c))
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	case errors.Is(err, service.ErrSchoolYearNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Target school year not found")
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to copy event")
	}
	return helper.JsonCreated(c, clone)
}

// DashboardSummary aggregates one school year's events for the admin
// dashboard.
func (ctl *EventController) DashboardSummary(c *fiber.Ctx) error {
	yearID, err := uuid.Parse(c.Params("schoolYearId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school year id")
	}

	sum, err := ctl.Service.Summarize(yearID, time.Now().UTC())
	switch {
	case errors.Is(err, service.ErrSchoolYearNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "School year not found")
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build dashboard summary")
	}
	return helper.JsonOK(c, sum)
}
