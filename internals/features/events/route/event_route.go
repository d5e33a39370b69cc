package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ptaweb_backend/internals/constants"
	evCtl "ptaweb_backend/internals/features/events/controller"
	middleware "ptaweb_backend/internals/middlewares/auth"
)

// Public routes. Anonymous callers only see Active events; the controllers
// widen results for board tokens.
func EventPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := evCtl.NewEventController(db)

	grp := r.Group("/events")
	grp.Get("/", ctl.GetAll)
	grp.Get("/upcoming", ctl.GetUpcoming)
	grp.Get("/by-category/:slug", ctl.GetByCategorySlug)
	grp.Get("/:id", ctl.GetByID)
}

// Routes any authenticated user may reach. The controllers decide per
// request: the category's editing permission gates create, and update is
// open to board roles and the event's own coordinator.
func EventManageRoutes(r fiber.Router, db *gorm.DB) {
	ctl := evCtl.NewEventController(db)
	dayCtl := evCtl.NewEventDayController(db)

	grp := r.Group("/events")
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)

	days := grp.Group("/:eventId/days", middleware.RequireRoles(constants.CoordinatorAndAbove...))
	days.Get("/", dayCtl.GetAll)
	days.Get("/:dayId", dayCtl.GetByID)
	days.Post("/", dayCtl.Create)
	days.Put("/:dayId", dayCtl.Update)
	days.Delete("/:dayId", dayCtl.Delete)
	days.Post("/:dayId/copy", dayCtl.CopyToEvent)
}

// Admin/board routes; the group carries auth + board role middleware.
func EventAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := evCtl.NewEventController(db)

	grp := r.Group("/events")
	grp.Get("/dashboard-summary/:schoolYearId", ctl.DashboardSummary)
	grp.Delete("/:id", ctl.Delete)
	grp.Post("/:id/approve", ctl.Approve)
	grp.Post("/:id/copy", ctl.Copy)
}
