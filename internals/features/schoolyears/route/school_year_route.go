package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	syCtl "ptaweb_backend/internals/features/schoolyears/controller"
)

// Public routes. The controller itself widens results for board tokens.
func SchoolYearPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := syCtl.NewSchoolYearController(db)

	grp := r.Group("/schoolyears")
	grp.Get("/", ctl.List)
	grp.Get("/current", ctl.GetCurrent)
	grp.Get("/last", ctl.GetLast)
	// Registered before /:id so the literal path wins; the handler itself
	// requires a board role.
	grp.Get("/next", ctl.GetNext)
	grp.Get("/:id", ctl.GetByID)
}

// Admin/board routes; the group carries auth + role middleware.
func SchoolYearAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := syCtl.NewSchoolYearController(db)

	grp := r.Group("/schoolyears")
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
	grp.Post("/:id/transition", ctl.TransitionToNewYear)
}
