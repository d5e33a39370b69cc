package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	spCtl "ptaweb_backend/internals/features/sponsors/controller"
)

func SponsorPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := spCtl.NewSponsorController(db)

	grp := r.Group("/sponsors")
	grp.Get("/", ctl.GetAll)
	grp.Get("/levels", ctl.GetLevels)
	grp.Get("/assignments/by-schoolyear/:id", ctl.GetAssignmentsBySchoolYear)
}

func SponsorAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := spCtl.NewSponsorController(db)

	grp := r.Group("/sponsors")
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)

	levels := grp.Group("/levels")
	levels.Post("/", ctl.CreateLevel)
	levels.Put("/:id", ctl.UpdateLevel)
	levels.Delete("/:id", ctl.DeleteLevel)

	assignments := grp.Group("/assignments")
	assignments.Post("/", ctl.CreateAssignment)
	assignments.Put("/:id", ctl.UpdateAssignment)
	assignments.Delete("/:id", ctl.DeleteAssignment)
}
