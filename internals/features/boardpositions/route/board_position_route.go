package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bpCtl "ptaweb_backend/internals/features/boardpositions/controller"
)

func BoardPositionPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := bpCtl.NewBoardPositionController(db)

	grp := r.Group("/boardpositions")
	grp.Get("/titles", ctl.GetTitles)
	grp.Get("/required-titles", ctl.GetRequiredTitles)
	grp.Get("/by-schoolyear/:id", ctl.GetBySchoolYear)
	grp.Get("/all-by-schoolyear/:id", ctl.GetAllBySchoolYear)
}

func BoardPositionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := bpCtl.NewBoardPositionController(db)

	grp := r.Group("/boardpositions")
	grp.Get("/", ctl.GetAll)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
	grp.Post("/assign", ctl.AssignUser)

	titles := grp.Group("/titles")
	titles.Post("/", ctl.CreateTitle)
	titles.Put("/:id", ctl.UpdateTitle)
	titles.Delete("/:id", ctl.DeleteTitle)
}
