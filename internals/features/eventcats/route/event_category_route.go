package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catCtl "ptaweb_backend/internals/features/eventcats/controller"
)

func EventCategoryPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := catCtl.NewEventCategoryController(db)
	subCtl := catCtl.NewEventSubcategoryController(db)

	cat := r.Group("/eventcat")
	cat.Get("/", ctl.GetAll)
	cat.Get("/:id", ctl.GetByID)

	sub := r.Group("/eventcatsub")
	sub.Get("/", subCtl.GetAll)
	sub.Get("/by-category/:id", subCtl.GetByCategory)
	sub.Get("/:id", subCtl.GetByID)
}

func EventCategoryAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := catCtl.NewEventCategoryController(db)
	subCtl := catCtl.NewEventSubcategoryController(db)

	cat := r.Group("/eventcat")
	cat.Post("/", ctl.Create)
	cat.Put("/:id", ctl.Update)
	cat.Delete("/:id", ctl.Delete)
	cat.Post("/:id/move-up", ctl.MoveUp)
	cat.Post("/:id/move-down", ctl.MoveDown)

	sub := r.Group("/eventcatsub")
	sub.Post("/", subCtl.Create)
	sub.Put("/:id", subCtl.Update)
	sub.Delete("/:id", subCtl.Delete)
}
