package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ptaweb_backend/internals/constants"
	userCtl "ptaweb_backend/internals/features/users/controller"
	middleware "ptaweb_backend/internals/middlewares/auth"
)

// UserAdminRoutes mounts user management. Full records and creation are
// admin-only; the public projection is readable by any board member.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewUserController(db)

	grp := r.Group("/users")
	grp.Get("/public", ctl.GetPublic)
	grp.Get("/", middleware.RequireRoles(constants.AdminOnly...), ctl.GetAll)
	grp.Get("/:id", middleware.RequireRoles(constants.AdminOnly...), ctl.GetByID)
	grp.Post("/", middleware.RequireRoles(constants.AdminOnly...), ctl.Create)
	grp.Put("/:id", ctl.Update)
}
