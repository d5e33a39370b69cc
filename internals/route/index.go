package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ptaweb_backend/internals/configs"
	"ptaweb_backend/internals/constants"
	bpRoute "ptaweb_backend/internals/features/boardpositions/route"
	catRoute "ptaweb_backend/internals/features/eventcats/route"
	evRoute "ptaweb_backend/internals/features/events/route"
	syRoute "ptaweb_backend/internals/features/schoolyears/route"
	spRoute "ptaweb_backend/internals/features/sponsors/route"
	userRoute "ptaweb_backend/internals/features/users/route"
	middleware "ptaweb_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the three API groups. The public group carries optional
// auth so board tokens widen results on the same endpoints. The manage group
// only requires a valid token; its controllers enforce category editing
// permissions and coordinator ownership themselves. The admin group requires
// a board role up front.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	opts := middleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}

	public := app.Group("/api", middleware.OptionalAuthJWT(opts))
	evRoute.EventPublicRoutes(public, db)
	syRoute.SchoolYearPublicRoutes(public, db)
	catRoute.EventCategoryPublicRoutes(public, db)
	bpRoute.BoardPositionPublicRoutes(public, db)
	spRoute.SponsorPublicRoutes(public, db)

	manage := app.Group("/api",
		middleware.AuthJWT(opts),
		middleware.RequireRoles(constants.AllRoles...),
	)
	evRoute.EventManageRoutes(manage, db)

	admin := app.Group("/api",
		middleware.AuthJWT(opts),
		middleware.RequireRoles(constants.BoardAndAdmin...),
	)
	evRoute.EventAdminRoutes(admin, db)
	syRoute.SchoolYearAdminRoutes(admin, db)
	catRoute.EventCategoryAdminRoutes(admin, db)
	bpRoute.BoardPositionAdminRoutes(admin, db)
	spRoute.SponsorAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
}
