// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kirimku_backend/internals/configs"
	"kirimku_backend/internals/middlewares/auth"
	details "kirimku_backend/internals/route/details"
)

// SetupRoutes mounts the three tiers:
//
//	/api/public  no session (rate quotes, registration, gateway webhook)
//	/api/u       any authenticated account
//	/api/a       staff and admin only
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	public := api.Group("/public")
	details.PublicRoutes(public, db)

	user := api.Group("/u", auth.AuthJWT(auth.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))
	details.UserRoutes(user, db)

	admin := api.Group("/a", auth.AuthJWT(auth.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}), auth.IsStaffOrAdmin())
	details.AdminRoutes(admin, db)
}
