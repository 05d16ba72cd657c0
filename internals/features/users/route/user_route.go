// file: internals/features/users/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kirimku_backend/internals/features/users/controller"
	"kirimku_backend/internals/middlewares"
)

// AuthPublicRoutes: register/login/refresh, rate-limited.
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), h.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), h.Login)
	auth.Post("/refresh", h.Refresh)
}

// AuthUserRoutes: endpoints that need a valid session.
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/logout", h.Logout)
	auth.Get("/me", h.Me)
}
