// file: internals/features/clients/route/client_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kirimku_backend/internals/features/clients/controller"
)

// ClientUserRoutes: own-profile access.
func ClientUserRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewClientController(db)

	clients := r.Group("/clients")
	clients.Get("/me", h.Me)
}

// ClientAdminRoutes: full profile management.
func ClientAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewClientController(db)

	clients := r.Group("/clients")
	clients.Post("/", h.Create)
	clients.Get("/", h.List)
	clients.Get("/:id", h.GetByID)
	clients.Patch("/:id", h.Update)
	clients.Delete("/:id", h.Delete)
}
