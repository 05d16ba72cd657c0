// file: internals/features/shipping/parcels/route/parcel_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kirimku_backend/internals/features/shipping/parcels/controller"
)

// ParcelUserRoutes: read access for authenticated users.
func ParcelUserRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewParcelController(db)

	parcels := r.Group("/parcels")
	parcels.Get("/", h.List)
	parcels.Get("/:id", h.GetByID)
}

// ParcelAdminRoutes: full lifecycle for staff and admins.
func ParcelAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewParcelController(db)

	parcels := r.Group("/parcels")
	parcels.Post("/", h.Create)
	parcels.Get("/", h.List)
	parcels.Get("/:id", h.GetByID)
	parcels.Patch("/:id", h.Update)
	parcels.Delete("/:id", h.Delete)
}
