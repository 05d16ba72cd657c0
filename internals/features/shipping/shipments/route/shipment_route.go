// file: internals/features/shipping/shipments/route/shipment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kirimku_backend/internals/features/shipping/shipments/controller"
)

// ShipmentUserRoutes: read-only tracking for authenticated users.
func ShipmentUserRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewShipmentController(db)

	shipments := r.Group("/shipments")
	shipments.Get("/", h.List)
	shipments.Get("/:id", h.GetByID)
}

// ShipmentAdminRoutes: full lifecycle plus tracking appends.
func ShipmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewShipmentController(db)

	shipments := r.Group("/shipments")
	shipments.Post("/", h.Create)
	shipments.Get("/", h.List)
	shipments.Get("/:id", h.GetByID)
	shipments.Patch("/:id", h.Update)
	shipments.Delete("/:id", h.Delete)
	shipments.Post("/:id/tracking", h.AppendTracking)
}
