// file: internals/features/shipping/warehouses/route/warehouse_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kirimku_backend/internals/features/shipping/warehouses/controller"
)

// WarehouseUserRoutes: read-only listing.
func WarehouseUserRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewWarehouseController(db)

	warehouses := r.Group("/warehouses")
	warehouses.Get("/", h.List)
}

// WarehouseAdminRoutes: CRUD plus staff assignment.
func WarehouseAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewWarehouseController(db)

	warehouses := r.Group("/warehouses")
	warehouses.Post("/", h.Create)
	warehouses.Get("/", h.List)
	warehouses.Patch("/:id", h.Update)
	warehouses.Delete("/:id", h.Delete)

	warehouses.Post("/staff", h.AddStaff)
	warehouses.Get("/:id/staff", h.ListStaff)
	warehouses.Delete("/staff/:id", h.RemoveStaff)
}
