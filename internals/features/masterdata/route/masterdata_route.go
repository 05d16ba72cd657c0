package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	masterdataController "kirimku_backend/internals/features/masterdata/controller"
)

// AllMasterdataRoutes: read-only reference data, mounted on the public group.
func AllMasterdataRoutes(r fiber.Router, db *gorm.DB) {
	countryCtl := masterdataController.NewCountryController(db)
	typeCtl := masterdataController.NewShipmentTypeController(db)
	categoryCtl := masterdataController.NewCargoCategoryController(db)

	md := r.Group("/masterdata")
	md.Get("/countries", countryCtl.List)
	md.Get("/shipment-types", typeCtl.List)
	md.Get("/cargo-categories", categoryCtl.List)
}

// AdminMasterdataRoutes: catalog management, mounted on the admin group.
func AdminMasterdataRoutes(r fiber.Router, db *gorm.DB) {
	countryCtl := masterdataController.NewCountryController(db)
	typeCtl := masterdataController.NewShipmentTypeController(db)
	categoryCtl := masterdataController.NewCargoCategoryController(db)

	md := r.Group("/masterdata")

	countries := md.Group("/countries")
	countries.Post("/", countryCtl.Create)
	countries.Patch("/:id", countryCtl.Update)
	countries.Delete("/:id", countryCtl.Delete)

	types := md.Group("/shipment-types")
	types.Post("/", typeCtl.Create)
	types.Patch("/:id", typeCtl.Update)
	types.Delete("/:id", typeCtl.Delete)

	categories := md.Group("/cargo-categories")
	categories.Post("/", categoryCtl.Create)
	categories.Patch("/:id", categoryCtl.Update)
	categories.Delete("/:id", categoryCtl.Delete)
}
