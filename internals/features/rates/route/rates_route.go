package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ratesController "kirimku_backend/internals/features/rates/controller"
)

// AllRatesRoutes: quote calculation, open to anyone with the public group.
func AllRatesRoutes(r fiber.Router, db *gorm.DB) {
	calc := ratesController.NewRateCalculatorController(db)

	rates := r.Group("/rates")
	rates.Post("/calculate", calc.Calculate)
}

// AdminRatesRoutes: catalog management.
func AdminRatesRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ratesController.NewShippingRateController(db)

	rates := r.Group("/rates")
	rates.Get("/", ctl.List)
	rates.Get("/:id", ctl.GetByID)
	rates.Post("/", ctl.Create)
	rates.Patch("/:id", ctl.Update)
	rates.Delete("/:id", ctl.Delete)
}
