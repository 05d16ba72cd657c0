package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "kirimku_backend/internals/features/rates/dto"
	service "kirimku_backend/internals/features/rates/service"
	helper "kirimku_backend/internals/helpers"
)

type RateCalculatorController struct {
	DB       *gorm.DB
	Resolver *service.RateResolver
}

func NewRateCalculatorController(db *gorm.DB) *RateCalculatorController {
	return &RateCalculatorController{DB: db, Resolver: service.NewRateResolver(db)}
}

/* ======================= CALCULATE ======================= */
// POST /rates/calculate
func (h *RateCalculatorController) Calculate(c *fiber.Ctx) error {
	var req dto.CalculateRateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	result, err := h.Resolver.Calculate(c.UserContext(), req)
	if err != nil {
		var missing *service.MissingFieldError
		switch {
		case errors.As(err, &missing):
			return helper.JsonValidationError(c, "Missing required field", map[string][]string{
				missing.Field: {"required"},
			})
		case errors.Is(err, service.ErrRateNotFound):
			return helper.JsonError(c, fiber.StatusNotFound,
				"No shipping rate is available for this route. Please contact support for a custom quote.")
		default:
			log.Printf("[ERROR] rate calculate: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to calculate rate")
		}
	}

	return helper.JsonOK(c, "Rate calculated", result)
}
