// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"kirimku_backend/internals/constants"
	helper "kirimku_backend/internals/helpers"
)

// IsAdmin allows admin tokens only.
func IsAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helper.GetRoleFromToken(c) != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Admin access required")
		}
		return c.Next()
	}
}

// IsStaffOrAdmin allows warehouse staff and admin tokens.
func IsStaffOrAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch helper.GetRoleFromToken(c) {
		case constants.RoleAdmin, constants.RoleStaff:
			return c.Next()
		default:
			return fiber.NewError(fiber.StatusForbidden, "Staff access required")
		}
	}
}
