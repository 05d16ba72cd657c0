// file: internals/route/details/public_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentRoute "kirimku_backend/internals/features/billing/payments/route"
	masterdataRoute "kirimku_backend/internals/features/masterdata/route"
	ratesRoute "kirimku_backend/internals/features/rates/route"
	userRoute "kirimku_backend/internals/features/users/route"
)

// PublicRoutes: everything reachable without a session.
func PublicRoutes(r fiber.Router, db *gorm.DB) {
	userRoute.AuthPublicRoutes(r, db)
	masterdataRoute.AllMasterdataRoutes(r, db)
	ratesRoute.AllRatesRoutes(r, db)
	paymentRoute.PaymentPublicRoutes(r, db)
}
