// file: internals/features/billing/payments/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kirimku_backend/internals/features/billing/payments/controller"
)

// PaymentPublicRoutes: the gateway callback; signature-authenticated.
func PaymentPublicRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewPaymentController(db)

	r.Post("/payments/midtrans/notification", h.MidtransWebhook)
}

// PaymentUserRoutes: clients submit and see their own payments.
func PaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewPaymentController(db)

	payments := r.Group("/payments")
	payments.Post("/", h.Create)
	payments.Get("/", h.List)
}

// PaymentAdminRoutes: corrections and removal.
func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewPaymentController(db)

	payments := r.Group("/payments")
	payments.Get("/", h.List)
	payments.Patch("/:id", h.Update)
	payments.Delete("/:id", h.Delete)
}
