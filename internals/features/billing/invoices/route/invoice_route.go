// file: internals/features/billing/invoices/route/invoice_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kirimku_backend/internals/features/billing/invoices/controller"
)

// InvoiceUserRoutes: own billing dashboard plus invoice reads.
func InvoiceUserRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewInvoiceController(db)

	r.Get("/billing/me", h.MyBilling)

	invoices := r.Group("/invoices")
	invoices.Get("/", h.List)
	invoices.Get("/:id", h.GetByID)
}

// InvoiceAdminRoutes: full invoice management.
func InvoiceAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewInvoiceController(db)

	r.Get("/clients/:id/billing", h.ClientBilling)

	invoices := r.Group("/invoices")
	invoices.Post("/", h.Create)
	invoices.Get("/", h.List)
	invoices.Get("/:id", h.GetByID)
	invoices.Patch("/:id/status", h.UpdateStatus)
	invoices.Delete("/:id", h.Delete)
}
