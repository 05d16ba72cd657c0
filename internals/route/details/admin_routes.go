// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceRoute "kirimku_backend/internals/features/billing/invoices/route"
	paymentRoute "kirimku_backend/internals/features/billing/payments/route"
	clientRoute "kirimku_backend/internals/features/clients/route"
	masterdataRoute "kirimku_backend/internals/features/masterdata/route"
	ratesRoute "kirimku_backend/internals/features/rates/route"
	parcelRoute "kirimku_backend/internals/features/shipping/parcels/route"
	shipmentRoute "kirimku_backend/internals/features/shipping/shipments/route"
	warehouseRoute "kirimku_backend/internals/features/shipping/warehouses/route"
)

// AdminRoutes: staff/admin tier. Reference data, rate catalog and the full
// lifecycle of every business entity.
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	masterdataRoute.AdminMasterdataRoutes(r, db)
	ratesRoute.AdminRatesRoutes(r, db)
	clientRoute.ClientAdminRoutes(r, db)
	parcelRoute.ParcelAdminRoutes(r, db)
	shipmentRoute.ShipmentAdminRoutes(r, db)
	warehouseRoute.WarehouseAdminRoutes(r, db)
	invoiceRoute.InvoiceAdminRoutes(r, db)
	paymentRoute.PaymentAdminRoutes(r, db)
}
