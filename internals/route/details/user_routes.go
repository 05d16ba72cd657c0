// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceRoute "kirimku_backend/internals/features/billing/invoices/route"
	paymentRoute "kirimku_backend/internals/features/billing/payments/route"
	clientRoute "kirimku_backend/internals/features/clients/route"
	parcelRoute "kirimku_backend/internals/features/shipping/parcels/route"
	shipmentRoute "kirimku_backend/internals/features/shipping/shipments/route"
	warehouseRoute "kirimku_backend/internals/features/shipping/warehouses/route"
	userRoute "kirimku_backend/internals/features/users/route"
)

// UserRoutes: any authenticated account.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	userRoute.AuthUserRoutes(r, db)
	clientRoute.ClientUserRoutes(r, db)
	parcelRoute.ParcelUserRoutes(r, db)
	shipmentRoute.ShipmentUserRoutes(r, db)
	warehouseRoute.WarehouseUserRoutes(r, db)
	invoiceRoute.InvoiceUserRoutes(r, db)
	paymentRoute.PaymentUserRoutes(r, db)
}
