package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kirimku_backend/internals/features/billing/invoices/dto"
	"kirimku_backend/internals/features/billing/invoices/model"
	paymentModel "kirimku_backend/internals/features/billing/payments/model"
	parcelModel "kirimku_backend/internals/features/shipping/parcels/model"
)

const billingTablesDDL = `
CREATE TABLE invoices (
	invoice_id TEXT PRIMARY KEY,
	invoice_number TEXT NOT NULL UNIQUE,
	invoice_parcel_id TEXT NOT NULL,
	invoice_client_id TEXT NOT NULL,
	invoice_amount NUMERIC NOT NULL,
	invoice_currency TEXT NOT NULL DEFAULT 'USD',
	invoice_status TEXT NOT NULL DEFAULT 'unpaid',
	invoice_created_at DATETIME,
	invoice_updated_at DATETIME,
	invoice_deleted_at DATETIME
);
CREATE TABLE payments (
	payment_id TEXT PRIMARY KEY,
	payment_parcel_id TEXT NOT NULL,
	payment_client_id TEXT NOT NULL,
	payment_invoice_id TEXT,
	payment_amount NUMERIC NOT NULL,
	payment_currency TEXT NOT NULL DEFAULT 'USD',
	payment_status TEXT NOT NULL DEFAULT 'pending',
	payment_method TEXT NOT NULL DEFAULT 'other',
	payment_reference TEXT,
	payment_gateway_provider TEXT,
	payment_external_id TEXT,
	payment_checkout_url TEXT,
	payment_meta TEXT,
	payment_paid_at DATETIME,
	payment_created_at DATETIME,
	payment_updated_at DATETIME,
	payment_deleted_at DATETIME
);
CREATE TABLE parcels (
	parcel_id TEXT PRIMARY KEY,
	parcel_tracking_number TEXT NOT NULL UNIQUE,
	parcel_client_id TEXT NOT NULL,
	parcel_shipment_type_id INTEGER NOT NULL,
	parcel_cargo_category_id INTEGER NOT NULL,
	parcel_origin_country_id INTEGER NOT NULL,
	parcel_destination_country_id INTEGER NOT NULL,
	parcel_weight NUMERIC,
	parcel_volume NUMERIC,
	parcel_description TEXT,
	parcel_shipping_cost NUMERIC NOT NULL,
	parcel_currency TEXT NOT NULL DEFAULT 'USD',
	parcel_status TEXT NOT NULL DEFAULT 'registered',
	parcel_warehouse_id TEXT,
	parcel_created_at DATETIME,
	parcel_updated_at DATETIME,
	parcel_deleted_at DATETIME
);`

func setupBillingApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec(billingTablesDDL).Error)

	h := NewInvoiceController(db)
	app := fiber.New()
	app.Get("/invoices/:id", h.GetByID)
	app.Get("/clients/:id/billing", h.ClientBilling)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return app, db
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func getJSON(t *testing.T, app *fiber.App, path string, out any) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil && resp.StatusCode == http.StatusOK {
		var env envelope
		require.NoError(t, json.Unmarshal(body, &env))
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return resp.StatusCode
}

func seedBilledParcel(t *testing.T, db *gorm.DB, clientID uuid.UUID, amount int64, storedStatus string) (parcelModel.ParcelModel, model.InvoiceModel) {
	t.Helper()

	parcel := parcelModel.ParcelModel{
		ParcelTrackingNumber:       "TRK-" + uuid.NewString()[:8],
		ParcelClientID:             clientID,
		ParcelShipmentTypeID:       1,
		ParcelCargoCategoryID:      1,
		ParcelOriginCountryID:      1,
		ParcelDestinationCountryID: 2,
		ParcelShippingCost:         decimal.NewFromInt(amount),
		ParcelCurrency:             "USD",
		ParcelStatus:               parcelModel.ParcelStatusRegistered,
	}
	require.NoError(t, db.Create(&parcel).Error)

	invoice := model.InvoiceModel{
		InvoiceNumber:   "INV-" + uuid.NewString()[:8],
		InvoiceParcelID: parcel.ParcelID,
		InvoiceClientID: clientID,
		InvoiceAmount:   decimal.NewFromInt(amount),
		InvoiceCurrency: "USD",
		InvoiceStatus:   storedStatus,
	}
	require.NoError(t, db.Create(&invoice).Error)
	return parcel, invoice
}

func TestInvoiceDetailDerivesPaidFromPayments(t *testing.T) {
	app, db := setupBillingApp(t)

	clientID := uuid.New()
	parcel, invoice := seedBilledParcel(t, db, clientID, 100, model.InvoiceStatusUnpaid)

	// two successful installments sum to the full amount; stored status
	// still says unpaid
	for _, amt := range []int64{40, 60} {
		require.NoError(t, db.Create(&paymentModel.PaymentModel{
			PaymentParcelID:  parcel.ParcelID,
			PaymentClientID:  clientID,
			PaymentInvoiceID: &invoice.InvoiceID,
			PaymentAmount:    decimal.NewFromInt(amt),
			PaymentCurrency:  "USD",
			PaymentStatus:    paymentModel.PaymentStatusCompleted,
			PaymentMethod:    paymentModel.PaymentMethodBankTransfer,
		}).Error)
	}

	var detail dto.InvoiceDetailView
	status := getJSON(t, app, "/invoices/"+invoice.InvoiceID.String(), &detail)
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, "PAID", detail.Status)
	assert.Equal(t, "UNPAID", detail.StoredStatus, "override column is reported as stored, not displayed")
	assert.True(t, detail.Balance.IsZero(), "balance %s", detail.Balance)
	assert.True(t, detail.TotalPaid.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, parcel.ParcelTrackingNumber, detail.ShipmentRef)
	assert.Len(t, detail.PaymentHistory, 2)
	assert.Nil(t, detail.DueDate)
}

func TestInvoiceDetailPendingPaymentsDoNotCount(t *testing.T) {
	app, db := setupBillingApp(t)

	clientID := uuid.New()
	parcel, invoice := seedBilledParcel(t, db, clientID, 80, model.InvoiceStatusUnpaid)

	require.NoError(t, db.Create(&paymentModel.PaymentModel{
		PaymentParcelID:  parcel.ParcelID,
		PaymentClientID:  clientID,
		PaymentInvoiceID: &invoice.InvoiceID,
		PaymentAmount:    decimal.NewFromInt(80),
		PaymentCurrency:  "USD",
		PaymentStatus:    paymentModel.PaymentStatusPending,
		PaymentMethod:    paymentModel.PaymentMethodGateway,
	}).Error)

	var detail dto.InvoiceDetailView
	status := getJSON(t, app, "/invoices/"+invoice.InvoiceID.String(), &detail)
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, "PENDING", detail.Status, "unpaid displays as pending until money lands")
	assert.True(t, detail.Balance.Equal(decimal.NewFromInt(80)))
	assert.True(t, detail.TotalPaid.IsZero())
}

func TestInvoiceDetailNotFound(t *testing.T) {
	app, _ := setupBillingApp(t)
	status := getJSON(t, app, "/invoices/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestClientBillingViewAggregates(t *testing.T) {
	app, db := setupBillingApp(t)

	clientID := uuid.New()
	parcelA, invoiceA := seedBilledParcel(t, db, clientID, 100, model.InvoiceStatusUnpaid)
	_, _ = seedBilledParcel(t, db, clientID, 50, model.InvoiceStatusUnpaid)

	// invoice A fully paid, invoice B untouched
	require.NoError(t, db.Create(&paymentModel.PaymentModel{
		PaymentParcelID:  parcelA.ParcelID,
		PaymentClientID:  clientID,
		PaymentInvoiceID: &invoiceA.InvoiceID,
		PaymentAmount:    decimal.NewFromInt(100),
		PaymentCurrency:  "USD",
		PaymentStatus:    paymentModel.PaymentStatusPaid,
		PaymentMethod:    paymentModel.PaymentMethodCash,
	}).Error)

	var view dto.ClientPaymentsView
	status := getJSON(t, app, "/clients/"+clientID.String()+"/billing", &view)
	require.Equal(t, http.StatusOK, status)

	assert.True(t, view.Summary.TotalPaid.Equal(decimal.NewFromInt(100)))
	assert.True(t, view.Summary.PendingPayment.Equal(decimal.NewFromInt(50)))
	assert.True(t, view.Summary.Overdue.IsZero(), "no due dates, nothing can be overdue")
	assert.Len(t, view.Invoices, 2)
	assert.Len(t, view.Payments, 1)

	// another client's data never leaks in
	var other dto.ClientPaymentsView
	status = getJSON(t, app, "/clients/"+uuid.NewString()+"/billing", &other)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, other.Invoices)
	assert.True(t, other.Summary.TotalPaid.IsZero())
}

func TestClientBillingParcelFallback(t *testing.T) {
	app, db := setupBillingApp(t)

	clientID := uuid.New()
	parcel, invoice := seedBilledParcel(t, db, clientID, 60, model.InvoiceStatusUnpaid)

	// legacy row: no invoice id, associated through the parcel
	require.NoError(t, db.Create(&paymentModel.PaymentModel{
		PaymentParcelID: parcel.ParcelID,
		PaymentClientID: clientID,
		PaymentAmount:   decimal.NewFromInt(60),
		PaymentCurrency: "USD",
		PaymentStatus:   paymentModel.PaymentStatusSuccess,
		PaymentMethod:   paymentModel.PaymentMethodBankTransfer,
	}).Error)

	var detail dto.InvoiceDetailView
	status := getJSON(t, app, "/invoices/"+invoice.InvoiceID.String(), &detail)
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, "PAID", detail.Status)
	assert.Len(t, detail.PaymentHistory, 1)
}
