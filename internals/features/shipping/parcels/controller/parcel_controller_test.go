package controller

import (
	"bytes"
	"encoding/json"
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

	invoiceModel "kirimku_backend/internals/features/billing/invoices/model"
	masterModel "kirimku_backend/internals/features/masterdata/model"
	ratesModel "kirimku_backend/internals/features/rates/model"
	"kirimku_backend/internals/features/shipping/parcels/model"
)

const parcelTablesDDL = `
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
);
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
);`

func setupParcelApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&masterModel.CountryModel{},
		&masterModel.ShipmentTypeModel{},
		&masterModel.CargoCategoryModel{},
		&ratesModel.ShippingRateModel{},
	))
	require.NoError(t, db.Exec(parcelTablesDDL).Error)

	h := NewParcelController(db)
	app := fiber.New()
	app.Post("/parcels", h.Create)
	app.Get("/parcels/:id", h.GetByID)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return app, db
}

func seedActiveRate(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&ratesModel.ShippingRateModel{
		ShippingRateShipmentTypeID:       1,
		ShippingRateCargoCategoryID:      1,
		ShippingRateOriginCountryID:      1,
		ShippingRateDestinationCountryID: 2,
		ShippingRateBaseRate:             decimal.NewFromInt(50),
		ShippingRateAdditionalCharges:    decimal.NewFromInt(5),
		ShippingRateStatus:               ratesModel.RateStatusActive,
	}).Error)
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCreateParcelOpensInvoice(t *testing.T) {
	app, db := setupParcelApp(t)
	seedActiveRate(t, db)

	clientID := uuid.New()
	resp := postJSON(t, app, "/parcels", fiber.Map{
		"parcel_client_id":              clientID,
		"parcel_shipment_type_id":       1,
		"parcel_cargo_category_id":      1,
		"parcel_origin_country_id":      1,
		"parcel_destination_country_id": 2,
		"parcel_weight":                 "12.5",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var parcel model.ParcelModel
	require.NoError(t, db.First(&parcel).Error)
	assert.NotEmpty(t, parcel.ParcelTrackingNumber)
	assert.Equal(t, model.ParcelStatusRegistered, parcel.ParcelStatus)
	assert.True(t, parcel.ParcelShippingCost.Equal(decimal.NewFromInt(55)),
		"shipping cost snapshot = resolved total, got %s", parcel.ParcelShippingCost)

	var invoice invoiceModel.InvoiceModel
	require.NoError(t, db.First(&invoice).Error, "registering a parcel must open its invoice")
	assert.Equal(t, parcel.ParcelID, invoice.InvoiceParcelID)
	assert.Equal(t, clientID, invoice.InvoiceClientID)
	assert.Equal(t, invoiceModel.InvoiceStatusUnpaid, invoice.InvoiceStatus)
	assert.True(t, invoice.InvoiceAmount.Equal(parcel.ParcelShippingCost))
}

func TestCreateParcelNoRateIsNotFound(t *testing.T) {
	app, db := setupParcelApp(t)
	// no catalog rows at all

	resp := postJSON(t, app, "/parcels", fiber.Map{
		"parcel_client_id":              uuid.New(),
		"parcel_shipment_type_id":       1,
		"parcel_cargo_category_id":      1,
		"parcel_origin_country_id":      1,
		"parcel_destination_country_id": 2,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.ParcelModel{}).Count(&count).Error)
	assert.Zero(t, count, "unpriced routes must not register parcels")
}

func TestCreateParcelMissingRouteFieldIsValidation(t *testing.T) {
	app, _ := setupParcelApp(t)

	resp := postJSON(t, app, "/parcels", fiber.Map{
		"parcel_client_id":              uuid.New(),
		"parcel_shipment_type_id":       1,
		"parcel_cargo_category_id":      1,
		"parcel_destination_country_id": 2,
		// origin missing
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetParcelByTrackingNumber(t *testing.T) {
	app, db := setupParcelApp(t)

	parcel := model.ParcelModel{
		ParcelTrackingNumber:       "TRK-20260830-ABC123",
		ParcelClientID:             uuid.New(),
		ParcelShipmentTypeID:       1,
		ParcelCargoCategoryID:      1,
		ParcelOriginCountryID:      1,
		ParcelDestinationCountryID: 2,
		ParcelShippingCost:         decimal.NewFromInt(55),
		ParcelCurrency:             "USD",
		ParcelStatus:               model.ParcelStatusInTransit,
	}
	require.NoError(t, db.Create(&parcel).Error)

	req := httptest.NewRequest(http.MethodGet, "/parcels/TRK-20260830-ABC123", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
