package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	masterModel "kirimku_backend/internals/features/masterdata/model"
	ratesDto "kirimku_backend/internals/features/rates/dto"
	"kirimku_backend/internals/features/rates/model"
)

func setupRatesDB(t *testing.T) *gorm.DB {
	t.Helper()

	// one shared in-memory database per test, named after it
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&masterModel.CountryModel{},
		&masterModel.ShipmentTypeModel{},
		&masterModel.CargoCategoryModel{},
		&model.ShippingRateModel{},
	))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

func seedReferenceData(t *testing.T, db *gorm.DB) {
	t.Helper()

	require.NoError(t, db.Create(&masterModel.CountryModel{
		CountryID: 1, CountryName: "Indonesia", CountryCode: "ID", CountryStatus: "active",
	}).Error)
	require.NoError(t, db.Create(&masterModel.CountryModel{
		CountryID: 2, CountryName: "Singapore", CountryCode: "SG", CountryStatus: "active",
	}).Error)
	require.NoError(t, db.Create(&masterModel.ShipmentTypeModel{
		ShipmentTypeID: 1, ShipmentTypeName: "Sea Freight", ShipmentTypeEstimatedDays: 14, ShipmentTypeStatus: "active",
	}).Error)
	require.NoError(t, db.Create(&masterModel.CargoCategoryModel{
		CargoCategoryID: 1, CargoCategoryName: "General", CargoCategoryUnit: "kg", CargoCategoryStatus: "active",
	}).Error)
}

func TestCalculateAdditiveCost(t *testing.T) {
	db := setupRatesDB(t)
	seedReferenceData(t, db)

	require.NoError(t, db.Create(&model.ShippingRateModel{
		ShippingRateShipmentTypeID:       1,
		ShippingRateCargoCategoryID:      1,
		ShippingRateOriginCountryID:      1,
		ShippingRateDestinationCountryID: 2,
		ShippingRateBaseRate:             decimal.NewFromInt(50),
		ShippingRateAdditionalCharges:    decimal.NewFromInt(5),
		ShippingRateStatus:               model.RateStatusActive,
	}).Error)

	weight := decimal.NewFromFloat(12.5)
	resp, err := NewRateResolver(db).Calculate(context.Background(), ratesDto.CalculateRateRequest{
		ShipmentTypeID:       1,
		CargoCategoryID:      1,
		OriginCountryID:      1,
		DestinationCountryID: 2,
		Weight:               &weight,
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalCost.Equal(decimal.NewFromInt(55)), "total = base + additional, got %s", resp.TotalCost)
	assert.True(t, resp.BaseRate.Equal(decimal.NewFromInt(50)))
	assert.True(t, resp.AdditionalCharges.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, "USD", resp.Currency, "null catalog currency falls back to USD")
	assert.Equal(t, "Indonesia", resp.OriginCountry)
	assert.Equal(t, "Singapore", resp.DestinationCountry)
	assert.Equal(t, "Sea Freight", resp.ShipmentType)
	assert.Equal(t, 14, resp.EstimatedDays)
	assert.Equal(t, "kg", resp.Unit)
	require.NotNil(t, resp.Weight)
	assert.True(t, resp.Weight.Equal(weight), "weight passes through untouched")
}

func TestCalculateRowCurrencyWins(t *testing.T) {
	db := setupRatesDB(t)
	seedReferenceData(t, db)

	idr := "IDR"
	require.NoError(t, db.Create(&model.ShippingRateModel{
		ShippingRateShipmentTypeID:       1,
		ShippingRateCargoCategoryID:      1,
		ShippingRateOriginCountryID:      1,
		ShippingRateDestinationCountryID: 2,
		ShippingRateBaseRate:             decimal.NewFromInt(100),
		ShippingRateCurrency:             &idr,
		ShippingRateStatus:               model.RateStatusActive,
	}).Error)

	resp, err := NewRateResolver(db).Calculate(context.Background(), ratesDto.CalculateRateRequest{
		ShipmentTypeID: 1, CargoCategoryID: 1, OriginCountryID: 1, DestinationCountryID: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "IDR", resp.Currency)
}

func TestResolveMissingFieldIsValidationNotLookup(t *testing.T) {
	db := setupRatesDB(t)

	_, err := NewRateResolver(db).Resolve(context.Background(), 1, 1, 0, 2)

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "origin_country_id", missing.Field)
	assert.False(t, errors.Is(err, ErrRateNotFound), "absent field must not read as a catalog miss")
}

func TestResolveNoActiveRate(t *testing.T) {
	db := setupRatesDB(t)
	seedReferenceData(t, db)

	// an inactive row for the tuple must not satisfy the lookup
	require.NoError(t, db.Create(&model.ShippingRateModel{
		ShippingRateShipmentTypeID:       1,
		ShippingRateCargoCategoryID:      1,
		ShippingRateOriginCountryID:      1,
		ShippingRateDestinationCountryID: 2,
		ShippingRateBaseRate:             decimal.NewFromInt(75),
		ShippingRateStatus:               model.RateStatusInactive,
	}).Error)

	_, err := NewRateResolver(db).Resolve(context.Background(), 1, 1, 1, 2)
	require.ErrorIs(t, err, ErrRateNotFound)

	var missing *MissingFieldError
	assert.False(t, errors.As(err, &missing), "catalog miss must not read as a validation failure")
}

func TestCalculateMissingReferenceRowsLeaveBlanks(t *testing.T) {
	db := setupRatesDB(t)

	// rate exists but nothing in the reference tables
	require.NoError(t, db.Create(&model.ShippingRateModel{
		ShippingRateShipmentTypeID:       9,
		ShippingRateCargoCategoryID:      9,
		ShippingRateOriginCountryID:      9,
		ShippingRateDestinationCountryID: 8,
		ShippingRateBaseRate:             decimal.NewFromInt(10),
		ShippingRateStatus:               model.RateStatusActive,
	}).Error)

	resp, err := NewRateResolver(db).Calculate(context.Background(), ratesDto.CalculateRateRequest{
		ShipmentTypeID: 9, CargoCategoryID: 9, OriginCountryID: 9, DestinationCountryID: 8,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.OriginCountry)
	assert.Empty(t, resp.ShipmentType)
	assert.True(t, resp.TotalCost.Equal(decimal.NewFromInt(10)))
}
