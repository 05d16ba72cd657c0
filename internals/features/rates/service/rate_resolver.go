// file: internals/features/rates/service/rate_resolver.go
package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	masterModel "kirimku_backend/internals/features/masterdata/model"
	"kirimku_backend/internals/features/rates/dto"
	"kirimku_backend/internals/features/rates/model"
	helper "kirimku_backend/internals/helpers"
)

/* =========================================================
   Errors
========================================================= */

// ErrRateNotFound: no active catalog row matches the route tuple.
// Distinct from a validation failure on the request itself.
var ErrRateNotFound = errors.New("no active shipping rate for this route")

// MissingFieldError names the request field that was absent or non-positive.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

/* =========================================================
   Resolver
========================================================= */

type RateResolver struct {
	DB *gorm.DB
}

func NewRateResolver(db *gorm.DB) *RateResolver {
	return &RateResolver{DB: db}
}

// Resolve finds the single active rate for the tuple. All four identifiers
// are required positive ints. When the catalog (wrongly) holds several
// active rows for one tuple the store's first row wins; keeping the catalog
// clean is the admin CRUD's problem, not the resolver's.
func (s *RateResolver) Resolve(ctx context.Context, shipmentTypeID, cargoCategoryID, originCountryID, destinationCountryID int) (*model.ShippingRateModel, error) {
	switch {
	case shipmentTypeID <= 0:
		return nil, &MissingFieldError{Field: "shipment_type_id"}
	case cargoCategoryID <= 0:
		return nil, &MissingFieldError{Field: "cargo_category_id"}
	case originCountryID <= 0:
		return nil, &MissingFieldError{Field: "origin_country_id"}
	case destinationCountryID <= 0:
		return nil, &MissingFieldError{Field: "destination_country_id"}
	}

	var rate model.ShippingRateModel
	err := s.DB.WithContext(ctx).
		Where(`shipping_rate_shipment_type_id = ?
			AND shipping_rate_cargo_category_id = ?
			AND shipping_rate_origin_country_id = ?
			AND shipping_rate_destination_country_id = ?
			AND shipping_rate_status = ?`,
			shipmentTypeID, cargoCategoryID, originCountryID, destinationCountryID,
			model.RateStatusActive).
		First(&rate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRateNotFound
		}
		return nil, err
	}
	return &rate, nil
}

// Calculate resolves the rate and builds the full cost breakdown.
// Cost model is purely additive: total = round2(base + additional).
// Weight/volume pass through to the response unchanged.
func (s *RateResolver) Calculate(ctx context.Context, req dto.CalculateRateRequest) (*dto.CalculateRateResponse, error) {
	rate, err := s.Resolve(ctx, req.ShipmentTypeID, req.CargoCategoryID, req.OriginCountryID, req.DestinationCountryID)
	if err != nil {
		return nil, err
	}

	resp := &dto.CalculateRateResponse{
		BaseRate:          helper.Round2(rate.ShippingRateBaseRate),
		AdditionalCharges: helper.Round2(rate.ShippingRateAdditionalCharges),
		TotalCost:         helper.Round2(rate.ShippingRateBaseRate.Add(rate.ShippingRateAdditionalCharges)),
		Currency:          rate.CurrencyOrDefault(),
		Weight:            req.Weight,
		Volume:            req.Volume,
	}

	// Reference-data lookups are informational; a missing row leaves the
	// field blank rather than failing the calculation.
	var st masterModel.ShipmentTypeModel
	if err := s.DB.WithContext(ctx).First(&st, "shipment_type_id = ?", req.ShipmentTypeID).Error; err == nil {
		resp.ShipmentType = st.ShipmentTypeName
		resp.EstimatedDays = st.ShipmentTypeEstimatedDays
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var cc masterModel.CargoCategoryModel
	if err := s.DB.WithContext(ctx).First(&cc, "cargo_category_id = ?", req.CargoCategoryID).Error; err == nil {
		resp.CargoCategory = cc.CargoCategoryName
		resp.Unit = cc.CargoCategoryUnit
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var origin, dest masterModel.CountryModel
	if err := s.DB.WithContext(ctx).First(&origin, "country_id = ?", req.OriginCountryID).Error; err == nil {
		resp.OriginCountry = origin.CountryName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).First(&dest, "country_id = ?", req.DestinationCountryID).Error; err == nil {
		resp.DestinationCountry = dest.CountryName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return resp, nil
}
