package dto

import (
	"github.com/shopspring/decimal"

	"kirimku_backend/internals/features/rates/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type CreateShippingRateRequest struct {
	ShippingRateShipmentTypeID       int `json:"shipping_rate_shipment_type_id" validate:"required,gt=0"`
	ShippingRateCargoCategoryID      int `json:"shipping_rate_cargo_category_id" validate:"required,gt=0"`
	ShippingRateOriginCountryID      int `json:"shipping_rate_origin_country_id" validate:"required,gt=0"`
	ShippingRateDestinationCountryID int `json:"shipping_rate_destination_country_id" validate:"required,gt=0"`

	ShippingRateBaseRate          decimal.Decimal  `json:"shipping_rate_base_rate" validate:"required"`
	ShippingRateAdditionalCharges *decimal.Decimal `json:"shipping_rate_additional_charges,omitempty"`
	ShippingRateCurrency          *string          `json:"shipping_rate_currency,omitempty" validate:"omitempty,len=3"`
	ShippingRateStatus            string           `json:"shipping_rate_status" validate:"omitempty,oneof=active inactive"`
}

type UpdateShippingRateRequest struct {
	ShippingRateBaseRate          *decimal.Decimal `json:"shipping_rate_base_rate,omitempty"`
	ShippingRateAdditionalCharges *decimal.Decimal `json:"shipping_rate_additional_charges,omitempty"`
	ShippingRateCurrency          *string          `json:"shipping_rate_currency,omitempty" validate:"omitempty,len=3"`
	ShippingRateStatus            *string          `json:"shipping_rate_status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// CalculateRateRequest carries the four required route identifiers plus
// pass-through cargo details. Weight/volume surface in the response
// untouched; they are not part of the cost arithmetic.
type CalculateRateRequest struct {
	ShipmentTypeID       int `json:"shipment_type_id"`
	CargoCategoryID      int `json:"cargo_category_id"`
	OriginCountryID      int `json:"origin_country_id"`
	DestinationCountryID int `json:"destination_country_id"`

	Weight *decimal.Decimal `json:"weight,omitempty"`
	Volume *decimal.Decimal `json:"volume,omitempty"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type CalculateRateResponse struct {
	OriginCountry      string `json:"origin_country"`
	DestinationCountry string `json:"destination_country"`
	ShipmentType       string `json:"shipment_type"`
	CargoCategory      string `json:"cargo_category"`
	EstimatedDays      int    `json:"estimated_days"`

	BaseRate          decimal.Decimal `json:"base_rate"`
	AdditionalCharges decimal.Decimal `json:"additional_charges"`
	TotalCost         decimal.Decimal `json:"total_cost"`
	Currency          string          `json:"currency"`

	Weight *decimal.Decimal `json:"weight,omitempty"`
	Volume *decimal.Decimal `json:"volume,omitempty"`
	Unit   string           `json:"unit"`
}

/* =========================================================
   MAPPERS
========================================================= */

func (r CreateShippingRateRequest) ToModel() model.ShippingRateModel {
	status := r.ShippingRateStatus
	if status == "" {
		status = model.RateStatusActive
	}
	additional := decimal.Zero
	if r.ShippingRateAdditionalCharges != nil {
		additional = *r.ShippingRateAdditionalCharges
	}
	return model.ShippingRateModel{
		ShippingRateShipmentTypeID:       r.ShippingRateShipmentTypeID,
		ShippingRateCargoCategoryID:      r.ShippingRateCargoCategoryID,
		ShippingRateOriginCountryID:      r.ShippingRateOriginCountryID,
		ShippingRateDestinationCountryID: r.ShippingRateDestinationCountryID,
		ShippingRateBaseRate:             r.ShippingRateBaseRate,
		ShippingRateAdditionalCharges:    additional,
		ShippingRateCurrency:             r.ShippingRateCurrency,
		ShippingRateStatus:               status,
	}
}
