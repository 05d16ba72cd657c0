package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"kirimku_backend/internals/features/shipping/parcels/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type CreateParcelRequest struct {
	ParcelClientID uuid.UUID `json:"parcel_client_id" validate:"required"`

	ParcelShipmentTypeID       int `json:"parcel_shipment_type_id" validate:"required,gt=0"`
	ParcelCargoCategoryID      int `json:"parcel_cargo_category_id" validate:"required,gt=0"`
	ParcelOriginCountryID      int `json:"parcel_origin_country_id" validate:"required,gt=0"`
	ParcelDestinationCountryID int `json:"parcel_destination_country_id" validate:"required,gt=0"`

	ParcelWeight      *decimal.Decimal `json:"parcel_weight" validate:"omitempty"`
	ParcelVolume      *decimal.Decimal `json:"parcel_volume" validate:"omitempty"`
	ParcelDescription *string          `json:"parcel_description" validate:"omitempty,max=500"`

	ParcelWarehouseID *uuid.UUID `json:"parcel_warehouse_id" validate:"omitempty"`
}

type UpdateParcelRequest struct {
	ParcelStatus      *string          `json:"parcel_status" validate:"omitempty,oneof=registered received in_transit delivered returned"`
	ParcelWeight      *decimal.Decimal `json:"parcel_weight" validate:"omitempty"`
	ParcelVolume      *decimal.Decimal `json:"parcel_volume" validate:"omitempty"`
	ParcelDescription *string          `json:"parcel_description" validate:"omitempty,max=500"`
	ParcelWarehouseID *uuid.UUID       `json:"parcel_warehouse_id" validate:"omitempty"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type ParcelResponse struct {
	ParcelID             uuid.UUID `json:"parcel_id"`
	ParcelTrackingNumber string    `json:"parcel_tracking_number"`
	ParcelClientID       uuid.UUID `json:"parcel_client_id"`

	ParcelShipmentTypeID       int `json:"parcel_shipment_type_id"`
	ParcelCargoCategoryID      int `json:"parcel_cargo_category_id"`
	ParcelOriginCountryID      int `json:"parcel_origin_country_id"`
	ParcelDestinationCountryID int `json:"parcel_destination_country_id"`

	ParcelWeight      *decimal.Decimal `json:"parcel_weight,omitempty"`
	ParcelVolume      *decimal.Decimal `json:"parcel_volume,omitempty"`
	ParcelDescription *string          `json:"parcel_description,omitempty"`

	ParcelShippingCost decimal.Decimal `json:"parcel_shipping_cost"`
	ParcelCurrency     string          `json:"parcel_currency"`
	ParcelStatus       string          `json:"parcel_status"`

	ParcelWarehouseID *uuid.UUID `json:"parcel_warehouse_id,omitempty"`

	ParcelCreatedAt time.Time `json:"parcel_created_at"`
	ParcelUpdatedAt time.Time `json:"parcel_updated_at"`
}

// CreateParcelResponse also carries the invoice opened alongside the parcel.
type CreateParcelResponse struct {
	Parcel        ParcelResponse  `json:"parcel"`
	InvoiceID     uuid.UUID       `json:"invoice_id"`
	InvoiceNumber string          `json:"invoice_number"`
	InvoiceAmount decimal.Decimal `json:"invoice_amount"`
	InvoiceStatus string          `json:"invoice_status"`
}

/* =========================================================
   MAPPERS
========================================================= */

func FromModel(m model.ParcelModel) ParcelResponse {
	return ParcelResponse{
		ParcelID:                   m.ParcelID,
		ParcelTrackingNumber:       m.ParcelTrackingNumber,
		ParcelClientID:             m.ParcelClientID,
		ParcelShipmentTypeID:       m.ParcelShipmentTypeID,
		ParcelCargoCategoryID:      m.ParcelCargoCategoryID,
		ParcelOriginCountryID:      m.ParcelOriginCountryID,
		ParcelDestinationCountryID: m.ParcelDestinationCountryID,
		ParcelWeight:               m.ParcelWeight,
		ParcelVolume:               m.ParcelVolume,
		ParcelDescription:          m.ParcelDescription,
		ParcelShippingCost:         m.ParcelShippingCost,
		ParcelCurrency:             m.ParcelCurrency,
		ParcelStatus:               m.ParcelStatus,
		ParcelWarehouseID:          m.ParcelWarehouseID,
		ParcelCreatedAt:            m.CreatedAt,
		ParcelUpdatedAt:            m.UpdatedAt,
	}
}

func (r CreateParcelRequest) ToModel() model.ParcelModel {
	return model.ParcelModel{
		ParcelClientID:             r.ParcelClientID,
		ParcelShipmentTypeID:       r.ParcelShipmentTypeID,
		ParcelCargoCategoryID:      r.ParcelCargoCategoryID,
		ParcelOriginCountryID:      r.ParcelOriginCountryID,
		ParcelDestinationCountryID: r.ParcelDestinationCountryID,
		ParcelWeight:               r.ParcelWeight,
		ParcelVolume:               r.ParcelVolume,
		ParcelDescription:          r.ParcelDescription,
		ParcelWarehouseID:          r.ParcelWarehouseID,
		ParcelStatus:               model.ParcelStatusRegistered,
	}
}
