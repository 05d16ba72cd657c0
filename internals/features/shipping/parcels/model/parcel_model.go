package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	ParcelStatusRegistered = "registered"
	ParcelStatusReceived   = "received"
	ParcelStatusInTransit  = "in_transit"
	ParcelStatusDelivered  = "delivered"
	ParcelStatusReturned   = "returned"
)

/* ===================== Model ===================== */

type ParcelModel struct {
	ParcelID uuid.UUID `gorm:"column:parcel_id;type:uuid;default:gen_random_uuid();primaryKey" json:"parcel_id"`

	ParcelTrackingNumber string `gorm:"column:parcel_tracking_number;type:varchar(30);uniqueIndex;not null" json:"parcel_tracking_number"`

	ParcelClientID uuid.UUID `gorm:"column:parcel_client_id;type:uuid;not null;index" json:"parcel_client_id"`

	ParcelShipmentTypeID       int `gorm:"column:parcel_shipment_type_id;not null" json:"parcel_shipment_type_id"`
	ParcelCargoCategoryID      int `gorm:"column:parcel_cargo_category_id;not null" json:"parcel_cargo_category_id"`
	ParcelOriginCountryID      int `gorm:"column:parcel_origin_country_id;not null" json:"parcel_origin_country_id"`
	ParcelDestinationCountryID int `gorm:"column:parcel_destination_country_id;not null" json:"parcel_destination_country_id"`

	ParcelWeight *decimal.Decimal `gorm:"column:parcel_weight;type:decimal(10,3)" json:"parcel_weight,omitempty"`
	ParcelVolume *decimal.Decimal `gorm:"column:parcel_volume;type:decimal(10,3)" json:"parcel_volume,omitempty"`

	ParcelDescription *string `gorm:"column:parcel_description" json:"parcel_description,omitempty"`

	// Snapshot of the resolved rate at registration time; the invoice is
	// opened with this amount.
	ParcelShippingCost decimal.Decimal `gorm:"column:parcel_shipping_cost;type:decimal(18,2);not null" json:"parcel_shipping_cost"`
	ParcelCurrency     string          `gorm:"column:parcel_currency;type:varchar(8);not null;default:'USD'" json:"parcel_currency"`

	ParcelStatus string `gorm:"column:parcel_status;type:varchar(32);not null;default:'registered'" json:"parcel_status"`

	ParcelWarehouseID *uuid.UUID `gorm:"column:parcel_warehouse_id;type:uuid;index" json:"parcel_warehouse_id,omitempty"`

	CreatedAt time.Time      `gorm:"column:parcel_created_at;autoCreateTime" json:"parcel_created_at"`
	UpdatedAt time.Time      `gorm:"column:parcel_updated_at;autoUpdateTime" json:"parcel_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:parcel_deleted_at;index" json:"parcel_deleted_at,omitempty"`
}

func (ParcelModel) TableName() string { return "parcels" }

func (m *ParcelModel) BeforeCreate(tx *gorm.DB) error {
	if m.ParcelID == uuid.Nil {
		m.ParcelID = uuid.New()
	}
	return nil
}
