package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	RateStatusActive   = "active"
	RateStatusInactive = "inactive"
)

/* ===================== Model ===================== */

// ShippingRateModel is one row of the rate catalog. The catalog should hold
// at most one active row per (type, category, origin, destination) tuple;
// that is a catalog-management rule, the resolver does not enforce it.
type ShippingRateModel struct {
	ShippingRateID int `gorm:"column:shipping_rate_id;primaryKey;autoIncrement" json:"shipping_rate_id"`

	ShippingRateShipmentTypeID       int `gorm:"column:shipping_rate_shipment_type_id;not null;index:idx_rates_tuple" json:"shipping_rate_shipment_type_id"`
	ShippingRateCargoCategoryID      int `gorm:"column:shipping_rate_cargo_category_id;not null;index:idx_rates_tuple" json:"shipping_rate_cargo_category_id"`
	ShippingRateOriginCountryID      int `gorm:"column:shipping_rate_origin_country_id;not null;index:idx_rates_tuple" json:"shipping_rate_origin_country_id"`
	ShippingRateDestinationCountryID int `gorm:"column:shipping_rate_destination_country_id;not null;index:idx_rates_tuple" json:"shipping_rate_destination_country_id"`

	ShippingRateBaseRate          decimal.Decimal `gorm:"column:shipping_rate_base_rate;type:decimal(18,2);not null" json:"shipping_rate_base_rate"`
	ShippingRateAdditionalCharges decimal.Decimal `gorm:"column:shipping_rate_additional_charges;type:decimal(18,2);not null;default:0" json:"shipping_rate_additional_charges"`

	// Nullable on purpose; resolver falls back to USD.
	ShippingRateCurrency *string `gorm:"column:shipping_rate_currency;type:varchar(8)" json:"shipping_rate_currency,omitempty"`

	ShippingRateStatus string `gorm:"column:shipping_rate_status;type:varchar(16);not null;default:'active'" json:"shipping_rate_status"`

	CreatedAt time.Time      `gorm:"column:shipping_rate_created_at;autoCreateTime" json:"shipping_rate_created_at"`
	UpdatedAt time.Time      `gorm:"column:shipping_rate_updated_at;autoUpdateTime" json:"shipping_rate_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:shipping_rate_deleted_at;index" json:"shipping_rate_deleted_at,omitempty"`
}

func (ShippingRateModel) TableName() string { return "shipping_rates" }

/* ===================== Helpers ===================== */

func (r *ShippingRateModel) IsActive() bool {
	return r.ShippingRateStatus == RateStatusActive
}

// CurrencyOrDefault returns the row currency, defaulting to USD when the
// catalog row has none.
func (r *ShippingRateModel) CurrencyOrDefault() string {
	if r.ShippingRateCurrency != nil && *r.ShippingRateCurrency != "" {
		return *r.ShippingRateCurrency
	}
	return "USD"
}
