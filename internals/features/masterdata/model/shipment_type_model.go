package model

import (
	"time"

	"gorm.io/gorm"
)

type ShipmentTypeModel struct {
	ShipmentTypeID   int    `gorm:"column:shipment_type_id;primaryKey;autoIncrement" json:"shipment_type_id"`
	ShipmentTypeName string `gorm:"column:shipment_type_name;type:varchar(80);not null;uniqueIndex" json:"shipment_type_name"`

	// Informational only; surfaces in the rate-calculation response,
	// never part of the cost arithmetic.
	ShipmentTypeEstimatedDays int `gorm:"column:shipment_type_estimated_days;not null;default:0" json:"shipment_type_estimated_days"`

	ShipmentTypeStatus string `gorm:"column:shipment_type_status;type:varchar(16);not null;default:'active'" json:"shipment_type_status"`

	CreatedAt time.Time      `gorm:"column:shipment_type_created_at;autoCreateTime" json:"shipment_type_created_at"`
	UpdatedAt time.Time      `gorm:"column:shipment_type_updated_at;autoUpdateTime" json:"shipment_type_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:shipment_type_deleted_at;index" json:"shipment_type_deleted_at,omitempty"`
}

func (ShipmentTypeModel) TableName() string { return "shipment_types" }
