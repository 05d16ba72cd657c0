package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	ShipmentStatusPending        = "pending"
	ShipmentStatusInTransit      = "in_transit"
	ShipmentStatusCustoms        = "customs"
	ShipmentStatusOutForDelivery = "out_for_delivery"
	ShipmentStatusDelivered      = "delivered"
	ShipmentStatusDelayed        = "delayed"
)

/* ===================== Display maps ===================== */

// Pure lookup tables for the dashboard. Read-only; nothing writes to these.
var StatusColors = map[string]string{
	ShipmentStatusPending:        "gray",
	ShipmentStatusInTransit:      "blue",
	ShipmentStatusCustoms:        "orange",
	ShipmentStatusOutForDelivery: "indigo",
	ShipmentStatusDelivered:      "green",
	ShipmentStatusDelayed:        "red",
}

var StatusLabels = map[string]string{
	ShipmentStatusPending:        "Awaiting departure",
	ShipmentStatusInTransit:      "In transit",
	ShipmentStatusCustoms:        "Customs clearance",
	ShipmentStatusOutForDelivery: "Out for delivery",
	ShipmentStatusDelivered:      "Delivered",
	ShipmentStatusDelayed:        "Delayed",
}

// StatusColor falls back to gray for statuses the dashboard does not know.
func StatusColor(status string) string {
	if c, ok := StatusColors[status]; ok {
		return c
	}
	return "gray"
}

func StatusLabel(status string) string {
	if l, ok := StatusLabels[status]; ok {
		return l
	}
	return status
}

/* ===================== Models ===================== */

type ShipmentModel struct {
	ShipmentID uuid.UUID `gorm:"column:shipment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"shipment_id"`

	ShipmentParcelID uuid.UUID `gorm:"column:shipment_parcel_id;type:uuid;not null;index" json:"shipment_parcel_id"`

	ShipmentCarrier  *string `gorm:"column:shipment_carrier;type:varchar(100)" json:"shipment_carrier,omitempty"`
	ShipmentVesselNo *string `gorm:"column:shipment_vessel_no;type:varchar(50)" json:"shipment_vessel_no,omitempty"`

	ShipmentDepartedAt       *time.Time `gorm:"column:shipment_departed_at" json:"shipment_departed_at,omitempty"`
	ShipmentEstimatedArrival *time.Time `gorm:"column:shipment_estimated_arrival" json:"shipment_estimated_arrival,omitempty"`

	ShipmentStatus string `gorm:"column:shipment_status;type:varchar(32);not null;default:'pending'" json:"shipment_status"`

	CreatedAt time.Time      `gorm:"column:shipment_created_at;autoCreateTime" json:"shipment_created_at"`
	UpdatedAt time.Time      `gorm:"column:shipment_updated_at;autoUpdateTime" json:"shipment_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:shipment_deleted_at;index" json:"shipment_deleted_at,omitempty"`
}

func (ShipmentModel) TableName() string { return "shipments" }

// TrackingUpdateModel rows are append-only; there is no update or delete path.
type TrackingUpdateModel struct {
	TrackingUpdateID uuid.UUID `gorm:"column:tracking_update_id;type:uuid;default:gen_random_uuid();primaryKey" json:"tracking_update_id"`

	TrackingUpdateShipmentID uuid.UUID `gorm:"column:tracking_update_shipment_id;type:uuid;not null;index" json:"tracking_update_shipment_id"`

	TrackingUpdateStatus   string  `gorm:"column:tracking_update_status;type:varchar(32);not null" json:"tracking_update_status"`
	TrackingUpdateLocation *string `gorm:"column:tracking_update_location;type:varchar(150)" json:"tracking_update_location,omitempty"`
	TrackingUpdateNote     *string `gorm:"column:tracking_update_note" json:"tracking_update_note,omitempty"`

	TrackingUpdateOccurredAt time.Time `gorm:"column:tracking_update_occurred_at;not null" json:"tracking_update_occurred_at"`

	CreatedAt time.Time `gorm:"column:tracking_update_created_at;autoCreateTime" json:"tracking_update_created_at"`
}

func (TrackingUpdateModel) TableName() string { return "tracking_updates" }
