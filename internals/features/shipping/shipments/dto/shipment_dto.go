package dto

import (
	"time"

	"github.com/google/uuid"

	"kirimku_backend/internals/features/shipping/shipments/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type CreateShipmentRequest struct {
	ShipmentParcelID uuid.UUID `json:"shipment_parcel_id" validate:"required"`

	ShipmentCarrier  *string `json:"shipment_carrier" validate:"omitempty,max=100"`
	ShipmentVesselNo *string `json:"shipment_vessel_no" validate:"omitempty,max=50"`

	ShipmentDepartedAt       *time.Time `json:"shipment_departed_at" validate:"omitempty"`
	ShipmentEstimatedArrival *time.Time `json:"shipment_estimated_arrival" validate:"omitempty"`
}

type UpdateShipmentRequest struct {
	ShipmentCarrier  *string `json:"shipment_carrier" validate:"omitempty,max=100"`
	ShipmentVesselNo *string `json:"shipment_vessel_no" validate:"omitempty,max=50"`

	ShipmentDepartedAt       *time.Time `json:"shipment_departed_at" validate:"omitempty"`
	ShipmentEstimatedArrival *time.Time `json:"shipment_estimated_arrival" validate:"omitempty"`

	ShipmentStatus *string `json:"shipment_status" validate:"omitempty,oneof=pending in_transit customs out_for_delivery delivered delayed"`
}

// AppendTrackingRequest records one tracking event. Appending also moves the
// shipment to the event's status.
type AppendTrackingRequest struct {
	TrackingUpdateStatus     string     `json:"tracking_update_status" validate:"required,oneof=pending in_transit customs out_for_delivery delivered delayed"`
	TrackingUpdateLocation   *string    `json:"tracking_update_location" validate:"omitempty,max=150"`
	TrackingUpdateNote       *string    `json:"tracking_update_note" validate:"omitempty,max=500"`
	TrackingUpdateOccurredAt *time.Time `json:"tracking_update_occurred_at" validate:"omitempty"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type ShipmentResponse struct {
	ShipmentID       uuid.UUID `json:"shipment_id"`
	ShipmentParcelID uuid.UUID `json:"shipment_parcel_id"`

	ShipmentCarrier  *string `json:"shipment_carrier,omitempty"`
	ShipmentVesselNo *string `json:"shipment_vessel_no,omitempty"`

	ShipmentDepartedAt       *time.Time `json:"shipment_departed_at,omitempty"`
	ShipmentEstimatedArrival *time.Time `json:"shipment_estimated_arrival,omitempty"`

	ShipmentStatus      string `json:"shipment_status"`
	ShipmentStatusLabel string `json:"shipment_status_label"`
	ShipmentStatusColor string `json:"shipment_status_color"`

	ShipmentCreatedAt time.Time `json:"shipment_created_at"`
	ShipmentUpdatedAt time.Time `json:"shipment_updated_at"`
}

type TrackingUpdateResponse struct {
	TrackingUpdateID         uuid.UUID `json:"tracking_update_id"`
	TrackingUpdateShipmentID uuid.UUID `json:"tracking_update_shipment_id"`

	TrackingUpdateStatus      string  `json:"tracking_update_status"`
	TrackingUpdateStatusLabel string  `json:"tracking_update_status_label"`
	TrackingUpdateStatusColor string  `json:"tracking_update_status_color"`
	TrackingUpdateLocation    *string `json:"tracking_update_location,omitempty"`
	TrackingUpdateNote        *string `json:"tracking_update_note,omitempty"`

	TrackingUpdateOccurredAt time.Time `json:"tracking_update_occurred_at"`
}

type ShipmentDetailResponse struct {
	ShipmentResponse
	TrackingHistory []TrackingUpdateResponse `json:"tracking_history"`
}

/* =========================================================
   MAPPERS
========================================================= */

func (r CreateShipmentRequest) ToModel() model.ShipmentModel {
	return model.ShipmentModel{
		ShipmentParcelID:         r.ShipmentParcelID,
		ShipmentCarrier:          r.ShipmentCarrier,
		ShipmentVesselNo:         r.ShipmentVesselNo,
		ShipmentDepartedAt:       r.ShipmentDepartedAt,
		ShipmentEstimatedArrival: r.ShipmentEstimatedArrival,
		ShipmentStatus:           model.ShipmentStatusPending,
	}
}

func FromShipmentModel(m model.ShipmentModel) ShipmentResponse {
	return ShipmentResponse{
		ShipmentID:               m.ShipmentID,
		ShipmentParcelID:         m.ShipmentParcelID,
		ShipmentCarrier:          m.ShipmentCarrier,
		ShipmentVesselNo:         m.ShipmentVesselNo,
		ShipmentDepartedAt:       m.ShipmentDepartedAt,
		ShipmentEstimatedArrival: m.ShipmentEstimatedArrival,
		ShipmentStatus:           m.ShipmentStatus,
		ShipmentStatusLabel:      model.StatusLabel(m.ShipmentStatus),
		ShipmentStatusColor:      model.StatusColor(m.ShipmentStatus),
		ShipmentCreatedAt:        m.CreatedAt,
		ShipmentUpdatedAt:        m.UpdatedAt,
	}
}

func FromTrackingModel(m model.TrackingUpdateModel) TrackingUpdateResponse {
	return TrackingUpdateResponse{
		TrackingUpdateID:          m.TrackingUpdateID,
		TrackingUpdateShipmentID:  m.TrackingUpdateShipmentID,
		TrackingUpdateStatus:      m.TrackingUpdateStatus,
		TrackingUpdateStatusLabel: model.StatusLabel(m.TrackingUpdateStatus),
		TrackingUpdateStatusColor: model.StatusColor(m.TrackingUpdateStatus),
		TrackingUpdateLocation:    m.TrackingUpdateLocation,
		TrackingUpdateNote:        m.TrackingUpdateNote,
		TrackingUpdateOccurredAt:  m.TrackingUpdateOccurredAt,
	}
}
