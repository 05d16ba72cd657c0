// file: internals/features/shipping/shipments/controller/shipment_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	parcelModel "kirimku_backend/internals/features/shipping/parcels/model"
	"kirimku_backend/internals/features/shipping/shipments/dto"
	"kirimku_backend/internals/features/shipping/shipments/model"
	helper "kirimku_backend/internals/helpers"
)

type ShipmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewShipmentController(db *gorm.DB) *ShipmentController {
	return &ShipmentController{DB: db, Validator: validator.New()}
}

/* ======================= CREATE ======================= */
// POST /shipments
func (h *ShipmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var parcel parcelModel.ParcelModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&parcel, "parcel_id = ?", req.ShipmentParcelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Parcel not found")
		}
		log.Printf("[ERROR] check parcel for shipment: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create shipment")
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		log.Printf("[ERROR] create shipment: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create shipment")
	}
	return helper.JsonCreated(c, "Shipment created", dto.FromShipmentModel(m))
}

/* ======================= LIST ======================= */
// GET /shipments?parcel_id=&status=
func (h *ShipmentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&model.ShipmentModel{})
	if raw := c.Query("parcel_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid parcel_id")
		}
		q = q.Where("shipment_parcel_id = ?", id)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("shipment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count shipments: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list shipments")
	}

	var rows []model.ShipmentModel
	if err := q.Order("shipment_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list shipments: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list shipments")
	}

	out := make([]dto.ShipmentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromShipmentModel(r))
	}
	return helper.JsonList(c, "Shipments fetched", out,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================= DETAIL ======================= */
// GET /shipments/:id — shipment plus its full tracking history, newest first.
func (h *ShipmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid shipment id")
	}

	var m model.ShipmentModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "shipment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Shipment not found")
		}
		log.Printf("[ERROR] get shipment: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch shipment")
	}

	var events []model.TrackingUpdateModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("tracking_update_shipment_id = ?", id).
		Order("tracking_update_occurred_at DESC").
		Find(&events).Error; err != nil {
		log.Printf("[ERROR] list tracking updates: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch shipment")
	}

	history := make([]dto.TrackingUpdateResponse, 0, len(events))
	for _, e := range events {
		history = append(history, dto.FromTrackingModel(e))
	}
	return helper.JsonOK(c, "Shipment fetched", dto.ShipmentDetailResponse{
		ShipmentResponse: dto.FromShipmentModel(m),
		TrackingHistory:  history,
	})
}

/* ======================= UPDATE ======================= */
// PATCH /shipments/:id
func (h *ShipmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid shipment id")
	}

	var req dto.UpdateShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m model.ShipmentModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "shipment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Shipment not found")
		}
		log.Printf("[ERROR] get shipment: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update shipment")
	}

	updates := map[string]any{}
	if req.ShipmentCarrier != nil {
		updates["shipment_carrier"] = *req.ShipmentCarrier
	}
	if req.ShipmentVesselNo != nil {
		updates["shipment_vessel_no"] = *req.ShipmentVesselNo
	}
	if req.ShipmentDepartedAt != nil {
		updates["shipment_departed_at"] = *req.ShipmentDepartedAt
	}
	if req.ShipmentEstimatedArrival != nil {
		updates["shipment_estimated_arrival"] = *req.ShipmentEstimatedArrival
	}
	if req.ShipmentStatus != nil {
		updates["shipment_status"] = *req.ShipmentStatus
	}
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "No changes", dto.FromShipmentModel(m))
	}

	if err := h.DB.WithContext(c.UserContext()).Model(&m).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update shipment: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update shipment")
	}
	return helper.JsonUpdated(c, "Shipment updated", dto.FromShipmentModel(m))
}

/* ======================= DELETE ======================= */
// DELETE /shipments/:id (soft)
func (h *ShipmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid shipment id")
	}

	res := h.DB.WithContext(c.UserContext()).Delete(&model.ShipmentModel{}, "shipment_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] delete shipment: %v", res.Error)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete shipment")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Shipment not found")
	}
	return helper.JsonDeleted(c, "Shipment deleted", fiber.Map{"shipment_id": id})
}

/* ======================= TRACKING ======================= */
// POST /shipments/:id/tracking
// Appends one event and moves the shipment to the event's status. When the
// event says delivered, the parcel follows.
func (h *ShipmentController) AppendTracking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid shipment id")
	}

	var req dto.AppendTrackingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m model.ShipmentModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "shipment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Shipment not found")
		}
		log.Printf("[ERROR] get shipment: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record tracking update")
	}

	occurredAt := time.Now().UTC()
	if req.TrackingUpdateOccurredAt != nil {
		occurredAt = *req.TrackingUpdateOccurredAt
	}

	event := model.TrackingUpdateModel{
		TrackingUpdateShipmentID: m.ShipmentID,
		TrackingUpdateStatus:     req.TrackingUpdateStatus,
		TrackingUpdateLocation:   req.TrackingUpdateLocation,
		TrackingUpdateNote:       req.TrackingUpdateNote,
		TrackingUpdateOccurredAt: occurredAt,
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		if err := tx.Model(&m).Update("shipment_status", req.TrackingUpdateStatus).Error; err != nil {
			return err
		}
		if req.TrackingUpdateStatus == model.ShipmentStatusDelivered {
			return tx.Model(&parcelModel.ParcelModel{}).
				Where("parcel_id = ?", m.ShipmentParcelID).
				Update("parcel_status", parcelModel.ParcelStatusDelivered).Error
		}
		return nil
	}); err != nil {
		log.Printf("[ERROR] append tracking update: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record tracking update")
	}

	return helper.JsonCreated(c, "Tracking update recorded", dto.FromTrackingModel(event))
}
