package controller

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "kirimku_backend/internals/features/masterdata/dto"
	model "kirimku_backend/internals/features/masterdata/model"
	helper "kirimku_backend/internals/helpers"
)

type ShipmentTypeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewShipmentTypeController(db *gorm.DB) *ShipmentTypeController {
	return &ShipmentTypeController{DB: db, Validator: validator.New()}
}

/* ======================= CREATE ======================= */
// POST /admin/masterdata/shipment-types
func (h *ShipmentTypeController) Create(c *fiber.Ctx) error {
	var req dto.CreateShipmentTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Shipment type already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create shipment type")
	}
	return helper.JsonCreated(c, "Shipment type created", m)
}

/* ======================= LIST ======================= */
// GET /masterdata/shipment-types
func (h *ShipmentTypeController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.WithContext(c.UserContext()).Model(&model.ShipmentTypeModel{})
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		base = base.Where("shipment_type_status = ?", s)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	var list []model.ShipmentTypeModel
	if err := base.Order("shipment_type_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "OK", list, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================= UPDATE (PATCH, partial) ======================= */
// PATCH /admin/masterdata/shipment-types/:id
func (h *ShipmentTypeController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid shipment type ID")
	}

	var req dto.UpdateShipmentTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	patch := map[string]interface{}{}
	if req.ShipmentTypeName != nil {
		patch["shipment_type_name"] = *req.ShipmentTypeName
	}
	if req.ShipmentTypeEstimatedDays != nil {
		patch["shipment_type_estimated_days"] = *req.ShipmentTypeEstimatedDays
	}
	if req.ShipmentTypeStatus != nil {
		patch["shipment_type_status"] = *req.ShipmentTypeStatus
	}
	if len(patch) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	res := h.DB.WithContext(c.UserContext()).Model(&model.ShipmentTypeModel{}).
		Where("shipment_type_id = ?", id).Updates(patch)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return fiber.NewError(fiber.StatusConflict, "Shipment type already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update shipment type")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Shipment type not found")
	}

	var updated model.ShipmentTypeModel
	if err := h.DB.WithContext(c.UserContext()).First(&updated, "shipment_type_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Shipment type updated", updated)
}

/* ======================= DELETE (SOFT) ======================= */
// DELETE /admin/masterdata/shipment-types/:id
func (h *ShipmentTypeController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid shipment type ID")
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&model.ShipmentTypeModel{}, "shipment_type_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Shipment type not found")
	}
	return helper.JsonDeleted(c, "Shipment type deleted", fiber.Map{"id": id})
}
