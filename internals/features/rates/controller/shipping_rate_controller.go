package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "kirimku_backend/internals/features/rates/dto"
	model "kirimku_backend/internals/features/rates/model"
	helper "kirimku_backend/internals/helpers"
)

type ShippingRateController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewShippingRateController(db *gorm.DB) *ShippingRateController {
	return &ShippingRateController{DB: db, Validator: validator.New()}
}

/* ======================= CREATE ======================= */
// POST /admin/rates
func (h *ShippingRateController) Create(c *fiber.Ctx) error {
	var req dto.CreateShippingRateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.ShippingRateBaseRate.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "shipping_rate_base_rate must not be negative")
	}

	m := req.ToModel()

	// One active rate per route tuple: deactivating the previous row here
	// keeps the resolver deterministic.
	if m.ShippingRateStatus == model.RateStatusActive {
		if err := h.DB.WithContext(c.UserContext()).Model(&model.ShippingRateModel{}).
			Where(`shipping_rate_shipment_type_id = ?
				AND shipping_rate_cargo_category_id = ?
				AND shipping_rate_origin_country_id = ?
				AND shipping_rate_destination_country_id = ?
				AND shipping_rate_status = ?`,
				m.ShippingRateShipmentTypeID, m.ShippingRateCargoCategoryID,
				m.ShippingRateOriginCountryID, m.ShippingRateDestinationCountryID,
				model.RateStatusActive).
			Update("shipping_rate_status", model.RateStatusInactive).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to supersede existing rate")
		}
	}

	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create rate")
	}
	return helper.JsonCreated(c, "Rate created", m)
}

/* ======================= GET BY ID ======================= */
// GET /admin/rates/:id
func (h *ShippingRateController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid rate ID")
	}
	var row model.ShippingRateModel
	if err := h.DB.WithContext(c.UserContext()).First(&row, "shipping_rate_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Rate not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", row)
}

/* ======================= LIST ======================= */
// GET /admin/rates?origin=&destination=&type=&category=&status=
func (h *ShippingRateController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.WithContext(c.UserContext()).Model(&model.ShippingRateModel{})
	if v, err := strconv.Atoi(c.Query("origin")); err == nil && v > 0 {
		base = base.Where("shipping_rate_origin_country_id = ?", v)
	}
	if v, err := strconv.Atoi(c.Query("destination")); err == nil && v > 0 {
		base = base.Where("shipping_rate_destination_country_id = ?", v)
	}
	if v, err := strconv.Atoi(c.Query("type")); err == nil && v > 0 {
		base = base.Where("shipping_rate_shipment_type_id = ?", v)
	}
	if v, err := strconv.Atoi(c.Query("category")); err == nil && v > 0 {
		base = base.Where("shipping_rate_cargo_category_id = ?", v)
	}
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		base = base.Where("shipping_rate_status = ?", s)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	var list []model.ShippingRateModel
	if err := base.Order("shipping_rate_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "OK", list, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================= UPDATE (PATCH, partial) ======================= */
// PATCH /admin/rates/:id
func (h *ShippingRateController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid rate ID")
	}

	var req dto.UpdateShippingRateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	patch := map[string]interface{}{}
	if req.ShippingRateBaseRate != nil {
		if req.ShippingRateBaseRate.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "shipping_rate_base_rate must not be negative")
		}
		patch["shipping_rate_base_rate"] = *req.ShippingRateBaseRate
	}
	if req.ShippingRateAdditionalCharges != nil {
		if req.ShippingRateAdditionalCharges.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "shipping_rate_additional_charges must not be negative")
		}
		patch["shipping_rate_additional_charges"] = *req.ShippingRateAdditionalCharges
	}
	if req.ShippingRateCurrency != nil {
		patch["shipping_rate_currency"] = *req.ShippingRateCurrency
	}
	if req.ShippingRateStatus != nil {
		patch["shipping_rate_status"] = *req.ShippingRateStatus
	}
	if len(patch) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	res := h.DB.WithContext(c.UserContext()).Model(&model.ShippingRateModel{}).
		Where("shipping_rate_id = ?", id).Updates(patch)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update rate")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Rate not found")
	}

	var updated model.ShippingRateModel
	if err := h.DB.WithContext(c.UserContext()).First(&updated, "shipping_rate_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Rate updated", updated)
}

/* ======================= DELETE (SOFT) ======================= */
// DELETE /admin/rates/:id
func (h *ShippingRateController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid rate ID")
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&model.ShippingRateModel{}, "shipping_rate_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Rate not found")
	}
	return helper.JsonDeleted(c, "Rate deleted", fiber.Map{"id": id})
}
