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

type CargoCategoryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCargoCategoryController(db *gorm.DB) *CargoCategoryController {
	return &CargoCategoryController{DB: db, Validator: validator.New()}
}

/* ======================= CREATE ======================= */
// POST /admin/masterdata/cargo-categories
func (h *CargoCategoryController) Create(c *fiber.Ctx) error {
	var req dto.CreateCargoCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Cargo category already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create cargo category")
	}
	return helper.JsonCreated(c, "Cargo category created", m)
}

/* ======================= LIST ======================= */
// GET /masterdata/cargo-categories
func (h *CargoCategoryController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.WithContext(c.UserContext()).Model(&model.CargoCategoryModel{})
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		base = base.Where("cargo_category_status = ?", s)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	var list []model.CargoCategoryModel
	if err := base.Order("cargo_category_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "OK", list, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================= UPDATE (PATCH, partial) ======================= */
// PATCH /admin/masterdata/cargo-categories/:id
func (h *CargoCategoryController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid cargo category ID")
	}

	var req dto.UpdateCargoCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	patch := map[string]interface{}{}
	if req.CargoCategoryName != nil {
		patch["cargo_category_name"] = *req.CargoCategoryName
	}
	if req.CargoCategoryUnit != nil {
		patch["cargo_category_unit"] = *req.CargoCategoryUnit
	}
	if req.CargoCategoryStatus != nil {
		patch["cargo_category_status"] = *req.CargoCategoryStatus
	}
	if len(patch) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	res := h.DB.WithContext(c.UserContext()).Model(&model.CargoCategoryModel{}).
		Where("cargo_category_id = ?", id).Updates(patch)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return fiber.NewError(fiber.StatusConflict, "Cargo category already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update cargo category")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Cargo category not found")
	}

	var updated model.CargoCategoryModel
	if err := h.DB.WithContext(c.UserContext()).First(&updated, "cargo_category_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Cargo category updated", updated)
}

/* ======================= DELETE (SOFT) ======================= */
// DELETE /admin/masterdata/cargo-categories/:id
func (h *CargoCategoryController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid cargo category ID")
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&model.CargoCategoryModel{}, "cargo_category_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Cargo category not found")
	}
	return helper.JsonDeleted(c, "Cargo category deleted", fiber.Map{"id": id})
}
