package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "kirimku_backend/internals/features/masterdata/dto"
	model "kirimku_backend/internals/features/masterdata/model"
	helper "kirimku_backend/internals/helpers"
)

type CountryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCountryController(db *gorm.DB) *CountryController {
	return &CountryController{DB: db, Validator: validator.New()}
}

/* ======================= CREATE ======================= */
// POST /admin/masterdata/countries
func (h *CountryController) Create(c *fiber.Ctx) error {
	var req dto.CreateCountryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Country already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create country")
	}
	return helper.JsonCreated(c, "Country created", m)
}

/* ======================= LIST ======================= */
// GET /masterdata/countries?status=&q=&page=&per_page=
func (h *CountryController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.WithContext(c.UserContext()).Model(&model.CountryModel{})
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		base = base.Where("country_status = ?", s)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		base = base.Where("country_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	var list []model.CountryModel
	if err := base.Order("country_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "OK", list, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================= UPDATE (PATCH, partial) ======================= */
// PATCH /admin/masterdata/countries/:id
func (h *CountryController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid country ID")
	}

	var req dto.UpdateCountryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	patch := map[string]interface{}{}
	if req.CountryName != nil {
		patch["country_name"] = *req.CountryName
	}
	if req.CountryCode != nil {
		patch["country_code"] = *req.CountryCode
	}
	if req.CountryStatus != nil {
		patch["country_status"] = *req.CountryStatus
	}
	if len(patch) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	res := h.DB.WithContext(c.UserContext()).Model(&model.CountryModel{}).
		Where("country_id = ?", id).Updates(patch)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return fiber.NewError(fiber.StatusConflict, "Country already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update country")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Country not found")
	}

	var updated model.CountryModel
	if err := h.DB.WithContext(c.UserContext()).First(&updated, "country_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Country updated", updated)
}

/* ======================= DELETE (SOFT) ======================= */
// DELETE /admin/masterdata/countries/:id
func (h *CountryController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid country ID")
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&model.CountryModel{}, "country_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Country not found")
	}
	return helper.JsonDeleted(c, "Country deleted", fiber.Map{"id": id})
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "unique constraint")
}
