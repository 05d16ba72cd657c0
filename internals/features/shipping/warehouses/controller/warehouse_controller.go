// file: internals/features/shipping/warehouses/controller/warehouse_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"kirimku_backend/internals/features/shipping/warehouses/dto"
	"kirimku_backend/internals/features/shipping/warehouses/model"
	helper "kirimku_backend/internals/helpers"
)

type WarehouseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewWarehouseController(db *gorm.DB) *WarehouseController {
	return &WarehouseController{DB: db, Validator: validator.New()}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "UNIQUE constraint")
}

/* ======================= CREATE ======================= */
// POST /warehouses
func (h *WarehouseController) Create(c *fiber.Ctx) error {
	var req dto.CreateWarehouseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Warehouse code already exists")
		}
		log.Printf("[ERROR] create warehouse: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create warehouse")
	}
	return helper.JsonCreated(c, "Warehouse created", m)
}

/* ======================= LIST ======================= */
// GET /warehouses?status=&country_id=&capability=
func (h *WarehouseController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&model.WarehouseModel{})
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		q = q.Where("warehouse_status = ?", s)
	}
	if cid := c.QueryInt("country_id"); cid > 0 {
		q = q.Where("warehouse_country_id = ?", cid)
	}
	if capability := strings.TrimSpace(c.Query("capability")); capability != "" {
		q = q.Where("warehouse_capabilities @> ?", pq.StringArray{capability})
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count warehouses: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list warehouses")
	}

	var rows []model.WarehouseModel
	if err := q.Order("warehouse_name ASC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list warehouses: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list warehouses")
	}
	return helper.JsonList(c, "Warehouses fetched", rows,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================= UPDATE ======================= */
// PATCH /warehouses/:id
func (h *WarehouseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid warehouse id")
	}

	var req dto.UpdateWarehouseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m model.WarehouseModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "warehouse_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Warehouse not found")
		}
		log.Printf("[ERROR] get warehouse: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update warehouse")
	}

	updates := map[string]any{}
	if req.WarehouseName != nil {
		updates["warehouse_name"] = *req.WarehouseName
	}
	if req.WarehouseAddress != nil {
		updates["warehouse_address"] = *req.WarehouseAddress
	}
	if req.WarehouseCountryID != nil {
		updates["warehouse_country_id"] = *req.WarehouseCountryID
	}
	if req.WarehouseCapabilities != nil {
		updates["warehouse_capabilities"] = pq.StringArray(req.WarehouseCapabilities)
	}
	if req.WarehouseStatus != nil {
		updates["warehouse_status"] = *req.WarehouseStatus
	}
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "No changes", m)
	}

	if err := h.DB.WithContext(c.UserContext()).Model(&m).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update warehouse: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update warehouse")
	}
	return helper.JsonUpdated(c, "Warehouse updated", m)
}

/* ======================= DELETE ======================= */
// DELETE /warehouses/:id (soft)
func (h *WarehouseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid warehouse id")
	}

	res := h.DB.WithContext(c.UserContext()).Delete(&model.WarehouseModel{}, "warehouse_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] delete warehouse: %v", res.Error)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete warehouse")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Warehouse not found")
	}
	return helper.JsonDeleted(c, "Warehouse deleted", fiber.Map{"warehouse_id": id})
}

/* ======================= STAFF ======================= */
// POST /warehouses/staff
func (h *WarehouseController) AddStaff(c *fiber.Ctx) error {
	var req dto.CreateWarehouseStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var warehouse model.WarehouseModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&warehouse, "warehouse_id = ?", req.WarehouseStaffWarehouseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Warehouse not found")
		}
		log.Printf("[ERROR] check warehouse for staff: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to add staff")
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		log.Printf("[ERROR] add warehouse staff: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to add staff")
	}
	return helper.JsonCreated(c, "Staff added", m)
}

// GET /warehouses/:id/staff
func (h *WarehouseController) ListStaff(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid warehouse id")
	}

	var rows []model.WarehouseStaffModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("warehouse_staff_warehouse_id = ?", id).
		Order("warehouse_staff_created_at ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list warehouse staff: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list staff")
	}
	return helper.JsonOK(c, "Staff fetched", rows)
}

// DELETE /warehouses/staff/:id (soft)
func (h *WarehouseController) RemoveStaff(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid staff id")
	}

	res := h.DB.WithContext(c.UserContext()).
		Delete(&model.WarehouseStaffModel{}, "warehouse_staff_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] remove warehouse staff: %v", res.Error)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to remove staff")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Staff not found")
	}
	return helper.JsonDeleted(c, "Staff removed", fiber.Map{"warehouse_staff_id": id})
}
