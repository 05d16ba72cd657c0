// file: internals/features/clients/controller/client_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kirimku_backend/internals/features/clients/dto"
	"kirimku_backend/internals/features/clients/model"
	helper "kirimku_backend/internals/helpers"
)

type ClientController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db, Validator: validator.New()}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "UNIQUE constraint")
}

/* ======================= CREATE ======================= */
// POST /clients
func (h *ClientController) Create(c *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Client profile already exists")
		}
		log.Printf("[ERROR] create client: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create client")
	}
	return helper.JsonCreated(c, "Client created", m)
}

/* ======================= LIST ======================= */
// GET /clients?status=&q=
func (h *ClientController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&model.ClientModel{})
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		q = q.Where("client_status = ?", s)
	}
	if needle := strings.TrimSpace(c.Query("q")); needle != "" {
		q = q.Where("client_name ILIKE ? OR client_email ILIKE ?", "%"+needle+"%", "%"+needle+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count clients: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list clients")
	}

	var rows []model.ClientModel
	if err := q.Order("client_name ASC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list clients: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list clients")
	}
	return helper.JsonList(c, "Clients fetched", rows,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================= DETAIL ======================= */
// GET /clients/:id
func (h *ClientController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid client id")
	}

	var m model.ClientModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "client_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Client not found")
		}
		log.Printf("[ERROR] get client: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch client")
	}
	return helper.JsonOK(c, "Client fetched", m)
}

/* ======================= ME ======================= */
// GET /clients/me — the profile bound to the authenticated account.
func (h *ClientController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var m model.ClientModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "client_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "No client profile for this account")
		}
		log.Printf("[ERROR] get own client profile: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch profile")
	}
	return helper.JsonOK(c, "Profile fetched", m)
}

/* ======================= UPDATE ======================= */
// PATCH /clients/:id
func (h *ClientController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid client id")
	}

	var req dto.UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m model.ClientModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "client_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Client not found")
		}
		log.Printf("[ERROR] get client: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update client")
	}

	updates := map[string]any{}
	if req.ClientName != nil {
		updates["client_name"] = *req.ClientName
	}
	if req.ClientPhone != nil {
		updates["client_phone"] = *req.ClientPhone
	}
	if req.ClientCompany != nil {
		updates["client_company"] = *req.ClientCompany
	}
	if req.ClientAddress != nil {
		updates["client_address"] = *req.ClientAddress
	}
	if req.ClientCountryID != nil {
		updates["client_country_id"] = *req.ClientCountryID
	}
	if req.ClientStatus != nil {
		updates["client_status"] = *req.ClientStatus
	}
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "No changes", m)
	}

	if err := h.DB.WithContext(c.UserContext()).Model(&m).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update client: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update client")
	}
	return helper.JsonUpdated(c, "Client updated", m)
}

/* ======================= DELETE ======================= */
// DELETE /clients/:id (soft)
func (h *ClientController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid client id")
	}

	res := h.DB.WithContext(c.UserContext()).Delete(&model.ClientModel{}, "client_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] delete client: %v", res.Error)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete client")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Client not found")
	}
	return helper.JsonDeleted(c, "Client deleted", fiber.Map{"client_id": id})
}
