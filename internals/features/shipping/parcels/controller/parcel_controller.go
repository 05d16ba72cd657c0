// file: internals/features/shipping/parcels/controller/parcel_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	invoiceModel "kirimku_backend/internals/features/billing/invoices/model"
	ratesDto "kirimku_backend/internals/features/rates/dto"
	ratesService "kirimku_backend/internals/features/rates/service"
	"kirimku_backend/internals/features/shipping/parcels/dto"
	"kirimku_backend/internals/features/shipping/parcels/model"
	helper "kirimku_backend/internals/helpers"
)

type ParcelController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Resolver  *ratesService.RateResolver
}

func NewParcelController(db *gorm.DB) *ParcelController {
	return &ParcelController{
		DB:        db,
		Validator: validator.New(),
		Resolver:  ratesService.NewRateResolver(db),
	}
}

/* ======================= CREATE ======================= */
// POST /parcels
// Registers the parcel, prices it through the rate catalog and opens the
// invoice in the same transaction. No parcel without an invoice.
func (h *ParcelController) Create(c *fiber.Ctx) error {
	var req dto.CreateParcelRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, "Invalid parcel data", validationMap(err))
	}

	calc, err := h.Resolver.Calculate(c.UserContext(), ratesDto.CalculateRateRequest{
		ShipmentTypeID:       req.ParcelShipmentTypeID,
		CargoCategoryID:      req.ParcelCargoCategoryID,
		OriginCountryID:      req.ParcelOriginCountryID,
		DestinationCountryID: req.ParcelDestinationCountryID,
		Weight:               req.ParcelWeight,
		Volume:               req.ParcelVolume,
	})
	if err != nil {
		var missing *ratesService.MissingFieldError
		switch {
		case errors.As(err, &missing):
			return helper.JsonValidationError(c, "Missing required field", map[string][]string{
				missing.Field: {"required"},
			})
		case errors.Is(err, ratesService.ErrRateNotFound):
			return fiber.NewError(fiber.StatusNotFound,
				"No shipping rate is available for this route. Please contact support for a custom quote.")
		default:
			log.Printf("[ERROR] resolve rate for parcel: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to register parcel")
		}
	}

	parcel := req.ToModel()
	parcel.ParcelTrackingNumber = helper.NewRefNumber("TRK")
	parcel.ParcelShippingCost = calc.TotalCost
	parcel.ParcelCurrency = calc.Currency

	invoice := invoiceModel.InvoiceModel{
		InvoiceNumber:   helper.NewRefNumber("INV"),
		InvoiceClientID: req.ParcelClientID,
		InvoiceAmount:   calc.TotalCost,
		InvoiceCurrency: calc.Currency,
		InvoiceStatus:   invoiceModel.InvoiceStatusUnpaid,
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&parcel).Error; err != nil {
			return err
		}
		invoice.InvoiceParcelID = parcel.ParcelID
		return tx.Create(&invoice).Error
	}); err != nil {
		log.Printf("[ERROR] create parcel: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to register parcel")
	}

	return helper.JsonCreated(c, "Parcel registered", dto.CreateParcelResponse{
		Parcel:        dto.FromModel(parcel),
		InvoiceID:     invoice.InvoiceID,
		InvoiceNumber: invoice.InvoiceNumber,
		InvoiceAmount: invoice.InvoiceAmount,
		InvoiceStatus: invoice.InvoiceStatus,
	})
}

/* ======================= LIST ======================= */
// GET /parcels?client_id=&status=&tracking_number=
func (h *ParcelController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&model.ParcelModel{})
	if raw := c.Query("client_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid client_id")
		}
		q = q.Where("parcel_client_id = ?", id)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("parcel_status = ?", status)
	}
	if tn := c.Query("tracking_number"); tn != "" {
		q = q.Where("parcel_tracking_number = ?", tn)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count parcels: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list parcels")
	}

	var rows []model.ParcelModel
	if err := q.Order("parcel_created_at DESC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list parcels: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list parcels")
	}

	out := make([]dto.ParcelResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromModel(r))
	}
	return helper.JsonList(c, "Parcels fetched", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================= DETAIL ======================= */
// GET /parcels/:id   (accepts the uuid or the tracking number)
func (h *ParcelController) GetByID(c *fiber.Ctx) error {
	raw := c.Params("id")

	var parcel model.ParcelModel
	var err error
	if id, parseErr := uuid.Parse(raw); parseErr == nil {
		err = h.DB.WithContext(c.UserContext()).First(&parcel, "parcel_id = ?", id).Error
	} else {
		err = h.DB.WithContext(c.UserContext()).First(&parcel, "parcel_tracking_number = ?", raw).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Parcel not found")
		}
		log.Printf("[ERROR] get parcel: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch parcel")
	}
	return helper.JsonOK(c, "Parcel fetched", dto.FromModel(parcel))
}

/* ======================= UPDATE ======================= */
// PATCH /parcels/:id
// Route, client and shipping cost are frozen at registration; only the
// mutable handling fields can change here.
func (h *ParcelController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid parcel id")
	}

	var req dto.UpdateParcelRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, "Invalid parcel data", validationMap(err))
	}

	var parcel model.ParcelModel
	if err := h.DB.WithContext(c.UserContext()).First(&parcel, "parcel_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Parcel not found")
		}
		log.Printf("[ERROR] get parcel: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update parcel")
	}

	updates := map[string]any{}
	if req.ParcelStatus != nil {
		updates["parcel_status"] = *req.ParcelStatus
	}
	if req.ParcelWeight != nil {
		updates["parcel_weight"] = *req.ParcelWeight
	}
	if req.ParcelVolume != nil {
		updates["parcel_volume"] = *req.ParcelVolume
	}
	if req.ParcelDescription != nil {
		updates["parcel_description"] = *req.ParcelDescription
	}
	if req.ParcelWarehouseID != nil {
		updates["parcel_warehouse_id"] = *req.ParcelWarehouseID
	}
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "No changes", dto.FromModel(parcel))
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&parcel).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update parcel: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update parcel")
	}
	return helper.JsonUpdated(c, "Parcel updated", dto.FromModel(parcel))
}

/* ======================= DELETE ======================= */
// DELETE /parcels/:id (soft)
func (h *ParcelController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid parcel id")
	}

	res := h.DB.WithContext(c.UserContext()).Delete(&model.ParcelModel{}, "parcel_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] delete parcel: %v", res.Error)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete parcel")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Parcel not found")
	}
	return helper.JsonDeleted(c, "Parcel deleted", fiber.Map{"parcel_id": id})
}

func validationMap(err error) map[string][]string {
	out := map[string][]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	}
	return out
}
