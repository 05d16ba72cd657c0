// file: internals/features/billing/invoices/controller/invoice_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kirimku_backend/internals/features/billing/invoices/dto"
	"kirimku_backend/internals/features/billing/invoices/model"
	paymentModel "kirimku_backend/internals/features/billing/payments/model"
	"kirimku_backend/internals/features/billing/reconcile"
	parcelModel "kirimku_backend/internals/features/shipping/parcels/model"
	helper "kirimku_backend/internals/helpers"
)

type InvoiceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db, Validator: validator.New()}
}

/* ======================= CREATE ======================= */
// POST /invoices — manual invoice, outside the parcel-registration flow.
func (h *InvoiceController) Create(c *fiber.Ctx) error {
	var req dto.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.InvoiceAmount.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "Invoice amount cannot be negative")
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value") ||
			strings.Contains(err.Error(), "UNIQUE constraint") ||
			errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "Invoice number already exists")
		}
		log.Printf("[ERROR] create invoice: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create invoice")
	}
	return helper.JsonCreated(c, "Invoice created", m)
}

/* ======================= LIST ======================= */
// GET /invoices?client_id=&parcel_id=&status=
// Rows are reconciled before they leave; status in the response is the
// derived one.
func (h *InvoiceController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&model.InvoiceModel{})
	if raw := c.Query("client_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid client_id")
		}
		q = q.Where("invoice_client_id = ?", id)
	}
	if raw := c.Query("parcel_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid parcel_id")
		}
		q = q.Where("invoice_parcel_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count invoices: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list invoices")
	}

	var invoices []model.InvoiceModel
	if err := q.Order("invoice_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).Find(&invoices).Error; err != nil {
		log.Printf("[ERROR] list invoices: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list invoices")
	}

	views, _, err := h.reconcileInvoices(c, invoices)
	if err != nil {
		return err
	}

	// post-reconcile status filter so PAID reflects payments, not the column
	if want := strings.ToUpper(strings.TrimSpace(c.Query("status"))); want != "" {
		filtered := views[:0]
		for _, v := range views {
			if v.Status == want {
				filtered = append(filtered, v)
			}
		}
		views = filtered
	}

	return helper.JsonList(c, "Invoices fetched", views,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================= DETAIL ======================= */
// GET /invoices/:id — reconciled view with the full payment history.
func (h *InvoiceController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid invoice id")
	}

	var invoice model.InvoiceModel
	if err := h.DB.WithContext(c.UserContext()).First(&invoice, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Invoice not found")
		}
		log.Printf("[ERROR] get invoice: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch invoice")
	}

	payments, err := h.paymentsFor(c, []model.InvoiceModel{invoice})
	if err != nil {
		return err
	}

	views := reconcile.Reconcile([]model.InvoiceModel{invoice}, payments)
	if len(views) == 0 {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch invoice")
	}
	view := views[0]

	ref, err := h.shipmentRefs(c, []model.InvoiceModel{invoice})
	if err != nil {
		return err
	}

	history := make([]dto.PaymentItemView, 0, len(payments))
	for _, p := range payments {
		if (p.PaymentInvoiceID != nil && *p.PaymentInvoiceID == invoice.InvoiceID) ||
			(p.PaymentInvoiceID == nil && p.PaymentParcelID == invoice.InvoiceParcelID) {
			history = append(history, dto.FromPaymentModel(p))
		}
	}

	return helper.JsonOK(c, "Invoice fetched", dto.InvoiceDetailView{
		InvoiceItemView: dto.FromInvoiceView(view, ref[invoice.InvoiceParcelID]),
		PaymentHistory:  history,
	})
}

/* ======================= STATUS OVERRIDE ======================= */
// PATCH /invoices/:id/status — writes the stored status only. The displayed
// status keeps coming from the reconciler.
func (h *InvoiceController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid invoice id")
	}

	var req dto.UpdateInvoiceStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.WithContext(c.UserContext()).Model(&model.InvoiceModel{}).
		Where("invoice_id = ?", id).
		Update("invoice_status", strings.ToLower(strings.TrimSpace(req.InvoiceStatus)))
	if res.Error != nil {
		log.Printf("[ERROR] update invoice status: %v", res.Error)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update invoice")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Invoice not found")
	}
	return helper.JsonUpdated(c, "Invoice status updated", fiber.Map{
		"invoice_id":     id,
		"invoice_status": strings.ToLower(strings.TrimSpace(req.InvoiceStatus)),
	})
}

/* ======================= DELETE ======================= */
// DELETE /invoices/:id (soft)
func (h *InvoiceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid invoice id")
	}

	res := h.DB.WithContext(c.UserContext()).Delete(&model.InvoiceModel{}, "invoice_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] delete invoice: %v", res.Error)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete invoice")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Invoice not found")
	}
	return helper.JsonDeleted(c, "Invoice deleted", fiber.Map{"invoice_id": id})
}

/* ======================= CLIENT DASHBOARD ======================= */
// GET /billing/me — everything the client's payments page needs in one call:
// summary, reconciled invoices and the raw payment list.
func (h *InvoiceController) MyBilling(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	return h.clientBilling(c, clientID)
}

// GET /clients/:id/billing — same view, any client, staff only.
func (h *InvoiceController) ClientBilling(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid client id")
	}
	return h.clientBilling(c, clientID)
}

func (h *InvoiceController) clientBilling(c *fiber.Ctx, clientID uuid.UUID) error {
	var invoices []model.InvoiceModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("invoice_client_id = ?", clientID).
		Order("invoice_created_at DESC").
		Find(&invoices).Error; err != nil {
		log.Printf("[ERROR] list client invoices: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch billing")
	}

	var payments []paymentModel.PaymentModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("payment_client_id = ?", clientID).
		Order("payment_created_at DESC").
		Find(&payments).Error; err != nil {
		log.Printf("[ERROR] list client payments: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch billing")
	}

	views := reconcile.Reconcile(invoices, payments)
	refs, err := h.shipmentRefs(c, invoices)
	if err != nil {
		return err
	}

	items := make([]dto.InvoiceItemView, 0, len(views))
	for _, v := range views {
		items = append(items, dto.FromInvoiceView(v, refs[v.Invoice.InvoiceParcelID]))
	}
	payItems := make([]dto.PaymentItemView, 0, len(payments))
	for _, p := range payments {
		payItems = append(payItems, dto.FromPaymentModel(p))
	}

	return helper.JsonOK(c, "Billing fetched", dto.ClientPaymentsView{
		Summary:  dto.FromSummary(reconcile.Summarize(views)),
		Invoices: items,
		Payments: payItems,
	})
}

/* ======================= internals ======================= */

// reconcileInvoices loads the payments touching the given invoices, runs the
// reconciler and maps to the list shape.
func (h *InvoiceController) reconcileInvoices(c *fiber.Ctx, invoices []model.InvoiceModel) ([]dto.InvoiceItemView, []paymentModel.PaymentModel, error) {
	payments, err := h.paymentsFor(c, invoices)
	if err != nil {
		return nil, nil, err
	}
	views := reconcile.Reconcile(invoices, payments)

	refs, err := h.shipmentRefs(c, invoices)
	if err != nil {
		return nil, nil, err
	}

	out := make([]dto.InvoiceItemView, 0, len(views))
	for _, v := range views {
		out = append(out, dto.FromInvoiceView(v, refs[v.Invoice.InvoiceParcelID]))
	}
	return out, payments, nil
}

func (h *InvoiceController) paymentsFor(c *fiber.Ctx, invoices []model.InvoiceModel) ([]paymentModel.PaymentModel, error) {
	if len(invoices) == 0 {
		return nil, nil
	}
	invoiceIDs := make([]uuid.UUID, 0, len(invoices))
	parcelIDs := make([]uuid.UUID, 0, len(invoices))
	for _, inv := range invoices {
		invoiceIDs = append(invoiceIDs, inv.InvoiceID)
		parcelIDs = append(parcelIDs, inv.InvoiceParcelID)
	}

	var payments []paymentModel.PaymentModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("payment_invoice_id IN ? OR payment_parcel_id IN ?", invoiceIDs, parcelIDs).
		Find(&payments).Error; err != nil {
		log.Printf("[ERROR] load payments for reconcile: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch invoices")
	}
	return payments, nil
}

// shipmentRefs maps parcel id → tracking number for the shipmentRef field.
func (h *InvoiceController) shipmentRefs(c *fiber.Ctx, invoices []model.InvoiceModel) (map[uuid.UUID]string, error) {
	refs := map[uuid.UUID]string{}
	if len(invoices) == 0 {
		return refs, nil
	}
	parcelIDs := make([]uuid.UUID, 0, len(invoices))
	for _, inv := range invoices {
		parcelIDs = append(parcelIDs, inv.InvoiceParcelID)
	}

	var parcels []parcelModel.ParcelModel
	if err := h.DB.WithContext(c.UserContext()).
		Select("parcel_id", "parcel_tracking_number").
		Where("parcel_id IN ?", parcelIDs).
		Find(&parcels).Error; err != nil {
		log.Printf("[ERROR] load parcels for refs: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch invoices")
	}
	for _, p := range parcels {
		refs[p.ParcelID] = p.ParcelTrackingNumber
	}
	return refs, nil
}
