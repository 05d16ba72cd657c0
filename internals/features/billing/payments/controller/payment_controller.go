// file: internals/features/billing/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kirimku_backend/internals/features/billing/payments/dto"
	"kirimku_backend/internals/features/billing/payments/model"
	"kirimku_backend/internals/features/billing/payments/service"
	clientModel "kirimku_backend/internals/features/clients/model"
	parcelModel "kirimku_backend/internals/features/shipping/parcels/model"
	helper "kirimku_backend/internals/helpers"
)

type PaymentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db, Validator: validator.New()}
}

/* ======================= CREATE ======================= */
// POST /payments — client submits a payment against their parcel.
// Amounts above the open balance are accepted; the reconciler clamps the
// balance at zero.
func (h *PaymentController) Create(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !req.PaymentAmount.IsPositive() {
		return helper.JsonValidationError(c, "Invalid payment data", map[string][]string{
			"payment_amount": {"must be greater than zero"},
		})
	}

	var parcel parcelModel.ParcelModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&parcel, "parcel_id = ?", req.PaymentParcelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Parcel not found")
		}
		log.Printf("[ERROR] check parcel for payment: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to submit payment")
	}
	if parcel.ParcelClientID != clientID {
		return fiber.NewError(fiber.StatusForbidden, "This parcel belongs to another client")
	}

	currency := req.PaymentCurrency
	if currency == "" {
		currency = parcel.ParcelCurrency
	}

	payment := model.PaymentModel{
		PaymentParcelID:  req.PaymentParcelID,
		PaymentClientID:  clientID,
		PaymentInvoiceID: req.PaymentInvoiceID,
		PaymentAmount:    req.PaymentAmount,
		PaymentCurrency:  currency,
		PaymentMethod:    req.PaymentMethod,
		PaymentStatus:    model.PaymentStatusPending,
		PaymentReference: req.PaymentReference,
	}

	if err := h.DB.WithContext(c.UserContext()).Create(&payment).Error; err != nil {
		log.Printf("[ERROR] create payment: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to submit payment")
	}

	resp := dto.CreatePaymentResponse{Payment: payment}

	if req.PaymentMethod == model.PaymentMethodGateway {
		var profile clientModel.ClientModel
		name, email := "", ""
		if err := h.DB.WithContext(c.UserContext()).
			First(&profile, "client_id = ?", clientID).Error; err == nil {
			name, email = profile.ClientName, profile.ClientEmail
		}

		token, checkoutURL, err := service.CreateSnapTransaction(
			payment.PaymentID.String(), payment.PaymentAmount, name, email)
		if err != nil {
			log.Printf("[ERROR] open snap session: %v", err)
			return fiber.NewError(fiber.StatusBadGateway, "Payment gateway is unavailable")
		}

		provider := model.PaymentProviderMidtrans
		orderID := payment.PaymentID.String()
		if err := h.DB.WithContext(c.UserContext()).Model(&payment).Updates(map[string]any{
			"payment_gateway_provider": provider,
			"payment_external_id":      orderID,
			"payment_checkout_url":     checkoutURL,
		}).Error; err != nil {
			log.Printf("[ERROR] store gateway refs: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to submit payment")
		}
		resp.Payment = payment
		resp.SnapToken = token
		resp.CheckoutURL = checkoutURL
	}

	return helper.JsonCreated(c, "Payment submitted", resp)
}

/* ======================= LIST ======================= */
// GET /payments?parcel_id=&invoice_id=&client_id=&status=
func (h *PaymentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&model.PaymentModel{})
	for param, column := range map[string]string{
		"parcel_id":  "payment_parcel_id",
		"invoice_id": "payment_invoice_id",
		"client_id":  "payment_client_id",
	} {
		if raw := c.Query(param); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid "+param)
			}
			q = q.Where(column+" = ?", id)
		}
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("payment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count payments: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list payments")
	}

	var rows []model.PaymentModel
	if err := q.Order("payment_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list payments: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list payments")
	}
	return helper.JsonList(c, "Payments fetched", rows,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================= UPDATE ======================= */
// PATCH /payments/:id — staff corrections (mark a transfer verified, etc.)
func (h *PaymentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payment id")
	}

	var req dto.UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var payment model.PaymentModel
	if err := h.DB.WithContext(c.UserContext()).First(&payment, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}
		log.Printf("[ERROR] get payment: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update payment")
	}

	updates := map[string]any{}
	if req.PaymentStatus != nil {
		updates["payment_status"] = *req.PaymentStatus
		if model.IsSuccessfulStatus(*req.PaymentStatus) && payment.PaymentPaidAt == nil {
			updates["payment_paid_at"] = time.Now().UTC()
		}
	}
	if req.PaymentReference != nil {
		updates["payment_reference"] = *req.PaymentReference
	}
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "No changes", payment)
	}

	if err := h.DB.WithContext(c.UserContext()).Model(&payment).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update payment: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update payment")
	}
	return helper.JsonUpdated(c, "Payment updated", payment)
}

/* ======================= DELETE ======================= */
// DELETE /payments/:id (soft)
func (h *PaymentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payment id")
	}

	res := h.DB.WithContext(c.UserContext()).Delete(&model.PaymentModel{}, "payment_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] delete payment: %v", res.Error)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete payment")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Payment not found")
	}
	return helper.JsonDeleted(c, "Payment deleted", fiber.Map{"payment_id": id})
}

/* ======================= WEBHOOK ======================= */
// POST /payments/midtrans/notification — public endpoint; authenticity comes
// from the signature, not a session. Always answers 200 on handled
// notifications so Midtrans stops retrying.
func (h *PaymentController) MidtransWebhook(c *fiber.Ctx) error {
	var n dto.MidtransNotification
	if err := c.BodyParser(&n); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	if !service.VerifyWebhookSignature(n.OrderID, n.StatusCode, n.GrossAmount, n.SignatureKey) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid signature")
	}

	paymentID, err := uuid.Parse(n.OrderID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid order_id")
	}

	var payment model.PaymentModel
	if err := h.DB.WithContext(c.UserContext()).First(&payment, "payment_id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}
		log.Printf("[ERROR] get payment for webhook: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to process notification")
	}

	status := service.MapGatewayStatus(n.TransactionStatus, n.FraudStatus)
	updates := map[string]any{
		"payment_status": status,
		"payment_meta": datatypes.JSONMap{
			"transaction_id":     n.TransactionID,
			"transaction_status": n.TransactionStatus,
			"fraud_status":       n.FraudStatus,
			"payment_type":       n.PaymentType,
			"status_code":        n.StatusCode,
			"gross_amount":       n.GrossAmount,
		},
	}
	if model.IsSuccessfulStatus(status) && payment.PaymentPaidAt == nil {
		updates["payment_paid_at"] = time.Now().UTC()
	}

	if err := h.DB.WithContext(c.UserContext()).Model(&payment).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] apply webhook update: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to process notification")
	}

	log.Printf("[INFO] midtrans %s -> payment %s status %s", n.TransactionStatus, paymentID, status)
	return helper.JsonOK(c, "Notification processed", fiber.Map{
		"payment_id":     paymentID,
		"payment_status": status,
	})
}
