package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"kirimku_backend/internals/features/billing/payments/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type CreatePaymentRequest struct {
	PaymentParcelID  uuid.UUID  `json:"payment_parcel_id" validate:"required"`
	PaymentInvoiceID *uuid.UUID `json:"payment_invoice_id" validate:"omitempty"`

	PaymentAmount   decimal.Decimal `json:"payment_amount" validate:"required"`
	PaymentCurrency string          `json:"payment_currency" validate:"omitempty,len=3"`
	PaymentMethod   string          `json:"payment_method" validate:"required,oneof=gateway bank_transfer cash qris other"`

	PaymentReference *string `json:"payment_reference" validate:"omitempty,max=100"`
}

type UpdatePaymentRequest struct {
	PaymentStatus    *string `json:"payment_status" validate:"omitempty,oneof=pending completed paid success failed refunded canceled"`
	PaymentReference *string `json:"payment_reference" validate:"omitempty,max=100"`
}

// MidtransNotification is the webhook body; only the fields we act on.
type MidtransNotification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
	TransactionID     string `json:"transaction_id"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

// CreatePaymentResponse carries the checkout URL when method=gateway.
type CreatePaymentResponse struct {
	Payment     model.PaymentModel `json:"payment"`
	SnapToken   string             `json:"snap_token,omitempty"`
	CheckoutURL string             `json:"checkout_url,omitempty"`
}
