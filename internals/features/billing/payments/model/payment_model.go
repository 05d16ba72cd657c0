package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusPaid      = "paid"
	PaymentStatusSuccess   = "success"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
	PaymentStatusCanceled  = "canceled"
)

const (
	PaymentMethodGateway      = "gateway"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCash         = "cash"
	PaymentMethodQRIS         = "qris"
	PaymentMethodOther        = "other"
)

const PaymentProviderMidtrans = "midtrans"

// successfulStatuses is the exact case-insensitive set that counts toward
// paid-to-date. Anything else (pending, failed, refunded, typos) does not.
var successfulStatuses = map[string]struct{}{
	"completed":  {},
	"paid":       {},
	"success":    {},
	"successful": {},
}

// IsSuccessfulStatus reports whether a raw status string counts as money
// received.
func IsSuccessfulStatus(status string) bool {
	_, ok := successfulStatuses[strings.ToLower(strings.TrimSpace(status))]
	return ok
}

/* ===================== Model ===================== */

type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentParcelID uuid.UUID `gorm:"column:payment_parcel_id;type:uuid;not null;index" json:"payment_parcel_id"`
	PaymentClientID uuid.UUID `gorm:"column:payment_client_id;type:uuid;not null;index" json:"payment_client_id"`

	// Optional: the older flow paid per invoice, the newer one per parcel.
	// Reconciliation prefers this key when present and falls back to
	// payment_parcel_id.
	PaymentInvoiceID *uuid.UUID `gorm:"column:payment_invoice_id;type:uuid;index" json:"payment_invoice_id,omitempty"`

	PaymentAmount   decimal.Decimal `gorm:"column:payment_amount;type:decimal(18,2);not null;check:payment_amount > 0" json:"payment_amount"`
	PaymentCurrency string          `gorm:"column:payment_currency;type:varchar(8);not null;default:'USD'" json:"payment_currency"`

	PaymentStatus string `gorm:"column:payment_status;type:varchar(32);not null;default:'pending'" json:"payment_status"`
	PaymentMethod string `gorm:"column:payment_method;type:varchar(32);not null;default:'other'" json:"payment_method"`

	PaymentReference *string `gorm:"column:payment_reference" json:"payment_reference,omitempty"`

	// Gateway bookkeeping (manual methods leave these empty)
	PaymentGatewayProvider *string           `gorm:"column:payment_gateway_provider;type:varchar(32)" json:"payment_gateway_provider,omitempty"`
	PaymentExternalID      *string           `gorm:"column:payment_external_id" json:"payment_external_id,omitempty"` // order_id at the PSP
	PaymentCheckoutURL     *string           `gorm:"column:payment_checkout_url" json:"payment_checkout_url,omitempty"`
	PaymentMeta            datatypes.JSONMap `gorm:"column:payment_meta;type:jsonb" json:"payment_meta,omitempty"`

	PaymentPaidAt *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	CreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	UpdatedAt time.Time      `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"payment_deleted_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }

func (p *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if p.PaymentID == uuid.Nil {
		p.PaymentID = uuid.New()
	}
	return nil
}

/* ===================== Helpers ===================== */

func (p *PaymentModel) IsSuccessful() bool {
	return IsSuccessfulStatus(p.PaymentStatus)
}

func (p *PaymentModel) IsGateway() bool {
	return p.PaymentMethod == PaymentMethodGateway && p.PaymentGatewayProvider != nil
}
