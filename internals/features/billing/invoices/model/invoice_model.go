package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */
/* Stored status is advisory only. Whether an invoice is actually paid is
   answered by the reconciler at read time, never by this column. */

const (
	InvoiceStatusUnpaid   = "unpaid"
	InvoiceStatusPending  = "pending"
	InvoiceStatusPaid     = "paid"
	InvoiceStatusCanceled = "canceled"
)

/* ===================== Model ===================== */

type InvoiceModel struct {
	InvoiceID uuid.UUID `gorm:"column:invoice_id;type:uuid;default:gen_random_uuid();primaryKey" json:"invoice_id"`

	InvoiceNumber string `gorm:"column:invoice_number;type:varchar(30);uniqueIndex;not null" json:"invoice_number"`

	InvoiceParcelID uuid.UUID `gorm:"column:invoice_parcel_id;type:uuid;not null;index" json:"invoice_parcel_id"`
	InvoiceClientID uuid.UUID `gorm:"column:invoice_client_id;type:uuid;not null;index" json:"invoice_client_id"`

	// Fixed at creation (the parcel's shipping cost); no line-item model.
	InvoiceAmount   decimal.Decimal `gorm:"column:invoice_amount;type:decimal(18,2);not null;check:invoice_amount >= 0" json:"invoice_amount"`
	InvoiceCurrency string          `gorm:"column:invoice_currency;type:varchar(8);not null;default:'USD'" json:"invoice_currency"`

	// Free-form; canonicalized to UPPER at the presentation boundary.
	InvoiceStatus string `gorm:"column:invoice_status;type:varchar(32);not null;default:'unpaid'" json:"invoice_status"`

	CreatedAt time.Time      `gorm:"column:invoice_created_at;autoCreateTime" json:"invoice_created_at"`
	UpdatedAt time.Time      `gorm:"column:invoice_updated_at;autoUpdateTime" json:"invoice_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:invoice_deleted_at;index" json:"invoice_deleted_at,omitempty"`
}

func (InvoiceModel) TableName() string { return "invoices" }

func (m *InvoiceModel) BeforeCreate(tx *gorm.DB) error {
	if m.InvoiceID == uuid.Nil {
		m.InvoiceID = uuid.New()
	}
	return nil
}
