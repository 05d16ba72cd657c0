package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"kirimku_backend/internals/features/billing/invoices/model"
	paymentModel "kirimku_backend/internals/features/billing/payments/model"
	"kirimku_backend/internals/features/billing/reconcile"
	helper "kirimku_backend/internals/helpers"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type CreateInvoiceRequest struct {
	InvoiceNumber   string          `json:"invoice_number" validate:"required,min=3,max=30"`
	InvoiceParcelID uuid.UUID       `json:"invoice_parcel_id" validate:"required"`
	InvoiceClientID uuid.UUID       `json:"invoice_client_id" validate:"required"`
	InvoiceAmount   decimal.Decimal `json:"invoice_amount" validate:"required"`
	InvoiceCurrency string          `json:"invoice_currency" validate:"omitempty,len=3"`
	InvoiceStatus   string          `json:"invoice_status" validate:"omitempty,max=32"`
}

// UpdateInvoiceStatusRequest is the administrative override. It changes the
// stored status only; the displayed status is still recomputed from
// payments on every read.
type UpdateInvoiceStatusRequest struct {
	InvoiceStatus string `json:"invoice_status" validate:"required,max=32"`
}

/* =========================================================
   RESPONSE DTOs (view shapes consumed by the dashboard)
========================================================= */

type InvoiceItemView struct {
	InvoiceID uuid.UUID `json:"invoiceId"`
	// Alias of invoiceId kept for older dashboard builds.
	ID uuid.UUID `json:"id"`

	InvoiceNumber string `json:"invoiceNumber"`
	ShipmentRef   string `json:"shipmentRef"`

	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`

	// status is the derived display status; storedStatus is what the row
	// actually holds. The two are deliberately separate.
	Status       string `json:"status"`
	StoredStatus string `json:"storedStatus"`

	IssueDate time.Time  `json:"issueDate"`
	DueDate   *time.Time `json:"dueDate"` // no due-date concept; always null

	TotalPaid decimal.Decimal `json:"totalPaid"`
	Balance   decimal.Decimal `json:"balance"`
}

type PaymentItemView struct {
	PaymentID uuid.UUID  `json:"paymentId"`
	InvoiceID *uuid.UUID `json:"invoiceId"`
	ParcelID  uuid.UUID  `json:"parcelId"`

	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Date      time.Time       `json:"date"`
	Status    string          `json:"status"`
	Reference string          `json:"reference"`
}

type SummaryView struct {
	TotalPaid      decimal.Decimal `json:"totalPaid"`
	PendingPayment decimal.Decimal `json:"pendingPayment"`
	Overdue        decimal.Decimal `json:"overdue"`
}

type ClientPaymentsView struct {
	Summary  SummaryView       `json:"summary"`
	Invoices []InvoiceItemView `json:"invoices"`
	Payments []PaymentItemView `json:"payments"`
}

type InvoiceDetailView struct {
	InvoiceItemView
	PaymentHistory []PaymentItemView `json:"paymentHistory"`
}

/* =========================================================
   MAPPERS
========================================================= */

func (r CreateInvoiceRequest) ToModel() model.InvoiceModel {
	currency := r.InvoiceCurrency
	if currency == "" {
		currency = "USD"
	}
	status := r.InvoiceStatus
	if status == "" {
		status = model.InvoiceStatusUnpaid
	}
	return model.InvoiceModel{
		InvoiceNumber:   r.InvoiceNumber,
		InvoiceParcelID: r.InvoiceParcelID,
		InvoiceClientID: r.InvoiceClientID,
		InvoiceAmount:   r.InvoiceAmount,
		InvoiceCurrency: currency,
		InvoiceStatus:   status,
	}
}

// FromInvoiceView maps a reconciled invoice into the dashboard shape,
// rounding amounts at this presentation boundary.
func FromInvoiceView(v reconcile.InvoiceView, shipmentRef string) InvoiceItemView {
	return InvoiceItemView{
		InvoiceID:     v.Invoice.InvoiceID,
		ID:            v.Invoice.InvoiceID,
		InvoiceNumber: v.Invoice.InvoiceNumber,
		ShipmentRef:   shipmentRef,
		Amount:        helper.Round2(v.Invoice.InvoiceAmount),
		Currency:      v.Invoice.InvoiceCurrency,
		Status:        v.DerivedStatus,
		StoredStatus:  helper.CanonicalStatus(v.Invoice.InvoiceStatus),
		IssueDate:     v.Invoice.CreatedAt,
		DueDate:       nil,
		TotalPaid:     helper.Round2(v.PaidToDate),
		Balance:       helper.Round2(v.Balance),
	}
}

func FromPaymentModel(p paymentModel.PaymentModel) PaymentItemView {
	ref := ""
	if p.PaymentReference != nil {
		ref = *p.PaymentReference
	}
	return PaymentItemView{
		PaymentID: p.PaymentID,
		InvoiceID: p.PaymentInvoiceID,
		ParcelID:  p.PaymentParcelID,
		Amount:    helper.Round2(p.PaymentAmount),
		Method:    p.PaymentMethod,
		Date:      p.CreatedAt,
		Status:    helper.CanonicalStatus(p.PaymentStatus),
		Reference: ref,
	}
}

func FromSummary(s reconcile.Summary) SummaryView {
	return SummaryView{
		TotalPaid:      helper.Round2(s.TotalPaid),
		PendingPayment: helper.Round2(s.PendingPayment),
		Overdue:        decimal.Zero,
	}
}
