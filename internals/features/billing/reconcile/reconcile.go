// file: internals/features/billing/reconcile/reconcile.go
//
// Pure read-time projection over the invoice and payment ledgers. Nothing
// here touches the database or mutates its inputs; every caller recomputes
// from current rows so there is no staleness to manage.
package reconcile

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	invoiceModel "kirimku_backend/internals/features/billing/invoices/model"
	paymentModel "kirimku_backend/internals/features/billing/payments/model"
	helper "kirimku_backend/internals/helpers"
)

// Display statuses derived at read time. The stored invoice status is never
// overwritten by these.
const (
	DerivedStatusPaid    = "PAID"
	DerivedStatusPending = "PENDING"
)

// InvoiceView is one reconciled invoice: the stored row plus the amounts
// derived from its payments. Amounts stay unrounded here; DTO mappers round
// at the presentation boundary.
type InvoiceView struct {
	Invoice       invoiceModel.InvoiceModel
	PaidToDate    decimal.Decimal
	Balance       decimal.Decimal
	DerivedStatus string
}

// Summary aggregates a set of reconciled invoices.
type Summary struct {
	TotalPaid      decimal.Decimal
	PendingPayment decimal.Decimal
	// No due-date concept exists in the ledger; this stays zero and is kept
	// for API shape compatibility.
	Overdue decimal.Decimal
}

// Reconcile partitions payments onto invoices and derives paid-to-date,
// balance and display status per invoice. Association is by
// payment_invoice_id when set, otherwise by the invoice's parcel_id
// (payments from the parcel-centric flow carry no invoice key).
// Pure function of its inputs: same ledgers in, same views out.
func Reconcile(invoices []invoiceModel.InvoiceModel, payments []paymentModel.PaymentModel) []InvoiceView {
	byInvoice := make(map[uuid.UUID][]paymentModel.PaymentModel)
	byParcel := make(map[uuid.UUID][]paymentModel.PaymentModel)
	for _, p := range payments {
		if p.PaymentInvoiceID != nil && *p.PaymentInvoiceID != uuid.Nil {
			byInvoice[*p.PaymentInvoiceID] = append(byInvoice[*p.PaymentInvoiceID], p)
		} else {
			byParcel[p.PaymentParcelID] = append(byParcel[p.PaymentParcelID], p)
		}
	}

	views := make([]InvoiceView, 0, len(invoices))
	for _, inv := range invoices {
		paid := decimal.Zero
		for _, p := range byInvoice[inv.InvoiceID] {
			if p.IsSuccessful() {
				paid = paid.Add(p.PaymentAmount)
			}
		}
		for _, p := range byParcel[inv.InvoiceParcelID] {
			if p.IsSuccessful() {
				paid = paid.Add(p.PaymentAmount)
			}
		}

		balance := helper.ClampNonNegative(inv.InvoiceAmount.Sub(paid))
		views = append(views, InvoiceView{
			Invoice:       inv,
			PaidToDate:    paid,
			Balance:       balance,
			DerivedStatus: deriveStatus(inv.InvoiceStatus, balance),
		})
	}
	return views
}

// Summarize rolls reconciled invoices up into the client-facing totals.
func Summarize(views []InvoiceView) Summary {
	s := Summary{
		TotalPaid:      decimal.Zero,
		PendingPayment: decimal.Zero,
		Overdue:        decimal.Zero,
	}
	for _, v := range views {
		s.TotalPaid = s.TotalPaid.Add(v.PaidToDate)
		s.PendingPayment = s.PendingPayment.Add(v.Balance)
	}
	return s
}

// deriveStatus: PAID once the balance is zero within epsilon, regardless of
// what the stored column says; otherwise the canonicalized stored status,
// with UNPAID shown as PENDING.
func deriveStatus(stored string, balance decimal.Decimal) string {
	if helper.IsZeroMoney(balance) {
		return DerivedStatusPaid
	}
	st := helper.CanonicalStatus(stored)
	if st == "UNPAID" || st == "" {
		return DerivedStatusPending
	}
	return st
}
