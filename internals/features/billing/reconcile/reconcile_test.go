package reconcile

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invoiceModel "kirimku_backend/internals/features/billing/invoices/model"
	paymentModel "kirimku_backend/internals/features/billing/payments/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func invoice(amount, status string) invoiceModel.InvoiceModel {
	return invoiceModel.InvoiceModel{
		InvoiceID:       uuid.New(),
		InvoiceNumber:   "INV-" + uuid.NewString()[:8],
		InvoiceParcelID: uuid.New(),
		InvoiceClientID: uuid.New(),
		InvoiceAmount:   dec(amount),
		InvoiceStatus:   status,
	}
}

func paymentFor(inv invoiceModel.InvoiceModel, amount, status string) paymentModel.PaymentModel {
	id := inv.InvoiceID
	return paymentModel.PaymentModel{
		PaymentID:        uuid.New(),
		PaymentParcelID:  inv.InvoiceParcelID,
		PaymentClientID:  inv.InvoiceClientID,
		PaymentInvoiceID: &id,
		PaymentAmount:    dec(amount),
		PaymentStatus:    status,
		PaymentMethod:    paymentModel.PaymentMethodBankTransfer,
	}
}

func TestReconcileNoPayments(t *testing.T) {
	inv := invoice("120.50", "unpaid")

	views := Reconcile([]invoiceModel.InvoiceModel{inv}, nil)
	require.Len(t, views, 1)

	v := views[0]
	assert.True(t, v.PaidToDate.IsZero())
	assert.True(t, v.Balance.Equal(dec("120.50")), "balance should equal the full amount")
	assert.Equal(t, DerivedStatusPending, v.DerivedStatus, "UNPAID displays as PENDING, never PAID")
}

func TestReconcileStoredStatusSurvivesWhenUnpaid(t *testing.T) {
	inv := invoice("80.00", "disputed")

	views := Reconcile([]invoiceModel.InvoiceModel{inv}, nil)
	require.Len(t, views, 1)
	assert.Equal(t, "DISPUTED", views[0].DerivedStatus, "stored status is canonicalized, not replaced")
}

func TestReconcileFullAndOverPayment(t *testing.T) {
	inv := invoice("100.00", "unpaid")
	payments := []paymentModel.PaymentModel{
		paymentFor(inv, "60.00", "completed"),
		paymentFor(inv, "60.00", "PAID"), // case-insensitive; pushes past the amount
	}

	views := Reconcile([]invoiceModel.InvoiceModel{inv}, payments)
	require.Len(t, views, 1)

	v := views[0]
	assert.True(t, v.PaidToDate.Equal(dec("120.00")))
	assert.True(t, v.Balance.IsZero(), "overpayment clamps to zero, never negative")
	assert.Equal(t, DerivedStatusPaid, v.DerivedStatus)
}

func TestReconcileIgnoresNonSuccessfulStatuses(t *testing.T) {
	inv := invoice("100.00", "unpaid")
	payments := []paymentModel.PaymentModel{
		paymentFor(inv, "40.00", "pending"),
		paymentFor(inv, "40.00", "failed"),
		paymentFor(inv, "40.00", "refunded"),
		paymentFor(inv, "40.00", "completd"), // typo variant must not count
		paymentFor(inv, "25.00", "Success"),
	}

	views := Reconcile([]invoiceModel.InvoiceModel{inv}, payments)
	require.Len(t, views, 1)

	v := views[0]
	assert.True(t, v.PaidToDate.Equal(dec("25.00")))
	assert.True(t, v.Balance.Equal(dec("75.00")))
	assert.Equal(t, DerivedStatusPending, v.DerivedStatus)
}

func TestReconcileParcelFallbackAssociation(t *testing.T) {
	inv := invoice("50.00", "unpaid")

	// Newer flow: payment carries the parcel, not the invoice.
	p := paymentFor(inv, "50.00", "successful")
	p.PaymentInvoiceID = nil

	views := Reconcile([]invoiceModel.InvoiceModel{inv}, []paymentModel.PaymentModel{p})
	require.Len(t, views, 1)
	assert.Equal(t, DerivedStatusPaid, views[0].DerivedStatus)
	assert.True(t, views[0].Balance.IsZero())
}

func TestReconcilePaymentsDoNotLeakAcrossInvoices(t *testing.T) {
	a := invoice("30.00", "unpaid")
	b := invoice("70.00", "unpaid")
	payments := []paymentModel.PaymentModel{
		paymentFor(a, "30.00", "completed"),
	}

	views := Reconcile([]invoiceModel.InvoiceModel{a, b}, payments)
	require.Len(t, views, 2)
	assert.Equal(t, DerivedStatusPaid, views[0].DerivedStatus)
	assert.True(t, views[1].Balance.Equal(dec("70.00")))
}

func TestReconcileIsIdempotent(t *testing.T) {
	a := invoice("100.00", "unpaid")
	b := invoice("55.25", "pending")
	payments := []paymentModel.PaymentModel{
		paymentFor(a, "33.33", "completed"),
		paymentFor(a, "10.00", "failed"),
		paymentFor(b, "55.25", "success"),
	}
	invoices := []invoiceModel.InvoiceModel{a, b}

	first := Reconcile(invoices, payments)
	second := Reconcile(invoices, payments)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, first[i].PaidToDate.Equal(second[i].PaidToDate))
		assert.True(t, first[i].Balance.Equal(second[i].Balance))
		assert.Equal(t, first[i].DerivedStatus, second[i].DerivedStatus)
	}
}

func TestSummarize(t *testing.T) {
	a := invoice("100.00", "unpaid")
	b := invoice("50.00", "unpaid")
	payments := []paymentModel.PaymentModel{
		paymentFor(a, "100.00", "completed"),
		paymentFor(b, "20.00", "completed"),
		paymentFor(b, "10.00", "pending"),
	}

	s := Summarize(Reconcile([]invoiceModel.InvoiceModel{a, b}, payments))
	assert.True(t, s.TotalPaid.Equal(dec("120.00")))
	assert.True(t, s.PendingPayment.Equal(dec("30.00")))
	assert.True(t, s.Overdue.IsZero())
}

func TestSummarizeEmptySet(t *testing.T) {
	s := Summarize(Reconcile(nil, nil))
	assert.True(t, s.TotalPaid.IsZero())
	assert.True(t, s.PendingPayment.IsZero())
	assert.True(t, s.Overdue.IsZero())
}

func TestReconcileEpsilonAbsorbsRoundingNoise(t *testing.T) {
	inv := invoice("100.00", "unpaid")
	payments := []paymentModel.PaymentModel{
		paymentFor(inv, "99.999999", "completed"),
	}

	views := Reconcile([]invoiceModel.InvoiceModel{inv}, payments)
	require.Len(t, views, 1)
	assert.Equal(t, DerivedStatusPaid, views[0].DerivedStatus,
		"residual below 1e-5 counts as settled")
}
