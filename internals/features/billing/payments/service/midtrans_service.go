// file: internals/features/billing/payments/service/midtrans_service.go
package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/shopspring/decimal"

	"kirimku_backend/internals/features/billing/payments/model"
)

var (
	snapClient snap.Client
	serverKey  string
)

var ErrGatewayNotConfigured = errors.New("payment gateway is not configured")

// InitMidtrans wires the Snap client once at boot.
func InitMidtrans(key string, useProd bool) {
	serverKey = key
	env := midtrans.Sandbox
	if useProd {
		env = midtrans.Production
	}
	snapClient.New(key, env)
}

// CreateSnapTransaction opens a Snap checkout session for one payment.
// orderID is our payment id; Midtrans echoes it back on the webhook.
func CreateSnapTransaction(orderID string, amount decimal.Decimal, customerName, customerEmail string) (token string, redirectURL string, err error) {
	if serverKey == "" {
		return "", "", ErrGatewayNotConfigured
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount.Round(0).IntPart(),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customerName,
			Email: customerEmail,
		},
	}

	resp, mErr := snapClient.CreateTransaction(req)
	if mErr != nil {
		return "", "", mErr
	}
	return resp.Token, resp.RedirectURL, nil
}

// VerifyWebhookSignature checks the sha512 signature Midtrans sends with
// every notification: sha512(order_id + status_code + gross_amount + serverKey).
func VerifyWebhookSignature(orderID, statusCode, grossAmount, signatureKey string) bool {
	if serverKey == "" {
		return false
	}
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:]) == signatureKey
}

// MapGatewayStatus translates Midtrans transaction statuses into our payment
// statuses. Unknown statuses stay pending rather than guessing.
func MapGatewayStatus(transactionStatus, fraudStatus string) string {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "challenge" {
			return model.PaymentStatusPending
		}
		return model.PaymentStatusCompleted
	case "settlement":
		return model.PaymentStatusCompleted
	case "pending":
		return model.PaymentStatusPending
	case "deny", "failure":
		return model.PaymentStatusFailed
	case "cancel", "expire":
		return model.PaymentStatusCanceled
	case "refund", "partial_refund", "chargeback":
		return model.PaymentStatusRefunded
	default:
		return model.PaymentStatusPending
	}
}
