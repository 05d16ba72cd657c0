package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"kirimku_backend/internals/features/billing/payments/model"
)

func TestVerifyWebhookSignature(t *testing.T) {
	InitMidtrans("test-server-key", false)

	orderID, statusCode, gross := "abc-123", "200", "55.00"
	sum := sha512.Sum512([]byte(orderID + statusCode + gross + "test-server-key"))
	good := hex.EncodeToString(sum[:])

	assert.True(t, VerifyWebhookSignature(orderID, statusCode, gross, good))
	assert.False(t, VerifyWebhookSignature(orderID, statusCode, gross, "forged"))
	assert.False(t, VerifyWebhookSignature(orderID, "201", gross, good), "any field change breaks the signature")
}

func TestMapGatewayStatus(t *testing.T) {
	cases := map[string]struct {
		tx, fraud, want string
	}{
		"settlement":        {"settlement", "", model.PaymentStatusCompleted},
		"capture accepted":  {"capture", "accept", model.PaymentStatusCompleted},
		"capture challenge": {"capture", "challenge", model.PaymentStatusPending},
		"pending":           {"pending", "", model.PaymentStatusPending},
		"deny":              {"deny", "", model.PaymentStatusFailed},
		"expire":            {"expire", "", model.PaymentStatusCanceled},
		"refund":            {"refund", "", model.PaymentStatusRefunded},
		"unknown":           {"somethingnew", "", model.PaymentStatusPending},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapGatewayStatus(tc.tx, tc.fraud))
		})
	}
}
