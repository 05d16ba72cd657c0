// file: internals/helpers/money.go
package helper

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Tolerance for "is this balance zero" checks. Amounts come from decimal
// columns but may pass through float JSON on the way in, so never compare
// money against zero exactly.
var ZeroEpsilon = decimal.NewFromFloat(0.00001)

// Round2 rounds to 2 decimal places. Presentation boundary only; keep
// running sums unrounded.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// IsZeroMoney reports whether d is zero within ZeroEpsilon.
func IsZeroMoney(d decimal.Decimal) bool {
	return d.Abs().LessThanOrEqual(ZeroEpsilon)
}

// ClampNonNegative floors negative amounts to zero (overpayment never
// produces a negative balance).
func ClampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// CanonicalStatus normalizes a free-form stored status for display.
func CanonicalStatus(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
