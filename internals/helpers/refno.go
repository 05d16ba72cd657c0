// file: internals/helpers/refno.go
package helper

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewRefNumber builds a human-readable reference like TRK-20260830-7F3A2C.
// Uniqueness is enforced by the unique index on the column, not here.
func NewRefNumber(prefix string) string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().UTC().Format("20060102"), raw[:6])
}
