package helper

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewReceiptNumber builds a receipt number for a completed donation, e.g.
// "RCPT-20260824-9F2C41AB". Generated exactly once, at the moment a donation
// reaches completed.
func NewReceiptNumber(now time.Time) string {
	frag := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("RCPT-%s-%s", now.Format("20060102"), frag)
}
