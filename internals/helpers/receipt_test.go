package helper

import (
	"regexp"
	"testing"
	"time"
)

func TestNewReceiptNumber(t *testing.T) {
	now := time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC)

	t.Run("Then the number carries the date and a random fragment", func(t *testing.T) {
		got := NewReceiptNumber(now)
		matched, err := regexp.MatchString(`^RCPT-20260824-[0-9A-F]{8}$`, got)
		if err != nil || !matched {
			t.Fatalf("receipt %q does not match RCPT-YYYYMMDD-XXXXXXXX", got)
		}
	})

	t.Run("Then two receipts for the same instant differ", func(t *testing.T) {
		if NewReceiptNumber(now) == NewReceiptNumber(now) {
			t.Fatal("receipt numbers must not collide for the same timestamp")
		}
	})
}
