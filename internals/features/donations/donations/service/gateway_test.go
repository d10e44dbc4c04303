package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func signWith(secret, orderID, paymentID string) string {
	m := hmac.New(sha256.New, []byte(secret))
	m.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(m.Sum(nil))
}

func TestRazorpayGatewayVerifySignature(t *testing.T) {
	gw := NewRazorpayGateway("rzp_test_key", "super-secret")

	t.Run("Given the matching signature, When verified, Then it passes", func(t *testing.T) {
		sig := signWith("super-secret", "order_ABC", "pay_XYZ")
		if !gw.VerifySignature("order_ABC", "pay_XYZ", sig) {
			t.Fatal("expected valid signature to verify")
		}
	})

	t.Run("Given the same triple twice, When verified, Then the result is stable", func(t *testing.T) {
		sig := signWith("super-secret", "order_ABC", "pay_XYZ")
		first := gw.VerifySignature("order_ABC", "pay_XYZ", sig)
		second := gw.VerifySignature("order_ABC", "pay_XYZ", sig)
		if first != second {
			t.Fatal("verification must be a pure function of its inputs")
		}
	})

	t.Run("Given a single flipped hex digit, When verified, Then it fails", func(t *testing.T) {
		sig := []byte(signWith("super-secret", "order_ABC", "pay_XYZ"))
		if sig[0] == 'a' {
			sig[0] = 'b'
		} else {
			sig[0] = 'a'
		}
		if gw.VerifySignature("order_ABC", "pay_XYZ", string(sig)) {
			t.Fatal("tampered signature must not verify")
		}
	})

	t.Run("Given a signature for another order, When verified, Then it fails", func(t *testing.T) {
		sig := signWith("super-secret", "order_OTHER", "pay_XYZ")
		if gw.VerifySignature("order_ABC", "pay_XYZ", sig) {
			t.Fatal("signature bound to a different order must not verify")
		}
	})

	t.Run("Given a signature under the wrong secret, When verified, Then it fails", func(t *testing.T) {
		sig := signWith("some-other-secret", "order_ABC", "pay_XYZ")
		if gw.VerifySignature("order_ABC", "pay_XYZ", sig) {
			t.Fatal("signature under a different secret must not verify")
		}
	})

	t.Run("Given malformed input, When verified, Then it fails without error", func(t *testing.T) {
		cases := map[string][3]string{
			"empty order":   {"", "pay_XYZ", signWith("super-secret", "order_ABC", "pay_XYZ")},
			"empty payment": {"order_ABC", "", signWith("super-secret", "order_ABC", "pay_XYZ")},
			"empty sig":     {"order_ABC", "pay_XYZ", ""},
			"non-hex sig":   {"order_ABC", "pay_XYZ", "zzzz-not-hex"},
			"truncated sig": {"order_ABC", "pay_XYZ", signWith("super-secret", "order_ABC", "pay_XYZ")[:10]},
		}
		for name, c := range cases {
			if gw.VerifySignature(c[0], c[1], c[2]) {
				t.Fatalf("%s: must not verify", name)
			}
		}
	})
}

func TestRazorpayGatewayPublicKeyID(t *testing.T) {
	gw := NewRazorpayGateway("rzp_test_key", "super-secret")
	if gw.PublicKeyID() != "rzp_test_key" {
		t.Fatalf("PublicKeyID = %q, want the key id", gw.PublicKeyID())
	}
}
