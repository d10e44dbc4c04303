package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"

	razorpay "github.com/razorpay/razorpay-go"
)

/* =========================================================
   Payment Gateway Adapter

   Stateless. Knows nothing about donation or campaign rows.
========================================================= */

// GatewayOrder is the remote order the client pays against.
type GatewayOrder struct {
	OrderID  string
	Amount   float64
	Currency string
}

type PaymentGateway interface {
	// CreateOrder opens an order at the provider. Failures are reported,
	// never retried here; the retry policy belongs to the caller.
	CreateOrder(amount float64, currency, receipt string, notes map[string]interface{}) (*GatewayOrder, error)

	// VerifySignature recomputes the keyed hash over orderID|paymentID and
	// compares constant-time. False on any mismatch or malformed input.
	VerifySignature(orderID, paymentID, signature string) bool

	// PublicKeyID is the non-secret id the client needs to open the
	// payment UI.
	PublicKeyID() string
}

/* =========================================================
   Razorpay implementation
========================================================= */

type RazorpayGateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
}

var Gateway PaymentGateway

// InitRazorpay must be called at bootstrap, before any order is created.
func InitRazorpay(keyID, keySecret string) {
	Gateway = NewRazorpayGateway(keyID, keySecret)
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keyID:     keyID,
		keySecret: keySecret,
	}
}

func (g *RazorpayGateway) CreateOrder(amount float64, currency, receipt string, notes map[string]interface{}) (*GatewayOrder, error) {
	data := map[string]interface{}{
		"amount":   int64(math.Round(amount * 100)), // paise
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return nil, fmt.Errorf("razorpay order create: missing order id in response")
	}

	return &GatewayOrder{
		OrderID:  orderID,
		Amount:   amount,
		Currency: currency,
	}, nil
}

// VerifySignature checks HMAC-SHA256(keySecret, orderID + "|" + paymentID)
// against the supplied hex signature. hmac.Equal keeps the comparison
// constant-time.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	sig, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	m := hmac.New(sha256.New, []byte(g.keySecret))
	m.Write([]byte(orderID + "|" + paymentID))
	expected := m.Sum(nil)

	return hmac.Equal(sig, expected)
}

func (g *RazorpayGateway) PublicKeyID() string { return g.keyID }
