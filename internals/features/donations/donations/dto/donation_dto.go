package dto

import (
	"time"

	"github.com/google/uuid"

	"sevasetu_backend/internals/features/donations/donations/model"
	helper "sevasetu_backend/internals/helpers"
)

/* ===================== Requests ===================== */

// CreateOrderRequest initiates an online (gateway) donation.
type CreateOrderRequest struct {
	CampaignID uuid.UUID `json:"campaign_id" validate:"required"`
	Amount     float64   `json:"amount" validate:"required,gt=0"`
	DonorName  string    `json:"donor_name" validate:"required,min=2,max=100"`
	DonorEmail *string   `json:"donor_email,omitempty" validate:"omitempty,email"`
	DonorPhone *string   `json:"donor_phone,omitempty" validate:"omitempty,max=20"`
	DonorTaxID *string   `json:"donor_tax_id,omitempty" validate:"omitempty,max=20"`
	Remarks    *string   `json:"remarks,omitempty"`
}

// ConfirmPaymentRequest confirms a gateway payment with the signature the
// gateway handed to the donor-facing client.
type ConfirmPaymentRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

// RecordOfflineRequest records a staff-attested offline donation.
type RecordOfflineRequest struct {
	CampaignID uuid.UUID `json:"campaign_id" validate:"required"`
	Amount     float64   `json:"amount" validate:"required,gt=0"`
	Channel    string    `json:"channel" validate:"required"`
	DonorName  string    `json:"donor_name" validate:"required,min=2,max=100"`
	DonorEmail *string   `json:"donor_email,omitempty" validate:"omitempty,email"`
	DonorPhone *string   `json:"donor_phone,omitempty" validate:"omitempty,max=20"`
	DonorTaxID *string   `json:"donor_tax_id,omitempty" validate:"omitempty,max=20"`
	Remarks    *string   `json:"remarks,omitempty"`
}

/* ===================== Responses ===================== */

// CreateOrderResponse carries everything the client needs to open the
// payment UI.
type CreateOrderResponse struct {
	OrderID     string    `json:"order_id"`
	DonationID  uuid.UUID `json:"donation_id"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	PublicKeyID string    `json:"public_key_id"`
}

// ConfirmPaymentResponse is returned after a successful (or idempotent
// duplicate) confirmation.
type ConfirmPaymentResponse struct {
	DonationID    uuid.UUID `json:"donation_id"`
	Amount        float64   `json:"amount"`
	ReceiptNumber string    `json:"receipt_number"`
	DonorName     string    `json:"donor_name"`
}

type RecordOfflineResponse struct {
	DonationID    uuid.UUID `json:"donation_id"`
	ReceiptNumber string    `json:"receipt_number"`
}

type DonationResponse struct {
	DonationID    uuid.UUID  `json:"donation_id"`
	CampaignID    uuid.UUID  `json:"campaign_id"`
	DonorName     string     `json:"donor_name"`
	DonorEmail    *string    `json:"donor_email,omitempty"`
	DonorTaxID    *string    `json:"donor_tax_id,omitempty"`
	Channel       string     `json:"channel"`
	Amount        float64    `json:"amount"`
	Currency      string     `json:"currency"`
	Status        string     `json:"status"`
	ReceiptNumber *string    `json:"receipt_number,omitempty"`
	OrderID       *string    `json:"order_id,omitempty"`
	PaymentID     *string    `json:"payment_id,omitempty"`
	FailureReason *string    `json:"failure_reason,omitempty"`
	Remarks       *string    `json:"remarks,omitempty"`
	RecordedBy    *uuid.UUID `json:"recorded_by,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func NewDonationResponse(m *model.Donation) DonationResponse {
	return DonationResponse{
		DonationID:    m.DonationID,
		CampaignID:    m.DonationCampaignID,
		DonorName:     m.DonationDonorName,
		DonorEmail:    m.DonationDonorEmail,
		DonorTaxID:    m.DonationDonorTaxID,
		Channel:       m.DonationChannel,
		Amount:        m.DonationAmount,
		Currency:      m.DonationCurrency,
		Status:        m.DonationStatus,
		ReceiptNumber: m.DonationReceiptNumber,
		OrderID:       m.DonationOrderID,
		PaymentID:     m.DonationPaymentID,
		FailureReason: m.DonationFailureReason,
		Remarks:       m.DonationRemarks,
		RecordedBy:    m.DonationRecordedBy,
		CompletedAt:   m.DonationCompletedAt,
		CreatedAt:     m.CreatedAt,
	}
}

// PublicDonationResponse anonymizes the donor for the public feed.
type PublicDonationResponse struct {
	DonorName string    `json:"donor_name"`
	Amount    float64   `json:"amount"`
	Channel   string    `json:"channel"`
	Date      time.Time `json:"date"`
}

func NewPublicDonationResponse(m *model.Donation) PublicDonationResponse {
	date := m.CreatedAt
	if m.DonationCompletedAt != nil {
		date = *m.DonationCompletedAt
	}
	return PublicDonationResponse{
		DonorName: helper.MaskDonorName(m.DonationDonorName),
		Amount:    m.DonationAmount,
		Channel:   m.DonationChannel,
		Date:      date,
	}
}

/* ===================== Summary shapes ===================== */

type ChannelSummary struct {
	Channel string  `json:"channel"`
	Amount  float64 `json:"amount"`
	Count   int64   `json:"count"`
}

type CampaignSummaryResponse struct {
	CampaignID      uuid.UUID        `json:"campaign_id"`
	TotalDonations  int64            `json:"total_donations"`
	TotalCollected  float64          `json:"total_collected"`
	PerChannel      []ChannelSummary `json:"per_channel"`
	UniqueDonors    int64            `json:"unique_donors"`
	TargetAmount    float64          `json:"target_amount"`
	CollectedAmount float64          `json:"collected_amount"`
}
