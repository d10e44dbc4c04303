package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	DonationStatusPending   = "pending"
	DonationStatusCompleted = "completed"
	DonationStatusFailed    = "failed"
)

const (
	DonationChannelGateway = "gateway"
	DonationChannelCash    = "cash"
	DonationChannelBank    = "bank"
	DonationChannelUPI     = "upi"
	DonationChannelCheque  = "cheque"
	DonationChannelInKind  = "inkind"
)

// OfflineChannels are the channels staff may record directly; their
// authenticity is attested by the recording staff member, not a signature.
var OfflineChannels = map[string]struct{}{
	DonationChannelCash:   {},
	DonationChannelBank:   {},
	DonationChannelUPI:    {},
	DonationChannelCheque: {},
	DonationChannelInKind: {},
}

func IsOfflineChannel(channel string) bool {
	_, ok := OfflineChannels[channel]
	return ok
}

/* ===================== Model ===================== */

type Donation struct {
	DonationID uuid.UUID `gorm:"column:donation_id;type:uuid;primaryKey" json:"donation_id"`

	DonationCampaignID uuid.UUID `gorm:"column:donation_campaign_id;type:uuid;not null;index" json:"donation_campaign_id"`

	// Donor identity
	DonationDonorName  string  `gorm:"column:donation_donor_name;type:varchar(100);not null" json:"donation_donor_name"`
	DonationDonorEmail *string `gorm:"column:donation_donor_email;type:varchar(120)" json:"donation_donor_email,omitempty"`
	DonationDonorPhone *string `gorm:"column:donation_donor_phone;type:varchar(20)" json:"donation_donor_phone,omitempty"`
	DonationDonorTaxID *string `gorm:"column:donation_donor_tax_id;type:varchar(20)" json:"donation_donor_tax_id,omitempty"`

	DonationChannel  string  `gorm:"column:donation_channel;type:varchar(20);not null" json:"donation_channel"`
	DonationAmount   float64 `gorm:"column:donation_amount;type:numeric(14,2);not null;check:donation_amount > 0" json:"donation_amount"`
	DonationCurrency string  `gorm:"column:donation_currency;type:varchar(8);not null;default:'INR'" json:"donation_currency"`

	DonationStatus string `gorm:"column:donation_status;type:varchar(20);not null;default:'pending'" json:"donation_status"`

	// Assigned exactly once, at the moment the donation reaches completed
	DonationReceiptNumber *string `gorm:"column:donation_receipt_number;type:varchar(40);uniqueIndex" json:"donation_receipt_number,omitempty"`

	// Gateway triple (gateway channel only)
	DonationOrderID   *string `gorm:"column:donation_order_id;type:varchar(100);uniqueIndex" json:"donation_order_id,omitempty"`
	DonationPaymentID *string `gorm:"column:donation_payment_id;type:varchar(100)" json:"donation_payment_id,omitempty"`
	DonationSignature *string `gorm:"column:donation_signature;type:varchar(200)" json:"donation_signature,omitempty"`

	DonationFailureReason *string `gorm:"column:donation_failure_reason;type:text" json:"donation_failure_reason,omitempty"`
	DonationRemarks       *string `gorm:"column:donation_remarks;type:text" json:"donation_remarks,omitempty"`

	// Staff actor for offline entries
	DonationRecordedBy *uuid.UUID `gorm:"column:donation_recorded_by;type:uuid" json:"donation_recorded_by,omitempty"`

	DonationMeta datatypes.JSONMap `gorm:"column:donation_meta;type:jsonb" json:"donation_meta,omitempty"`

	DonationCompletedAt *time.Time     `gorm:"column:donation_completed_at" json:"donation_completed_at,omitempty"`
	CreatedAt           time.Time      `gorm:"column:donation_created_at;autoCreateTime" json:"donation_created_at"`
	UpdatedAt           time.Time      `gorm:"column:donation_updated_at;autoUpdateTime" json:"donation_updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"column:donation_deleted_at;index" json:"donation_deleted_at,omitempty"`
}

func (Donation) TableName() string { return "donations" }

func (m *Donation) BeforeCreate(tx *gorm.DB) error {
	if m.DonationID == uuid.Nil {
		m.DonationID = uuid.New()
	}
	return nil
}

/* ===================== Helpers ===================== */

func (m *Donation) IsGateway() bool {
	return m.DonationChannel == DonationChannelGateway
}

func (m *Donation) IsCompleted() bool {
	return m.DonationStatus == DonationStatusCompleted
}

func (m *Donation) IsPending() bool {
	return m.DonationStatus == DonationStatusPending
}
