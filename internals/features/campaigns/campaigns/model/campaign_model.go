package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
)

/* ===================== Model ===================== */

type Campaign struct {
	CampaignID uuid.UUID `gorm:"column:campaign_id;type:uuid;primaryKey" json:"campaign_id"`

	// Human-shareable code, slug-generated from the name
	CampaignCode string `gorm:"column:campaign_code;type:varchar(160);not null;uniqueIndex" json:"campaign_code"`

	CampaignName        string  `gorm:"column:campaign_name;type:varchar(120);not null" json:"campaign_name"`
	CampaignDescription *string `gorm:"column:campaign_description;type:text" json:"campaign_description,omitempty"`

	// Amounts in INR. The collected amount is only ever touched through
	// CampaignStore.AdjustCollected and the reconcile repair.
	CampaignTargetAmount    float64 `gorm:"column:campaign_target_amount;type:numeric(14,2);not null;check:campaign_target_amount >= 0" json:"campaign_target_amount"`
	CampaignCollectedAmount float64 `gorm:"column:campaign_collected_amount;type:numeric(14,2);not null;default:0;check:campaign_collected_amount >= 0" json:"campaign_collected_amount"`

	CampaignStatus         string `gorm:"column:campaign_status;type:varchar(20);not null;default:'draft'" json:"campaign_status"`
	CampaignIsPublic       bool   `gorm:"column:campaign_is_public;not null;default:false" json:"campaign_is_public"`
	CampaignGatewayEnabled bool   `gorm:"column:campaign_gateway_enabled;not null;default:false" json:"campaign_gateway_enabled"`

	CampaignCreatedBy *uuid.UUID `gorm:"column:campaign_created_by;type:uuid" json:"campaign_created_by,omitempty"`

	CreatedAt time.Time      `gorm:"column:campaign_created_at;autoCreateTime" json:"campaign_created_at"`
	UpdatedAt time.Time      `gorm:"column:campaign_updated_at;autoUpdateTime" json:"campaign_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:campaign_deleted_at;index" json:"campaign_deleted_at,omitempty"`
}

func (Campaign) TableName() string { return "campaigns" }

func (m *Campaign) BeforeCreate(tx *gorm.DB) error {
	if m.CampaignID == uuid.Nil {
		m.CampaignID = uuid.New()
	}
	return nil
}

/* ===================== Helpers ===================== */

func (m *Campaign) IsActive() bool {
	return m.CampaignStatus == CampaignStatusActive
}

// AcceptsGatewayFunds reports whether online donations may be initiated.
func (m *Campaign) AcceptsGatewayFunds() bool {
	return m.IsActive() && m.CampaignGatewayEnabled
}
