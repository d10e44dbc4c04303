package dto

import (
	"time"

	"github.com/google/uuid"

	"sevasetu_backend/internals/features/campaigns/campaigns/model"
)

/* ===================== Requests ===================== */

type CreateCampaignRequest struct {
	Name           string  `json:"name" validate:"required,min=3,max=120"`
	Description    *string `json:"description,omitempty"`
	TargetAmount   float64 `json:"target_amount" validate:"gte=0"`
	Status         *string `json:"status,omitempty" validate:"omitempty,oneof=draft active paused completed cancelled"`
	IsPublic       *bool   `json:"is_public,omitempty"`
	GatewayEnabled *bool   `json:"gateway_enabled,omitempty"`
}

// UpdateCampaignRequest is a patch: one optional field per mutable attribute.
// The collected amount is deliberately absent; it can only move through the
// ledger adjustment.
type UpdateCampaignRequest struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,min=3,max=120"`
	Description    *string  `json:"description,omitempty"`
	TargetAmount   *float64 `json:"target_amount,omitempty" validate:"omitempty,gte=0"`
	Status         *string  `json:"status,omitempty" validate:"omitempty,oneof=draft active paused completed cancelled"`
	IsPublic       *bool    `json:"is_public,omitempty"`
	GatewayEnabled *bool    `json:"gateway_enabled,omitempty"`
}

// ToUpdates maps only the fields present in the patch onto whitelisted
// columns.
func (r *UpdateCampaignRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["campaign_name"] = *r.Name
	}
	if r.Description != nil {
		updates["campaign_description"] = *r.Description
	}
	if r.TargetAmount != nil {
		updates["campaign_target_amount"] = *r.TargetAmount
	}
	if r.Status != nil {
		updates["campaign_status"] = *r.Status
	}
	if r.IsPublic != nil {
		updates["campaign_is_public"] = *r.IsPublic
	}
	if r.GatewayEnabled != nil {
		updates["campaign_gateway_enabled"] = *r.GatewayEnabled
	}
	return updates
}

/* ===================== Responses ===================== */

type CampaignResponse struct {
	CampaignID      uuid.UUID `json:"campaign_id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	TargetAmount    float64   `json:"target_amount"`
	CollectedAmount float64   `json:"collected_amount"`
	Status          string    `json:"status"`
	IsPublic        bool      `json:"is_public"`
	GatewayEnabled  bool      `json:"gateway_enabled"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewCampaignResponse(m *model.Campaign) CampaignResponse {
	return CampaignResponse{
		CampaignID:      m.CampaignID,
		Code:            m.CampaignCode,
		Name:            m.CampaignName,
		Description:     m.CampaignDescription,
		TargetAmount:    m.CampaignTargetAmount,
		CollectedAmount: m.CampaignCollectedAmount,
		Status:          m.CampaignStatus,
		IsPublic:        m.CampaignIsPublic,
		GatewayEnabled:  m.CampaignGatewayEnabled,
		CreatedAt:       m.CreatedAt,
	}
}

// PublicCampaignResponse is the donor-facing campaign card.
type PublicCampaignResponse struct {
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	TargetAmount    float64 `json:"target_amount"`
	CollectedAmount float64 `json:"collected_amount"`
	Status          string  `json:"status"`
	GatewayEnabled  bool    `json:"gateway_enabled"`
}

func NewPublicCampaignResponse(m *model.Campaign) PublicCampaignResponse {
	return PublicCampaignResponse{
		Code:            m.CampaignCode,
		Name:            m.CampaignName,
		Description:     m.CampaignDescription,
		TargetAmount:    m.CampaignTargetAmount,
		CollectedAmount: m.CampaignCollectedAmount,
		Status:          m.CampaignStatus,
		GatewayEnabled:  m.CampaignGatewayEnabled,
	}
}
