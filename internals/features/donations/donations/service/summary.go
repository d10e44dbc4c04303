package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	campaignService "sevasetu_backend/internals/features/campaigns/campaigns/service"
	"sevasetu_backend/internals/features/donations/donations/dto"
	"sevasetu_backend/internals/features/donations/donations/model"
	helper "sevasetu_backend/internals/helpers"
)

/* =========================================================
   Aggregation / reporting — read-only, no state machine
========================================================= */

type DonationSummaryService struct {
	DB        *gorm.DB
	Campaigns *campaignService.CampaignStore
}

func NewDonationSummaryService(db *gorm.DB) *DonationSummaryService {
	return &DonationSummaryService{
		DB:        db,
		Campaigns: campaignService.NewCampaignStore(db),
	}
}

// completedScope filters to the donations that count toward the ledger.
func (s *DonationSummaryService) completedScope(campaignID uuid.UUID) *gorm.DB {
	return s.DB.Model(&model.Donation{}).
		Where("donation_campaign_id = ?", campaignID).
		Where("donation_status = ?", model.DonationStatusCompleted)
}

// CampaignSummary returns per-campaign rollups: totals, per-channel
// breakdown and the unique donor count.
func (s *DonationSummaryService) CampaignSummary(campaignID uuid.UUID) (*dto.CampaignSummaryResponse, error) {
	campaign, err := s.Campaigns.Get(nil, campaignID)
	if err != nil {
		return nil, err
	}

	var totals struct {
		Count  int64
		Amount float64
	}
	if err := s.completedScope(campaignID).
		Select("COUNT(*) AS count, COALESCE(SUM(donation_amount), 0) AS amount").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("summary totals: %w", err)
	}

	var perChannel []dto.ChannelSummary
	if err := s.completedScope(campaignID).
		Select("donation_channel AS channel, COALESCE(SUM(donation_amount), 0) AS amount, COUNT(*) AS count").
		Group("donation_channel").
		Order("amount DESC").
		Scan(&perChannel).Error; err != nil {
		return nil, fmt.Errorf("summary per channel: %w", err)
	}

	// Donors are deduplicated by email when present, otherwise by name.
	var uniqueDonors int64
	if err := s.completedScope(campaignID).
		Select("COUNT(DISTINCT lower(COALESCE(donation_donor_email, donation_donor_name)))").
		Scan(&uniqueDonors).Error; err != nil {
		return nil, fmt.Errorf("summary unique donors: %w", err)
	}

	return &dto.CampaignSummaryResponse{
		CampaignID:      campaign.CampaignID,
		TotalDonations:  totals.Count,
		TotalCollected:  totals.Amount,
		PerChannel:      perChannel,
		UniqueDonors:    uniqueDonors,
		TargetAmount:    campaign.CampaignTargetAmount,
		CollectedAmount: campaign.CampaignCollectedAmount,
	}, nil
}

// RecentPublicDonations is the anonymized recent-donor feed for public
// display.
func (s *DonationSummaryService) RecentPublicDonations(campaignID uuid.UUID, limit int) ([]dto.PublicDonationResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	var donations []model.Donation
	if err := s.completedScope(campaignID).
		Order("donation_completed_at DESC").
		Limit(limit).
		Find(&donations).Error; err != nil {
		return nil, fmt.Errorf("recent donations: %w", err)
	}

	out := make([]dto.PublicDonationResponse, 0, len(donations))
	for i := range donations {
		out = append(out, dto.NewPublicDonationResponse(&donations[i]))
	}
	return out, nil
}

var donationSortColumns = map[string]string{
	"created_at": "donation_created_at",
	"amount":     "donation_amount",
	"status":     "donation_status",
	"channel":    "donation_channel",
}

// ListFilters narrows the admin donation listing.
type ListFilters struct {
	CampaignID *uuid.UUID
	Status     string
	Channel    string
}

func (s *DonationSummaryService) List(p helper.Params, f ListFilters) ([]model.Donation, int64, error) {
	q := s.DB.Model(&model.Donation{})
	if f.CampaignID != nil {
		q = q.Where("donation_campaign_id = ?", *f.CampaignID)
	}
	if f.Status != "" {
		q = q.Where("donation_status = ?", f.Status)
	}
	if f.Channel != "" {
		q = q.Where("donation_channel = ?", f.Channel)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count donations: %w", err)
	}

	order, err := p.SafeOrderClause(donationSortColumns, "created_at")
	if err != nil {
		return nil, 0, err
	}

	var donations []model.Donation
	if err := q.Order(order).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&donations).Error; err != nil {
		return nil, 0, fmt.Errorf("list donations: %w", err)
	}
	return donations, total, nil
}
