// 📁 controller/donation_summary_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	campaignService "sevasetu_backend/internals/features/campaigns/campaigns/service"
	donationService "sevasetu_backend/internals/features/donations/donations/service"
	helper "sevasetu_backend/internals/helpers"
)

type DonationSummaryController struct {
	Summary   *donationService.DonationSummaryService
	Campaigns *campaignService.CampaignStore
}

func NewDonationSummaryController(db *gorm.DB) *DonationSummaryController {
	return &DonationSummaryController{
		Summary:   donationService.NewDonationSummaryService(db),
		Campaigns: campaignService.NewCampaignStore(db),
	}
}

// 🟢 CAMPAIGN SUMMARY (staff/admin): totals, per-channel breakdown, unique
// donors
func (ctrl *DonationSummaryController) GetCampaignSummary(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid campaign id")
	}

	summary, err := ctrl.Summary.CampaignSummary(id)
	if err != nil {
		if errors.Is(err, campaignService.ErrCampaignNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Campaign not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build campaign summary")
	}
	return helper.JsonOK(c, "", summary)
}

// 🟢 RECENT PUBLIC DONATIONS: anonymized feed for the public campaign page,
// looked up by campaign code
func (ctrl *DonationSummaryController) GetRecentPublicDonations(c *fiber.Ctx) error {
	campaign, err := ctrl.Campaigns.GetByCode(c.Params("code"))
	if err != nil || !campaign.CampaignIsPublic {
		if err != nil && !errors.Is(err, campaignService.ErrCampaignNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch campaign")
		}
		return helper.JsonError(c, fiber.StatusNotFound, "Campaign not found")
	}

	limit := c.QueryInt("limit", 10)
	feed, err := ctrl.Summary.RecentPublicDonations(campaign.CampaignID, limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch recent donations")
	}
	return helper.JsonOK(c, "", feed)
}
