package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	campaignController "sevasetu_backend/internals/features/campaigns/campaigns/controller"
)

// AllCampaignRoutes: public, read-only campaign card
func AllCampaignRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := campaignController.NewCampaignController(db)

	api.Get("/", ctrl.ListPublicCampaigns)
	api.Get("/:code", ctrl.GetPublicCampaign)
}
