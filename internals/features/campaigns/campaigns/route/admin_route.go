package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	campaignController "sevasetu_backend/internals/features/campaigns/campaigns/controller"
)

// AdminCampaignRoutes: campaign administration (admin only, guarded upstream)
func AdminCampaignRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := campaignController.NewCampaignController(db)

	api.Post("/", ctrl.CreateCampaign)
	api.Get("/", ctrl.ListCampaigns)
	api.Get("/:id", ctrl.GetCampaign)
	api.Patch("/:id", ctrl.UpdateCampaign)
	api.Delete("/:id", ctrl.DeleteCampaign)
}
