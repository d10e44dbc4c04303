package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sevasetu_backend/internals/constants"
	donationController "sevasetu_backend/internals/features/donations/donations/controller"
	authMiddleware "sevasetu_backend/internals/middlewares/auth"
)

// AdminDonationRoutes: staff/admin endpoints (auth + role guarded upstream).
// Deletion reverses ledger credits, so it stays admin-only.
func AdminDonationRoutes(api fiber.Router, db *gorm.DB) {
	adminCtrl := donationController.NewDonationAdminController(db)
	summaryCtrl := donationController.NewDonationSummaryController(db)

	api.Post("/donations/offline", adminCtrl.RecordOffline)
	api.Get("/donations", adminCtrl.ListDonations)
	api.Get("/donations/:id", adminCtrl.GetDonation)
	api.Delete("/donations/:id",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("donation deletion"), constants.RoleAdmin),
		adminCtrl.DeleteDonation)

	api.Get("/campaigns/:id/summary", summaryCtrl.GetCampaignSummary)
}
