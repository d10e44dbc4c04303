package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationController "sevasetu_backend/internals/features/donations/donations/controller"
	middlewares "sevasetu_backend/internals/middlewares"
)

// AllDonationRoutes: donor-facing endpoints, no login required
func AllDonationRoutes(api fiber.Router, db *gorm.DB) {
	donationCtrl := donationController.NewDonationController(db)
	summaryCtrl := donationController.NewDonationSummaryController(db)

	api.Post("/donations/order", middlewares.DonationOrderRateLimiter(), donationCtrl.CreateOrder) // gateway order + pending donation
	api.Post("/donations/confirm", donationCtrl.ConfirmPayment)                                    // signature verify + complete

	api.Get("/campaigns/:code/recent", summaryCtrl.GetRecentPublicDonations) // anonymized feed
}
