// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	campaignRoute "sevasetu_backend/internals/features/campaigns/campaigns/route"
	donationRoute "sevasetu_backend/internals/features/donations/donations/route"
	middlewares "sevasetu_backend/internals/middlewares"
	authMiddleware "sevasetu_backend/internals/middlewares/auth"

	"sevasetu_backend/internals/constants"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	public.Use(middlewares.DBMiddleware(db))
	donationRoute.AllDonationRoutes(public, db)
	campaignRoute.AllCampaignRoutes(public.Group("/campaigns"), db)

	// ===================== STAFF (offline entry + reporting) =====================
	log.Println("[INFO] Setting up STAFF group...")
	staff := app.Group("/api/a",
		middlewares.DBMiddleware(db),
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(
			constants.RoleErrorStaff("donation recording"),
			constants.RoleAdmin, constants.RoleStaff,
		),
	)
	donationRoute.AdminDonationRoutes(staff, db)

	// ===================== ADMIN (campaign administration) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a/campaigns",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("campaign administration"),
			constants.RoleAdmin,
		),
	)
	campaignRoute.AdminCampaignRoutes(admin, db)
}
