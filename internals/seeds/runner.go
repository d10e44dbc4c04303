package seeds

import (
	campaigns "sevasetu_backend/internals/seeds/campaigns"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {
	campaigns.SeedCampaignsFromJSON(db, "internals/seeds/campaigns/data_campaigns.json")
}
