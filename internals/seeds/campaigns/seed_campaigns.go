package campaigns

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"sevasetu_backend/internals/features/campaigns/campaigns/model"
	helper "sevasetu_backend/internals/helpers"
)

type CampaignSeed struct {
	CampaignName           string  `json:"campaign_name"`
	CampaignDescription    string  `json:"campaign_description"`
	CampaignTargetAmount   float64 `json:"campaign_target_amount"`
	CampaignStatus         string  `json:"campaign_status"`
	CampaignIsPublic       bool    `json:"campaign_is_public"`
	CampaignGatewayEnabled bool    `json:"campaign_gateway_enabled"`
}

func SeedCampaignsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed JSON: %v", err)
	}

	var campaigns []CampaignSeed
	if err := json.Unmarshal(file, &campaigns); err != nil {
		log.Fatalf("❌ Failed to decode seed JSON: %v", err)
	}

	for _, seed := range campaigns {
		code := helper.GenerateSlug(seed.CampaignName)

		var existing model.Campaign
		if err := db.Where("campaign_code = ?", code).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Campaign %s already seeded, skipping...", code)
			continue
		}

		desc := seed.CampaignDescription
		campaign := model.Campaign{
			CampaignCode:           code,
			CampaignName:           seed.CampaignName,
			CampaignDescription:    &desc,
			CampaignTargetAmount:   seed.CampaignTargetAmount,
			CampaignStatus:         seed.CampaignStatus,
			CampaignIsPublic:       seed.CampaignIsPublic,
			CampaignGatewayEnabled: seed.CampaignGatewayEnabled,
		}
		if err := db.Create(&campaign).Error; err != nil {
			log.Printf("❌ Failed to seed campaign %s: %v", code, err)
			continue
		}
		log.Printf("✅ Campaign %s seeded", code)
	}
}
