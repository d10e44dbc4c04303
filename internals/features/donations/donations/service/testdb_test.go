package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	campaignModel "sevasetu_backend/internals/features/campaigns/campaigns/model"
	"sevasetu_backend/internals/features/donations/donations/model"
)

// =============================================================================
// Shared test fixtures
// =============================================================================

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	// one connection so :memory: is shared across the test
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&campaignModel.Campaign{}, &model.Donation{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestCampaign(t *testing.T, db *gorm.DB, status string, gatewayEnabled bool) *campaignModel.Campaign {
	t.Helper()

	campaign := &campaignModel.Campaign{
		CampaignCode:           fmt.Sprintf("annadanam-%d", campaignSeq()),
		CampaignName:           "Annadanam Fund",
		CampaignTargetAmount:   100000,
		CampaignStatus:         status,
		CampaignIsPublic:       true,
		CampaignGatewayEnabled: gatewayEnabled,
	}
	if err := db.Create(campaign).Error; err != nil {
		t.Fatalf("create campaign: %v", err)
	}
	return campaign
}

var seq int

func campaignSeq() int {
	seq++
	return seq
}

// fakeGateway signs and verifies with the same HMAC scheme as the real
// adapter but never leaves the process.
type fakeGateway struct {
	secret     string
	failCreate bool
	orders     int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{secret: "test-secret"}
}

func (g *fakeGateway) CreateOrder(amount float64, currency, receipt string, notes map[string]interface{}) (*GatewayOrder, error) {
	if g.failCreate {
		return nil, errors.New("gateway unreachable")
	}
	g.orders++
	return &GatewayOrder{
		OrderID:  fmt.Sprintf("order_test_%d", g.orders),
		Amount:   amount,
		Currency: currency,
	}, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	return signature == g.sign(orderID, paymentID)
}

func (g *fakeGateway) PublicKeyID() string { return "rzp_test_fake" }

func (g *fakeGateway) sign(orderID, paymentID string) string {
	m := hmac.New(sha256.New, []byte(g.secret))
	m.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(m.Sum(nil))
}

// collectedAmount re-reads the campaign's ledger total.
func collectedAmount(t *testing.T, db *gorm.DB, campaign *campaignModel.Campaign) float64 {
	t.Helper()
	var fresh campaignModel.Campaign
	if err := db.Where("campaign_id = ?", campaign.CampaignID).First(&fresh).Error; err != nil {
		t.Fatalf("reload campaign: %v", err)
	}
	return fresh.CampaignCollectedAmount
}
