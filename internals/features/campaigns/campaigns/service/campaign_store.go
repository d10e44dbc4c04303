package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "sevasetu_backend/internals/helpers"

	"sevasetu_backend/internals/features/campaigns/campaigns/model"
)

var ErrCampaignNotFound = errors.New("campaign not found")

/* =========================================================
   CampaignStore

   Owns campaign rows. The collected amount has exactly one
   write path: AdjustCollected.
========================================================= */

type CampaignStore struct {
	DB *gorm.DB
}

func NewCampaignStore(db *gorm.DB) *CampaignStore {
	return &CampaignStore{DB: db}
}

func (s *CampaignStore) Get(db *gorm.DB, id uuid.UUID) (*model.Campaign, error) {
	if db == nil {
		db = s.DB
	}
	var campaign model.Campaign
	if err := db.Where("campaign_id = ?", id).First(&campaign).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return &campaign, nil
}

func (s *CampaignStore) GetByCode(code string) (*model.Campaign, error) {
	var campaign model.Campaign
	if err := s.DB.Where("lower(campaign_code) = lower(?)", code).First(&campaign).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("get campaign by code: %w", err)
	}
	return &campaign, nil
}

// AdjustCollected applies collected += delta as a single conditional UPDATE.
// delta may be negative (reversal on donation deletion). Concurrent
// adjustments to the same campaign serialize on the row; there is no
// read-modify-write in application code.
func (s *CampaignStore) AdjustCollected(db *gorm.DB, id uuid.UUID, delta float64) error {
	if db == nil {
		db = s.DB
	}
	res := db.Model(&model.Campaign{}).
		Where("campaign_id = ?", id).
		UpdateColumn("campaign_collected_amount", gorm.Expr("campaign_collected_amount + ?", delta))
	if res.Error != nil {
		return fmt.Errorf("adjust collected: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrCampaignNotFound
	}
	return nil
}

/* =========================================================
   Admin operations (never touch the collected amount)
========================================================= */

func (s *CampaignStore) Create(campaign *model.Campaign) error {
	code, err := helper.GenerateUniqueSlug(s.DB, helper.SlugOptions{
		Table:            "campaigns",
		SlugColumn:       "campaign_code",
		SoftDeleteColumn: "campaign_deleted_at",
		DefaultBase:      "campaign",
	}, campaign.CampaignName)
	if err != nil {
		return fmt.Errorf("generate campaign code: %w", err)
	}
	campaign.CampaignCode = code

	if err := s.DB.Create(campaign).Error; err != nil {
		return fmt.Errorf("create campaign: %w", err)
	}
	return nil
}

// Patch applies an allow-listed column map built by the update DTO.
func (s *CampaignStore) Patch(id uuid.UUID, updates map[string]interface{}) (*model.Campaign, error) {
	if len(updates) > 0 {
		res := s.DB.Model(&model.Campaign{}).
			Where("campaign_id = ?", id).
			Updates(updates)
		if res.Error != nil {
			return nil, fmt.Errorf("patch campaign: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, ErrCampaignNotFound
		}
	}
	return s.Get(nil, id)
}

func (s *CampaignStore) SoftDelete(id uuid.UUID) error {
	res := s.DB.Where("campaign_id = ?", id).Delete(&model.Campaign{})
	if res.Error != nil {
		return fmt.Errorf("delete campaign: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrCampaignNotFound
	}
	return nil
}

var campaignSortColumns = map[string]string{
	"created_at": "campaign_created_at",
	"name":       "campaign_name",
	"collected":  "campaign_collected_amount",
	"target":     "campaign_target_amount",
}

// ListPublic returns the campaigns shown to donors: public and active only.
func (s *CampaignStore) ListPublic(p helper.Params) ([]model.Campaign, int64, error) {
	q := s.DB.Model(&model.Campaign{}).
		Where("campaign_is_public = ?", true).
		Where("campaign_status = ?", model.CampaignStatusActive)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count public campaigns: %w", err)
	}

	order, err := p.SafeOrderClause(campaignSortColumns, "created_at")
	if err != nil {
		return nil, 0, err
	}

	var campaigns []model.Campaign
	if err := q.Order(order).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&campaigns).Error; err != nil {
		return nil, 0, fmt.Errorf("list public campaigns: %w", err)
	}
	return campaigns, total, nil
}

func (s *CampaignStore) List(p helper.Params, status string) ([]model.Campaign, int64, error) {
	q := s.DB.Model(&model.Campaign{})
	if status != "" {
		q = q.Where("campaign_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count campaigns: %w", err)
	}

	order, err := p.SafeOrderClause(campaignSortColumns, "created_at")
	if err != nil {
		return nil, 0, err
	}

	var campaigns []model.Campaign
	if err := q.Order(order).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&campaigns).Error; err != nil {
		return nil, 0, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, total, nil
}
