package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	campaignModel "sevasetu_backend/internals/features/campaigns/campaigns/model"
	"sevasetu_backend/internals/features/donations/donations/model"
)

// backdate shifts a donation's creation time so it falls past the TTL.
func backdate(t *testing.T, w *DonationWorkflow, id uuid.UUID, age time.Duration) {
	t.Helper()
	res := w.DB.Model(&model.Donation{}).
		Where("donation_id = ?", id).
		UpdateColumn("donation_created_at", time.Now().Add(-age))
	if res.Error != nil || res.RowsAffected != 1 {
		t.Fatalf("backdate donation: %v (rows %d)", res.Error, res.RowsAffected)
	}
}

func TestExpireStalePendingDonations(t *testing.T) {
	w, _ := newTestWorkflow(t)
	campaign := newTestCampaign(t, w.DB, campaignModel.CampaignStatusActive, true)
	ttl := 24 * time.Hour

	stale := newPendingGatewayDonation(t, w.Donations, campaign, 1000, "order_stale")
	backdate(t, w, stale.DonationID, 48*time.Hour)

	fresh := newPendingGatewayDonation(t, w.Donations, campaign, 1000, "order_fresh")

	done := newPendingGatewayDonation(t, w.Donations, campaign, 1000, "order_done")
	backdate(t, w, done.DonationID, 48*time.Hour)
	if _, err := w.Donations.TransitionToCompleted(nil, done.DonationID, "pay_done", "sig_done"); err != nil {
		t.Fatalf("complete donation: %v", err)
	}

	n, err := ExpireStalePendingDonations(w.DB, ttl)
	if err != nil {
		t.Fatalf("expire: %v", err)
	}

	t.Run("Then only the stale pending donation expires", func(t *testing.T) {
		if n != 1 {
			t.Fatalf("expired = %d, want 1", n)
		}
		got, _ := w.Donations.Get(nil, stale.DonationID)
		if got.DonationStatus != model.DonationStatusFailed {
			t.Fatalf("stale status = %s, want failed", got.DonationStatus)
		}
		if got.DonationFailureReason == nil || *got.DonationFailureReason != "expired before payment" {
			t.Fatalf("reason = %v", got.DonationFailureReason)
		}
	})

	t.Run("Then fresh pendings and completed donations stay untouched", func(t *testing.T) {
		got, _ := w.Donations.Get(nil, fresh.DonationID)
		if !got.IsPending() {
			t.Fatalf("fresh status = %s, want pending", got.DonationStatus)
		}
		got, _ = w.Donations.Get(nil, done.DonationID)
		if !got.IsCompleted() {
			t.Fatalf("completed status = %s, want completed", got.DonationStatus)
		}
	})

	t.Run("When run again, Then nothing more expires", func(t *testing.T) {
		n, err := ExpireStalePendingDonations(w.DB, ttl)
		if err != nil {
			t.Fatalf("second expire: %v", err)
		}
		if n != 0 {
			t.Fatalf("expired = %d, want 0", n)
		}
	})
}

func TestRepairCollectedAmounts(t *testing.T) {
	w, _ := newTestWorkflow(t)
	staffID := uuid.New()

	drifted := newTestCampaign(t, w.DB, campaignModel.CampaignStatusActive, true)
	if _, err := w.RecordOfflineDonation(drifted.CampaignID, 5000, model.DonationChannelBank, DonorInfo{Name: "Sita Devi"}, staffID); err != nil {
		t.Fatalf("seed: %v", err)
	}

	healthy := newTestCampaign(t, w.DB, campaignModel.CampaignStatusActive, true)
	if _, err := w.RecordOfflineDonation(healthy.CampaignID, 3000, model.DonationChannelCash, DonorInfo{Name: "Ramesh Gupta"}, staffID); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Corrupt one campaign's running total behind the store's back.
	if err := w.DB.Model(&campaignModel.Campaign{}).
		Where("campaign_id = ?", drifted.CampaignID).
		UpdateColumn("campaign_collected_amount", 99999).Error; err != nil {
		t.Fatalf("inject drift: %v", err)
	}

	t.Run("Given one drifted campaign, When repaired, Then its total is recomputed", func(t *testing.T) {
		n, err := RepairCollectedAmounts(w.DB)
		if err != nil {
			t.Fatalf("repair: %v", err)
		}
		if n != 1 {
			t.Fatalf("repaired = %d, want 1", n)
		}
		if got := collectedAmount(t, w.DB, drifted); got != 5000 {
			t.Fatalf("drifted collected = %.2f, want 5000", got)
		}
		if got := collectedAmount(t, w.DB, healthy); got != 3000 {
			t.Fatalf("healthy collected = %.2f, want 3000", got)
		}
	})

	t.Run("When repaired again, Then no campaign drifts", func(t *testing.T) {
		n, err := RepairCollectedAmounts(w.DB)
		if err != nil {
			t.Fatalf("second repair: %v", err)
		}
		if n != 0 {
			t.Fatalf("repaired = %d, want 0", n)
		}
	})

	t.Run("Given a deleted donation, When repaired, Then it no longer counts", func(t *testing.T) {
		var donation model.Donation
		if err := w.DB.Where("donation_campaign_id = ?", healthy.CampaignID).First(&donation).Error; err != nil {
			t.Fatalf("find donation: %v", err)
		}
		// Delete behind the workflow's back, leaving the total stale.
		if err := w.DB.Where("donation_id = ?", donation.DonationID).Delete(&model.Donation{}).Error; err != nil {
			t.Fatalf("delete: %v", err)
		}

		n, err := RepairCollectedAmounts(w.DB)
		if err != nil {
			t.Fatalf("repair: %v", err)
		}
		if n != 1 {
			t.Fatalf("repaired = %d, want 1", n)
		}
		if got := collectedAmount(t, w.DB, healthy); got != 0 {
			t.Fatalf("collected = %.2f, want 0", got)
		}
	})
}
