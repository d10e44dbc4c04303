package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cenkalti/backoff/v5"
	"gorm.io/gorm"

	"sevasetu_backend/internals/configs"
	"sevasetu_backend/internals/features/donations/donations/model"
)

/* =========================================================
   Ledger reconcile job

   Two duties, both idempotent:
   1. expire gateway donations stuck in pending past the TTL
      (the donor never completed payment)
   2. recompute each campaign's collected amount from its
      completed donations and repair any drift
========================================================= */

// StartLedgerReconcileScheduler runs the reconcile loop in the background.
// Interval and pending TTL come from env:
//
//	LEDGER_RECONCILE_INTERVAL_MINUTES (default 60)
//	DONATION_PENDING_TTL_HOURS        (default 24)
func StartLedgerReconcileScheduler(db *gorm.DB) {
	go func() {
		interval := time.Duration(configs.GetEnvInt("LEDGER_RECONCILE_INTERVAL_MINUTES", 60)) * time.Minute
		ttl := time.Duration(configs.GetEnvInt("DONATION_PENDING_TTL_HOURS", 24)) * time.Hour

		for {
			log.Println("[RECONCILE] Running ledger reconcile...")

			if n, err := retryReconcile(func() (int64, error) {
				return ExpireStalePendingDonations(db, ttl)
			}); err != nil {
				log.Printf("[RECONCILE ERROR] expire stale pendings: %v", err)
			} else if n > 0 {
				log.Printf("[RECONCILE] %d stale pending donation(s) expired", n)
			}

			if n, err := retryReconcile(func() (int64, error) {
				return RepairCollectedAmounts(db)
			}); err != nil {
				log.Printf("[RECONCILE ERROR] repair collected amounts: %v", err)
			} else if n > 0 {
				// Drift means a credit/reversal was lost somewhere; shout.
				log.Printf("[RECONCILE ALERT] collected amount drift repaired on %d campaign(s)", n)
			}

			time.Sleep(interval)
		}
	}()
}

// retryReconcile retries a reconcile step on transient DB errors with
// exponential backoff.
func retryReconcile(op func() (int64, error)) (int64, error) {
	return backoff.Retry(context.TODO(), op,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(4),
	)
}

// ExpireStalePendingDonations fails gateway donations that stayed pending
// longer than ttl. Their orders were never confirmed; the conditional status
// guard means a confirmation racing this update still wins at most once.
func ExpireStalePendingDonations(db *gorm.DB, ttl time.Duration) (int64, error) {
	cutoff := time.Now().Add(-ttl)

	res := db.Model(&model.Donation{}).
		Where("donation_status = ?", model.DonationStatusPending).
		Where("donation_channel = ?", model.DonationChannelGateway).
		Where("donation_created_at < ?", cutoff).
		Updates(map[string]interface{}{
			"donation_status":         model.DonationStatusFailed,
			"donation_failure_reason": "expired before payment",
		})
	if res.Error != nil {
		return 0, fmt.Errorf("expire stale pendings: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// RepairCollectedAmounts restores the invariant collected == Σ completed,
// non-deleted donation amounts, campaign by campaign, in a single statement.
// Returns the number of campaigns whose totals drifted.
func RepairCollectedAmounts(db *gorm.DB) (int64, error) {
	res := db.Exec(`
		UPDATE campaigns
		SET campaign_collected_amount = (
			SELECT COALESCE(SUM(d.donation_amount), 0)
			FROM donations d
			WHERE d.donation_campaign_id = campaigns.campaign_id
			  AND d.donation_status = ?
			  AND d.donation_deleted_at IS NULL
		)
		WHERE campaign_deleted_at IS NULL
		  AND campaign_collected_amount <> (
			SELECT COALESCE(SUM(d.donation_amount), 0)
			FROM donations d
			WHERE d.donation_campaign_id = campaigns.campaign_id
			  AND d.donation_status = ?
			  AND d.donation_deleted_at IS NULL
		  )`,
		model.DonationStatusCompleted, model.DonationStatusCompleted)
	if res.Error != nil {
		return 0, fmt.Errorf("repair collected amounts: %w", res.Error)
	}
	return res.RowsAffected, nil
}
