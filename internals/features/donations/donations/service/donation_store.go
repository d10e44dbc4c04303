package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sevasetu_backend/internals/features/donations/donations/model"
	helper "sevasetu_backend/internals/helpers"
)

/* =========================================================
   DonationStore

   Owns the donation lifecycle. The pending→completed and
   pending→failed transitions are conditional writes keyed on
   the current status, so each fires at most once per donation
   no matter how many confirmations race. This is the property
   that protects the money total.
========================================================= */

type DonationStore struct {
	DB *gorm.DB
}

func NewDonationStore(db *gorm.DB) *DonationStore {
	return &DonationStore{DB: db}
}

func (s *DonationStore) Create(db *gorm.DB, donation *model.Donation) error {
	if db == nil {
		db = s.DB
	}
	if donation.DonationAmount <= 0 {
		return ErrInvalidAmount
	}
	if err := db.Create(donation).Error; err != nil {
		return fmt.Errorf("create donation: %w", err)
	}
	return nil
}

func (s *DonationStore) Get(db *gorm.DB, id uuid.UUID) (*model.Donation, error) {
	if db == nil {
		db = s.DB
	}
	var donation model.Donation
	if err := db.Where("donation_id = ?", id).First(&donation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, fmt.Errorf("get donation: %w", err)
	}
	return &donation, nil
}

// FindByGatewayOrderID correlates an asynchronous payment confirmation back
// to the donation that opened the order.
func (s *DonationStore) FindByGatewayOrderID(db *gorm.DB, orderID string) (*model.Donation, error) {
	if db == nil {
		db = s.DB
	}
	var donation model.Donation
	if err := db.Where("donation_order_id = ?", orderID).First(&donation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, fmt.Errorf("find donation by order id: %w", err)
	}
	return &donation, nil
}

// TransitionToCompleted performs the one-time pending→completed transition.
// The receipt number is assigned inside the same conditional UPDATE, so a
// retry can never mint a second receipt. Returns:
//   - nil on a won transition
//   - ErrAlreadyCompleted when the donation is already completed (the
//     idempotent duplicate-confirmation case; callers treat it as success)
//   - ErrDonationNotPending when the donation already failed
//   - ErrDonationNotFound when the id resolves to nothing
func (s *DonationStore) TransitionToCompleted(db *gorm.DB, id uuid.UUID, paymentID, signature string) (*model.Donation, error) {
	if db == nil {
		db = s.DB
	}

	now := time.Now()
	receipt := helper.NewReceiptNumber(now)

	res := db.Model(&model.Donation{}).
		Where("donation_id = ? AND donation_status = ?", id, model.DonationStatusPending).
		Updates(map[string]interface{}{
			"donation_status":         model.DonationStatusCompleted,
			"donation_payment_id":     paymentID,
			"donation_signature":      signature,
			"donation_receipt_number": receipt,
			"donation_completed_at":   now,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("transition to completed: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		// The guard lost: disambiguate by re-reading the row.
		donation, err := s.Get(db, id)
		if err != nil {
			return nil, err
		}
		if donation.IsCompleted() {
			return donation, ErrAlreadyCompleted
		}
		return donation, ErrDonationNotPending
	}

	return s.Get(db, id)
}

// TransitionToFailed marks a pending donation failed. Terminal states are
// left untouched.
func (s *DonationStore) TransitionToFailed(db *gorm.DB, id uuid.UUID, reason string) error {
	if db == nil {
		db = s.DB
	}

	res := db.Model(&model.Donation{}).
		Where("donation_id = ? AND donation_status = ?", id, model.DonationStatusPending).
		Updates(map[string]interface{}{
			"donation_status":         model.DonationStatusFailed,
			"donation_failure_reason": reason,
		})
	if res.Error != nil {
		return fmt.Errorf("transition to failed: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		donation, err := s.Get(db, id)
		if err != nil {
			return err
		}
		if donation.IsCompleted() {
			return ErrAlreadyCompleted
		}
		return ErrDonationNotPending
	}
	return nil
}

// SoftDelete removes the donation from view and reports its prior status,
// amount and campaign so the workflow can decide whether a ledger reversal is
// due. The delete is conditional on the row still being alive, so a racing
// double-delete cannot trigger two reversals.
func (s *DonationStore) SoftDelete(db *gorm.DB, id uuid.UUID) (*model.Donation, error) {
	if db == nil {
		db = s.DB
	}

	donation, err := s.Get(db, id)
	if err != nil {
		return nil, err
	}

	res := db.Where("donation_id = ? AND donation_deleted_at IS NULL", id).
		Delete(&model.Donation{})
	if res.Error != nil {
		return nil, fmt.Errorf("delete donation: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrDonationNotFound
	}

	return donation, nil
}
