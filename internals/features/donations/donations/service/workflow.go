package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	campaignService "sevasetu_backend/internals/features/campaigns/campaigns/service"
	"sevasetu_backend/internals/features/donations/donations/model"
	helper "sevasetu_backend/internals/helpers"
)

// Re-exported so callers of the workflow only import one service package.
var ErrCampaignNotFound = campaignService.ErrCampaignNotFound

/* =========================================================
   DonationWorkflow — the core

   Orchestrates order creation, payment confirmation, offline
   recording and deletion against the two stores. Every
   transition + ledger-credit pair runs inside one DB
   transaction: the campaign is credited only as a consequence
   of the donation's own one-time pending→completed
   transition, never from the signature check alone.
========================================================= */

type DonationWorkflow struct {
	DB        *gorm.DB
	Campaigns *campaignService.CampaignStore
	Donations *DonationStore
	Gateway   PaymentGateway
}

func NewDonationWorkflow(db *gorm.DB, gateway PaymentGateway) *DonationWorkflow {
	return &DonationWorkflow{
		DB:        db,
		Campaigns: campaignService.NewCampaignStore(db),
		Donations: NewDonationStore(db),
		Gateway:   gateway,
	}
}

// DonorInfo carries the donor identity through the workflow operations.
type DonorInfo struct {
	Name    string
	Email   *string
	Phone   *string
	TaxID   *string
	Remarks *string
}

// OnlineDonationOrder is returned by InitiateOnlineDonation.
type OnlineDonationOrder struct {
	OrderID     string
	DonationID  uuid.UUID
	Amount      float64
	Currency    string
	PublicKeyID string
}

// InitiateOnlineDonation opens a gateway order and records a pending
// donation referencing it. The order is created first; on gateway failure no
// donation row exists, so the client may simply retry.
func (w *DonationWorkflow) InitiateOnlineDonation(campaignID uuid.UUID, amount float64, donor DonorInfo) (*OnlineDonationOrder, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if strings.TrimSpace(donor.Name) == "" {
		return nil, ErrMissingDonorName
	}

	campaign, err := w.Campaigns.Get(nil, campaignID)
	if err != nil {
		return nil, err
	}
	if !campaign.AcceptsGatewayFunds() {
		return nil, ErrCampaignNotAcceptingFunds
	}

	donationID := uuid.New()
	currency := "INR"

	order, err := w.Gateway.CreateOrder(amount, currency, donationID.String(), map[string]interface{}{
		"campaign_code": campaign.CampaignCode,
		"donation_id":   donationID.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	donation := model.Donation{
		DonationID:         donationID,
		DonationCampaignID: campaign.CampaignID,
		DonationDonorName:  donor.Name,
		DonationDonorEmail: donor.Email,
		DonationDonorPhone: donor.Phone,
		DonationDonorTaxID: donor.TaxID,
		DonationRemarks:    donor.Remarks,
		DonationChannel:    model.DonationChannelGateway,
		DonationAmount:     amount,
		DonationCurrency:   currency,
		DonationStatus:     model.DonationStatusPending,
		DonationOrderID:    &order.OrderID,
	}
	if err := w.Donations.Create(nil, &donation); err != nil {
		return nil, err
	}

	return &OnlineDonationOrder{
		OrderID:     order.OrderID,
		DonationID:  donation.DonationID,
		Amount:      amount,
		Currency:    currency,
		PublicKeyID: w.Gateway.PublicKeyID(),
	}, nil
}

// ConfirmOnlinePayment verifies the gateway signature and completes the
// donation. A duplicate confirmation (retried webhook/client) finds the
// donation already completed and returns it without touching the campaign
// again — the idempotency boundary. A won transition and its campaign credit
// commit or roll back together.
func (w *DonationWorkflow) ConfirmOnlinePayment(orderID, paymentID, signature string) (*model.Donation, error) {
	donation, err := w.Donations.FindByGatewayOrderID(nil, orderID)
	if err != nil {
		return nil, err
	}

	if !w.Gateway.VerifySignature(orderID, paymentID, signature) {
		if ferr := w.Donations.TransitionToFailed(nil, donation.DonationID, "signature verification failed"); ferr != nil &&
			!errors.Is(ferr, ErrDonationNotPending) && !errors.Is(ferr, ErrAlreadyCompleted) {
			log.Printf("[ERROR] mark donation %s failed: %v", donation.DonationID, ferr)
		}
		return nil, ErrVerificationFailed
	}

	var completed *model.Donation
	err = w.DB.Transaction(func(tx *gorm.DB) error {
		d, terr := w.Donations.TransitionToCompleted(tx, donation.DonationID, paymentID, signature)
		if terr != nil {
			if errors.Is(terr, ErrAlreadyCompleted) {
				// Duplicate confirmation: success, no re-credit.
				completed = d
				return nil
			}
			return terr
		}
		completed = d

		if cerr := w.Campaigns.AdjustCollected(tx, d.DonationCampaignID, d.DonationAmount); cerr != nil {
			// Rolls the completion back too; without it the ledger
			// invariant would break.
			return fmt.Errorf("credit campaign for donation %s: %w", d.DonationID, cerr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}

// RecordOfflineDonation creates a completed donation attested by the
// recording staff member and credits the campaign, both in one transaction.
func (w *DonationWorkflow) RecordOfflineDonation(campaignID uuid.UUID, amount float64, channel string, donor DonorInfo, staffID uuid.UUID) (*model.Donation, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if strings.TrimSpace(donor.Name) == "" {
		return nil, ErrMissingDonorName
	}
	if !model.IsOfflineChannel(channel) {
		return nil, ErrInvalidChannel
	}

	campaign, err := w.Campaigns.Get(nil, campaignID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	receipt := helper.NewReceiptNumber(now)

	donation := model.Donation{
		DonationCampaignID:    campaign.CampaignID,
		DonationDonorName:     donor.Name,
		DonationDonorEmail:    donor.Email,
		DonationDonorPhone:    donor.Phone,
		DonationDonorTaxID:    donor.TaxID,
		DonationRemarks:       donor.Remarks,
		DonationChannel:       channel,
		DonationAmount:        amount,
		DonationCurrency:      "INR",
		DonationStatus:        model.DonationStatusCompleted,
		DonationReceiptNumber: &receipt,
		DonationRecordedBy:    &staffID,
		DonationCompletedAt:   &now,
	}

	err = w.DB.Transaction(func(tx *gorm.DB) error {
		if err := w.Donations.Create(tx, &donation); err != nil {
			return err
		}
		return w.Campaigns.AdjustCollected(tx, campaign.CampaignID, amount)
	})
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

// DeleteDonation soft-deletes a donation; a completed donation reverses its
// campaign credit in the same transaction. Pending/failed donations leave
// the ledger alone.
func (w *DonationWorkflow) DeleteDonation(donationID uuid.UUID, actorID uuid.UUID) (*model.Donation, error) {
	var deleted *model.Donation
	err := w.DB.Transaction(func(tx *gorm.DB) error {
		donation, derr := w.Donations.SoftDelete(tx, donationID)
		if derr != nil {
			return derr
		}
		deleted = donation

		if donation.IsCompleted() {
			if cerr := w.Campaigns.AdjustCollected(tx, donation.DonationCampaignID, -donation.DonationAmount); cerr != nil {
				return fmt.Errorf("reverse campaign credit for donation %s: %w", donation.DonationID, cerr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[AUDIT] donation %s deleted by %s (prior status=%s amount=%.2f)",
		deleted.DonationID, actorID, deleted.DonationStatus, deleted.DonationAmount)
	return deleted, nil
}
