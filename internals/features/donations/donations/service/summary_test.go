package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	campaignModel "sevasetu_backend/internals/features/campaigns/campaigns/model"
	"sevasetu_backend/internals/features/donations/donations/model"
	helper "sevasetu_backend/internals/helpers"
)

func strptr(s string) *string { return &s }

// seedLedger loads a campaign with a known mix of completed, pending, failed
// and deleted donations.
func seedLedger(t *testing.T, w *DonationWorkflow) *campaignModel.Campaign {
	t.Helper()
	campaign := newTestCampaign(t, w.DB, campaignModel.CampaignStatusActive, true)
	staffID := uuid.New()

	// Completed: 3000 cash + 2000 cash + 5000 bank. Two of the donors share
	// an email (case differs), so they count once.
	offline := []struct {
		amount  float64
		channel string
		donor   DonorInfo
	}{
		{3000, model.DonationChannelCash, DonorInfo{Name: "Ramesh Gupta", Email: strptr("ramesh@example.in")}},
		{2000, model.DonationChannelCash, DonorInfo{Name: "R. Gupta", Email: strptr("RAMESH@example.in")}},
		{5000, model.DonationChannelBank, DonorInfo{Name: "Sita Devi"}},
	}
	for _, d := range offline {
		if _, err := w.RecordOfflineDonation(campaign.CampaignID, d.amount, d.channel, d.donor, staffID); err != nil {
			t.Fatalf("seed offline: %v", err)
		}
	}

	// Pending and failed rows must never count.
	newPendingGatewayDonation(t, w.Donations, campaign, 9000, "order_seed_pending")
	failed := newPendingGatewayDonation(t, w.Donations, campaign, 8000, "order_seed_failed")
	if err := w.Donations.TransitionToFailed(nil, failed.DonationID, "signature verification failed"); err != nil {
		t.Fatalf("seed failed donation: %v", err)
	}

	// A deleted completed donation must not count either.
	deleted, err := w.RecordOfflineDonation(campaign.CampaignID, 1000, model.DonationChannelUPI, DonorInfo{Name: "Gone Donor"}, staffID)
	if err != nil {
		t.Fatalf("seed deleted donation: %v", err)
	}
	if _, err := w.DeleteDonation(deleted.DonationID, staffID); err != nil {
		t.Fatalf("delete seeded donation: %v", err)
	}

	return campaign
}

func TestCampaignSummary(t *testing.T) {
	w, _ := newTestWorkflow(t)
	campaign := seedLedger(t, w)
	svc := NewDonationSummaryService(w.DB)

	summary, err := svc.CampaignSummary(campaign.CampaignID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	t.Run("Then totals cover only completed, non-deleted donations", func(t *testing.T) {
		if summary.TotalDonations != 3 {
			t.Fatalf("total donations = %d, want 3", summary.TotalDonations)
		}
		if summary.TotalCollected != 10000 {
			t.Fatalf("total collected = %.2f, want 10000", summary.TotalCollected)
		}
		if summary.CollectedAmount != summary.TotalCollected {
			t.Fatalf("campaign collected %.2f != summed %.2f", summary.CollectedAmount, summary.TotalCollected)
		}
	})

	t.Run("Then the per-channel breakdown groups amount and count", func(t *testing.T) {
		byChannel := map[string]ChannelTotals{}
		for _, c := range summary.PerChannel {
			byChannel[c.Channel] = ChannelTotals{Amount: c.Amount, Count: c.Count}
		}
		if got := byChannel[model.DonationChannelCash]; got.Amount != 5000 || got.Count != 2 {
			t.Fatalf("cash = %+v, want 5000/2", got)
		}
		if got := byChannel[model.DonationChannelBank]; got.Amount != 5000 || got.Count != 1 {
			t.Fatalf("bank = %+v, want 5000/1", got)
		}
		if _, ok := byChannel[model.DonationChannelGateway]; ok {
			t.Fatal("pending/failed gateway rows leaked into the breakdown")
		}
	})

	t.Run("Then donors sharing an email count once", func(t *testing.T) {
		if summary.UniqueDonors != 2 {
			t.Fatalf("unique donors = %d, want 2", summary.UniqueDonors)
		}
	})

	t.Run("Given an unknown campaign, Then ErrCampaignNotFound", func(t *testing.T) {
		if _, err := svc.CampaignSummary(uuid.New()); !errors.Is(err, ErrCampaignNotFound) {
			t.Fatalf("err = %v, want ErrCampaignNotFound", err)
		}
	})
}

type ChannelTotals struct {
	Amount float64
	Count  int64
}

func TestRecentPublicDonations(t *testing.T) {
	w, _ := newTestWorkflow(t)
	campaign := seedLedger(t, w)
	svc := NewDonationSummaryService(w.DB)

	t.Run("Then the feed is masked, completed-only and newest first", func(t *testing.T) {
		feed, err := svc.RecentPublicDonations(campaign.CampaignID, 10)
		if err != nil {
			t.Fatalf("feed: %v", err)
		}
		if len(feed) != 3 {
			t.Fatalf("feed size = %d, want 3", len(feed))
		}
		for _, entry := range feed {
			if !strings.Contains(entry.DonorName, "*") {
				t.Fatalf("donor name %q not masked", entry.DonorName)
			}
			if entry.Date.IsZero() {
				t.Fatal("feed entry missing its date")
			}
		}
		for i := 1; i < len(feed); i++ {
			if feed[i].Date.After(feed[i-1].Date) {
				t.Fatal("feed not ordered newest first")
			}
		}
	})

	t.Run("Given a limit of 1, Then one entry comes back", func(t *testing.T) {
		feed, err := svc.RecentPublicDonations(campaign.CampaignID, 1)
		if err != nil {
			t.Fatalf("feed: %v", err)
		}
		if len(feed) != 1 {
			t.Fatalf("feed size = %d, want 1", len(feed))
		}
	})

	t.Run("Given a nonsense limit, Then the default applies", func(t *testing.T) {
		if _, err := svc.RecentPublicDonations(campaign.CampaignID, -5); err != nil {
			t.Fatalf("feed with negative limit: %v", err)
		}
		if _, err := svc.RecentPublicDonations(campaign.CampaignID, 500); err != nil {
			t.Fatalf("feed with oversized limit: %v", err)
		}
	})
}

func TestDonationList(t *testing.T) {
	w, _ := newTestWorkflow(t)
	campaign := seedLedger(t, w)
	svc := NewDonationSummaryService(w.DB)
	p := helper.Params{Page: 1, PerPage: 20}

	t.Run("Given a status filter, Then only matching rows come back", func(t *testing.T) {
		rows, total, err := svc.List(p, ListFilters{CampaignID: &campaign.CampaignID, Status: model.DonationStatusFailed})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if total != 1 || len(rows) != 1 {
			t.Fatalf("total = %d rows = %d, want 1/1", total, len(rows))
		}
		if rows[0].DonationStatus != model.DonationStatusFailed {
			t.Fatalf("status = %s", rows[0].DonationStatus)
		}
	})

	t.Run("Given a channel filter, Then only that channel comes back", func(t *testing.T) {
		rows, total, err := svc.List(p, ListFilters{CampaignID: &campaign.CampaignID, Channel: model.DonationChannelCash})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if total != 2 || len(rows) != 2 {
			t.Fatalf("total = %d rows = %d, want 2/2", total, len(rows))
		}
	})

	t.Run("Given a tiny page size, Then pagination splits the result", func(t *testing.T) {
		_, total, err := svc.List(helper.Params{Page: 1, PerPage: 2}, ListFilters{CampaignID: &campaign.CampaignID})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		rows2, _, err := svc.List(helper.Params{Page: 2, PerPage: 2}, ListFilters{CampaignID: &campaign.CampaignID})
		if err != nil {
			t.Fatalf("list page 2: %v", err)
		}
		if total != 5 {
			t.Fatalf("total = %d, want 5 visible donations", total)
		}
		if len(rows2) != 2 {
			t.Fatalf("page 2 rows = %d, want 2", len(rows2))
		}
	})
}
