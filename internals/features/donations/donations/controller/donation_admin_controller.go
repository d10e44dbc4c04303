// 📁 controller/donation_admin_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sevasetu_backend/internals/features/donations/donations/dto"
	donationService "sevasetu_backend/internals/features/donations/donations/service"
	helper "sevasetu_backend/internals/helpers"
)

type DonationAdminController struct {
	Workflow *donationService.DonationWorkflow
	Summary  *donationService.DonationSummaryService
}

func NewDonationAdminController(db *gorm.DB) *DonationAdminController {
	return &DonationAdminController{
		Workflow: donationService.NewDonationWorkflow(db, donationService.Gateway),
		Summary:  donationService.NewDonationSummaryService(db),
	}
}

// 🟢 RECORD OFFLINE DONATION: staff-attested cash/bank/upi/cheque/inkind
// entry, completed immediately with a receipt.
func (ctrl *DonationAdminController) RecordOffline(c *fiber.Ctx) error {
	staffID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing staff identity")
	}

	var body dto.RecordOfflineRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	donation, err := ctrl.Workflow.RecordOfflineDonation(body.CampaignID, body.Amount, body.Channel, donationService.DonorInfo{
		Name:    body.DonorName,
		Email:   body.DonorEmail,
		Phone:   body.DonorPhone,
		TaxID:   body.DonorTaxID,
		Remarks: body.Remarks,
	}, staffID)
	if err != nil {
		switch {
		case errors.Is(err, donationService.ErrCampaignNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Campaign not found")
		case errors.Is(err, donationService.ErrInvalidChannel):
			return helper.JsonError(c, fiber.StatusBadRequest, "Unrecognized offline channel")
		case errors.Is(err, donationService.ErrInvalidAmount):
			return helper.JsonError(c, fiber.StatusBadRequest, "Donation amount must be positive")
		case errors.Is(err, donationService.ErrMissingDonorName):
			return helper.JsonError(c, fiber.StatusBadRequest, "Donor name is required")
		default:
			log.Printf("[ERROR] record offline donation: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record donation")
		}
	}

	receipt := ""
	if donation.DonationReceiptNumber != nil {
		receipt = *donation.DonationReceiptNumber
	}
	return helper.JsonCreated(c, "Donation recorded", dto.RecordOfflineResponse{
		DonationID:    donation.DonationID,
		ReceiptNumber: receipt,
	})
}

// 🟢 GET DONATION BY ID
func (ctrl *DonationAdminController) GetDonation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid donation id")
	}

	donation, err := ctrl.Workflow.Donations.Get(nil, id)
	if err != nil {
		if errors.Is(err, donationService.ErrDonationNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Donation not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch donation")
	}
	return helper.JsonOK(c, "", dto.NewDonationResponse(donation))
}

// 🟢 LIST DONATIONS: newest first, filterable by campaign/status/channel
func (ctrl *DonationAdminController) ListDonations(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	filters := donationService.ListFilters{
		Status:  c.Query("status"),
		Channel: c.Query("channel"),
	}
	if raw := c.Query("campaign_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid campaign_id filter")
		}
		filters.CampaignID = &id
	}

	donations, total, err := ctrl.Summary.List(p, filters)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list donations")
	}

	out := make([]dto.DonationResponse, 0, len(donations))
	for i := range donations {
		out = append(out, dto.NewDonationResponse(&donations[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// 🟢 DELETE DONATION (admin): soft delete; completed donations reverse their
// campaign credit.
func (ctrl *DonationAdminController) DeleteDonation(c *fiber.Ctx) error {
	actorID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing actor identity")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid donation id")
	}

	donation, err := ctrl.Workflow.DeleteDonation(id, actorID)
	if err != nil {
		if errors.Is(err, donationService.ErrDonationNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Donation not found")
		}
		log.Printf("[ERROR] delete donation %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete donation")
	}

	return helper.JsonDeleted(c, "Donation deleted", fiber.Map{
		"donation_id":  donation.DonationID,
		"prior_status": donation.DonationStatus,
	})
}
