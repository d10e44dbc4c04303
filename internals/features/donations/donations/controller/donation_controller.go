// 📁 controller/donation_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sevasetu_backend/internals/features/donations/donations/dto"
	donationService "sevasetu_backend/internals/features/donations/donations/service"
	helper "sevasetu_backend/internals/helpers"
)

type DonationController struct {
	Workflow *donationService.DonationWorkflow
}

func NewDonationController(db *gorm.DB) *DonationController {
	return &DonationController{
		Workflow: donationService.NewDonationWorkflow(db, donationService.Gateway),
	}
}

// 🟢 CREATE ORDER: open a gateway order + pending donation. No login needed,
// donors are guests.
func (ctrl *DonationController) CreateOrder(c *fiber.Ctx) error {
	var body dto.CreateOrderRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	order, err := ctrl.Workflow.InitiateOnlineDonation(body.CampaignID, body.Amount, donationService.DonorInfo{
		Name:    body.DonorName,
		Email:   body.DonorEmail,
		Phone:   body.DonorPhone,
		TaxID:   body.DonorTaxID,
		Remarks: body.Remarks,
	})
	if err != nil {
		switch {
		case errors.Is(err, donationService.ErrCampaignNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Campaign not found")
		case errors.Is(err, donationService.ErrCampaignNotAcceptingFunds):
			return helper.JsonError(c, fiber.StatusConflict, "Campaign is not accepting online donations")
		case errors.Is(err, donationService.ErrInvalidAmount):
			return helper.JsonError(c, fiber.StatusBadRequest, "Donation amount must be positive")
		case errors.Is(err, donationService.ErrMissingDonorName):
			return helper.JsonError(c, fiber.StatusBadRequest, "Donor name is required")
		case errors.Is(err, donationService.ErrGateway):
			log.Printf("[ERROR] gateway order create: %v", err)
			return helper.JsonError(c, fiber.StatusBadGateway, "Payment gateway is unavailable, please retry")
		default:
			log.Printf("[ERROR] initiate donation: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create donation order")
		}
	}

	return helper.JsonCreated(c, "Donation order created. Please complete the payment.", dto.CreateOrderResponse{
		OrderID:     order.OrderID,
		DonationID:  order.DonationID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		PublicKeyID: order.PublicKeyID,
	})
}

// 🟢 CONFIRM PAYMENT: verify the gateway signature and complete the
// donation. Retrying an already-confirmed payment returns success without a
// second campaign credit.
func (ctrl *DonationController) ConfirmPayment(c *fiber.Ctx) error {
	var body dto.ConfirmPaymentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	donation, err := ctrl.Workflow.ConfirmOnlinePayment(body.OrderID, body.PaymentID, body.Signature)
	if err != nil {
		switch {
		case errors.Is(err, donationService.ErrDonationNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "No donation found for this order")
		case errors.Is(err, donationService.ErrVerificationFailed):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Payment signature verification failed")
		case errors.Is(err, donationService.ErrDonationNotPending):
			return helper.JsonError(c, fiber.StatusConflict, "Donation is no longer awaiting payment")
		default:
			// Ledger internals stay server-side.
			log.Printf("[ERROR] confirm payment for order %s: %v", body.OrderID, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to confirm payment")
		}
	}

	receipt := ""
	if donation.DonationReceiptNumber != nil {
		receipt = *donation.DonationReceiptNumber
	}
	return helper.JsonOK(c, "Payment confirmed. Thank you for your donation!", dto.ConfirmPaymentResponse{
		DonationID:    donation.DonationID,
		Amount:        donation.DonationAmount,
		ReceiptNumber: receipt,
		DonorName:     donation.DonationDonorName,
	})
}
