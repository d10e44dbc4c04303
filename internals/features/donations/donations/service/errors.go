package service

import "errors"

/* =========================================================
   Workflow error taxonomy

   Every failure is an explicit value; controllers branch with
   errors.Is and map onto HTTP statuses. Nothing is retried
   silently down here.
========================================================= */

var (
	// not-found
	ErrDonationNotFound = errors.New("donation not found")

	// state conflicts
	ErrCampaignNotAcceptingFunds = errors.New("campaign is not accepting funds")
	ErrAlreadyCompleted          = errors.New("donation already completed")
	ErrDonationNotPending        = errors.New("donation is not pending")

	// validation
	ErrInvalidChannel   = errors.New("unrecognized offline channel")
	ErrInvalidAmount    = errors.New("donation amount must be positive")
	ErrMissingDonorName = errors.New("donor name is required")

	// external dependency
	ErrGateway            = errors.New("payment gateway error")
	ErrVerificationFailed = errors.New("signature verification failed")
)
