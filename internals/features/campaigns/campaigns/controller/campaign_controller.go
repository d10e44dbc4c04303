// 📁 controller/campaign_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sevasetu_backend/internals/features/campaigns/campaigns/dto"
	"sevasetu_backend/internals/features/campaigns/campaigns/model"
	"sevasetu_backend/internals/features/campaigns/campaigns/service"
	helper "sevasetu_backend/internals/helpers"
)

type CampaignController struct {
	Store *service.CampaignStore
}

func NewCampaignController(db *gorm.DB) *CampaignController {
	return &CampaignController{Store: service.NewCampaignStore(db)}
}

// 🟢 CREATE CAMPAIGN (admin)
func (ctrl *CampaignController) CreateCampaign(c *fiber.Ctx) error {
	var body dto.CreateCampaignRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	campaign := model.Campaign{
		CampaignName:         body.Name,
		CampaignDescription:  body.Description,
		CampaignTargetAmount: body.TargetAmount,
		CampaignStatus:       model.CampaignStatusDraft,
	}
	if body.Status != nil {
		campaign.CampaignStatus = *body.Status
	}
	if body.IsPublic != nil {
		campaign.CampaignIsPublic = *body.IsPublic
	}
	if body.GatewayEnabled != nil {
		campaign.CampaignGatewayEnabled = *body.GatewayEnabled
	}
	if actorID, err := helper.GetUserUUID(c); err == nil {
		campaign.CampaignCreatedBy = &actorID
	}

	if err := ctrl.Store.Create(&campaign); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create campaign")
	}
	return helper.JsonCreated(c, "Campaign created", dto.NewCampaignResponse(&campaign))
}

// 🟢 PATCH CAMPAIGN (admin) — collected amount is not patchable
func (ctrl *CampaignController) UpdateCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid campaign id")
	}

	var body dto.UpdateCampaignRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	campaign, err := ctrl.Store.Patch(id, body.ToUpdates())
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Campaign not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update campaign")
	}
	return helper.JsonUpdated(c, "Campaign updated", dto.NewCampaignResponse(campaign))
}

// 🟢 DELETE CAMPAIGN (admin, soft delete)
func (ctrl *CampaignController) DeleteCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid campaign id")
	}
	if err := ctrl.Store.SoftDelete(id); err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Campaign not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete campaign")
	}
	return helper.JsonDeleted(c, "Campaign deleted", fiber.Map{"campaign_id": id})
}

// 🟢 LIST CAMPAIGNS (admin)
func (ctrl *CampaignController) ListCampaigns(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	campaigns, total, err := ctrl.Store.List(p, c.Query("status"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list campaigns")
	}

	out := make([]dto.CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		out = append(out, dto.NewCampaignResponse(&campaigns[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// 🟢 GET CAMPAIGN BY ID (admin)
func (ctrl *CampaignController) GetCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid campaign id")
	}
	campaign, err := ctrl.Store.Get(nil, id)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Campaign not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch campaign")
	}
	return helper.JsonOK(c, "", dto.NewCampaignResponse(campaign))
}

// 🟢 LIST PUBLIC CAMPAIGNS — active + public only, donor-facing card shape
func (ctrl *CampaignController) ListPublicCampaigns(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	campaigns, total, err := ctrl.Store.ListPublic(p)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list campaigns")
	}

	out := make([]dto.PublicCampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		out = append(out, dto.NewPublicCampaignResponse(&campaigns[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// 🟢 GET PUBLIC CAMPAIGN CARD by code — only public campaigns are exposed
func (ctrl *CampaignController) GetPublicCampaign(c *fiber.Ctx) error {
	campaign, err := ctrl.Store.GetByCode(c.Params("code"))
	if err != nil || !campaign.CampaignIsPublic {
		if err != nil && !errors.Is(err, service.ErrCampaignNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch campaign")
		}
		return helper.JsonError(c, fiber.StatusNotFound, "Campaign not found")
	}
	return helper.JsonOK(c, "", dto.NewPublicCampaignResponse(campaign))
}
