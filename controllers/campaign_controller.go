package controllers

import (
	"net/http"

	"event-backend/models"
	"event-backend/services"
	"event-backend/utils"

	"github.com/gin-gonic/gin"
)

type CampaignController struct {
	CampaignSvc *services.CampaignService
}

func NewCampaignController(svc *services.CampaignService) *CampaignController {
	return &CampaignController{CampaignSvc: svc}
}

// ListByEvent GET /api/events/:id/campaigns
func (ct *CampaignController) ListByEvent(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	campaigns, err := ct.CampaignSvc.ListByEvent(eventID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, campaigns)
}

// Create POST /api/events/:id/campaigns
func (ct *CampaignController) Create(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var campaign models.Campaign
	if err := c.ShouldBindJSON(&campaign); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	campaign.EventID = eventID

	if err := ct.CampaignSvc.Create(&campaign); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, campaign)
}

// Update PUT /api/campaigns/:id
func (ct *CampaignController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var campaign models.Campaign
	if err := c.ShouldBindJSON(&campaign); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	campaign.ID = id

	if err := ct.CampaignSvc.Update(&campaign); err != nil {
		respondServiceError(c, err)
		return
	}

	updated, err := ct.CampaignSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

// Delete DELETE /api/campaigns/:id
func (ct *CampaignController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ct.CampaignSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "campaign deleted")
}

// Send POST /api/campaigns/:id/send
func (ct *CampaignController) Send(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	campaign, err := ct.CampaignSvc.Send(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, campaign)
}
