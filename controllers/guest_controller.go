package controllers

import (
	"net/http"

	"event-backend/models"
	"event-backend/services"
	"event-backend/utils"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	GuestSvc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{GuestSvc: svc}
}

// ListByEvent GET /api/events/:id/guests
func (ct *GuestController) ListByEvent(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	guests, err := ct.GuestSvc.ListByEvent(eventID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

// Create POST /api/events/:id/guests
func (ct *GuestController) Create(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	guest.EventID = eventID

	if err := ct.GuestSvc.Create(&guest); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, guest)
}

// Get GET /api/guests/:id
func (ct *GuestController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	guest, err := ct.GuestSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

// Update PUT /api/guests/:id
func (ct *GuestController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	guest.ID = id

	if err := ct.GuestSvc.Update(&guest); err != nil {
		respondServiceError(c, err)
		return
	}

	updated, err := ct.GuestSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

// Delete DELETE /api/guests/:id
func (ct *GuestController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ct.GuestSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "guest deleted")
}

type importPayload struct {
	ContactIDs []uint `json:"contact_ids"`
}

// ImportContacts POST /api/events/:id/guests/import
func (ct *GuestController) ImportContacts(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload importPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	created, err := ct.GuestSvc.ImportFromContacts(eventID, payload.ContactIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

// SendInvitation POST /api/guests/:id/invite
func (ct *GuestController) SendInvitation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ct.GuestSvc.SendInvitation(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "invitation sent")
}
