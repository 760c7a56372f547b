package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"event-backend/models"
	"event-backend/services"
	"event-backend/utils"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	ContactSvc *services.ContactService
}

func NewContactController(svc *services.ContactService) *ContactController {
	return &ContactController{ContactSvc: svc}
}

// List GET /api/contacts?organizerId=1
func (ct *ContactController) List(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("organizerId"))
	organizerID64, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || organizerID64 == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid organizerId")
		return
	}

	contacts, err := ct.ContactSvc.ListByOrganizer(uint(organizerID64))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, contacts)
}

// Create POST /api/contacts
func (ct *ContactController) Create(c *gin.Context) {
	var contact models.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := ct.ContactSvc.Create(&contact); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, contact)
}

// Update PUT /api/contacts/:id
func (ct *ContactController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var contact models.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	contact.ID = id

	if err := ct.ContactSvc.Update(&contact); err != nil {
		respondServiceError(c, err)
		return
	}

	updated, err := ct.ContactSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

// Delete DELETE /api/contacts/:id
func (ct *ContactController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ct.ContactSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "contact deleted")
}
