package controllers

import (
	"net/http"

	"event-backend/services"
	"event-backend/utils"

	"github.com/gin-gonic/gin"
)

type RSVPController struct {
	RSVPSvc *services.RSVPService
}

func NewRSVPController(svc *services.RSVPService) *RSVPController {
	return &RSVPController{RSVPSvc: svc}
}

// GetInvitation GET /api/rsvp/:eventId/:guestId?token=...
// Guest-facing: the token query param is the only credential.
func (ct *RSVPController) GetInvitation(c *gin.Context) {
	eventID, ok := parseIDParam(c, "eventId")
	if !ok {
		return
	}
	guestID, ok := parseIDParam(c, "guestId")
	if !ok {
		return
	}

	guest, err := ct.RSVPSvc.GetInvitation(eventID, guestID, c.Query("token"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

// SubmitResponse POST /api/rsvp/:eventId/:guestId
func (ct *RSVPController) SubmitResponse(c *gin.Context) {
	eventID, ok := parseIDParam(c, "eventId")
	if !ok {
		return
	}
	guestID, ok := parseIDParam(c, "guestId")
	if !ok {
		return
	}

	var req services.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	guest, err := ct.RSVPSvc.Submit(eventID, guestID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

type checkinPayload struct {
	QRPayload string `json:"qr_payload"`
}

// CheckIn POST /api/rsvp/:eventId/:guestId/checkin
// Organizer-side: marks the guest present after a QR scan.
func (ct *RSVPController) CheckIn(c *gin.Context) {
	eventID, ok := parseIDParam(c, "eventId")
	if !ok {
		return
	}
	guestID, ok := parseIDParam(c, "guestId")
	if !ok {
		return
	}

	var payload checkinPayload
	_ = c.ShouldBindJSON(&payload) // body is optional

	guest, err := ct.RSVPSvc.CheckIn(eventID, guestID, payload.QRPayload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}
