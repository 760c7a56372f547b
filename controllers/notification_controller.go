package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"event-backend/services"
	"event-backend/utils"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	NotificationSvc *services.NotificationService
}

func NewNotificationController(svc *services.NotificationService) *NotificationController {
	return &NotificationController{NotificationSvc: svc}
}

// List GET /api/notifications?organizerId=1
func (ct *NotificationController) List(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("organizerId"))
	organizerID64, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || organizerID64 == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid organizerId")
		return
	}

	notifications, err := ct.NotificationSvc.ListByOrganizer(uint(organizerID64))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, notifications)
}

// MarkRead PATCH /api/notifications/:id/read
func (ct *NotificationController) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ct.NotificationSvc.MarkRead(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "marked read")
}

// MarkAllRead POST /api/notifications/read-all?organizerId=1
func (ct *NotificationController) MarkAllRead(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("organizerId"))
	organizerID64, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || organizerID64 == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid organizerId")
		return
	}
	if err := ct.NotificationSvc.MarkAllRead(uint(organizerID64)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "all marked read")
}
