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

type EventController struct {
	EventSvc *services.EventService
	StatsSvc *services.StatsService
	ShareSvc *services.ShareService
}

func NewEventController(eventSvc *services.EventService, statsSvc *services.StatsService, shareSvc *services.ShareService) *EventController {
	return &EventController{
		EventSvc: eventSvc,
		StatsSvc: statsSvc,
		ShareSvc: shareSvc,
	}
}

// List GET /api/events?organizerId=1
func (ct *EventController) List(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("organizerId"))
	if raw == "" {
		utils.JSONError(c, http.StatusBadRequest, "organizerId is required")
		return
	}
	organizerID64, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || organizerID64 == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid organizerId")
		return
	}

	events, err := ct.EventSvc.ListByOrganizer(uint(organizerID64))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, events)
}

// Create POST /api/events
func (ct *EventController) Create(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := ct.EventSvc.Create(&event); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, event)
}

// Get GET /api/events/:id
func (ct *EventController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	event, err := ct.EventSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, event)
}

// Update PUT /api/events/:id
func (ct *EventController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	event.ID = id

	if err := ct.EventSvc.Update(&event); err != nil {
		respondServiceError(c, err)
		return
	}

	updated, err := ct.EventSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

// Delete DELETE /api/events/:id
func (ct *EventController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ct.EventSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "event deleted")
}

// Stats GET /api/events/:id/stats
// Recomputed from the live guest set on every call; cheap enough that no
// cache sits in between.
func (ct *EventController) Stats(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	stats, err := ct.StatsSvc.ForEvent(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

// Share POST /api/events/:id/share
func (ct *EventController) Share(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	link, err := ct.ShareSvc.CreateShareLink(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, link)
}
