package controllers

import (
	"net/http"

	"event-backend/models"
	"event-backend/services"
	"event-backend/utils"

	"github.com/gin-gonic/gin"
)

type TableController struct {
	TableSvc *services.TableService
}

func NewTableController(svc *services.TableService) *TableController {
	return &TableController{TableSvc: svc}
}

// ListByEvent GET /api/events/:id/tables
func (ct *TableController) ListByEvent(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tables, err := ct.TableSvc.ListByEvent(eventID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tables)
}

// Create POST /api/events/:id/tables
func (ct *TableController) Create(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var table models.Table
	if err := c.ShouldBindJSON(&table); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	table.EventID = eventID

	if err := ct.TableSvc.Create(&table); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, table)
}

// Get GET /api/tables/:id
func (ct *TableController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	table, err := ct.TableSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, table)
}

// Update PUT /api/tables/:id
func (ct *TableController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var table models.Table
	if err := c.ShouldBindJSON(&table); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	table.ID = id

	if err := ct.TableSvc.Update(&table); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, table)
}

// Delete DELETE /api/tables/:id
func (ct *TableController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ct.TableSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "table deleted")
}

type assignmentPayload struct {
	GuestID uint `json:"guest_id"`
}

// Assign POST /api/tables/:id/assign
func (ct *TableController) Assign(c *gin.Context) {
	tableID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload assignmentPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.GuestID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "guest_id is required")
		return
	}

	if err := ct.TableSvc.Assign(tableID, payload.GuestID); err != nil {
		respondServiceError(c, err)
		return
	}

	table, err := ct.TableSvc.GetByID(tableID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, table)
}

// Unassign POST /api/tables/:id/unassign
func (ct *TableController) Unassign(c *gin.Context) {
	tableID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload assignmentPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.GuestID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "guest_id is required")
		return
	}

	if err := ct.TableSvc.Unassign(tableID, payload.GuestID); err != nil {
		respondServiceError(c, err)
		return
	}

	table, err := ct.TableSvc.GetByID(tableID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, table)
}
