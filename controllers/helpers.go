package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"event-backend/services"
	"event-backend/utils"

	"github.com/gin-gonic/gin"
)

// parseIDParam parses a numeric path param and responds 400 itself on
// failure so handlers can just bail out.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id64, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id64 == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id64), true
}

// respondServiceError maps domain sentinels to HTTP statuses. Anything
// unrecognized is a store failure: logged, surfaced as a generic 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFoundOrUnauthorized):
		utils.JSONError(c, http.StatusNotFound, services.ErrNotFoundOrUnauthorized.Error())
	case errors.Is(err, services.ErrTableFull):
		utils.JSONError(c, http.StatusConflict, services.ErrTableFull.Error())
	case errors.Is(err, services.ErrAlreadyAssigned):
		utils.JSONError(c, http.StatusConflict, services.ErrAlreadyAssigned.Error())
	default:
		log.Printf("store error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}
