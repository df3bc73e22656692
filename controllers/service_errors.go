package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusbites/canteen-app/services"
	"github.com/campusbites/canteen-app/utils"
)

// respondServiceError maps domain errors from the service layer onto HTTP
// status codes.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case services.IsValidation(err):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, services.ErrDenied):
		utils.RespondError(c, http.StatusForbidden, err)
	case errors.Is(err, services.ErrOrderNumberConflict):
		utils.RespondError(c, http.StatusConflict, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
