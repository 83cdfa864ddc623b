package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/folioapi/internal/service"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// respondServiceError maps the service sentinels onto HTTP statuses and
// falls back to a 500 for anything unexpected.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAboutNotFound),
		errors.Is(err, service.ErrSkillNotFound),
		errors.Is(err, service.ErrExperienceNotFound),
		errors.Is(err, service.ErrProjectNotFound),
		errors.Is(err, service.ErrCertificationNotFound),
		errors.Is(err, service.ErrContactNotFound),
		errors.Is(err, service.ErrAdminNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrResumeMissing),
		errors.Is(err, service.ErrProfileImageMissing):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrResumeRequired),
		errors.Is(err, service.ErrProfileImageRequired),
		errors.Is(err, service.ErrProfileImageNotAnImage),
		errors.Is(err, service.ErrSkillIconRequired),
		errors.Is(err, service.ErrSkillInvalidInput),
		errors.Is(err, service.ErrExperienceCompanyRequired),
		errors.Is(err, service.ErrExperienceWorkModeInvalid),
		errors.Is(err, service.ErrProjectNameRequired),
		errors.Is(err, service.ErrCertificationInvalidInput),
		errors.Is(err, service.ErrContactInvalidInput),
		errors.Is(err, service.ErrContactNoIDs):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
