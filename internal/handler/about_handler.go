package handler

import (
	"errors"
	"net/http"

	"github.com/folioapi/internal/db"
	"github.com/folioapi/internal/service"
	"github.com/gin-gonic/gin"
)

const aboutCacheKey = "about"

// defaultAbout is served when no active record exists yet, so a fresh
// deployment still renders a sensible public page.
func defaultAbout() gin.H {
	return gin.H{
		"role":         "Your Role",
		"description":  []string{"Add your description here"},
		"quote":        "",
		"profileImage": "",
		"resumePdf":    "",
		"contactEmail": "",
		"contactPhone": "",
		"address":      "",
		"socialLinks":  db.SocialLinks{},
		"isActive":     true,
	}
}

// GetAbout returns the active about record, or a default placeholder
// payload when none is active yet.
func (a *API) GetAbout(c *gin.Context) {
	payload, err := a.cached(aboutCacheKey, func() (interface{}, error) {
		about, err := a.about.GetActive()
		if errors.Is(err, service.ErrAboutNotFound) {
			return gin.H{
				"message": "About information not found",
				"about":   defaultAbout(),
			}, nil
		}
		if err != nil {
			return nil, err
		}
		return about, nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// UpsertAbout creates or merges the about record from a JSON or
// multipart body. An attached file replaces the resume or the profile
// image depending on its content type.
func (a *API) UpsertAbout(c *gin.Context) {
	form := parseForm(c)
	file, err := formFile(c, "file")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	about, err := a.about.CreateOrUpdate(c.Request.Context(), service.AboutInput{
		Role:         form.str("role"),
		Description:  form.value("description"),
		Quote:        form.strPtr("quote"),
		ContactEmail: form.str("contactEmail"),
		ContactPhone: form.str("contactPhone"),
		Address:      form.str("address"),
		SocialLinks:  form.value("socialLinks"),
		File:         file,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	a.invalidate(aboutCacheKey)
	c.JSON(http.StatusOK, gin.H{
		"message": "About section updated successfully",
		"about":   about,
	})
}

// UpdateResume swaps the stored resume PDF for the uploaded one.
func (a *API) UpdateResume(c *gin.Context) {
	file, err := formFile(c, "resumePdf")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	about, err := a.about.UpdateResume(c.Request.Context(), file)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	a.invalidate(aboutCacheKey)
	c.JSON(http.StatusOK, gin.H{
		"message":   "Resume updated successfully",
		"resumeUrl": about.ResumePDF,
	})
}

// DeleteResume clears the stored resume reference.
func (a *API) DeleteResume(c *gin.Context) {
	if err := a.about.DeleteResume(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}

	a.invalidate(aboutCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "Resume deleted successfully"})
}

// UpdateProfileImage swaps the stored profile image for the uploaded one.
func (a *API) UpdateProfileImage(c *gin.Context) {
	file, err := formFile(c, "profileImage")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	about, err := a.about.UpdateProfileImage(c.Request.Context(), file)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	a.invalidate(aboutCacheKey)
	c.JSON(http.StatusOK, gin.H{
		"message":         "Profile image updated successfully",
		"profileImageUrl": about.ProfileImage,
	})
}

// DeleteProfileImage clears the stored profile image reference.
func (a *API) DeleteProfileImage(c *gin.Context) {
	if err := a.about.DeleteProfileImage(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}

	a.invalidate(aboutCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "Profile image deleted successfully"})
}

// ToggleAboutActive flips the public visibility of the about section.
func (a *API) ToggleAboutActive(c *gin.Context) {
	isActive, err := a.about.ToggleActive()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	message := "About section deactivated successfully"
	if isActive {
		message = "About section activated successfully"
	}

	a.invalidate(aboutCacheKey)
	c.JSON(http.StatusOK, gin.H{
		"message":  message,
		"isActive": isActive,
	})
}
