package handler

import (
	"net/http"

	"github.com/folioapi/internal/service"
	"github.com/gin-gonic/gin"
)

const certificationsCacheKey = "certifications"

func certificationInput(c *gin.Context) (service.CertificationInput, error) {
	form := parseForm(c)
	certificate, err := formFile(c, "certificatePdf")
	if err != nil {
		return service.CertificationInput{}, err
	}

	return service.CertificationInput{
		CourseName:          form.str("courseName"),
		CourseMode:          form.str("courseMode"),
		CourseProvider:      form.str("courseProvider"),
		CourseDuration:      form.str("courseDuration"),
		CourseCompletedDate: form.str("courseCompletedDate"),
		KeyLearnings:        form.value("keyLearnings"),
		Certificate:         certificate,
	}, nil
}

// AddCertification creates a certification entry.
func (a *API) AddCertification(c *gin.Context) {
	input, err := certificationInput(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	certification, err := a.certifications.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	a.invalidate(certificationsCacheKey)
	c.JSON(http.StatusCreated, gin.H{
		"message":       "Certification added successfully",
		"certification": certification,
	})
}

// ListCertifications returns every certification, most recently
// completed first.
func (a *API) ListCertifications(c *gin.Context) {
	payload, err := a.cached(certificationsCacheKey, func() (interface{}, error) {
		return a.certifications.List()
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// GetCertification fetches one certification by id.
func (a *API) GetCertification(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	certification, err := a.certifications.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, certification)
}

// UpdateCertification overwrites a certification, swapping the
// certificate document when a new one is uploaded.
func (a *API) UpdateCertification(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	input, err := certificationInput(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	certification, err := a.certifications.Update(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	a.invalidate(certificationsCacheKey)
	c.JSON(http.StatusOK, gin.H{
		"message":       "Certification updated successfully",
		"certification": certification,
	})
}

// DeleteCertification removes a certification and releases its document.
func (a *API) DeleteCertification(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := a.certifications.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	a.invalidate(certificationsCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "Certification deleted successfully"})
}
