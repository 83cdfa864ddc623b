package handler

import (
	"net/http"

	"github.com/folioapi/internal/service"
	"github.com/gin-gonic/gin"
)

const experiencesCacheKey = "experiences"

func experienceInput(c *gin.Context) (service.ExperienceInput, error) {
	form := parseForm(c)
	image, err := formFile(c, "experienceImage")
	if err != nil {
		return service.ExperienceInput{}, err
	}

	return service.ExperienceInput{
		CompanyName:           form.str("companyName"),
		WorkedRole:            form.str("workedRole"),
		ExperienceDuration:    form.str("experienceDuration"),
		ExperienceDescription: form.value("experienceDescription"),
		Location:              form.str("location"),
		CompanyAddress:        form.str("companyAddress"),
		CompanyType:           form.str("companyType"),
		CompanyWebsite:        form.str("companyWebsite"),
		KeyResponsibilities:   form.value("keyResponsibilities"),
		TechnologiesUsed:      form.value("technologiesUsed"),
		WorkMode:              form.str("workMode"),
		Image:                 image,
	}, nil
}

// AddExperience creates a work-experience entry.
func (a *API) AddExperience(c *gin.Context) {
	input, err := experienceInput(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	experience, err := a.experiences.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	a.invalidate(experiencesCacheKey)
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Experience added successfully",
		"experience": experience,
	})
}

// ListExperiences returns every experience, newest first.
func (a *API) ListExperiences(c *gin.Context) {
	payload, err := a.cached(experiencesCacheKey, func() (interface{}, error) {
		return a.experiences.List()
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// GetExperience fetches one experience by id.
func (a *API) GetExperience(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	experience, err := a.experiences.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, experience)
}

// UpdateExperience overwrites an experience, swapping the company image
// when a new one is uploaded.
func (a *API) UpdateExperience(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	input, err := experienceInput(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	experience, err := a.experiences.Update(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	a.invalidate(experiencesCacheKey)
	c.JSON(http.StatusOK, gin.H{
		"message":    "Experience updated successfully",
		"experience": experience,
	})
}

// DeleteExperience removes an experience and releases its image.
func (a *API) DeleteExperience(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := a.experiences.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	a.invalidate(experiencesCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "Experience deleted successfully"})
}
