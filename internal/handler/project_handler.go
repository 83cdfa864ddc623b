package handler

import (
	"net/http"

	"github.com/folioapi/internal/service"
	"github.com/gin-gonic/gin"
)

const projectsCacheKey = "projects"

func projectInput(c *gin.Context) (service.ProjectInput, error) {
	form := parseForm(c)
	image, err := formFile(c, "projectImage")
	if err != nil {
		return service.ProjectInput{}, err
	}

	return service.ProjectInput{
		ProjectName:        form.str("projectName"),
		ProjectDuration:    form.str("projectDuration"),
		ProjectDescription: form.value("projectDescription"),
		ProjectTechStack:   form.value("projectTechStack"),
		ProjectClient:      form.str("projectClient"),
		TargetAudience:     form.value("targetAudience"),
		ProjectFeatures:    form.value("projectFeatures"),
		ProjectRole:        form.str("projectRole"),
		GithubLink:         form.str("GithubLink"),
		ProjectLink:        form.str("projectLink"),
		Image:              image,
	}, nil
}

// AddProject creates a portfolio project entry.
func (a *API) AddProject(c *gin.Context) {
	input, err := projectInput(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	project, err := a.projects.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	a.invalidate(projectsCacheKey)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Project added successfully",
		"project": project,
	})
}

// ListProjects returns every project, newest first.
func (a *API) ListProjects(c *gin.Context) {
	payload, err := a.cached(projectsCacheKey, func() (interface{}, error) {
		return a.projects.List()
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// GetProject fetches one project by id.
func (a *API) GetProject(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	project, err := a.projects.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// UpdateProject overwrites a project, swapping the showcase image when a
// new one is uploaded.
func (a *API) UpdateProject(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	input, err := projectInput(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	project, err := a.projects.Update(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	a.invalidate(projectsCacheKey)
	c.JSON(http.StatusOK, gin.H{
		"message": "Project updated successfully",
		"project": project,
	})
}

// DeleteProject removes a project and releases its image.
func (a *API) DeleteProject(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := a.projects.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	a.invalidate(projectsCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
