package handler

import (
	"net/http"

	"github.com/folioapi/internal/service"
	"github.com/gin-gonic/gin"
)

const skillsCacheKey = "skills"

// AddSkill creates a skill from a multipart form. The icon upload is
// required; everything else is plain text.
func (a *API) AddSkill(c *gin.Context) {
	form := parseForm(c)
	icon, err := formFile(c, "skillIcon")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	skill, err := a.skills.Create(c.Request.Context(), service.SkillInput{
		SkillName:     form.str("skillName"),
		SkillCategory: form.str("skillCategory"),
		Icon:          icon,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	a.invalidate(skillsCacheKey)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Skill added successfully",
		"skill":   skill,
	})
}

// ListSkills returns every skill, newest first.
func (a *API) ListSkills(c *gin.Context) {
	payload, err := a.cached(skillsCacheKey, func() (interface{}, error) {
		return a.skills.List()
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// GetSkill fetches one skill by id.
func (a *API) GetSkill(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	skill, err := a.skills.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, skill)
}

// UpdateSkill overwrites a skill, replacing the icon when a new one is
// uploaded.
func (a *API) UpdateSkill(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	form := parseForm(c)
	icon, err := formFile(c, "skillIcon")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	skill, err := a.skills.Update(c.Request.Context(), id, service.SkillInput{
		SkillName:     form.str("skillName"),
		SkillCategory: form.str("skillCategory"),
		Icon:          icon,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	a.invalidate(skillsCacheKey)
	c.JSON(http.StatusOK, gin.H{
		"message": "Skill updated successfully",
		"skill":   skill,
	})
}

// DeleteSkill removes a skill and releases its icon.
func (a *API) DeleteSkill(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := a.skills.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	a.invalidate(skillsCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}
