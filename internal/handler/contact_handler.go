package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/folioapi/internal/service"
	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Message        string `json:"message"`
	CompanyName    string `json:"companyName"`
	CompanyWebsite string `json:"companyWebsite"`
}

// SubmitContact accepts the public contact form, stores it and notifies
// both sides by email.
func (a *API) SubmitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err := a.contacts.Submit(c.Request.Context(), service.ContactInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Message:        req.Message,
		CompanyName:    req.CompanyName,
		CompanyWebsite: req.CompanyWebsite,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Message sent successfully!",
	})
}

// ListContacts returns one page of submissions for the admin inbox.
func (a *API) ListContacts(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := a.contacts.List(service.ContactFilter{
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Items,
		"pagination": gin.H{
			"total":      result.Total,
			"page":       result.Page,
			"limit":      result.Limit,
			"totalPages": result.TotalPages,
		},
	})
}

// GetContact fetches one submission by id.
func (a *API) GetContact(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	contact, err := a.contacts.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    contact,
	})
}

// DeleteContact removes one submission.
func (a *API) DeleteContact(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := a.contacts.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contact submission deleted successfully.",
	})
}

// DeleteContacts removes a batch of submissions by id.
func (a *API) DeleteContacts(c *gin.Context) {
	var req struct {
		IDs []uint `json:"ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, service.ErrContactNoIDs.Error())
		return
	}

	deleted, err := a.contacts.DeleteMany(req.IDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("%d contact submission(s) deleted successfully.", deleted),
	})
}
