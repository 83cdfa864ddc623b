package handler

import (
	"net/http"

	"github.com/folioapi/internal/service"
	"github.com/gin-gonic/gin"
)

const tokenCookieMaxAge = 7 * 24 * 60 * 60

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the admin credentials and hands back a bearer token. The
// token is also set as an httpOnly cookie for browser clients.
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	token, admin, err := a.auth.Login(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.SetCookie("token", token, tokenCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"email": admin.Email,
			"name":  service.DisplayName(admin),
		},
	})
}

// Logout clears the token cookie. The token itself stays valid until it
// expires; there is no server-side session to tear down.
func (a *API) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}
