package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health reports process liveness for load balancers and uptime checks.
func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"uptime":    time.Since(a.startedAt).Seconds(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
