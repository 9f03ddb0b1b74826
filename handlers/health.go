// File: handlers/health.go
package handlers

import (
	"net/http"

	"schedmate/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler returns the latest backend health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"health": utils.GetHealthStatus(),
	})
}
