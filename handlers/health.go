package handlers

import (
	"net/http"

	"chaletbook/utils"

	"github.com/gin-gonic/gin"
)

// Health returns the latest stored health snapshot of external services.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
