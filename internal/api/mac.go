package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hiveden/machinefacts/internal/macaddr"
)

// FormatMAC handles the GET /mac/{raw} endpoint.
func (h *APIHandler) FormatMAC(c *gin.Context) {
	raw := c.Param("raw")
	c.JSON(http.StatusOK, gin.H{
		"raw":       raw,
		"canonical": macaddr.Canonicalize(raw),
	})
}
