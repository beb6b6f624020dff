package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetFacts handles the GET /facts endpoint.
func (h *APIHandler) GetFacts(c *gin.Context) {
	c.JSON(http.StatusOK, h.facts.Summary(c.Request.Context()))
}
