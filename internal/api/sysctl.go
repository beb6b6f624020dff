package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hiveden/machinefacts/internal/sysctl"
)

// QuerySysctl handles the GET /sysctl/{target} endpoint. The target is a
// dotted name or a numeric key path; ?type= selects how the value is
// decoded.
func (h *APIHandler) QuerySysctl(c *gin.Context) {
	target := c.Param("target")
	kind := c.DefaultQuery("type", sysctl.KindString)
	if !sysctl.IsKind(kind) {
		h.fail(c, fmt.Errorf("%w: unknown value type %q", errBadRequest, kind))
		return
	}

	path, err := h.sysctl.Lookup(target)
	if err != nil {
		if sysctl.IsNumeric(target) {
			err = fmt.Errorf("%w: %w", errBadRequest, err)
		}
		h.fail(c, err)
		return
	}

	value, err := h.sysctl.Format(path, kind)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"target": target,
		"path":   path.String(),
		"type":   kind,
		"value":  value,
	})
}
