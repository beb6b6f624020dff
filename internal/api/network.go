package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hiveden/machinefacts/internal/netif"
)

type interfaceResponse struct {
	netif.Interface
	MACAddress string `json:"macAddress"`
}

func toResponse(iface netif.Interface) interfaceResponse {
	return interfaceResponse{Interface: iface, MACAddress: iface.HardwareAddress().String()}
}

// ListInterfaces handles the GET /facts/interfaces endpoint.
func (h *APIHandler) ListInterfaces(c *gin.Context) {
	ifaces := h.facts.Interfaces(c.Request.Context())

	resp := make([]interfaceResponse, 0, len(ifaces))
	for _, iface := range ifaces {
		resp = append(resp, toResponse(iface))
	}
	c.JSON(http.StatusOK, resp)
}

// GetInterface handles the GET /facts/interfaces/{role} endpoint.
func (h *APIHandler) GetInterface(c *gin.Context) {
	f := h.facts.Interface(c.Request.Context(), c.Param("role"))
	if f.Err != nil {
		h.fail(c, f.Err)
		return
	}
	c.JSON(http.StatusOK, toResponse(f.Value))
}
