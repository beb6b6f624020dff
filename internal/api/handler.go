// Package api exposes machine facts over HTTP.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hiveden/machinefacts/internal/hw"
	"github.com/hiveden/machinefacts/internal/logging"
	"github.com/hiveden/machinefacts/internal/netif"
	"github.com/hiveden/machinefacts/internal/sysctl"
)

// FactSource is what the handlers need from a hw.Device.
type FactSource interface {
	Summary(ctx context.Context) hw.Summary
	Interfaces(ctx context.Context) []netif.Interface
	Interface(ctx context.Context, role string) hw.Fact[netif.Interface]
}

// SysctlQuerier is what the handlers need from a sysctl.Querier.
type SysctlQuerier interface {
	Lookup(target string) (sysctl.KeyPath, error)
	Format(path sysctl.KeyPath, kind string) (string, error)
}

type APIHandler struct {
	facts  FactSource
	sysctl SysctlQuerier
	log    *slog.Logger
}

func NewAPIHandler(facts FactSource, q SysctlQuerier, logger *slog.Logger) *APIHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &APIHandler{facts: facts, sysctl: q, log: logger}
}

// Register mounts the handler's routes on r.
func (h *APIHandler) Register(r gin.IRouter) {
	factsGroup := r.Group("/facts")
	{
		factsGroup.GET("", h.GetFacts)
		factsGroup.GET("/interfaces", h.ListInterfaces)
		factsGroup.GET("/interfaces/:role", h.GetInterface)
	}

	r.GET("/sysctl/:target", h.QuerySysctl)
	r.GET("/mac/:raw", h.FormatMAC)
}

var errBadRequest = errors.New("bad request")

func statusFor(err error) int {
	switch {
	case errors.Is(err, sysctl.ErrNotFound), errors.Is(err, hw.ErrNoInterface):
		return http.StatusNotFound
	case errors.Is(err, sysctl.ErrSizeMismatch), errors.Is(err, sysctl.ErrMalformedEncoding):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *APIHandler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed", "path", c.FullPath(), logging.KeyError, err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
