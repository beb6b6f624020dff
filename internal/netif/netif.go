// Package netif enumerates the network interfaces configured on the host.
package netif

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/hiveden/machinefacts/internal/logging"
	"github.com/hiveden/machinefacts/internal/macaddr"
)

// Interface is one configured network interface.
type Interface struct {
	DeviceName         string `json:"deviceName" yaml:"device_name"`
	DisplayName        string `json:"displayName" yaml:"display_name"`
	LinkKind           string `json:"linkKind" yaml:"link_kind"`
	RawHardwareAddress string `json:"hardwareAddress" yaml:"hardware_address"`
}

// HardwareAddress returns the interface's hardware address.
func (i Interface) HardwareAddress() macaddr.Address {
	return macaddr.New(i.RawHardwareAddress)
}

func (i Interface) complete() bool {
	return i.DeviceName != "" && i.DisplayName != "" && i.LinkKind != "" && i.RawHardwareAddress != ""
}

// Source reports the interfaces known to the OS in whatever order it keeps
// them. Fields it cannot determine are left empty.
type Source interface {
	Interfaces(ctx context.Context) ([]Interface, error)
}

// Catalog lists interfaces from a Source.
type Catalog struct {
	src Source
	log *slog.Logger
}

// NewCatalog returns a Catalog over src. A nil logger discards output.
func NewCatalog(src Source, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Catalog{src: src, log: logger.With(logging.KeyComponent, "netif")}
}

// All returns every complete interface ordered by device name. It never
// fails: a source error yields an empty list, and interfaces missing any
// field are skipped.
func (c *Catalog) All(ctx context.Context) []Interface {
	raw, err := c.src.Interfaces(ctx)
	if err != nil {
		c.log.Debug("failed to enumerate interfaces", "error", err)
		return []Interface{}
	}

	out := make([]Interface, 0, len(raw))
	for _, iface := range raw {
		if !iface.complete() {
			c.log.Debug("skipping incomplete interface", "device", iface.DeviceName)
			continue
		}
		out = append(out, iface)
	}

	slices.SortStableFunc(out, func(a, b Interface) int {
		return strings.Compare(a.DeviceName, b.DeviceName)
	})
	return out
}
