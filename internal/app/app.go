// Package app assembles the fact sources from a Config.
package app

import (
	"context"
	"log/slog"

	"github.com/hiveden/machinefacts/internal/config"
	"github.com/hiveden/machinefacts/internal/hw"
	"github.com/hiveden/machinefacts/internal/logging"
	"github.com/hiveden/machinefacts/internal/netif"
	"github.com/hiveden/machinefacts/internal/registry"
	"github.com/hiveden/machinefacts/internal/sysctl"
)

type App struct {
	Config *config.Config
	Log    *slog.Logger
	Sysctl *sysctl.Querier
	Device *hw.Device
}

// New wires the kernel querier, interface catalog and I/O registry into a
// Device. A PCI ID database that fails to load only disables graphics card
// naming from PCI IDs.
func New(cfg *config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = logging.Discard()
	}

	q := sysctl.New()
	catalog := netif.NewCatalog(netif.NewPlistSource(cfg.InterfacesPlist), logger)

	regOpts := []registry.Option{
		registry.WithIORegPath(cfg.IORegPath),
		registry.WithTimeout(cfg.CommandTimeout),
		registry.WithLogger(logger),
	}
	if db, err := registry.LoadPCIDB(cfg.PCIDBPath, cfg.PCIDBNetworkFetch); err != nil {
		lvl := slog.LevelDebug
		if cfg.PCIDBPath != "" {
			lvl = slog.LevelWarn
		}
		logger.Log(context.Background(), lvl, "PCI ID database unavailable", logging.KeyError, err)
	} else {
		regOpts = append(regOpts, registry.WithProductNamer(db))
	}

	device := hw.NewDevice(q, catalog, registry.New(regOpts...),
		hw.WithDiskPath(cfg.DiskPath),
		hw.WithLogger(logger),
	)

	return &App{Config: cfg, Log: logger, Sysctl: q, Device: device}
}
