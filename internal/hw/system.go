package hw

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
)

// HostProvider supplies host and filesystem facts.
type HostProvider interface {
	Info(ctx context.Context) (*host.InfoStat, error)
	DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error)
}

type gopsutilHost struct{}

func (gopsutilHost) Info(ctx context.Context) (*host.InfoStat, error) {
	return host.InfoWithContext(ctx)
}

func (gopsutilHost) DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error) {
	return disk.UsageWithContext(ctx, path)
}

// LocalizedName returns the host's name.
func (d *Device) LocalizedName(ctx context.Context) Fact[string] {
	info, err := d.host.Info(ctx)
	if err != nil {
		return Fact[string]{Err: fmt.Errorf("failed to get host info: %w", err)}
	}
	return Fact[string]{Value: info.Hostname}
}

// OSVersion returns the product version, e.g. "10.14.5".
func (d *Device) OSVersion(ctx context.Context) Fact[string] {
	info, err := d.host.Info(ctx)
	if err != nil {
		return Fact[string]{Err: fmt.Errorf("failed to get host info: %w", err)}
	}
	return Fact[string]{Value: info.PlatformVersion}
}

// DiskSizeGB returns the capacity of the configured filesystem in decimal
// gigabytes.
func (d *Device) DiskSizeGB(ctx context.Context) Fact[float64] {
	usage, err := d.host.DiskUsage(ctx, d.diskPath)
	if err != nil {
		return Fact[float64]{Err: fmt.Errorf("failed to get disk usage for %s: %w", d.diskPath, err)}
	}
	return Fact[float64]{Value: float64(usage.Total) / 1e9}
}
