package hw

import (
	"context"
	"log/slog"

	"github.com/hiveden/machinefacts/internal/logging"
	"github.com/hiveden/machinefacts/internal/netif"
	"github.com/hiveden/machinefacts/internal/sysctl"
)

const (
	nameModel      = "hw.model"
	nameCPUBrand   = "machdep.cpu.brand_string"
	bytesPerGiB    = 1024 * 1024 * 1024
	DefaultDiskDir = "/"
)

// Registry is the subset of the I/O registry the device facts need.
type Registry interface {
	PlatformUUID(ctx context.Context) (string, error)
	SerialNumber(ctx context.Context) (string, error)
	GraphicsCard(ctx context.Context) (string, error)
}

// Device reads machine facts. It keeps no state between calls.
type Device struct {
	sysctl   *sysctl.Querier
	catalog  *netif.Catalog
	registry Registry
	host     HostProvider
	diskPath string
	log      *slog.Logger
}

// Option configures a Device.
type Option func(*Device)

func WithHost(h HostProvider) Option {
	return func(d *Device) { d.host = h }
}

func WithDiskPath(path string) Option {
	return func(d *Device) {
		if path != "" {
			d.diskPath = path
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(d *Device) {
		if l != nil {
			d.log = l
		}
	}
}

// NewDevice returns a Device reading from the given sources.
func NewDevice(q *sysctl.Querier, catalog *netif.Catalog, reg Registry, opts ...Option) *Device {
	d := &Device{
		sysctl:   q,
		catalog:  catalog,
		registry: reg,
		host:     gopsutilHost{},
		diskPath: DefaultDiskDir,
		log:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.log = d.log.With(logging.KeyComponent, "hw")
	return d
}

// OSBuild returns the OS build string, e.g. "18F132".
func (d *Device) OSBuild() Fact[string] {
	v, err := d.sysctl.String(sysctl.PathOSVersion)
	return factOf(v, err)
}

// Model returns the model identifier, e.g. "MacBookPro11,2".
func (d *Device) Model() Fact[string] {
	v, err := d.sysctl.String(sysctl.PathModel)
	return factOf(v, err)
}

// DeviceType classifies the model identifier by prefix.
func (d *Device) DeviceType() Fact[DeviceType] {
	model, err := d.sysctl.StringByName(nameModel)
	if err != nil {
		return Fact[DeviceType]{Value: UnknownType, Err: err}
	}
	return Fact[DeviceType]{Value: DeviceTypeForModel(model)}
}

// CPUModel returns the machine class, e.g. "x86_64".
func (d *Device) CPUModel() Fact[string] {
	v, err := d.sysctl.String(sysctl.PathMachine)
	return factOf(v, err)
}

// AvailableCPUs returns the number of available physical and virtual CPUs.
func (d *Device) AvailableCPUs() Fact[int32] {
	v, err := sysctl.Fixed[int32](d.sysctl, sysctl.PathAvailCPU)
	return factOf(v, err)
}

func (d *Device) CPUBrand() Fact[string] {
	v, err := d.sysctl.StringByName(nameCPUBrand)
	return factOf(v, err)
}

// RAMSizeGB returns physical memory in whole GiB.
func (d *Device) RAMSizeGB() Fact[uint32] {
	mem, err := sysctl.Fixed[uint64](d.sysctl, sysctl.PathMemSize)
	if err != nil {
		return Fact[uint32]{Err: err}
	}
	return Fact[uint32]{Value: uint32(mem / bytesPerGiB)}
}

func (d *Device) SerialNumber(ctx context.Context) Fact[string] {
	v, err := d.registry.SerialNumber(ctx)
	return factOf(v, err)
}

func (d *Device) UUID(ctx context.Context) Fact[string] {
	v, err := d.registry.PlatformUUID(ctx)
	return factOf(v, err)
}

func (d *Device) GraphicCard(ctx context.Context) Fact[string] {
	v, err := d.registry.GraphicsCard(ctx)
	return factOf(v, err)
}
