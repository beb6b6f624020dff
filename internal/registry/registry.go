// Package registry looks up properties of I/O registry services.
package registry

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"howett.net/plist"

	"github.com/hiveden/machinefacts/internal/logging"
)

const (
	DefaultIORegPath      = "/usr/sbin/ioreg"
	DefaultCommandTimeout = 5 * time.Second

	ClassPlatformExpert = "IOPlatformExpertDevice"
	ClassPCIDevice      = "IOPCIDevice"

	KeyPlatformUUID   = "IOPlatformUUID"
	KeyPlatformSerial = "IOPlatformSerialNumber"

	keyModel     = "model"
	keyVendorID  = "vendor-id"
	keyDeviceID  = "device-id"
	keyClassCode = "class-code"

	pciClassDisplay = 0x03
)

// ErrNotFound reports that no matching service carried the property.
var ErrNotFound = errors.New("registry property not found")

// Runner executes an external command and returns its standard output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %s", name, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return out, nil
}

// ProductNamer maps PCI vendor and device IDs (lowercase, four hex digits)
// to a product name.
type ProductNamer interface {
	ProductName(vendorID, deviceID string) (string, bool)
}

// Service is the property table of one registry entry.
type Service map[string]interface{}

// Registry reads service properties through the ioreg tool.
type Registry struct {
	runner  Runner
	ioreg   string
	timeout time.Duration
	namer   ProductNamer
	log     *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

func WithRunner(r Runner) Option {
	return func(reg *Registry) { reg.runner = r }
}

func WithIORegPath(path string) Option {
	return func(reg *Registry) {
		if path != "" {
			reg.ioreg = path
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(reg *Registry) {
		if d > 0 {
			reg.timeout = d
		}
	}
}

// WithProductNamer enables the PCI ID fallback for GraphicsCard.
func WithProductNamer(n ProductNamer) Option {
	return func(reg *Registry) { reg.namer = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(reg *Registry) {
		if l != nil {
			reg.log = l
		}
	}
}

// New returns a Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		runner:  ExecRunner{},
		ioreg:   DefaultIORegPath,
		timeout: DefaultCommandTimeout,
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(logging.KeyComponent, "registry")
	return r
}

// Services returns the property tables of every service of class.
func (r *Registry) Services(ctx context.Context, class string) ([]Service, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := r.runner.Run(ctx, r.ioreg, "-a", "-r", "-d", "1", "-c", class)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s services: %w", class, err)
	}
	if len(bytes.TrimSpace(out)) == 0 {
		return nil, nil
	}

	var services []Service
	if _, err := plist.Unmarshal(out, &services); err != nil {
		return nil, fmt.Errorf("failed to parse %s services: %w", class, err)
	}
	return services, nil
}

// PlatformProperty returns string property key of the platform expert.
func (r *Registry) PlatformProperty(ctx context.Context, key string) (string, error) {
	services, err := r.Services(ctx, ClassPlatformExpert)
	if err != nil {
		return "", err
	}
	if len(services) == 0 {
		return "", fmt.Errorf("%w: no %s service", ErrNotFound, ClassPlatformExpert)
	}

	s, ok := services[0][key].(string)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return s, nil
}

func (r *Registry) PlatformUUID(ctx context.Context) (string, error) {
	return r.PlatformProperty(ctx, KeyPlatformUUID)
}

func (r *Registry) SerialNumber(ctx context.Context) (string, error) {
	return r.PlatformProperty(ctx, KeyPlatformSerial)
}

// GraphicsCard returns the model of the first PCI device that reports one.
// Without any model property it falls back to naming the first display
// controller from its PCI IDs.
func (r *Registry) GraphicsCard(ctx context.Context) (string, error) {
	services, err := r.Services(ctx, ClassPCIDevice)
	if err != nil {
		return "", err
	}

	for _, s := range services {
		if model, ok := s[keyModel].([]byte); ok {
			return string(bytes.TrimRight(model, "\x00")), nil
		}
	}

	if r.namer != nil {
		for _, s := range services {
			if !s.isDisplay() {
				continue
			}
			vendor, vok := s.pciID(keyVendorID)
			device, dok := s.pciID(keyDeviceID)
			if !vok || !dok {
				continue
			}
			if name, ok := r.namer.ProductName(vendor, device); ok {
				return name, nil
			}
			r.log.Debug("unknown PCI product", "vendor", vendor, "device", device)
		}
	}

	return "", fmt.Errorf("%w: no graphics model", ErrNotFound)
}

// pciID decodes a little-endian PCI ID property into four hex digits.
func (s Service) pciID(key string) (string, bool) {
	b, ok := s[key].([]byte)
	if !ok || len(b) < 2 {
		return "", false
	}
	return fmt.Sprintf("%04x", binary.LittleEndian.Uint16(b)), true
}

func (s Service) isDisplay() bool {
	b, ok := s[keyClassCode].([]byte)
	if !ok || len(b) < 3 {
		return false
	}
	return b[2] == pciClassDisplay
}
