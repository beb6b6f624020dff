package hw

import (
	"context"
	"errors"
	"fmt"

	"github.com/hiveden/machinefacts/internal/netif"
)

// ErrNoInterface reports that no interface matched a selection rule.
var ErrNoInterface = errors.New("no matching interface")

// Interfaces lists the configured network interfaces.
func (d *Device) Interfaces(ctx context.Context) []netif.Interface {
	return d.catalog.All(ctx)
}

// Interface selects the interface playing role ("wifi", "ethernet" or
// "bluetooth") from a fresh enumeration.
func (d *Device) Interface(ctx context.Context, role string) Fact[netif.Interface] {
	return selectRole(d.catalog.All(ctx), role)
}

func (d *Device) WiFiInterface(ctx context.Context) Fact[netif.Interface] {
	return d.Interface(ctx, netif.RoleWiFi)
}

func (d *Device) EthernetInterface(ctx context.Context) Fact[netif.Interface] {
	return d.Interface(ctx, netif.RoleEthernet)
}

func (d *Device) BluetoothPANInterface(ctx context.Context) Fact[netif.Interface] {
	return d.Interface(ctx, netif.RoleBluetoothPAN)
}

func selectRole(ifaces []netif.Interface, role string) Fact[netif.Interface] {
	iface, ok := netif.ByRole(ifaces, role)
	if !ok {
		return Fact[netif.Interface]{Err: fmt.Errorf("%w: %s", ErrNoInterface, role)}
	}
	return Fact[netif.Interface]{Value: iface}
}
