package hw

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hiveden/machinefacts/internal/netif"
)

// Summary reads every fact once and renders the panel. Facts that cannot
// be read are left empty and logged at debug level.
func (d *Device) Summary(ctx context.Context) Summary {
	ifaces := d.catalog.All(ctx)

	s := Summary{
		HostName:        collapse(d, "host name", d.LocalizedName(ctx), ""),
		ModelName:       string(collapse(d, "device type", d.DeviceType(), UnknownType)),
		ModelIdentifier: collapse(d, "model", d.Model(), ""),
		SerialNumber:    collapse(d, "serial number", d.SerialNumber(ctx), ""),
		OSVersion:       collapse(d, "os version", d.OSVersion(ctx), ""),
		OSBuild:         collapse(d, "os build", d.OSBuild(), ""),
		WiFiMAC:         formatMAC(d, "wifi", selectRole(ifaces, netif.RoleWiFi)),
		EthernetMAC:     formatMAC(d, "ethernet", selectRole(ifaces, netif.RoleEthernet)),
		BluetoothMAC:    formatMAC(d, "bluetooth", selectRole(ifaces, netif.RoleBluetoothPAN)),
		CPU:             collapse(d, "cpu brand", d.CPUBrand(), ""),
		UUID:            collapse(d, "uuid", d.UUID(ctx), ""),
		GraphicCard:     collapse(d, "graphic card", d.GraphicCard(ctx), ""),
	}

	if disk := d.DiskSizeGB(ctx); disk.OK() {
		s.DiskSize = strconv.FormatFloat(disk.Value, 'f', 2, 64) + " GB"
	} else {
		d.log.Debug("fact unavailable", "fact", "disk size", "error", disk.Err)
	}

	if ram := d.RAMSizeGB(); ram.OK() {
		s.RAM = fmt.Sprintf("%dG", ram.Value)
	} else {
		d.log.Debug("fact unavailable", "fact", "ram size", "error", ram.Err)
	}

	return s
}

func collapse[T any](d *Device, name string, f Fact[T], def T) T {
	if !f.OK() {
		d.log.Debug("fact unavailable", "fact", name, "error", f.Err)
	}
	return f.Or(def)
}

func formatMAC(d *Device, role string, f Fact[netif.Interface]) string {
	if !f.OK() {
		d.log.Debug("fact unavailable", "fact", role+" mac", "error", f.Err)
		return ""
	}
	return f.Value.HardwareAddress().String()
}
