package netif

import (
	"context"
	"fmt"
	"net"
	"os"

	"howett.net/plist"
)

// DefaultPlistPath is where the system network configuration keeps its
// interface list.
const DefaultPlistPath = "/Library/Preferences/SystemConfiguration/NetworkInterfaces.plist"

type interfacesFile struct {
	Interfaces []interfaceEntry `plist:"Interfaces"`
}

type interfaceEntry struct {
	BSDName    string `plist:"BSD Name"`
	Type       string `plist:"SCNetworkInterfaceType"`
	MACAddress []byte `plist:"IOMACAddress"`
	Info       struct {
		UserDefinedName string `plist:"UserDefinedName"`
	} `plist:"SCNetworkInterfaceInfo"`
}

// PlistSource reads interfaces from a NetworkInterfaces.plist file.
type PlistSource struct {
	Path string
}

// NewPlistSource returns a PlistSource for path, or for DefaultPlistPath
// when path is empty.
func NewPlistSource(path string) *PlistSource {
	if path == "" {
		path = DefaultPlistPath
	}
	return &PlistSource{Path: path}
}

func (s *PlistSource) Interfaces(ctx context.Context) ([]Interface, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read interface list: %w", err)
	}
	return parseInterfaces(data)
}

func parseInterfaces(data []byte) ([]Interface, error) {
	var file interfacesFile
	if _, err := plist.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse interface list: %w", err)
	}

	ifaces := make([]Interface, 0, len(file.Interfaces))
	for _, e := range file.Interfaces {
		iface := Interface{
			DeviceName:  e.BSDName,
			DisplayName: e.Info.UserDefinedName,
			LinkKind:    e.Type,
		}
		if len(e.MACAddress) > 0 {
			iface.RawHardwareAddress = net.HardwareAddr(e.MACAddress).String()
		}
		ifaces = append(ifaces, iface)
	}
	return ifaces, nil
}
