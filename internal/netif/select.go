package netif

// Display names and link kinds used by the system network configuration.
const (
	DisplayWiFi         = "Wi-Fi"
	DisplayEthernet     = "Ethernet"
	DisplayBluetoothPAN = "Bluetooth PAN"

	KindEthernet  = "Ethernet"
	KindIEEE80211 = "IEEE80211"
)

// Find returns the first interface with the given display name. An empty
// linkKind matches any kind.
func Find(ifaces []Interface, displayName, linkKind string) (Interface, bool) {
	for _, iface := range ifaces {
		if iface.DisplayName != displayName {
			continue
		}
		if linkKind != "" && iface.LinkKind != linkKind {
			continue
		}
		return iface, true
	}
	return Interface{}, false
}

func WiFi(ifaces []Interface) (Interface, bool) {
	return Find(ifaces, DisplayWiFi, "")
}

func Ethernet(ifaces []Interface) (Interface, bool) {
	return Find(ifaces, DisplayEthernet, KindEthernet)
}

func BluetoothPAN(ifaces []Interface) (Interface, bool) {
	return Find(ifaces, DisplayBluetoothPAN, KindEthernet)
}

// Role names accepted by ByRole.
const (
	RoleWiFi         = "wifi"
	RoleEthernet     = "ethernet"
	RoleBluetoothPAN = "bluetooth"
)

// ByRole applies the selection rule for role. ok is false for an unknown
// role or when nothing matches.
func ByRole(ifaces []Interface, role string) (Interface, bool) {
	switch role {
	case RoleWiFi:
		return WiFi(ifaces)
	case RoleEthernet:
		return Ethernet(ifaces)
	case RoleBluetoothPAN:
		return BluetoothPAN(ifaces)
	}
	return Interface{}, false
}
