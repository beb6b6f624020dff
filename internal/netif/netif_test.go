package netif

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	ifaces []Interface
	err    error
	calls  int
}

func (f *fakeSource) Interfaces(context.Context) ([]Interface, error) {
	f.calls++
	out := make([]Interface, len(f.ifaces))
	copy(out, f.ifaces)
	return out, f.err
}

func TestAllSortsByDeviceName(t *testing.T) {
	src := &fakeSource{ifaces: []Interface{
		{DeviceName: "en1", DisplayName: "Ethernet", LinkKind: KindEthernet, RawHardwareAddress: "11:11:11:11:11:11"},
		{DeviceName: "en0", DisplayName: "Wi-Fi", LinkKind: KindIEEE80211, RawHardwareAddress: "00:00:00:00:00:00"},
	}}
	got := NewCatalog(src, nil).All(context.Background())

	require.Len(t, got, 2)
	assert.Equal(t, "en0", got[0].DeviceName)
	assert.Equal(t, "en1", got[1].DeviceName)
}

func TestAllOrderIndependentOfSourceOrder(t *testing.T) {
	base := []Interface{
		{DeviceName: "bridge0", DisplayName: "Thunderbolt Bridge", LinkKind: "Bridge", RawHardwareAddress: "a"},
		{DeviceName: "en0", DisplayName: "Wi-Fi", LinkKind: KindIEEE80211, RawHardwareAddress: "b"},
		{DeviceName: "en10", DisplayName: "USB", LinkKind: KindEthernet, RawHardwareAddress: "c"},
		{DeviceName: "en2", DisplayName: "Bluetooth PAN", LinkKind: KindEthernet, RawHardwareAddress: "d"},
	}
	want := []string{"bridge0", "en0", "en10", "en2"}

	perms := [][]int{{0, 1, 2, 3}, {3, 2, 1, 0}, {2, 0, 3, 1}, {1, 3, 0, 2}}
	for _, perm := range perms {
		src := &fakeSource{}
		for _, i := range perm {
			src.ifaces = append(src.ifaces, base[i])
		}

		var names []string
		for _, iface := range NewCatalog(src, nil).All(context.Background()) {
			names = append(names, iface.DeviceName)
		}
		assert.Equal(t, want, names, "perm %v", perm)
	}
}

func TestAllSkipsIncomplete(t *testing.T) {
	src := &fakeSource{ifaces: []Interface{
		{DeviceName: "en0", DisplayName: "Wi-Fi", LinkKind: KindIEEE80211, RawHardwareAddress: "aa"},
		{DeviceName: "", DisplayName: "Ghost", LinkKind: KindEthernet, RawHardwareAddress: "bb"},
		{DeviceName: "en3", DisplayName: "", LinkKind: KindEthernet, RawHardwareAddress: "cc"},
		{DeviceName: "en4", DisplayName: "X", LinkKind: "", RawHardwareAddress: "dd"},
		{DeviceName: "en5", DisplayName: "Y", LinkKind: KindEthernet},
	}}
	got := NewCatalog(src, nil).All(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, "en0", got[0].DeviceName)
}

func TestAllSourceErrorYieldsEmpty(t *testing.T) {
	src := &fakeSource{err: errors.New("no configuration store")}
	got := NewCatalog(src, nil).All(context.Background())

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAllReenumeratesEveryCall(t *testing.T) {
	src := &fakeSource{}
	c := NewCatalog(src, nil)
	c.All(context.Background())
	c.All(context.Background())
	assert.Equal(t, 2, src.calls)
}

func TestSelection(t *testing.T) {
	ifaces := []Interface{
		{DeviceName: "en0", DisplayName: "Ethernet", LinkKind: "Bridge", RawHardwareAddress: "01"},
		{DeviceName: "en1", DisplayName: "Wi-Fi", LinkKind: KindIEEE80211, RawHardwareAddress: "02"},
		{DeviceName: "en2", DisplayName: "Ethernet", LinkKind: KindEthernet, RawHardwareAddress: "03"},
		{DeviceName: "en3", DisplayName: "Bluetooth PAN", LinkKind: KindEthernet, RawHardwareAddress: "04"},
		{DeviceName: "en4", DisplayName: "Wi-Fi", LinkKind: KindIEEE80211, RawHardwareAddress: "05"},
	}

	wifi, ok := WiFi(ifaces)
	require.True(t, ok)
	assert.Equal(t, "en1", wifi.DeviceName)

	eth, ok := Ethernet(ifaces)
	require.True(t, ok)
	assert.Equal(t, "en2", eth.DeviceName)

	pan, ok := BluetoothPAN(ifaces)
	require.True(t, ok)
	assert.Equal(t, "en3", pan.DeviceName)

	got, ok := ByRole(ifaces, RoleBluetoothPAN)
	require.True(t, ok)
	assert.Equal(t, pan, got)

	_, ok = ByRole(ifaces, "serial")
	assert.False(t, ok)
}

func TestSelectionAbsent(t *testing.T) {
	ifaces := []Interface{
		{DeviceName: "en0", DisplayName: "Bluetooth PAN", LinkKind: "Bluetooth", RawHardwareAddress: "01"},
	}
	_, ok := BluetoothPAN(ifaces)
	assert.False(t, ok)
	_, ok = WiFi(nil)
	assert.False(t, ok)
}

func TestInterfaceHardwareAddress(t *testing.T) {
	iface := Interface{RawHardwareAddress: "DE-AD-BE-EF-00-01"}
	assert.Equal(t, "de:ad:be:ef:00:01", iface.HardwareAddress().String())
}

const interfacesPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Interfaces</key>
	<array>
		<dict>
			<key>Active</key>
			<true/>
			<key>BSD Name</key>
			<string>en1</string>
			<key>IOBuiltin</key>
			<true/>
			<key>IOInterfaceType</key>
			<integer>6</integer>
			<key>IOMACAddress</key>
			<data>3q2+7wAB</data>
			<key>SCNetworkInterfaceInfo</key>
			<dict>
				<key>UserDefinedName</key>
				<string>Ethernet</string>
			</dict>
			<key>SCNetworkInterfaceType</key>
			<string>Ethernet</string>
		</dict>
		<dict>
			<key>BSD Name</key>
			<string>en0</string>
			<key>IOMACAddress</key>
			<data>qrvM3e7/</data>
			<key>SCNetworkInterfaceInfo</key>
			<dict>
				<key>UserDefinedName</key>
				<string>Wi-Fi</string>
			</dict>
			<key>SCNetworkInterfaceType</key>
			<string>IEEE80211</string>
		</dict>
		<dict>
			<key>BSD Name</key>
			<string>en5</string>
			<key>SCNetworkInterfaceInfo</key>
			<dict>
				<key>UserDefinedName</key>
				<string>No Address</string>
			</dict>
			<key>SCNetworkInterfaceType</key>
			<string>Ethernet</string>
		</dict>
	</array>
	<key>Model</key>
	<string>MacBookPro15,1</string>
</dict>
</plist>
`

func TestPlistSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "NetworkInterfaces.plist")
	require.NoError(t, os.WriteFile(path, []byte(interfacesPlist), 0o644))

	raw, err := NewPlistSource(path).Interfaces(context.Background())
	require.NoError(t, err)
	require.Len(t, raw, 3)
	assert.Equal(t, Interface{
		DeviceName:         "en1",
		DisplayName:        "Ethernet",
		LinkKind:           KindEthernet,
		RawHardwareAddress: "de:ad:be:ef:00:01",
	}, raw[0])
	assert.Empty(t, raw[2].RawHardwareAddress)

	all := NewCatalog(NewPlistSource(path), nil).All(context.Background())
	require.Len(t, all, 2)
	assert.Equal(t, "en0", all[0].DeviceName)
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", all[0].HardwareAddress().String())

	wifi, ok := WiFi(all)
	require.True(t, ok)
	assert.Equal(t, "en0", wifi.DeviceName)
}

func TestPlistSourceMissingFile(t *testing.T) {
	src := NewPlistSource(filepath.Join(t.TempDir(), "absent.plist"))
	_, err := src.Interfaces(context.Background())
	assert.Error(t, err)

	assert.Empty(t, NewCatalog(src, nil).All(context.Background()))
}

func TestPlistSourceGarbage(t *testing.T) {
	_, err := parseInterfaces([]byte("bplist00 truncated"))
	assert.Error(t, err)
}

func TestNewPlistSourceDefault(t *testing.T) {
	assert.Equal(t, DefaultPlistPath, NewPlistSource("").Path)
}
