package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"

	"github.com/hiveden/machinefacts/internal/config"
	"github.com/hiveden/machinefacts/internal/logging"
)

func writeInterfaces(t *testing.T) string {
	t.Helper()
	data, err := plist.Marshal(map[string]interface{}{
		"Interfaces": []map[string]interface{}{
			{
				"BSD Name":               "en0",
				"IOMACAddress":           []byte{0x8c, 0x85, 0x90, 0x00, 0x00, 0x01},
				"SCNetworkInterfaceInfo": map[string]interface{}{"UserDefinedName": "Wi-Fi"},
				"SCNetworkInterfaceType": "IEEE80211",
			},
		},
	}, plist.XMLFormat)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "NetworkInterfaces.plist")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestNewWiresInterfaceCatalog(t *testing.T) {
	cfg := config.Default()
	cfg.InterfacesPlist = writeInterfaces(t)
	cfg.PCIDBPath = filepath.Join(t.TempDir(), "absent.ids")

	var logs bytes.Buffer
	logger, err := logging.New(&logs, "warn", "text")
	require.NoError(t, err)

	a := New(cfg, logger)
	require.NotNil(t, a.Device)
	require.NotNil(t, a.Sysctl)
	assert.Same(t, cfg, a.Config)
	assert.Contains(t, logs.String(), "PCI ID database unavailable")

	wifi := a.Device.WiFiInterface(context.Background())
	require.NoError(t, wifi.Err)
	assert.Equal(t, "en0", wifi.Value.DeviceName)
	assert.Equal(t, "8c:85:90:00:00:01", wifi.Value.HardwareAddress().String())
}

func TestNewNilLogger(t *testing.T) {
	cfg := config.Default()
	cfg.InterfacesPlist = filepath.Join(t.TempDir(), "absent.plist")
	a := New(cfg, nil)
	assert.NotNil(t, a.Log)
	assert.Empty(t, a.Device.Interfaces(context.Background()))
}
