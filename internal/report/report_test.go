package report

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiveden/machinefacts/internal/hw"
	"github.com/hiveden/machinefacts/internal/netif"
)

var sample = hw.Summary{
	HostName:        "studio.local",
	ModelName:       "MacBook Pro",
	ModelIdentifier: "MacBookPro15,1",
	WiFiMAC:         "8c:85:90:00:00:01",
	RAM:             "16G",
}

func TestTableAlignsValues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, sample))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 14)
	assert.Equal(t, "Host Name:        studio.local", lines[0])
	assert.Equal(t, "Model Identifier: MacBookPro15,1", lines[2])
	assert.Equal(t, "Serial Number:    ", lines[3])
	assert.Equal(t, "RAM:              16G", lines[11])
}

func TestWriteFormats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample, FormatJSON))
	assert.Contains(t, buf.String(), `"wifiMac": "8c:85:90:00:00:01"`)

	buf.Reset()
	require.NoError(t, Write(&buf, sample, FormatYAML))
	assert.Contains(t, buf.String(), "host_name: studio.local")

	assert.Error(t, Write(&buf, sample, "csv"))
}

func TestInterfaces(t *testing.T) {
	var buf bytes.Buffer
	err := Interfaces(&buf, []netif.Interface{
		{DeviceName: "en0", DisplayName: "Wi-Fi", LinkKind: "IEEE80211", RawHardwareAddress: "8C-85-90-00-00-01"},
		{DeviceName: "bridge0", DisplayName: "Thunderbolt Bridge", LinkKind: "Bridge", RawHardwareAddress: "82:0A:00:00:00:00"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "DEVICE   NAME                KIND       ADDRESS", lines[0])
	assert.Equal(t, "en0      Wi-Fi               IEEE80211  8c:85:90:00:00:01", lines[1])
	assert.Equal(t, "bridge0  Thunderbolt Bridge  Bridge     82:0a:00:00:00:00", lines[2])
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facts.yaml")
	require.NoError(t, WriteFile(path, sample))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}
