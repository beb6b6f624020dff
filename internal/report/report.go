// Package report renders machine facts for terminals and files.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v2"

	"github.com/hiveden/machinefacts/internal/hw"
	"github.com/hiveden/machinefacts/internal/netif"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

type row struct {
	label string
	value string
}

func rows(s hw.Summary) []row {
	return []row{
		{"Host Name", s.HostName},
		{"Model Name", s.ModelName},
		{"Model Identifier", s.ModelIdentifier},
		{"Serial Number", s.SerialNumber},
		{"OS Version", s.OSVersion},
		{"OS Build", s.OSBuild},
		{"Disk Size", s.DiskSize},
		{"Wi-Fi MAC", s.WiFiMAC},
		{"Ethernet MAC", s.EthernetMAC},
		{"Bluetooth MAC", s.BluetoothMAC},
		{"CPU", s.CPU},
		{"RAM", s.RAM},
		{"UUID", s.UUID},
		{"Graphic Card", s.GraphicCard},
	}
}

// Write renders s in format.
func Write(w io.Writer, s hw.Summary, format string) error {
	switch format {
	case FormatTable, "":
		return Table(w, s)
	case FormatJSON:
		return JSON(w, s)
	case FormatYAML:
		return YAML(w, s)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// Table writes one "label: value" line per fact with the values aligned.
func Table(w io.Writer, s hw.Summary) error {
	rs := rows(s)
	width := 0
	for _, r := range rs {
		if n := runewidth.StringWidth(r.label); n > width {
			width = n
		}
	}

	for _, r := range rs {
		pad := strings.Repeat(" ", width-runewidth.StringWidth(r.label))
		if _, err := fmt.Fprintf(w, "%s:%s %s\n", r.label, pad, r.value); err != nil {
			return err
		}
	}
	return nil
}

// Interfaces writes one line per interface with columns aligned by display
// width.
func Interfaces(w io.Writer, ifaces []netif.Interface) error {
	header := []string{"DEVICE", "NAME", "KIND", "ADDRESS"}
	lines := [][]string{header}
	for _, iface := range ifaces {
		lines = append(lines, []string{
			iface.DeviceName,
			iface.DisplayName,
			iface.LinkKind,
			iface.HardwareAddress().String(),
		})
	}

	widths := make([]int, len(header))
	for _, l := range lines {
		for i, cell := range l {
			if n := runewidth.StringWidth(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	for _, l := range lines {
		var b strings.Builder
		for i, cell := range l {
			if i == len(l)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]+2))
		}
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func YAML(w io.Writer, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal yaml: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// WriteFile exports s as YAML to path.
func WriteFile(path string, s hw.Summary) error {
	out, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// ReadFile loads a summary previously written by WriteFile.
func ReadFile(path string) (hw.Summary, error) {
	var s hw.Summary
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}
	return s, nil
}
