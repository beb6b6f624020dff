package hw

import "strings"

// Fact is the outcome of one accessor: either a value or the reason there
// is none.
type Fact[T any] struct {
	Value T
	Err   error
}

func factOf[T any](v T, err error) Fact[T] {
	if err != nil {
		var zero T
		return Fact[T]{Value: zero, Err: err}
	}
	return Fact[T]{Value: v}
}

// OK reports whether the value was read successfully.
func (f Fact[T]) OK() bool {
	return f.Err == nil
}

// Or returns the value, or def if the query failed.
func (f Fact[T]) Or(def T) T {
	if f.Err != nil {
		return def
	}
	return f.Value
}

// DeviceType is the marketing family of a Mac.
type DeviceType string

const (
	MacBook     DeviceType = "MacBook"
	MacBookAir  DeviceType = "MacBook Air"
	MacBookPro  DeviceType = "MacBook Pro"
	IMac        DeviceType = "iMac"
	IMacPro     DeviceType = "iMac Pro"
	MacPro      DeviceType = "Mac Pro"
	MacMini     DeviceType = "Mac mini"
	UnknownType DeviceType = "unknown"
)

// Longer prefixes come before the prefixes they extend.
var modelPrefixes = []struct {
	prefix string
	kind   DeviceType
}{
	{"Macmini", MacMini},
	{"MacBookAir", MacBookAir},
	{"MacBookPro", MacBookPro},
	{"MacPro", MacPro},
	{"iMacPro", IMacPro},
	{"iMac", IMac},
	{"MacBook", MacBook},
}

// DeviceTypeForModel maps a model identifier such as "MacBookPro11,2" to
// its family.
func DeviceTypeForModel(model string) DeviceType {
	for _, p := range modelPrefixes {
		if strings.HasPrefix(model, p.prefix) {
			return p.kind
		}
	}
	return UnknownType
}

// Summary is the facts panel as display strings. Empty fields are facts
// that could not be read.
type Summary struct {
	HostName        string `json:"hostName" yaml:"host_name"`
	ModelName       string `json:"modelName" yaml:"model_name"`
	ModelIdentifier string `json:"modelIdentifier" yaml:"model_identifier"`
	SerialNumber    string `json:"serialNumber" yaml:"serial_number"`
	OSVersion       string `json:"osVersion" yaml:"os_version"`
	OSBuild         string `json:"osBuild" yaml:"os_build"`
	DiskSize        string `json:"diskSize" yaml:"disk_size"`
	WiFiMAC         string `json:"wifiMac" yaml:"wifi_mac"`
	EthernetMAC     string `json:"ethernetMac" yaml:"ethernet_mac"`
	BluetoothMAC    string `json:"bluetoothMac" yaml:"bluetooth_mac"`
	CPU             string `json:"cpu" yaml:"cpu"`
	RAM             string `json:"ram" yaml:"ram"`
	UUID            string `json:"uuid" yaml:"uuid"`
	GraphicCard     string `json:"graphicCard" yaml:"graphic_card"`
}
