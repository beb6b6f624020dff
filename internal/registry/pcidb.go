package registry

import (
	"fmt"
	"strings"

	"github.com/jaypipes/pcidb"
)

// PCIDB names PCI products from a pci.ids database.
type PCIDB struct {
	db *pcidb.PCIDB
}

// LoadPCIDB loads the PCI ID database. An empty path searches the default
// locations; networkFetch allows downloading it when none is found.
func LoadPCIDB(path string, networkFetch bool) (*PCIDB, error) {
	var opts []*pcidb.WithOption
	if path != "" {
		opts = append(opts, pcidb.WithDirectPath(path))
	}
	if networkFetch {
		opts = append(opts, pcidb.WithEnableNetworkFetch())
	}

	db, err := pcidb.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load PCI ID database: %w", err)
	}
	return &PCIDB{db: db}, nil
}

// NewPCIDB wraps an already loaded database.
func NewPCIDB(db *pcidb.PCIDB) *PCIDB {
	return &PCIDB{db: db}
}

func (p *PCIDB) ProductName(vendorID, deviceID string) (string, bool) {
	vendor, ok := p.db.Vendors[strings.ToLower(vendorID)]
	if !ok {
		return "", false
	}
	deviceID = strings.ToLower(deviceID)
	for _, product := range vendor.Products {
		if product.ID == deviceID {
			return vendor.Name + " " + product.Name, true
		}
	}
	return "", false
}
