// Package gadgetstore exposes the in-memory gadget catalog to other modules
// while keeping implementation details internal.
package gadgetstore

import (
	"github.com/mesh-intelligence/gadgetstore/internal/catalog"
	"github.com/mesh-intelligence/gadgetstore/pkg/types"
)

// Version is the gadgetstore release.
const Version = "0.1.0"

// NewCatalog creates an empty catalog. A non-zero year pins the year embedded
// in minted serials; zero uses the current year at mint time.
//
// Example:
//
//	c := gadgetstore.NewCatalog(2024)
//	sn, err := c.Add(types.NewGadget{Model: "Galaxy S24", Category: "Phone", ...})
func NewCatalog(year int) types.Catalog {
	return catalog.New(catalog.WithYear(year))
}
