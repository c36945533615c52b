package catalog

import (
	"fmt"

	"github.com/mesh-intelligence/gadgetstore/internal/serial"
	"github.com/mesh-intelligence/gadgetstore/internal/validate"
)

// Verify checks the catalog's structural invariants and returns the first
// violation found: duplicate serials, a gadget filed under the wrong key, an
// empty category, an invalid field, or a serial whose sequence exceeds its
// category counter. The console runs it after each mutation when logging at
// debug level.
func (c *Catalog) Verify() error {
	seen := make(map[string]string)
	for key, list := range c.gadgets {
		if len(list) == 0 {
			return fmt.Errorf("category %q is empty", key)
		}
		for _, g := range list {
			if g.Category != key {
				return fmt.Errorf("gadget %s has category %q but is stored under %q", g.SerialNumber, g.Category, key)
			}
			norm := validate.NormalizeForCompare(g.SerialNumber)
			if other, dup := seen[norm]; dup {
				return fmt.Errorf("serial %s appears in %q and %q", g.SerialNumber, other, key)
			}
			seen[norm] = key

			seq, err := serial.Sequence(g.SerialNumber)
			if err != nil {
				return err
			}
			if seq < 1 || seq > c.counters[key] {
				return fmt.Errorf("serial %s sequence %d outside [1, %d]", g.SerialNumber, seq, c.counters[key])
			}

			if err := validate.Model(g.Model); err != nil {
				return fmt.Errorf("gadget %s: %w", g.SerialNumber, err)
			}
			if err := validate.Category(g.Category); err != nil {
				return fmt.Errorf("gadget %s: %w", g.SerialNumber, err)
			}
			if err := validate.Brand(g.Brand); err != nil {
				return fmt.Errorf("gadget %s: %w", g.SerialNumber, err)
			}
			if err := validate.Price(g.Price); err != nil {
				return fmt.Errorf("gadget %s: %w", g.SerialNumber, err)
			}
			if color, err := validate.Color(g.Color); err != nil || color != g.Color {
				return fmt.Errorf("gadget %s: color %q not canonical", g.SerialNumber, g.Color)
			}
			if err := validate.Quantity(g.StockQuantity); err != nil {
				return fmt.Errorf("gadget %s: %w", g.SerialNumber, err)
			}
		}
	}
	return nil
}
