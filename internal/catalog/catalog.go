// Package catalog holds the in-memory gadget inventory.
//
// Gadgets are grouped by category; categories iterate in byte-wise key order
// and gadgets within a category in insertion order. Each category owns a
// counter that seeds its serial numbers and never goes backwards, even when
// gadgets are removed. Every mutator validates before it touches state, so a
// rejected call leaves the catalog unchanged.
//
// A Catalog is not safe for concurrent use.
package catalog

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/mesh-intelligence/gadgetstore/internal/serial"
	"github.com/mesh-intelligence/gadgetstore/internal/validate"
	"github.com/mesh-intelligence/gadgetstore/pkg/types"
)

var _ types.Catalog = (*Catalog)(nil)

// Catalog is the authoritative gadget store.
type Catalog struct {
	gadgets  map[string][]types.Gadget
	counters map[string]int
	// issued holds every serial minted during the catalog's lifetime,
	// including ones whose gadget has been removed.
	issued map[string]struct{}

	year int
	now  func() time.Time
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithYear pins the year embedded in minted serials. Zero restores the
// clock-derived year.
func WithYear(year int) Option {
	return func(c *Catalog) {
		c.year = year
	}
}

// WithClock sets the clock consulted for the serial year when no year is pinned.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates an empty catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		gadgets:  make(map[string][]types.Gadget),
		counters: make(map[string]int),
		issued:   make(map[string]struct{}),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Catalog) mintYear() int {
	if c.year != 0 {
		return c.year
	}
	return c.now().Year()
}

// Add validates the fields, mints a serial under the gadget's category,
// appends the gadget, and returns the serial. Validation failures return a
// *types.FieldError for the first rejected field.
func (c *Catalog) Add(in types.NewGadget) (string, error) {
	in, err := validate.Gadget(in)
	if err != nil {
		return "", err
	}

	sn, err := c.mint(in.Category)
	if err != nil {
		return "", err
	}

	c.gadgets[in.Category] = append(c.gadgets[in.Category], types.Gadget{
		Model:         in.Model,
		Category:      in.Category,
		SerialNumber:  sn,
		Brand:         in.Brand,
		Price:         in.Price,
		Color:         in.Color,
		StockQuantity: in.Quantity,
	})
	return sn, nil
}

// mint returns a serial not issued before. Categories sharing a prefix
// share a serial space, so the counter advances past taken values.
func (c *Catalog) mint(category string) (string, error) {
	year := c.mintYear()
	for c.counters[category] < serial.MaxSequence {
		sn := serial.Mint(category, c.counters, year)
		if _, taken := c.issued[sn]; taken {
			continue
		}
		c.issued[sn] = struct{}{}
		return sn, nil
	}
	return "", types.ErrSerialExhausted
}

// locate returns the category and index holding serial, matched
// case-insensitively.
func (c *Catalog) locate(sn string) (string, int, bool) {
	want := validate.NormalizeForCompare(strings.TrimSpace(sn))
	if want == "" {
		return "", 0, false
	}
	for category, list := range c.gadgets {
		for i := range list {
			if validate.NormalizeForCompare(list[i].SerialNumber) == want {
				return category, i, true
			}
		}
	}
	return "", 0, false
}

// FindBySerial returns a copy of the gadget with the given serial, matched
// case-insensitively. Returns types.ErrNotFound on a miss.
func (c *Catalog) FindBySerial(sn string) (types.Gadget, error) {
	category, i, ok := c.locate(sn)
	if !ok {
		return types.Gadget{}, types.ErrNotFound
	}
	return c.gadgets[category][i], nil
}

// Modify applies patch to the gadget with the given serial. All supplied
// fields are validated before any is applied.
func (c *Catalog) Modify(sn string, patch types.Patch) error {
	category, i, ok := c.locate(sn)
	if !ok {
		return types.ErrNotFound
	}

	next := c.gadgets[category][i]
	if patch.Model != nil {
		if err := validate.Model(*patch.Model); err != nil {
			return err
		}
		next.Model = *patch.Model
	}
	if patch.Brand != nil {
		if err := validate.Brand(*patch.Brand); err != nil {
			return err
		}
		next.Brand = *patch.Brand
	}
	if patch.Color != nil {
		color, err := validate.Color(*patch.Color)
		if err != nil {
			return err
		}
		next.Color = color
	}
	if patch.Price != nil {
		if err := validate.Price(*patch.Price); err != nil {
			return err
		}
		next.Price = *patch.Price
	}
	if patch.Quantity != nil {
		if err := validate.Quantity(*patch.Quantity); err != nil {
			return err
		}
		next.StockQuantity = *patch.Quantity
	}

	c.gadgets[category][i] = next
	return nil
}

// Remove deletes the gadget with the given serial. A category left empty is
// dropped; its counter is kept so sequence numbers are never reused.
func (c *Catalog) Remove(sn string) error {
	category, i, ok := c.locate(sn)
	if !ok {
		return types.ErrNotFound
	}

	list := slices.Delete(c.gadgets[category], i, i+1)
	if len(list) == 0 {
		delete(c.gadgets, category)
		return nil
	}
	c.gadgets[category] = list
	return nil
}

// Categories returns the category names in iteration order.
func (c *Catalog) Categories() []string {
	return slices.Sorted(maps.Keys(c.gadgets))
}

// ListAll returns every category with its gadgets.
func (c *Catalog) ListAll() []types.CategoryListing {
	names := c.Categories()
	out := make([]types.CategoryListing, 0, len(names))
	for _, name := range names {
		out = append(out, types.CategoryListing{
			Name:    name,
			Gadgets: slices.Clone(c.gadgets[name]),
		})
	}
	return out
}

// Len returns the number of gadgets in the catalog.
func (c *Catalog) Len() int {
	n := 0
	for _, list := range c.gadgets {
		n += len(list)
	}
	return n
}

// Counter returns the last sequence number issued for category.
func (c *Catalog) Counter(category string) int {
	return c.counters[category]
}
