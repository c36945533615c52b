package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/gadgetstore/internal/catalog"
	"github.com/mesh-intelligence/gadgetstore/internal/logging"
	"github.com/mesh-intelligence/gadgetstore/pkg/types"
)

// runScript feeds lines to a session over store and returns everything it printed.
func runScript(t *testing.T, store types.Catalog, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	s := New(store, Options{
		In:  strings.NewReader(strings.Join(lines, "\n") + "\n"),
		Out: &out,
	})
	require.NoError(t, s.Run())
	return out.String()
}

func seeded(t *testing.T) *catalog.Catalog {
	t.Helper()
	c := catalog.New(catalog.WithYear(2024))
	_, err := c.Add(types.NewGadget{
		Model: "Galaxy S24", Category: "Phone", Brand: "Samsung",
		Price: 799.99, Color: "black", Quantity: 10,
	})
	require.NoError(t, err)
	return c
}

func TestAddCommand(t *testing.T) {
	c := catalog.New(catalog.WithYear(2024))

	out := runScript(t, c,
		"1", "Galaxy S24", "Phone", "Samsung", "799.99", "black", "10",
		"6",
	)

	assert.Contains(t, out, "ADD NEW GADGET")
	assert.Contains(t, out, "Gadget added successfully!")
	assert.Contains(t, out, "Generated Serial Number: PH2400001")
	assert.Contains(t, out, "Thank you for using Gadget Store Management System!")

	g, err := c.FindBySerial("PH2400001")
	require.NoError(t, err)
	assert.Equal(t, "Black", g.Color)
	assert.Equal(t, 10, g.StockQuantity)
}

func TestAddCommandRetriesInvalidInput(t *testing.T) {
	c := catalog.New(catalog.WithYear(2024))

	out := runScript(t, c,
		"1",
		"A", "Galaxy S24",
		"Phone9", "Phone",
		"42", "Samsung",
		"abc", "-1", "799.99",
		"grey", "black",
		"ten", "10000", "10",
		"6",
	)

	assert.Contains(t, out, "Invalid model (too short)!")
	assert.Contains(t, out, "Invalid category (invalid characters)!")
	assert.Contains(t, out, "Invalid brand (cannot be purely numeric)!")
	assert.Contains(t, out, "Invalid price (invalid characters)!")
	assert.Contains(t, out, "Invalid price (out of range)!")
	assert.Contains(t, out, "Invalid color (not a known color)! Color must be one of: Red, Blue")
	assert.Contains(t, out, "Invalid quantity (invalid characters)!")
	assert.Contains(t, out, "Invalid quantity (out of range)!")
	assert.Contains(t, out, "Generated Serial Number: PH2400001")
	assert.Equal(t, 1, c.Len())
}

func TestSearchCommand(t *testing.T) {
	c := seeded(t)

	out := runScript(t, c,
		"2", "phone",
		"2", "samsung",
		"2", "Galaxy",
		"2", "iPad",
		"2", "",
		"6",
	)

	assert.Contains(t, out, "Found gadgets in category 'PHONE':")
	assert.Contains(t, out, "Found gadgets of brand 'SAMSUNG':")
	assert.Contains(t, out, "Found 1 matching gadget(s) by model:")
	assert.Contains(t, out, "No gadgets found matching your search.")
	assert.Contains(t, out, "Search term cannot be empty!")
}

func TestDeleteCommand(t *testing.T) {
	t.Run("retries until found", func(t *testing.T) {
		c := seeded(t)
		out := runScript(t, c, "3", "ZZ2400009", "ph2400001", "6")

		assert.Contains(t, out, "Current Gadgets in Store:")
		assert.Contains(t, out, "Gadget not found! Please try again.")
		assert.Contains(t, out, "Gadget deleted successfully!")
		assert.Zero(t, c.Len())
		assert.Empty(t, c.ListAll())
	})

	t.Run("Q cancels", func(t *testing.T) {
		c := seeded(t)
		out := runScript(t, c, "3", "q", "6")

		assert.Contains(t, out, "Deletion cancelled.")
		assert.Equal(t, 1, c.Len())
	})

	t.Run("empty store", func(t *testing.T) {
		out := runScript(t, catalog.New(), "3", "6")
		assert.Contains(t, out, "No gadgets in store!")
	})
}

func TestModifyCommand(t *testing.T) {
	c := seeded(t)

	out := runScript(t, c,
		"4", "PH2400001",
		"", // model kept
		"", // brand kept
		"NAVY",
		"abc", "749.50",
		"99999", "", // quantity rejected then kept
		"6",
	)

	assert.Contains(t, out, "Selected gadget details:")
	assert.Contains(t, out, "Model [Galaxy S24]: ")
	assert.Contains(t, out, "Price [799.99]: ")
	assert.Contains(t, out, "Stock Quantity [10]: ")
	assert.Contains(t, out, "Invalid quantity (out of range)!")
	assert.Contains(t, out, "Gadget modified successfully!")

	g, err := c.FindBySerial("PH2400001")
	require.NoError(t, err)
	assert.Equal(t, types.Gadget{
		Model: "Galaxy S24", Category: "Phone", SerialNumber: "PH2400001", Brand: "Samsung",
		Price: 749.50, Color: "Navy", StockQuantity: 10,
	}, g)
}

func TestModifyCommandCancel(t *testing.T) {
	c := seeded(t)
	out := runScript(t, c, "4", "Q", "6")
	assert.Contains(t, out, "Modification cancelled.")
}

func TestListCommand(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		out := runScript(t, catalog.New(), "5", "6")
		assert.Contains(t, out, "LIST ALL GADGETS")
		assert.Contains(t, out, "No gadgets in store!")
	})

	t.Run("populated", func(t *testing.T) {
		out := runScript(t, seeded(t), "5", "6")
		assert.Contains(t, out, "Category: PHONE")
		assert.Contains(t, out, "PH2400001")
		assert.Contains(t, out, "SAMSUNG")
		assert.Contains(t, out, "GALAXY S24")
		assert.Contains(t, out, "799.99")
		assert.Contains(t, out, "BLACK")
	})
}

func TestMenuEdgeCases(t *testing.T) {
	t.Run("invalid choice", func(t *testing.T) {
		out := runScript(t, catalog.New(), "9", "", "6")
		assert.Equal(t, 2, strings.Count(out, "Invalid choice!"))
	})

	t.Run("end of input exits", func(t *testing.T) {
		var out bytes.Buffer
		s := New(catalog.New(), Options{In: strings.NewReader(""), Out: &out})
		require.NoError(t, s.Run())
		assert.Contains(t, out.String(), "Thank you for using Gadget Store Management System!")
	})

	t.Run("end of input inside a command exits", func(t *testing.T) {
		c := catalog.New()
		var out bytes.Buffer
		s := New(c, Options{In: strings.NewReader("1\nGalaxy S24\nPhone"), Out: &out})
		require.NoError(t, s.Run())
		assert.Zero(t, c.Len())
	})

	t.Run("pause and clear screen", func(t *testing.T) {
		var out bytes.Buffer
		s := New(catalog.New(), Options{
			In:          strings.NewReader("5\n\n6\n"),
			Out:         &out,
			Pause:       true,
			ClearScreen: true,
		})
		require.NoError(t, s.Run())
		assert.Contains(t, out.String(), "Press Enter to continue...")
		assert.Contains(t, out.String(), clearSeq)
	})
}

func TestSessionLogsOperations(t *testing.T) {
	var logs bytes.Buffer
	c := catalog.New(catalog.WithYear(2024))
	s := New(c, Options{
		In:     strings.NewReader("1\nGalaxy S24\nPhone\nSamsung\n799.99\nblack\n10\n6\n"),
		Logger: logging.NewWriter(zapcore.AddSync(&logs), "debug"),
	})
	require.NoError(t, s.Run())

	assert.Contains(t, logs.String(), `"message":"gadget added"`)
	assert.Contains(t, logs.String(), `"serial":"PH2400001"`)
	assert.Contains(t, logs.String(), `"session":"`)
}

type brokenCatalog struct {
	*catalog.Catalog
	verified int
}

func (b *brokenCatalog) Verify() error {
	b.verified++
	return errors.New("category \"Phone\" is empty")
}

func TestSessionVerifiesCatalogAtDebug(t *testing.T) {
	script := "1\nGalaxy S24\nPhone\nSamsung\n799.99\nblack\n10\n6\n"

	t.Run("debug runs the self-check", func(t *testing.T) {
		var logs bytes.Buffer
		s := New(catalog.New(catalog.WithYear(2024)), Options{
			In:     strings.NewReader(script),
			Logger: logging.NewWriter(zapcore.AddSync(&logs), "debug"),
		})
		require.NoError(t, s.Run())
		assert.Contains(t, logs.String(), `"message":"catalog verified"`)
		assert.NotContains(t, logs.String(), "catalog invariant violated")
	})

	t.Run("violation is logged", func(t *testing.T) {
		var logs bytes.Buffer
		c := &brokenCatalog{Catalog: catalog.New(catalog.WithYear(2024))}
		s := New(c, Options{
			In:     strings.NewReader(script),
			Logger: logging.NewWriter(zapcore.AddSync(&logs), "debug"),
		})
		require.NoError(t, s.Run())
		assert.Equal(t, 1, c.verified)
		assert.Contains(t, logs.String(), `"message":"catalog invariant violated"`)
		assert.Contains(t, logs.String(), `"op":"add"`)
	})

	t.Run("skipped above debug", func(t *testing.T) {
		var logs bytes.Buffer
		c := &brokenCatalog{Catalog: catalog.New(catalog.WithYear(2024))}
		s := New(c, Options{
			In:     strings.NewReader(script),
			Logger: logging.NewWriter(zapcore.AddSync(&logs), "info"),
		})
		require.NoError(t, s.Run())
		assert.Zero(t, c.verified)
		assert.Equal(t, 1, c.Len())
	})
}
