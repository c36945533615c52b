package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/gadgetstore/pkg/types"
)

const tableWidth = 100

// rowFormat lays out SERIAL#, BRAND, MODEL, CATEGORY, PRICE, COLOR, STOCK.
const rowFormat = "%-9s | %-15s | %-15s | %-12s | %-10s | %-10s | %-5s\n"

// renderTable writes gadgets as a table. Text columns are upper-cased and
// prices carry two fractional digits.
func renderTable(w io.Writer, gadgets []types.Gadget) {
	rule := strings.Repeat("-", tableWidth)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, rowFormat, "SERIAL#", "BRAND", "MODEL", "CATEGORY", "PRICE", "COLOR", "STOCK")
	fmt.Fprintln(w, rule)
	for _, g := range gadgets {
		fmt.Fprintf(w, rowFormat,
			strings.ToUpper(g.SerialNumber),
			strings.ToUpper(g.Brand),
			strings.ToUpper(g.Model),
			strings.ToUpper(g.Category),
			fmt.Sprintf("%.2f", g.Price),
			strings.ToUpper(g.Color),
			fmt.Sprintf("%d", g.StockQuantity),
		)
	}
	fmt.Fprintln(w, rule)
}
