package validate

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Palette lists the accepted colors in canonical casing and display order.
var Palette = []string{
	"Red", "Blue", "Green", "Yellow", "Black", "White", "Purple", "Orange", "Pink", "Brown",
	"Gray", "Silver", "Gold", "Navy", "Teal", "Maroon", "Violet", "Magenta", "Cyan", "Turquoise",
	"Indigo", "Crimson", "Beige", "Ivory", "Olive", "Coral", "Burgundy", "Lavender", "Plum", "Khaki",
}

var paletteSet = func() map[string]bool {
	m := make(map[string]bool, len(Palette))
	for _, c := range Palette {
		m[c] = true
	}
	return m
}()

// TitleCase returns s with the first letter of each word upper-cased and the
// rest lower-cased.
func TitleCase(s string) string {
	// A Caser carries state, so each call gets its own.
	return cases.Title(language.Und).String(strings.ToLower(s))
}
