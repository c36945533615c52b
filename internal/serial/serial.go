// Package serial mints category-scoped gadget serial numbers.
//
// A serial is a two-letter category prefix, the last two digits of the year,
// and a five-digit per-category sequence number: PH2400001.
package serial

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Length is the number of characters in every serial.
const Length = 9

// MaxSequence is the largest sequence number that fits the format.
const MaxSequence = 99999

var pattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[0-9]{5}$`)

// Prefix returns the first two letters of category, upper-cased and
// right-padded with 'X'. Spaces and other non-letters are skipped.
func Prefix(category string) string {
	prefix := make([]byte, 0, 2)
	for _, r := range strings.ToUpper(category) {
		if len(prefix) == 2 {
			break
		}
		if r >= 'A' && r <= 'Z' {
			prefix = append(prefix, byte(r))
		}
	}
	for len(prefix) < 2 {
		prefix = append(prefix, 'X')
	}
	return string(prefix)
}

// Format assembles a serial from its parts.
func Format(category string, year, seq int) string {
	if year < 0 {
		year = -year
	}
	return fmt.Sprintf("%s%02d%05d", Prefix(category), year%100, seq)
}

// Mint advances the counter for category, inserting it at zero if absent,
// and returns the serial for the new counter value.
func Mint(category string, counters map[string]int, year int) string {
	counters[category]++
	return Format(category, year, counters[category])
}

// Valid reports whether s has the serial format.
func Valid(s string) bool {
	return pattern.MatchString(s)
}

// Sequence returns the sequence number embedded in s.
func Sequence(s string) (int, error) {
	if !Valid(s) {
		return 0, fmt.Errorf("malformed serial %q", s)
	}
	return strconv.Atoi(s[4:])
}
