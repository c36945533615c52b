// Package validate classifies candidate gadget field values.
//
// Every check is pure. A rejected value yields a *types.FieldError carrying
// the field and the reason code; an accepted value yields nil.
package validate

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/mesh-intelligence/gadgetstore/pkg/types"
)

// Field limits.
const (
	ModelMinLen    = 2
	ModelMaxLen    = 50
	CategoryMinLen = 1
	CategoryMaxLen = 50
	BrandMinLen    = 2
	BrandMaxLen    = 50
	PriceMin       = 0.0
	PriceMax       = 999999.99
	QuantityMin    = 0
	QuantityMax    = 9999
)

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isNameRune reports whether r may appear in a model or brand.
func isNameRune(r rune) bool {
	return isLetter(r) || isDigit(r) || r == ' ' || r == '-' || r == '.'
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

func hasLetter(s string) bool {
	for _, r := range s {
		if isLetter(r) {
			return true
		}
	}
	return false
}

func checkLength(field types.Field, s string, min, max int) error {
	n := utf8.RuneCountInString(s)
	if n < min {
		return types.NewFieldError(field, types.ReasonTooShort)
	}
	if n > max {
		return types.NewFieldError(field, types.ReasonTooLong)
	}
	return nil
}

// name checks the model/brand shape: length, charset, not purely numeric.
func name(field types.Field, s string, min, max int) error {
	if err := checkLength(field, s, min, max); err != nil {
		return err
	}
	if allDigits(s) {
		return types.NewFieldError(field, types.ReasonPurelyNumeric)
	}
	for _, r := range s {
		if !isNameRune(r) {
			return types.NewFieldError(field, types.ReasonBadCharset)
		}
	}
	if !hasLetter(s) {
		return types.NewFieldError(field, types.ReasonBadCharset)
	}
	return nil
}

// Model accepts 2-50 letters, digits, spaces, '-' and '.', with at least one letter.
func Model(s string) error {
	return name(types.FieldModel, s, ModelMinLen, ModelMaxLen)
}

// Brand accepts 2-50 letters, digits, spaces, '-' and '.'. At least one
// letter is required, so "42" and "--" are rejected.
func Brand(s string) error {
	return name(types.FieldBrand, s, BrandMinLen, BrandMaxLen)
}

// Category accepts 1-50 letters and spaces, with at least one letter.
func Category(s string) error {
	if err := checkLength(types.FieldCategory, s, CategoryMinLen, CategoryMaxLen); err != nil {
		return err
	}
	if allDigits(s) {
		return types.NewFieldError(types.FieldCategory, types.ReasonPurelyNumeric)
	}
	for _, r := range s {
		if !isLetter(r) && r != ' ' {
			return types.NewFieldError(types.FieldCategory, types.ReasonBadCharset)
		}
	}
	if !hasLetter(s) {
		return types.NewFieldError(types.FieldCategory, types.ReasonBadCharset)
	}
	return nil
}

// Color matches s case-insensitively against the palette and returns the
// palette's canonical spelling.
func Color(s string) (string, error) {
	canonical := TitleCase(strings.TrimSpace(s))
	if !paletteSet[canonical] {
		return "", types.NewFieldError(types.FieldColor, types.ReasonNotInPalette)
	}
	return canonical, nil
}

// Price accepts 0.00 through 999999.99.
func Price(x float64) error {
	if math.IsNaN(x) || x < PriceMin || x > PriceMax {
		return types.NewFieldError(types.FieldPrice, types.ReasonOutOfRange)
	}
	return nil
}

// Quantity accepts 0 through 9999.
func Quantity(n int) error {
	if n < QuantityMin || n > QuantityMax {
		return types.NewFieldError(types.FieldQuantity, types.ReasonOutOfRange)
	}
	return nil
}

// NormalizeForCompare returns the form used for search and serial matching.
func NormalizeForCompare(s string) string {
	return strings.ToUpper(s)
}

// Gadget validates every operator-supplied field in declaration order and
// returns the gadget with its color in canonical casing. It stops at the
// first rejected field.
func Gadget(in types.NewGadget) (types.NewGadget, error) {
	if err := Model(in.Model); err != nil {
		return in, err
	}
	if err := Category(in.Category); err != nil {
		return in, err
	}
	if err := Brand(in.Brand); err != nil {
		return in, err
	}
	if err := Price(in.Price); err != nil {
		return in, err
	}
	color, err := Color(in.Color)
	if err != nil {
		return in, err
	}
	if err := Quantity(in.Quantity); err != nil {
		return in, err
	}
	in.Color = color
	return in, nil
}
