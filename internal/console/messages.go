package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/gadgetstore/internal/validate"
	"github.com/mesh-intelligence/gadgetstore/pkg/types"
)

// fieldRules states the accepted shape of each field.
var fieldRules = map[types.Field]string{
	types.FieldModel:    "Model must be 2-50 characters: letters, digits, spaces, '-' or '.', with at least one letter.",
	types.FieldCategory: "Category must be 1-50 characters: letters and spaces only.",
	types.FieldBrand:    "Brand must be 2-50 characters: letters, digits, spaces, '-' or '.', with at least one letter.",
	types.FieldPrice:    "Price must be a number from 0.00 to 999999.99.",
	types.FieldQuantity: "Stock quantity must be a whole number from 0 to 9999.",
	types.FieldColor:    "Color must be one of: " + strings.Join(validate.Palette, ", ") + ".",
}

var reasonText = map[types.Reason]string{
	types.ReasonTooShort:      "too short",
	types.ReasonTooLong:       "too long",
	types.ReasonBadCharset:    "invalid characters",
	types.ReasonPurelyNumeric: "cannot be purely numeric",
	types.ReasonOutOfRange:    "out of range",
	types.ReasonNotInPalette:  "not a known color",
}

// describe turns a store or validation error into an operator message.
func describe(err error) string {
	var fe *types.FieldError
	if errors.As(err, &fe) {
		return fmt.Sprintf("Invalid %s (%s)! %s", fe.Field, reasonText[fe.Reason], fieldRules[fe.Field])
	}
	switch {
	case errors.Is(err, types.ErrNotFound):
		return "Gadget not found!"
	case errors.Is(err, types.ErrSerialExhausted):
		return "No serial numbers left for this category!"
	default:
		return err.Error()
	}
}
