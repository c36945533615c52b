package types

import (
	"errors"
	"fmt"
)

// Catalog operation errors.
var (
	ErrNotFound        = errors.New("gadget not found")
	ErrEmptyQuery      = errors.New("search term must not be empty")
	ErrInvalidField    = errors.New("invalid field")
	ErrDuplicateSerial = errors.New("serial number already issued")
	ErrSerialExhausted = errors.New("category has no serial numbers left")
)

// Field names a gadget field in validation errors.
type Field string

// Gadget fields.
const (
	FieldModel    Field = "model"
	FieldCategory Field = "category"
	FieldBrand    Field = "brand"
	FieldPrice    Field = "price"
	FieldColor    Field = "color"
	FieldQuantity Field = "quantity"
)

// Reason explains why a field value was rejected.
type Reason string

// Validation reasons.
const (
	ReasonTooShort      Reason = "TooShort"
	ReasonTooLong       Reason = "TooLong"
	ReasonBadCharset    Reason = "BadCharset"
	ReasonPurelyNumeric Reason = "PurelyNumeric"
	ReasonOutOfRange    Reason = "OutOfRange"
	ReasonNotInPalette  Reason = "NotInPalette"
)

// FieldError reports a rejected field value. It matches ErrInvalidField
// under errors.Is.
type FieldError struct {
	Field  Field
	Reason Reason
}

// NewFieldError returns a FieldError for the given field and reason.
func NewFieldError(field Field, reason Reason) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidField) true for any FieldError.
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidField
}
