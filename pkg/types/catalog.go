package types

// Catalog is the in-memory gadget store. Operations are synchronous and
// perform no I/O; a failed mutator leaves the catalog unchanged.
type Catalog interface {
	// Add validates the fields, mints a serial under the gadget's category,
	// and appends the gadget. Returns the serial, or a *FieldError for the
	// first rejected field.
	Add(in NewGadget) (string, error)

	// FindBySerial returns the gadget whose serial matches case-insensitively.
	// Returns ErrNotFound on a miss.
	FindBySerial(serial string) (Gadget, error)

	// Modify applies the patch after validating every supplied field.
	// Returns ErrNotFound or a *FieldError.
	Modify(serial string, patch Patch) error

	// Remove deletes the gadget and prunes its category if left empty.
	// Returns ErrNotFound on a miss.
	Remove(serial string) error

	// ListAll returns every category in key order with its gadgets in
	// insertion order.
	ListAll() []CategoryListing

	// Search runs the category, brand, model tiered lookup.
	// Returns ErrEmptyQuery for a blank term.
	Search(term string) (SearchResult, error)

	// Len returns the number of gadgets held.
	Len() int
}
