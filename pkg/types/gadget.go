package types

// Gadget is a single inventory record.
type Gadget struct {
	Model         string  `json:"model" yaml:"model"`
	Category      string  `json:"category" yaml:"category"`
	SerialNumber  string  `json:"serial_number" yaml:"serial_number"`
	Brand         string  `json:"brand" yaml:"brand"`
	Price         float64 `json:"price" yaml:"price"`
	Color         string  `json:"color" yaml:"color"`
	StockQuantity int     `json:"stock_quantity" yaml:"stock_quantity"`
}

// NewGadget holds the operator-supplied fields of a gadget before a serial
// number is minted for it.
type NewGadget struct {
	Model    string
	Category string
	Brand    string
	Price    float64
	Color    string
	Quantity int
}

// Patch lists the fields Modify may change. A nil field is left untouched.
// Category and serial number are immutable after creation.
type Patch struct {
	Model    *string
	Brand    *string
	Color    *string
	Price    *float64
	Quantity *int
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Model == nil && p.Brand == nil && p.Color == nil && p.Price == nil && p.Quantity == nil
}

// CategoryListing is one category and its gadgets in insertion order.
type CategoryListing struct {
	Name    string
	Gadgets []Gadget
}
