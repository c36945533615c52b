package types

// SearchTier identifies which source produced a search result.
type SearchTier int

// Search tiers, consulted in this order. The first non-empty tier wins.
const (
	TierNone SearchTier = iota
	TierCategory
	TierBrand
	TierModel
)

func (t SearchTier) String() string {
	switch t {
	case TierCategory:
		return "category"
	case TierBrand:
		return "brand"
	case TierModel:
		return "model"
	default:
		return "none"
	}
}

// SearchResult is the outcome of a tiered search.
//
// For TierCategory, Category names the matched category. For TierBrand, Term
// echoes the search term. For TierNone, Gadgets is empty.
type SearchResult struct {
	Tier     SearchTier
	Category string
	Term     string
	Gadgets  []Gadget
}

// Count returns the number of gadgets in the result.
func (r SearchResult) Count() int {
	return len(r.Gadgets)
}

// NoMatch reports whether every tier came back empty.
func (r SearchResult) NoMatch() bool {
	return r.Tier == TierNone
}
