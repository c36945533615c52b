package catalog

import (
	"strings"

	"github.com/mesh-intelligence/gadgetstore/internal/validate"
	"github.com/mesh-intelligence/gadgetstore/pkg/types"
)

// Search runs the tiered lookup: the first category whose name contains term,
// else every gadget whose brand contains term, else every gadget whose model
// contains term. Matching is a case-insensitive substring test. A category
// hit hides brand and model hits.
func (c *Catalog) Search(term string) (types.SearchResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return types.SearchResult{}, types.ErrEmptyQuery
	}
	needle := validate.NormalizeForCompare(term)
	names := c.Categories()

	for _, name := range names {
		if strings.Contains(validate.NormalizeForCompare(name), needle) {
			return types.SearchResult{
				Tier:     types.TierCategory,
				Category: name,
				Term:     term,
				Gadgets:  append([]types.Gadget(nil), c.gadgets[name]...),
			}, nil
		}
	}

	if hits := c.collect(names, needle, func(g types.Gadget) string { return g.Brand }); len(hits) > 0 {
		return types.SearchResult{Tier: types.TierBrand, Term: term, Gadgets: hits}, nil
	}

	if hits := c.collect(names, needle, func(g types.Gadget) string { return g.Model }); len(hits) > 0 {
		return types.SearchResult{Tier: types.TierModel, Term: term, Gadgets: hits}, nil
	}

	return types.SearchResult{Tier: types.TierNone, Term: term}, nil
}

func (c *Catalog) collect(names []string, needle string, field func(types.Gadget) string) []types.Gadget {
	var hits []types.Gadget
	for _, name := range names {
		for _, g := range c.gadgets[name] {
			if strings.Contains(validate.NormalizeForCompare(field(g)), needle) {
				hits = append(hits, g)
			}
		}
	}
	return hits
}
