// internal/catalog/filter.go
package catalog

import (
	"slices"
	"strings"

	"github.com/javajoker/heyi-backend/internal/models"
)

// Filter is a conjunction of optional facets. Within a multi-select facet
// any selected value matches. A zero Filter keeps everything.
type Filter struct {
	Categories  []models.Category   `json:"categories,omitempty"`
	Statuses    []models.SaleMode   `json:"statuses,omitempty"`
	Chains      []models.Chain      `json:"chains,omitempty"`
	ScriptTypes []models.ScriptType `json:"script_types,omitempty"`
	PriceMin    *models.Price       `json:"price_min,omitempty"`
	PriceMax    *models.Price       `json:"price_max,omitempty"`
	Search      string              `json:"search,omitempty"`
}

func (f Filter) IsEmpty() bool {
	return len(f.Categories) == 0 &&
		len(f.Statuses) == 0 &&
		len(f.Chains) == 0 &&
		len(f.ScriptTypes) == 0 &&
		f.PriceMin == nil &&
		f.PriceMax == nil &&
		strings.TrimSpace(f.Search) == ""
}

// Matches reports whether a passes every active facet.
func (f Filter) Matches(a *models.Asset) bool {
	return f.matches(a, strings.ToLower(strings.TrimSpace(f.Search)))
}

func (f Filter) matches(a *models.Asset, term string) bool {
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, a.Category) {
		return false
	}
	if len(f.Chains) > 0 && !slices.Contains(f.Chains, a.Chain) {
		return false
	}
	// Assets without a script type never match a script type selection.
	if len(f.ScriptTypes) > 0 && (a.ScriptType == "" || !slices.Contains(f.ScriptTypes, a.ScriptType)) {
		return false
	}
	if len(f.Statuses) > 0 && !slices.ContainsFunc(f.Statuses, a.HasSaleMode) {
		return false
	}
	if f.PriceMin != nil && a.Price.Cmp(*f.PriceMin) < 0 {
		return false
	}
	if f.PriceMax != nil && a.Price.Cmp(*f.PriceMax) > 0 {
		return false
	}
	if term != "" &&
		!strings.Contains(strings.ToLower(a.Title), term) &&
		!strings.Contains(strings.ToLower(a.Author), term) {
		return false
	}
	return true
}

// Apply returns the matching assets in their original order. An empty
// filter returns assets unchanged.
func (f Filter) Apply(assets []models.Asset) []models.Asset {
	if f.IsEmpty() {
		return assets
	}

	term := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]models.Asset, 0, len(assets))
	for i := range assets {
		if f.matches(&assets[i], term) {
			out = append(out, assets[i])
		}
	}
	return out
}
