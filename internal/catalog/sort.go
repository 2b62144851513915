// internal/catalog/sort.go
package catalog

import (
	"cmp"
	"slices"

	"github.com/javajoker/heyi-backend/internal/models"
)

type SortOrder string

const (
	SortNewest     SortOrder = "newest"
	SortPriceAsc   SortOrder = "price_asc"
	SortPriceDesc  SortOrder = "price_desc"
	SortMostLiked  SortOrder = "most_liked"
	SortMostViewed SortOrder = "most_viewed"
)

var SortOrders = []SortOrder{SortNewest, SortPriceAsc, SortPriceDesc, SortMostLiked, SortMostViewed}

func (o SortOrder) Valid() bool {
	return slices.Contains(SortOrders, o)
}

// Sort returns a sorted copy. Ties keep catalog order; newest and unknown
// orders keep catalog order entirely.
func Sort(assets []models.Asset, order SortOrder) []models.Asset {
	out := slices.Clone(assets)

	var compare func(a, b models.Asset) int
	switch order {
	case SortPriceAsc:
		compare = func(a, b models.Asset) int { return a.Price.Cmp(b.Price) }
	case SortPriceDesc:
		compare = func(a, b models.Asset) int { return b.Price.Cmp(a.Price) }
	case SortMostLiked:
		compare = func(a, b models.Asset) int { return cmp.Compare(b.Likes, a.Likes) }
	case SortMostViewed:
		compare = func(a, b models.Asset) int { return cmp.Compare(b.Views, a.Views) }
	default:
		return out
	}

	slices.SortStableFunc(out, compare)
	return out
}
