// internal/catalog/catalog_test.go
package catalog

import (
	"github.com/google/go-cmp/cmp"

	"github.com/javajoker/heyi-backend/internal/models"
)

var priceComparer = cmp.Comparer(func(a, b models.Price) bool { return a.Equal(b) })

func fixture(id int, title, author, price string, views, likes int64) models.Asset {
	return models.Asset{
		ID:         id,
		Title:      title,
		Author:     author,
		Owner:      author,
		Category:   models.CategoryImage,
		Chain:      models.ChainHarmony,
		Price:      models.ParsePrice(price),
		Currency:   models.DefaultCurrency,
		SalesModes: []models.SaleMode{models.SaleModeDirect},
		IsListed:   true,
		Views:      views,
		Likes:      likes,
	}
}

func ids(assets []models.Asset) []int {
	out := make([]int, len(assets))
	for i, a := range assets {
		out[i] = a.ID
	}
	return out
}

func isSubsequence(sub, full []int) bool {
	i := 0
	for _, id := range full {
		if i < len(sub) && sub[i] == id {
			i++
		}
	}
	return i == len(sub)
}

func pricePtr(s string) *models.Price {
	p := models.ParsePrice(s)
	return &p
}
