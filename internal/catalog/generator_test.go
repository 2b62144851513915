// internal/catalog/generator_test.go
package catalog

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/heyi-backend/internal/models"
)

func TestGenerateAssetDeterministic(t *testing.T) {
	a := GenerateAsset(99, 17)
	b := GenerateAsset(99, 17)

	if diff := cmp.Diff(a, b, priceComparer); diff != "" {
		t.Fatalf("same seed and id differ (-a +b):\n%s", diff)
	}

	c := GenerateAsset(100, 17)
	assert.False(t, cmp.Equal(a, c, priceComparer), "different seeds should differ")
}

func TestGenerateCatalogInvariants(t *testing.T) {
	assets := GenerateCatalog(20240101, 80)
	require.Len(t, assets, 80)

	for i, a := range assets {
		assert.Equal(t, i+1, a.ID)
		require.NoError(t, a.Validate(), "asset %d", a.ID)

		assert.NotEmpty(t, a.SalesModes)
		assert.Equal(t, fmt.Sprintf("https://picsum.photos/seed/%d/400/400", a.ID), a.ImageURL)
		assert.Len(t, a.PriceHistory, 6)
		assert.False(t, a.Price.IsZero())
		assert.GreaterOrEqual(t, a.Likes, int64(10))
		assert.LessOrEqual(t, a.Likes, int64(1000))
		assert.GreaterOrEqual(t, a.Views, int64(100))
		assert.LessOrEqual(t, a.Views, int64(5000))

		if a.Category == models.CategoryLiterature {
			assert.NotEmpty(t, a.ScriptType)
		} else {
			assert.Empty(t, a.ScriptType)
		}

		if a.HasSaleMode(models.SaleModeLicense) {
			assert.NotEmpty(t, a.LicenseTypes)
		} else {
			assert.Empty(t, a.LicenseTypes)
		}

		if a.HasSaleMode(models.SaleModeAuction) {
			assert.Contains(t, []string{"1", "3", "7", "14"}, a.AuctionSettings.Duration)
			if a.AuctionSettings.ReservePrice != nil {
				assert.GreaterOrEqual(t, a.AuctionSettings.ReservePrice.Cmp(a.AuctionSettings.StartPrice), 0)
			}
		} else {
			assert.Equal(t, "7", a.AuctionSettings.Duration)
		}

		if !a.HasSaleMode(models.SaleModeLease) {
			assert.Equal(t, "1", a.LeaseSettings.Duration)
		}
	}
}

func TestGeneratedCatalogRoundTripsThroughSnapshot(t *testing.T) {
	assets := GenerateCatalog(1, 10)

	data, err := EncodeSnapshot(assets)
	require.NoError(t, err)
	decoded, err := DecodeSnapshot(data)
	require.NoError(t, err)

	if diff := cmp.Diff(assets, decoded, priceComparer); diff != "" {
		t.Fatalf("snapshot round trip changed the catalog (-want +got):\n%s", diff)
	}
}
