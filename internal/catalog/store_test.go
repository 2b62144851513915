// internal/catalog/store_test.go
package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/heyi-backend/internal/models"
	"github.com/javajoker/heyi-backend/internal/storage"
)

func seedCatalog() []models.Asset {
	return []models.Asset{
		fixture(1, "A", "Ann", "1,000", 100, 5),
		fixture(2, "B", "Bob", "500", 50, 50),
	}
}

func TestOpenEmptySlotUsesInitialCatalog(t *testing.T) {
	slot := storage.NewMemorySlot()

	store := Open(context.Background(), slot, seedCatalog)

	assert.Equal(t, []int{1, 2}, ids(store.All()))
	assert.Equal(t, 0, slot.Puts(), "opening must not write")
}

func TestOpenCorruptSnapshotFallsBack(t *testing.T) {
	for _, raw := range []string{"", "not json", `{"x": {}}`, `[{"id": "one"}]`} {
		slot := storage.NewMemorySlotWith([]byte(raw))

		store := Open(context.Background(), slot, seedCatalog)

		assert.Equal(t, []int{1, 2}, ids(store.All()), "snapshot %q", raw)
	}
}

func TestOpenSnapshotWithoutValidAssetsFallsBack(t *testing.T) {
	for _, raw := range []string{`[]`, `{}`, `[{"id": 7, "category": "sculpture"}, {"id": 0, "category": "image"}]`} {
		store := Open(context.Background(), storage.NewMemorySlotWith([]byte(raw)), seedCatalog)

		assert.Equal(t, []int{1, 2}, ids(store.All()), "snapshot %s", raw)
	}
}

func TestOpenKeepsValidAssetsOfPartlyInvalidSnapshot(t *testing.T) {
	raw := `[{"id": 7, "category": "sculpture"}, {"id": 8, "title": "Ok", "category": "image"}]`

	store := Open(context.Background(), storage.NewMemorySlotWith([]byte(raw)), seedCatalog)

	assert.Equal(t, []int{8}, ids(store.All()))
}

func TestUpsertedPricesSurviveReopen(t *testing.T) {
	ctx := context.Background()
	inputs := []string{"0.005", "1.239", "12345678901234567", "99999999999999999999", "12,500.50"}

	slot := storage.NewMemorySlot()
	store := NewStore(slot, seedCatalog())
	for i, in := range inputs {
		price := models.ParsePrice(in)
		_, err := store.Upsert(ctx, models.PatchFromAsset(fixture(10+i, "P", "Cy", price.String(), 0, 0)))
		require.NoError(t, err)
	}

	reopened := Open(ctx, slot, func() []models.Asset {
		t.Fatal("a valid snapshot must not be regenerated")
		return nil
	})

	for i, in := range inputs {
		before, ok := store.Get(10 + i)
		require.True(t, ok)
		after, ok := reopened.Get(10 + i)
		require.True(t, ok)

		assert.True(t, after.Price.Equal(before.Price), "%s: memory %s, reloaded %s", in, before.Price, after.Price)
		assert.True(t, after.Price.Equal(models.ParsePrice(in)), in)
	}

	assert.Equal(t, ids(PriceRanking(store.All())), ids(PriceRanking(reopened.All())))
	assert.Empty(t, cmp.Diff(RevenueRanking(store.All()), RevenueRanking(reopened.All()), priceComparer))
}

type brokenSlot struct{ storage.MemorySlot }

func (b *brokenSlot) Get(context.Context) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func TestOpenUnavailableSlotFallsBack(t *testing.T) {
	store := Open(context.Background(), &brokenSlot{}, seedCatalog)
	assert.Equal(t, 2, store.Len())
}

func TestOpenLoadsSnapshot(t *testing.T) {
	data, err := EncodeSnapshot([]models.Asset{fixture(9, "Z", "Zed", "42", 1, 1)})
	require.NoError(t, err)

	store := Open(context.Background(), storage.NewMemorySlotWith(data), seedCatalog)

	a, ok := store.Get(9)
	require.True(t, ok)
	assert.Equal(t, "Z", a.Title)
	assert.Equal(t, "42", a.Price.String())
	_, ok = store.Get(1)
	assert.False(t, ok)
}

func TestDecodeSnapshotKeyedObject(t *testing.T) {
	raw := `{
		"10": {"title": "Ten", "author": "Ann", "category": "music", "price": "1,200", "sales_modes": ["lease"], "is_listed": true},
		"2":  {"id": 2, "title": "Two", "author": "Bob", "category": "image", "price": 300, "sales_modes": ["direct"]}
	}`

	assets, err := DecodeSnapshot([]byte(raw))
	require.NoError(t, err)
	require.Len(t, assets, 2)

	assert.Equal(t, []int{2, 10}, ids(assets))
	assert.Equal(t, "1,200", assets[1].Price.String())
	assert.Equal(t, "300", assets[0].Price.String())
}

func TestGetMissing(t *testing.T) {
	store := NewStore(storage.NewMemorySlot(), seedCatalog())

	_, ok := store.Get(404)
	assert.False(t, ok)
}

func TestUpsertMergesOneLevel(t *testing.T) {
	slot := storage.NewMemorySlot()
	store := NewStore(slot, seedCatalog())
	ctx := context.Background()

	title := "A prime"
	lease := models.LeaseSettings{Price: models.PriceFromInt(80), Duration: "6"}
	stored, err := store.Upsert(ctx, models.AssetPatch{ID: 1, Title: &title, LeaseSettings: &lease})
	require.NoError(t, err)

	assert.Equal(t, "A prime", stored.Title)
	assert.Equal(t, "Ann", stored.Author, "untouched fields survive")
	assert.Equal(t, "6", stored.LeaseSettings.Duration)
	assert.Equal(t, "80", stored.LeaseSettings.Price.String())

	got, ok := store.Get(1)
	require.True(t, ok)
	assert.Equal(t, stored.Title, got.Title)
	assert.Equal(t, 1, slot.Puts())

	// the whole catalog is persisted
	data, err := slot.Get(ctx)
	require.NoError(t, err)
	persisted, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids(persisted))
	assert.Equal(t, "A prime", persisted[0].Title)
}

func TestUpsertReplacesNestedSettingsWholesale(t *testing.T) {
	base := fixture(1, "A", "Ann", "100", 0, 0)
	reserve := models.PriceFromInt(150)
	base.AuctionSettings = models.AuctionSettings{StartPrice: models.PriceFromInt(90), ReservePrice: &reserve, Duration: "3"}
	store := NewStore(storage.NewMemorySlot(), []models.Asset{base})

	stored, err := store.Upsert(context.Background(), models.AssetPatch{
		ID:              1,
		AuctionSettings: &models.AuctionSettings{Duration: "14"},
	})
	require.NoError(t, err)

	assert.Equal(t, "14", stored.AuctionSettings.Duration)
	assert.Nil(t, stored.AuctionSettings.ReservePrice)
	assert.True(t, stored.AuctionSettings.StartPrice.IsZero())
}

func TestUpsertIsIdempotent(t *testing.T) {
	slot := storage.NewMemorySlot()
	store := NewStore(slot, seedCatalog())
	ctx := context.Background()

	likes := int64(77)
	patch := models.AssetPatch{ID: 2, Likes: &likes}

	_, err := store.Upsert(ctx, patch)
	require.NoError(t, err)
	first, _ := slot.Get(ctx)

	_, err = store.Upsert(ctx, patch)
	require.NoError(t, err)
	second, _ := slot.Get(ctx)

	assert.JSONEq(t, string(first), string(second))
}

func TestUpsertInsertsNewAssetAtEnd(t *testing.T) {
	store := NewStore(storage.NewMemorySlot(), seedCatalog())

	created, err := store.Upsert(context.Background(), models.PatchFromAsset(fixture(50, "New", "Cy", "10", 0, 0)))
	require.NoError(t, err)

	assert.Equal(t, 50, created.ID)
	assert.Equal(t, []int{1, 2, 50}, ids(store.All()))
}

func TestUpsertRejectsInvalidAsset(t *testing.T) {
	slot := storage.NewMemorySlot()
	store := NewStore(slot, seedCatalog())
	ctx := context.Background()

	empty := []models.SaleMode{}
	_, err := store.Upsert(ctx, models.AssetPatch{ID: 1, SalesModes: &empty})
	assert.ErrorIs(t, err, ErrInvalidAsset)

	title := "orphan"
	_, err = store.Upsert(ctx, models.AssetPatch{ID: 99, Title: &title})
	assert.ErrorIs(t, err, ErrInvalidAsset, "a new asset needs a category")

	_, err = store.Upsert(ctx, models.AssetPatch{ID: 0})
	assert.ErrorIs(t, err, ErrInvalidAsset)

	assert.Equal(t, 0, slot.Puts())
}

func TestUpsertPersistFailureKeepsMemory(t *testing.T) {
	slot := storage.NewMemorySlot()
	store := NewStore(slot, seedCatalog())
	slot.FailPuts(errors.New("disk full"))

	title := "lost"
	_, err := store.Upsert(context.Background(), models.AssetPatch{ID: 1, Title: &title})
	require.Error(t, err)

	got, _ := store.Get(1)
	assert.Equal(t, "A", got.Title)
}

func TestGetReturnsCopies(t *testing.T) {
	store := NewStore(storage.NewMemorySlot(), seedCatalog())

	a, _ := store.Get(1)
	a.SalesModes[0] = models.SaleModeLease
	a.Title = "mutated"

	again, _ := store.Get(1)
	assert.Equal(t, "A", again.Title)
	assert.Equal(t, models.SaleModeDirect, again.SalesModes[0])
}

func TestUpdate(t *testing.T) {
	slot := storage.NewMemorySlot()
	store := NewStore(slot, seedCatalog())
	ctx := context.Background()

	got, err := store.Update(ctx, 2, func(a *models.Asset) error {
		a.Likes++
		a.ID = 500
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(51), got.Likes)
	assert.Equal(t, 2, got.ID, "the id cannot be changed")

	_, err = store.Update(ctx, 404, func(*models.Asset) error { return nil })
	assert.ErrorIs(t, err, ErrAssetNotFound)

	veto := errors.New("veto")
	_, err = store.Update(ctx, 1, func(*models.Asset) error { return veto })
	assert.ErrorIs(t, err, veto)

	assert.Equal(t, 1, slot.Puts())
	require.NoError(t, store.Persist(ctx))
	assert.Equal(t, 2, slot.Puts())
}
