// internal/services/catalog_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/heyi-backend/internal/catalog"
	"github.com/javajoker/heyi-backend/internal/logging"
	"github.com/javajoker/heyi-backend/internal/models"
	"github.com/javajoker/heyi-backend/internal/utils"
)

type CatalogService struct {
	store   *catalog.Store
	latency time.Duration
}

type AssetSearchParams struct {
	utils.PaginationParams
	Filter catalog.Filter
}

func NewCatalogService(store *catalog.Store, latency time.Duration) *CatalogService {
	return &CatalogService{store: store, latency: latency}
}

// Search filters, sorts and paginates the catalog.
func (s *CatalogService) Search(ctx context.Context, params AssetSearchParams) (utils.PaginationResult, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return utils.PaginationResult{}, err
	}

	if params.Search != "" && params.Filter.Search == "" {
		params.Filter.Search = params.Search
	}

	matched := params.Filter.Apply(s.store.All())
	sorted := catalog.Sort(matched, catalog.SortOrder(params.Sort))

	return utils.Paginate(sorted, params.PaginationParams), nil
}

func (s *CatalogService) GetAsset(ctx context.Context, id int) (*models.Asset, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	asset, ok := s.store.Get(id)
	if !ok {
		return nil, catalog.ErrAssetNotFound
	}
	return &asset, nil
}

// AllAssets returns the catalog in store order.
func (s *CatalogService) AllAssets() []models.Asset {
	return s.store.All()
}

// UpdateAsset upserts patch under id. Absent assets are created.
func (s *CatalogService) UpdateAsset(ctx context.Context, id int, patch *models.AssetPatch) (*models.Asset, error) {
	patch.ID = id
	if err := utils.ValidateStruct(patch); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	asset, err := s.store.Upsert(ctx, *patch)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).WithField("asset_id", id).Info("Asset updated")
	return &asset, nil
}

// SetListed toggles whether an existing asset is on sale.
func (s *CatalogService) SetListed(ctx context.Context, id int, listed bool) (*models.Asset, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	asset, err := s.store.Update(ctx, id, func(a *models.Asset) error {
		a.IsListed = listed
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).WithFields(logrus.Fields{
		"asset_id": id,
		"listed":   listed,
	}).Info("Asset listing changed")
	return &asset, nil
}

// Like adds delta to the like counter. The counter never drops below zero.
func (s *CatalogService) Like(ctx context.Context, id int, delta int64) (*models.Asset, error) {
	asset, err := s.store.Update(ctx, id, func(a *models.Asset) error {
		a.Likes = max(a.Likes+delta, 0)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (s *CatalogService) RecordView(ctx context.Context, id int) (*models.Asset, error) {
	asset, err := s.store.Update(ctx, id, func(a *models.Asset) error {
		a.Views++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// Categories counts assets per category in enum order.
func (s *CatalogService) Categories() []CategoryCount {
	counts := make(map[models.Category]int)
	for _, a := range s.store.All() {
		counts[a.Category]++
	}

	out := make([]CategoryCount, 0, len(models.Categories))
	for _, c := range models.Categories {
		out = append(out, CategoryCount{Category: c, Count: counts[c]})
	}
	return out
}

type CategoryCount struct {
	Category models.Category `json:"category"`
	Count    int             `json:"count"`
}

// simulateLatency waits d, returning early with ctx's error.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
