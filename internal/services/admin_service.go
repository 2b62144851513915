// internal/services/admin_service.go
package services

import (
	"context"

	"github.com/javajoker/heyi-backend/internal/catalog"
	"github.com/javajoker/heyi-backend/internal/models"
)

type AdminService struct {
	store               *catalog.Store
	licenseService      *LicenseService
	notificationService *NotificationService
}

type AdminDashboardStats struct {
	TotalAssets         int                     `json:"total_assets"`
	ListedAssets        int                     `json:"listed_assets"`
	UnlistedAssets      int                     `json:"unlisted_assets"`
	AssetsByCategory    map[models.Category]int `json:"assets_by_category"`
	AssetsBySaleMode    map[models.SaleMode]int `json:"assets_by_sale_mode"`
	AssetsByChain       map[models.Chain]int    `json:"assets_by_chain"`
	FullRightsTransfers int                     `json:"full_rights_transfers"`
	TotalValue          models.Price            `json:"total_value"`
	ListedValue         models.Price            `json:"listed_value"`
	TotalViews          int64                   `json:"total_views"`
	TotalLikes          int64                   `json:"total_likes"`
	AuthorCount         int                     `json:"author_count"`
	LicensesIssued      int                     `json:"licenses_issued"`
	LicenseRevenue      models.Price            `json:"license_revenue"`
	UnreadNotifications int                     `json:"unread_notifications"`
}

func NewAdminService(store *catalog.Store, licenseService *LicenseService, notificationService *NotificationService) *AdminService {
	return &AdminService{
		store:               store,
		licenseService:      licenseService,
		notificationService: notificationService,
	}
}

func (s *AdminService) GetDashboardStats(ctx context.Context) (*AdminDashboardStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	assets := s.store.All()
	stats := &AdminDashboardStats{
		TotalAssets:      len(assets),
		AssetsByCategory: make(map[models.Category]int),
		AssetsBySaleMode: make(map[models.SaleMode]int),
		AssetsByChain:    make(map[models.Chain]int),
	}

	for _, a := range assets {
		if a.IsListed {
			stats.ListedAssets++
			stats.ListedValue = stats.ListedValue.Add(a.Price)
		} else {
			stats.UnlistedAssets++
		}
		if a.IsFullCopyrightTransfer {
			stats.FullRightsTransfers++
		}
		stats.AssetsByCategory[a.Category]++
		for _, mode := range a.SalesModes {
			stats.AssetsBySaleMode[mode]++
		}
		if a.Chain != "" {
			stats.AssetsByChain[a.Chain]++
		}
		stats.TotalValue = stats.TotalValue.Add(a.Price)
		stats.TotalViews += a.Views
		stats.TotalLikes += a.Likes
	}

	stats.AuthorCount = len(catalog.AuthorAggregates(assets))

	for _, r := range s.licenseService.Receipts() {
		stats.LicensesIssued++
		stats.LicenseRevenue = stats.LicenseRevenue.Add(r.Amount)
	}
	stats.UnreadNotifications = s.notificationService.UnreadCount()

	return stats, nil
}
