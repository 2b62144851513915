// internal/router/router.go
package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/javajoker/heyi-backend/internal/catalog"
	"github.com/javajoker/heyi-backend/internal/config"
	"github.com/javajoker/heyi-backend/internal/handlers"
	"github.com/javajoker/heyi-backend/internal/middleware"
	"github.com/javajoker/heyi-backend/internal/services"
)

// Initialize wires services and routes over store. The rate limiter's
// janitor runs until ctx is cancelled.
func Initialize(ctx context.Context, cfg *config.Config, store *catalog.Store) *gin.Engine {
	latency := time.Duration(cfg.Catalog.LatencyMS) * time.Millisecond

	// Initialize services
	notificationService := services.NewNotificationService()
	notificationService.Seed()

	catalogService := services.NewCatalogService(store, latency)
	rankingService := services.NewRankingService(store, cfg.Catalog.Currency)
	licenseService := services.NewLicenseService(store, notificationService, latency)
	profileService := services.NewProfileService(store)
	adminService := services.NewAdminService(store, licenseService, notificationService)

	// Initialize handlers
	assetHandler := handlers.NewAssetHandler(catalogService)
	rankingHandler := handlers.NewRankingHandler(rankingService)
	licenseHandler := handlers.NewLicenseHandler(licenseService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	profileHandler := handlers.NewProfileHandler(profileService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter := middleware.NewRateLimiter(ctx, rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		r.Use(limiter.Middleware())
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
			"assets":  store.Len(),
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		assets := v1.Group("/assets")
		{
			assets.GET("", assetHandler.GetAssets)
			assets.GET("/:id", assetHandler.GetAsset)
			assets.PUT("/:id", assetHandler.UpdateAsset)
			assets.PUT("/:id/listing", assetHandler.SetListing)
			assets.POST("/:id/like", assetHandler.LikeAsset)
			assets.DELETE("/:id/like", assetHandler.UnlikeAsset)
			assets.POST("/:id/view", assetHandler.RecordView)

			// Licensing
			assets.GET("/:id/license/quote", licenseHandler.QuoteLicense)
			assets.POST("/:id/license/checkout", licenseHandler.CheckoutLicense)
		}

		rankings := v1.Group("/rankings")
		{
			rankings.GET("", rankingHandler.GetRankings)
			rankings.GET("/:board", rankingHandler.GetBoard)
		}

		v1.GET("/creators/:name", profileHandler.GetCreator)

		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.GetNotifications)
			notifications.PUT("/read-all", notificationHandler.MarkAllRead)
			notifications.PUT("/:id/read", notificationHandler.MarkRead)
			notifications.DELETE("", notificationHandler.ClearNotifications)
		}

		v1.GET("/categories", assetHandler.GetCategories)

		admin := v1.Group("/admin")
		{
			admin.GET("/dashboard", adminHandler.GetDashboardStats)
		}
	}

	return r
}
