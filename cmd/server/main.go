// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/heyi-backend/internal/catalog"
	"github.com/javajoker/heyi-backend/internal/config"
	"github.com/javajoker/heyi-backend/internal/i18n"
	"github.com/javajoker/heyi-backend/internal/logging"
	"github.com/javajoker/heyi-backend/internal/models"
	"github.com/javajoker/heyi-backend/internal/router"
	"github.com/javajoker/heyi-backend/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	logging.Setup(cfg.Log)

	// Initialize i18n
	if err := i18n.Initialize(cfg.I18n.DefaultLocale); err != nil {
		logrus.WithError(err).Fatal("Failed to initialize i18n")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Open the catalog snapshot slot
	slot, err := storage.Open(ctx, cfg)
	if err != nil {
		logrus.WithError(err).WithField("backend", cfg.Storage.Backend).Fatal("Failed to open storage")
	}
	defer func() {
		if err := slot.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close storage")
		}
	}()

	store := catalog.Open(ctx, slot, func() []models.Asset {
		return catalog.GenerateCatalog(uint64(cfg.Catalog.Seed), cfg.Catalog.Size)
	})

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r := router.Initialize(ctx, cfg, store)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.WithFields(logrus.Fields{
			"port":    cfg.Server.Port,
			"backend": cfg.Storage.Backend,
			"assets":  store.Len(),
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	<-ctx.Done()
	logrus.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
		return
	}

	logrus.Info("Server exited")
}
