// cmd/heyictl/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/javajoker/heyi-backend/internal/catalog"
	"github.com/javajoker/heyi-backend/internal/config"
	"github.com/javajoker/heyi-backend/internal/logging"
	"github.com/javajoker/heyi-backend/internal/models"
	"github.com/javajoker/heyi-backend/internal/storage"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "heyictl",
		Short: "Operate the heyi asset catalog",
		Long: `heyictl seeds, ranks and filters the asset catalog held in the
storage backend selected by STORAGE_BACKEND (memory, file, postgres, redis, s3).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if verbose {
				cfg.Log.Level = "debug"
			}
			logging.SetupWriter(cfg.Log, cmd.ErrOrStderr())
			cmd.SetContext(withConfig(cmd.Context(), cfg))
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newSeedCmd())
	root.AddCommand(newRankCmd())
	root.AddCommand(newFilterCmd())
	return root
}

type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, configKey{}, cfg)
}

func configFrom(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return nil
}

// openStore opens the configured slot and loads the catalog from it,
// falling back to the generated catalog. The caller closes the slot.
func openStore(cmd *cobra.Command) (*catalog.Store, storage.Slot, error) {
	cfg := configFrom(cmd)
	if cfg == nil {
		return nil, nil, fmt.Errorf("configuration not loaded")
	}

	slot, err := storage.Open(cmd.Context(), cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
	}

	store := catalog.Open(cmd.Context(), slot, func() []models.Asset {
		return catalog.GenerateCatalog(uint64(cfg.Catalog.Seed), cfg.Catalog.Size)
	})
	return store, slot, nil
}

func closeSlot(slot storage.Slot) {
	if err := slot.Close(); err != nil {
		logrus.WithError(err).Warn("Failed to close storage")
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
