package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gauthamchettiar/schemax/pkg/cache"
	"github.com/gauthamchettiar/schemax/pkg/cli"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the validation result cache",
	Long: `Manage the persistent validation result cache.

The cache stores structural findings keyed by file content, so
re-validating unchanged files is a database lookup instead of a full
parse. Cross-file rules are never cached.`,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCacheStore()
		if err != nil {
			return err
		}
		defer store.Close()

		stats, err := store.Stats()
		if err != nil {
			return cli.NewCommandError("cache stats", err)
		}

		fmt.Printf("Path:             %s\n", stats.Path)
		fmt.Printf("Entries:          %d\n", stats.Entries)
		fmt.Printf("Distinct schemas: %d\n", stats.DistinctSchemas)
		fmt.Printf("Recorded runs:    %d\n", stats.Runs)
		fmt.Printf("Size:             %d bytes\n", stats.SizeBytes)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all cached results",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCacheStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Clear(); err != nil {
			return cli.NewCommandError("cache clear", err)
		}
		fmt.Println("Cache cleared.")
		return nil
	},
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete stale cached results",
	Long: `Delete cached results that have not been used within the retention
period, then trim the least recently used entries beyond the configured
maximum.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		setupLogging(cfg)

		store, err := cache.Open(&cache.Config{Path: cfg.Cache.Path})
		if err != nil {
			return cli.NewCommandError("cache prune", err)
		}
		defer store.Close()

		pruner := cache.NewPruner(store, &cache.PrunerConfig{
			RetentionDays: cfg.Cache.RetentionDays,
			MaxEntries:    cfg.Cache.MaxEntries,
		})
		deleted, err := pruner.Prune(context.Background())
		if err != nil {
			return cli.NewCommandError("cache prune", err)
		}
		fmt.Printf("Pruned %d entries.\n", deleted)
		return nil
	},
}

func openCacheStore() (*cache.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	setupLogging(cfg)

	store, err := cache.Open(&cache.Config{Path: cfg.Cache.Path})
	if err != nil {
		return nil, cli.NewCommandError("cache", err)
	}
	return store, nil
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cachePruneCmd)
}
