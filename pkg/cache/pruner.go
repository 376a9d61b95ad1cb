package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// PrunerConfig controls retention enforcement on the cache.
type PrunerConfig struct {
	// RetentionDays is how long unused entries are kept.
	// 0 means keep forever.
	RetentionDays int

	// MaxEntries caps the number of cached entries. 0 means unlimited.
	MaxEntries int64
}

// DefaultPrunerConfig returns the default retention configuration.
func DefaultPrunerConfig() *PrunerConfig {
	return &PrunerConfig{
		RetentionDays: 90,
		MaxEntries:    0,
	}
}

// Pruner enforces retention on cached results.
type Pruner struct {
	store  *Store
	config *PrunerConfig
	logger *slog.Logger
}

// NewPruner creates a pruner over the given store.
func NewPruner(store *Store, config *PrunerConfig) *Pruner {
	if config == nil {
		config = DefaultPrunerConfig()
	}
	return &Pruner{
		store:  store,
		config: config,
		logger: slog.Default().With("component", "cache.pruner"),
	}
}

// Prune deletes entries in two phases: first those unused for longer
// than the retention period, then the least recently used entries
// beyond MaxEntries. Returns the total number of entries deleted.
func (p *Pruner) Prune(ctx context.Context) (int64, error) {
	var total int64

	if p.config.RetentionDays > 0 {
		deleted, err := p.pruneByAge(ctx)
		if err != nil {
			return total, fmt.Errorf("prune by age failed: %w", err)
		}
		total += deleted
	}

	if p.config.MaxEntries > 0 {
		deleted, err := p.pruneByCount(ctx)
		if err != nil {
			return total, fmt.Errorf("prune by count failed: %w", err)
		}
		total += deleted
	}

	if total > 0 {
		p.logger.Info("cache pruned", "deleted", total)
	}
	return total, nil
}

func (p *Pruner) pruneByAge(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -p.config.RetentionDays)
	res, err := p.store.db.ExecContext(ctx,
		"DELETE FROM results WHERE last_used_at < ?", cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (p *Pruner) pruneByCount(ctx context.Context) (int64, error) {
	res, err := p.store.db.ExecContext(ctx, `
		DELETE FROM results WHERE rowid IN (
			SELECT rowid FROM results
			ORDER BY last_used_at DESC
			LIMIT -1 OFFSET ?
		)`, p.config.MaxEntries)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
