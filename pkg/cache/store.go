package cache

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	gojson "github.com/goccy/go-json"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/gauthamchettiar/schemax/pkg/validation"
)

// Config contains configuration for the cache store.
type Config struct {
	// Path is the database file path. Empty means DefaultPath().
	Path string

	// DisableRead makes every lookup a miss while still recording new
	// findings. DisableWrite is the inverse.
	DisableRead  bool
	DisableWrite bool

	// BusyTimeout is how long to wait on a locked database.
	// Default: 5 seconds.
	BusyTimeout time.Duration

	// RunID tags entries written during this run.
	RunID string
}

// DefaultPath returns the cache database location under the user cache
// directory.
func DefaultPath() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user cache dir: %w", err)
	}
	return filepath.Join(base, "schemax", "results.db"), nil
}

// Store is the SQLite-backed result cache. It implements
// validation.ResultCache.
type Store struct {
	db     *sql.DB
	config *Config
	logger *slog.Logger
}

// Open opens (and if needed creates) the cache database.
func Open(config *Config) (*Store, error) {
	if config == nil {
		config = &Config{}
	}
	if config.Path == "" {
		path, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		config.Path = path
	}
	if config.BusyTimeout <= 0 {
		config.BusyTimeout = 5 * time.Second
	}

	if err := os.MkdirAll(filepath.Dir(config.Path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache db: %w", err)
	}

	s := &Store{
		db:     db,
		config: config,
		logger: slog.Default().With("component", "cache.store"),
	}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initialize() error {
	if _, err := s.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d;", s.config.BusyTimeout.Milliseconds())); err != nil {
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create cache schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the cached findings for identical content under the same
// model fingerprint, refreshing the entry's last-used timestamp.
func (s *Store) Get(content []byte, modelHash string) ([]validation.Error, bool) {
	if s.config.DisableRead {
		return nil, false
	}

	var raw string
	err := s.db.QueryRow(
		"SELECT errors FROM results WHERE content_hash = ? AND model_hash = ?",
		HashContent(content), HashString(modelHash),
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		s.logger.Warn("cache lookup failed", "error", err)
		return nil, false
	}

	var errs []validation.Error
	if err := gojson.Unmarshal([]byte(raw), &errs); err != nil {
		s.logger.Warn("cache entry corrupt, ignoring", "error", err)
		return nil, false
	}

	if _, err := s.db.Exec(
		"UPDATE results SET last_used_at = ? WHERE content_hash = ? AND model_hash = ?",
		time.Now().UTC(), HashContent(content), HashString(modelHash),
	); err != nil {
		s.logger.Warn("cache touch failed", "error", err)
	}
	if errs == nil {
		errs = []validation.Error{}
	}
	return errs, true
}

// Put stores findings for the given content, replacing any previous
// entry for the same key.
func (s *Store) Put(content []byte, modelHash string, errs []validation.Error, fqn string) error {
	if s.config.DisableWrite {
		return nil
	}
	if errs == nil {
		errs = []validation.Error{}
	}
	raw, err := gojson.Marshal(errs)
	if err != nil {
		return fmt.Errorf("failed to encode findings: %w", err)
	}

	now := time.Now().UTC()
	_, err = s.db.Exec(`
		INSERT INTO results (content_hash, model_hash, errors, fqn, created_at, last_used_at, run_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(content_hash, model_hash) DO UPDATE SET
			errors = excluded.errors,
			fqn = excluded.fqn,
			last_used_at = excluded.last_used_at,
			run_id = excluded.run_id`,
		HashContent(content), HashString(modelHash), string(raw), fqn, now, now, s.config.RunID,
	)
	if err != nil {
		return fmt.Errorf("failed to store findings: %w", err)
	}
	return nil
}

// RecordRun stores one row of run bookkeeping for cache stats.
func (s *Store) RecordRun(runID string, startedAt time.Time, validated, invalid int) error {
	if s.config.DisableWrite {
		return nil
	}
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO runs (id, started_at, validated, invalid) VALUES (?, ?, ?, ?)",
		runID, startedAt.UTC(), validated, invalid,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// Clear drops every cached entry and run record.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("failed to clear runs: %w", err)
	}
	return nil
}

// Stats summarizes cache contents.
type Stats struct {
	Entries         int64
	DistinctSchemas int64
	Runs            int64
	SizeBytes       int64
	Path            string
}

// Stats reports entry counts and the database size on disk.
func (s *Store) Stats() (Stats, error) {
	st := Stats{Path: s.config.Path}

	if err := s.db.QueryRow("SELECT COUNT(*) FROM results").Scan(&st.Entries); err != nil {
		return st, fmt.Errorf("failed to count entries: %w", err)
	}
	if err := s.db.QueryRow("SELECT COUNT(DISTINCT fqn) FROM results WHERE fqn != ''").Scan(&st.DistinctSchemas); err != nil {
		return st, fmt.Errorf("failed to count schemas: %w", err)
	}
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&st.Runs); err != nil {
		return st, fmt.Errorf("failed to count runs: %w", err)
	}

	if info, err := os.Stat(s.config.Path); err == nil {
		st.SizeBytes = info.Size()
	}
	return st, nil
}
