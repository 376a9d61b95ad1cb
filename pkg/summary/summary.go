// Package summary aggregates per-file validation outcomes for one run.
package summary

import (
	"time"

	"github.com/google/uuid"
)

// Summary counts outcomes across one validation run. It is not safe
// for concurrent use; the engine feeds it sequentially.
type Summary struct {
	RunID     string
	StartedAt time.Time

	ValidatedFileCount int
	ValidFileCount     int
	InvalidFileCount   int
	ErrorFiles         []string
}

// New starts a summary for a fresh run with a unique run id.
func New() *Summary {
	return &Summary{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}
}

// AddRecord folds one file's outcome into the counters.
func (s *Summary) AddRecord(valid bool, filePath string) {
	s.ValidatedFileCount++
	if valid {
		s.ValidFileCount++
		return
	}
	s.InvalidFileCount++
	s.ErrorFiles = append(s.ErrorFiles, filePath)
}

// Failed reports whether any file was invalid.
func (s *Summary) Failed() bool {
	return s.InvalidFileCount > 0
}

// Duration is the wall-clock time since the run started.
func (s *Summary) Duration() time.Duration {
	return time.Since(s.StartedAt)
}
