// Package cache persists structural validation findings keyed by file
// content hash, so re-validating unchanged files skips the structural
// walk entirely. The backing store is a single SQLite database under
// the user cache directory.
//
// Only content-pure findings are cached. Batch-dependent rules
// (uniqueness, dependencies) are computed fresh on every run, which is
// what keeps cached entries valid across runs with different file
// orderings.
package cache
