package cache

// SchemaVersion is the current cache database schema version.
const SchemaVersion = 1

// Schema contains the SQL statements to create the cache database.
const Schema = `
-- Cached structural findings, keyed by file content and model config.
CREATE TABLE IF NOT EXISTS results (
    content_hash TEXT NOT NULL,
    model_hash TEXT NOT NULL,

    -- JSON array of findings; empty array for valid content.
    errors TEXT NOT NULL,

    -- Raw fqn declared by the content, '' when absent.
    fqn TEXT NOT NULL DEFAULT '',

    created_at TIMESTAMP NOT NULL,
    last_used_at TIMESTAMP NOT NULL,
    run_id TEXT NOT NULL,

    PRIMARY KEY (content_hash, model_hash)
);

CREATE INDEX IF NOT EXISTS idx_results_last_used ON results(last_used_at);

-- One row per validation run, for cache stats.
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    started_at TIMESTAMP NOT NULL,
    validated INTEGER NOT NULL,
    invalid INTEGER NOT NULL
);
`
