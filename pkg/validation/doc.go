// Package validation implements the rule engine that checks dataset
// schema files: a document loader for JSON and YAML, an ordered set of
// pluggable rule validators identified by stable codes (PSX_VAL1
// structural, PSX_VAL2 unique fqn, PSX_VAL3/PSX_VAL4 dependency
// checks), and an engine that runs a configured selection of rules over
// a batch of files and assembles one Result per file.
//
// Errors never escape the engine as Go errors; every finding becomes an
// Error value inside the per-file Result, addressed by a JSONPath-style
// location. The engine itself only fails on rule-selection
// configuration mistakes, before any file is touched.
package validation
