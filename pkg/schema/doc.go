// Package schema defines the structural type model for dataset schema
// documents: the dataset root object, the closed set of column type
// variants discriminated by the "type" field, and the per-level field
// tables the structural validator checks documents against.
//
// The model is closed-world: every object level carries an explicit
// field allowlist and anything outside it is a violation. The field
// tables are data, not reflection: adding a variant or an attribute
// means extending the tables in fields.go.
package schema
