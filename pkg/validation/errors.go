package validation

import (
	"fmt"
	"strings"
)

// Kind is the machine-readable category of a validation finding.
type Kind string

const (
	// Loader findings, all located at the document root.
	KindNotFound          Kind = "not_found"
	KindUnsupportedFormat Kind = "unsupported_format"
	KindParseError        Kind = "parse_error"

	// Structural findings, one per independent violation.
	KindMissing               Kind = "missing"
	KindTypeError             Kind = "type_error"
	KindConstraintViolation   Kind = "constraint_violation"
	KindDiscriminatorMismatch Kind = "discriminator_mismatch"
	KindExtraField            Kind = "extra_field"

	// Uniqueness findings.
	KindMissingFQN   Kind = "missing_fqn"
	KindDuplicateFQN Kind = "duplicate_fqn"

	// Dependency findings.
	KindInvalidType        Kind = "invalid_type"
	KindDependencyNotFound Kind = "dependent_file_not_found"
	KindCircularDependency Kind = "circular_dependency_detected"
)

// Path is a root-relative field path: a sequence of string keys and
// integer indices. The zero value addresses the document root.
type Path []any

// Child returns a new path extended with a mapping key.
func (p Path) Child(name string) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = name
	return out
}

// Index returns a new path extended with a sequence index.
func (p Path) Index(i int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = i
	return out
}

// String renders the path in JSONPath style: "$" for the root, ".key"
// for mapping keys, "[n]" for sequence indices, concatenated
// left-to-right (e.g. "$.columns[0].name"). The rendering is consumed
// by CI log tooling and must stay byte-stable.
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString("$")
	for _, item := range p {
		switch v := item.(type) {
		case int:
			fmt.Fprintf(&sb, "[%d]", v)
		case string:
			sb.WriteString(".")
			sb.WriteString(v)
		}
	}
	return sb.String()
}

// Detail carries the raw code and message of the underlying structural
// check that produced an Error. It is nil for findings that do not come
// from the structural rule.
type Detail struct {
	Type string `json:"type"`
	Msg  string `json:"msg"`
}

// Error is a single validation finding. It is a value object: two
// findings with equal fields are the same finding.
//
// The JSON field names, including "pydantic_error" for Detail, are part
// of the published output contract and must not change.
type Error struct {
	Type    Kind    `json:"type"`
	ErrorAt string  `json:"error_at"`
	Message string  `json:"message"`
	Detail  *Detail `json:"pydantic_error"`
}

// ErrorList accumulates findings in detection order.
type ErrorList struct {
	Errors []Error
}

// Add appends a finding without detail.
func (l *ErrorList) Add(kind Kind, at Path, message string) {
	l.Errors = append(l.Errors, Error{
		Type:    kind,
		ErrorAt: at.String(),
		Message: message,
	})
}

// AddDetailed appends a finding carrying the underlying check code.
func (l *ErrorList) AddDetailed(kind Kind, at Path, message, checkCode string) {
	l.Errors = append(l.Errors, Error{
		Type:    kind,
		ErrorAt: at.String(),
		Message: message,
		Detail:  &Detail{Type: checkCode, Msg: message},
	})
}

// HasErrors reports whether any finding was recorded.
func (l *ErrorList) HasErrors() bool {
	return len(l.Errors) > 0
}
