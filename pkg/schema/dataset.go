package schema

import (
	"sort"
	"strings"
)

// ColumnType identifies one of the closed set of column variants.
type ColumnType string

const (
	TypeString   ColumnType = "string"
	TypeInteger  ColumnType = "integer"
	TypeFloat    ColumnType = "float"
	TypeBoolean  ColumnType = "boolean"
	TypeDate     ColumnType = "date"
	TypeDateTime ColumnType = "datetime"
)

// Default attribute values applied during decoding.
const (
	DefaultVersion        = "1.0"
	DefaultDateFormat     = "YYYY-MM-DD"
	DefaultDateTimeFormat = "YYYY-MM-DD HH:MM:SS"
)

// ColumnTypes returns every supported column variant in declaration order.
func ColumnTypes() []ColumnType {
	return []ColumnType{
		TypeString,
		TypeInteger,
		TypeFloat,
		TypeBoolean,
		TypeDate,
		TypeDateTime,
	}
}

// IsColumnType reports whether s names a supported column variant.
func IsColumnType(s string) bool {
	for _, t := range ColumnTypes() {
		if string(t) == s {
			return true
		}
	}
	return false
}

// Dataset is the validated form of a dataset schema document.
// FQN is the cross-document unique identifier.
type Dataset struct {
	FQN         string
	Name        string
	Description string
	Version     string
	Columns     []Column
	Metadata    map[string]any
	Tags        []string

	// Inherits and InheritedBy are carried as data only; inheritance
	// resolution is not implemented.
	Inherits    []string
	InheritedBy []string

	// DependsOn and Dependents list file paths consumed by the
	// dependency rules.
	DependsOn  []string
	Dependents []string
}

// Column is a tagged variant: Type selects which of the optional
// attribute groups below is meaningful. Attributes belonging to other
// variants are rejected during validation, never silently ignored.
type Column struct {
	Type        ColumnType
	Name        string
	Nullable    bool
	Unique      bool
	PrimaryKey  bool
	Description string

	// string
	MinLength *int
	MaxLength *int
	Pattern   string

	// integer / float
	Minimum   *float64
	Maximum   *float64
	Precision *int

	// date / datetime
	Format   string
	Timezone string
}

// Required lists attributes promoted to required on top of the model's
// own requirements. Dataset holds dataset-level attribute names, Column
// maps a variant name to column attribute names.
type Required struct {
	Dataset []string
	Column  map[string][]string
}

// Fingerprint renders a canonical string for the promotion set, stable
// under map iteration order. It keys cached validation results so a
// configuration change invalidates them.
func (r Required) Fingerprint() string {
	ds := append([]string{}, r.Dataset...)
	sort.Strings(ds)

	variants := make([]string, 0, len(r.Column))
	for v := range r.Column {
		variants = append(variants, v)
	}
	sort.Strings(variants)

	var sb strings.Builder
	sb.WriteString("dataset=")
	sb.WriteString(strings.Join(ds, ","))
	for _, v := range variants {
		cols := append([]string{}, r.Column[v]...)
		sort.Strings(cols)
		sb.WriteString(";")
		sb.WriteString(v)
		sb.WriteString("=")
		sb.WriteString(strings.Join(cols, ","))
	}
	return sb.String()
}
