package schema

// FieldKind is the value shape expected for a model attribute.
type FieldKind int

const (
	KindString FieldKind = iota
	KindBool
	KindInt
	KindFloat
	KindStringList
	KindColumnList
	KindMapping
)

// Field describes one attribute of an object level in the model.
// MinLength, when positive, constrains string values.
type Field struct {
	Name      string
	Kind      FieldKind
	Required  bool
	MinLength int
}

// Discriminator is the column attribute that selects the variant.
const Discriminator = "type"

var datasetFields = []Field{
	{Name: "fqn", Kind: KindString, Required: true, MinLength: 1},
	{Name: "name", Kind: KindString, Required: true, MinLength: 1},
	{Name: "description", Kind: KindString},
	{Name: "version", Kind: KindString},
	{Name: "columns", Kind: KindColumnList, Required: true},
	{Name: "metadata", Kind: KindMapping},
	{Name: "tags", Kind: KindStringList},
	{Name: "inherits", Kind: KindStringList},
	{Name: "inherited_by", Kind: KindStringList},
	{Name: "depends_on", Kind: KindStringList},
	{Name: "dependents", Kind: KindStringList},
}

var columnCommonFields = []Field{
	{Name: "name", Kind: KindString, Required: true, MinLength: 1},
	{Name: "nullable", Kind: KindBool},
	{Name: "unique", Kind: KindBool},
	{Name: "primary_key", Kind: KindBool},
	{Name: "description", Kind: KindString},
}

var columnVariantFields = map[ColumnType][]Field{
	TypeString: {
		{Name: "min_length", Kind: KindInt},
		{Name: "max_length", Kind: KindInt},
		{Name: "pattern", Kind: KindString},
	},
	TypeInteger: {
		{Name: "minimum", Kind: KindInt},
		{Name: "maximum", Kind: KindInt},
	},
	TypeFloat: {
		{Name: "minimum", Kind: KindFloat},
		{Name: "maximum", Kind: KindFloat},
		{Name: "precision", Kind: KindInt},
	},
	TypeBoolean: {},
	TypeDate: {
		{Name: "format", Kind: KindString},
	},
	TypeDateTime: {
		{Name: "format", Kind: KindString},
		{Name: "timezone", Kind: KindString},
	},
}

// DatasetFields returns the dataset-level field table in declaration
// order, with req's dataset-level promotions applied.
func DatasetFields(req Required) []Field {
	return promote(datasetFields, req.Dataset)
}

// ColumnFields returns the field table for one column variant (common
// attributes first, then variant attributes), with req's promotions for
// that variant applied. The discriminator itself is not listed; it is
// handled before the table is consulted.
func ColumnFields(t ColumnType, req Required) []Field {
	fields := make([]Field, 0, len(columnCommonFields)+len(columnVariantFields[t]))
	fields = append(fields, columnCommonFields...)
	fields = append(fields, columnVariantFields[t]...)
	return promote(fields, req.Column[string(t)])
}

func promote(fields []Field, names []string) []Field {
	if len(names) == 0 {
		return fields
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	out := make([]Field, len(fields))
	copy(out, fields)
	for i := range out {
		if wanted[out[i].Name] {
			out[i].Required = true
		}
	}
	return out
}
