package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gauthamchettiar/schemax/pkg/schema"
)

// Underlying check codes carried in Detail for structural findings.
const (
	checkMissing          = "missing"
	checkExtraForbidden   = "extra_forbidden"
	checkStringType       = "string_type"
	checkBoolType         = "bool_type"
	checkIntType          = "int_type"
	checkFloatType        = "float_type"
	checkListType         = "list_type"
	checkDictType         = "dict_type"
	checkModelType        = "model_type"
	checkStringTooShort   = "string_too_short"
	checkUnionTagInvalid  = "union_tag_invalid"
	checkUnionTagNotFound = "union_tag_not_found"
)

// StructuralRule validates a document's shape against the dataset
// model: required fields, scalar types, field-level constraints, the
// column discriminator and the closed-world field allowlists.
type StructuralRule struct {
	required schema.Required
}

// NewStructuralRule creates the structural rule validator. required
// promotes otherwise-optional model attributes to required.
func NewStructuralRule(required schema.Required) *StructuralRule {
	return &StructuralRule{required: required}
}

// Code returns the stable rule identifier.
func (r *StructuralRule) Code() string { return RuleStructural }

// Validate checks one loaded document. It never consults other files.
func (r *StructuralRule) Validate(doc any, filePath string) []Error {
	_, errs := DecodeDataset(doc, r.required)
	return errs
}

// DecodeDataset validates a generic value tree against the dataset
// model and, when the document is fully valid, returns its typed form.
// On violation the dataset is nil and errs carries one finding per
// independent violation, in field-table order with unknown fields last.
func DecodeDataset(doc any, required schema.Required) (*schema.Dataset, []Error) {
	d := &decoder{required: required}
	ds := d.decodeRoot(doc)
	if d.errs.HasErrors() {
		return nil, d.errs.Errors
	}
	return ds, nil
}

type decoder struct {
	required schema.Required
	errs     ErrorList
}

func (d *decoder) decodeRoot(doc any) *schema.Dataset {
	root := Path{}
	m, ok := asMapping(doc)
	if !ok {
		d.typeError(root, checkModelType, "Input should be a valid dictionary")
		return nil
	}

	ds := &schema.Dataset{Version: schema.DefaultVersion}
	fields := schema.DatasetFields(d.required)
	for _, f := range fields {
		at := root.Child(f.Name)
		v, present := m[f.Name]
		if !present || (v == nil && !f.Required) {
			if !present && f.Required {
				d.missing(at)
			}
			continue
		}
		switch f.Name {
		case "fqn":
			d.decodeString(at, f, v, &ds.FQN)
		case "name":
			d.decodeString(at, f, v, &ds.Name)
		case "description":
			d.decodeString(at, f, v, &ds.Description)
		case "version":
			d.decodeString(at, f, v, &ds.Version)
		case "columns":
			ds.Columns = d.decodeColumns(at, v)
		case "metadata":
			if mv, ok := asMapping(v); ok {
				ds.Metadata = mv
			} else {
				d.typeError(at, checkDictType, "Input should be a valid dictionary")
			}
		case "tags":
			ds.Tags = d.decodeStringList(at, v)
		case "inherits":
			ds.Inherits = d.decodeStringList(at, v)
		case "inherited_by":
			ds.InheritedBy = d.decodeStringList(at, v)
		case "depends_on":
			ds.DependsOn = d.decodeStringList(at, v)
		case "dependents":
			ds.Dependents = d.decodeStringList(at, v)
		}
	}

	d.rejectExtras(root, m, fields, false)
	return ds
}

func (d *decoder) decodeColumns(at Path, v any) []schema.Column {
	seq, ok := asSequence(v)
	if !ok {
		d.typeError(at, checkListType, "Input should be a valid list")
		return nil
	}
	cols := make([]schema.Column, 0, len(seq))
	for i, item := range seq {
		if col, ok := d.decodeColumn(at.Index(i), item); ok {
			cols = append(cols, col)
		}
	}
	return cols
}

// decodeColumn validates one column element. The discriminator selects
// exactly one variant; a missing or unrecognized tag yields a single
// discriminator finding instead of one failure per variant.
func (d *decoder) decodeColumn(at Path, v any) (schema.Column, bool) {
	var col schema.Column
	m, ok := asMapping(v)
	if !ok {
		d.typeError(at, checkModelType, "Input should be a valid dictionary")
		return col, false
	}

	tagAt := at.Child(schema.Discriminator)
	tag, present := m[schema.Discriminator]
	if !present {
		d.errs.AddDetailed(KindDiscriminatorMismatch, tagAt,
			fmt.Sprintf("Unable to extract tag using discriminator '%s'", schema.Discriminator),
			checkUnionTagNotFound)
		return col, false
	}
	name, ok := asString(tag)
	if !ok || !schema.IsColumnType(name) {
		d.errs.AddDetailed(KindDiscriminatorMismatch, tagAt,
			fmt.Sprintf("Input should be %s", variantNames()), checkUnionTagInvalid)
		return col, false
	}

	colType := schema.ColumnType(name)
	col = schema.Column{Type: colType, Nullable: true}
	switch colType {
	case schema.TypeDate:
		col.Format = schema.DefaultDateFormat
	case schema.TypeDateTime:
		col.Format = schema.DefaultDateTimeFormat
	}

	fields := schema.ColumnFields(colType, d.required)
	for _, f := range fields {
		fieldAt := at.Child(f.Name)
		fv, present := m[f.Name]
		if !present || (fv == nil && !f.Required) {
			if !present && f.Required {
				d.missing(fieldAt)
			}
			continue
		}
		switch f.Name {
		case "name":
			d.decodeString(fieldAt, f, fv, &col.Name)
		case "nullable":
			d.decodeBool(fieldAt, fv, &col.Nullable)
		case "unique":
			d.decodeBool(fieldAt, fv, &col.Unique)
		case "primary_key":
			d.decodeBool(fieldAt, fv, &col.PrimaryKey)
		case "description":
			d.decodeString(fieldAt, f, fv, &col.Description)
		case "pattern":
			d.decodeString(fieldAt, f, fv, &col.Pattern)
		case "format":
			d.decodeString(fieldAt, f, fv, &col.Format)
		case "timezone":
			d.decodeString(fieldAt, f, fv, &col.Timezone)
		case "min_length":
			col.MinLength = d.decodeIntPtr(fieldAt, fv)
		case "max_length":
			col.MaxLength = d.decodeIntPtr(fieldAt, fv)
		case "precision":
			col.Precision = d.decodeIntPtr(fieldAt, fv)
		case "minimum":
			col.Minimum = d.decodeNumberPtr(fieldAt, f, fv)
		case "maximum":
			col.Maximum = d.decodeNumberPtr(fieldAt, f, fv)
		}
	}

	d.rejectExtras(at, m, fields, true)
	return col, true
}

func (d *decoder) decodeString(at Path, f schema.Field, v any, dst *string) {
	s, ok := asString(v)
	if !ok {
		d.typeError(at, checkStringType, "Input should be a valid string")
		return
	}
	if f.MinLength > 0 && len(s) < f.MinLength {
		d.errs.AddDetailed(KindConstraintViolation, at,
			fmt.Sprintf("String should have at least %d %s", f.MinLength, characters(f.MinLength)),
			checkStringTooShort)
		return
	}
	*dst = s
}

func (d *decoder) decodeBool(at Path, v any, dst *bool) {
	b, ok := asBool(v)
	if !ok {
		d.typeError(at, checkBoolType, "Input should be a valid boolean")
		return
	}
	*dst = b
}

func (d *decoder) decodeIntPtr(at Path, v any) *int {
	i, ok := asInt(v)
	if !ok {
		d.typeError(at, checkIntType, "Input should be a valid integer")
		return nil
	}
	n := int(i)
	return &n
}

func (d *decoder) decodeNumberPtr(at Path, f schema.Field, v any) *float64 {
	if f.Kind == schema.KindInt {
		i, ok := asInt(v)
		if !ok {
			d.typeError(at, checkIntType, "Input should be a valid integer")
			return nil
		}
		n := float64(i)
		return &n
	}
	fv, ok := asFloat(v)
	if !ok {
		d.typeError(at, checkFloatType, "Input should be a valid number")
		return nil
	}
	return &fv
}

func (d *decoder) decodeStringList(at Path, v any) []string {
	seq, ok := asSequence(v)
	if !ok {
		d.typeError(at, checkListType, "Input should be a valid list")
		return nil
	}
	out := make([]string, 0, len(seq))
	for i, item := range seq {
		s, ok := asString(item)
		if !ok {
			d.typeError(at.Index(i), checkStringType, "Input should be a valid string")
			continue
		}
		out = append(out, s)
	}
	return out
}

// rejectExtras reports unknown keys at one object level. Known keys
// come from the field table; column levels additionally allow the
// discriminator. Unknown keys are reported in lexical order because
// mapping decode does not preserve document order.
func (d *decoder) rejectExtras(at Path, m map[string]any, fields []schema.Field, column bool) {
	known := make(map[string]bool, len(fields)+1)
	for _, f := range fields {
		known[f.Name] = true
	}
	if column {
		known[schema.Discriminator] = true
	}
	var extras []string
	for k := range m {
		if !known[k] {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	for _, k := range extras {
		d.errs.AddDetailed(KindExtraField, at.Child(k),
			"Extra inputs are not permitted", checkExtraForbidden)
	}
}

func (d *decoder) missing(at Path) {
	d.errs.AddDetailed(KindMissing, at, "Field required", checkMissing)
}

func (d *decoder) typeError(at Path, code, message string) {
	d.errs.AddDetailed(KindTypeError, at, message, code)
}

// variantNames renders the supported discriminator values, e.g.
// "'string', 'integer', 'float', 'boolean', 'date' or 'datetime'".
func variantNames() string {
	types := schema.ColumnTypes()
	quoted := make([]string, len(types))
	for i, t := range types {
		quoted[i] = "'" + string(t) + "'"
	}
	if len(quoted) == 1 {
		return quoted[0]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}

func characters(n int) string {
	if n == 1 {
		return "character"
	}
	return "characters"
}
