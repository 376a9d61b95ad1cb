package validation

import "fmt"

// Ledger maps a dataset fqn to the file that first declared it. It is
// owned by the engine for the lifetime of one batch and rebuilt from
// scratch every run; it is never global state.
type Ledger map[string]string

// UniquenessRule checks that a document's declared fqn has not been
// seen earlier in the same batch. It reads the raw fqn value off the
// value tree, so it works whether or not structural validation passed.
// First seen wins: validation is order-sensitive by design, but fully
// deterministic for a fixed file ordering.
type UniquenessRule struct {
	ledger Ledger
}

// NewUniquenessRule creates the uniqueness rule over the given ledger.
func NewUniquenessRule(ledger Ledger) *UniquenessRule {
	return &UniquenessRule{ledger: ledger}
}

// Code returns the stable rule identifier.
func (r *UniquenessRule) Code() string { return RuleUniqueFQN }

// Validate registers the document's fqn or reports the collision.
// A losing duplicate never becomes the ledger owner. Any present
// string registers, the empty string included; value constraints are
// the structural rule's concern.
func (r *UniquenessRule) Validate(doc any, filePath string) []Error {
	at := Path{}.Child("fqn")

	var fqn string
	ok := false
	if m, isMap := asMapping(doc); isMap {
		if raw, present := m["fqn"]; present {
			fqn, ok = asString(raw)
		}
	}
	if !ok {
		return []Error{{
			Type:    KindMissingFQN,
			ErrorAt: at.String(),
			Message: "Duplicate fqn check is enabled but fqn field is missing or invalid",
		}}
	}

	if owner, seen := r.ledger[fqn]; seen {
		return []Error{{
			Type:    KindDuplicateFQN,
			ErrorAt: at.String(),
			Message: fmt.Sprintf("Duplicate FQN '%s', already present at '%s'", fqn, owner),
		}}
	}

	r.ledger[fqn] = filePath
	return nil
}
