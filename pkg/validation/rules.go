package validation

// Stable rule identifiers, in declaration order. These codes are part
// of the CLI surface (--rule-apply / --rule-ignore) and of the cache
// fingerprint; they never change meaning.
const (
	RuleStructural = "PSX_VAL1"
	RuleUniqueFQN  = "PSX_VAL2"
	RuleDependsOn  = "PSX_VAL3"
	RuleDependents = "PSX_VAL4"
)

// Rule is an independently pluggable validator. Implementations may
// keep batch-scoped state (the uniqueness ledger, dependency edges);
// instances are created fresh for every batch and never shared.
type Rule interface {
	// Code returns the stable rule identifier.
	Code() string

	// Validate inspects one loaded document and returns its findings.
	// It is never called for files that failed to load.
	Validate(doc any, filePath string) []Error
}

// RuleCodes returns every registered rule code in declaration order.
func RuleCodes() []string {
	return []string{RuleStructural, RuleUniqueFQN, RuleDependsOn, RuleDependents}
}

// KnownRule reports whether code names a registered rule.
func KnownRule(code string) bool {
	for _, c := range RuleCodes() {
		if c == code {
			return true
		}
	}
	return false
}

// RawFQN pulls the raw fqn string off an unvalidated value tree, or ""
// when absent or not a string.
func RawFQN(doc any) string {
	m, ok := asMapping(doc)
	if !ok {
		return ""
	}
	s, _ := asString(m["fqn"])
	return s
}
