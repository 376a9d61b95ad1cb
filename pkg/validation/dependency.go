package validation

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// DependencyRule checks one of the two dependency link fields
// (depends_on for PSX_VAL3, dependents for PSX_VAL4): the field must be
// a list of file paths, every listed file must exist, and the edges
// accumulated across the batch must stay acyclic. A missing field is an
// empty list, not a violation.
//
// Each rule instance keeps its own edge accumulator with the same
// lifetime as the batch, so cycles spanning several files are caught as
// soon as the closing file is validated.
type DependencyRule struct {
	code  string
	field string
	edges map[string][]string
}

// NewDependsOnRule creates the PSX_VAL3 validator over "depends_on".
func NewDependsOnRule() *DependencyRule {
	return &DependencyRule{code: RuleDependsOn, field: "depends_on", edges: map[string][]string{}}
}

// NewDependentsRule creates the PSX_VAL4 validator over "dependents".
func NewDependentsRule() *DependencyRule {
	return &DependencyRule{code: RuleDependents, field: "dependents", edges: map[string][]string{}}
}

// Code returns the stable rule identifier.
func (r *DependencyRule) Code() string { return r.code }

// Validate checks the document's dependency field and folds its edges
// into the batch graph.
func (r *DependencyRule) Validate(doc any, filePath string) []Error {
	at := Path{}.Child(r.field)

	m, _ := asMapping(doc)
	raw, present := m[r.field]
	if !present || raw == nil {
		return nil
	}

	seq, ok := asSequence(raw)
	if !ok {
		return []Error{{
			Type:    KindInvalidType,
			ErrorAt: at.String(),
			Message: fmt.Sprintf("'%s' must be a list", r.field),
		}}
	}
	deps := make([]string, 0, len(seq))
	for _, item := range seq {
		s, ok := asString(item)
		if !ok {
			return []Error{{
				Type:    KindInvalidType,
				ErrorAt: at.String(),
				Message: fmt.Sprintf("'%s' must be a list of strings", r.field),
			}}
		}
		deps = append(deps, s)
	}

	for _, dep := range deps {
		if _, err := os.Stat(dep); err != nil {
			return []Error{{
				Type:    KindDependencyNotFound,
				ErrorAt: at.String(),
				Message: fmt.Sprintf("File '%s' provided in '%s' field not found", dep, r.field),
			}}
		}
	}

	r.edges[filePath] = deps

	if cycle := findCycle(r.edges); len(cycle) > 0 {
		return []Error{{
			Type:    KindCircularDependency,
			ErrorAt: at.String(),
			Message: fmt.Sprintf("circular dependency present: %s", strings.Join(cycle, " -> ")),
		}}
	}
	return nil
}

// findCycle runs a colored DFS over the accumulated edges and returns
// the first cycle found, closed on its starting node, or nil. Roots are
// visited in sorted order so the report is deterministic.
func findCycle(edges map[string][]string) []string {
	const (
		white = 0
		grey  = 1
		black = 2
	)
	color := make(map[string]int, len(edges))

	roots := make([]string, 0, len(edges))
	for n := range edges {
		roots = append(roots, n)
	}
	sort.Strings(roots)

	var stack []string
	var cycle []string

	var visit func(n string) bool
	visit = func(n string) bool {
		color[n] = grey
		stack = append(stack, n)
		for _, next := range edges[n] {
			switch color[next] {
			case grey:
				// Close the loop from the first occurrence of next.
				for i, s := range stack {
					if s == next {
						cycle = append(append([]string{}, stack[i:]...), next)
						return true
					}
				}
			case white:
				if visit(next) {
					return true
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[n] = black
		return false
	}

	for _, n := range roots {
		if color[n] == white && visit(n) {
			return cycle
		}
	}
	return nil
}
