package validation

import (
	"fmt"
	"log/slog"

	"github.com/gauthamchettiar/schemax/pkg/schema"
)

// ResultCache serves previously computed structural findings for
// unchanged file content. Only the structural rule is cacheable: the
// other rules depend on batch state (the ledger, dependency edges) or
// on the filesystem and always re-run. modelHash fingerprints the
// model configuration so promoted-required changes invalidate entries.
type ResultCache interface {
	Get(content []byte, modelHash string) ([]Error, bool)
	Put(content []byte, modelHash string, errs []Error, fqn string) error
}

// Options configures a validation engine for one batch.
type Options struct {
	// Apply restricts execution to exactly these rule codes. Mutually
	// exclusive with Ignore.
	Apply []string

	// Ignore subtracts rule codes from the default set (all rules).
	Ignore []string

	// Required promotes optional model attributes to required.
	Required schema.Required

	// MaxFileSize overrides the loader's size limit when positive.
	MaxFileSize int64

	// Cache, when non-nil, serves structural findings by content hash.
	Cache ResultCache
}

// Engine runs the selected rules over batches of schema files. One
// engine instance owns one batch: the uniqueness ledger and the
// dependency graphs live exactly as long as the engine.
type Engine struct {
	loader    *Loader
	rules     []Rule
	cache     ResultCache
	modelHash string
	logger    *slog.Logger
}

// NewEngine creates an engine for one batch. It fails only on a rule
// selection error: apply and ignore both set, or an unknown rule code.
func NewEngine(opts Options) (*Engine, error) {
	selected, err := selectRules(opts.Apply, opts.Ignore)
	if err != nil {
		return nil, err
	}

	loader := NewLoader()
	if opts.MaxFileSize > 0 {
		loader.WithMaxFileSize(opts.MaxFileSize)
	}

	ledger := Ledger{}
	all := []Rule{
		NewStructuralRule(opts.Required),
		NewUniquenessRule(ledger),
		NewDependsOnRule(),
		NewDependentsRule(),
	}

	e := &Engine{
		loader:    loader,
		cache:     opts.Cache,
		modelHash: opts.Required.Fingerprint(),
		logger:    slog.Default().With("component", "validation.engine"),
	}
	for _, r := range all {
		if selected[r.Code()] {
			e.rules = append(e.rules, r)
		}
	}
	return e, nil
}

// selectRules resolves the apply/ignore configuration into the set of
// rule codes to run. Both modes at once is a configuration error, as is
// any unknown code.
func selectRules(apply, ignore []string) (map[string]bool, error) {
	if len(apply) > 0 && len(ignore) > 0 {
		return nil, fmt.Errorf("rule selection: apply and ignore are mutually exclusive")
	}
	for _, code := range append(append([]string{}, apply...), ignore...) {
		if !KnownRule(code) {
			return nil, fmt.Errorf("rule selection: unknown rule %q", code)
		}
	}

	selected := make(map[string]bool)
	if len(apply) > 0 {
		for _, code := range apply {
			selected[code] = true
		}
		return selected, nil
	}
	for _, code := range RuleCodes() {
		selected[code] = true
	}
	for _, code := range ignore {
		delete(selected, code)
	}
	return selected, nil
}

// Rules returns the codes of the selected rules in execution order.
func (e *Engine) Rules() []string {
	codes := make([]string, len(e.rules))
	for i, r := range e.rules {
		codes[i] = r.Code()
	}
	return codes
}

// ValidateFile loads one file and runs every selected rule against it.
// A load failure yields a result holding exactly the load error and
// suppresses all rules for that file; otherwise findings from all rules
// accumulate into the same result.
func (e *Engine) ValidateFile(path string) Result {
	doc, raw, verr := e.loader.Load(path)
	if verr != nil {
		e.logger.Debug("load failed", "file", path, "kind", verr.Type)
		return NewResult(path, []Error{*verr})
	}

	var errs []Error
	for _, r := range e.rules {
		if r.Code() == RuleStructural && e.cache != nil {
			errs = append(errs, e.structuralFindings(r, doc, raw, path)...)
			continue
		}
		errs = append(errs, r.Validate(doc, path)...)
	}
	return NewResult(path, errs)
}

// structuralFindings runs the structural rule through the cache: a hit
// replays the stored findings for identical content, a miss computes
// and stores them.
func (e *Engine) structuralFindings(r Rule, doc any, raw []byte, path string) []Error {
	if cached, ok := e.cache.Get(raw, e.modelHash); ok {
		e.logger.Debug("cache hit", "file", path)
		return cached
	}
	errs := r.Validate(doc, path)
	if err := e.cache.Put(raw, e.modelHash, errs, RawFQN(doc)); err != nil {
		e.logger.Warn("cache write failed", "file", path, "error", err)
	}
	return errs
}

// ValidateAll processes an ordered batch of paths, one result per path
// in input order. The ledger and dependency graphs thread through the
// whole batch, so duplicate detection is first-seen-wins in input
// order.
func (e *Engine) ValidateAll(paths []string) []Result {
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		results = append(results, e.ValidateFile(path))
	}
	return results
}
