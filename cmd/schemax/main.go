// Schemax validates dataset schema files written in JSON or YAML.
//
// It checks structural conformance of each schema document, enforces
// batch-wide FQN uniqueness and verifies declared dependencies between
// schema files, including cycle detection.
//
// Usage:
//
//	# Validate one or more schema files
//	schemax validate schemas/users.yaml schemas/orders.json
//
//	# Read file paths from stdin
//	find schemas -name '*.yaml' | schemax validate
//
//	# Machine-readable output for CI
//	schemax validate --out json schemas/*.yaml
//
//	# Re-run automatically on file changes
//	schemax validate --watch schemas/*.yaml
//
//	# Inspect or clear the result cache
//	schemax cache stats
//	schemax cache clear
package main

func main() {
	Execute()
}
