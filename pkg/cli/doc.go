// Package cli provides shared command-line plumbing: typed command and
// configuration errors with exit-code mapping, validation result
// rendering in text and JSON form, and signal handling for watch mode.
package cli
