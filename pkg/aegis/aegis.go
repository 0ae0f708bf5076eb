// Package aegis provides the public API for the aegis-core PII and secret
// detection engine.
//
// It re-exports the core types and functions so that external Go modules can
// import them without reaching into internal packages.
package aegis

import (
	"github.com/svenplb/aegis-core/internal/loader"
	"github.com/svenplb/aegis-core/internal/pattern"
	"github.com/svenplb/aegis-core/internal/redactor"
	"github.com/svenplb/aegis-core/internal/restorer"
	"github.com/svenplb/aegis-core/internal/scanner"
	"github.com/svenplb/aegis-core/internal/verify"
)

// ---------- Pattern model ----------

// Pattern is an immutable, compiled detection rule.
type Pattern = pattern.Pattern

// Set is an immutable, ordered collection of compiled patterns.
type Set = pattern.Set

// Policy is the severity/action pair attached to every pattern.
type Policy = pattern.Policy

// Severity is a pattern's policy severity level (low/medium/high/critical).
type Severity = pattern.Severity

// Action is a policy's response to a confirmed match (redact/alert/block/log/report).
type Action = pattern.Action

// ---------- Verifier registry ----------

// VerifierFunc decides whether a regex candidate is a true positive.
type VerifierFunc = verify.Func

// Registry holds named verifier functions, looked up by pattern files.
type Registry = verify.Registry

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return verify.NewRegistry()
}

// DefaultRegistry returns the package-wide registry pre-populated with
// every built-in verifier, keyed by the names pattern files reference.
func DefaultRegistry() *Registry {
	return verify.Default()
}

// ---------- Loading ----------

// LoadOptions configures LoadPatterns.
type LoadOptions = loader.Options

// LoadError reports a pattern file or pattern entry that failed to load.
type LoadError = loader.LoadError

// LoadPatterns decodes and compiles the YAML pattern files at paths into
// a Set, validating each entry against opts.Registry (or the default
// registry if nil). Pattern IDs must be unique across every file.
func LoadPatterns(paths []string, opts LoadOptions) (*Set, error) {
	return loader.LoadPatterns(paths, opts)
}

// ---------- Scanning ----------

// Match is one surviving candidate from a Scan call.
type Match = scanner.Match

// ScanOptions configures a Scan call.
type ScanOptions = scanner.Options

// Scan runs every pattern in set against input (filtered by
// opts.Location, if set), applying each pattern's verifier via
// opts.Registry, and returns the surviving matches ordered by
// non-decreasing start offset. Scan never panics: a verifier panic is
// recovered, logged, and drops only that candidate.
func Scan(set *Set, input string, opts ScanOptions) []Match {
	return scanner.Scan(set, input, opts)
}

// ---------- Redaction ----------

// RedactResult holds the output of a Redact call.
type RedactResult = redactor.RedactResult

// Mapping links a placeholder token to its original text and the
// pattern ID that produced the match.
type Mapping = redactor.Mapping

// Redact replaces every match span in text with a placeholder token
// (e.g. [IBAN_1]) and returns the sanitized text together with the
// mapping table needed for restoration. Overlapping matches are
// resolved by highest severity first, then earliest start, then
// longest span.
func Redact(text string, matches []Match) RedactResult {
	return redactor.Redact(text, matches)
}

// ---------- Restoration ----------

// Restore replaces every placeholder token in text with its original value.
// Tokens are replaced longest-first to avoid partial matches.
func Restore(text string, mappings []Mapping) string {
	return restorer.Restore(text, mappings)
}

// StreamRestorer incrementally restores tokens from streaming chunks,
// buffering incomplete tokens (an opening '[' without a matching ']').
type StreamRestorer = restorer.StreamRestorer

// NewStreamRestorer returns a StreamRestorer configured with the given mappings.
func NewStreamRestorer(mappings []Mapping) *StreamRestorer {
	return restorer.NewStreamRestorer(mappings)
}
