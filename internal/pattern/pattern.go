// Package pattern defines the immutable compiled pattern record produced
// by internal/loader and consumed by internal/scanner.
package pattern

import "github.com/coregx/coregex"

// Severity is the pattern's policy severity level.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Valid reports whether s is one of the enumerated severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Action is the policy's response to a confirmed match.
type Action string

const (
	ActionRedact Action = "redact"
	ActionAlert  Action = "alert"
	ActionBlock  Action = "block"
	ActionLog    Action = "log"
	ActionReport Action = "report"
)

// Valid reports whether a is one of the enumerated actions.
func (a Action) Valid() bool {
	switch a {
	case ActionRedact, ActionAlert, ActionBlock, ActionLog, ActionReport:
		return true
	}
	return false
}

// Policy is the severity/action pair attached to every pattern.
type Policy struct {
	Severity Severity `json:"severity"`
	Action   Action   `json:"action"`
}

// Examples holds the strings a pattern's test harness checks against —
// never consulted at scan time.
type Examples struct {
	Match   []string
	NoMatch []string
}

// Pattern is an immutable, fully-compiled detection rule. Values are
// built once by internal/loader and never mutated afterward, so readers
// never need to synchronize against a *Pattern or a *Set of them.
type Pattern struct {
	ID           string
	Namespace    string
	Location     string
	Category     string
	Description  string
	Source       string // the regex source after flag-folding, as actually compiled
	Regex        *coregex.Regex
	VerifierName string
	Policy       Policy
	Mask         string
	Examples     Examples
}

// Set is an immutable, ordered collection of compiled patterns, indexed
// by ID for the loader's uniqueness check and by location for the
// scanner's dispatch filter.
type Set struct {
	patterns   []*Pattern
	byLocation map[string][]*Pattern
}

// NewSet builds a Set from an already-validated, ID-unique slice of
// patterns, preserving load order.
func NewSet(patterns []*Pattern) *Set {
	byLoc := make(map[string][]*Pattern)
	for _, p := range patterns {
		byLoc[p.Location] = append(byLoc[p.Location], p)
	}
	return &Set{patterns: patterns, byLocation: byLoc}
}

// All returns every pattern in load order.
func (s *Set) All() []*Pattern {
	return s.patterns
}

// ForLocation returns the patterns registered under the given location
// tag, in load order. An empty location returns every pattern
// (unfiltered dispatch).
func (s *Set) ForLocation(location string) []*Pattern {
	if location == "" {
		return s.patterns
	}
	return s.byLocation[location]
}

// Len reports the number of patterns in the set.
func (s *Set) Len() int { return len(s.patterns) }
