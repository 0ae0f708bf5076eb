package redactor

import (
	"sort"
	"time"

	"github.com/svenplb/aegis-core/internal/pattern"
	"github.com/svenplb/aegis-core/internal/scanner"
)

// RedactResult holds the output of a Redact call.
type RedactResult struct {
	OriginalText   string          `json:"original_text"`
	SanitizedText  string          `json:"sanitized_text"`
	Matches        []scanner.Match `json:"matches"`
	Mappings       []Mapping       `json:"mappings"`
	ProcessingTime int64           `json:"processing_time_ms"`
}

// Redact replaces every match span in text with its pattern's mask
// template and returns the sanitised text together with the mapping
// table. This is a demonstration consumer sitting on top of the core
// scan — spec.md explicitly leaves redaction/reporting sinks and overlap
// tie-breaking to callers, so Redact resolves spans that overlap across
// different patterns itself, keeping the higher-severity match (ties
// broken by the earlier, then longer, span) before replacing.
func Redact(text string, matches []scanner.Match) RedactResult {
	start := time.Now()

	resolved := resolveOverlaps(matches)

	if len(resolved) == 0 {
		return RedactResult{
			OriginalText:   text,
			SanitizedText:  text,
			Matches:        matches,
			Mappings:       nil,
			ProcessingTime: time.Since(start).Milliseconds(),
		}
	}

	// First pass: assign tokens in forward (reading) order.
	counter := NewCounter()
	type tagged struct {
		m     scanner.Match
		token string
	}
	tags := make([]tagged, len(resolved))
	for i, m := range resolved {
		tags[i] = tagged{m: m, token: counter.Next(m.Mask, m.Text)}
	}

	// Second pass: replace in reverse order to preserve byte offsets.
	buf := []byte(text)
	mappings := make([]Mapping, 0, len(tags))
	for i := len(tags) - 1; i >= 0; i-- {
		t := tags[i]
		tokenBytes := []byte(t.token)
		newBuf := make([]byte, 0, len(buf)-t.m.End+t.m.Start+len(tokenBytes))
		newBuf = append(newBuf, buf[:t.m.Start]...)
		newBuf = append(newBuf, tokenBytes...)
		newBuf = append(newBuf, buf[t.m.End:]...)
		buf = newBuf

		mappings = append(mappings, Mapping{
			Token:     t.token,
			Original:  t.m.Text,
			PatternID: t.m.PatternID,
		})
	}

	// Deduplicate mappings (same token may appear multiple times).
	seen := make(map[string]bool, len(mappings))
	deduped := make([]Mapping, 0, len(mappings))
	for _, m := range mappings {
		if !seen[m.Token] {
			seen[m.Token] = true
			deduped = append(deduped, m)
		}
	}

	return RedactResult{
		OriginalText:   text,
		SanitizedText:  string(buf),
		Matches:        matches,
		Mappings:       deduped,
		ProcessingTime: time.Since(start).Milliseconds(),
	}
}

func severityRank(s pattern.Severity) int {
	switch s {
	case pattern.SeverityCritical:
		return 3
	case pattern.SeverityHigh:
		return 2
	case pattern.SeverityMedium:
		return 1
	default:
		return 0
	}
}

// resolveOverlaps orders matches by Start and drops any whose span
// overlaps a higher-priority match already kept (higher severity first,
// then earlier start, then longer span).
func resolveOverlaps(matches []scanner.Match) []scanner.Match {
	if len(matches) == 0 {
		return nil
	}

	byPriority := make([]scanner.Match, len(matches))
	copy(byPriority, matches)
	sort.SliceStable(byPriority, func(i, j int) bool {
		if byPriority[i].Policy.Severity != byPriority[j].Policy.Severity {
			return severityRank(byPriority[i].Policy.Severity) > severityRank(byPriority[j].Policy.Severity)
		}
		if byPriority[i].Start != byPriority[j].Start {
			return byPriority[i].Start < byPriority[j].Start
		}
		return (byPriority[i].End - byPriority[i].Start) > (byPriority[j].End - byPriority[j].Start)
	})

	type span struct{ start, end int }
	var kept []span
	var result []scanner.Match
	for _, m := range byPriority {
		overlaps := false
		for _, s := range kept {
			if m.Start < s.end && s.start < m.End {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}
		kept = append(kept, span{m.Start, m.End})
		result = append(result, m)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Start < result[j].Start })
	return result
}
