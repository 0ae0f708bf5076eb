package scanner

import "github.com/svenplb/aegis-core/internal/pattern"

// Match is one surviving candidate from a Scan call: a regex hit whose
// verifier (if any) returned true.
type Match struct {
	PatternID string         `json:"pattern_id"`
	Start     int            `json:"start"`
	End       int            `json:"end"`
	Text      string         `json:"text"`
	Policy    pattern.Policy `json:"policy"`
	Mask      string         `json:"mask"`
}
