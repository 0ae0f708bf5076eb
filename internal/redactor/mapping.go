package redactor

// Mapping links a placeholder token back to the match it replaced.
type Mapping struct {
	Token     string `json:"token"`      // e.g. "[IBAN_1]"
	Original  string `json:"original"`   // e.g. "DE89370400440532013000"
	PatternID string `json:"pattern_id"` // the Pattern.ID that produced the match
}

// MappingTable holds all token↔original mappings for a redaction session.
type MappingTable struct {
	Entries []Mapping
}
