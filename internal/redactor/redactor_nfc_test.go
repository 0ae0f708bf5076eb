package redactor

import (
	"testing"

	"github.com/svenplb/aegis-core/internal/scanner"
)

// Redact() itself does not normalize — it trusts whatever byte offsets
// it's given, which the scanner (C6) already computed against NFC text.
// These cases exercise multi-byte splicing correctness.

func TestNFC_MultibyteBoundaries(t *testing.T) {
	text := "für 1.234,56 € rest"
	matches := []scanner.Match{
		{PatternID: "amount", Start: 5, End: 17, Text: "1.234,56 €", Policy: criticalPolicy(), Mask: "[FINANCIAL]"},
	}

	result := Redact(text, matches)

	want := "für [FINANCIAL_1] rest"
	if result.SanitizedText != want {
		t.Errorf("SanitizedText = %q, want %q", result.SanitizedText, want)
	}
}

func TestNFC_MultipleMultibyteMatches(t *testing.T) {
	text := "Herr Müller zahlt 500,00 € an Frau Möller"

	matches := []scanner.Match{
		{PatternID: "person", Start: 5, End: 12, Text: "Müller", Policy: criticalPolicy(), Mask: "[PERSON]"},
		{PatternID: "amount", Start: 19, End: 29, Text: "500,00 €", Policy: criticalPolicy(), Mask: "[FINANCIAL]"},
		{PatternID: "person", Start: 38, End: 45, Text: "Möller", Policy: criticalPolicy(), Mask: "[PERSON]"},
	}

	result := Redact(text, matches)

	want := "Herr [PERSON_1] zahlt [FINANCIAL_1] an Frau [PERSON_2]"
	if result.SanitizedText != want {
		t.Errorf("SanitizedText = %q, want %q", result.SanitizedText, want)
	}
}
