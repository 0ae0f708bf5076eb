package aegis_test

import (
	"os"
	"testing"

	"github.com/svenplb/aegis-core/pkg/aegis"
)

func testSet(t *testing.T) *aegis.Set {
	t.Helper()
	spec := `
namespace: test
description: test patterns
patterns:
  - id: email
    location: body
    category: contact
    description: Email address.
    pattern: '\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b'
    mask: "[EMAIL]"
    policy:
      severity: medium
      action_on_match: redact
`
	dir := t.TempDir()
	path := dir + "/test.yaml"
	if err := os.WriteFile(path, []byte(spec), 0o644); err != nil {
		t.Fatalf("failed to write test pattern file: %v", err)
	}
	set, err := aegis.LoadPatterns([]string{path}, aegis.LoadOptions{})
	if err != nil {
		t.Fatalf("failed to load patterns: %v", err)
	}
	return set
}

func TestScanDetectsEmail(t *testing.T) {
	set := testSet(t)
	matches := aegis.Scan(set, "Contact john@example.com for info.", aegis.ScanOptions{})
	if len(matches) == 0 {
		t.Fatal("expected at least one match")
	}
	found := false
	for _, m := range matches {
		if m.PatternID == "email" && m.Text == "john@example.com" {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected email match john@example.com, got %v", matches)
	}
}

func TestRedactAndRestore(t *testing.T) {
	set := testSet(t)
	text := "Email me at alice@test.org please."
	matches := aegis.Scan(set, text, aegis.ScanOptions{})

	result := aegis.Redact(text, matches)
	if result.SanitizedText == text {
		t.Fatal("expected redaction to change text")
	}
	if len(result.Mappings) == 0 {
		t.Fatal("expected at least one mapping")
	}

	restored := aegis.Restore(result.SanitizedText, result.Mappings)
	if restored != text {
		t.Errorf("restore failed: got %q, want %q", restored, text)
	}
}

func TestStreamRestorer(t *testing.T) {
	mappings := []aegis.Mapping{
		{Token: "[EMAIL_1]", Original: "alice@test.org", PatternID: "email"},
	}
	sr := aegis.NewStreamRestorer(mappings)

	out := sr.Process("Hello [EMA")
	out += sr.Process("IL_1], how are you?")
	out += sr.Flush()

	want := "Hello alice@test.org, how are you?"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestDefaultRegistryHasBuiltins(t *testing.T) {
	registry := aegis.DefaultRegistry()
	if _, ok := registry.Lookup("ipv4_public"); !ok {
		t.Error("expected default registry to have ipv4_public verifier")
	}
}
