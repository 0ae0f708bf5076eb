package loader

import (
	"path/filepath"
	"testing"
)

func TestLoadPatterns_DuplicateIDAcrossFilesFails(t *testing.T) {
	dupeDir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dupeDir, name)
		if err := writeFile(path, content); err != nil {
			t.Fatal(err)
		}
		return path
	}

	const spec = `
namespace: dupes
patterns:
  - id: same-id
    location: body
    category: test
    description: first
    pattern: 'a'
    mask: "[X]"
    policy:
      severity: low
      action_on_match: log
`
	a := write("a.yaml", spec)
	b := write("b.yaml", spec)

	_, err := LoadPatterns([]string{a, b}, Options{})
	if err == nil {
		t.Fatal("expected duplicate pattern id across files to fail")
	}
	if _, ok := err.(*LoadError); !ok {
		t.Errorf("expected *LoadError, got %T: %v", err, err)
	}
}

func TestLoadPatterns_UnknownVerifierNameFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	const spec = `
namespace: bad
patterns:
  - id: ghost-verifier
    location: body
    category: test
    description: references a verifier that does not exist
    pattern: 'a'
    mask: "[X]"
    verification: does_not_exist
    policy:
      severity: low
      action_on_match: log
`
	if err := writeFile(path, spec); err != nil {
		t.Fatal(err)
	}

	_, err := LoadPatterns([]string{path}, Options{})
	if err == nil {
		t.Fatal("expected unresolved verifier name to fail")
	}
}

func TestLoadPatterns_InvalidIDFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	const spec = `
namespace: bad
patterns:
  - id: "Not Valid ID!"
    location: body
    category: test
    description: id violates the naming pattern
    pattern: 'a'
    mask: "[X]"
    policy:
      severity: low
      action_on_match: log
`
	if err := writeFile(path, spec); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadPatterns([]string{path}, Options{}); err == nil {
		t.Fatal("expected invalid pattern id to fail")
	}
}

func TestLoadPatterns_InvalidSeverityFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	const spec = `
namespace: bad
patterns:
  - id: bad-severity
    location: body
    category: test
    description: severity is not in the enum
    pattern: 'a'
    mask: "[X]"
    policy:
      severity: catastrophic
      action_on_match: log
`
	if err := writeFile(path, spec); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadPatterns([]string{path}, Options{}); err == nil {
		t.Fatal("expected invalid severity to fail")
	}
}

func TestLoadPatterns_MissingRequiredFieldFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	const spec = `
namespace: bad
patterns:
  - id: no-mask
    location: body
    category: test
    description: missing the mask field
    pattern: 'a'
    policy:
      severity: low
      action_on_match: log
`
	if err := writeFile(path, spec); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadPatterns([]string{path}, Options{}); err == nil {
		t.Fatal("expected missing required field to fail")
	}
}

func TestLoadPatterns_BadRegexFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	const spec = `
namespace: bad
patterns:
  - id: bad-regex
    location: body
    category: test
    description: pattern does not compile
    pattern: '(unclosed'
    mask: "[X]"
    policy:
      severity: low
      action_on_match: log
`
	if err := writeFile(path, spec); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadPatterns([]string{path}, Options{}); err == nil {
		t.Fatal("expected uncompilable regex to fail")
	}
}

func TestLoadPatterns_UnknownFlagFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	const spec = `
namespace: bad
patterns:
  - id: bad-flag
    location: body
    category: test
    description: flag is not in the enum
    pattern: 'a'
    flags: ["NOT_A_REAL_FLAG"]
    mask: "[X]"
    policy:
      severity: low
      action_on_match: log
`
	if err := writeFile(path, spec); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadPatterns([]string{path}, Options{}); err == nil {
		t.Fatal("expected unknown flag to fail")
	}
}
