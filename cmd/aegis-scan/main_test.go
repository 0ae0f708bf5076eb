package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/svenplb/aegis-core/internal/redactor"
	"github.com/svenplb/aegis-core/internal/restorer"
)

var testBinary string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "aegis-scan-test")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	testBinary = filepath.Join(dir, "aegis-scan")
	cmd := exec.Command("go", "build", "-o", testBinary, ".")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build test binary: " + err.Error())
	}

	os.Exit(m.Run())
}

// runBinary runs the built binary from the repo root so its relative
// "patterns" built-in pack lookup resolves the same way it does for an
// end user invoking it from the repo.
func runBinary(args ...string) (string, int, error) {
	cmd := exec.Command(testBinary, args...)
	cmd.Dir = repoRoot()
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
		err = nil
	} else if err != nil {
		return string(out), -1, err
	}
	return string(out), exitCode, nil
}

func runBinaryWithStdin(input string, args ...string) (string, int, error) {
	cmd := exec.Command(testBinary, args...)
	cmd.Dir = repoRoot()
	cmd.Stdin = strings.NewReader(input)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
		err = nil
	} else if err != nil {
		return string(out), -1, err
	}
	return string(out), exitCode, nil
}

func repoRoot() string {
	return filepath.Join("..", "..")
}

func samplesDir() string {
	// Paths are relative to repoRoot() since the binary runs with that cwd.
	return filepath.Join("testdata", "samples")
}

func TestFinancialMixed(t *testing.T) {
	out, code, err := runBinary("--file", filepath.Join(samplesDir(), "financial_mixed.txt"), "--json")
	if err != nil {
		t.Fatal(err)
	}
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}

	var result redactor.RedactResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	wantIDs := map[string]bool{"iban": false, "credit-card": false, "high-entropy-token": false}
	for _, m := range result.Matches {
		wantIDs[m.PatternID] = true
	}
	for id, found := range wantIDs {
		if !found {
			t.Errorf("expected pattern %s not found among matches", id)
		}
	}
}

func TestContactInfo(t *testing.T) {
	out, code, err := runBinary("--file", filepath.Join(samplesDir(), "contact_info.txt"), "--json")
	if err != nil {
		t.Fatal(err)
	}
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}

	var result redactor.RedactResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	wantIDs := map[string]bool{"email": false, "ipv4-public": false, "us-ssn": false}
	for _, m := range result.Matches {
		wantIDs[m.PatternID] = true
	}
	for id, found := range wantIDs {
		if !found {
			t.Errorf("expected pattern %s not found among matches", id)
		}
	}
}

func TestNationalIDs(t *testing.T) {
	out, code, err := runBinary("--file", filepath.Join(samplesDir(), "national_ids.txt"), "--json")
	if err != nil {
		t.Fatal(err)
	}
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}

	var result redactor.RedactResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	found := false
	for _, m := range result.Matches {
		if m.PatternID == "dms-coordinate" {
			found = true
		}
	}
	if !found {
		t.Error("expected dms-coordinate pattern not found")
	}
}

func TestClean(t *testing.T) {
	out, code, err := runBinary("--file", filepath.Join(samplesDir(), "clean.txt"), "--json")
	if err != nil {
		t.Fatal(err)
	}
	if code != 0 {
		t.Errorf("exit code = %d, want 0 (no findings)", code)
	}

	var result redactor.RedactResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if len(result.Matches) != 0 {
		t.Errorf("expected 0 matches for clean text, got %d: %v", len(result.Matches), result.Matches)
	}
}

func TestJSONOutputValid(t *testing.T) {
	out, _, err := runBinaryWithStdin("Card on file: 4111 1111 1111 1111.", "--json")
	if err != nil {
		t.Fatal(err)
	}

	var result redactor.RedactResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON output: %v\nraw: %s", err, out)
	}

	if result.OriginalText == "" {
		t.Error("original_text is empty")
	}
	if result.SanitizedText == "" {
		t.Error("sanitized_text is empty")
	}
}

func TestStdinInput(t *testing.T) {
	out, code, err := runBinaryWithStdin("Reach me at alice@example.com.", "--json")
	if err != nil {
		t.Fatal(err)
	}
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}

	var result redactor.RedactResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if len(result.Matches) < 1 {
		t.Errorf("expected at least 1 match, got %d", len(result.Matches))
	}
}

func TestTextFlag(t *testing.T) {
	out, code, err := runBinary("--text", "Email me at test@example.com", "--json")
	if err != nil {
		t.Fatal(err)
	}
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}

	var result redactor.RedactResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	found := false
	for _, m := range result.Matches {
		if m.PatternID == "email" {
			found = true
		}
	}
	if !found {
		t.Error("email match not found")
	}
}

func TestRoundTrip(t *testing.T) {
	samples := []string{
		"financial_mixed.txt",
		"contact_info.txt",
		"national_ids.txt",
	}

	for _, sample := range samples {
		t.Run(sample, func(t *testing.T) {
			out, _, err := runBinary("--file", filepath.Join(samplesDir(), sample), "--json")
			if err != nil {
				t.Fatal(err)
			}

			var result redactor.RedactResult
			if err := json.Unmarshal([]byte(out), &result); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}

			restored := restorer.Restore(result.SanitizedText, result.Mappings)

			if restored != result.OriginalText {
				t.Errorf("round-trip failed:\noriginal:  %q\nrestored:  %q", result.OriginalText, restored)
			}
		})
	}
}

func TestNoInputError(t *testing.T) {
	cmd := exec.Command(testBinary)
	cmd.Dir = repoRoot()
	cmd.Stdin = nil
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	}
	_ = out

	if exitCode != 2 {
		t.Errorf("exit code = %d, want 2 (error)", exitCode)
	}
}
