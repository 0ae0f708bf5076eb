package loader

import "testing"

func TestFoldFlags_IgnoreCase(t *testing.T) {
	got, err := foldFlags(`abc`, []string{"IGNORECASE"})
	if err != nil {
		t.Fatalf("foldFlags: %v", err)
	}
	if want := "(?i)abc"; got != want {
		t.Errorf("foldFlags = %q, want %q", got, want)
	}
}

func TestFoldFlags_MultipleFlagsOrderMatchesInput(t *testing.T) {
	got, err := foldFlags(`abc`, []string{"MULTILINE", "DOTALL"})
	if err != nil {
		t.Fatalf("foldFlags: %v", err)
	}
	if want := "(?ms)abc"; got != want {
		t.Errorf("foldFlags = %q, want %q", got, want)
	}
}

func TestFoldFlags_NoFlagsLeavesSourceUnchanged(t *testing.T) {
	got, err := foldFlags(`abc`, nil)
	if err != nil {
		t.Fatalf("foldFlags: %v", err)
	}
	if got != "abc" {
		t.Errorf("foldFlags = %q, want unchanged source", got)
	}
}

func TestFoldFlags_UnknownFlagErrors(t *testing.T) {
	if _, err := foldFlags(`abc`, []string{"BOGUS"}); err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
}

func TestFoldFlags_CaseInsensitiveFlagName(t *testing.T) {
	got, err := foldFlags(`abc`, []string{"ignorecase"})
	if err != nil {
		t.Fatalf("foldFlags: %v", err)
	}
	if want := "(?i)abc"; got != want {
		t.Errorf("foldFlags = %q, want %q", got, want)
	}
}

func TestStripVerbose_RemovesWhitespaceAndComments(t *testing.T) {
	source := `
		\d{3}  # area code
		-
		\d{4}  # local number
	`
	got := stripVerbose(source)
	if want := `\d{3}-\d{4}`; got != want {
		t.Errorf("stripVerbose = %q, want %q", got, want)
	}
}

func TestStripVerbose_PreservesWhitespaceInsideCharClass(t *testing.T) {
	source := `[ \t]+ # literal space or tab`
	got := stripVerbose(source)
	if want := `[ \t]+`; got != want {
		t.Errorf("stripVerbose = %q, want %q", got, want)
	}
}

func TestStripVerbose_PreservesEscapedWhitespace(t *testing.T) {
	source := `a\ b`
	got := stripVerbose(source)
	if want := `a\ b`; got != want {
		t.Errorf("stripVerbose = %q, want %q", got, want)
	}
}

func TestFoldFlags_VerboseStripsCommentsBeforeCompiling(t *testing.T) {
	got, err := foldFlags("a b # comment", []string{"VERBOSE"})
	if err != nil {
		t.Fatalf("foldFlags: %v", err)
	}
	if want := "ab"; got != want {
		t.Errorf("foldFlags = %q, want %q", got, want)
	}
}

func TestCompileOne_CompilesFoldedSource(t *testing.T) {
	folded, re, err := compileOne(`abc`, []string{"IGNORECASE"})
	if err != nil {
		t.Fatalf("compileOne: %v", err)
	}
	if folded != "(?i)abc" {
		t.Errorf("folded = %q, want %q", folded, "(?i)abc")
	}
	if !re.MatchString("ABC") {
		t.Error("expected case-insensitive match against ABC")
	}
}
