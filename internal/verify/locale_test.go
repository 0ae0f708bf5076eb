package verify

import "testing"

func TestContainsLetter(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"has a letter", "abc123", true},
		{"all digits", "123456", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ContainsLetter(tc.input); got != tc.want {
				t.Errorf("ContainsLetter(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestKoreanZipcodeValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"plausible non-round code", "13579", true},
		{"all same digit rejected", "11111", false},
		{"ascending sequential rejected", "12345", false},
		{"round number rejected", "10000", false},
		{"wrong length", "1357", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KoreanZipcodeValid(tc.input); got != tc.want {
				t.Errorf("KoreanZipcodeValid(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestUSZipcodeValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"plausible 5-digit code", "13579", true},
		{"plausible ZIP+4", "135791234", true},
		{"descending sequential rejected", "54321", false},
		{"round number rejected", "20000", false},
		{"wrong length", "1357", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := USZipcodeValid(tc.input); got != tc.want {
				t.Errorf("USZipcodeValid(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestNotRepeatingPattern(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"short string always passes", "ab", true},
		{"ordinary varied string", "hunter2077", true},
		{"all same byte rejected", "aaaaaaaa", false},
		{"sequential digit run rejected", "12345678", false},
		{"two-char block tiled rejected", "abababab", false},
		{"three-char block tiled rejected", "abcabcabc", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NotRepeatingPattern(tc.input); got != tc.want {
				t.Errorf("NotRepeatingPattern(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
