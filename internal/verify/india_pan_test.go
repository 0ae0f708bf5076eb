package verify

import "testing"

func TestIndiaPANValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid individual PAN", "AAAPE1234F", true},
		{"unrecognized entity type letter", "AAAZE1234F", false},
		{"known placeholder pattern", "AAAAA1234A", false},
		{"wrong length", "AAAPE1234", false},
		{"digits in the letter block", "AAA1E1234F", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IndiaPANValid(tc.input); got != tc.want {
				t.Errorf("IndiaPANValid(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
