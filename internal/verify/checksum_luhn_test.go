package verify

import "testing"

func TestLuhn(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"visa test number", "4111111111111111", true},
		{"off by one check digit", "4111111111111112", false},
		{"no digits", "abc", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Luhn(tc.input); got != tc.want {
				t.Errorf("Luhn(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestCreditCardBINValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"visa", "4111111111111111", true},
		{"visa formatted with dashes", "4111-1111-1111-1111", true},
		{"unassigned BIN never issued", "9999999999999999", false},
		{"visa BIN but broken checksum", "4111111111111112", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CreditCardBINValid(tc.input); got != tc.want {
				t.Errorf("CreditCardBINValid(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestSwedenPersonnummerValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid 10-digit form", "0001010016", true},
		{"broken checksum digit", "0001010017", false},
		{"month out of range", "0001330016", false},
		{"wrong length", "000101001", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SwedenPersonnummerValid(tc.input); got != tc.want {
				t.Errorf("SwedenPersonnummerValid(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
