package verify

import "testing"

func TestCNNationalIDValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid check digit", "110000199001010013", true},
		{"wrong check digit", "110000199001010010", false},
		{"unrecognized province", "990000199001010013", false},
		{"wrong length", "11000019900101001", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CNNationalIDValid(tc.input); got != tc.want {
				t.Errorf("CNNationalIDValid(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestTWNationalIDValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid check digit", "A100000001", true},
		{"wrong check digit", "A100000000", false},
		{"letter I not issued", "I100000001", false},
		{"bad gender digit", "A300000001", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TWNationalIDValid(tc.input); got != tc.want {
				t.Errorf("TWNationalIDValid(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestKRBusinessRegistrationValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid check digit", "1000000009", true},
		{"wrong check digit", "1000000000", false},
		{"all same digit rejected", "1111111111", false},
		{"wrong length", "100000000", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KRBusinessRegistrationValid(tc.input); got != tc.want {
				t.Errorf("KRBusinessRegistrationValid(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestKRRRNValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid check digit", "9001011000006", true},
		{"wrong check digit", "900101-1234567", false},
		{"century digit out of range", "9001019000006", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KRRRNValid(tc.input); got != tc.want {
				t.Errorf("KRRRNValid(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestKRAlienRegistrationValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid foreigner century", "9001015000001", true},
		{"century digit out of range", "9001019000001", false},
		{"all same digit rejected", "5555555555555", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KRAlienRegistrationValid(tc.input); got != tc.want {
				t.Errorf("KRAlienRegistrationValid(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestKRCorporateRegistrationValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid check digit", "0000000000018", true},
		{"wrong check digit", "0000000000010", false},
		{"all same digit rejected", "1111111111111", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KRCorporateRegistrationValid(tc.input); got != tc.want {
				t.Errorf("KRCorporateRegistrationValid(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestJPMyNumberValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid check digit", "100000000005", true},
		{"wrong check digit", "100000000000", false},
		{"known placeholder sequence rejected", "123456789012", false},
		{"all same digit rejected", "222222222222", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := JPMyNumberValid(tc.input); got != tc.want {
				t.Errorf("JPMyNumberValid(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestNetherlandsBSNValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid 9-digit check", "100000009", true},
		{"wrong check digit", "100000000", false},
		{"8-digit form padded with wrong checksum", "10000000", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NetherlandsBSNValid(tc.input); got != tc.want {
				t.Errorf("NetherlandsBSNValid(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestPolandPESELValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid check digit", "00010100008", true},
		{"wrong check digit", "00010100000", false},
		{"month field out of every range", "00099100008", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PolandPESELValid(tc.input); got != tc.want {
				t.Errorf("PolandPESELValid(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestFranceINSEEValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid check digits", "100010000000063", true},
		{"wrong check digits", "100010000000000", false},
		{"bad sex digit", "300010000000063", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FranceINSEEValid(tc.input); got != tc.want {
				t.Errorf("FranceINSEEValid(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestBelgiumRRNValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid 1900s checksum form", "00010100074", true},
		{"wrong check digits", "00010100000", false},
		{"month out of range", "00013100074", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BelgiumRRNValid(tc.input); got != tc.want {
				t.Errorf("BelgiumRRNValid(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestFinlandHETUValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid check character", "010100-000E", true},
		{"wrong check character", "010100-000A", false},
		{"unrecognized century sign", "010100?000E", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FinlandHETUValid(tc.input); got != tc.want {
				t.Errorf("FinlandHETUValid(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestSpainDNIValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid control letter", "00000000T", true},
		{"wrong control letter", "00000000A", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SpainDNIValid(tc.input); got != tc.want {
				t.Errorf("SpainDNIValid(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestSpainNIEValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid control letter", "X0000000T", true},
		{"wrong control letter", "X0000000A", false},
		{"bad lead character", "A0000000T", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SpainNIEValid(tc.input); got != tc.want {
				t.Errorf("SpainNIEValid(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
