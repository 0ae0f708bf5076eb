package verify

import (
	"math/big"
	"strings"
	"unicode"
)

// IBANMod97 verifies an IBAN's check digits via the ISO 7064 mod-97
// algorithm: move the first 4 characters to the end, remap letters to
// A=10..Z=35, and check the resulting number is congruent to 1 mod 97.
func IBANMod97(value string) bool {
	clean := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, strings.ToUpper(value))

	if len(clean) < 5 {
		return false
	}

	rearranged := clean[4:] + clean[:4]

	var num strings.Builder
	for _, r := range rearranged {
		switch {
		case unicode.IsDigit(r):
			num.WriteRune(r)
		case unicode.IsUpper(r):
			num.WriteString(big.NewInt(int64(r-'A'+10)).String())
		default:
			return false
		}
	}

	n, ok := new(big.Int).SetString(num.String(), 10)
	if !ok {
		return false
	}

	mod := new(big.Int).Mod(n, big.NewInt(97))
	return mod.Int64() == 1
}
