package verify

import (
	"unicode"

	"github.com/svenplb/aegis-core/internal/refdata"
)

// ContainsLetter reports whether value has at least one alphabetic rune.
// Used to reject all-numeric matches from patterns that expect a mixed
// alphanumeric identifier.
func ContainsLetter(value string) bool {
	for _, r := range value {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// KoreanZipcodeValid verifies a 5-digit Korean postal code. It prefers an
// exact/dash-stripped match against the kr_zipcodes.csv reference dataset
// when one is loaded, and otherwise falls back to rejecting sequential,
// all-same, and round-number (multiple of 10000) digit strings.
func KoreanZipcodeValid(value string) bool {
	known := refdata.Default().Lookup("kr_zipcodes.csv")
	if len(known) > 0 {
		if _, ok := known[value]; ok {
			return true
		}
		_, ok := known[digitsOnly(value)]
		return ok
	}

	digits := digitsOnly(value)
	if len(digits) != 5 {
		return false
	}
	if isSequential(digits) || allSameByte(digits) {
		return false
	}
	if n := atoiN64(digits); n%10000 == 0 {
		return false
	}
	return true
}

// USZipcodeValid verifies a 5-digit or ZIP+4 US postal code, preferring
// the us_zipcodes.csv reference dataset (matched on the base 5 digits)
// and otherwise falling back to the same sequential/round-number
// heuristics as KoreanZipcodeValid.
func USZipcodeValid(value string) bool {
	digits := digitsOnly(value)

	known := refdata.Default().Lookup("us_zipcodes.csv")
	if len(known) > 0 {
		switch len(digits) {
		case 5:
			_, ok := known[digits]
			return ok
		case 9:
			_, ok := known[digits[:5]]
			return ok
		}
	}

	if len(digits) != 5 && len(digits) != 9 {
		return false
	}
	base := digits[:5]
	if isSequential(base) || allSameByte(base) {
		return false
	}
	if n := atoiN64(base); n%10000 == 0 {
		return false
	}
	return true
}

func isSequential(digits string) bool {
	if len(digits) < 2 {
		return true
	}
	up, down := true, true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[i-1]+1 {
			up = false
		}
		if digits[i] != digits[i-1]-1 {
			down = false
		}
	}
	return up || down
}

// NotRepeatingPattern rejects strings shorter than 4 characters, all-same
// strings, sequential ascending/descending digit runs, and 2- or 3-
// character repeating blocks that fully (or near-fully, for a partial
// trailing block) tile the value.
func NotRepeatingPattern(value string) bool {
	if len(value) < 4 {
		return true
	}
	if allSameByte(value) {
		return false
	}

	digits := digitsOnly(value)
	if len(digits) >= 4 && isSequential(digits) {
		return false
	}

	if tilesRepeatingBlock(value, 2) || tilesRepeatingBlock(value, 3) {
		return false
	}
	return true
}

func tilesRepeatingBlock(value string, blockLen int) bool {
	if len(value) < blockLen*2 {
		return false
	}
	block := value[:blockLen]
	reps := len(value) / blockLen
	tiled := ""
	for i := 0; i < reps; i++ {
		tiled += block
	}
	if value[:len(tiled)] != tiled {
		return false
	}
	remainder := len(value) % blockLen
	if remainder == 0 {
		return true
	}
	return value[len(value)-remainder:] == block[:remainder]
}
