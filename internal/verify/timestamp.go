package verify

// Unix timestamp bounds used to recognize digit strings that are really
// dates rather than account/ID numbers.
const (
	unixSecMin = 1000000000
	unixSecMax = 9999999999

	unixMilliMin = 1000000000000
	unixMilliMax = 9999999999999
)

// NotTimestamp reports whether value does NOT look like a timestamp: a
// 10-digit Unix-seconds value, a 13-digit Unix-milliseconds value, or a
// 14-digit compact YYYYMMDDHHMMSS datetime all return false.
func NotTimestamp(value string) bool {
	digits := digitsOnly(value)
	if digits == "" {
		return true
	}

	switch len(digits) {
	case 10:
		if n := atoiN64(digits); n >= unixSecMin && n <= unixSecMax {
			return false
		}
	case 13:
		if n := atoiN64(digits); n >= unixMilliMin && n <= unixMilliMax {
			return false
		}
	case 14:
		if looksLikeCompactDatetime(digits) {
			return false
		}
	}
	return true
}

func looksLikeCompactDatetime(digits string) bool {
	if len(digits) < 14 {
		return false
	}
	year := atoi(digits[0:4])
	month := atoi(digits[4:6])
	day := atoi(digits[6:8])
	hour := atoi(digits[8:10])
	minute := atoi(digits[10:12])
	second := atoi(digits[12:14])

	return year >= 1900 && year <= 2099 &&
		month >= 1 && month <= 12 &&
		day >= 1 && day <= 31 &&
		hour >= 0 && hour <= 23 &&
		minute >= 0 && minute <= 59 &&
		second >= 0 && second <= 59
}

func looksLikeCompactDate(digits string) bool {
	if len(digits) < 8 {
		return false
	}
	year := atoi(digits[0:4])
	month := atoi(digits[4:6])
	day := atoi(digits[6:8])
	return year >= 1900 && year <= 2099 && month >= 1 && month <= 12 && day >= 1 && day <= 31
}

// atoiN64 parses a decimal digit string (up to 13 digits here) into
// int64, wide enough for Unix-milliseconds timestamps.
func atoiN64(s string) int64 {
	var n int64
	for _, r := range s {
		if r < '0' || r > '9' {
			return -1
		}
		n = n*10 + int64(r-'0')
	}
	return n
}

// koreanBankPrefixes lists common Korean bank account number prefixes
// (Kookmin, Woori, Nonghyup, Kakao, K Bank/Toss, among others).
var koreanBankPrefixes = []string{"110", "120", "150", "190", "830", "1002", "301", "3333", "100"}

func hasKoreanBankPrefix(digits string) bool {
	for _, p := range koreanBankPrefixes {
		if len(digits) >= len(p) && digits[:len(p)] == p {
			return true
		}
	}
	return false
}

// KoreanBankAccountValid rejects digit strings that are really
// timestamps. Accounts carrying a recognized bank prefix are held to a
// narrow current-era rejection band (avoids false negatives on real
// 10-digit account numbers that happen to fall in the general Unix
// range); unprefixed numbers use the general timestamp bands plus a
// long-run sequential-digit check.
func KoreanBankAccountValid(value string) bool {
	digits := digitsOnly(value)
	if digits == "" {
		return false
	}

	prefixed := hasKoreanBankPrefix(digits)

	if prefixed {
		if len(digits) == 10 {
			if n := atoiN64(digits); n >= 1600000000 && n <= 1800000000 {
				return false
			}
		}
		return true
	}

	switch len(digits) {
	case 10:
		if n := atoiN64(digits); n >= unixSecMin && n <= unixSecMax {
			return false
		}
	case 13:
		if n := atoiN64(digits); n >= unixMilliMin && n <= unixMilliMax {
			return false
		}
	case 14:
		if looksLikeCompactDate(digits) {
			return false
		}
	}

	if len(digits) >= 10 {
		if maxSequentialRun(digits) >= 6 {
			return false
		}
	}

	return true
}

func maxSequentialRun(digits string) int {
	run, best := 0, 0
	for i := 1; i < len(digits); i++ {
		if digits[i] == digits[i-1]+1 {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}

// GenericNumberNotTimestamp is a looser cousin of NotTimestamp for
// generic numeric patterns without a known prefix: values written with
// separators (hyphens, spaces, slashes) are presumed to be formatted
// account/ID numbers and only rejected for an obvious embedded compact
// date; unseparated values fall back to the strict timestamp bands.
func GenericNumberNotTimestamp(value string) bool {
	hasSeparators := containsAny(value, "- /")

	digits := digitsOnly(value)
	if digits == "" {
		return true
	}

	if hasSeparators {
		if len(digits) >= 14 && looksLikeCompactDate(digits) {
			return false
		}
		return true
	}

	switch {
	case len(digits) == 10:
		if n := atoiN64(digits); n >= unixSecMin && n <= unixSecMax {
			return false
		}
	case len(digits) == 13:
		if n := atoiN64(digits); n >= unixMilliMin && n <= unixMilliMax {
			return false
		}
	case len(digits) >= 14:
		if looksLikeCompactDate(digits) {
			return false
		}
	}
	return true
}

func containsAny(value, chars string) bool {
	for _, r := range value {
		for _, c := range chars {
			if r == c {
				return true
			}
		}
	}
	return false
}
