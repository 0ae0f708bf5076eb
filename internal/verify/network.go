package verify

import "strings"

// IPv4Public reports whether value is a public (globally routable) IPv4
// address, rejecting the private, loopback, link-local, documentation,
// multicast, and reserved ranges.
func IPv4Public(value string) bool {
	parts := strings.Split(value, ".")
	if len(parts) != 4 {
		return false
	}

	var octets [4]int
	for i, p := range parts {
		n := atoi(p)
		if n < 0 || n > 255 {
			return false
		}
		octets[i] = n
	}
	first, second, third := octets[0], octets[1], octets[2]

	switch {
	case first == 0:
		return false
	case first == 10:
		return false
	case first == 127:
		return false
	case first == 169 && second == 254:
		return false
	case first == 172 && second >= 16 && second <= 31:
		return false
	case first == 192 && second == 0 && third == 2:
		return false
	case first == 192 && second == 168:
		return false
	case first == 198 && second == 51 && third == 100:
		return false
	case first == 203 && second == 0 && third == 113:
		return false
	case first >= 224 && first <= 239:
		return false
	case first >= 240:
		return false
	}

	return true
}
