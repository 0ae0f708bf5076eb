package verify

var validPANEntityTypes = map[byte]bool{
	'A': true, 'B': true, 'C': true, 'F': true, 'G': true,
	'H': true, 'J': true, 'K': true, 'L': true, 'P': true, 'T': true,
}

// IndiaPANValid verifies the format of an India Permanent Account Number
// (5 letters + 4 digits + 1 letter): the 4th letter must be a recognized
// entity-type code, and obvious placeholder/test patterns are rejected.
func IndiaPANValid(value string) bool {
	pan := upperNoSpaces(value)
	if len(pan) != 10 {
		return false
	}

	for _, r := range pan[:5] {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	for _, r := range pan[5:9] {
		if r < '0' || r > '9' {
			return false
		}
	}
	if pan[9] < 'A' || pan[9] > 'Z' {
		return false
	}

	if !validPANEntityTypes[pan[3]] {
		return false
	}

	switch pan[:5] {
	case "AAAAA", "ABCDE", "XXXXX", "ZZZZZ":
		return false
	}

	return true
}
