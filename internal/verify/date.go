package verify

import "regexp"

var daysInMonth = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// isValidDate validates a calendar date, tightening the February bound
// for non-leap years.
func isValidDate(year, month, day int) bool {
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}
	if day > daysInMonth[month] {
		return false
	}
	if month == 2 && day == 29 {
		leap := (year%4 == 0 && year%100 != 0) || year%400 == 0
		if !leap {
			return false
		}
	}
	return true
}

var dmsPattern = regexp.MustCompile(`^(\d{1,3})°\s*(\d{1,2})′\s*(\d{1,2}(?:\.\d+)?)″\s*([NSEWnsew])`)

// DMSCoordinate verifies a degrees-minutes-seconds coordinate string
// (e.g. "37°46′29.7″N"): minutes/seconds in range, and degrees bounded by
// 90 for N/S or 180 for E/W.
func DMSCoordinate(value string) bool {
	m := dmsPattern.FindStringSubmatch(value)
	if m == nil {
		return false
	}

	degrees := atoi(m[1])
	minutes := atoi(m[2])
	seconds := atof(m[3])
	direction := toUpperByte(m[4][0])

	if minutes > 59 || seconds >= 60 {
		return false
	}

	switch direction {
	case 'N', 'S':
		if degrees > 90 {
			return false
		}
	case 'E', 'W':
		if degrees > 180 {
			return false
		}
	}
	return true
}

func atof(s string) float64 {
	var whole, frac float64
	var fracDiv float64 = 1
	seenDot := false
	for _, r := range s {
		if r == '.' {
			seenDot = true
			continue
		}
		if r < '0' || r > '9' {
			return -1
		}
		d := float64(r - '0')
		if !seenDot {
			whole = whole*10 + d
		} else {
			fracDiv *= 10
			frac = frac*10 + d
		}
	}
	return whole + frac/fracDiv
}

func toUpperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
