package verify

// Weighted-digit checksum verifiers for national ID schemes that sum
// digit*weight products under some modulus. Each function trusts the
// caller's regex for gross shape and focuses on the checksum plus any
// date-of-birth component the scheme encodes.

var cnProvinces = map[string]bool{
	"11": true, "12": true, "13": true, "14": true, "15": true,
	"21": true, "22": true, "23": true,
	"31": true, "32": true, "33": true, "34": true, "35": true, "36": true, "37": true,
	"41": true, "42": true, "43": true, "44": true, "45": true, "46": true,
	"50": true, "51": true, "52": true, "53": true, "54": true,
	"61": true, "62": true, "63": true, "64": true, "65": true,
	"71": true,
	"81": true, "82": true,
	"91": true,
}

var cnWeights = [17]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}
var cnCheckDigits = [11]byte{'1', '0', 'X', '9', '8', '7', '6', '5', '4', '3', '2'}

// CNNationalIDValid verifies an 18-character Chinese National ID: a
// recognized province prefix, a valid embedded birth date, and a
// weighted mod-11 check digit (with 'X' standing for 10).
func CNNationalIDValid(value string) bool {
	id := upperNoSpaces(value)
	if len(id) != 18 {
		return false
	}
	if !cnProvinces[id[:2]] {
		return false
	}

	year := atoi(id[6:10])
	month := atoi(id[10:12])
	day := atoi(id[12:14])
	if year < 1900 || year > 2100 || !isValidDate(year, month, day) {
		return false
	}

	total := 0
	for i := 0; i < 17; i++ {
		d := int(id[i] - '0')
		if d < 0 || d > 9 {
			return false
		}
		total += d * cnWeights[i]
	}
	return id[17] == cnCheckDigits[total%11]
}

// TWNationalIDValid verifies a Taiwan National ID (1 letter + 9 digits):
// the letter maps to a 2-digit birthplace code whose digits, plus the
// remaining 9 digits under weights [8..1,1], sum to a multiple of 10.
func TWNationalIDValid(value string) bool {
	id := upperNoSpaces(value)
	if len(id) != 10 {
		return false
	}
	letter := id[0]
	if letter < 'A' || letter > 'Z' {
		return false
	}
	if letter == 'I' || letter == 'O' || letter == 'W' {
		return false
	}
	for i := 1; i < 10; i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	gender := int(id[1] - '0')
	if gender != 1 && gender != 2 {
		return false
	}

	code := int(letter-'A') + 10
	total := (code/10)*1 + (code%10)*9

	weights := [8]int{8, 7, 6, 5, 4, 3, 2, 1}
	for i, w := range weights {
		total += int(id[i+1]-'0') * w
	}
	total += int(id[9] - '0')

	return total%10 == 0
}

// KRBusinessRegistrationValid verifies a Korean 10-digit business
// registration number with a weighted checksum that adds a carry term
// from the 9th digit.
func KRBusinessRegistrationValid(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != 10 {
		return false
	}
	if allSameByte(digits) {
		return false
	}

	weights := [9]int{1, 3, 7, 1, 3, 7, 1, 3, 5}
	total := 0
	for i := 0; i < 9; i++ {
		d := int(digits[i] - '0')
		total += d * weights[i]
		if i == 8 {
			total += (d * 5) / 10
		}
	}
	check := (10 - (total % 10)) % 10
	return int(digits[9]-'0') == check
}

// KRRRNValid verifies a Korean Resident Registration Number: embedded
// birth date via the century/gender digit, plus a weighted mod-11 check
// digit.
func KRRRNValid(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != 13 {
		return false
	}

	yy := atoi(digits[0:2])
	month := atoi(digits[2:4])
	day := atoi(digits[4:6])
	century := int(digits[6] - '0')
	if century < 1 || century > 4 {
		return false
	}

	year := 1900 + yy
	if century == 3 || century == 4 {
		year = 2000 + yy
	}
	if !isValidDate(year, month, day) {
		return false
	}
	if allSameByte(digits) {
		return false
	}

	weights := [12]int{2, 3, 4, 5, 6, 7, 8, 9, 2, 3, 4, 5}
	total := 0
	for i := 0; i < 12; i++ {
		total += int(digits[i]-'0') * weights[i]
	}
	check := (11 - (total % 11)) % 10
	return int(digits[12]-'0') == check
}

// KRAlienRegistrationValid verifies a Korean Alien Registration Number:
// same shape as KRRRNValid but with the foreigner century/gender range
// (5-8) and no checksum digit.
func KRAlienRegistrationValid(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != 13 {
		return false
	}

	yy := atoi(digits[0:2])
	month := atoi(digits[2:4])
	day := atoi(digits[4:6])
	century := int(digits[6] - '0')
	if century < 5 || century > 8 {
		return false
	}

	year := 1900 + yy
	if century == 7 || century == 8 {
		year = 2000 + yy
	}
	if !isValidDate(year, month, day) {
		return false
	}
	return !allSameByte(digits)
}

// KRCorporateRegistrationValid verifies a Korean 13-digit corporate
// registration number via an alternating-weight Luhn-style checksum.
func KRCorporateRegistrationValid(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != 13 {
		return false
	}
	if allSameByte(digits) {
		return false
	}

	weights := [12]int{1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2}
	total := 0
	for i := 0; i < 12; i++ {
		p := int(digits[i]-'0') * weights[i]
		if p > 9 {
			p -= 9
		}
		total += p
	}
	check := (10 - (total % 10)) % 10
	return int(digits[12]-'0') == check
}

// JPMyNumberValid verifies a Japanese My Number (12 digits) via its
// weighted mod-11 check digit, rejecting all-same and two known
// sequential test patterns.
func JPMyNumberValid(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != 12 {
		return false
	}
	if allSameByte(digits) {
		return false
	}
	if digits == "123456789012" || digits == "012345678901" {
		return false
	}

	weights := [11]int{6, 5, 4, 3, 2, 7, 6, 5, 4, 3, 2}
	total := 0
	for i := 0; i < 11; i++ {
		total += int(digits[i]-'0') * weights[i]
	}
	rem := total % 11
	expected := 0
	if rem > 1 {
		expected = 11 - rem
	}
	return int(digits[11]-'0') == expected
}

// NetherlandsBSNValid verifies a Dutch BSN via the 11-proof: digits
// (left-padded to 9) weighted [9..2,-1] must sum to a multiple of 11.
func NetherlandsBSNValid(value string) bool {
	digits := digitsOnly(value)
	switch len(digits) {
	case 8:
		digits = "0" + digits
	case 9:
	default:
		return false
	}
	if allSameByte(digits) {
		return false
	}

	weights := [9]int{9, 8, 7, 6, 5, 4, 3, 2, -1}
	total := 0
	for i := 0; i < 9; i++ {
		total += int(digits[i]-'0') * weights[i]
	}
	return total%11 == 0
}

// PolandPESELValid verifies an 11-digit PESEL: the month field encodes
// both month and century (1900s..2200s), and a weighted mod-10 checksum
// guards the serial.
func PolandPESELValid(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != 11 {
		return false
	}
	if allSameByte(digits) {
		return false
	}

	yy := atoi(digits[0:2])
	mm := atoi(digits[2:4])
	dd := atoi(digits[4:6])

	var year, month int
	switch {
	case mm >= 1 && mm <= 12:
		year, month = 1900+yy, mm
	case mm >= 21 && mm <= 32:
		year, month = 2000+yy, mm-20
	case mm >= 41 && mm <= 52:
		year, month = 2100+yy, mm-40
	case mm >= 61 && mm <= 72:
		year, month = 2200+yy, mm-60
	case mm >= 81 && mm <= 92:
		year, month = 1800+yy, mm-80
	default:
		return false
	}
	if !isValidDate(year, month, dd) {
		return false
	}

	weights := [10]int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3}
	total := 0
	for i := 0; i < 10; i++ {
		total += int(digits[i]-'0') * weights[i]
	}
	check := (10 - (total % 10)) % 10
	return int(digits[10]-'0') == check
}

// FranceINSEEValid verifies a 15-digit French INSEE/NIR number, remapping
// the Corsican department codes 2A/2B to 19/18 before the mod-97 checksum.
func FranceINSEEValid(value string) bool {
	cleaned := noSpaces(value)
	if len(cleaned) != 15 {
		return false
	}

	dept := upperNoSpaces(cleaned[5:7])
	var calc string
	switch dept {
	case "2A":
		calc = cleaned[:5] + "19" + cleaned[7:]
	case "2B":
		calc = cleaned[:5] + "18" + cleaned[7:]
	default:
		calc = cleaned
	}

	for _, r := range calc {
		if r < '0' || r > '9' {
			return false
		}
	}

	sex := int(calc[0] - '0')
	if sex != 1 && sex != 2 {
		return false
	}
	month := atoi(calc[3:5])
	if month < 1 || month > 12 {
		return false
	}

	base := atoi(calc[:13])
	expected := 97 - (base % 97)
	actual := atoi(calc[13:15])
	return actual == expected
}

// BelgiumRRNValid verifies an 11-digit Belgian national register number,
// trying both the 1900s and 2000s mod-97 checksum forms since the
// century isn't otherwise encoded.
func BelgiumRRNValid(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != 11 {
		return false
	}

	mm := atoi(digits[2:4])
	dd := atoi(digits[4:6])
	if mm < 1 || mm > 12 || dd < 1 || dd > 31 {
		return false
	}

	base9 := atoi(digits[:9])
	check := atoi(digits[9:11])

	if check == 97-(base9%97) {
		return true
	}

	base9_2000 := atoi("2" + digits[:9])
	return check == 97-(base9_2000%97)
}

var finlandCheckSeq = "0123456789ABCDEFHJKLMNPRSTUVWXY"

// FinlandHETUValid verifies a Finnish HETU: embedded birth date via a
// century sign (+, -, A), and a base-31 check character over DDMMYY+ZZZ.
func FinlandHETUValid(value string) bool {
	hetu := upperNoSpaces(value)
	if len(hetu) != 11 {
		return false
	}

	dd := atoi(hetu[0:2])
	mm := atoi(hetu[2:4])
	yy := atoi(hetu[4:6])
	century := hetu[6]
	individual := hetu[7:10]
	checkChar := hetu[10]

	for _, r := range individual {
		if r < '0' || r > '9' {
			return false
		}
	}

	var year int
	switch century {
	case '+':
		year = 1800 + yy
	case '-':
		year = 1900 + yy
	case 'A':
		year = 2000 + yy
	default:
		return false
	}
	if !isValidDate(year, mm, dd) {
		return false
	}

	numberStr := hetu[0:6] + individual
	number := atoi(numberStr)
	expected := finlandCheckSeq[number%31]
	return checkChar == byte(expected)
}

var spainLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

// SpainDNIValid verifies a Spanish DNI: 8 digits whose value mod 23
// indexes a fixed 23-letter control sequence.
func SpainDNIValid(value string) bool {
	dni := upperNoSpaces(value)
	if len(dni) != 9 {
		return false
	}
	for _, r := range dni[:8] {
		if r < '0' || r > '9' {
			return false
		}
	}
	if dni[8] < 'A' || dni[8] > 'Z' {
		return false
	}

	n := atoi(dni[:8])
	return dni[8] == spainLetters[n%23]
}

// SpainNIEValid verifies a Spanish NIE: the leading X/Y/Z maps to 0/1/2,
// then the same mod-23 control-letter check as a DNI.
func SpainNIEValid(value string) bool {
	nie := upperNoSpaces(value)
	if len(nie) != 9 {
		return false
	}
	lead := nie[0]
	if lead != 'X' && lead != 'Y' && lead != 'Z' {
		return false
	}
	for _, r := range nie[1:8] {
		if r < '0' || r > '9' {
			return false
		}
	}
	if nie[8] < 'A' || nie[8] > 'Z' {
		return false
	}

	replacement := byte('0' + (lead - 'X'))
	n := atoi(string(replacement) + nie[1:8])
	return nie[8] == spainLetters[n%23]
}

func upperNoSpaces(s string) string {
	buf := make([]byte, 0, len(s))
	for _, r := range s {
		if r == ' ' {
			continue
		}
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		buf = append(buf, byte(r))
	}
	return string(buf)
}

func noSpaces(s string) string {
	buf := make([]byte, 0, len(s))
	for _, r := range s {
		if r == ' ' {
			continue
		}
		buf = append(buf, byte(r))
	}
	return string(buf)
}
