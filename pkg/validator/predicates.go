package validator

import (
	"strings"
	"unicode"
)

// IsPhone reports whether s is a mainland mobile number: eleven ASCII digits,
// starting with 1, second digit 3 through 9.
func IsPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// IsIDCard reports whether s has the shape of an 18-character resident
// identity number. Only structure is checked: the checksum character is not
// verified and impossible dates such as 19490230 still pass.
func IsIDCard(s string) bool {
	return idCardRegex.MatchString(s)
}

// IsVehicleNumber reports whether s is a standard licence plate: a province
// ideograph (U+4E00..U+9FA5), an uppercase letter, then five characters from
// [A-Z_0-9]. Lowercase letters are rejected; run input through
// sanitizer.NormalizePlate first when it comes from a person.
func IsVehicleNumber(s string) bool {
	return vehicleNumberRegex.MatchString(s)
}

// IsEmptyString reports whether s is empty or whitespace only. Whitespace is
// the set JavaScript's String.prototype.trim removes: ASCII tab, line feed,
// vertical tab, form feed and carriage return, the line and paragraph
// separators, a byte order mark, and every Zs space (U+3000 ideographic space
// included). U+0085 is not whitespace.
func IsEmptyString(s string) bool {
	return strings.TrimFunc(s, isBlankRune) == ""
}

func isBlankRune(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}
