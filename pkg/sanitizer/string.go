package sanitizer

import (
	"strings"

	"golang.org/x/text/width"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// KeepDigits drops every byte that is not an ASCII digit.
func KeepDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// NormalizeWidth folds full-width letters, digits and punctuation to their
// ASCII forms, so "１３８ＡＢ" becomes "138AB". Input typed with a CJK IME
// often arrives this way and would otherwise fail every ASCII-only pattern.
func NormalizeWidth(s string) string {
	return width.Fold.String(s)
}
