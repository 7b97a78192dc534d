package sanitizer

import (
	"reflect"
	"strconv"
	"strings"
)

// Money is the set of values FormatMoney accepts.
type Money interface {
	~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

const mobileMask = "****"

// HideMobile replaces the middle four digits of an 11-digit mobile number
// with "****" ("13812345678" -> "138****5678"). Anything that is not exactly
// eleven ASCII digits comes back unchanged, which also makes the function
// idempotent on its own output.
func HideMobile(mobile string) string {
	return mobileRegex.ReplaceAllString(mobile, "${1}"+mobileMask+"${2}")
}

// FormatMoney groups digits in threes with commas: 1234567 -> "1,234,567".
//
// Only digits survive. Sign, decimal point and any other noise are stripped
// before grouping, so FormatMoney(1234567.89) keeps the digits "123456789"
// and returns "123,456,789". Callers that need fractional amounts must split
// them off first. Leading zeros are kept as typed.
func FormatMoney[T Money](value T) string {
	digits := KeepDigits(moneyString(value))
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + (len(digits)-1)/3)

	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

// moneyString renders value the way it would be printed, never in exponent
// form, so no exponent digits leak into the grouped result.
func moneyString[T Money](value T) string {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	default:
		return ""
	}
}

// NormalizePlate canonicalises free-form plate input before validation:
// full-width characters are folded, separators dropped and letters
// upper-cased, so " 京a·１２３４５ " becomes "京A12345".
func NormalizePlate(plate string) string {
	plate = NormalizeWidth(strings.TrimSpace(plate))
	plate = plateSeparatorRegex.ReplaceAllString(plate, "")
	return strings.ToUpper(plate)
}
