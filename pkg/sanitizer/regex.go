package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// 3+4+4 mainland mobile number; the middle group is the one that gets masked
	mobileRegex = regexp.MustCompile(`^(\d{3})\d{4}(\d{4})$`)

	nonDigitRegex = regexp.MustCompile(`\D`)

	// Separators people type into plates: spaces, hyphens, middle dots
	plateSeparatorRegex = regexp.MustCompile(`[\s\-·•]+`)
)
