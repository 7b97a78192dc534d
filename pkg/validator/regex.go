package validator

import "regexp"

var (
	// 11 digits, leading 1, second digit 3-9
	phoneRegex = regexp.MustCompile(`^1[3-9]\d{9}$`)

	// region(6) year(4) month(2) day(2) sequence(3) checksum(1)
	idCardRegex = regexp.MustCompile(`^[1-9]\d{5}(18|19|20)\d{2}(0[1-9]|1[0-2])(0[1-9]|[12]\d|3[01])\d{3}[\dxX]$`)

	// province ideograph, issuing-authority letter, then five serial characters;
	// the second branch (last character a digit) is a subset of the first
	vehicleNumberRegex = regexp.MustCompile(`^[\x{4e00}-\x{9fa5}][A-Z][A-Z_0-9]{5}$|^[\x{4e00}-\x{9fa5}][A-Z][A-Z_0-9]{4}\d$`)
)
