// Package sanitizer provides the formatting half of strkit: pure helpers that
// turn raw user input into something safe to display or store.
//
// The helpers fall into two groups:
//
//   - Formatting – HideMobile masks the middle of a mainland mobile number,
//     FormatMoney groups digits in threes with commas.
//
//   - Normalisation – Trim, ToUpper, KeepDigits, NormalizeWidth and
//     NormalizePlate clean up pasted or IME-typed input before it reaches a
//     formatter or a validator.
//
// The higher-order Apply and Compose helpers chain them into pipelines:
//
//	mask := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.NormalizeWidth,
//	    sanitizer.HideMobile,
//	)
//
//	mask(" １３８１２３４５６７８") // "138****5678"
//
// # Error handling
//
// None of the helpers returns an error. Input that does not fit the expected
// shape is passed through unchanged (HideMobile) or reduced to whatever digits
// it contains (FormatMoney).
//
// # Money formatting
//
// FormatMoney keeps digits only. A decimal point or minus sign is dropped
// rather than reattached, so fractional and negative amounts lose that
// information:
//
//	sanitizer.FormatMoney(1234567)    // "1,234,567"
//	sanitizer.FormatMoney("-1000")    // "1,000"
//	sanitizer.FormatMoney(1234567.89) // "123,456,789"
//
// All helpers are stateless and safe for concurrent use.
package sanitizer
