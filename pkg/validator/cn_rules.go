package validator

// ValidPhone validates a mainland mobile number, see IsPhone.
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsPhone(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid 11-digit mobile number",
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidIDCard validates the format of an 18-character resident identity number.
func ValidIDCard(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsIDCard(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid 18-character ID card number",
			TranslationKey: "validation.id_card",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidVehicleNumber validates a licence plate, see IsVehicleNumber.
func ValidVehicleNumber(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsVehicleNumber(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid vehicle plate number",
			TranslationKey: "validation.vehicle_number",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NotEmptyString fails for empty and whitespace-only values.
func NotEmptyString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !IsEmptyString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        ErrFieldRequired.Error(),
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
