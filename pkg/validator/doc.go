// Package validator provides structural format checks for mainland-China
// identifiers (mobile numbers, resident ID numbers, vehicle plates) plus a
// blank-string check, each in two forms.
//
// The predicates IsPhone, IsIDCard, IsVehicleNumber and IsEmptyString return a
// plain bool and never fail. The Rule constructors ValidPhone, ValidIDCard,
// ValidVehicleNumber and NotEmptyString wrap the same checks together with
// translation-friendly error metadata, and are evaluated with Apply, which
// aggregates failures into a ValidationErrors slice that satisfies error.
//
// # Usage
//
//	if validator.IsPhone(input) {
//	    // ...
//	}
//
//	err := validator.Apply(
//	    validator.NotEmptyString("name", name),
//	    validator.ValidPhone("phone", phone),
//	    validator.ValidIDCard("id_card", idCard),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, e := range verrs {
//	        // e.TranslationKey, e.TranslationValues
//	    }
//	}
//
// # Structural checks only
//
// None of the checks look beyond character classes and lengths. ID numbers
// are not checksummed and their dates are not checked against a calendar;
// plates are not checked against the list of real province prefixes.
//
// All patterns are compiled once at package initialisation, so every helper
// is allocation-light and safe for concurrent use.
package validator
