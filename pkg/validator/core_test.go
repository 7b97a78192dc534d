package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strkit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "phone", Message: "invalid"})
		assert.Equal(t, "validation failed: phone: invalid", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "phone", Message: "invalid"})
		errs.Add(validator.ValidationError{Field: "plate", Message: "too short"})
		assert.Equal(t, "validation failed: phone: invalid; plate: too short", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	assert.True(t, errs.IsEmpty())

	errs.Add(validator.ValidationError{Field: "plate", Message: "required"})
	errs.Add(validator.ValidationError{Field: "phone", Message: "invalid"})
	errs.Add(validator.ValidationError{Field: "plate", Message: "invalid", TranslationKey: "validation.vehicle_number"})

	assert.False(t, errs.IsEmpty())
	assert.True(t, errs.Has("plate"))
	assert.False(t, errs.Has("id_card"))
	assert.Equal(t, []string{"required", "invalid"}, errs.Get("plate"))
	assert.Empty(t, errs.Get("id_card"))
	assert.Equal(t, []string{"plate", "phone"}, errs.Fields())

	plate := errs.GetErrors("plate")
	require.Len(t, plate, 2)
	assert.Equal(t, "validation.vehicle_number", plate[1].TranslationKey)
}

func TestApply(t *testing.T) {
	t.Run("no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Rule{Check: func() bool { return true }},
			validator.Rule{Check: func() bool { return true }},
		)
		assert.NoError(t, err)
	})

	t.Run("collects failures in order", func(t *testing.T) {
		err := validator.Apply(
			validator.Rule{Check: func() bool { return false }, Error: validator.ValidationError{Field: "a"}},
			validator.Rule{Check: func() bool { return true }, Error: validator.ValidationError{Field: "b"}},
			validator.Rule{Check: func() bool { return false }, Error: validator.ValidationError{Field: "c"}},
		)
		require.Error(t, err)
		assert.Equal(t, []string{"a", "c"}, validator.ExtractValidationErrors(err).Fields())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("unrelated error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("wrapped validation error", func(t *testing.T) {
		err := fmt.Errorf("register user: %w", validator.Apply(validator.ValidPhone("phone", "123")))

		assert.True(t, validator.IsValidationError(err))
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "phone", verrs[0].Field)
	})
}
