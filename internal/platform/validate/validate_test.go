// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "World Keeper", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "link", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeValidation, ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Min checks the numeric lower bound rule.
*/
func TestValidator_Min(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		isValid bool
	}{
		{"above", 5, true},
		{"equal", 1, true},
		{"below", 0, false},
		{"negative", -3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Min("current_chapter_number", tt.value, 1)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "").                         // Fails
		Required("link", "").                         // Fails
		OneOf("theme", "sepia", "light", "dark").     // Fails
		Custom("total_chapters", true, "Bad total").  // Fails
		MaxLen("description", "short", 10).           // Passes
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 4)
}

/*
TestFromOzzo verifies that ozzo-validation field errors become a sorted
VALIDATION_ERROR envelope.
*/
func TestFromOzzo(t *testing.T) {
	type payload struct {
		Theme    string
		FontSize string
	}
	input := payload{Theme: "sepia", FontSize: ""}

	err := validate.FromOzzo(validation.ValidateStruct(&input,
		validation.Field(&input.Theme, validation.In("light", "dark")),
		validation.Field(&input.FontSize, validation.Required),
	))

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeValidation, ae.Code)
	require.Len(t, ae.Details, 2)
	assert.Equal(t, "FontSize", ae.Details[0].Field)
	assert.Equal(t, "Theme", ae.Details[1].Field)

	assert.NoError(t, validate.FromOzzo(nil))
	assert.True(t, apperr.HasCode(validate.FromOzzo(errors.New("boom")), apperr.CodeInternal))
}
