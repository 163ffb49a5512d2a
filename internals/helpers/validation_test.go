package helper

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationFieldErrors(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required,min=3"`
	}

	v := validator.New()
	err := v.Struct(payload{Email: "bukan-email", Name: "ab"})
	require.Error(t, err)

	fields := ValidationFieldErrors(err)
	assert.Contains(t, fields, "Email")
	assert.Contains(t, fields, "Name")
	assert.Equal(t, []string{"format email tidak valid"}, fields["Email"])
	assert.Equal(t, []string{"minimal 3 karakter"}, fields["Name"])
}

func TestValidationFieldErrors_NonValidatorError(t *testing.T) {
	fields := ValidationFieldErrors(errors.New("boom"))
	assert.Equal(t, []string{"Input tidak valid"}, fields["body"])
}
