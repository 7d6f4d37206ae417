package handlers

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingErrorMessage_NonValidatorError(t *testing.T) {
	err := errors.New("invalid character 'n' looking for beginning of value")

	msg := bindingErrorMessage(err)

	assert.Equal(t, "Invalid request format: invalid character 'n' looking for beginning of value", msg)
}

func TestBindingErrorMessage_FieldErrors(t *testing.T) {
	type form struct {
		StaffName       string `validate:"required"`
		DurationMinutes int    `validate:"min=1"`
		PaymentMethod   string `validate:"oneof=Cash Card"`
	}
	err := validator.New().Struct(form{PaymentMethod: "Cheque"})
	require.Error(t, err)

	msg := bindingErrorMessage(err)

	assert.Contains(t, msg, "StaffName is required")
	assert.Contains(t, msg, "DurationMinutes must be at least 1")
	assert.Contains(t, msg, "PaymentMethod must be one of: Cash Card")
}
