package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin vendor customer"`
}

func TestValidateAccepts(t *testing.T) {
	v := New()

	err := v.Validate(sampleRequest{Email: "a@x.com", Password: "secret1"})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(sampleRequest{Password: "secret1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email is required")
}

func TestValidateMinLength(t *testing.T) {
	v := New()

	err := v.Validate(sampleRequest{Email: "a@x.com", Password: "short"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password must be at least 6 characters")
}

func TestValidateOneOf(t *testing.T) {
	v := New()

	err := v.Validate(sampleRequest{Email: "a@x.com", Password: "secret1", Role: "superuser"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "role must be one of: admin vendor customer")
}

func TestValidateJoinsMultipleErrors(t *testing.T) {
	v := New()

	err := v.Validate(sampleRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email is required")
	assert.Contains(t, err.Error(), "password is required")
	assert.Contains(t, err.Error(), "; ")
}
