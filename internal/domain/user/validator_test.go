package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialsValidator_ValidateEmail(t *testing.T) {
	v := NewCredentialsValidator()

	valid := []string{
		"tech@example.com",
		"first.last@sub.example.org",
		"a@b.co",
	}
	for _, email := range valid {
		assert.NoError(t, v.ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"tech@",
		"tech@nodot",
		"tech@.com",
		"tech@example.com.",
		"te ch@example.com",
	}
	for _, email := range invalid {
		assert.Error(t, v.ValidateEmail(email), email)
	}
}

func TestCredentialsValidator_ValidatePassword(t *testing.T) {
	v := NewCredentialsValidator()

	assert.NoError(t, v.ValidatePassword("password123"))
	assert.Error(t, v.ValidatePassword("short"))
	assert.Error(t, v.ValidatePassword(strings.Repeat("x", MaxPasswordLen+1)))
}

func TestCredentialsValidator_ValidateSignUp(t *testing.T) {
	v := NewCredentialsValidator()

	assert.NoError(t, v.ValidateSignUp("tech@example.com", "password123", "Test User"))
	assert.Error(t, v.ValidateSignUp("tech@example.com", "password123", ""))
	assert.Error(t, v.ValidateSignUp("tech@example.com", "password123", strings.Repeat("n", MaxNameLen+1)))
}
