package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	assert.NoError(t, validateName("Alice", "first name"))

	err := validateName("", "first name")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "first name")

	assert.ErrorIs(t, validateName("   ", "last name"), ErrValidation)

	long := make([]byte, 51)
	for i := range long {
		long[i] = 'a'
	}
	assert.ErrorIs(t, validateName(string(long), "first name"), ErrValidation)
}

func TestValidateDateOfBirth(t *testing.T) {
	// Optional field.
	assert.NoError(t, validateDateOfBirth(nil))

	ok := time.Now().AddDate(-30, 0, 0)
	assert.NoError(t, validateDateOfBirth(&ok))

	future := time.Now().AddDate(1, 0, 0)
	assert.ErrorIs(t, validateDateOfBirth(&future), ErrValidation)

	tooYoung := time.Now().AddDate(-10, 0, 0)
	assert.ErrorIs(t, validateDateOfBirth(&tooYoung), ErrValidation)

	tooOld := time.Now().AddDate(-130, 0, 0)
	assert.ErrorIs(t, validateDateOfBirth(&tooOld), ErrValidation)
}

func TestNormalizeGender(t *testing.T) {
	for in, want := range map[string]string{
		"m": "M", " F ": "F", "o": "O", "": "",
	} {
		got, err := normalizeGender(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := normalizeGender("male")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidMembershipStatus(t *testing.T) {
	assert.True(t, validMembershipStatus("Active"))
	assert.True(t, validMembershipStatus("Suspended"))
	assert.False(t, validMembershipStatus("active"))
	assert.False(t, validMembershipStatus("Frozen"))
}
