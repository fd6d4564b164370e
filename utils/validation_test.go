package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"a.b+tag@sub.example.co",
		"x@y.io",
	}
	for _, e := range valid {
		assert.True(t, ValidateEmail(e), e)
	}

	invalid := []string{
		"",
		"no-at-sign",
		"two@@example.com",
		"@example.com",
		"alice@",
		"alice@nodot",
		"spaces in@example.com",
	}
	for _, e := range invalid {
		assert.False(t, ValidateEmail(e), e)
	}
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+5511999998888"))
	assert.True(t, ValidatePhone("+1 (415) 555-0100"))
	assert.True(t, ValidatePhone("4155550100"))

	assert.False(t, ValidatePhone(""))
	assert.False(t, ValidatePhone("+0123"))
	assert.False(t, ValidatePhone("abc"))
}

func TestGenerateRandomString(t *testing.T) {
	s := GenerateRandomString(6)
	assert.Len(t, s, 6)

	// Two draws colliding would mean the source is broken.
	assert.NotEqual(t, GenerateRandomString(12), GenerateRandomString(12))
}
