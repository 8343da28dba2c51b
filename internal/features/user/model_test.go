package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hashed)

	usr := User{Password: hashed}
	assert.True(t, usr.ComparePassword("correct horse battery staple"))
	assert.False(t, usr.ComparePassword("wrong password"))
}

func TestEmailRegex(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.org",
		"u+tag@example.io",
	}
	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user @example.com",
		"user@example",
	}

	for _, email := range valid {
		assert.True(t, emailRegex.MatchString(email), email)
	}
	for _, email := range invalid {
		assert.False(t, emailRegex.MatchString(email), email)
	}
}
