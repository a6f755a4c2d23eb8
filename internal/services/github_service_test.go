package services

import (
	"testing"

	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
)

func TestPrimaryEmail(t *testing.T) {
	emails := []*github.UserEmail{
		{Email: github.String("old@usc.edu"), Verified: github.Bool(true)},
		{Email: github.String("unverified@usc.edu"), Primary: github.Bool(true), Verified: github.Bool(false)},
	}
	assert.Equal(t, "old@usc.edu", primaryEmail(emails))

	emails = append(emails, &github.UserEmail{Email: github.String("main@usc.edu"), Primary: github.Bool(true), Verified: github.Bool(true)})
	assert.Equal(t, "main@usc.edu", primaryEmail(emails))

	assert.Equal(t, "", primaryEmail(nil))
}

func TestNewStateIsRandom(t *testing.T) {
	a, err := NewState()
	assert.NoError(t, err)
	b, err := NewState()
	assert.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
