package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPasswordHashing(t *testing.T) {
	var u User
	require.NoError(t, u.SetPassword("correct horse battery staple"))

	assert.NotEqual(t, "correct horse battery staple", u.PasswordHash)
	assert.True(t, u.CheckPassword("correct horse battery staple"))
	assert.False(t, u.CheckPassword("wrong"))
}
